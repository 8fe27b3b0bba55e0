package narrator

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"

	"github.com/KirkDiggler/rpg-dm/internal/entities"
	"github.com/KirkDiggler/rpg-dm/internal/errors"
)

var (
	rollDirectiveRe = regexp.MustCompile(`(?i)ROLL\s+(\w+)\s+DC\s+(\d+)`)

	questTitleRe       = regexp.MustCompile(`(?i)TITLE:\s*(.+)`)
	questDescriptionRe = regexp.MustCompile(`(?i)DESCRIPTION:\s*(.+)`)
	questDCRe          = regexp.MustCompile(`(?i)DC:\s*(\d+)`)

	eventRe   = regexp.MustCompile(`(?i)EVENT:\s*(.+)`)
	choice1Re = regexp.MustCompile(`(?i)CHOICE1:\s*(.+)`)
	choice2Re = regexp.MustCompile(`(?i)CHOICE2:\s*(.+)`)
	choice3Re = regexp.MustCompile(`(?i)CHOICE3:\s*(.+)`)

	// first '[' through last ']', so prose around the array is tolerated
	jsonArrayRe = regexp.MustCompile(`\[[\s\S]*\]`)
)

var statTokens = map[string]entities.Ability{
	"str":          entities.AbilityStrength,
	"dex":          entities.AbilityDexterity,
	"con":          entities.AbilityConstitution,
	"int":          entities.AbilityIntelligence,
	"wis":          entities.AbilityWisdom,
	"cha":          entities.AbilityCharisma,
	"strength":     entities.AbilityStrength,
	"dexterity":    entities.AbilityDexterity,
	"constitution": entities.AbilityConstitution,
	"intelligence": entities.AbilityIntelligence,
	"wisdom":       entities.AbilityWisdom,
	"charisma":     entities.AbilityCharisma,
}

// parseRollDirective extracts a "ROLL <stat> DC <n>" directive from narrator
// text. The directive is stripped from the returned narrative; unrecognized
// stat tokens fall back to dexterity.
func parseRollDirective(text string) (string, *DiceRequest) {
	match := rollDirectiveRe.FindStringSubmatch(text)
	cleaned := strings.TrimSpace(rollDirectiveRe.ReplaceAllString(text, ""))

	if match == nil {
		return cleaned, nil
	}

	ability, ok := statTokens[strings.ToLower(match[1])]
	if !ok {
		ability = entities.AbilityDexterity
	}
	dc, _ := strconv.Atoi(match[2])

	return cleaned, &DiceRequest{Ability: ability, DifficultyClass: dc}
}

// parseQuest reads the TITLE/DESCRIPTION/DC line format. A missing DC line
// defaults to 12.
func parseQuest(text string) (title, description string, dc int, ok bool) {
	titleMatch := questTitleRe.FindStringSubmatch(text)
	descMatch := questDescriptionRe.FindStringSubmatch(text)
	if titleMatch == nil || descMatch == nil {
		return "", "", 0, false
	}

	dc = 12
	if dcMatch := questDCRe.FindStringSubmatch(text); dcMatch != nil {
		dc, _ = strconv.Atoi(dcMatch[1])
	}

	return strings.TrimSpace(titleMatch[1]), strings.TrimSpace(descMatch[1]), dc, true
}

// parseStoryEvent reads the EVENT/CHOICE1..CHOICE3 line format. At least two
// choices are required; the third is optional.
func parseStoryEvent(text string) (situation string, choices []string, ok bool) {
	eventMatch := eventRe.FindStringSubmatch(text)
	c1 := choice1Re.FindStringSubmatch(text)
	c2 := choice2Re.FindStringSubmatch(text)
	if eventMatch == nil || c1 == nil || c2 == nil {
		return "", nil, false
	}

	choices = []string{strings.TrimSpace(c1[1]), strings.TrimSpace(c2[1])}
	if c3 := choice3Re.FindStringSubmatch(text); c3 != nil {
		choices = append(choices, strings.TrimSpace(c3[1]))
	}

	return strings.TrimSpace(eventMatch[1]), choices, true
}

type generatedMember struct {
	Name        string `json:"name"`
	Race        string `json:"race"`
	Class       string `json:"class"`
	Personality string `json:"personality"`
	Quirk       string `json:"quirk"`
	Backstory   string `json:"backstory"`
}

// parsePartyJSON extracts the JSON array of generated members from narrator
// text that may wrap it in prose or code fences.
func parsePartyJSON(text string) ([]generatedMember, error) {
	raw := jsonArrayRe.FindString(text)
	if raw == "" {
		return nil, errors.Internal("no JSON array found in party response")
	}

	var members []generatedMember
	if err := json.Unmarshal([]byte(raw), &members); err != nil {
		return nil, errors.Wrap(err, "failed to parse party response")
	}
	if len(members) == 0 {
		return nil, errors.Internal("party response contained no members")
	}
	return members, nil
}
