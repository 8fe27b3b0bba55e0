// Package party provides companion dialogue: personality-keyed suggestion
// lines and validated interaction records.
package party

import (
	"time"

	rpgdice "github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/rpg-dm/internal/entities"
	"github.com/KirkDiggler/rpg-dm/internal/errors"
)

var suggestionTable = map[entities.Personality][]string{
	entities.PersonalityBrave: {
		"Let's face this challenge head-on!",
		"I'll take the lead on this one.",
		"We can handle whatever comes our way.",
	},
	entities.PersonalityCautious: {
		"Perhaps we should think this through first.",
		"I sense potential danger here.",
		"Let's proceed carefully.",
	},
	entities.PersonalityCurious: {
		"I wonder what we might discover...",
		"This reminds me of something I've read.",
		"There's more here than meets the eye.",
	},
	entities.PersonalityLoyal: {
		"Whatever you decide, I'm with you.",
		"The party sticks together.",
		"I trust your judgment on this.",
	},
	entities.PersonalityWitty: {
		"Well, this is certainly interesting!",
		"I have an idea that might work...",
		"Leave it to us to find trouble!",
	},
	entities.PersonalityGruff: {
		"Let's get this over with.",
		"I don't like the look of this.",
		"Simple solutions work best.",
	},
}

// Suggestions returns the dialogue lines for a personality. Unknown
// personalities fall back to the Loyal lines so callers always get options.
func Suggestions(p entities.Personality) []string {
	lines, ok := suggestionTable[p]
	if !ok {
		lines = suggestionTable[entities.PersonalityLoyal]
	}
	return append([]string(nil), lines...)
}

// SuggestLine picks one suggestion for the character using the given roller.
func SuggestLine(character *entities.Character, roller rpgdice.Roller) (string, error) {
	if character == nil {
		return "", errors.InvalidArgument("character is required")
	}

	lines := Suggestions(character.Personality)
	roll, err := roller.Roll(len(lines))
	if err != nil {
		return "", err
	}
	return lines[roll-1], nil
}

// NewInteraction builds a validated interaction record for a companion
// speaking in the party discussion.
func NewInteraction(character *entities.Character, message string, at time.Time) (*entities.PartyInteraction, error) {
	if character == nil {
		return nil, errors.InvalidArgument("character is required")
	}
	if message == "" {
		return nil, errors.InvalidArgument("message is required")
	}

	return &entities.PartyInteraction{
		CharacterID: character.ID,
		Character:   character,
		Message:     message,
		Timestamp:   at,
	}, nil
}
