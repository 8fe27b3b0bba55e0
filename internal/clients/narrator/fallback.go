package narrator

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/rpg-dm/internal/entities"
)

// Offline tables. These mirror the online wire formats so callers cannot
// tell which path produced a value.

type fallbackMember struct {
	Name        string
	Race        entities.Race
	Class       entities.Class
	Personality entities.Personality
	Quirk       entities.Quirk
	Backstory   string
}

var fallbackRoster = []fallbackMember{
	{
		Name:        "Thorin Ironbeard",
		Race:        entities.RaceDwarf,
		Class:       entities.ClassCleric,
		Personality: entities.PersonalityLoyal,
		Quirk:       entities.QuirkKeepsJournal,
		Backstory:   "A wise cleric seeking to restore ancient temples.",
	},
	{
		Name:        "Lyralei Swiftarrow",
		Race:        entities.RaceElf,
		Class:       entities.ClassRanger,
		Personality: entities.PersonalityCautious,
		Quirk:       entities.QuirkTalksToWeapon,
		Backstory:   "A skilled tracker with a mysterious past.",
	},
	{
		Name:        "Finn Lightfinger",
		Race:        entities.RaceHalfling,
		Class:       entities.ClassRogue,
		Personality: entities.PersonalityWitty,
		Quirk:       entities.QuirkAlwaysBarters,
		Backstory:   "A charming rogue with a heart of gold.",
	},
}

type fallbackQuest struct {
	Title           string
	Description     string
	DifficultyClass int
}

var fallbackQuests = map[entities.QuestType][]fallbackQuest{
	entities.QuestTypeMain: {
		{
			Title:           "The Ancient Prophecy",
			Description:     "Uncover the truth behind an ancient prophecy that threatens the realm.",
			DifficultyClass: 15,
		},
		{
			Title:           "The Lost Crown",
			Description:     "Retrieve the stolen crown from the depths of the shadow realm.",
			DifficultyClass: 18,
		},
	},
	entities.QuestTypeSide: {
		{
			Title:           "The Missing Merchant",
			Description:     "Find the merchant who disappeared on the old forest road.",
			DifficultyClass: 10,
		},
		{
			Title:           "Goblin Trouble",
			Description:     "Clear out the goblin nest that is threatening local farmers.",
			DifficultyClass: 8,
		},
	},
}

type fallbackEvent struct {
	Situation string
	Choices   []string
}

var fallbackEvents = []fallbackEvent{
	{
		Situation: "You encounter a mysterious traveler at the crossroads who offers to trade information.",
		Choices: []string{
			"Accept the trade and listen to what they have to say",
			"Politely decline and continue on your path",
			"Question them about their true intentions",
		},
	},
	{
		Situation: "A sudden storm forces your party to seek shelter in an abandoned inn.",
		Choices: []string{
			"Explore the inn to see if anyone else is there",
			"Set up camp in the main room and wait for the storm to pass",
			"Search for alternative shelter nearby",
		},
	},
	{
		Situation: "You discover ancient runes carved into a stone monolith.",
		Choices: []string{
			"Try to decipher the meaning of the runes",
			"Touch the stone to see if anything happens",
			"Leave the monolith undisturbed and move on",
		},
	},
}

// pick selects a uniform index in [0, n) from the injected roller.
func (c *client) pick(n int) (int, error) {
	roll, err := c.roller.Roll(n)
	if err != nil {
		return 0, err
	}
	return roll - 1, nil
}

// fallbackNarrative weaves the action and session context into one of four
// templates so offline play still reads as responsive.
func (c *client) fallbackNarrative(input *GetResponseInput) (string, error) {
	char := input.Character
	world := input.World

	partySize := 0
	if input.Party != nil {
		partySize = len(input.Party.Members)
	}
	questReaction := "await the outcome with interest"
	if input.CurrentQuest != nil {
		questReaction = "consider how this affects your quest"
	}
	action := strings.ToLower(input.Action)

	responses := []string{
		fmt.Sprintf("As %s %s, the party of %d watches intently. The %s atmosphere of %s adds weight to every decision.",
			char.Name, action, partySize, world.Theme, world.Name),
		fmt.Sprintf("Your %s nature guides you as you %s. The other party members %s.",
			char.Personality, action, questReaction),
		fmt.Sprintf("The mystical energies of %s respond to your action. %s becomes particularly relevant as events unfold.",
			world.Name, char.Quirk),
		fmt.Sprintf("As the party's %s, your action carries special significance. The %s setting creates new possibilities.",
			char.Class, world.Theme),
	}

	idx, err := c.pick(len(responses))
	if err != nil {
		return "", err
	}
	return responses[idx], nil
}
