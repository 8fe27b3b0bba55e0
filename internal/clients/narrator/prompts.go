package narrator

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/rpg-dm/internal/entities"
)

const dmSystemPrompt = `You are a master Dungeon Master for D&D 5e with these specialties:
- Rich, immersive storytelling that brings scenes to life
- Balancing challenge with fun and narrative satisfaction
- Incorporating each party member's personality and abilities
- Creating meaningful consequences for player choices
- Suggesting appropriate skill checks and combat encounters
- Maintaining consistency with established world lore and rules
- Encouraging creative problem-solving and roleplay

Your responses should:
- Be 2-4 sentences of vivid description
- Include party member reactions when relevant
- Suggest dice rolls naturally (format: ROLL [STAT] DC [number])
- Advance the story while giving players agency
- Match the world's tone and atmosphere`

const partySystemPrompt = "You are a D&D party generator. Create balanced party members with detailed stats and personalities."

const questSystemPrompt = "You are a quest generator for D&D adventures. Create engaging quests that fit the world and party composition."

const eventSystemPrompt = "You are a story event generator for D&D. Create interesting encounters and decisions for the party."

// recentNarrative returns the last n transcript lines joined for a prompt.
func recentNarrative(log entities.NarrativeLog, n int) string {
	return strings.Join(log.Tail(n), "\n")
}

func partyRoster(party *entities.Party) string {
	if party == nil {
		return ""
	}
	lines := make([]string, 0, len(party.Members))
	for _, m := range party.Members {
		lines = append(lines, fmt.Sprintf("%s (%s %s, Level %d)", m.Name, m.Race, m.Class, m.Level))
	}
	return strings.Join(lines, "\n")
}

func partyComposition(party *entities.Party) string {
	if party == nil {
		return ""
	}
	parts := make([]string, 0, len(party.Members))
	for _, m := range party.Members {
		parts = append(parts, fmt.Sprintf("%s (%s %s)", m.Name, m.Race, m.Class))
	}
	return strings.Join(parts, ", ")
}

func buildDMPrompt(input *GetResponseInput) string {
	var b strings.Builder

	fmt.Fprintf(&b, "You are the Dungeon Master for a D&D adventure in %s.\n\n", input.World.Name)
	fmt.Fprintf(&b, "WORLD CONTEXT:\n%s\nTheme: %s\nMain Plot: %s\n\n",
		input.World.Description, input.World.Theme, input.World.PlotHook)
	fmt.Fprintf(&b, "PARTY COMPOSITION:\n%s\n\n", partyRoster(input.Party))

	c := input.Character
	fmt.Fprintf(&b, "ACTIVE CHARACTER: %s (%s %s)\n- Personality: %s\n- Quirk: %s\n",
		c.Name, c.Race, c.Class, c.Personality, c.Quirk)
	if input.CurrentQuest != nil {
		fmt.Fprintf(&b, "\nCURRENT QUEST: %s - %s\n", input.CurrentQuest.Title, input.CurrentQuest.Description)
	}

	fmt.Fprintf(&b, "\nRECENT STORY:\n%s\n\n", recentNarrative(input.Narrative, 12))
	fmt.Fprintf(&b, "PLAYER ACTION: %q\n\n", input.Action)

	b.WriteString(`As the DM, respond with:
1. Vivid narrative description of what happens
2. How the party and world react
3. Any consequences or opportunities
4. If a dice roll is needed, specify: ROLL [stat] DC [number]

Consider the party dynamics and individual character traits. Keep the tone engaging and true to the world's theme.`)

	return b.String()
}

func buildPartyPrompt(input *GeneratePartyInput) string {
	var b strings.Builder

	pc := input.PlayerCharacter
	fmt.Fprintf(&b, "Create %d party members to accompany this player character in %s:\n\n",
		input.Count, input.World.Name)
	fmt.Fprintf(&b, "Player Character: %s (%s %s)\n\n", pc.Name, pc.Race, pc.Class)
	fmt.Fprintf(&b, `Requirements:
- Balance the party (need different roles: tank, healer, damage, utility)
- Each character should have: name, race, class, personality, quirk, and brief backstory
- Characters should fit the world theme: %s
- Avoid duplicating the player's race/class combination

`, input.World.Theme)

	b.WriteString(`Format as JSON array with this structure:
[
  {
    "name": "Character Name",
    "race": "Race",
    "class": "Class",
    "personality": "Personality",
    "quirk": "Quirk",
    "backstory": "Brief backstory"
  }
]`)

	return b.String()
}

func buildQuestPrompt(input *GenerateQuestInput) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Generate a %s quest for this D&D party in %s:\n\n", input.Type, input.World.Name)
	fmt.Fprintf(&b, "WORLD: %s\nPARTY: %s\nPLOT HOOK: %s\n\n",
		input.World.Description, partyComposition(input.Party), input.World.PlotHook)

	b.WriteString(`Create a quest with:
- Title (short, engaging)
- Description (what needs to be done)
- Difficulty Class (8-20)

Format as:
TITLE: [Quest Title]
DESCRIPTION: [Quest Description]
DC: [Difficulty Class Number]`)

	return b.String()
}

func buildEventPrompt(input *GenerateStoryEventInput) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Generate a story event for this D&D party in %s:\n\n", input.World.Name)
	fmt.Fprintf(&b, "WORLD: %s\nPARTY: %s\nRECENT EVENTS: %s\n\n",
		input.World.Description, partyComposition(input.Party), recentNarrative(input.Narrative, 5))

	b.WriteString(`Create an event with:
- A situation the party encounters
- 2-3 possible choices for how to respond

Format as:
EVENT: [Description of what happens]
CHOICE1: [First option]
CHOICE2: [Second option]
CHOICE3: [Third option (optional)]`)

	return b.String()
}
