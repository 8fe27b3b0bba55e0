package narrator

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-dm/internal/entities"
	"github.com/KirkDiggler/rpg-dm/internal/errors"
)

// Generation tuning per operation.
var (
	dmOptions    = &GenerateOptions{Temperature: 0.8, MaxOutputTokens: 400}
	partyOptions = &GenerateOptions{Temperature: 0.7, MaxOutputTokens: 500}
	questOptions = &GenerateOptions{Temperature: 0.7, MaxOutputTokens: 200}
	eventOptions = &GenerateOptions{Temperature: 0.8, MaxOutputTokens: 250}
)

const defaultPartySize = 3

// fallbackWarn logs the single diagnostic emitted when an online call
// degrades to its offline table.
func fallbackWarn(operation string, err error) {
	slog.Warn("narrator generation failed, using fallback",
		"operation", operation,
		"error", err)
}

func (c *client) GetResponse(ctx context.Context, input *GetResponseInput) (*GetResponseOutput, error) {
	if input == nil || input.Character == nil || input.World == nil {
		return nil, errors.InvalidArgument("character and world are required")
	}

	if c.generator != nil {
		text, err := c.generator.Generate(ctx, dmSystemPrompt, buildDMPrompt(input), dmOptions)
		if err == nil {
			narrative, request := parseRollDirective(text)
			if narrative == "" {
				narrative = "The world responds to your action in unexpected ways..."
			}
			return &GetResponseOutput{Narrative: narrative, DiceRequest: request}, nil
		}
		fallbackWarn("get_response", err)
	}

	narrative, err := c.fallbackNarrative(input)
	if err != nil {
		return nil, err
	}
	return &GetResponseOutput{Narrative: narrative}, nil
}

func (c *client) GenerateParty(ctx context.Context, input *GeneratePartyInput) (*GeneratePartyOutput, error) {
	if input == nil || input.PlayerCharacter == nil || input.World == nil {
		return nil, errors.InvalidArgument("player character and world are required")
	}
	if input.Count < 0 {
		return nil, errors.InvalidArgumentf("count must not be negative, got %d", input.Count)
	}

	count := input.Count
	if count == 0 {
		count = defaultPartySize
	}

	if c.generator != nil {
		members, err := c.generateOnlineParty(ctx, input, count)
		if err == nil {
			return &GeneratePartyOutput{Members: members}, nil
		}
		fallbackWarn("generate_party", err)
	}

	members, err := c.generateFallbackParty(count)
	if err != nil {
		return nil, err
	}
	return &GeneratePartyOutput{Members: members}, nil
}

func (c *client) generateOnlineParty(ctx context.Context, input *GeneratePartyInput, count int) ([]*entities.Character, error) {
	prompt := buildPartyPrompt(&GeneratePartyInput{
		PlayerCharacter: input.PlayerCharacter,
		World:           input.World,
		Count:           count,
	})

	text, err := c.generator.Generate(ctx, partySystemPrompt, prompt, partyOptions)
	if err != nil {
		return nil, err
	}

	parsed, err := parsePartyJSON(text)
	if err != nil {
		return nil, err
	}
	if len(parsed) > count {
		parsed = parsed[:count]
	}

	members := make([]*entities.Character, 0, len(parsed))
	for _, m := range parsed {
		member, err := c.newCompanion(fallbackMember{
			Name:        m.Name,
			Race:        entities.Race(m.Race),
			Class:       entities.Class(m.Class),
			Personality: entities.Personality(m.Personality),
			Quirk:       entities.Quirk(m.Quirk),
			Backstory:   m.Backstory,
		})
		if err != nil {
			return nil, err
		}
		members = append(members, member)
	}
	return members, nil
}

func (c *client) generateFallbackParty(count int) ([]*entities.Character, error) {
	roster := fallbackRoster
	if count < len(roster) {
		roster = roster[:count]
	}

	members := make([]*entities.Character, 0, len(roster))
	for _, m := range roster {
		member, err := c.newCompanion(m)
		if err != nil {
			return nil, err
		}
		members = append(members, member)
	}
	return members, nil
}

// newCompanion builds a level-1 companion. Companion scores are drawn
// uniformly in [8,15] per stat, a simplified balancing procedure rather than
// point-buy.
func (c *client) newCompanion(m fallbackMember) (*entities.Character, error) {
	scores, err := c.balancedScores()
	if err != nil {
		return nil, err
	}

	return &entities.Character{
		ID:            c.idGen.Generate(),
		Name:          m.Name,
		Race:          m.Race,
		Class:         m.Class,
		Level:         1,
		AbilityScores: scores,
		Personality:   m.Personality,
		Quirk:         m.Quirk,
		Backstory:     m.Backstory,
		IsPlayer:      false,
	}, nil
}

func (c *client) balancedScores() (entities.AbilityScores, error) {
	var scores entities.AbilityScores
	rolls, err := c.roller.RollN(len(entities.Abilities()), entities.PointBuyMax-entities.PointBuyMin+1)
	if err != nil {
		return scores, err
	}
	scores.Strength = entities.PointBuyMin + rolls[0] - 1
	scores.Dexterity = entities.PointBuyMin + rolls[1] - 1
	scores.Constitution = entities.PointBuyMin + rolls[2] - 1
	scores.Intelligence = entities.PointBuyMin + rolls[3] - 1
	scores.Wisdom = entities.PointBuyMin + rolls[4] - 1
	scores.Charisma = entities.PointBuyMin + rolls[5] - 1
	return scores, nil
}

func (c *client) GenerateQuest(ctx context.Context, input *GenerateQuestInput) (*GenerateQuestOutput, error) {
	if input == nil || input.World == nil {
		return nil, errors.InvalidArgument("world is required")
	}
	if !input.Type.Valid() {
		return nil, errors.InvalidArgumentf("unknown quest type: %s", input.Type)
	}

	if c.generator != nil {
		text, err := c.generator.Generate(ctx, questSystemPrompt, buildQuestPrompt(input), questOptions)
		if err == nil {
			if title, description, dc, ok := parseQuest(text); ok {
				return &GenerateQuestOutput{Quest: c.newQuest(title, description, input.Type, dc)}, nil
			}
			err = errors.Internal("quest response missing TITLE or DESCRIPTION")
		}
		fallbackWarn("generate_quest", err)
	}

	table := fallbackQuests[input.Type]
	idx, err := c.pick(len(table))
	if err != nil {
		return nil, err
	}
	picked := table[idx]

	return &GenerateQuestOutput{
		Quest: c.newQuest(picked.Title, picked.Description, input.Type, picked.DifficultyClass),
	}, nil
}

func (c *client) newQuest(title, description string, questType entities.QuestType, dc int) *entities.Quest {
	return &entities.Quest{
		ID:              c.idGen.Generate(),
		Title:           title,
		Description:     description,
		Type:            questType,
		Status:          entities.QuestStatusActive,
		DifficultyClass: dc,
	}
}

func (c *client) GenerateStoryEvent(ctx context.Context, input *GenerateStoryEventInput) (*GenerateStoryEventOutput, error) {
	if input == nil || input.World == nil {
		return nil, errors.InvalidArgument("world is required")
	}

	if c.generator != nil {
		text, err := c.generator.Generate(ctx, eventSystemPrompt, buildEventPrompt(input), eventOptions)
		if err == nil {
			if situation, choices, ok := parseStoryEvent(text); ok {
				return &GenerateStoryEventOutput{Event: c.newEvent(situation, choices)}, nil
			}
			err = errors.Internal("event response missing EVENT or choices")
		}
		fallbackWarn("generate_story_event", err)
	}

	idx, err := c.pick(len(fallbackEvents))
	if err != nil {
		return nil, err
	}
	picked := fallbackEvents[idx]

	return &GenerateStoryEventOutput{
		Event: c.newEvent(picked.Situation, append([]string(nil), picked.Choices...)),
	}, nil
}

func (c *client) newEvent(situation string, choices []string) *entities.StoryEvent {
	return &entities.StoryEvent{
		ID:        c.idGen.Generate(),
		Situation: situation,
		Choices:   choices,
		CreatedAt: c.clock.Now(),
	}
}
