// Package narrator is the boundary client for the external Dungeon Master.
// Every operation has an online path through a text generator and a
// deterministic offline fallback; callers always receive a usable value.
package narrator

//go:generate mockgen -destination=mock/mock_service.go -package=narratormock github.com/KirkDiggler/rpg-dm/internal/clients/narrator Service

import (
	"context"

	rpgdice "github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/rpg-dm/internal/entities"
	"github.com/KirkDiggler/rpg-dm/internal/errors"
	"github.com/KirkDiggler/rpg-dm/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-dm/internal/pkg/idgen"
)

// DiceRequest asks the player to roll an ability check before the story
// continues.
type DiceRequest struct {
	Ability         entities.Ability
	DifficultyClass int
}

// GetResponseInput carries the full context for one narrated turn.
type GetResponseInput struct {
	Action       string
	Character    *entities.Character
	Party        *entities.Party
	World        *entities.World
	Narrative    entities.NarrativeLog
	CurrentQuest *entities.Quest
}

// GetResponseOutput is the narrated consequence of a player action.
type GetResponseOutput struct {
	Narrative   string
	DiceRequest *DiceRequest
}

// GeneratePartyInput requests companions for the player character.
type GeneratePartyInput struct {
	PlayerCharacter *entities.Character
	World           *entities.World
	Count           int
}

// GeneratePartyOutput carries the generated companions.
type GeneratePartyOutput struct {
	Members []*entities.Character
}

// GenerateQuestInput requests a quest fitting the world and party.
type GenerateQuestInput struct {
	World *entities.World
	Party *entities.Party
	Type  entities.QuestType
}

// GenerateQuestOutput carries the generated quest, already active.
type GenerateQuestOutput struct {
	Quest *entities.Quest
}

// GenerateStoryEventInput requests a branching encounter.
type GenerateStoryEventInput struct {
	World     *entities.World
	Party     *entities.Party
	Narrative entities.NarrativeLog
}

// GenerateStoryEventOutput carries the generated encounter.
type GenerateStoryEventOutput struct {
	Event *entities.StoryEvent
}

// Service defines the narrator operations
type Service interface {
	// GetResponse narrates the consequence of a player action and may
	// request an ability check
	GetResponse(ctx context.Context, input *GetResponseInput) (*GetResponseOutput, error)

	// GenerateParty creates non-player companions for the player character
	GenerateParty(ctx context.Context, input *GeneratePartyInput) (*GeneratePartyOutput, error)

	// GenerateQuest creates a quest fitting the world and party
	GenerateQuest(ctx context.Context, input *GenerateQuestInput) (*GenerateQuestOutput, error)

	// GenerateStoryEvent creates a branching encounter with 2-3 choices
	GenerateStoryEvent(ctx context.Context, input *GenerateStoryEventInput) (*GenerateStoryEventOutput, error)
}

// Config holds the dependencies for the narrator client
type Config struct {
	// Generator is the online text generator. Nil selects offline mode,
	// which is supported, not an error state.
	Generator   Generator
	IDGenerator idgen.Generator
	Roller      rpgdice.Roller
	Clock       clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.Roller == nil {
		vb.RequiredField("Roller")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}

	return vb.Build()
}

type client struct {
	generator Generator
	idGen     idgen.Generator
	roller    rpgdice.Roller
	clock     clock.Clock
}

// New creates a narrator client with the provided dependencies
func New(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &client{
		generator: cfg.Generator,
		idGen:     cfg.IDGenerator,
		roller:    cfg.Roller,
		clock:     cfg.Clock,
	}, nil
}

var _ Service = (*client)(nil)
