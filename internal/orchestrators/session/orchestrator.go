// Package session implements the session orchestrator: the state machine
// that owns a game session and sequences every operation against it.
package session

//go:generate mockgen -destination=mock/mock_service.go -package=sessionmock github.com/KirkDiggler/rpg-dm/internal/orchestrators/session Service

import (
	"context"
	"log/slog"

	rpgdice "github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/rpg-dm/internal/checks"
	"github.com/KirkDiggler/rpg-dm/internal/clients/narrator"
	"github.com/KirkDiggler/rpg-dm/internal/dice"
	"github.com/KirkDiggler/rpg-dm/internal/entities"
	"github.com/KirkDiggler/rpg-dm/internal/errors"
	"github.com/KirkDiggler/rpg-dm/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-dm/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-dm/internal/repositories/gamesession"
)

// Service defines the session operations
type Service interface {
	// Session lifecycle
	CreateSession(ctx context.Context, input *CreateSessionInput) (*CreateSessionOutput, error)
	GetSession(ctx context.Context, input *GetSessionInput) (*GetSessionOutput, error)

	// Setup phases
	ListWorlds(ctx context.Context, input *ListWorldsInput) (*ListWorldsOutput, error)
	SelectWorld(ctx context.Context, input *SelectWorldInput) (*SelectWorldOutput, error)
	CreateCharacter(ctx context.Context, input *CreateCharacterInput) (*CreateCharacterOutput, error)
	GenerateParty(ctx context.Context, input *GeneratePartyInput) (*GeneratePartyOutput, error)

	// Gameplay
	SubmitAction(ctx context.Context, input *SubmitActionInput) (*SubmitActionOutput, error)
	RollDice(ctx context.Context, input *RollDiceInput) (*RollDiceOutput, error)
	QuickStatCheck(ctx context.Context, input *QuickStatCheckInput) (*QuickStatCheckOutput, error)
	RecordRoll(ctx context.Context, input *RecordRollInput) (*RecordRollOutput, error)

	// Quests
	SeekSideQuest(ctx context.Context, input *SeekSideQuestInput) (*SeekSideQuestOutput, error)
	AcceptQuest(ctx context.Context, input *AcceptQuestInput) (*AcceptQuestOutput, error)
	CompleteQuest(ctx context.Context, input *CompleteQuestInput) (*CompleteQuestOutput, error)
	FailQuest(ctx context.Context, input *FailQuestInput) (*FailQuestOutput, error)

	// Story events
	GenerateStoryEvent(ctx context.Context, input *GenerateStoryEventInput) (*GenerateStoryEventOutput, error)
	ResolveStoryEvent(ctx context.Context, input *ResolveStoryEventInput) (*ResolveStoryEventOutput, error)

	// Party interactions
	SuggestInteraction(ctx context.Context, input *SuggestInteractionInput) (*SuggestInteractionOutput, error)
	SubmitInteraction(ctx context.Context, input *SubmitInteractionInput) (*SubmitInteractionOutput, error)
}

// Config holds the dependencies for the session orchestrator
type Config struct {
	SessionRepo gamesession.Repository
	Narrator    narrator.Service
	Engine      *dice.Engine
	Resolver    *checks.Resolver
	Roller      rpgdice.Roller
	IDGenerator idgen.Generator
	Clock       clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.SessionRepo == nil {
		vb.RequiredField("SessionRepo")
	}
	if c.Narrator == nil {
		vb.RequiredField("Narrator")
	}
	if c.Engine == nil {
		vb.RequiredField("Engine")
	}
	if c.Resolver == nil {
		vb.RequiredField("Resolver")
	}
	if c.Roller == nil {
		vb.RequiredField("Roller")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}

	return vb.Build()
}

type orchestrator struct {
	sessionRepo gamesession.Repository
	narrator    narrator.Service
	engine      *dice.Engine
	resolver    *checks.Resolver
	roller      rpgdice.Roller
	idGen       idgen.Generator
	clock       clock.Clock
}

// NewOrchestrator creates a session orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		sessionRepo: cfg.SessionRepo,
		narrator:    cfg.Narrator,
		engine:      cfg.Engine,
		resolver:    cfg.Resolver,
		roller:      cfg.Roller,
		idGen:       cfg.IDGenerator,
		clock:       cfg.Clock,
	}, nil
}

var _ Service = (*orchestrator)(nil)

// CreateSession starts a new session in the world-selection phase
func (o *orchestrator) CreateSession(ctx context.Context, input *CreateSessionInput) (*CreateSessionOutput, error) {
	session := &entities.GameSession{
		ID:    o.idGen.Generate(),
		Phase: entities.PhaseWorldSelection,
	}

	output, err := o.sessionRepo.Create(ctx, gamesession.CreateInput{Session: session})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create session")
	}

	slog.Info("Session created", "session_id", session.ID)

	return &CreateSessionOutput{Session: output.Session}, nil
}

// GetSession retrieves a session by ID
func (o *orchestrator) GetSession(ctx context.Context, input *GetSessionInput) (*GetSessionOutput, error) {
	session, err := o.loadSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}
	return &GetSessionOutput{Session: session}, nil
}

func (o *orchestrator) loadSession(ctx context.Context, sessionID string) (*entities.GameSession, error) {
	if sessionID == "" {
		return nil, errors.InvalidArgument("session ID is required")
	}

	output, err := o.sessionRepo.Get(ctx, gamesession.GetInput{SessionID: sessionID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load session %s", sessionID)
	}
	return output.Session, nil
}

func (o *orchestrator) saveSession(ctx context.Context, session *entities.GameSession) (*entities.GameSession, error) {
	output, err := o.sessionRepo.Update(ctx, gamesession.UpdateInput{Session: session})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to save session %s", session.ID)
	}
	return output.Session, nil
}

// requirePhase gates an operation on the session being in the given phase.
// Wrong-phase calls are caller bugs, not runtime conditions.
func requirePhase(session *entities.GameSession, phase entities.GamePhase) error {
	if session.Phase != phase {
		return errors.FailedPreconditionf(
			"operation requires the %s phase, session %s is in %s",
			phase, session.ID, session.Phase)
	}
	return nil
}
