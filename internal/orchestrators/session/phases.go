package session

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/KirkDiggler/rpg-dm/internal/clients/narrator"
	"github.com/KirkDiggler/rpg-dm/internal/data"
	"github.com/KirkDiggler/rpg-dm/internal/entities"
	"github.com/KirkDiggler/rpg-dm/internal/errors"
)

// ListWorlds draws a random selection of worlds to offer
func (o *orchestrator) ListWorlds(ctx context.Context, input *ListWorldsInput) (*ListWorldsOutput, error) {
	worlds, err := data.RandomWorlds(o.roller, input.Count)
	if err != nil {
		return nil, err
	}
	return &ListWorldsOutput{Worlds: worlds}, nil
}

// SelectWorld stores the chosen world and advances to character creation
func (o *orchestrator) SelectWorld(ctx context.Context, input *SelectWorldInput) (*SelectWorldOutput, error) {
	session, err := o.loadSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}
	if err := requirePhase(session, entities.PhaseWorldSelection); err != nil {
		return nil, err
	}

	world, err := data.WorldByID(input.WorldID)
	if err != nil {
		return nil, err
	}

	session.World = world
	session.Phase = session.Phase.Next()

	saved, err := o.saveSession(ctx, session)
	if err != nil {
		return nil, err
	}

	slog.Info("World selected", "session_id", session.ID, "world_id", world.ID)

	return &SelectWorldOutput{Session: saved}, nil
}

// CreateCharacter validates and stores the player character, then advances
// to party generation
func (o *orchestrator) CreateCharacter(ctx context.Context, input *CreateCharacterInput) (*CreateCharacterOutput, error) {
	session, err := o.loadSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}
	if err := requirePhase(session, entities.PhaseCharacterCreation); err != nil {
		return nil, err
	}

	character := input.Character
	if err := validateCharacter(character); err != nil {
		return nil, err
	}

	if character.ID == "" {
		character.ID = o.idGen.Generate()
	}
	if character.Level == 0 {
		character.Level = 1
	}

	session.PlayerCharacter = character
	session.Phase = session.Phase.Next()

	saved, err := o.saveSession(ctx, session)
	if err != nil {
		return nil, err
	}

	slog.Info("Player character created",
		"session_id", session.ID,
		"character_id", character.ID,
		"race", character.Race,
		"class", character.Class)

	return &CreateCharacterOutput{Session: saved}, nil
}

func validateCharacter(character *entities.Character) error {
	if character == nil {
		return errors.InvalidArgument("character is required")
	}

	vb := errors.NewValidationBuilder()

	if !character.IsPlayer {
		vb.Field("IsPlayer", "player character must have IsPlayer set")
	}
	if strings.TrimSpace(character.Name) == "" {
		vb.RequiredField("Name")
	}
	if !character.Race.Valid() {
		vb.Fieldf("Race", "unknown race: %s", character.Race)
	}
	if !character.Class.Valid() {
		vb.Fieldf("Class", "unknown class: %s", character.Class)
	}
	if !character.Personality.Valid() {
		vb.Fieldf("Personality", "unknown personality: %s", character.Personality)
	}
	if !character.Quirk.Valid() {
		vb.Fieldf("Quirk", "unknown quirk: %s", character.Quirk)
	}
	if !character.AbilityScores.InRange() {
		vb.Fieldf("AbilityScores", "every score must be between %d and %d",
			entities.PointBuyMin, entities.PointBuyMax)
	} else if spend := character.AbilityScores.PointBuySpend(); spend != entities.PointBuyBudget {
		vb.Fieldf("AbilityScores", "point-buy spend must be exactly %d, got %d",
			entities.PointBuyBudget, spend)
	}

	return vb.Build()
}

// GenerateParty asks the narrator for companions, seeds the opening
// narration, installs the main quest, and enters gameplay
func (o *orchestrator) GenerateParty(ctx context.Context, input *GeneratePartyInput) (*GeneratePartyOutput, error) {
	session, err := o.loadSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}
	if err := requirePhase(session, entities.PhasePartyGeneration); err != nil {
		return nil, err
	}

	generated, err := o.narrator.GenerateParty(ctx, &narrator.GeneratePartyInput{
		PlayerCharacter: session.PlayerCharacter,
		World:           session.World,
		Count:           input.Count,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate party")
	}

	// player is always first
	members := append([]*entities.Character{session.PlayerCharacter}, generated.Members...)
	session.Party = &entities.Party{
		ID:      o.idGen.Generate(),
		Members: members,
	}
	session.Phase = session.Phase.Next()

	o.seedOpeningNarration(session)

	if err := o.installMainQuest(ctx, session); err != nil {
		return nil, err
	}

	saved, err := o.saveSession(ctx, session)
	if err != nil {
		return nil, err
	}

	slog.Info("Party generated, gameplay started",
		"session_id", session.ID,
		"party_size", len(members))

	return &GeneratePartyOutput{Session: saved}, nil
}

func (o *orchestrator) seedOpeningNarration(session *entities.GameSession) {
	world := session.World
	player := session.PlayerCharacter

	session.AppendNarrative(entities.EntryNarrator, fmt.Sprintf("Welcome to %s!", world.Name))
	session.AppendNarrative(entities.EntryNarrator, world.Description)
	session.AppendNarrative(entities.EntryNarrator, fmt.Sprintf("Quest: %s", world.PlotHook))
	session.AppendNarrative(entities.EntryNarrator, fmt.Sprintf(
		"Your character %s the %s %s stands ready for adventure!",
		player.Name, player.Race, player.Class))
}
