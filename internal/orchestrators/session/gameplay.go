package session

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/KirkDiggler/rpg-dm/internal/checks"
	"github.com/KirkDiggler/rpg-dm/internal/clients/narrator"
	"github.com/KirkDiggler/rpg-dm/internal/entities"
	"github.com/KirkDiggler/rpg-dm/internal/errors"
)

// SubmitAction narrates one player turn. Empty or whitespace-only text is a
// no-op success rather than an error; this mirrors input gating, not a fault.
func (o *orchestrator) SubmitAction(ctx context.Context, input *SubmitActionInput) (*SubmitActionOutput, error) {
	session, err := o.loadSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}
	if err := requirePhase(session, entities.PhaseGameplay); err != nil {
		return nil, err
	}

	action := strings.TrimSpace(input.Action)
	if action == "" {
		return &SubmitActionOutput{Session: session}, nil
	}

	session.AppendNarrative(entities.EntryPlayer, fmt.Sprintf("You: %s", action))

	response, err := o.narrator.GetResponse(ctx, &narrator.GetResponseInput{
		Action:       action,
		Character:    session.PlayerCharacter,
		Party:        session.Party,
		World:        session.World,
		Narrative:    session.Narrative,
		CurrentQuest: session.CurrentQuest,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get narrator response")
	}

	session.AppendNarrative(entities.EntryNarrator, fmt.Sprintf("DM: %s", response.Narrative))

	if response.DiceRequest != nil {
		session.AppendNarrative(entities.EntryNarrator, fmt.Sprintf(
			"The DM calls for a %s check (DC %d, %s). Roll when ready!",
			response.DiceRequest.Ability.Display(),
			response.DiceRequest.DifficultyClass,
			checks.DifficultyDescription(response.DiceRequest.DifficultyClass)))
	}

	saved, err := o.saveSession(ctx, session)
	if err != nil {
		return nil, err
	}

	return &SubmitActionOutput{
		Session:     saved,
		Response:    response.Narrative,
		DiceRequest: response.DiceRequest,
	}, nil
}

// RollDice performs a free die roll and records it
func (o *orchestrator) RollDice(ctx context.Context, input *RollDiceInput) (*RollDiceOutput, error) {
	session, err := o.loadSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}
	if err := requirePhase(session, entities.PhaseGameplay); err != nil {
		return nil, err
	}

	roll, err := o.engine.Roll(input.Die, input.Modifier, input.Purpose)
	if err != nil {
		return nil, err
	}

	o.recordRoll(session, roll)

	saved, err := o.saveSession(ctx, session)
	if err != nil {
		return nil, err
	}

	slog.Info("Dice rolled",
		"session_id", session.ID,
		"die", roll.Die,
		"total", roll.Total)

	return &RollDiceOutput{Session: saved, Roll: roll}, nil
}

// QuickStatCheck runs an ability check against the player's scores, appends
// the formatted result line, and records the roll
func (o *orchestrator) QuickStatCheck(ctx context.Context, input *QuickStatCheckInput) (*QuickStatCheckOutput, error) {
	session, err := o.loadSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}
	if err := requirePhase(session, entities.PhaseGameplay); err != nil {
		return nil, err
	}

	result, err := o.resolver.Perform(
		session.PlayerCharacter.AbilityScores,
		input.Ability,
		input.DifficultyClass,
		input.Mode,
	)
	if err != nil {
		return nil, err
	}

	session.AppendNarrative(entities.EntryRoll, result.String())
	session.RollHistory = append(session.RollHistory, result.Roll)

	saved, err := o.saveSession(ctx, session)
	if err != nil {
		return nil, err
	}

	slog.Info("Stat check performed",
		"session_id", session.ID,
		"ability", input.Ability,
		"dc", input.DifficultyClass,
		"total", result.Total,
		"success", result.Success)

	return &QuickStatCheckOutput{Session: saved, Result: result}, nil
}

// RecordRoll logs an externally produced roll into the session
func (o *orchestrator) RecordRoll(ctx context.Context, input *RecordRollInput) (*RecordRollOutput, error) {
	if input.Roll == nil {
		return nil, errors.InvalidArgument("roll is required")
	}

	session, err := o.loadSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}
	if err := requirePhase(session, entities.PhaseGameplay); err != nil {
		return nil, err
	}

	o.recordRoll(session, input.Roll)

	saved, err := o.saveSession(ctx, session)
	if err != nil {
		return nil, err
	}

	return &RecordRollOutput{Session: saved}, nil
}

func (o *orchestrator) recordRoll(session *entities.GameSession, roll *entities.DiceRoll) {
	session.AppendNarrative(entities.EntryRoll, roll.String())
	session.RollHistory = append(session.RollHistory, roll)
}
