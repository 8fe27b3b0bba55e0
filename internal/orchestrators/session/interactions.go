package session

import (
	"context"
	"fmt"
	"strings"

	"github.com/KirkDiggler/rpg-dm/internal/entities"
	"github.com/KirkDiggler/rpg-dm/internal/errors"
	"github.com/KirkDiggler/rpg-dm/internal/party"
)

// SuggestInteraction picks a personality-fitting line for a companion to say
func (o *orchestrator) SuggestInteraction(ctx context.Context, input *SuggestInteractionInput) (*SuggestInteractionOutput, error) {
	session, err := o.loadSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}
	if err := requirePhase(session, entities.PhaseGameplay); err != nil {
		return nil, err
	}

	companion, err := findCompanion(session, input.CharacterID)
	if err != nil {
		return nil, err
	}

	suggestion, err := party.SuggestLine(companion, o.roller)
	if err != nil {
		return nil, err
	}

	return &SuggestInteractionOutput{
		Character:  companion,
		Suggestion: suggestion,
	}, nil
}

// SubmitInteraction logs a companion's contribution to the discussion
func (o *orchestrator) SubmitInteraction(ctx context.Context, input *SubmitInteractionInput) (*SubmitInteractionOutput, error) {
	session, err := o.loadSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}
	if err := requirePhase(session, entities.PhaseGameplay); err != nil {
		return nil, err
	}

	companion, err := findCompanion(session, input.CharacterID)
	if err != nil {
		return nil, err
	}

	interaction, err := party.NewInteraction(companion, strings.TrimSpace(input.Message), o.clock.Now())
	if err != nil {
		return nil, err
	}

	session.AppendNarrative(entities.EntryEvent,
		fmt.Sprintf("%s: %s", companion.Name, interaction.Message))

	saved, err := o.saveSession(ctx, session)
	if err != nil {
		return nil, err
	}

	return &SubmitInteractionOutput{Session: saved, Interaction: interaction}, nil
}

// findCompanion looks up a non-player party member by ID.
func findCompanion(session *entities.GameSession, characterID string) (*entities.Character, error) {
	if characterID == "" {
		return nil, errors.InvalidArgument("character ID is required")
	}
	if session.Party == nil {
		return nil, errors.FailedPrecondition("session has no party")
	}

	for _, member := range session.Party.Members {
		if member.ID == characterID {
			if member.IsPlayer {
				return nil, errors.InvalidArgument("the player speaks through actions, not interactions")
			}
			return member, nil
		}
	}
	return nil, errors.NotFoundf("party member not found: %s", characterID)
}
