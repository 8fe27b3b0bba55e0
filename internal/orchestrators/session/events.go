package session

import (
	"context"
	"fmt"
	"slices"

	"github.com/KirkDiggler/rpg-dm/internal/clients/narrator"
	"github.com/KirkDiggler/rpg-dm/internal/entities"
	"github.com/KirkDiggler/rpg-dm/internal/errors"
)

// Event cadence: one offer per eight narrative lines, never while one is
// already pending.
const eventInterval = 8

// Resolved events kept for presentation.
const maxEventHistory = 8

// EventEligible reports whether the session may be offered a story event.
func EventEligible(session *entities.GameSession) bool {
	n := len(session.Narrative)
	return n > 0 && n%eventInterval == 0 && session.PendingEvent == nil
}

// GenerateStoryEvent requests an encounter and marks it pending
func (o *orchestrator) GenerateStoryEvent(ctx context.Context, input *GenerateStoryEventInput) (*GenerateStoryEventOutput, error) {
	session, err := o.loadSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}
	if err := requirePhase(session, entities.PhaseGameplay); err != nil {
		return nil, err
	}
	if session.PendingEvent != nil {
		return nil, errors.FailedPrecondition("an event is already pending resolution")
	}
	if !EventEligible(session) {
		return nil, errors.FailedPreconditionf(
			"session is not eligible for an event (narrative length %d)", len(session.Narrative))
	}

	output, err := o.narrator.GenerateStoryEvent(ctx, &narrator.GenerateStoryEventInput{
		World:     session.World,
		Party:     session.Party,
		Narrative: session.Narrative,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate story event")
	}

	session.PendingEvent = output.Event

	saved, err := o.saveSession(ctx, session)
	if err != nil {
		return nil, err
	}

	return &GenerateStoryEventOutput{Session: saved, Event: output.Event}, nil
}

// ResolveStoryEvent applies the chosen option to the pending event and
// returns the choice text for re-injection as the next player action
func (o *orchestrator) ResolveStoryEvent(ctx context.Context, input *ResolveStoryEventInput) (*ResolveStoryEventOutput, error) {
	session, err := o.loadSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}
	if err := requirePhase(session, entities.PhaseGameplay); err != nil {
		return nil, err
	}

	event := session.PendingEvent
	if event == nil {
		return nil, errors.FailedPrecondition("no pending event to resolve")
	}
	if !slices.Contains(event.Choices, input.Choice) {
		return nil, errors.InvalidArgumentf("choice is not one of the event's options: %q", input.Choice)
	}

	session.AppendNarrative(entities.EntryEvent, fmt.Sprintf("Event: %s", event.Situation))
	session.AppendNarrative(entities.EntryEvent, fmt.Sprintf("You chose: %s", input.Choice))
	session.PendingEvent = nil

	session.EventHistory = append(session.EventHistory, event)
	if len(session.EventHistory) > maxEventHistory {
		session.EventHistory = session.EventHistory[len(session.EventHistory)-maxEventHistory:]
	}

	saved, err := o.saveSession(ctx, session)
	if err != nil {
		return nil, err
	}

	return &ResolveStoryEventOutput{Session: saved, Choice: input.Choice}, nil
}
