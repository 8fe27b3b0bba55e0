package session

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/KirkDiggler/rpg-dm/internal/clients/narrator"
	"github.com/KirkDiggler/rpg-dm/internal/entities"
	"github.com/KirkDiggler/rpg-dm/internal/errors"
)

// installMainQuest requests the main quest on gameplay entry. Runs only when
// no current quest is set.
func (o *orchestrator) installMainQuest(ctx context.Context, session *entities.GameSession) error {
	if session.CurrentQuest != nil {
		return nil
	}

	output, err := o.narrator.GenerateQuest(ctx, &narrator.GenerateQuestInput{
		World: session.World,
		Party: session.Party,
		Type:  entities.QuestTypeMain,
	})
	if err != nil {
		return errors.Wrap(err, "failed to generate main quest")
	}

	session.CurrentQuest = output.Quest
	session.AppendNarrative(entities.EntryEvent,
		fmt.Sprintf("Quest accepted: %s", output.Quest.Title))

	slog.Info("Main quest installed",
		"session_id", session.ID,
		"quest_id", output.Quest.ID,
		"title", output.Quest.Title)

	return nil
}

// SeekSideQuest requests a side quest and adds it to the pending pool. The
// current quest is untouched.
func (o *orchestrator) SeekSideQuest(ctx context.Context, input *SeekSideQuestInput) (*SeekSideQuestOutput, error) {
	session, err := o.loadSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}
	if err := requirePhase(session, entities.PhaseGameplay); err != nil {
		return nil, err
	}

	output, err := o.narrator.GenerateQuest(ctx, &narrator.GenerateQuestInput{
		World: session.World,
		Party: session.Party,
		Type:  entities.QuestTypeSide,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate side quest")
	}

	session.PendingQuests = append(session.PendingQuests, output.Quest)
	session.AppendNarrative(entities.EntryEvent,
		fmt.Sprintf("New quest available: %s", output.Quest.Title))

	saved, err := o.saveSession(ctx, session)
	if err != nil {
		return nil, err
	}

	return &SeekSideQuestOutput{Session: saved, Quest: output.Quest}, nil
}

// AcceptQuest promotes a pending quest to current. Any prior current quest
// is discarded without being marked failed; see DESIGN.md.
func (o *orchestrator) AcceptQuest(ctx context.Context, input *AcceptQuestInput) (*AcceptQuestOutput, error) {
	session, err := o.loadSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}
	if err := requirePhase(session, entities.PhaseGameplay); err != nil {
		return nil, err
	}

	idx := -1
	for i, quest := range session.PendingQuests {
		if quest.ID == input.QuestID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, errors.NotFoundf("pending quest not found: %s", input.QuestID)
	}

	quest := session.PendingQuests[idx]
	session.PendingQuests = append(session.PendingQuests[:idx], session.PendingQuests[idx+1:]...)
	session.CurrentQuest = quest
	session.AppendNarrative(entities.EntryEvent,
		fmt.Sprintf("Quest accepted: %s", quest.Title))

	saved, err := o.saveSession(ctx, session)
	if err != nil {
		return nil, err
	}

	return &AcceptQuestOutput{Session: saved, Quest: quest}, nil
}

// CompleteQuest marks the current quest completed and clears the slot and
// the pending pool
func (o *orchestrator) CompleteQuest(ctx context.Context, input *CompleteQuestInput) (*CompleteQuestOutput, error) {
	session, quest, err := o.closeCurrentQuest(ctx, input.SessionID,
		entities.QuestStatusCompleted, "Quest completed: %s")
	if err != nil {
		return nil, err
	}
	return &CompleteQuestOutput{Session: session, Quest: quest}, nil
}

// FailQuest marks the current quest failed and clears the slot and the
// pending pool
func (o *orchestrator) FailQuest(ctx context.Context, input *FailQuestInput) (*FailQuestOutput, error) {
	session, quest, err := o.closeCurrentQuest(ctx, input.SessionID,
		entities.QuestStatusFailed, "Quest failed: %s")
	if err != nil {
		return nil, err
	}
	return &FailQuestOutput{Session: session, Quest: quest}, nil
}

func (o *orchestrator) closeCurrentQuest(
	ctx context.Context,
	sessionID string,
	status entities.QuestStatus,
	lineFormat string,
) (*entities.GameSession, *entities.Quest, error) {
	session, err := o.loadSession(ctx, sessionID)
	if err != nil {
		return nil, nil, err
	}
	if err := requirePhase(session, entities.PhaseGameplay); err != nil {
		return nil, nil, err
	}
	if session.CurrentQuest == nil {
		return nil, nil, errors.FailedPrecondition("no current quest to close")
	}

	quest := session.CurrentQuest
	quest.Status = status
	session.CurrentQuest = nil
	session.PendingQuests = nil
	session.AppendNarrative(entities.EntryEvent, fmt.Sprintf(lineFormat, quest.Title))

	saved, err := o.saveSession(ctx, session)
	if err != nil {
		return nil, nil, err
	}

	slog.Info("Quest closed",
		"session_id", session.ID,
		"quest_id", quest.ID,
		"status", status)

	return saved, quest, nil
}
