package entities

import "github.com/KirkDiggler/rpg-toolkit/core"

// QuestType distinguishes the main storyline quest from optional side work.
type QuestType string

// Quest types.
const (
	QuestTypeMain QuestType = "main"
	QuestTypeSide QuestType = "side"
)

// Valid reports whether t is a known quest type.
func (t QuestType) Valid() bool {
	return t == QuestTypeMain || t == QuestTypeSide
}

// QuestStatus is the lifecycle state of a quest.
type QuestStatus string

// Quest statuses. Completed and failed quests leave the current slot.
const (
	QuestStatusActive    QuestStatus = "active"
	QuestStatusCompleted QuestStatus = "completed"
	QuestStatusFailed    QuestStatus = "failed"
)

// Quest is a tracked objective. A session holds at most one current quest
// plus a pool of offered-but-unaccepted side quests.
type Quest struct {
	ID              string
	Title           string
	Description     string
	Type            QuestType
	Status          QuestStatus
	DifficultyClass int
}

// GetID implements core.Entity.
func (q *Quest) GetID() string { return q.ID }

// GetType implements core.Entity.
func (q *Quest) GetType() string { return "quest" }

var _ core.Entity = (*Quest)(nil)
