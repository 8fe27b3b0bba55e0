package entities

import (
	"time"

	"github.com/KirkDiggler/rpg-toolkit/core"
)

// StoryEvent is a branching encounter offered to the party. It is consumed
// exactly once: picking a choice resolves it and emits two narrative lines.
type StoryEvent struct {
	ID        string
	Situation string
	Choices   []string
	CreatedAt time.Time
}

// GetID implements core.Entity.
func (e *StoryEvent) GetID() string { return e.ID }

// GetType implements core.Entity.
func (e *StoryEvent) GetType() string { return "story_event" }

var _ core.Entity = (*StoryEvent)(nil)
