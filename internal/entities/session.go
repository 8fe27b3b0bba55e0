package entities

import (
	"time"

	"github.com/KirkDiggler/rpg-toolkit/core"
)

// GamePhase sequences a session. Phases only ever move forward; gameplay
// is terminal.
type GamePhase string

// Session phases in order.
const (
	PhaseWorldSelection    GamePhase = "world-selection"
	PhaseCharacterCreation GamePhase = "character-creation"
	PhasePartyGeneration   GamePhase = "party-generation"
	PhaseGameplay          GamePhase = "gameplay"
)

// Next returns the phase that follows p, or p itself for the terminal phase.
func (p GamePhase) Next() GamePhase {
	switch p {
	case PhaseWorldSelection:
		return PhaseCharacterCreation
	case PhaseCharacterCreation:
		return PhasePartyGeneration
	case PhasePartyGeneration:
		return PhaseGameplay
	default:
		return p
	}
}

// GameSession is the full state of one adventure. The session orchestrator
// is its sole owner and mutator; every other component receives pieces of
// it for a single operation and returns derived results.
type GameSession struct {
	ID              string
	Phase           GamePhase
	World           *World
	PlayerCharacter *Character
	Party           *Party
	CurrentQuest    *Quest
	PendingQuests   []*Quest
	Narrative       NarrativeLog
	RollHistory     []*DiceRoll
	PendingEvent    *StoryEvent
	EventHistory    []*StoryEvent
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// GetID implements core.Entity.
func (s *GameSession) GetID() string { return s.ID }

// GetType implements core.Entity.
func (s *GameSession) GetType() string { return "game_session" }

var _ core.Entity = (*GameSession)(nil)

// AppendNarrative adds one tagged line to the transcript.
func (s *GameSession) AppendNarrative(kind EntryKind, text string) {
	s.Narrative = append(s.Narrative, NarrativeEntry{Kind: kind, Text: text})
}
