package entities

import "time"

// PartyInteraction is a line of dialogue contributed by a non-player party
// member, either operator-authored or suggested from the personality table.
type PartyInteraction struct {
	CharacterID string
	Character   *Character
	Message     string
	Timestamp   time.Time
}
