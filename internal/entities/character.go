// Package entities holds the domain types for an adventure session.
package entities

import "github.com/KirkDiggler/rpg-toolkit/core"

// Ability identifies one of the six core ability scores.
type Ability string

// The six abilities, in standard order.
const (
	AbilityStrength     Ability = "strength"
	AbilityDexterity    Ability = "dexterity"
	AbilityConstitution Ability = "constitution"
	AbilityIntelligence Ability = "intelligence"
	AbilityWisdom       Ability = "wisdom"
	AbilityCharisma     Ability = "charisma"
)

// Abilities returns the six abilities in standard order.
func Abilities() []Ability {
	return []Ability{
		AbilityStrength,
		AbilityDexterity,
		AbilityConstitution,
		AbilityIntelligence,
		AbilityWisdom,
		AbilityCharisma,
	}
}

// Display returns the capitalized ability name for narrative lines.
func (a Ability) Display() string {
	switch a {
	case AbilityStrength:
		return "Strength"
	case AbilityDexterity:
		return "Dexterity"
	case AbilityConstitution:
		return "Constitution"
	case AbilityIntelligence:
		return "Intelligence"
	case AbilityWisdom:
		return "Wisdom"
	case AbilityCharisma:
		return "Charisma"
	default:
		return string(a)
	}
}

// Valid reports whether a is one of the six abilities.
func (a Ability) Valid() bool {
	switch a {
	case AbilityStrength, AbilityDexterity, AbilityConstitution,
		AbilityIntelligence, AbilityWisdom, AbilityCharisma:
		return true
	}
	return false
}

// Point-buy bounds for character creation. Every score starts at the
// minimum and the full budget must be spent before a character is valid.
const (
	PointBuyBudget = 27
	PointBuyMin    = 8
	PointBuyMax    = 15
)

// AbilityScores holds the six core ability scores.
type AbilityScores struct {
	Strength     int
	Dexterity    int
	Constitution int
	Intelligence int
	Wisdom       int
	Charisma     int
}

// Score returns the value for the given ability. Unknown abilities score 0.
func (s AbilityScores) Score(a Ability) int {
	switch a {
	case AbilityStrength:
		return s.Strength
	case AbilityDexterity:
		return s.Dexterity
	case AbilityConstitution:
		return s.Constitution
	case AbilityIntelligence:
		return s.Intelligence
	case AbilityWisdom:
		return s.Wisdom
	case AbilityCharisma:
		return s.Charisma
	default:
		return 0
	}
}

// PointBuySpend returns the number of point-buy points the scores consume.
func (s AbilityScores) PointBuySpend() int {
	total := 0
	for _, a := range Abilities() {
		total += s.Score(a) - PointBuyMin
	}
	return total
}

// InRange reports whether every score is within the point-buy bounds.
func (s AbilityScores) InRange() bool {
	for _, a := range Abilities() {
		if v := s.Score(a); v < PointBuyMin || v > PointBuyMax {
			return false
		}
	}
	return true
}

// Character is a member of the adventuring party. Exactly one character in
// a session has IsPlayer set. Characters are immutable once created.
type Character struct {
	ID            string
	Name          string
	Race          Race
	Class         Class
	Level         int
	AbilityScores AbilityScores
	Personality   Personality
	Quirk         Quirk
	Backstory     string
	IsPlayer      bool
}

// GetID implements core.Entity.
func (c *Character) GetID() string { return c.ID }

// GetType implements core.Entity.
func (c *Character) GetType() string { return "character" }

var _ core.Entity = (*Character)(nil)
