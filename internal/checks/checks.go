// Package checks resolves ability checks: a d20 draw (with advantage or
// disadvantage) plus the ability modifier against a difficulty class.
package checks

import (
	"fmt"

	"github.com/KirkDiggler/rpg-dm/internal/dice"
	"github.com/KirkDiggler/rpg-dm/internal/entities"
	"github.com/KirkDiggler/rpg-dm/internal/errors"
)

// Mode selects how many d20s are drawn and which is kept.
type Mode string

// Check modes.
const (
	ModeNormal       Mode = "normal"
	ModeAdvantage    Mode = "advantage"
	ModeDisadvantage Mode = "disadvantage"
)

// Result is the outcome of one ability check. Criticals are read off the
// kept die face; Success is computed purely from the total, so a natural 20
// that still totals under the DC records Success=false.
type Result struct {
	Roll            *entities.DiceRoll
	Modifier        int
	Total           int
	Success         bool
	CriticalSuccess bool
	CriticalFailure bool
}

// String renders the result as a transcript line, e.g.
// "Dexterity check (DC 15): 14 + 2 = 16 (Success)".
func (r *Result) String() string {
	outcome := "Failure"
	switch {
	case r.CriticalSuccess:
		outcome = "CRITICAL SUCCESS!"
	case r.CriticalFailure:
		outcome = "CRITICAL FAILURE!"
	case r.Success:
		outcome = "Success"
	}
	return fmt.Sprintf("%s (%s)", r.Roll, outcome)
}

// Config holds the dependencies for the check resolver
type Config struct {
	Engine *dice.Engine
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Engine == nil {
		vb.RequiredField("Engine")
	}

	return vb.Build()
}

// Resolver performs ability checks. Stateless; safe to share.
type Resolver struct {
	engine *dice.Engine
}

// NewResolver creates a check resolver with the provided dependencies
func NewResolver(cfg *Config) (*Resolver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Resolver{engine: cfg.Engine}, nil
}

// Perform runs one ability check against the given scores. The caller is
// responsible for appending the result to any log.
func (r *Resolver) Perform(scores entities.AbilityScores, ability entities.Ability, dc int, mode Mode) (*Result, error) {
	if !ability.Valid() {
		return nil, errors.InvalidArgumentf("unknown ability: %s", ability)
	}

	kept, err := r.draw(mode)
	if err != nil {
		return nil, err
	}

	modifier := dice.AbilityModifier(scores.Score(ability))
	total := kept + modifier

	roll := &entities.DiceRoll{
		Die:      entities.DieD20,
		Result:   kept,
		Modifier: modifier,
		Total:    total,
		Purpose:  fmt.Sprintf("%s check (DC %d)", ability.Display(), dc),
	}

	return &Result{
		Roll:            roll,
		Modifier:        modifier,
		Total:           total,
		Success:         total >= dc,
		CriticalSuccess: kept == 20,
		CriticalFailure: kept == 1,
	}, nil
}

// draw returns the kept d20 face for the given mode.
func (r *Resolver) draw(mode Mode) (int, error) {
	switch mode {
	case ModeNormal, "":
		return r.engine.RollDie(20)
	case ModeAdvantage, ModeDisadvantage:
		rolls, err := r.engine.RollMultiple(2, 20)
		if err != nil {
			return 0, err
		}
		if mode == ModeAdvantage {
			return max(rolls[0], rolls[1]), nil
		}
		return min(rolls[0], rolls[1]), nil
	default:
		return 0, errors.InvalidArgumentf("unknown check mode: %s", mode)
	}
}

// DifficultyDescription names a DC band for prompt lines.
func DifficultyDescription(dc int) string {
	switch {
	case dc <= 5:
		return "Trivial"
	case dc <= 10:
		return "Easy"
	case dc <= 15:
		return "Medium"
	case dc <= 20:
		return "Hard"
	case dc <= 25:
		return "Very Hard"
	default:
		return "Nearly Impossible"
	}
}
