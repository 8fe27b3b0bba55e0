// Package dice implements the dice engine: uniform rolls, multi-die rolls,
// and ability-modifier arithmetic. Entropy comes from an injected
// rpg-toolkit roller so tests can script exact faces.
package dice

import (
	"fmt"

	rpgdice "github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/rpg-dm/internal/entities"
	"github.com/KirkDiggler/rpg-dm/internal/errors"
)

// Config holds the dependencies for the dice engine
type Config struct {
	Roller rpgdice.Roller
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Roller == nil {
		vb.RequiredField("Roller")
	}

	return vb.Build()
}

// Engine rolls dice. It holds no state beyond the entropy source.
type Engine struct {
	roller rpgdice.Roller
}

// NewEngine creates a dice engine with the provided dependencies
func NewEngine(cfg *Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Engine{roller: cfg.Roller}, nil
}

// RollDie returns a uniform value in [1, faces].
func (e *Engine) RollDie(faces int) (int, error) {
	if faces < 1 {
		return 0, errors.InvalidArgumentf("invalid face count: %d", faces)
	}

	result, err := e.roller.Roll(faces)
	if err != nil {
		return 0, errors.Wrapf(err, "failed to roll d%d", faces)
	}
	if result < 1 || result > faces {
		return 0, errors.Internalf("roller returned %d for d%d", result, faces)
	}

	return result, nil
}

// RollMultiple returns count independent uniform values in [1, faces].
func (e *Engine) RollMultiple(count, faces int) ([]int, error) {
	if count < 1 {
		return nil, errors.InvalidArgumentf("invalid dice count: %d", count)
	}
	if faces < 1 {
		return nil, errors.InvalidArgumentf("invalid face count: %d", faces)
	}

	results, err := e.roller.RollN(count, faces)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to roll %dd%d", count, faces)
	}

	return results, nil
}

// Roll produces a complete roll record for the given die, applying the
// modifier and defaulting the purpose to "<die> roll".
func (e *Engine) Roll(die entities.DieType, modifier int, purpose string) (*entities.DiceRoll, error) {
	if !die.Valid() {
		return nil, errors.InvalidArgumentf("unknown die type: %s", die)
	}

	result, err := e.RollDie(die.Faces())
	if err != nil {
		return nil, err
	}

	if purpose == "" {
		purpose = fmt.Sprintf("%s roll", die)
	}

	return &entities.DiceRoll{
		Die:      die,
		Result:   result,
		Modifier: modifier,
		Total:    result + modifier,
		Purpose:  purpose,
	}, nil
}

// AbilityModifier returns floor((score - 10) / 2).
func AbilityModifier(score int) int {
	if score >= 10 {
		return (score - 10) / 2
	}
	// integer division truncates toward zero, so floor negatives by hand
	return -((11 - score) / 2)
}

// RandomPointBuy spends the full point-buy budget at random: every score
// starts at the minimum and single points go to random abilities until the
// budget is gone, capped per stat at the maximum.
func RandomPointBuy(roller rpgdice.Roller) (entities.AbilityScores, error) {
	scores := entities.AbilityScores{
		Strength:     entities.PointBuyMin,
		Dexterity:    entities.PointBuyMin,
		Constitution: entities.PointBuyMin,
		Intelligence: entities.PointBuyMin,
		Wisdom:       entities.PointBuyMin,
		Charisma:     entities.PointBuyMin,
	}

	targets := []*int{
		&scores.Strength, &scores.Dexterity, &scores.Constitution,
		&scores.Intelligence, &scores.Wisdom, &scores.Charisma,
	}

	remaining := entities.PointBuyBudget
	for remaining > 0 {
		pick, err := roller.Roll(len(targets))
		if err != nil {
			return entities.AbilityScores{}, errors.Wrap(err, "failed to pick a random ability")
		}

		target := targets[pick-1]
		if *target < entities.PointBuyMax {
			*target++
			remaining--
		}
	}

	return scores, nil
}
