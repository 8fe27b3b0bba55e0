package dice

import (
	"fmt"
	"sync"

	rpgdice "github.com/KirkDiggler/rpg-toolkit/dice"
)

// ScriptedRoller implements the rpg-toolkit Roller with predetermined
// results, for deterministic tests.
type ScriptedRoller struct {
	mu    sync.Mutex
	rolls []int
	index int
}

// NewScriptedRoller creates a roller that replays the given faces in order.
func NewScriptedRoller(rolls ...int) *ScriptedRoller {
	return &ScriptedRoller{rolls: rolls}
}

// SetRolls replaces the remaining script.
func (r *ScriptedRoller) SetRolls(rolls []int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rolls = rolls
	r.index = 0
}

// Roll returns the next scripted face.
func (r *ScriptedRoller) Roll(size int) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.index >= len(r.rolls) {
		return 0, fmt.Errorf("no more scripted rolls available (used %d of %d)", r.index, len(r.rolls))
	}

	roll := r.rolls[r.index]
	r.index++

	if roll < 1 || roll > size {
		return 0, fmt.Errorf("scripted roll %d out of range for d%d", roll, size)
	}

	return roll, nil
}

// RollN returns the next count scripted faces.
func (r *ScriptedRoller) RollN(count, size int) ([]int, error) {
	out := make([]int, count)
	for i := 0; i < count; i++ {
		roll, err := r.Roll(size)
		if err != nil {
			return nil, err
		}
		out[i] = roll
	}
	return out, nil
}

var _ rpgdice.Roller = (*ScriptedRoller)(nil)
