package entities

import (
	"fmt"
	"strconv"
	"strings"
)

// DieType is one of the standard polyhedral dice.
type DieType string

// The standard dice.
const (
	DieD4   DieType = "d4"
	DieD6   DieType = "d6"
	DieD8   DieType = "d8"
	DieD10  DieType = "d10"
	DieD12  DieType = "d12"
	DieD20  DieType = "d20"
	DieD100 DieType = "d100"
)

// DieTypes returns the standard dice in ascending face count.
func DieTypes() []DieType {
	return []DieType{DieD4, DieD6, DieD8, DieD10, DieD12, DieD20, DieD100}
}

// Faces returns the face count for the die, or 0 for an unknown die.
func (d DieType) Faces() int {
	n, err := strconv.Atoi(strings.TrimPrefix(string(d), "d"))
	if err != nil || !d.Valid() {
		return 0
	}
	return n
}

// Valid reports whether d is a standard die.
func (d DieType) Valid() bool {
	for _, known := range DieTypes() {
		if d == known {
			return true
		}
	}
	return false
}

// ParseDieType parses strings like "d20" or "20" into a DieType.
func ParseDieType(s string) (DieType, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if !strings.HasPrefix(s, "d") {
		s = "d" + s
	}
	d := DieType(s)
	return d, d.Valid()
}

// DiceRoll is a single resolved roll. Immutable once produced; appended to
// the session roll history.
type DiceRoll struct {
	Die      DieType
	Result   int
	Modifier int
	Total    int
	Purpose  string
}

// String renders the roll the way the transcript shows it, e.g.
// "Dexterity check (DC 15): 14 + 2 = 16".
func (r *DiceRoll) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %d", r.Purpose, r.Result)
	if r.Modifier > 0 {
		fmt.Fprintf(&b, " + %d", r.Modifier)
	} else if r.Modifier < 0 {
		fmt.Fprintf(&b, " - %d", -r.Modifier)
	}
	fmt.Fprintf(&b, " = %d", r.Total)
	return b.String()
}
