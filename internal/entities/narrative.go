package entities

// EntryKind tags a narrative line with its origin.
type EntryKind string

// Narrative line origins.
const (
	EntryPlayer   EntryKind = "player"
	EntryNarrator EntryKind = "narrator"
	EntryRoll     EntryKind = "roll"
	EntryEvent    EntryKind = "event"
)

// NarrativeEntry is one tagged line of the session transcript.
type NarrativeEntry struct {
	Kind EntryKind
	Text string
}

// NarrativeLog is the append-only session transcript. Lines are never
// reordered or mutated. It doubles as context fed back to the narrator.
type NarrativeLog []NarrativeEntry

// Lines returns the raw text of every entry in order.
func (l NarrativeLog) Lines() []string {
	out := make([]string, len(l))
	for i, e := range l {
		out[i] = e.Text
	}
	return out
}

// Tail returns the text of the most recent n entries.
func (l NarrativeLog) Tail(n int) []string {
	if n >= len(l) {
		return l.Lines()
	}
	return l[len(l)-n:].Lines()
}
