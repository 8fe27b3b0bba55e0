package entities

// Party is the fixed-membership adventuring group. The player character is
// always first. Composition never changes after party generation.
type Party struct {
	ID      string
	Members []*Character
}

// Player returns the player character, or nil if the party is malformed.
func (p *Party) Player() *Character {
	for _, m := range p.Members {
		if m.IsPlayer {
			return m
		}
	}
	return nil
}

// Companions returns the non-player members in order.
func (p *Party) Companions() []*Character {
	out := make([]*Character, 0, len(p.Members))
	for _, m := range p.Members {
		if !m.IsPlayer {
			out = append(out, m)
		}
	}
	return out
}
