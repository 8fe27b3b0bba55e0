package entities

import "github.com/KirkDiggler/rpg-toolkit/core"

// World is the narrative setting a session plays out in. Selected once
// per session and immutable afterward. Theme is a presentation tag only.
type World struct {
	ID          string
	Name        string
	Description string
	Inhabitants string
	Backstory   string
	PlotHook    string
	Theme       string
}

// GetID implements core.Entity.
func (w *World) GetID() string { return w.ID }

// GetType implements core.Entity.
func (w *World) GetType() string { return "world" }

var _ core.Entity = (*World)(nil)
