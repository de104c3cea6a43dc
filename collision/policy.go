// Package collision turns raw physics contacts into game-rule outcomes.
// Policies only mark entities; removal happens in the lifecycle sweep, never inside a step.
package collision

import (
	"github.com/lixenwraith/survival-arena/core"
	"github.com/lixenwraith/survival-arena/physics"
)

// Timing selects when marked entities are swept relative to the physics step
type Timing uint8

const (
	// SweepNextFrame sweeps before the following step; marked bodies take part in one more step
	SweepNextFrame Timing = iota
	// SweepSameFrame sweeps right after the step that marked them
	SweepSameFrame
)

func (t Timing) String() string {
	if t == SweepSameFrame {
		return "same-frame"
	}
	return "next-frame"
}

// Roster is the entity view a policy needs
type Roster interface {
	// Size returns the size of a live entity, false for stale or unknown handles
	Size(e core.Entity) (int, bool)
	// Dynamic reports whether a live entity is backed by a dynamic body
	Dynamic(e core.Entity) bool
	// Mark sets the deletion flag, idempotent
	Mark(e core.Entity)
}

// Policy interprets contacts under one rule set
type Policy interface {
	Name() string
	Timing() Timing
	// Resolve is called synchronously from the physics step for every contact
	Resolve(c physics.Contact, r Roster)
}
