package collision

import (
	"github.com/lixenwraith/survival-arena/core"
	"github.com/lixenwraith/survival-arena/physics"
)

// SizeDominance marks the strictly smaller of two touching entities
type SizeDominance struct{}

func (SizeDominance) Name() string { return "size-dominance" }

func (SizeDominance) Timing() Timing { return SweepNextFrame }

// Resolve lets each side evaluate the other against itself; equal sizes mark neither
func (SizeDominance) Resolve(c physics.Contact, r Roster) {
	if c.Phase != physics.ContactBegin {
		return
	}
	if !c.A.Owned() || !c.B.Owned() {
		return
	}

	sizeA, okA := r.Size(c.A.Owner)
	sizeB, okB := r.Size(c.B.Owner)
	if !okA || !okB {
		return
	}

	onCollision(r, c.A.Owner, sizeA, sizeB)
	onCollision(r, c.B.Owner, sizeB, sizeA)
}

func onCollision(r Roster, self core.Entity, size, other int) {
	if size < other {
		r.Mark(self)
	}
}
