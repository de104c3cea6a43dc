package collision

import "github.com/lixenwraith/survival-arena/physics"

// MutualDestruction removes both bodies of any touching dynamic pair regardless of size
// Walls and paddles are never removed
type MutualDestruction struct{}

func (MutualDestruction) Name() string { return "mutual-destruction" }

func (MutualDestruction) Timing() Timing { return SweepSameFrame }

func (MutualDestruction) Resolve(c physics.Contact, r Roster) {
	if c.Phase != physics.ContactBegin || !c.Touching {
		return
	}
	if !c.A.Owned() || !c.B.Owned() {
		return
	}
	if c.A.Kind != physics.BodyDynamic || c.B.Kind != physics.BodyDynamic {
		return
	}
	if !r.Dynamic(c.A.Owner) || !r.Dynamic(c.B.Owner) {
		return
	}

	r.Mark(c.A.Owner)
	r.Mark(c.B.Owner)
}
