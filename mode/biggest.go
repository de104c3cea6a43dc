// Package mode holds the two demo variants run by engine.Session.
package mode

import (
	"github.com/lixenwraith/survival-arena/collision"
	"github.com/lixenwraith/survival-arena/config"
	"github.com/lixenwraith/survival-arena/engine"
	"github.com/lixenwraith/survival-arena/input"
	"github.com/lixenwraith/survival-arena/physics"
)

// Biggest spawns a character per click; on contact the strictly smaller one is removed a frame later
type Biggest struct {
	input.NopHooks

	cfg   config.BiggestConfig
	title string

	ground physics.BodyHandle
}

// NewBiggest creates the demo from its config section
func NewBiggest(cfg *config.Config) *Biggest {
	return &Biggest{
		cfg:   cfg.Biggest,
		title: cfg.Window.TitleBiggest,
	}
}

func (b *Biggest) Name() string { return "biggest" }

func (b *Biggest) Title() string { return b.title }

func (b *Biggest) Help() string { return "click spawn  c clear  m audio  q quit" }

func (b *Biggest) Gravity() physics.Vec2 {
	return physics.V(b.cfg.Gravity[0], b.cfg.Gravity[1])
}

func (b *Biggest) Bounds() physics.Bounds {
	return physics.Bounds{
		Min: physics.V(b.cfg.BoundsMin[0], b.cfg.BoundsMin[1]),
		Max: physics.V(b.cfg.BoundsMax[0], b.cfg.BoundsMax[1]),
	}
}

func (b *Biggest) Policy() collision.Policy { return collision.SizeDominance{} }

// Setup creates the ground edge; it has no owning entity and is never removed
func (b *Biggest) Setup(s *engine.Session) error {
	hw := b.cfg.GroundHalfWidth
	b.ground = s.World().CreateBody(physics.BodySpec{
		Kind:     physics.BodyStatic,
		Shape:    physics.Edge(physics.V(-hw, 0), physics.V(hw, 0)),
		Material: physics.Ground,
	})
	return nil
}

// Spawn creates a dynamic character whose half-extent grows with its size
func (b *Biggest) Spawn(s *engine.Session, req input.SpawnRequest) error {
	size := engine.ClampSize(req.Size)
	_, err := s.Spawn(engine.SpawnParams{
		Position: req.Position,
		Size:     size,
		Kind:     physics.BodyDynamic,
		Shape:    b.shape(size),
		Material: physics.Material{
			Density:     b.cfg.Density,
			Friction:    b.cfg.Friction,
			Restitution: b.cfg.Restitution,
		},
	})
	return err
}

func (b *Biggest) shape(size int) physics.Shape {
	half := float64(size) / b.cfg.SizeDivisor
	if b.cfg.Shape == "box" {
		return physics.Box(half, half)
	}
	return physics.Circle(half)
}

func (b *Biggest) Update(*engine.Session) {}

// Ground returns the handle of the ground edge
func (b *Biggest) Ground() physics.BodyHandle {
	return b.ground
}
