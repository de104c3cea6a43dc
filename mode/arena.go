package mode

import (
	"math"

	"github.com/lixenwraith/survival-arena/collision"
	"github.com/lixenwraith/survival-arena/config"
	"github.com/lixenwraith/survival-arena/core"
	"github.com/lixenwraith/survival-arena/engine"
	"github.com/lixenwraith/survival-arena/input"
	"github.com/lixenwraith/survival-arena/physics"
)

// arenaMargin extends the cull bounds past the walls so a ball is removed only once it is clearly out
const arenaMargin = 4.0

// paddle is a static entity moved by keys
type paddle struct {
	entity core.Entity
	x, y   float64
	shift  float64
}

// Arena is a two-paddle field; touching balls are removed together in the same frame
type Arena struct {
	cfg   config.ArenaConfig
	title string

	left, right paddle
	launched    int
}

// NewArena creates the demo from its config section
func NewArena(cfg *config.Config) *Arena {
	return &Arena{
		cfg:   cfg.Arena,
		title: cfg.Window.TitleArena,
	}
}

func (a *Arena) Name() string { return "arena" }

func (a *Arena) Title() string { return a.title }

func (a *Arena) Help() string { return "click launch  w/s left  up/down right  c clear  m audio  q quit" }

func (a *Arena) Gravity() physics.Vec2 {
	return physics.V(a.cfg.Gravity[0], a.cfg.Gravity[1])
}

func (a *Arena) Bounds() physics.Bounds {
	return physics.Bounds{
		Min: physics.V(-a.cfg.HalfWidth-arenaMargin, a.cfg.Floor-arenaMargin),
		Max: physics.V(a.cfg.HalfWidth+arenaMargin, a.cfg.Ceiling+arenaMargin),
	}
}

func (a *Arena) Policy() collision.Policy { return collision.MutualDestruction{} }

func (a *Arena) center() physics.Vec2 {
	return physics.V(0, (a.cfg.Floor+a.cfg.Ceiling)/2)
}

// Setup creates the unowned top and bottom walls and the two paddle entities
func (a *Arena) Setup(s *engine.Session) error {
	hw := a.cfg.HalfWidth
	for _, y := range []float64{a.cfg.Floor, a.cfg.Ceiling} {
		s.World().CreateBody(physics.BodySpec{
			Kind:     physics.BodyStatic,
			Shape:    physics.Edge(physics.V(-hw, y), physics.V(hw, y)),
			Material: physics.Wall,
		})
	}

	mid := a.center().Y
	var err error
	if a.left, err = a.newPaddle(s, -a.cfg.PaddleX, mid); err != nil {
		return err
	}
	if a.right, err = a.newPaddle(s, a.cfg.PaddleX, mid); err != nil {
		return err
	}
	return nil
}

func (a *Arena) newPaddle(s *engine.Session, x, y float64) (paddle, error) {
	e, err := s.Spawn(engine.SpawnParams{
		Position: physics.V(x, y),
		Size:     1,
		Kind:     physics.BodyStatic,
		Shape:    physics.Box(a.cfg.PaddleHalfWidth, a.cfg.PaddleHalfHeight),
		Material: physics.Wall,
	})
	if err != nil {
		return paddle{}, err
	}
	return paddle{entity: e, x: x, y: y}, nil
}

// OnKey queues paddle moves; they are applied before the next step
func (a *Arena) OnKey(k input.Key) {
	step := a.cfg.PaddleStep
	switch k.Intent {
	case input.IntentLeftPaddleUp:
		a.left.shift += step
	case input.IntentLeftPaddleDown:
		a.left.shift -= step
	case input.IntentRightPaddleUp:
		a.right.shift += step
	case input.IntentRightPaddleDown:
		a.right.shift -= step
	}
}

func (a *Arena) OnPointerMove(physics.Vec2) {}

// Update moves paddles by their queued shift, kept between the walls
func (a *Arena) Update(s *engine.Session) {
	a.movePaddle(s, &a.left)
	a.movePaddle(s, &a.right)
}

func (a *Arena) movePaddle(s *engine.Session, p *paddle) {
	if p.shift == 0 {
		return
	}
	lo := a.cfg.Floor + a.cfg.PaddleHalfHeight
	hi := a.cfg.Ceiling - a.cfg.PaddleHalfHeight
	p.y = math.Max(lo, math.Min(hi, p.y+p.shift))
	p.shift = 0

	c, ok := s.Entities().Get(p.entity)
	if !ok {
		return
	}
	s.World().SetTransform(c.Body, physics.V(p.x, p.y), 0)
}

// PaddleY returns the current center height of the left and right paddles
func (a *Arena) PaddleY() (left, right float64) {
	return a.left.y, a.right.y
}

// Spawn launches a ball from the clicked point, kept inside the field, toward the center
func (a *Arena) Spawn(s *engine.Session, req input.SpawnRequest) error {
	r := a.cfg.BallRadius
	pos := physics.V(
		math.Max(-a.cfg.PaddleX+r, math.Min(a.cfg.PaddleX-r, req.Position.X)),
		math.Max(a.cfg.Floor+r, math.Min(a.cfg.Ceiling-r, req.Position.Y)),
	)

	dir := a.center().Sub(pos)
	if dir.Len() < r {
		// from the center, alternate serves left and right
		dir = physics.V(1, 0)
		if a.launched%2 == 1 {
			dir = physics.V(-1, 0)
		}
	}
	a.launched++

	_, err := s.Spawn(engine.SpawnParams{
		Position: pos,
		Velocity: dir.Scale(a.cfg.BallSpeed / dir.Len()),
		Size:     req.Size,
		Kind:     physics.BodyDynamic,
		Shape:    physics.Circle(r),
		Material: physics.Material{Density: a.cfg.BallDensity, Restitution: 1},
		Bullet:   true,
	})
	return err
}
