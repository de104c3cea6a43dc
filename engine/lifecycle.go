package engine

import (
	"errors"
	"fmt"
	"log"

	"github.com/lixenwraith/survival-arena/constants"
	"github.com/lixenwraith/survival-arena/core"
	"github.com/lixenwraith/survival-arena/physics"
)

// ErrInvalidSpawn is returned for spawn requests with NaN or infinite coordinates
var ErrInvalidSpawn = errors.New("invalid spawn coordinates")

// Character is the game-level record behind an entity
// It exclusively owns Body; the body is destroyed exactly once, in Sweep
type Character struct {
	Size   int
	Body   physics.BodyHandle
	Kind   physics.BodyKind
	Marked bool
}

// SpawnParams describes a new entity and its body
type SpawnParams struct {
	Position physics.Vec2
	Velocity physics.Vec2
	Size     int
	Kind     physics.BodyKind
	Shape    physics.Shape
	Material physics.Material
	Bullet   bool
}

// RemoveFunc observes an entity after its body was destroyed and before its slot is reused
type RemoveFunc func(e core.Entity, c Character)

// Lifecycle creates entities backed by physics bodies and removes them in deferred sweeps
type Lifecycle struct {
	world    *physics.World
	store    *Store[Character]
	bounds   physics.Bounds
	marked   []core.Entity
	onRemove RemoveFunc
}

// NewLifecycle binds a lifecycle manager to world; spawns are clamped into bounds
func NewLifecycle(world *physics.World, bounds physics.Bounds) *Lifecycle {
	return &Lifecycle{
		world:  world,
		store:  NewStore[Character](constants.MaxEntities),
		bounds: bounds,
		marked: make([]core.Entity, 0, 16),
	}
}

// SetRemoveHook registers the observer called for every swept entity
func (l *Lifecycle) SetRemoveHook(fn RemoveFunc) {
	l.onRemove = fn
}

// ClampSize limits a requested size to the supported range
func ClampSize(size int) int {
	if size < constants.MinSize {
		return constants.MinSize
	}
	if size > constants.MaxSize {
		return constants.MaxSize
	}
	return size
}

// Spawn registers a new entity and creates its body
// Finite coordinates outside the bounds are clamped; NaN/Inf is rejected without side effects
func (l *Lifecycle) Spawn(p SpawnParams) (core.Entity, error) {
	if !p.Position.Finite() || !p.Velocity.Finite() {
		return core.NoEntity, fmt.Errorf("spawn at %+v: %w", p.Position, ErrInvalidSpawn)
	}

	pos, clamped := l.bounds.Clamp(p.Position)
	if clamped {
		log.Printf("[lifecycle] spawn clamped from (%.2f,%.2f) to (%.2f,%.2f)",
			p.Position.X, p.Position.Y, pos.X, pos.Y)
	}

	e, err := l.store.Insert(Character{
		Size: ClampSize(p.Size),
		Kind: p.Kind,
	})
	if err != nil {
		return core.NoEntity, err
	}

	body := l.world.CreateBody(physics.BodySpec{
		Kind:     p.Kind,
		Position: pos,
		Velocity: p.Velocity,
		Shape:    p.Shape,
		Material: p.Material,
		Bullet:   p.Bullet,
		Owner:    e,
	})

	c, _ := l.store.Get(e)
	c.Body = body
	return e, nil
}

// Get returns a copy of the character behind a live handle
func (l *Lifecycle) Get(e core.Entity) (Character, bool) {
	c, ok := l.store.Get(e)
	if !ok {
		return Character{}, false
	}
	return *c, true
}

// Size implements collision.Roster
func (l *Lifecycle) Size(e core.Entity) (int, bool) {
	c, ok := l.store.Get(e)
	if !ok {
		return 0, false
	}
	return c.Size, true
}

// Dynamic implements collision.Roster
func (l *Lifecycle) Dynamic(e core.Entity) bool {
	c, ok := l.store.Get(e)
	return ok && c.Kind == physics.BodyDynamic
}

// Mark sets the deletion flag of a live entity; the flag is never cleared
// Safe to call from contact callbacks, nothing is destroyed here
func (l *Lifecycle) Mark(e core.Entity) {
	c, ok := l.store.Get(e)
	if !ok || c.Marked {
		return
	}
	c.Marked = true
	l.marked = append(l.marked, e)
}

// Marked reports whether the entity is waiting for the next sweep
func (l *Lifecycle) Marked(e core.Entity) bool {
	c, ok := l.store.Get(e)
	return ok && c.Marked
}

// Pending returns the number of entities waiting for the next sweep
func (l *Lifecycle) Pending() int {
	return len(l.marked)
}

// Sweep destroys the body and then frees the slot of every marked entity
// Returns the number removed; a second call without new marks removes nothing
func (l *Lifecycle) Sweep() int {
	if l.world.Stepping() {
		panic("engine: Sweep during physics step")
	}
	if len(l.marked) == 0 {
		return 0
	}

	removed := 0
	for _, e := range l.marked {
		c, ok := l.store.Get(e)
		if !ok {
			continue
		}
		snapshot := *c
		l.world.DestroyBody(snapshot.Body)
		l.store.Remove(e)
		removed++

		if l.onRemove != nil {
			l.onRemove(e, snapshot)
		}
	}
	l.marked = l.marked[:0]
	return removed
}

// Cull marks dynamic entities whose body left bounds
func (l *Lifecycle) Cull(bounds physics.Bounds) int {
	culled := 0
	l.store.Each(func(e core.Entity, c *Character) {
		if c.Marked || c.Kind != physics.BodyDynamic {
			return
		}
		if bounds.Contains(l.world.Position(c.Body)) {
			return
		}
		c.Marked = true
		l.marked = append(l.marked, e)
		culled++
	})
	return culled
}

// Each visits every live entity in slot order
func (l *Lifecycle) Each(fn func(e core.Entity, c Character)) {
	l.store.Each(func(e core.Entity, c *Character) {
		fn(e, *c)
	})
}

// Len returns the number of live entities, marked ones included
func (l *Lifecycle) Len() int {
	return l.store.Len()
}

// Reset marks and sweeps every entity, used at session teardown
func (l *Lifecycle) Reset() int {
	for _, e := range l.store.Entities() {
		l.Mark(e)
	}
	return l.Sweep()
}
