package physics

import (
	"fmt"

	"github.com/ByteArena/box2d"

	"github.com/lixenwraith/survival-arena/core"
)

// World owns the rigid-body simulation and every body in it
// Not safe for concurrent use; the frame loop is the only caller
type World struct {
	b2       *box2d.B2World
	bodies   map[BodyHandle]*box2d.B2Body
	nextID   BodyHandle
	bridge   *contactBridge
	stepping bool
	steps    uint64
}

// NewWorld creates an empty world with the given gravity
func NewWorld(gravity Vec2) *World {
	b2 := box2d.MakeB2World(gravity.b2())
	w := &World{
		b2:     &b2,
		bodies: make(map[BodyHandle]*box2d.B2Body, 64),
		nextID: 1,
	}
	w.bridge = &contactBridge{}
	w.b2.SetContactListener(w.bridge)
	return w
}

// SetContactListener registers the single contact observer, nil removes it
// fn runs synchronously inside Step and must not create or destroy bodies
func (w *World) SetContactListener(fn ContactFunc) {
	w.bridge.fn = fn
}

// Step advances all bodies by exactly one interval of dt seconds
func (w *World) Step(dt float64, velocityIterations, positionIterations int) {
	if w.stepping {
		panic("physics: Step called re-entrantly")
	}
	w.stepping = true
	defer func() { w.stepping = false }()

	w.b2.Step(dt, velocityIterations, positionIterations)
	w.steps++
}

// Stepping reports whether a Step is in progress (contact callbacks are running)
func (w *World) Stepping() bool {
	return w.stepping
}

// Steps returns how many steps have completed
func (w *World) Steps() uint64 {
	return w.steps
}

// CreateBody builds a body with a single fixture and returns its handle
func (w *World) CreateBody(spec BodySpec) BodyHandle {
	if w.stepping {
		panic("physics: CreateBody during Step")
	}

	h := w.nextID
	w.nextID++

	bd := box2d.MakeB2BodyDef()
	bd.Type = spec.Kind.b2()
	bd.Position.Set(spec.Position.X, spec.Position.Y)
	bd.LinearVelocity.Set(spec.Velocity.X, spec.Velocity.Y)
	bd.Angle = spec.Angle
	bd.Bullet = spec.Bullet
	bd.UserData = bodyTag{handle: h, owner: spec.Owner}

	body := w.b2.CreateBody(&bd)

	fd := box2d.MakeB2FixtureDef()
	fd.Shape = spec.Shape.fixtureShape()
	fd.Density = spec.Material.Density
	fd.Friction = spec.Material.Friction
	fd.Restitution = spec.Material.Restitution
	body.CreateFixtureFromDef(&fd)

	w.bodies[h] = body
	return h
}

// DestroyBody removes the body and invalidates its handle
// Destroying an unknown handle or destroying during Step is a programming error and panics
func (w *World) DestroyBody(h BodyHandle) {
	if w.stepping {
		panic("physics: DestroyBody during Step")
	}
	body, ok := w.bodies[h]
	if !ok {
		panic(fmt.Sprintf("physics: DestroyBody on invalid handle %d", h))
	}
	w.b2.DestroyBody(body)
	delete(w.bodies, h)
}

// Alive reports whether the handle refers to a body in this world
func (w *World) Alive(h BodyHandle) bool {
	_, ok := w.bodies[h]
	return ok
}

// BodyCount returns the number of live bodies
func (w *World) BodyCount() int {
	return len(w.bodies)
}

// Position returns the body origin in world space
func (w *World) Position(h BodyHandle) Vec2 {
	return fromB2(w.mustBody(h).GetPosition())
}

// Velocity returns the linear velocity of the body
func (w *World) Velocity(h BodyHandle) Vec2 {
	return fromB2(w.mustBody(h).GetLinearVelocity())
}

// SetLinearVelocity overrides the body velocity
func (w *World) SetLinearVelocity(h BodyHandle, v Vec2) {
	w.mustBody(h).SetLinearVelocity(v.b2())
}

// SetTransform teleports the body, used for paddles driven by keys
func (w *World) SetTransform(h BodyHandle, p Vec2, angle float64) {
	if w.stepping {
		panic("physics: SetTransform during Step")
	}
	w.mustBody(h).SetTransform(p.b2(), angle)
}

// Kind returns the body type
func (w *World) Kind(h BodyHandle) BodyKind {
	return kindFromB2(w.mustBody(h).GetType())
}

// Owner returns the back-reference stored at creation
func (w *World) Owner(h BodyHandle) core.Entity {
	return tagOf(w.mustBody(h)).owner
}

func (w *World) mustBody(h BodyHandle) *box2d.B2Body {
	body, ok := w.bodies[h]
	if !ok {
		panic(fmt.Sprintf("physics: invalid body handle %d", h))
	}
	return body
}

func tagOf(body *box2d.B2Body) bodyTag {
	if tag, ok := body.GetUserData().(bodyTag); ok {
		return tag
	}
	return bodyTag{}
}
