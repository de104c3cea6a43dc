package physics

import (
	"github.com/ByteArena/box2d"

	"github.com/lixenwraith/survival-arena/core"
)

// BodyHandle identifies a body owned by a World, zero is never issued
type BodyHandle uint32

// BodyKind mirrors the box2d body types
type BodyKind uint8

const (
	BodyStatic BodyKind = iota
	BodyKinematic
	BodyDynamic
)

func (k BodyKind) String() string {
	switch k {
	case BodyStatic:
		return "static"
	case BodyKinematic:
		return "kinematic"
	case BodyDynamic:
		return "dynamic"
	default:
		return "unknown"
	}
}

func (k BodyKind) b2() uint8 {
	switch k {
	case BodyKinematic:
		return box2d.B2BodyType.B2_kinematicBody
	case BodyDynamic:
		return box2d.B2BodyType.B2_dynamicBody
	default:
		return box2d.B2BodyType.B2_staticBody
	}
}

func kindFromB2(t uint8) BodyKind {
	switch t {
	case box2d.B2BodyType.B2_kinematicBody:
		return BodyKinematic
	case box2d.B2BodyType.B2_dynamicBody:
		return BodyDynamic
	default:
		return BodyStatic
	}
}

// ShapeType selects the single fixture shape of a body
type ShapeType uint8

const (
	ShapeCircle ShapeType = iota
	ShapeBox
	ShapeEdge
)

func (s ShapeType) String() string {
	switch s {
	case ShapeCircle:
		return "circle"
	case ShapeBox:
		return "box"
	case ShapeEdge:
		return "edge"
	default:
		return "unknown"
	}
}

// Shape describes the fixture geometry in body-local coordinates
// Circle uses Radius, Box uses HalfWidth/HalfHeight, Edge uses From/To
type Shape struct {
	Type       ShapeType
	Radius     float64
	HalfWidth  float64
	HalfHeight float64
	From, To   Vec2
}

// Circle returns a circle shape centered on the body origin
func Circle(radius float64) Shape {
	return Shape{Type: ShapeCircle, Radius: radius}
}

// Box returns an axis-aligned box centered on the body origin
func Box(halfWidth, halfHeight float64) Shape {
	return Shape{Type: ShapeBox, HalfWidth: halfWidth, HalfHeight: halfHeight}
}

// Edge returns a two-sided segment
func Edge(from, to Vec2) Shape {
	return Shape{Type: ShapeEdge, From: from, To: to}
}

// BodySpec is everything CreateBody needs to build a body with one fixture
type BodySpec struct {
	Kind     BodyKind
	Position Vec2
	Velocity Vec2
	Angle    float64
	Shape    Shape
	Material Material
	Bullet   bool

	// Owner is stored on the body as a non-owning back-reference
	Owner core.Entity
}

// bodyTag is the box2d user data of every body created through World
type bodyTag struct {
	handle BodyHandle
	owner  core.Entity
}

func (s Shape) fixtureShape() box2d.B2ShapeInterface {
	switch s.Type {
	case ShapeBox:
		poly := box2d.MakeB2PolygonShape()
		poly.SetAsBox(s.HalfWidth, s.HalfHeight)
		return &poly
	case ShapeEdge:
		edge := box2d.MakeB2EdgeShape()
		edge.Set(s.From.b2(), s.To.b2())
		return &edge
	default:
		circle := box2d.MakeB2CircleShape()
		circle.M_radius = s.Radius
		return &circle
	}
}
