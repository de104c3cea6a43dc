package physics

import (
	"github.com/ByteArena/box2d"

	"github.com/lixenwraith/survival-arena/core"
)

// Outline is a world-space shape description for debug drawing
// Circles use Center/Radius; boxes and edges use Vertices (closed for boxes)
type Outline struct {
	Body     BodyHandle
	Owner    core.Entity
	Kind     BodyKind
	Shape    ShapeType
	Center   Vec2
	Radius   float64
	Vertices []Vec2
}

// ForEachOutline calls fn for every fixture of every body, transformed to world space
// The Vertices slice is reused between calls; copy it to retain
func (w *World) ForEachOutline(fn func(Outline)) {
	var verts []Vec2
	for body := w.b2.GetBodyList(); body != nil; body = body.GetNext() {
		tag := tagOf(body)
		xf := body.GetTransform()
		kind := kindFromB2(body.GetType())

		for f := body.GetFixtureList(); f != nil; f = f.GetNext() {
			o := Outline{Body: tag.handle, Owner: tag.owner, Kind: kind}
			verts = verts[:0]

			switch f.GetType() {
			case box2d.B2Shape_Type.E_circle:
				circle := f.GetShape().(*box2d.B2CircleShape)
				o.Shape = ShapeCircle
				o.Center = fromB2(box2d.B2TransformVec2Mul(xf, circle.M_p))
				o.Radius = circle.M_radius

			case box2d.B2Shape_Type.E_polygon:
				poly := f.GetShape().(*box2d.B2PolygonShape)
				o.Shape = ShapeBox
				for i := 0; i < poly.M_count; i++ {
					verts = append(verts, fromB2(box2d.B2TransformVec2Mul(xf, poly.M_vertices[i])))
				}
				o.Center = fromB2(body.GetPosition())

			case box2d.B2Shape_Type.E_edge:
				edge := f.GetShape().(*box2d.B2EdgeShape)
				o.Shape = ShapeEdge
				verts = append(verts,
					fromB2(box2d.B2TransformVec2Mul(xf, edge.M_vertex1)),
					fromB2(box2d.B2TransformVec2Mul(xf, edge.M_vertex2)),
				)
				o.Center = verts[0].Add(verts[1]).Scale(0.5)

			default:
				// chains are never created through BodySpec
				continue
			}

			o.Vertices = verts
			fn(o)
		}
	}
}
