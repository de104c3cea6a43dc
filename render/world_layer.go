package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/survival-arena/physics"
)

// WorldLayer draws every fixture of the world as an outline
type WorldLayer struct {
	visible bool
}

// NewWorldLayer creates a visible world layer
func NewWorldLayer() *WorldLayer {
	return &WorldLayer{visible: true}
}

// IsVisible implements VisibilityToggle
func (l *WorldLayer) IsVisible() bool {
	return l.visible
}

// SetVisible toggles the layer
func (l *WorldLayer) SetVisible(v bool) {
	l.visible = v
}

// Render implements Layer
func (l *WorldLayer) Render(ctx RenderContext, c Canvas) {
	if ctx.World == nil || ctx.Projector == nil {
		return
	}
	cc := newClip(c)
	sx, sy := ctx.Projector.CellsPerMeter()

	ctx.World.ForEachOutline(func(o physics.Outline) {
		st := tcell.StyleDefault
		if ctx.Style != nil {
			st = ctx.Style(o)
		}

		switch o.Shape {
		case physics.ShapeCircle:
			cx, cy := ctx.Projector.WorldToCell(o.Center)
			cc.ellipse(cx, cy, o.Radius*sx, o.Radius*sy, st)

		case physics.ShapeBox:
			n := len(o.Vertices)
			for i := 0; i < n; i++ {
				l.segment(cc, ctx.Projector, o.Vertices[i], o.Vertices[(i+1)%n], st)
			}

		case physics.ShapeEdge:
			if len(o.Vertices) == 2 {
				l.segment(cc, ctx.Projector, o.Vertices[0], o.Vertices[1], st)
			}
		}
	})
}

func (l *WorldLayer) segment(cc clipCanvas, p Projector, a, b physics.Vec2, st tcell.Style) {
	x0, y0 := p.WorldToCell(a)
	x1, y1 := p.WorldToCell(b)
	cc.line(x0, y0, x1, y1, st)
}
