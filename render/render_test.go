package render

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/survival-arena/physics"
)

type cellKey struct{ x, y int }

// recordingCanvas stores written cells and flags writes outside its bounds
type recordingCanvas struct {
	w, h   int
	cells  map[cellKey]rune
	styles map[cellKey]tcell.Style
	oob    int
	ops    []string
}

func newRecordingCanvas(w, h int) *recordingCanvas {
	return &recordingCanvas{
		w:      w,
		h:      h,
		cells:  make(map[cellKey]rune),
		styles: make(map[cellKey]tcell.Style),
	}
}

func (c *recordingCanvas) Size() (int, int) { return c.w, c.h }

func (c *recordingCanvas) SetContent(x, y int, r rune, _ []rune, st tcell.Style) {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		c.oob++
		return
	}
	c.cells[cellKey{x, y}] = r
	c.styles[cellKey{x, y}] = st
}

func (c *recordingCanvas) Clear() {
	c.ops = append(c.ops, "clear")
	c.cells = make(map[cellKey]rune)
	c.styles = make(map[cellKey]tcell.Style)
}

func (c *recordingCanvas) Show() { c.ops = append(c.ops, "show") }

func (c *recordingCanvas) row(y int) string {
	var sb strings.Builder
	for x := 0; x < c.w; x++ {
		if r, ok := c.cells[cellKey{x, y}]; ok {
			sb.WriteRune(r)
		} else {
			sb.WriteRune(' ')
		}
	}
	return sb.String()
}

func (c *recordingCanvas) count(r rune) int {
	n := 0
	for _, v := range c.cells {
		if v == r {
			n++
		}
	}
	return n
}

// gridProjector maps one meter to one cell with world y up and row 0 at y=top
type gridProjector struct{ top float64 }

func (p gridProjector) WorldToCell(v physics.Vec2) (float64, float64) {
	return v.X, p.top - v.Y
}

func (p gridProjector) CellsPerMeter() (float64, float64) { return 1, 1 }

type orderLayer struct {
	name    string
	log     *[]string
	visible bool
}

func (l *orderLayer) Render(_ RenderContext, _ Canvas) { *l.log = append(*l.log, l.name) }
func (l *orderLayer) IsVisible() bool                  { return l.visible }

func TestOrchestratorRendersByPriorityThenRegistration(t *testing.T) {
	canvas := newRecordingCanvas(10, 10)
	o := NewRenderOrchestrator(canvas)
	var got []string

	o.Register(&orderLayer{name: "overlay", log: &got, visible: true}, PriorityOverlay)
	o.Register(&orderLayer{name: "world-a", log: &got, visible: true}, PriorityWorld)
	o.Register(&orderLayer{name: "hidden", log: &got, visible: false}, PriorityWorld)
	o.Register(&orderLayer{name: "world-b", log: &got, visible: true}, PriorityWorld)
	o.Register(&orderLayer{name: "bg", log: &got, visible: true}, PriorityBackground)

	o.RenderFrame(RenderContext{})

	want := []string{"bg", "world-a", "world-b", "overlay"}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("Expected order %v, got %v", want, got)
	}
	if strings.Join(canvas.ops, ",") != "clear,show" {
		t.Errorf("Expected clear then show, got %v", canvas.ops)
	}
}

func TestLineGlyph(t *testing.T) {
	tests := []struct {
		name   string
		dx, dy float64
		want   rune
	}{
		{"Horizontal", 5, 0, GlyphHorizontal},
		{"Shallow", 10, 2, GlyphHorizontal},
		{"Vertical", 0, 4, GlyphVertical},
		{"Steep", 1, -6, GlyphVertical},
		{"Down right", 3, 3, GlyphFalling},
		{"Up left", -3, -3, GlyphFalling},
		{"Up right", 3, -3, GlyphRising},
		{"Down left", -3, 3, GlyphRising},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := lineGlyph(tt.dx, tt.dy); got != tt.want {
				t.Errorf("lineGlyph(%v,%v) = %q, want %q", tt.dx, tt.dy, got, tt.want)
			}
		})
	}
}

func TestWorldLayerDrawsEdgeAsHorizontalLine(t *testing.T) {
	w := physics.NewWorld(physics.V(0, 0))
	w.CreateBody(physics.BodySpec{
		Kind:  physics.BodyStatic,
		Shape: physics.Edge(physics.V(1.5, 2.5), physics.V(8.5, 2.5)),
	})

	canvas := newRecordingCanvas(12, 10)
	NewWorldLayer().Render(RenderContext{World: w, Projector: gridProjector{top: 10}}, canvas)

	// y=2.5 maps to row 7.5
	if got := canvas.row(7); got != " --------   " {
		t.Errorf("Unexpected edge row %q", got)
	}
	if canvas.oob != 0 {
		t.Errorf("Expected no out-of-bounds writes, got %d", canvas.oob)
	}
}

func TestWorldLayerDrawsCircles(t *testing.T) {
	w := physics.NewWorld(physics.V(0, 0))
	w.CreateBody(physics.BodySpec{Kind: physics.BodyStatic, Position: physics.V(10.5, 10.5), Shape: physics.Circle(4)})
	w.CreateBody(physics.BodySpec{Kind: physics.BodyStatic, Position: physics.V(2.5, 2.5), Shape: physics.Circle(0.2)})

	canvas := newRecordingCanvas(20, 20)
	NewWorldLayer().Render(RenderContext{World: w, Projector: gridProjector{top: 20}}, canvas)

	if canvas.count(GlyphDot) != 1 {
		t.Errorf("Expected one dot for the small circle, got %d", canvas.count(GlyphDot))
	}
	if r := canvas.cells[cellKey{2, 17}]; r != GlyphDot {
		t.Errorf("Expected dot at (2,17), got %q", r)
	}
	if canvas.count(GlyphRing) < 12 {
		t.Errorf("Expected a ring of at least 12 cells, got %d", canvas.count(GlyphRing))
	}
	// rightmost and leftmost ring points
	if canvas.cells[cellKey{14, 9}] != GlyphRing || canvas.cells[cellKey{6, 9}] != GlyphRing {
		t.Errorf("Expected ring at columns 6 and 14 on row 9")
	}
	if _, ok := canvas.cells[cellKey{10, 9}]; ok {
		t.Errorf("Expected outline only, center cell was written")
	}
}

func TestWorldLayerClipsOffscreenShapes(t *testing.T) {
	w := physics.NewWorld(physics.V(0, 0))
	w.CreateBody(physics.BodySpec{Kind: physics.BodyStatic, Position: physics.V(-3, 5), Shape: physics.Box(6, 6)})
	w.CreateBody(physics.BodySpec{Kind: physics.BodyStatic, Shape: physics.Edge(physics.V(-50, -50), physics.V(50, 50))})

	canvas := newRecordingCanvas(8, 8)
	NewWorldLayer().Render(RenderContext{World: w, Projector: gridProjector{top: 8}}, canvas)

	if canvas.oob != 0 {
		t.Errorf("Expected clipping, got %d out-of-bounds writes", canvas.oob)
	}
	if len(canvas.cells) == 0 {
		t.Errorf("Expected visible parts to be drawn")
	}
}

func TestWorldLayerUsesStyleFunc(t *testing.T) {
	w := physics.NewWorld(physics.V(0, 0))
	w.CreateBody(physics.BodySpec{Kind: physics.BodyStatic, Position: physics.V(2.5, 2.5), Shape: physics.Circle(0.1)})

	want := tcell.StyleDefault.Foreground(tcell.ColorRed)
	canvas := newRecordingCanvas(5, 5)
	NewWorldLayer().Render(RenderContext{
		World:     w,
		Projector: gridProjector{top: 5},
		Style:     func(physics.Outline) tcell.Style { return want },
	}, canvas)

	if st := canvas.styles[cellKey{2, 2}]; st != want {
		t.Errorf("Expected style from Style func")
	}
}

func TestOverlayDrawsPanelAndHelp(t *testing.T) {
	canvas := newRecordingCanvas(60, 20)
	NewOverlayLayer().Render(RenderContext{Panel: Panel{
		Title: "biggest",
		Lines: []string{"entities 3", "fps 60.0"},
		Help:  "click spawn  q quit",
	}}, canvas)

	if canvas.cells[cellKey{0, 0}] != '┌' || canvas.cells[cellKey{0, 3}] != '└' {
		t.Errorf("Expected border corners, got %q and %q", canvas.cells[cellKey{0, 0}], canvas.cells[cellKey{0, 3}])
	}
	if !strings.Contains(canvas.row(0), "biggest") {
		t.Errorf("Expected title in top border, got %q", canvas.row(0))
	}
	if !strings.Contains(canvas.row(1), "entities 3") || !strings.Contains(canvas.row(2), "fps 60.0") {
		t.Errorf("Expected panel lines, got %q / %q", canvas.row(1), canvas.row(2))
	}
	if !strings.HasPrefix(canvas.row(19), "click spawn  q quit") {
		t.Errorf("Expected help on last row, got %q", canvas.row(19))
	}
}

func TestOverlayFitsNarrowCanvas(t *testing.T) {
	canvas := newRecordingCanvas(12, 4)
	NewOverlayLayer().Render(RenderContext{Panel: Panel{
		Title: "a very long title",
		Lines: []string{"one long line of text", "two", "three", "four"},
		Help:  "help text wider than the canvas",
	}}, canvas)

	if canvas.oob != 0 {
		t.Errorf("Expected no out-of-bounds writes, got %d", canvas.oob)
	}
}

func TestOverlayToggle(t *testing.T) {
	l := NewOverlayLayer()
	l.Toggle()
	if l.IsVisible() {
		t.Errorf("Expected hidden after toggle")
	}
}

func TestPaletteStyles(t *testing.T) {
	p := NewPalette(4096)

	if p.Style(physics.BodyDynamic, 10, true) != p.marked {
		t.Errorf("Expected marked style for marked body")
	}
	if p.Style(physics.BodyStatic, 10, false) != p.Static() {
		t.Errorf("Expected static style for static body")
	}
	if p.Color(1) == p.Color(4096) {
		t.Errorf("Expected different colors at the ends of the size range")
	}
	if p.Color(1<<20) != p.Color(4096) {
		t.Errorf("Expected colors to saturate past maxSize")
	}
}
