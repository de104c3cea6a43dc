package render

import (
	"math"

	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/survival-arena/physics"
)

// Palette maps entity state to cell styles
// Dynamic bodies blend from cool to warm by log size; statics are grey; marked bodies are red
type Palette struct {
	small   colorful.Color
	large   colorful.Color
	maxSize int

	static tcell.Style
	marked tcell.Style
}

// NewPalette creates a palette whose warmest color is reached at maxSize
func NewPalette(maxSize int) *Palette {
	return &Palette{
		small:   colorful.Color{R: 0.35, G: 0.75, B: 1.0},
		large:   colorful.Color{R: 1.0, G: 0.6, B: 0.2},
		maxSize: max(maxSize, 2),
		static:  tcell.StyleDefault.Foreground(tcell.ColorGray),
		marked:  tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true),
	}
}

// Color returns the size color for a dynamic body
func (p *Palette) Color(size int) tcell.Color {
	t := 0.0
	if size > 1 {
		t = math.Log(float64(size)) / math.Log(float64(p.maxSize))
	}
	t = math.Max(0, math.Min(1, t))

	c := p.small.BlendHcl(p.large, t).Clamped()
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// Style returns the outline style for one body
func (p *Palette) Style(kind physics.BodyKind, size int, marked bool) tcell.Style {
	switch {
	case marked:
		return p.marked
	case kind != physics.BodyDynamic:
		return p.static
	default:
		return tcell.StyleDefault.Foreground(p.Color(size))
	}
}

// Static returns the style for bodies without an owning entity
func (p *Palette) Static() tcell.Style {
	return p.static
}
