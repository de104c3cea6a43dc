package render

import (
	"math"

	"github.com/gdamore/tcell/v2"
)

// Outline glyphs
const (
	GlyphDot        = '•'
	GlyphRing       = 'o'
	GlyphHorizontal = '-'
	GlyphVertical   = '|'
	GlyphRising     = '/'
	GlyphFalling    = '\\'
)

// clipCanvas drops writes outside the canvas
type clipCanvas struct {
	c    Canvas
	w, h int
}

func newClip(c Canvas) clipCanvas {
	w, h := c.Size()
	return clipCanvas{c: c, w: w, h: h}
}

func (cc clipCanvas) plot(x, y int, r rune, st tcell.Style) {
	if x < 0 || y < 0 || x >= cc.w || y >= cc.h {
		return
	}
	cc.c.SetContent(x, y, r, nil, st)
}

// cell converts fractional cell coordinates to the containing cell
func cell(x, y float64) (int, int) {
	return int(math.Floor(x)), int(math.Floor(y))
}

// lineGlyph picks a glyph by slope in screen space (y grows downward)
func lineGlyph(dx, dy float64) rune {
	adx, ady := math.Abs(dx), math.Abs(dy)
	switch {
	case ady < adx*0.4:
		return GlyphHorizontal
	case adx < ady*0.4:
		return GlyphVertical
	case (dx > 0) == (dy > 0):
		return GlyphFalling
	default:
		return GlyphRising
	}
}

// line rasterizes a segment between fractional cell coordinates (Bresenham)
func (cc clipCanvas) line(x0f, y0f, x1f, y1f float64, st tcell.Style) {
	glyph := lineGlyph(x1f-x0f, y1f-y0f)
	x0, y0 := cell(x0f, y0f)
	x1, y1 := cell(x1f, y1f)

	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	for {
		cc.plot(x0, y0, glyph, st)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// ellipse rasterizes a circle outline whose radii differ per axis in cell space
func (cc clipCanvas) ellipse(cx, cy, rx, ry float64, st tcell.Style) {
	if rx < 0.75 && ry < 0.75 {
		x, y := cell(cx, cy)
		cc.plot(x, y, GlyphDot, st)
		return
	}

	steps := int(math.Ceil(2 * math.Pi * math.Max(rx, ry) * 1.5))
	if steps < 12 {
		steps = 12
	}
	for i := 0; i < steps; i++ {
		theta := 2 * math.Pi * float64(i) / float64(steps)
		x, y := cell(cx+rx*math.Cos(theta), cy-ry*math.Sin(theta))
		cc.plot(x, y, GlyphRing, st)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
