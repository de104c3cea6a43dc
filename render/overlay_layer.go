package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/survival-arena/constants"
)

// OverlayLayer draws the stats panel in the top-left corner and the help line on the last row
type OverlayLayer struct {
	visible bool
	border  tcell.Style
	text    tcell.Style
	title   tcell.Style
}

// NewOverlayLayer creates a visible overlay
func NewOverlayLayer() *OverlayLayer {
	return &OverlayLayer{
		visible: true,
		border:  tcell.StyleDefault.Foreground(tcell.ColorGray),
		text:    tcell.StyleDefault.Foreground(tcell.ColorSilver),
		title:   tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true),
	}
}

// IsVisible implements VisibilityToggle
func (l *OverlayLayer) IsVisible() bool {
	return l.visible
}

// Toggle flips visibility
func (l *OverlayLayer) Toggle() {
	l.visible = !l.visible
}

// Render implements Layer
func (l *OverlayLayer) Render(ctx RenderContext, c Canvas) {
	w, h := c.Size()
	if w < 4 || h < 3 {
		return
	}
	p := ctx.Panel

	inner := runewidth.StringWidth(p.Title)
	for _, line := range p.Lines {
		inner = max(inner, runewidth.StringWidth(line))
	}
	inner = max(inner+2*constants.OverlayPadding, constants.OverlayMinWidth)
	inner = min(inner, w-2)
	height := min(len(p.Lines)+2, h-1)

	cc := newClip(c)
	l.frame(cc, inner+2, height)

	textWidth := inner - 2*constants.OverlayPadding
	x := 1 + constants.OverlayPadding
	if p.Title != "" {
		l.text1(cc, x, 0, " "+runewidth.Truncate(p.Title, textWidth-2, "…")+" ", l.title)
	}
	for i, line := range p.Lines {
		if 1+i >= height-1 {
			break
		}
		l.text1(cc, x, 1+i, runewidth.Truncate(line, textWidth, "…"), l.text)
	}

	if p.Help != "" {
		l.text1(cc, 0, h-1, runewidth.Truncate(p.Help, w, "…"), l.border)
	}
}

// frame draws a box-drawing border of the given outer size at the origin
func (l *OverlayLayer) frame(cc clipCanvas, width, height int) {
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			r := ' '
			switch {
			case y == 0 && x == 0:
				r = '┌'
			case y == 0 && x == width-1:
				r = '┐'
			case y == height-1 && x == 0:
				r = '└'
			case y == height-1 && x == width-1:
				r = '┘'
			case y == 0 || y == height-1:
				r = '─'
			case x == 0 || x == width-1:
				r = '│'
			}
			cc.plot(x, y, r, l.border)
		}
	}
}

// text1 writes a single line advancing by display width
func (l *OverlayLayer) text1(cc clipCanvas, x, y int, s string, st tcell.Style) {
	for _, r := range s {
		cc.plot(x, y, r, st)
		x += max(runewidth.RuneWidth(r), 1)
	}
}
