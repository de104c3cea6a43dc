package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/survival-arena/physics"
)

// Projector maps world meters to fractional terminal cells
type Projector interface {
	WorldToCell(p physics.Vec2) (float64, float64)
	CellsPerMeter() (float64, float64)
}

// Panel is the text shown by the overlay this frame
type Panel struct {
	Title string
	Lines []string
	Help  string
}

// RenderContext carries everything a frame needs; nothing is kept between frames
type RenderContext struct {
	Frame     uint64
	World     *physics.World
	Projector Projector
	Style     func(o physics.Outline) tcell.Style
	Panel     Panel
}
