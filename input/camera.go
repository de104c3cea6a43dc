package input

import (
	"github.com/lixenwraith/survival-arena/constants"
	"github.com/lixenwraith/survival-arena/physics"
)

// Camera maps between terminal cells, virtual pixels and world meters
// The projection is the Box2D testbed camera over a viewport of cols*8 x rows*16 virtual pixels
type Camera struct {
	Center physics.Vec2
	Zoom   float64
	Extent float64

	cols, rows int
}

// NewCamera creates a camera for a terminal of cols x rows cells
func NewCamera(cols, rows int) *Camera {
	c := &Camera{
		Center: physics.V(constants.CameraCenterX, constants.CameraCenterY),
		Zoom:   constants.CameraZoom,
		Extent: constants.CameraExtent,
	}
	c.Resize(cols, rows)
	return c
}

// Resize updates the viewport after a terminal resize
func (c *Camera) Resize(cols, rows int) {
	c.cols = max(cols, 1)
	c.rows = max(rows, 1)
}

// Cells returns the viewport size in cells
func (c *Camera) Cells() (cols, rows int) {
	return c.cols, c.rows
}

// Viewport returns the viewport size in virtual pixels
func (c *Camera) Viewport() (width, height float64) {
	return float64(c.cols * constants.CellPixelWidth), float64(c.rows * constants.CellPixelHeight)
}

// CellToPixel returns the virtual pixel at the center of a cell
func (c *Camera) CellToPixel(col, row int) physics.Vec2 {
	return physics.V(
		(float64(col)+0.5)*constants.CellPixelWidth,
		(float64(row)+0.5)*constants.CellPixelHeight,
	)
}

// extents returns the world-space corners of the view
func (c *Camera) extents() (lower, upper physics.Vec2) {
	w, h := c.Viewport()
	ratio := w / h
	ext := physics.V(ratio*c.Extent, c.Extent).Scale(c.Zoom)
	return c.Center.Sub(ext), c.Center.Add(ext)
}

// ConvertScreenToWorld maps a virtual pixel (origin top-left, y down) to world meters (y up)
func (c *Camera) ConvertScreenToWorld(ps physics.Vec2) physics.Vec2 {
	w, h := c.Viewport()
	u := ps.X / w
	v := (h - ps.Y) / h

	lower, upper := c.extents()
	return physics.V(
		(1-u)*lower.X+u*upper.X,
		(1-v)*lower.Y+v*upper.Y,
	)
}

// ConvertWorldToScreen is the inverse of ConvertScreenToWorld
func (c *Camera) ConvertWorldToScreen(pw physics.Vec2) physics.Vec2 {
	w, h := c.Viewport()
	lower, upper := c.extents()

	u := (pw.X - lower.X) / (upper.X - lower.X)
	v := (pw.Y - lower.Y) / (upper.Y - lower.Y)
	return physics.V(u*w, (1-v)*h)
}

// CellToWorld returns the world point at the center of a cell
func (c *Camera) CellToWorld(col, row int) physics.Vec2 {
	return c.ConvertScreenToWorld(c.CellToPixel(col, row))
}

// WorldToCell returns fractional cell coordinates of a world point
func (c *Camera) WorldToCell(pw physics.Vec2) (float64, float64) {
	ps := c.ConvertWorldToScreen(pw)
	return ps.X / constants.CellPixelWidth, ps.Y / constants.CellPixelHeight
}

// CellsPerMeter returns the horizontal and vertical scale of the projection
func (c *Camera) CellsPerMeter() (float64, float64) {
	lower, upper := c.extents()
	return float64(c.cols) / (upper.X - lower.X), float64(c.rows) / (upper.Y - lower.Y)
}
