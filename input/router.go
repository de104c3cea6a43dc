package input

import "github.com/lixenwraith/survival-arena/physics"

// SpawnRequest is a pointer press converted to world space
type SpawnRequest struct {
	Position physics.Vec2
	Size     int
	Col, Row int
}

// Router converts pointer positions into spawn requests through the camera
type Router struct {
	camera *Camera
}

// NewRouter creates a router bound to camera
func NewRouter(camera *Camera) *Router {
	return &Router{camera: camera}
}

// Camera returns the bound camera
func (r *Router) Camera() *Camera {
	return r.camera
}

// OnPointerDown maps a pressed cell to a spawn request
// Size is the vertical virtual-pixel coordinate of the press plus one
func (r *Router) OnPointerDown(col, row int) SpawnRequest {
	ps := r.camera.CellToPixel(col, row)
	return SpawnRequest{
		Position: r.camera.ConvertScreenToWorld(ps),
		Size:     int(ps.Y) + 1,
		Col:      col,
		Row:      row,
	}
}

// PointerWorld maps a cell to world space without building a request
func (r *Router) PointerWorld(col, row int) physics.Vec2 {
	return r.camera.CellToWorld(col, row)
}

// Hooks are the observation points a demo may override
type Hooks interface {
	OnKey(k Key)
	OnPointerMove(world physics.Vec2)
}

// NopHooks ignores keys and pointer motion; embed to override selectively
type NopHooks struct{}

func (NopHooks) OnKey(Key) {}

func (NopHooks) OnPointerMove(physics.Vec2) {}
