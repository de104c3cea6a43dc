package physics

// Bounds is an axis-aligned world rectangle
type Bounds struct {
	Min, Max Vec2
}

// Contains reports whether p lies inside the rectangle, edges included
func (b Bounds) Contains(p Vec2) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X && p.Y >= b.Min.Y && p.Y <= b.Max.Y
}

// Clamp moves p onto the nearest point inside the rectangle
// Returns the clamped point and whether any axis was adjusted
func (b Bounds) Clamp(p Vec2) (Vec2, bool) {
	clamped := false
	if p.X < b.Min.X {
		p.X = b.Min.X
		clamped = true
	} else if p.X > b.Max.X {
		p.X = b.Max.X
		clamped = true
	}
	if p.Y < b.Min.Y {
		p.Y = b.Min.Y
		clamped = true
	} else if p.Y > b.Max.Y {
		p.Y = b.Max.Y
		clamped = true
	}
	return p, clamped
}
