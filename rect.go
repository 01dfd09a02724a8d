package subdiv2d

// Rect is an axis-aligned rectangle with inclusive-low, exclusive-high
// containment, matching Types.h's Rect_<int>.
type Rect struct {
	X, Y, Width, Height int32
}

// Contains reports whether pt falls within the rectangle:
// x <= pt.x < x+width and y <= pt.y < y+height.
func (r Rect) Contains(pt Point2f) bool {
	return float32(r.X) <= pt.X && pt.X < float32(r.X+r.Width) &&
		float32(r.Y) <= pt.Y && pt.Y < float32(r.Y+r.Height)
}

// Area returns width*height.
func (r Rect) Area() int32 {
	return r.Width * r.Height
}
