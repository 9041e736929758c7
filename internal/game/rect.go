package game

// Rect is an axis-aligned rectangle with its origin at the top-left corner.
type Rect struct {
	X, Y float64
	W, H float64
}

// Overlaps reports whether the interiors of r and o intersect. Rectangles that
// only share an edge do not overlap.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.X+o.W &&
		r.X+r.W > o.X &&
		r.Y < o.Y+o.H &&
		r.Y+r.H > o.Y
}
