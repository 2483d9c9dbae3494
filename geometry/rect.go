package geometry

// Rect is an axis-aligned rectangle in the level plane. X is the column (horizontal)
// axis and Y is the row axis, growing downward.
type Rect struct {
	X, Y, W, H float32
}

// Right returns the column just past the rectangle.
func (r Rect) Right() float32 {
	return r.X + r.W
}

// Bottom returns the row just past the rectangle.
func (r Rect) Bottom() float32 {
	return r.Y + r.H
}

// Empty returns true if the rectangle has no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Move returns the rectangle translated by the offsets passed.
func (r Rect) Move(dx, dy float32) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// Intersects returns true if the two rectangles overlap. Rectangles that only share
// an edge do not intersect.
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.Right() && o.X < r.Right() && r.Y < o.Bottom() && o.Y < r.Bottom()
}

// Contains returns true if o lies completely inside r.
func (r Rect) Contains(o Rect) bool {
	return o.X >= r.X && o.Y >= r.Y && o.Right() <= r.Right() && o.Bottom() <= r.Bottom()
}

// Union returns the smallest rectangle containing both r and o.
func (r Rect) Union(o Rect) Rect {
	x0, y0 := min(r.X, o.X), min(r.Y, o.Y)
	x1, y1 := max(r.Right(), o.Right()), max(r.Bottom(), o.Bottom())
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}
