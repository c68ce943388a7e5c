package layout

// Rect is a screen rectangle in cells. X and Y are the top-left corner.
// Width and Height are never negative once produced by this package.
type Rect struct {
	X, Y          int
	Width, Height int
}

// NewRect builds a Rect, clamping negative dimensions to zero.
func NewRect(x, y, width, height int) Rect {
	return Rect{X: x, Y: y, Width: max(width, 0), Height: max(height, 0)}
}

// Right returns the exclusive right edge.
func (r Rect) Right() int {
	return r.X + r.Width
}

// Bottom returns the exclusive bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.Height
}

// IsEmpty reports whether the rectangle covers no cells.
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Contains reports whether (x, y) lies inside the rectangle. Left and top
// edges are inclusive, right and bottom edges exclusive.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Inset shrinks the rectangle by the given edges, saturating at zero size.
func (r Rect) Inset(e Edges) Rect {
	return NewRect(
		r.X+e.Left,
		r.Y+e.Top,
		r.Width-e.Horizontal(),
		r.Height-e.Vertical(),
	)
}

// Transpose swaps the axes of the rectangle.
func (r Rect) Transpose() Rect {
	return Rect{X: r.Y, Y: r.X, Width: r.Height, Height: r.Width}
}

// Edges holds per-side cell counts, used for padding.
type Edges struct {
	Top, Right, Bottom, Left int
}

// EdgeAll returns Edges with the same value on every side.
func EdgeAll(n int) Edges {
	return Edges{Top: n, Right: n, Bottom: n, Left: n}
}

// EdgeTRBL returns Edges in top, right, bottom, left order.
func EdgeTRBL(top, right, bottom, left int) Edges {
	return Edges{Top: top, Right: right, Bottom: bottom, Left: left}
}

// Horizontal returns Left + Right.
func (e Edges) Horizontal() int {
	return e.Left + e.Right
}

// Vertical returns Top + Bottom.
func (e Edges) Vertical() int {
	return e.Top + e.Bottom
}
