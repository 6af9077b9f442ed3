package gamemath

// Rect is an axis-aligned rectangle. W and H are fixed for the lifetime of an
// entity; the edge setters move the rectangle rather than resize it.
type Rect struct {
	X, Y float64
	W, H float64
}

// NewRect creates a rectangle at (x, y) with the given size.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

func (r Rect) Left() float64    { return r.X }
func (r Rect) Right() float64   { return r.X + r.W }
func (r Rect) Top() float64     { return r.Y }
func (r Rect) Bottom() float64  { return r.Y + r.H }
func (r Rect) CenterX() float64 { return r.X + r.W*0.5 }
func (r Rect) CenterY() float64 { return r.Y + r.H*0.5 }

func (r *Rect) SetLeft(x float64)    { r.X = x }
func (r *Rect) SetRight(x float64)   { r.X = x - r.W }
func (r *Rect) SetTop(y float64)     { r.Y = y }
func (r *Rect) SetBottom(y float64)  { r.Y = y - r.H }
func (r *Rect) SetCenterX(x float64) { r.X = x - r.W*0.5 }
func (r *Rect) SetCenterY(y float64) { r.Y = y - r.H*0.5 }

// Overlaps reports whether r and o share any point. Rectangles that only
// touch along an edge overlap.
func (r Rect) Overlaps(o Rect) bool {
	if r.Right() < o.Left() || r.Bottom() < o.Top() ||
		r.Left() > o.Right() || r.Top() > o.Bottom() {
		return false
	}
	return true
}

// ContainsCenterOf reports whether the center point of o lies inside the
// closed bounds of r.
func (r Rect) ContainsCenterOf(o Rect) bool {
	return r.ContainsPoint(o.CenterX(), o.CenterY())
}

// ContainsPoint reports whether (x, y) lies inside the closed bounds of r.
func (r Rect) ContainsPoint(x, y float64) bool {
	return x >= r.Left() && x <= r.Right() && y >= r.Top() && y <= r.Bottom()
}

// Grow returns r grown by d on every side (shrunk when d is negative).
func (r Rect) Grow(d float64) Rect {
	return Rect{X: r.X - d, Y: r.Y - d, W: r.W + 2*d, H: r.H + 2*d}
}
