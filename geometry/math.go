// Package geometry contains the primitive types and scalar helpers used
// throughout the tether connector renderer.
package geometry

// Point represents an absolute 2D coordinate on the canvas.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Add returns the point translated by dx, dy.
func (p Point) Add(dx, dy float64) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Rect represents an axis-aligned rectangle by its four edges.
// Invariant: Right >= Left and Bottom >= Top.
type Rect struct {
	Top    float64 `json:"top"`
	Left   float64 `json:"left"`
	Right  float64 `json:"right"`
	Bottom float64 `json:"bottom"`
}

// Width returns the horizontal extent of the rectangle.
func (r Rect) Width() float64 {
	return r.Right - r.Left
}

// Height returns the vertical extent of the rectangle.
func (r Rect) Height() float64 {
	return r.Bottom - r.Top
}

// MidX returns the horizontal midpoint of the rectangle.
func (r Rect) MidX() float64 {
	return (r.Left + r.Right) / 2
}

// MidY returns the vertical midpoint of the rectangle.
func (r Rect) MidY() float64 {
	return (r.Top + r.Bottom) / 2
}

// Contains checks if a point is inside the rectangle.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Left && p.X <= r.Right &&
		p.Y >= r.Top && p.Y <= r.Bottom
}

// Union returns the smallest rectangle covering both r and o.
func (r Rect) Union(o Rect) Rect {
	return Rect{
		Top:    Min(r.Top, o.Top),
		Left:   Min(r.Left, o.Left),
		Right:  Max(r.Right, o.Right),
		Bottom: Max(r.Bottom, o.Bottom),
	}
}

// Matrix carries the translation components of a 2D transform matrix.
// M41 and M42 are the x and y offsets, named after their positions in the
// 4x4 homogeneous form.
type Matrix struct {
	M41 float64 `json:"m41"`
	M42 float64 `json:"m42"`
}

// Abs returns the absolute value of x.
func Abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

// Min returns the minimum of two values.
func Min(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

// Max returns the maximum of two values.
func Max(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

// Clamp limits x to the range [lo, hi].
func Clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// Sign returns -1, 0 or 1 depending on the sign of x.
func Sign(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}
