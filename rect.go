package geom

import (
	"fmt"
	"math"
)

// Rect is an axis-aligned rectangle value. It is the type of every bounding
// box. The mutable shape is [Rectangle].
//
// Most methods assume X0 ≤ X1 and Y0 ≤ Y1; use [Rect.Abs] to normalize.
type Rect struct {
	X0, Y0 float64
	X1, Y1 float64
}

// NewRectFromPoints returns the rectangle spanned by two opposite corners,
// given in any order.
func NewRectFromPoints(p0, p1 Point) Rect {
	return Rect{p0.X, p0.Y, p1.X, p1.Y}.Abs()
}

func (r Rect) String() string {
	return fmt.Sprintf("Rect(%g, %g, %g, %g)", r.X0, r.Y0, r.X1, r.Y1)
}

// Abs returns r with its corners ordered so that width and height are
// non-negative.
func (r Rect) Abs() Rect {
	return Rect{min(r.X0, r.X1), min(r.Y0, r.Y1), max(r.X0, r.X1), max(r.Y0, r.Y1)}
}

// Width returns X1 − X0.
func (r Rect) Width() float64 { return r.X1 - r.X0 }

// Height returns Y1 − Y0.
func (r Rect) Height() float64 { return r.Y1 - r.Y0 }

func (r Rect) Area() float64 { return r.Width() * r.Height() }
func (r Rect) Center() Point { return Point{(r.X0 + r.X1) / 2, (r.Y0 + r.Y1) / 2} }
func (r Rect) IsEmpty() bool { return r.Area() == 0 }

// Contains reports whether pt lies inside r or on its boundary. A rectangle
// of zero width or height contains the points of the line or point it
// collapsed to.
func (r Rect) Contains(pt Point) bool {
	return r.X0 <= pt.X && pt.X <= r.X1 && r.Y0 <= pt.Y && pt.Y <= r.Y1
}

// ContainsRect reports whether o lies entirely within r.
func (r Rect) ContainsRect(o Rect) bool {
	return r.X0 <= o.X0 && o.X1 <= r.X1 && r.Y0 <= o.Y0 && o.Y1 <= r.Y1
}

// Overlaps reports whether r and o share at least one point, allowing for a
// gap of up to eps. Rectangles that merely touch overlap.
func (r Rect) Overlaps(o Rect, eps float64) bool {
	return r.X0 <= o.X1+eps && o.X0 <= r.X1+eps &&
		r.Y0 <= o.Y1+eps && o.Y0 <= r.Y1+eps
}

// Union returns the smallest rectangle enclosing r and o.
func (r Rect) Union(o Rect) Rect {
	return Rect{min(r.X0, o.X0), min(r.Y0, o.Y0), max(r.X1, o.X1), max(r.Y1, o.Y1)}
}

// UnionPoint returns the smallest rectangle enclosing r and pt. Starting from
// the zero-size rectangle at the first of a series of points, repeated calls
// yield the bounding box of the series.
func (r Rect) UnionPoint(pt Point) Rect {
	return Rect{min(r.X0, pt.X), min(r.Y0, pt.Y), max(r.X1, pt.X), max(r.Y1, pt.Y)}
}

// Intersect returns the intersection of r and o. Disjoint rectangles yield a
// rectangle of zero width or height.
func (r Rect) Intersect(o Rect) Rect {
	x0, y0 := max(r.X0, o.X0), max(r.Y0, o.Y0)
	x1, y1 := min(r.X1, o.X1), min(r.Y1, o.Y1)
	return Rect{x0, y0, max(x0, x1), max(y0, y1)}
}

// Inflate grows r by dx on the left and right and by dy at the top and
// bottom.
func (r Rect) Inflate(dx, dy float64) Rect {
	return Rect{r.X0 - dx, r.Y0 - dy, r.X1 + dx, r.Y1 + dy}
}

func (r Rect) Translate(v Vec2) Rect {
	return Rect{r.X0 + v.X, r.Y0 + v.Y, r.X1 + v.X, r.Y1 + v.Y}
}

// Corners returns the corners counterclockwise, starting at (X0, Y0).
func (r Rect) Corners() [4]Point {
	return [4]Point{{r.X0, r.Y0}, {r.X1, r.Y0}, {r.X1, r.Y1}, {r.X0, r.Y1}}
}

// Distance returns the distance between pt and the nearest point of r, which
// is zero if pt lies in r.
func (r Rect) Distance(pt Point) float64 {
	dx := max(r.X0-pt.X, 0, pt.X-r.X1)
	dy := max(r.Y0-pt.Y, 0, pt.Y-r.Y1)
	return math.Hypot(dx, dy)
}

// Transform returns the bounding box of r after applying aff.
func (r Rect) Transform(aff Affine) Rect {
	cs := r.Corners()
	first := cs[0].Transform(aff)
	out := Rect{first.X, first.Y, first.X, first.Y}
	for _, c := range cs[1:] {
		out = out.UnionPoint(c.Transform(aff))
	}
	return out
}
