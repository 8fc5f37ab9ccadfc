package geom

import (
	"fmt"
	"math"
)

// Triangle is a mutable triangle defined by three vertices, in any
// orientation.
type Triangle struct {
	shapeState
	p [3]*Point2
	// bbox is the axis-aligned bounding box of the three vertices.
	bbox *Cached[Rect]
}

// NewTriangle returns the triangle with the given vertices.
func NewTriangle(p1, p2, p3 Point, opts ...Option) (*Triangle, error) {
	if err := checkFinite("NewTriangle", p1.X, p1.Y, p2.X, p2.Y, p3.X, p3.Y); err != nil {
		return nil, err
	}
	o := buildOptions(opts)
	t := &Triangle{}
	for i, pt := range [3]Point{p1, p2, p3} {
		t.p[i] = NewPoint2(pt.X, pt.Y, WithStorage(o.storage))
	}
	t.bbox = NewCached("Triangle.BoundingBox", func() Rect {
		v := t.Vertices()
		return NewRectFromPoints(v[0], v[1]).UnionPoint(v[2])
	})
	t.init(o.tol, t.bbox)
	t.track(t.p[:]...)
	return t, nil
}

func (t *Triangle) String() string {
	v := t.Vertices()
	return fmt.Sprintf("Triangle(%v, %v, %v)", v[0], v[1], v[2])
}

func (t *Triangle) Kind() ShapeKind { return KindTriangle }

// Vertices returns a snapshot of the three vertices.
func (t *Triangle) Vertices() [3]Point {
	return [3]Point{t.p[0].Point(), t.p[1].Point(), t.p[2].Point()}
}

// Vertex returns a read-only view of the i-th vertex, for i in [0, 2].
func (t *Triangle) Vertex(i int) View { return t.p[i].Unmodifiable() }

func (t *Triangle) X1() float64 { return t.p[0].X() }
func (t *Triangle) Y1() float64 { return t.p[0].Y() }
func (t *Triangle) X2() float64 { return t.p[1].X() }
func (t *Triangle) Y2() float64 { return t.p[1].Y() }
func (t *Triangle) X3() float64 { return t.p[2].X() }
func (t *Triangle) Y3() float64 { return t.p[2].Y() }

func (t *Triangle) SetX1(x float64) error { return t.p[0].SetX(x) }
func (t *Triangle) SetY1(y float64) error { return t.p[0].SetY(y) }
func (t *Triangle) SetX2(x float64) error { return t.p[1].SetX(x) }
func (t *Triangle) SetY2(y float64) error { return t.p[1].SetY(y) }
func (t *Triangle) SetX3(x float64) error { return t.p[2].SetX(x) }
func (t *Triangle) SetY3(y float64) error { return t.p[2].SetY(y) }

// SetPoints sets all three vertices. Either all are written or, if a
// coordinate is not finite, none is.
func (t *Triangle) SetPoints(p1, p2, p3 Point) error {
	if err := checkFinite("Triangle.SetPoints", p1.X, p1.Y, p2.X, p2.Y, p3.X, p3.Y); err != nil {
		return err
	}
	t.batch(func() {
		for i, pt := range [3]Point{p1, p2, p3} {
			_ = t.p[i].SetPoint(pt)
		}
	})
	return nil
}

// Translate moves the triangle by v.
func (t *Triangle) Translate(v Vec2) error {
	vs := t.Vertices()
	return t.SetPoints(vs[0].Translate(v), vs[1].Translate(v), vs[2].Translate(v))
}

// Transform applies aff to all three vertices.
func (t *Triangle) Transform(aff Affine) error {
	if err := aff.check("Triangle.Transform"); err != nil {
		return err
	}
	vs := t.Vertices()
	return t.SetPoints(vs[0].Transform(aff), vs[1].Transform(aff), vs[2].Transform(aff))
}

// BoundingBox returns the bounding box of the vertices.
func (t *Triangle) BoundingBox() Rect { return t.bbox.Get() }

// Orientation returns 1 if the vertices are in counter-clockwise order in a
// y-up space, -1 if clockwise, and 0 if they are collinear.
func (t *Triangle) Orientation() int {
	v := t.Vertices()
	return orientation(v[0], v[1], v[2], t.tol.Epsilon)
}

// Center returns the centroid.
func (t *Triangle) Center() Point {
	v := t.Vertices()
	return Point{(v[0].X + v[1].X + v[2].X) / 3, (v[0].Y + v[1].Y + v[2].Y) / 3}
}

func (t *Triangle) Area() float64 {
	v := t.Vertices()
	return math.Abs(v[1].Sub(v[0]).Cross(v[2].Sub(v[0]))) / 2
}

func (t *Triangle) Perimeter() float64 {
	v := t.Vertices()
	return v[0].Distance(v[1]) + v[1].Distance(v[2]) + v[2].Distance(v[0])
}

// Edges returns the three edges p1→p2, p2→p3 and p3→p1.
func (t *Triangle) Edges() [3]Line {
	return triangleEdges(t.Vertices())
}

func triangleEdges(v [3]Point) [3]Line {
	return [3]Line{{v[0], v[1]}, {v[1], v[2]}, {v[2], v[0]}}
}

// Contains reports whether pt lies inside the triangle or on its edges. A
// degenerate triangle contains the points of its edges.
func (t *Triangle) Contains(pt Point) bool {
	return triangleContains(t.Vertices(), pt, t.tol)
}

func triangleContains(v [3]Point, pt Point, tol Tolerance) bool {
	if orientation(v[0], v[1], v[2], tol.Epsilon) == 0 {
		eps := tol.scaled(pt.X, pt.Y, v[0].X, v[0].Y, v[1].X, v[1].Y, v[2].X, v[2].Y)
		for _, e := range triangleEdges(v) {
			if e.Distance(pt) <= eps {
				return true
			}
		}
		return false
	}
	d1 := orientation(v[0], v[1], pt, tol.Epsilon)
	d2 := orientation(v[1], v[2], pt, tol.Epsilon)
	d3 := orientation(v[2], v[0], pt, tol.Epsilon)
	neg := d1 < 0 || d2 < 0 || d3 < 0
	pos := d1 > 0 || d2 > 0 || d3 > 0
	return !(neg && pos)
}

// Distance returns the distance between pt and the filled triangle.
func (t *Triangle) Distance(pt Point) float64 {
	if t.Contains(pt) {
		return 0
	}
	d := math.Inf(1)
	for _, e := range t.Edges() {
		d = min(d, e.Distance(pt))
	}
	return d
}

func (t *Triangle) ContainsShape(o Shape) bool { return Contains(t, o, t.tol) }
func (t *Triangle) Intersects(o Shape) bool    { return intersectsShape(t, o) }

// Path returns a closed path tracing the vertices in order.
func (t *Triangle) Path() *Path {
	v := t.Vertices()
	p := NewPath(NonZero, WithTolerance(t.tol))
	p.mustMoveTo(v[0])
	p.mustLineTo(v[1])
	p.mustLineTo(v[2])
	p.mustClose()
	return p
}
