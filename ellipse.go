package geom

import (
	"fmt"
	"math"
)

// Ellipse is a mutable axis-aligned ellipse, defined by the rectangle that
// frames it.
type Ellipse struct {
	shapeState
	min, max *Point2
	bbox     *Cached[Rect]
}

// NewEllipse returns the ellipse framed by the rectangle with origin (x, y)
// and the given size. A negative width or height fails with
// [ErrInvalidArgument].
func NewEllipse(x, y, width, height float64, opts ...Option) (*Ellipse, error) {
	if err := checkSize("NewEllipse", x, y, width, height); err != nil {
		return nil, err
	}
	o := buildOptions(opts)
	e := &Ellipse{
		min: NewPoint2(x, y, WithStorage(o.storage)),
		max: NewPoint2(x+width, y+height, WithStorage(o.storage)),
	}
	e.bbox = NewCached("Ellipse.BoundingBox", func() Rect {
		return NewRectFromPoints(e.min.Point(), e.max.Point())
	})
	e.init(o.tol, e.bbox)
	e.track(e.min, e.max)
	return e, nil
}

// NewEllipseFromCorners returns the ellipse framed by the rectangle spanned
// by two opposite corners, given in any order.
func NewEllipseFromCorners(p0, p1 Point, opts ...Option) (*Ellipse, error) {
	if err := checkFinite("NewEllipseFromCorners", p0.X, p0.Y, p1.X, p1.Y); err != nil {
		return nil, err
	}
	r := NewRectFromPoints(p0, p1)
	return NewEllipse(r.X0, r.Y0, r.Width(), r.Height(), opts...)
}

func (e *Ellipse) String() string {
	g := e.geometry()
	return fmt.Sprintf("Ellipse(center %v, radii %g×%g)", g.c, g.rx, g.ry)
}

func (e *Ellipse) Kind() ShapeKind { return KindEllipse }

// BoundingBox returns the framing rectangle.
func (e *Ellipse) BoundingBox() Rect { return e.bbox.Get() }

func (e *Ellipse) Center() Point { return e.BoundingBox().Center() }

// Radii returns the semi-axes along x and y.
func (e *Ellipse) Radii() Vec2 {
	g := e.geometry()
	return Vec2{g.rx, g.ry}
}

func (e *Ellipse) Area() float64      { return e.geometry().area() }
func (e *Ellipse) Perimeter() float64 { return e.geometry().perimeter() }

// Set sets the framing rectangle's origin and size.
func (e *Ellipse) Set(x, y, width, height float64) error {
	if err := checkSize("Ellipse.Set", x, y, width, height); err != nil {
		return err
	}
	e.setCorners(x, y, x+width, y+height)
	return nil
}

// SetFromCorners sets the framing rectangle to the one spanned by two
// opposite corners, given in any order.
func (e *Ellipse) SetFromCorners(x0, y0, x1, y1 float64) error {
	if err := checkFinite("Ellipse.SetFromCorners", x0, y0, x1, y1); err != nil {
		return err
	}
	e.setCorners(min(x0, x1), min(y0, y1), max(x0, x1), max(y0, y1))
	return nil
}

func (e *Ellipse) setCorners(x0, y0, x1, y1 float64) {
	e.batch(func() {
		_ = e.min.Set(x0, y0)
		_ = e.max.Set(x1, y1)
	})
}

// SetFromCenter sets the ellipse from its center and semi-axes.
func (e *Ellipse) SetFromCenter(center Point, radii Vec2) error {
	if radii.X < 0 || radii.Y < 0 {
		return invalidArgument("Ellipse.SetFromCenter", "negative radii %v", radii)
	}
	return e.SetFromCorners(center.X-radii.X, center.Y-radii.Y, center.X+radii.X, center.Y+radii.Y)
}

// Translate moves the ellipse by v.
func (e *Ellipse) Translate(v Vec2) error {
	b := e.BoundingBox().Translate(v)
	return e.SetFromCorners(b.X0, b.Y0, b.X1, b.Y1)
}

// Transform applies aff to the framing rectangle. Only transforms that keep
// the axes of the ellipse aligned with the coordinate axes are supported.
func (e *Ellipse) Transform(aff Affine) error {
	if err := aff.check("Ellipse.Transform"); err != nil {
		return err
	}
	if !aff.PreservesAxes(e.tol) {
		return invalidArgument("Ellipse.Transform", "transform %v doesn't preserve the axes", aff)
	}
	b := e.BoundingBox().Transform(aff)
	return e.SetFromCorners(b.X0, b.Y0, b.X1, b.Y1)
}

func (e *Ellipse) Contains(pt Point) bool     { return e.geometry().contains(pt, e.tol) }
func (e *Ellipse) Distance(pt Point) float64  { return e.geometry().distance(pt) }
func (e *Ellipse) ContainsShape(o Shape) bool { return Contains(e, o, e.tol) }
func (e *Ellipse) Intersects(o Shape) bool    { return intersectsShape(e, o) }

// Path returns a closed path approximating the ellipse with four cubic
// Bézier arcs.
func (e *Ellipse) Path() *Path { return e.geometry().path(e.tol) }

func (e *Ellipse) geometry() ellipseGeom {
	b := e.BoundingBox()
	return ellipseGeom{c: b.Center(), rx: b.Width() / 2, ry: b.Height() / 2}
}

// ellipseGeom is an axis-aligned ellipse value, shared by Ellipse and Circle.
type ellipseGeom struct {
	c      Point
	rx, ry float64
}

func (g ellipseGeom) bbox() Rect {
	return Rect{g.c.X - g.rx, g.c.Y - g.ry, g.c.X + g.rx, g.c.Y + g.ry}
}

func (g ellipseGeom) area() float64 { return math.Pi * g.rx * g.ry }

// perimeter uses Ramanujan's second approximation, which is exact for
// circles.
func (g ellipseGeom) perimeter() float64 {
	a, b := g.rx, g.ry
	if a+b == 0 {
		return 0
	}
	h := (a - b) * (a - b) / ((a + b) * (a + b))
	return math.Pi * (a + b) * (1 + 3*h/(10+math.Sqrt(4-3*h)))
}

// degenerate reports whether the ellipse has collapsed to a line or point.
func (g ellipseGeom) degenerate() bool { return g.rx == 0 || g.ry == 0 }

// axis returns the line a degenerate ellipse has collapsed to.
func (g ellipseGeom) axis() Line {
	b := g.bbox()
	return Line{Point{b.X0, b.Y0}, Point{b.X1, b.Y1}}
}

// toUnit maps pt into the space in which the ellipse is the unit circle.
func (g ellipseGeom) toUnit(pt Point) Point {
	return Point{(pt.X - g.c.X) / g.rx, (pt.Y - g.c.Y) / g.ry}
}

func (g ellipseGeom) contains(pt Point, tol Tolerance) bool {
	if g.degenerate() {
		return g.axis().Distance(pt) <= tol.scaled(pt.X, pt.Y)
	}
	u := g.toUnit(pt)
	return u.X*u.X+u.Y*u.Y <= 1+tol.Epsilon
}

// distance returns the distance from pt to the filled ellipse.
func (g ellipseGeom) distance(pt Point) float64 {
	if g.degenerate() {
		return g.axis().Distance(pt)
	}
	u := g.toUnit(pt)
	if u.X*u.X+u.Y*u.Y <= 1 {
		return 0
	}
	y0, y1 := pt.Sub(g.c).Abs().Splat()
	if g.rx >= g.ry {
		return distancePointEllipse(g.rx, g.ry, y0, y1)
	}
	return distancePointEllipse(g.ry, g.rx, y1, y0)
}

// intersectsLine reports whether l touches the filled ellipse.
func (g ellipseGeom) intersectsLine(l Line, tol Tolerance) bool {
	if g.degenerate() {
		return g.axis().Intersect(l, tol).Kind != IntersectionNone
	}
	u := Line{g.toUnit(l.P0), g.toUnit(l.P1)}
	return u.Distance(Point{}) <= 1+tol.Epsilon
}

// intersectsRect reports whether r touches the filled ellipse.
func (g ellipseGeom) intersectsRect(r Rect, tol Tolerance) bool {
	if g.degenerate() {
		cs, l := r.Corners(), g.axis()
		return convexOverlap(cs[:], []Point{l.P0, l.P1}, tol.scaledRect(r, g.bbox()))
	}
	u := Rect{(r.X0 - g.c.X) / g.rx, (r.Y0 - g.c.Y) / g.ry, (r.X1 - g.c.X) / g.rx, (r.Y1 - g.c.Y) / g.ry}
	return u.Distance(Point{}) <= 1+tol.Epsilon
}

// support returns the largest projection of the ellipse onto the direction n.
func (g ellipseGeom) support(n Vec2) float64 {
	return g.c.X*n.X + g.c.Y*n.Y + math.Hypot(g.rx*n.X, g.ry*n.Y)
}

// polygon returns points on the ellipse such that no chord between
// consecutive points deviates from the ellipse by more than tol.Flatness.
func (g ellipseGeom) polygon(tol Tolerance) []Point {
	if g.degenerate() {
		l := g.axis()
		return []Point{l.P0, l.P1}
	}
	r := max(g.rx, g.ry)
	n := 8
	if tol.Flatness < r {
		step := 2 * math.Acos(1-tol.Flatness/r)
		n = max(n, int(math.Ceil(2*math.Pi/step)))
	}
	n = min(n, 4096)
	pts := make([]Point, n)
	for i := range pts {
		s, c := math.Sincos(2 * math.Pi * float64(i) / float64(n))
		pts[i] = Point{g.c.X + g.rx*c, g.c.Y + g.ry*s}
	}
	return pts
}

// kappa is the distance of the control points of a cubic Bézier quarter
// circle of radius 1 from its end points.
const kappa = 0.5522847498307936

func (g ellipseGeom) path(tol Tolerance) *Path {
	p := NewPath(NonZero, WithTolerance(tol))
	cx, cy, rx, ry := g.c.X, g.c.Y, g.rx, g.ry
	kx, ky := kappa*rx, kappa*ry
	p.mustMoveTo(Point{cx + rx, cy})
	p.mustCurveTo(Point{cx + rx, cy + ky}, Point{cx + kx, cy + ry}, Point{cx, cy + ry})
	p.mustCurveTo(Point{cx - kx, cy + ry}, Point{cx - rx, cy + ky}, Point{cx - rx, cy})
	p.mustCurveTo(Point{cx - rx, cy - ky}, Point{cx - kx, cy - ry}, Point{cx, cy - ry})
	p.mustCurveTo(Point{cx + kx, cy - ry}, Point{cx + rx, cy - ky}, Point{cx + rx, cy})
	p.mustClose()
	return p
}

// distancePointEllipse returns the distance from (y0, y1) to the ellipse
// (x0/e0)² + (x1/e1)² = 1, for e0 ≥ e1 > 0 and y0, y1 ≥ 0.
//
// See David Eberly, "Distance from a Point to an Ellipse, an Ellipsoid, or a
// Hyperellipsoid".
func distancePointEllipse(e0, e1, y0, y1 float64) float64 {
	if y1 > 0 {
		if y0 > 0 {
			z0, z1 := y0/e0, y1/e1
			g := z0*z0 + z1*z1 - 1
			if g == 0 {
				return 0
			}
			r0 := (e0 / e1) * (e0 / e1)
			s := ellipseRoot(r0, z0, z1, g)
			x0 := r0 * y0 / (s + r0)
			x1 := y1 / (s + 1)
			return math.Hypot(x0-y0, x1-y1)
		}
		return math.Abs(y1 - e1)
	}
	numer0 := e0 * y0
	denom0 := e0*e0 - e1*e1
	if numer0 < denom0 {
		xde0 := numer0 / denom0
		x0 := e0 * xde0
		x1 := e1 * math.Sqrt(1-xde0*xde0)
		return math.Hypot(x0-y0, x1)
	}
	return math.Abs(y0 - e0)
}

// ellipseRoot finds the root of the distance function by bisection.
func ellipseRoot(r0, z0, z1, g float64) float64 {
	n0 := r0 * z0
	s0 := z1 - 1
	s1 := 0.0
	if g >= 0 {
		s1 = math.Hypot(n0, z1) - 1
	}
	s := 0.0
	for range 1100 {
		s = (s0 + s1) / 2
		if s == s0 || s == s1 {
			break
		}
		ratio0 := n0 / (s + r0)
		ratio1 := z1 / (s + 1)
		g = ratio0*ratio0 + ratio1*ratio1 - 1
		switch {
		case g > 0:
			s0 = s
		case g < 0:
			s1 = s
		default:
			return s
		}
	}
	return s
}
