package geom

import (
	"math"
)

// Line is a line segment value. The mutable shape is [Segment].
type Line struct {
	// The line's start point.
	P0 Point
	// The line's end point.
	P1 Point
}

// Length returns the length of the line.
func (l Line) Length() float64 {
	return l.P1.Sub(l.P0).Hypot()
}

// CrossingPoint computes the point where two lines, if extended to infinity,
// would cross. It returns false for parallel lines.
func (l Line) CrossingPoint(o Line) (Point, bool) {
	ab := l.P1.Sub(l.P0)
	cd := o.P1.Sub(o.P0)
	pcd := ab.Cross(cd)
	if pcd == 0 {
		return Point{}, false
	}
	h := ab.Cross(l.P0.Sub(o.P0)) / pcd
	return o.P0.Translate(cd.Mul(h)), true
}

func (l Line) IsInf() bool {
	return l.P0.IsInf() || l.P1.IsInf()
}

func (l Line) IsNaN() bool {
	return l.P0.IsNaN() || l.P1.IsNaN()
}

func (l Line) Translate(v Vec2) Line {
	return Line{
		P0: l.P0.Translate(v),
		P1: l.P1.Translate(v),
	}
}

func (l Line) BoundingBox() Rect {
	return NewRectFromPoints(l.P0, l.P1)
}

func (l Line) Eval(t float64) Point {
	return l.P0.Lerp(l.P1, t)
}

// Nearest returns the squared distance from pt to the nearest point on the
// line, and that point's parameter.
func (l Line) Nearest(pt Point) (distSq, t float64) {
	d := l.P1.Sub(l.P0)
	dotp := d.Dot(pt.Sub(l.P0))
	dSquared := d.Dot(d)
	if dotp <= 0.0 {
		return pt.Sub(l.P0).Hypot2(), 0.0
	} else if dotp >= dSquared {
		return pt.Sub(l.P1).Hypot2(), 1.0
	} else {
		t := dotp / dSquared
		dist := pt.Sub(l.Eval(t)).Hypot2()
		return dist, t
	}
}

// Distance returns the distance from pt to the nearest point on the line.
func (l Line) Distance(pt Point) float64 {
	d, _ := l.Nearest(pt)
	return math.Sqrt(d)
}

// distanceToChord returns the perpendicular distance from pt to the infinite
// line through l. For a degenerate line it is the distance to P0.
func (l Line) distanceToChord(pt Point) float64 {
	d := l.P1.Sub(l.P0)
	n := d.Hypot()
	if n == 0 {
		return pt.Distance(l.P0)
	}
	return math.Abs(d.Cross(pt.Sub(l.P0))) / n
}

func (l Line) Transform(aff Affine) Line {
	return Line{
		P0: l.P0.Transform(aff),
		P1: l.P1.Transform(aff),
	}
}

// onSegment reports whether pt, already known to be collinear with l, lies
// within l's extent.
func (l Line) onSegment(pt Point, eps float64) bool {
	return pt.X >= min(l.P0.X, l.P1.X)-eps && pt.X <= max(l.P0.X, l.P1.X)+eps &&
		pt.Y >= min(l.P0.Y, l.P1.Y)-eps && pt.Y <= max(l.P0.Y, l.P1.Y)+eps
}

// IntersectionKind classifies how two line segments meet.
type IntersectionKind int

const (
	// IntersectionNone means the segments are disjoint.
	IntersectionNone IntersectionKind = iota
	// IntersectionPoint means the segments meet in exactly one point.
	IntersectionPoint
	// IntersectionOverlap means the segments are collinear and share a
	// sub-segment of non-zero length.
	IntersectionOverlap
)

func (k IntersectionKind) String() string {
	switch k {
	case IntersectionNone:
		return "None"
	case IntersectionPoint:
		return "Point"
	case IntersectionOverlap:
		return "Overlap"
	default:
		return "InvalidIntersectionKind"
	}
}

// LineIntersection is the result of [Line.Intersect].
type LineIntersection struct {
	Kind IntersectionKind
	// For IntersectionPoint, P0 is the intersection point. For
	// IntersectionOverlap, P0 and P1 delimit the shared sub-segment.
	P0, P1 Point
}

// Intersect classifies the intersection of two segments using orientation
// predicates. Collinear segments that share more than a point are reported
// as IntersectionOverlap rather than as a generic intersection point.
func (l Line) Intersect(o Line, tol Tolerance) LineIntersection {
	eps := tol.scaled(l.P0.X, l.P0.Y, l.P1.X, l.P1.Y, o.P0.X, o.P0.Y, o.P1.X, o.P1.Y)
	o1 := orientation(l.P0, l.P1, o.P0, tol.Epsilon)
	o2 := orientation(l.P0, l.P1, o.P1, tol.Epsilon)
	o3 := orientation(o.P0, o.P1, l.P0, tol.Epsilon)
	o4 := orientation(o.P0, o.P1, l.P1, tol.Epsilon)

	if o1 == 0 && o2 == 0 && o3 == 0 && o4 == 0 {
		return l.collinearOverlap(o, eps)
	}

	if o1*o2 <= 0 && o3*o4 <= 0 {
		// Proper crossing, or one endpoint touching the other segment.
		switch {
		case o1 == 0 && l.onSegment(o.P0, eps):
			return LineIntersection{Kind: IntersectionPoint, P0: o.P0}
		case o2 == 0 && l.onSegment(o.P1, eps):
			return LineIntersection{Kind: IntersectionPoint, P0: o.P1}
		case o3 == 0 && o.onSegment(l.P0, eps):
			return LineIntersection{Kind: IntersectionPoint, P0: l.P0}
		case o4 == 0 && o.onSegment(l.P1, eps):
			return LineIntersection{Kind: IntersectionPoint, P0: l.P1}
		case o1 != 0 && o2 != 0 && o3 != 0 && o4 != 0:
			pt, ok := l.CrossingPoint(o)
			if !ok {
				return LineIntersection{}
			}
			return LineIntersection{Kind: IntersectionPoint, P0: pt}
		}
	}
	return LineIntersection{}
}

func (l Line) collinearOverlap(o Line, eps float64) LineIntersection {
	d := l.P1.Sub(l.P0)
	if d.Hypot2() == 0 {
		d = o.P1.Sub(o.P0)
	}
	if d.Hypot2() == 0 {
		// Both segments are points.
		if l.P0.Distance(o.P0) <= eps {
			return LineIntersection{Kind: IntersectionPoint, P0: l.P0}
		}
		return LineIntersection{}
	}
	// Project everything onto the common direction.
	proj := func(p Point) float64 { return p.Sub(l.P0).Dot(d) / d.Hypot2() }
	a0, a1 := proj(l.P0), proj(l.P1)
	b0, b1 := proj(o.P0), proj(o.P1)
	if a0 > a1 {
		a0, a1 = a1, a0
	}
	if b0 > b1 {
		b0, b1 = b1, b0
	}
	lo := max(a0, b0)
	hi := min(a1, b1)
	// Parameters are relative to |d|, convert eps accordingly.
	peps := eps / d.Hypot()
	switch {
	case hi < lo-peps:
		return LineIntersection{}
	case hi-lo <= peps:
		return LineIntersection{Kind: IntersectionPoint, P0: l.P0.Translate(d.Mul(lo))}
	default:
		return LineIntersection{
			Kind: IntersectionOverlap,
			P0:   l.P0.Translate(d.Mul(lo)),
			P1:   l.P0.Translate(d.Mul(hi)),
		}
	}
}
