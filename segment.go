package geom

import (
	"fmt"
)

// Segment is a mutable line segment between two points.
type Segment struct {
	shapeState
	p1, p2 *Point2
	bbox   *Cached[Rect]
}

// NewSegment returns the segment from p1 to p2.
func NewSegment(p1, p2 Point, opts ...Option) (*Segment, error) {
	if err := checkFinite("NewSegment", p1.X, p1.Y, p2.X, p2.Y); err != nil {
		return nil, err
	}
	o := buildOptions(opts)
	s := &Segment{
		p1: NewPoint2(p1.X, p1.Y, WithStorage(o.storage)),
		p2: NewPoint2(p2.X, p2.Y, WithStorage(o.storage)),
	}
	s.bbox = NewCached("Segment.BoundingBox", func() Rect {
		return s.Line().BoundingBox()
	})
	s.init(o.tol, s.bbox)
	s.track(s.p1, s.p2)
	return s, nil
}

func (s *Segment) String() string {
	return fmt.Sprintf("Segment(%v, %v)", s.p1.Point(), s.p2.Point())
}

func (s *Segment) Kind() ShapeKind { return KindSegment }

// Line returns a snapshot of the segment as a value.
func (s *Segment) Line() Line { return Line{s.p1.Point(), s.p2.Point()} }

// P1 returns a read-only view of the start point.
func (s *Segment) P1() View { return s.p1.Unmodifiable() }

// P2 returns a read-only view of the end point.
func (s *Segment) P2() View { return s.p2.Unmodifiable() }

func (s *Segment) X1() float64 { return s.p1.X() }
func (s *Segment) Y1() float64 { return s.p1.Y() }
func (s *Segment) X2() float64 { return s.p2.X() }
func (s *Segment) Y2() float64 { return s.p2.Y() }

func (s *Segment) SetX1(x float64) error     { return s.p1.SetX(x) }
func (s *Segment) SetY1(y float64) error     { return s.p1.SetY(y) }
func (s *Segment) SetX2(x float64) error     { return s.p2.SetX(x) }
func (s *Segment) SetY2(y float64) error     { return s.p2.SetY(y) }
func (s *Segment) SetP1(pt Point) error      { return s.p1.SetPoint(pt) }
func (s *Segment) SetP2(pt Point) error      { return s.p2.SetPoint(pt) }
func (s *Segment) BoundingBox() Rect         { return s.bbox.Get() }
func (s *Segment) Length() float64           { return s.Line().Length() }
func (s *Segment) Distance(pt Point) float64 { return s.Line().Distance(pt) }

// Set sets both end points. Either both are written or, if a coordinate is
// not finite, neither is.
func (s *Segment) Set(p1, p2 Point) error {
	if err := checkFinite("Segment.Set", p1.X, p1.Y, p2.X, p2.Y); err != nil {
		return err
	}
	s.batch(func() {
		_ = s.p1.SetPoint(p1)
		_ = s.p2.SetPoint(p2)
	})
	return nil
}

// Translate moves the segment by v.
func (s *Segment) Translate(v Vec2) error {
	l := s.Line().Translate(v)
	return s.Set(l.P0, l.P1)
}

// Transform applies aff to both end points. Singular transforms are allowed
// and may collapse the segment to a point.
func (s *Segment) Transform(aff Affine) error {
	if err := checkFinite("Segment.Transform", aff.N0, aff.N1, aff.N2, aff.N3, aff.N4, aff.N5); err != nil {
		return err
	}
	l := s.Line().Transform(aff)
	return s.Set(l.P0, l.P1)
}

// Contains reports whether pt lies on the segment.
func (s *Segment) Contains(pt Point) bool {
	l := s.Line()
	return l.Distance(pt) <= s.tol.scaled(pt.X, pt.Y, l.P0.X, l.P0.Y, l.P1.X, l.P1.Y)
}

// IntersectLine classifies the intersection of s and o.
func (s *Segment) IntersectLine(o *Segment) LineIntersection {
	return s.Line().Intersect(o.Line(), s.tol)
}

func (s *Segment) ContainsShape(o Shape) bool { return Contains(s, o, s.tol) }
func (s *Segment) Intersects(o Shape) bool    { return intersectsShape(s, o) }

// Path returns an open path consisting of the segment.
func (s *Segment) Path() *Path {
	l := s.Line()
	p := NewPath(NonZero, WithTolerance(s.tol))
	p.mustMoveTo(l.P0)
	p.mustLineTo(l.P1)
	return p
}
