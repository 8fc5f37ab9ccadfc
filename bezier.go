package geom

import (
	"iter"
	"log/slog"
)

// QuadBez is a quadratic Bézier segment.
type QuadBez struct {
	P0 Point
	P1 Point
	P2 Point
}

func (q QuadBez) Eval(t float64) Point {
	mt := 1.0 - t
	a := Vec2(q.P0).Mul(mt * mt)
	b := Vec2(q.P1).Mul(mt * 2.0)
	c := Vec2(q.P2).Mul(t)
	d := b.Add(c)
	return Point(a.Add(d.Mul(t)))
}

// Subdivide splits the curve at t = 0.5.
func (q QuadBez) Subdivide() (QuadBez, QuadBez) {
	pm := q.Eval(0.5)
	return QuadBez{q.P0, q.P0.Midpoint(q.P1), pm},
		QuadBez{pm, q.P1.Midpoint(q.P2), q.P2}
}

// Flatness returns the distance of the control point from the chord.
func (q QuadBez) Flatness() float64 {
	return Line{q.P0, q.P2}.distanceToChord(q.P1)
}

// ControlBox returns the bounding box of the control points, which contains
// the curve.
func (q QuadBez) ControlBox() Rect {
	return NewRectFromPoints(q.P0, q.P1).UnionPoint(q.P2)
}

func (q QuadBez) Transform(aff Affine) QuadBez {
	return QuadBez{q.P0.Transform(aff), q.P1.Transform(aff), q.P2.Transform(aff)}
}

// Raise returns a cubic Bézier segment that exactly represents this
// quadratic.
func (q QuadBez) Raise() CubicBez {
	return CubicBez{
		q.P0,
		q.P0.Translate(q.P1.Sub(q.P0).Mul(2.0 / 3.0)),
		q.P2.Translate(q.P1.Sub(q.P2).Mul(2.0 / 3.0)),
		q.P2,
	}
}

// Flatten approximates the curve with line segments, yielded as LineTo
// elements. See [FlattenElements].
func (q QuadBez) Flatten(tol Tolerance) iter.Seq[PathElement] {
	tol = tol.orDefault()
	return func(yield func(PathElement) bool) {
		flattenCurve(q, tol, 0, yield)
	}
}

// CubicBez is a cubic Bézier segment.
type CubicBez struct {
	P0 Point
	P1 Point
	P2 Point
	P3 Point
}

func (c CubicBez) Eval(t float64) Point {
	mt := 1.0 - t
	v := Vec2(c.P0).Mul(mt * mt * mt).
		Add(Vec2(c.P1).Mul(mt * mt * 3.0).
			Add(Vec2(c.P2).Mul(mt * 3.0).
				Add(Vec2(c.P3).Mul(t)).
				Mul(t)).
			Mul(t))
	return Point(v)
}

// Subdivide splits the curve at t = 0.5.
func (c CubicBez) Subdivide() (CubicBez, CubicBez) {
	pm := c.Eval(0.5)
	return CubicBez{
			c.P0,
			c.P0.Midpoint(c.P1),
			Point(Vec2(c.P0).Add(Vec2(c.P1).Mul(2.0)).Add(Vec2(c.P2)).Mul(0.25)),
			pm,
		},
		CubicBez{
			pm,
			Point(Vec2(c.P1).Add(Vec2(c.P2).Mul(2.0)).Add(Vec2(c.P3)).Mul(0.25)),
			c.P2.Midpoint(c.P3),
			c.P3,
		}
}

// Flatness returns the larger distance of the two control points from the
// chord.
func (c CubicBez) Flatness() float64 {
	chord := Line{c.P0, c.P3}
	return max(chord.distanceToChord(c.P1), chord.distanceToChord(c.P2))
}

// ControlBox returns the bounding box of the control points, which contains
// the curve.
func (c CubicBez) ControlBox() Rect {
	return NewRectFromPoints(c.P0, c.P1).UnionPoint(c.P2).UnionPoint(c.P3)
}

func (c CubicBez) Transform(aff Affine) CubicBez {
	return CubicBez{c.P0.Transform(aff), c.P1.Transform(aff), c.P2.Transform(aff), c.P3.Transform(aff)}
}

// Flatten approximates the curve with line segments, yielded as LineTo
// elements. See [FlattenElements].
func (c CubicBez) Flatten(tol Tolerance) iter.Seq[PathElement] {
	tol = tol.orDefault()
	return func(yield func(PathElement) bool) {
		flattenCurve(c, tol, 0, yield)
	}
}

// bezier is implemented by QuadBez and CubicBez.
type bezier[T any] interface {
	Flatness() float64
	Subdivide() (T, T)
	Eval(t float64) Point
}

// flattenCurve subdivides b recursively until it is flat enough or the
// maximum depth is reached, then yields the chord. It returns false once
// yield returned false.
//
// Whether a curve is split depends only on the curve, the flatness and the
// depth, so lowering the flatness can only add splits, never remove them.
func flattenCurve[T bezier[T]](b T, tol Tolerance, depth int, yield func(PathElement) bool) bool {
	if b.Flatness() > tol.Flatness {
		if depth < tol.MaxDepth {
			l, r := b.Subdivide()
			return flattenCurve(l, tol, depth+1, yield) && flattenCurve(r, tol, depth+1, yield)
		}
		Logger().Debug("geom: flattening stopped at maximum depth",
			slog.Int("depth", depth),
			slog.Float64("flatness", b.Flatness()),
			slog.Float64("tolerance", tol.Flatness))
	}
	return yield(LineTo(b.Eval(0), b.Eval(1)))
}

// FlattenElements replaces every curve in seq by line segments, leaving
// MoveTo, LineTo and ClosePath elements unchanged.
//
// Curves are subdivided at their midpoint with de Casteljau's algorithm
// until the control points are at most tol.Flatness away from the chord, or
// until the subdivision is tol.MaxDepth levels deep. A smaller flatness
// never produces fewer segments.
func FlattenElements(seq iter.Seq[PathElement], tol Tolerance) iter.Seq[PathElement] {
	tol = tol.orDefault()
	return func(yield func(PathElement) bool) {
		for el := range seq {
			switch el.Kind {
			case QuadToKind:
				if !flattenCurve(el.Quad(), tol, 0, yield) {
					return
				}
			case CurveToKind:
				if !flattenCurve(el.Cubic(), tol, 0, yield) {
					return
				}
			default:
				if !yield(el) {
					return
				}
			}
		}
	}
}
