package geom

import (
	"math"
)

// predicate is a cell of the intersection or containment matrix.
type predicate func(a, b Shape, tol Tolerance) bool

// intersectsTable holds the intersection test for every pair of kinds
// (a, b) with a <= b. Intersects swaps its operands to reach the cell, so
// the result never depends on the order of the operands.
var intersectsTable [numKinds][numKinds]predicate

// containsTable holds the containment test for every ordered pair of kinds
// (outer, inner).
var containsTable [numKinds][numKinds]predicate

func init() {
	set := func(a, b ShapeKind, fn predicate) {
		if a > b {
			panic("geom: intersection cell registered with kinds out of order")
		}
		intersectsTable[a][b] = fn
	}
	set(KindSegment, KindSegment, func(a, b Shape, tol Tolerance) bool {
		return lineOf(a).Intersect(lineOf(b), tol).Kind != IntersectionNone
	})
	convex := func(a, b Shape, tol Tolerance) bool {
		return convexOverlap(convexPoints(a), convexPoints(b), tol.scaledRect(a.BoundingBox(), b.BoundingBox()))
	}
	set(KindSegment, KindRectangle, convex)
	set(KindSegment, KindTriangle, convex)
	set(KindRectangle, KindTriangle, convex)
	set(KindTriangle, KindTriangle, convex)
	set(KindRectangle, KindRectangle, func(a, b Shape, tol Tolerance) bool {
		ra, rb := a.BoundingBox(), b.BoundingBox()
		return ra.Overlaps(rb, tol.scaledRect(ra, rb))
	})
	for _, k := range []ShapeKind{KindCircle, KindEllipse} {
		set(KindSegment, k, func(a, b Shape, tol Tolerance) bool {
			return ellipseOf(b).intersectsLine(lineOf(a), tol)
		})
		set(KindRectangle, k, func(a, b Shape, tol Tolerance) bool {
			return ellipseOf(b).intersectsRect(a.BoundingBox(), tol)
		})
		set(KindTriangle, k, func(a, b Shape, tol Tolerance) bool {
			return ellipseIntersectsTriangle(ellipseOf(b), a.(*Triangle).Vertices(), tol)
		})
		set(k, KindEllipse, func(a, b Shape, tol Tolerance) bool {
			return ellipsesIntersect(ellipseOf(a), ellipseOf(b), tol)
		})
	}
	set(KindCircle, KindCircle, func(a, b Shape, tol Tolerance) bool {
		ca, cb := a.(*Circle), b.(*Circle)
		ra, rb := ca.Radius(), cb.Radius()
		return ca.Center().Distance(cb.Center()) <= ra+rb+tol.scaled(ra, rb)
	})
	for k := KindSegment; k < KindPath; k++ {
		set(k, KindPath, func(a, b Shape, tol Tolerance) bool {
			return pathIntersects(b.(*Path), a, tol)
		})
	}
	set(KindPath, KindPath, func(a, b Shape, tol Tolerance) bool {
		return pathsIntersect(a.(*Path), b.(*Path), tol)
	})

	for outer := KindSegment; outer <= KindPath; outer++ {
		for inner := KindSegment; inner <= KindPath; inner++ {
			containsTable[outer][inner] = containsGeneric
		}
	}
	for _, outer := range []ShapeKind{KindRectangle, KindTriangle} {
		for _, inner := range []ShapeKind{KindCircle, KindEllipse} {
			containsTable[outer][inner] = polygonContainsEllipse
		}
	}
	containsTable[KindCircle][KindCircle] = func(outer, inner Shape, tol Tolerance) bool {
		co, ci := outer.(*Circle), inner.(*Circle)
		ro, ri := co.Radius(), ci.Radius()
		return co.Center().Distance(ci.Center())+ri <= ro+tol.scaled(ro, ri)
	}
	for outer := KindSegment; outer <= KindPath; outer++ {
		containsTable[outer][KindPath] = containsPath
	}
	for inner := KindSegment; inner <= KindPath; inner++ {
		containsTable[KindPath][inner] = pathContains
	}
}

// Intersects reports whether a and b share at least one point, treating
// closed shapes as filled and open subpaths of paths as implicitly closed.
// Comparisons use tol.
//
// The result is the same for Intersects(a, b, tol) and Intersects(b, a,
// tol).
func Intersects(a, b Shape, tol Tolerance) bool {
	if a == nil || b == nil {
		return false
	}
	tol = tol.orDefault()
	ka, kb := a.Kind(), b.Kind()
	if ka > kb {
		a, b = b, a
		ka, kb = kb, ka
	}
	if !validKind(ka) || !validKind(kb) {
		return false
	}
	if isEmptyPath(a) || isEmptyPath(b) {
		return false
	}
	ra, rb := a.BoundingBox(), b.BoundingBox()
	if !ra.Overlaps(rb, tol.scaledRect(ra, rb)) {
		return false
	}
	return intersectsTable[ka][kb](a, b, tol)
}

// intersectsShape implements the Intersects method of the shapes. It uses
// the tolerance both shapes agree on, so that a.Intersects(b) and
// b.Intersects(a) compare the same way.
func intersectsShape(a, b Shape) bool {
	if b == nil {
		return false
	}
	return Intersects(a, b, a.Tolerance().meet(b.Tolerance()))
}

// Contains reports whether inner lies entirely within outer. Comparisons
// use tol. An empty path neither contains nor is contained by anything.
//
// Curved inner shapes are tested through their flattened outlines, so the
// result is exact up to the flattening tolerance: an ellipse that pokes out
// of a circle or ellipse by less than tol.Flatness counts as contained.
func Contains(outer, inner Shape, tol Tolerance) bool {
	if outer == nil || inner == nil {
		return false
	}
	tol = tol.orDefault()
	ko, ki := outer.Kind(), inner.Kind()
	if !validKind(ko) || !validKind(ki) {
		return false
	}
	if isEmptyPath(outer) || isEmptyPath(inner) {
		return false
	}
	ro, ri := outer.BoundingBox(), flattenedBox(inner)
	eps := tol.scaledRect(ro, ri)
	if !ro.Inflate(eps, eps).ContainsRect(ri) {
		return false
	}
	return containsTable[ko][ki](outer, inner, tol)
}

// flattenedBox is the bounding box of s, except for paths, where it bounds
// the flattened outline instead of the control points.
func flattenedBox(s Shape) Rect {
	p, ok := s.(*Path)
	if !ok {
		return s.BoundingBox()
	}
	vs := p.vertices()
	r := Rect{vs[0].X, vs[0].Y, vs[0].X, vs[0].Y}
	for _, v := range vs[1:] {
		r = r.UnionPoint(v)
	}
	return r
}

func validKind(k ShapeKind) bool { return k >= KindSegment && k <= KindPath }

func isEmptyPath(s Shape) bool {
	p, ok := s.(*Path)
	return ok && p.IsEmpty()
}

func lineOf(s Shape) Line { return s.(*Segment).Line() }

func ellipseOf(s Shape) ellipseGeom {
	switch s := s.(type) {
	case *Ellipse:
		return s.geometry()
	case *Circle:
		return s.geometry()
	default:
		panic("geom: not an ellipse")
	}
}

// convexPoints returns the vertices of a polygonal convex shape.
func convexPoints(s Shape) []Point {
	switch s := s.(type) {
	case *Segment:
		l := s.Line()
		return []Point{l.P0, l.P1}
	case *Rectangle:
		cs := s.BoundingBox().Corners()
		return cs[:]
	case *Triangle:
		vs := s.Vertices()
		return vs[:]
	default:
		panic("geom: not a convex polygon")
	}
}

// samplePoints returns points of the shape's outline such that, for a convex
// container, containing all of them means containing the shape. Curved
// outlines are approximated within the flattening tolerance.
func samplePoints(s Shape, tol Tolerance) []Point {
	switch s := s.(type) {
	case *Ellipse:
		return s.geometry().polygon(tol)
	case *Circle:
		return s.geometry().polygon(tol)
	case *Path:
		return s.vertices()
	default:
		return convexPoints(s)
	}
}

// outlineEdges returns the edges of the shape's outline, closed and
// flattened.
func outlineEdges(s Shape, tol Tolerance) []Line {
	if p, ok := s.(*Path); ok {
		return p.edges.Get()
	}
	pts := samplePoints(s, tol)
	if len(pts) == 2 {
		return []Line{{pts[0], pts[1]}}
	}
	edges := make([]Line, len(pts))
	for i := range pts {
		edges[i] = Line{pts[i], pts[(i+1)%len(pts)]}
	}
	return edges
}

// containsPoint reports whether s contains pt, using tol rather than the
// shape's own tolerance.
func containsPoint(s Shape, pt Point, tol Tolerance) bool {
	switch s := s.(type) {
	case *Rectangle:
		return rectContains(s.BoundingBox(), pt, tol)
	case *Ellipse:
		return s.geometry().contains(pt, tol)
	case *Circle:
		return s.geometry().contains(pt, tol)
	case *Triangle:
		return triangleContains(s.Vertices(), pt, tol)
	case *Segment:
		l := s.Line()
		return l.Distance(pt) <= tol.scaled(pt.X, pt.Y, l.P0.X, l.P0.Y, l.P1.X, l.P1.Y)
	default:
		return s.Contains(pt)
	}
}

// convexOverlap reports whether the convex hulls of a and b overlap, by
// searching for a separating axis. Besides the coordinate axes, the normals
// and directions of all edges are tried, which also separates degenerate
// polygons such as collinear segments.
func convexOverlap(a, b []Point, eps float64) bool {
	axes := []Vec2{{1, 0}, {0, 1}}
	for _, poly := range [2][]Point{a, b} {
		for i := range poly {
			d := poly[(i+1)%len(poly)].Sub(poly[i])
			if d.Hypot2() == 0 {
				continue
			}
			d = d.Normalize()
			axes = append(axes, d, d.Perp())
		}
	}
	for _, axis := range axes {
		minA, maxA := project(a, axis)
		minB, maxB := project(b, axis)
		if maxA < minB-eps || maxB < minA-eps {
			return false
		}
	}
	return true
}

func project(pts []Point, axis Vec2) (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, pt := range pts {
		d := Vec2(pt).Dot(axis)
		lo = min(lo, d)
		hi = max(hi, d)
	}
	return lo, hi
}

func ellipseIntersectsTriangle(g ellipseGeom, v [3]Point, tol Tolerance) bool {
	for _, e := range triangleEdges(v) {
		if g.intersectsLine(e, tol) {
			return true
		}
	}
	return triangleContains(v, g.c, tol)
}

// ellipsesIntersect tests the edges of each ellipse's polygon against the
// other, filled ellipse. The result is exact up to the flattening tolerance
// and doesn't depend on the order of a and b.
func ellipsesIntersect(a, b ellipseGeom, tol Tolerance) bool {
	if a.degenerate() && b.degenerate() {
		return a.axis().Intersect(b.axis(), tol).Kind != IntersectionNone
	}
	if a.degenerate() {
		return b.intersectsLine(a.axis(), tol)
	}
	if b.degenerate() {
		return a.intersectsLine(b.axis(), tol)
	}
	if a.contains(b.c, tol) || b.contains(a.c, tol) {
		return true
	}
	return polygonTouches(a.polygon(tol), b, tol) || polygonTouches(b.polygon(tol), a, tol)
}

func polygonTouches(pts []Point, g ellipseGeom, tol Tolerance) bool {
	for i := range pts {
		if g.intersectsLine(Line{pts[i], pts[(i+1)%len(pts)]}, tol) {
			return true
		}
	}
	return false
}

// lineIntersects reports whether l touches the shape s, which must not be a
// path.
func lineIntersects(l Line, s Shape, tol Tolerance) bool {
	switch s := s.(type) {
	case *Segment:
		return l.Intersect(s.Line(), tol).Kind != IntersectionNone
	case *Ellipse:
		return s.geometry().intersectsLine(l, tol)
	case *Circle:
		return s.geometry().intersectsLine(l, tol)
	default:
		eps := tol.scaledRect(l.BoundingBox(), s.BoundingBox())
		return convexOverlap([]Point{l.P0, l.P1}, convexPoints(s), eps)
	}
}

// anyPoint returns a point that belongs to s.
func anyPoint(s Shape) Point {
	switch s := s.(type) {
	case *Segment:
		return s.Line().P0
	case *Triangle:
		return s.Vertices()[0]
	case *Path:
		return s.elements[0].To
	default:
		return s.BoundingBox().Center()
	}
}

// pathIntersects reports whether the path p, with every subpath closed,
// touches the shape s, which must not be a path.
func pathIntersects(p *Path, s Shape, tol Tolerance) bool {
	edges := p.edges.Get()
	if len(edges) == 0 {
		return containsPoint(s, anyPoint(p), tol)
	}
	rs := s.BoundingBox()
	for _, e := range edges {
		re := e.BoundingBox()
		if !re.Overlaps(rs, tol.scaledRect(re, rs)) {
			continue
		}
		if lineIntersects(e, s, tol) {
			return true
		}
	}
	// s lies entirely within the area of p.
	return p.Contains(anyPoint(s))
}

func pathsIntersect(a, b *Path, tol Tolerance) bool {
	ea, eb := a.edges.Get(), b.edges.Get()
	for _, l := range ea {
		rl := l.BoundingBox()
		for _, o := range eb {
			ro := o.BoundingBox()
			if !rl.Overlaps(ro, tol.scaledRect(rl, ro)) {
				continue
			}
			if l.Intersect(o, tol).Kind != IntersectionNone {
				return true
			}
		}
	}
	return a.Contains(anyPoint(b)) || b.Contains(anyPoint(a))
}

// containsGeneric handles convex containers: they contain a shape exactly
// if they contain all of its outline points.
func containsGeneric(outer, inner Shape, tol Tolerance) bool {
	for _, pt := range samplePoints(inner, tol) {
		if !containsPoint(outer, pt, tol) {
			return false
		}
	}
	return true
}

// polygonContainsEllipse tests a filled ellipse against every edge of a
// convex polygon, using the ellipse's extent along the edge's outward
// normal.
func polygonContainsEllipse(outer, inner Shape, tol Tolerance) bool {
	g := ellipseOf(inner)
	pts := convexPoints(outer)
	var centroid Vec2
	for _, pt := range pts {
		centroid = centroid.Add(Vec2(pt))
	}
	centroid = centroid.Div(float64(len(pts)))
	eps := tol.scaledRect(outer.BoundingBox(), g.bbox())

	// A polygon without area contains only what lies on its edges.
	area := 0.0
	for i := range pts {
		area += Vec2(pts[i]).Cross(Vec2(pts[(i+1)%len(pts)]))
	}
	if area == 0 {
		return g.degenerate() && containsGeneric(outer, inner, tol)
	}

	for i := range pts {
		p0, p1 := pts[i], pts[(i+1)%len(pts)]
		d := p1.Sub(p0)
		if d.Hypot2() == 0 {
			continue
		}
		n := d.Perp().Normalize()
		if n.Dot(Point(centroid).Sub(p0)) > 0 {
			n = n.Negate()
		}
		if g.support(n) > Vec2(p0).Dot(n)+eps {
			return false
		}
	}
	return true
}

// containsPath tests a path against a convex container through its
// flattened vertices.
func containsPath(outer, inner Shape, tol Tolerance) bool {
	if _, ok := outer.(*Path); ok {
		return pathContains(outer, inner, tol)
	}
	return containsGeneric(outer, inner, tol)
}

// pathContains reports whether the area of the path outer contains inner:
// all of inner's outline points lie within the path, no edge of inner
// crosses an edge of the path, and no part of the path's outline, such as
// a hole, lies in the interior of inner.
func pathContains(outer, inner Shape, tol Tolerance) bool {
	p := outer.(*Path)
	for _, pt := range samplePoints(inner, tol) {
		if !p.Contains(pt) && p.Distance(pt) > tol.scaled(pt.X, pt.Y) {
			return false
		}
	}
	pe := p.edges.Get()
	ie := outlineEdges(inner, tol)
	for _, e := range ie {
		for _, o := range pe {
			if properlyCrosses(e, o, tol) {
				return false
			}
		}
	}
	for _, o := range pe {
		if inInterior(inner, ie, o.P0, tol) {
			return false
		}
	}
	return true
}

// inInterior reports whether pt lies in s but farther than the tolerance
// from its outline edges.
func inInterior(s Shape, edges []Line, pt Point, tol Tolerance) bool {
	if !containsPoint(s, pt, tol) {
		return false
	}
	eps := tol.scaled(pt.X, pt.Y)
	for _, e := range edges {
		if e.Distance(pt) <= eps {
			return false
		}
	}
	return true
}

// properlyCrosses reports whether a and b cross at a single point interior
// to both.
func properlyCrosses(a, b Line, tol Tolerance) bool {
	o1 := orientation(a.P0, a.P1, b.P0, tol.Epsilon)
	o2 := orientation(a.P0, a.P1, b.P1, tol.Epsilon)
	o3 := orientation(b.P0, b.P1, a.P0, tol.Epsilon)
	o4 := orientation(b.P0, b.P1, a.P1, tol.Epsilon)
	return o1*o2 < 0 && o3*o4 < 0
}
