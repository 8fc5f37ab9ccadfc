package geom

import (
	"fmt"
	"iter"
	"math"
	"slices"

	"golang.org/x/image/math/fixed"
)

type PathElementKind int

const (
	// Move directly to the point without drawing anything, starting a new
	// subpath.
	MoveToKind PathElementKind = iota + 1
	// Draw a line from the current location to the point.
	LineToKind
	// Draw a quadratic Bézier using the current location and the two points.
	QuadToKind
	// Draw a cubic Bézier using the current location and the three points.
	CurveToKind
	// Close off the subpath with a line back to its start.
	ClosePathKind
)

func (k PathElementKind) String() string {
	switch k {
	case MoveToKind:
		return "MoveTo"
	case LineToKind:
		return "LineTo"
	case QuadToKind:
		return "QuadTo"
	case CurveToKind:
		return "CurveTo"
	case ClosePathKind:
		return "ClosePath"
	default:
		return "InvalidPathElement"
	}
}

// PathElement is one element of a [Path]. Unlike in many path
// representations, every element records the point it starts from, so
// elements can be processed without tracking the current point.
//
// For MoveTo elements, From equals To. Ctrl1 is used by QuadTo and CurveTo,
// Ctrl2 only by CurveTo.
type PathElement struct {
	Kind  PathElementKind
	From  Point
	Ctrl1 Point
	Ctrl2 Point
	To    Point
}

func MoveTo(to Point) PathElement {
	return PathElement{Kind: MoveToKind, From: to, To: to}
}

func LineTo(from, to Point) PathElement {
	return PathElement{Kind: LineToKind, From: from, To: to}
}

func QuadTo(from, ctrl, to Point) PathElement {
	return PathElement{Kind: QuadToKind, From: from, Ctrl1: ctrl, To: to}
}

func CurveTo(from, ctrl1, ctrl2, to Point) PathElement {
	return PathElement{Kind: CurveToKind, From: from, Ctrl1: ctrl1, Ctrl2: ctrl2, To: to}
}

// ClosePath returns the element closing a subpath that currently ends at
// from and started at to.
func ClosePath(from, to Point) PathElement {
	return PathElement{Kind: ClosePathKind, From: from, To: to}
}

func (el PathElement) String() string {
	switch el.Kind {
	case QuadToKind:
		return fmt.Sprintf("%s(%s, %s, %s)", el.Kind, el.From, el.Ctrl1, el.To)
	case CurveToKind:
		return fmt.Sprintf("%s(%s, %s, %s, %s)", el.Kind, el.From, el.Ctrl1, el.Ctrl2, el.To)
	default:
		return fmt.Sprintf("%s(%s, %s)", el.Kind, el.From, el.To)
	}
}

// points returns the points ToArray reports, in order.
func (el PathElement) points() []Point {
	switch el.Kind {
	case QuadToKind:
		return []Point{el.Ctrl1, el.To}
	case CurveToKind:
		return []Point{el.Ctrl1, el.Ctrl2, el.To}
	case MoveToKind, LineToKind, ClosePathKind:
		return []Point{el.To}
	default:
		return nil
	}
}

// ArrayLen returns the number of values ToArray returns: 2 for MoveTo,
// LineTo and ClosePath, 4 for QuadTo, 6 for CurveTo.
func (el PathElement) ArrayLen() int {
	return 2 * len(el.points())
}

// ToArray returns the element's coordinates, excluding From, as a flat
// array: (toX, toY) for MoveTo, LineTo and ClosePath, (ctrlX, ctrlY, toX,
// toY) for QuadTo and (ctrl1X, ctrl1Y, ctrl2X, ctrl2Y, toX, toY) for CurveTo.
func (el PathElement) ToArray() []float64 {
	out := make([]float64, el.ArrayLen())
	el.ToArrayBuffer(out)
	return out
}

// ToArrayBuffer is like ToArray but writes into dst, returning the number of
// values written. A dst shorter than ArrayLen fails with
// [ErrInvalidArgument] without writing anything.
func (el PathElement) ToArrayBuffer(dst []float64) (int, error) {
	pts := el.points()
	if len(dst) < 2*len(pts) {
		return 0, invalidArgument("PathElement.ToArrayBuffer", "buffer of length %d too short for %s, need %d", len(dst), el.Kind, 2*len(pts))
	}
	for i, pt := range pts {
		dst[2*i] = pt.X
		dst[2*i+1] = pt.Y
	}
	return 2 * len(pts), nil
}

// ToFixed is like ToArray but returns 26.6 fixed-point points, as used by
// font rasterizers.
func (el PathElement) ToFixed() []fixed.Point26_6 {
	pts := el.points()
	out := make([]fixed.Point26_6, len(pts))
	for i, pt := range pts {
		out[i] = pt.Fixed()
	}
	return out
}

// PathElementFromArray is the inverse of ToArray. The element's From is
// from.
func PathElementFromArray(kind PathElementKind, from Point, vs []float64) (PathElement, error) {
	el := PathElement{Kind: kind}
	need := el.ArrayLen()
	if need == 0 {
		return PathElement{}, invalidArgument("PathElementFromArray", "invalid kind %d", int(kind))
	}
	if len(vs) != need {
		return PathElement{}, invalidArgument("PathElementFromArray", "%s needs %d values, got %d", kind, need, len(vs))
	}
	pt := func(i int) Point { return Point{vs[2*i], vs[2*i+1]} }
	switch kind {
	case MoveToKind:
		return MoveTo(pt(0)), nil
	case LineToKind:
		return LineTo(from, pt(0)), nil
	case QuadToKind:
		return QuadTo(from, pt(0), pt(1)), nil
	case CurveToKind:
		return CurveTo(from, pt(0), pt(1), pt(2)), nil
	default:
		return ClosePath(from, pt(0)), nil
	}
}

// IsDrawable reports whether the element draws something of non-zero
// length.
func (el PathElement) IsDrawable() bool {
	switch el.Kind {
	case LineToKind, ClosePathKind:
		return el.From != el.To
	case QuadToKind:
		return el.From != el.To || el.From != el.Ctrl1
	case CurveToKind:
		return el.From != el.To || el.From != el.Ctrl1 || el.From != el.Ctrl2
	default:
		return false
	}
}

func (el PathElement) Transform(aff Affine) PathElement {
	return PathElement{
		Kind:  el.Kind,
		From:  el.From.Transform(aff),
		Ctrl1: el.Ctrl1.Transform(aff),
		Ctrl2: el.Ctrl2.Transform(aff),
		To:    el.To.Transform(aff),
	}
}

func (el PathElement) IsInf() bool {
	return el.From.IsInf() || el.Ctrl1.IsInf() || el.Ctrl2.IsInf() || el.To.IsInf()
}

func (el PathElement) IsNaN() bool {
	return el.From.IsNaN() || el.Ctrl1.IsNaN() || el.Ctrl2.IsNaN() || el.To.IsNaN()
}

// Quad returns the element as a quadratic Bézier. Only valid for QuadTo.
func (el PathElement) Quad() QuadBez { return QuadBez{el.From, el.Ctrl1, el.To} }

// Cubic returns the element as a cubic Bézier. Only valid for CurveTo.
func (el PathElement) Cubic() CubicBez { return CubicBez{el.From, el.Ctrl1, el.Ctrl2, el.To} }

// WindingRule decides which points a path encloses.
type WindingRule int

const (
	// NonZero encloses points with a non-zero winding number.
	NonZero WindingRule = iota
	// EvenOdd encloses points crossed by an odd number of edges.
	EvenOdd
)

func (r WindingRule) String() string {
	switch r {
	case NonZero:
		return "NonZero"
	case EvenOdd:
		return "EvenOdd"
	default:
		return "InvalidWindingRule"
	}
}

// Subpath is a run of elements starting with a MoveTo.
type Subpath struct {
	Elements []PathElement
	// Closed reports whether the subpath ends with a ClosePath element.
	Closed bool
}

// Path is a mutable sequence of path elements, built with the drawing
// methods MoveTo, LineTo, QuadTo, CurveTo and ClosePath.
//
// Every subpath starts with a MoveTo. For containment and intersection,
// open subpaths are treated as if they were closed.
type Path struct {
	shapeState
	elements []PathElement
	rule     WindingRule

	hasCurrent bool
	current    Point
	start      Point

	bbox *Cached[Rect]
	// edges is the flattened outline, every subpath closed.
	edges *Cached[[]Line]
}

// NewPath returns an empty path using the given winding rule.
func NewPath(rule WindingRule, opts ...Option) *Path {
	p := &Path{rule: rule}
	p.bbox = NewCached("Path.BoundingBox", p.computeBoundingBox)
	p.edges = NewCached("Path.edges", p.computeEdges)
	p.init(buildOptions(opts).tol, p.bbox, p.edges)
	return p
}

func (p *Path) String() string {
	return fmt.Sprintf("Path(%s, %d elements)", p.rule, len(p.elements))
}

func (p *Path) Kind() ShapeKind { return KindPath }

func (p *Path) WindingRule() WindingRule { return p.rule }

func (p *Path) SetWindingRule(rule WindingRule) {
	if p.rule != rule {
		p.rule = rule
		p.changed()
	}
}

// Len returns the number of elements.
func (p *Path) Len() int { return len(p.elements) }

// At returns the i-th element.
func (p *Path) At(i int) PathElement { return p.elements[i] }

// IsEmpty reports whether the path has no elements.
func (p *Path) IsEmpty() bool { return len(p.elements) == 0 }

// Elements returns an iterator over the path's elements. The iterator can be
// used more than once; modifying the path while iterating is not supported.
func (p *Path) Elements() iter.Seq[PathElement] { return slices.Values(p.elements) }

// Subpaths returns an iterator over the path's subpaths.
func (p *Path) Subpaths() iter.Seq[Subpath] {
	return func(yield func(Subpath) bool) {
		start := -1
		for i, el := range p.elements {
			switch el.Kind {
			case MoveToKind:
				if start >= 0 && !yield(Subpath{Elements: p.elements[start:i]}) {
					return
				}
				start = i
			case ClosePathKind:
				if !yield(Subpath{Elements: p.elements[start : i+1], Closed: true}) {
					return
				}
				start = -1
			}
		}
		if start >= 0 {
			yield(Subpath{Elements: p.elements[start:]})
		}
	}
}

// CurrentPoint returns the point the next drawing operation starts from, or
// false if there is none yet.
func (p *Path) CurrentPoint() (Point, bool) { return p.current, p.hasCurrent }

// MoveTo starts a new subpath at pt. A MoveTo directly following another
// MoveTo replaces it.
func (p *Path) MoveTo(pt Point) error {
	if err := checkFinite("Path.MoveTo", pt.X, pt.Y); err != nil {
		return err
	}
	if n := len(p.elements); n > 0 && p.elements[n-1].Kind == MoveToKind {
		p.elements = p.elements[:n-1]
	}
	p.push(MoveTo(pt))
	p.start = pt
	return nil
}

func (p *Path) LineTo(pt Point) error {
	from, err := p.draw("Path.LineTo", pt.X, pt.Y)
	if err != nil {
		return err
	}
	p.push(LineTo(from, pt))
	return nil
}

func (p *Path) QuadTo(ctrl, pt Point) error {
	from, err := p.draw("Path.QuadTo", ctrl.X, ctrl.Y, pt.X, pt.Y)
	if err != nil {
		return err
	}
	p.push(QuadTo(from, ctrl, pt))
	return nil
}

func (p *Path) CurveTo(ctrl1, ctrl2, pt Point) error {
	from, err := p.draw("Path.CurveTo", ctrl1.X, ctrl1.Y, ctrl2.X, ctrl2.Y, pt.X, pt.Y)
	if err != nil {
		return err
	}
	p.push(CurveTo(from, ctrl1, ctrl2, pt))
	return nil
}

// ClosePath closes the current subpath with a line back to its start, which
// becomes the current point. Closing an already closed subpath does nothing.
func (p *Path) ClosePath() error {
	from, err := p.from("Path.ClosePath")
	if err != nil {
		return err
	}
	if p.elements[len(p.elements)-1].Kind == ClosePathKind {
		return nil
	}
	p.push(ClosePath(from, p.start))
	return nil
}

// from validates a drawing operation and returns its start point.
func (p *Path) from(op string, vs ...float64) (Point, error) {
	if !p.hasCurrent {
		return Point{}, illegalState(op, "no current point, call MoveTo first")
	}
	if err := checkFinite(op, vs...); err != nil {
		return Point{}, err
	}
	return p.current, nil
}

// draw validates a drawing operation like from. Drawing after ClosePath
// starts a new subpath at the closed one's start.
func (p *Path) draw(op string, vs ...float64) (Point, error) {
	from, err := p.from(op, vs...)
	if err != nil {
		return Point{}, err
	}
	if p.elements[len(p.elements)-1].Kind == ClosePathKind {
		p.elements = append(p.elements, MoveTo(p.start))
	}
	return from, nil
}

func (p *Path) push(el PathElement) {
	p.elements = append(p.elements, el)
	p.current = el.To
	p.hasCurrent = true
	p.changed()
}

// The must variants are used by shapes that build paths from already
// validated coordinates.

func (p *Path) mustMoveTo(pt Point) {
	if err := p.MoveTo(pt); err != nil {
		panic(err)
	}
}

func (p *Path) mustLineTo(pt Point) {
	if err := p.LineTo(pt); err != nil {
		panic(err)
	}
}

func (p *Path) mustCurveTo(c1, c2, pt Point) {
	if err := p.CurveTo(c1, c2, pt); err != nil {
		panic(err)
	}
}

func (p *Path) mustClose() {
	if err := p.ClosePath(); err != nil {
		panic(err)
	}
}

// Append replays the elements of seq onto the path, using only their Kind,
// control points and To. It stops at the first element that fails.
func (p *Path) Append(seq iter.Seq[PathElement]) error {
	for el := range seq {
		var err error
		switch el.Kind {
		case MoveToKind:
			err = p.MoveTo(el.To)
		case LineToKind:
			err = p.LineTo(el.To)
		case QuadToKind:
			err = p.QuadTo(el.Ctrl1, el.To)
		case CurveToKind:
			err = p.CurveTo(el.Ctrl1, el.Ctrl2, el.To)
		case ClosePathKind:
			err = p.ClosePath()
		default:
			err = invalidArgument("Path.Append", "invalid element kind %d", int(el.Kind))
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// Clear removes all elements.
func (p *Path) Clear() {
	if len(p.elements) == 0 && !p.hasCurrent {
		return
	}
	p.elements = p.elements[:0]
	p.hasCurrent = false
	p.current = Point{}
	p.start = Point{}
	p.changed()
}

// Translate moves every point of the path by v.
func (p *Path) Translate(v Vec2) error {
	return p.Transform(Translate(v))
}

// Transform applies aff to every point of the path, in place.
func (p *Path) Transform(aff Affine) error {
	if err := checkFinite("Path.Transform", aff.N0, aff.N1, aff.N2, aff.N3, aff.N4, aff.N5); err != nil {
		return err
	}
	for i := range p.elements {
		p.elements[i] = p.elements[i].Transform(aff)
	}
	p.current = p.current.Transform(aff)
	p.start = p.start.Transform(aff)
	p.changed()
	return nil
}

// Clone returns a deep copy of the path with no watchers.
func (p *Path) Clone() *Path {
	q := NewPath(p.rule, WithTolerance(p.tol))
	q.elements = slices.Clone(p.elements)
	q.hasCurrent, q.current, q.start = p.hasCurrent, p.current, p.start
	return q
}

// Path returns a copy of p.
func (p *Path) Path() *Path { return p.Clone() }

// BoundingBox returns the bounding box of all points of the path, including
// control points. The box is therefore not necessarily tight around the
// curves. An empty path has the zero Rect as its bounding box.
func (p *Path) BoundingBox() Rect { return p.bbox.Get() }

func (p *Path) computeBoundingBox() Rect {
	if len(p.elements) == 0 {
		return Rect{}
	}
	first := p.elements[0].To
	bbox := Rect{first.X, first.Y, first.X, first.Y}
	for _, el := range p.elements {
		for _, pt := range el.points() {
			bbox = bbox.UnionPoint(pt)
		}
	}
	return bbox
}

// Flatten returns an iterator over the path with all curves replaced by line
// segments. See [FlattenElements].
func (p *Path) Flatten(tol Tolerance) iter.Seq[PathElement] {
	return FlattenElements(p.Elements(), tol)
}

// Edges returns the flattened outline of the path as line segments, using
// the path's tolerance. Every subpath is closed by an implicit edge back to
// its start, unless it is closed already.
func (p *Path) Edges() []Line { return slices.Clone(p.edges.Get()) }

func (p *Path) computeEdges() []Line {
	var edges []Line
	var start Point
	open := false
	closeSubpath := func(last Point) {
		if open && last != start {
			edges = append(edges, Line{last, start})
		}
		open = false
	}
	var last Point
	for el := range p.Flatten(p.tol) {
		switch el.Kind {
		case MoveToKind:
			closeSubpath(last)
			start, last, open = el.To, el.To, true
		case LineToKind:
			edges = append(edges, Line{el.From, el.To})
			last = el.To
		case ClosePathKind:
			if el.From != el.To {
				edges = append(edges, Line{el.From, el.To})
			}
			open = false
			last = el.To
		}
	}
	closeSubpath(last)
	return edges
}

// vertices returns the points of the flattened path.
func (p *Path) vertices() []Point {
	var out []Point
	for el := range p.Flatten(p.tol) {
		if el.Kind != ClosePathKind {
			out = append(out, el.To)
		}
	}
	return out
}

// Winding returns the winding number of pt with respect to the path. Each
// edge crossing a horizontal ray to the right of pt contributes +1 if it
// goes upwards and -1 if it goes downwards. Edges are half-open in y, so
// points on the boundary are classified consistently.
func (p *Path) Winding(pt Point) int {
	w, _ := windingNumber(p.edges.Get(), pt)
	return w
}

// Contains reports whether pt lies in the area enclosed by the path under its
// winding rule.
func (p *Path) Contains(pt Point) bool {
	if p.IsEmpty() || !p.BoundingBox().Contains(pt) {
		return false
	}
	return p.rule.encloses(windingNumber(p.edges.Get(), pt))
}

// Distance returns the distance between pt and the area enclosed by the
// path. It is 0 for enclosed points and +Inf for an empty path.
func (p *Path) Distance(pt Point) float64 {
	if p.Contains(pt) {
		return 0
	}
	edges := p.edges.Get()
	if len(edges) == 0 {
		if p.IsEmpty() {
			return math.Inf(1)
		}
		return pt.Distance(p.elements[0].To)
	}
	d := math.Inf(1)
	for _, e := range edges {
		d = min(d, e.Distance(pt))
	}
	return d
}

func (p *Path) ContainsShape(o Shape) bool { return Contains(p, o, p.tol) }
func (p *Path) Intersects(o Shape) bool    { return intersectsShape(p, o) }

func (rule WindingRule) encloses(winding, crossings int) bool {
	if rule == EvenOdd {
		return crossings%2 != 0
	}
	return winding != 0
}
