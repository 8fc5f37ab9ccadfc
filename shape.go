package geom

// ShapeKind identifies the concrete type of a [Shape]. The predicate matrix
// is keyed by pairs of kinds.
type ShapeKind int

const (
	KindSegment ShapeKind = iota + 1
	KindRectangle
	KindTriangle
	KindCircle
	KindEllipse
	KindPath

	numKinds = int(KindPath) + 1
)

func (k ShapeKind) String() string {
	switch k {
	case KindSegment:
		return "Segment"
	case KindRectangle:
		return "Rectangle"
	case KindTriangle:
		return "Triangle"
	case KindCircle:
		return "Circle"
	case KindEllipse:
		return "Ellipse"
	case KindPath:
		return "Path"
	default:
		return "InvalidShapeKind"
	}
}

// HasBoundingBox describes values with an axis-aligned bounding box.
type HasBoundingBox interface {
	// BoundingBox returns the smallest axis-aligned rectangle enclosing the
	// value. For shapes it is cached and recomputed only after the shape
	// changed.
	BoundingBox() Rect
}

// Containable describes shapes that can test whether points and other
// shapes lie inside them.
type Containable interface {
	// Contains reports whether pt lies in the shape. Filled shapes include
	// their interior.
	Contains(pt Point) bool
	// ContainsShape reports whether o lies entirely within the shape.
	ContainsShape(o Shape) bool
}

// Intersectable describes shapes that can test for intersection with other
// shapes.
type Intersectable interface {
	// Intersects reports whether the shape and o share at least one point.
	// Comparisons use the stricter of the two shapes' tolerances, so
	// a.Intersects(b) == b.Intersects(a) even if the tolerances differ.
	Intersects(o Shape) bool
}

// Distancer describes shapes that can compute distances to points.
type Distancer interface {
	// Distance returns the euclidean distance from pt to the nearest point
	// of the shape, which is 0 for points inside filled shapes.
	Distance(pt Point) float64
}

// Watchable describes values that report their changes.
type Watchable interface {
	// Watch registers fn to be called synchronously after every change, once
	// derived values such as the bounding box have been invalidated.
	Watch(fn func()) (cancel func())
}

// Transformable describes shapes that can be transformed in place.
type Transformable interface {
	// Translate moves the shape by v.
	Translate(v Vec2) error
	// Transform applies aff to the shape. Transforms whose result the shape
	// can't represent fail with [ErrInvalidArgument] and leave it unchanged.
	Transform(aff Affine) error
}

// Shape is implemented by all shapes of this package: [*Segment],
// [*Rectangle], [*Triangle], [*Circle], [*Ellipse] and [*Path].
type Shape interface {
	HasBoundingBox
	Containable
	Intersectable
	Distancer
	Watchable
	Transformable

	Kind() ShapeKind
	Tolerance() Tolerance
	// Path returns a new path describing the outline of the shape.
	Path() *Path
}

// ClosedShape is implemented by shapes that enclose an area.
type ClosedShape interface {
	Shape
	// Area returns the area of the shape, which is never negative.
	Area() float64
	// Perimeter returns the length of the outline.
	Perimeter() float64
	Center() Point
}

var (
	_ ClosedShape = (*Rectangle)(nil)
	_ ClosedShape = (*Ellipse)(nil)
	_ ClosedShape = (*Circle)(nil)
	_ ClosedShape = (*Triangle)(nil)
	_ Shape       = (*Segment)(nil)
	_ Shape       = (*Path)(nil)
)
