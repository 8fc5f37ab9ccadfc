// Package geom provides mutable 2D shapes whose coordinates can be shared
// with other code, such as UI widgets, and that stay consistent when those
// coordinates change. It was designed for interactive editors, where a shape
// is dragged, resized or typed into while hit tests and overlap checks run
// against its current state.
//
// # Values and shapes
//
// The package has two layers. [Point], [Vec2], [Line], [Rect] and [Affine]
// are small immutable values, used for computation. The shapes [Segment],
// [Rectangle], [Triangle], [Circle], [Ellipse] and [Path] are mutable
// objects, always used through pointers.
//
// All shapes implement [Shape], which combines the capabilities
// [HasBoundingBox], [Containable], [Intersectable], [Distancer],
// [Watchable] and [Transformable]. Shapes that enclose an area additionally implement
// [ClosedShape].
//
// # Coordinate storage
//
// Shapes don't store coordinates directly. Every coordinate lives in a
// [Cell], created by the [Storage] passed with [WithStorage]. [Plain] cells
// are bare float64 values, [Notifying] cells report changes, and
// [IntStorage] rounds to integers. The fynebind subpackage stores
// coordinates in fyne data bindings, so that widgets edit shapes directly.
//
// Points made of cells are represented by [Point2]. Accessors such as
// [Rectangle.Min] return a [View], a live read-only alias of a point. A View
// always reflects the owner's current coordinates, and all its mutators fail
// with [ErrUnsupportedOperation].
//
// # Caching and change notification
//
// Derived values such as bounding boxes are cached with [Cached] and
// invalidated whenever a coordinate of the shape changes, whether the change
// went through the shape or through an observable cell. Watchers registered
// with Watch are called after the caches were invalidated, so they always
// observe the new state.
//
// Shapes aren't safe for concurrent use.
//
// # Paths
//
// A [Path] is built from MoveTo, LineTo, QuadTo, CurveTo and ClosePath
// elements, each of which is a [PathElement]. Paths are filled according to
// their [WindingRule]. Curves are approximated by line segments for all
// queries; see [FlattenElements] and [Tolerance].
//
// # Predicates
//
// [Intersects] and [Contains] work for every pair of shape kinds. Intersects
// is symmetric. Closed shapes count as filled, and open subpaths of paths are
// treated as closed. Degenerate shapes, such as rectangles of zero width,
// contain the points of their outline.
//
// # Tolerances
//
// Comparisons and curve approximation are controlled by a [Tolerance],
// which can be set per shape with [WithTolerance] or loaded from the
// environment with [LoadTolerance].
//
// # Errors and logging
//
// Invalid arguments and illegal operations are reported as errors wrapping
// one of [ErrInvalidArgument], [ErrIllegalState], [ErrUnsupportedOperation]
// and [ErrNilReference]. The package doesn't log by default; see
// [SetLogger].
package geom
