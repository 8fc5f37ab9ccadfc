package geom

import (
	"fmt"
)

// Rectangle is a mutable axis-aligned rectangle, defined by its minimum and
// maximum corners.
//
// The corners are stored in cells of the configured storage. If the storage
// is observable and the cells are changed such that min exceeds max, the
// rectangle behaves as if the corners had been swapped.
type Rectangle struct {
	shapeState
	min, max *Point2
	bbox     *Cached[Rect]
}

// NewRectangle returns the rectangle with origin (x, y) and the given size.
// A negative width or height fails with [ErrInvalidArgument].
func NewRectangle(x, y, width, height float64, opts ...Option) (*Rectangle, error) {
	if err := checkSize("NewRectangle", x, y, width, height); err != nil {
		return nil, err
	}
	o := buildOptions(opts)
	min := NewPoint2(x, y, WithStorage(o.storage))
	max := NewPoint2(x+width, y+height, WithStorage(o.storage))
	return newRectangle(min, max, o.tol), nil
}

// NewRectangleFromCorners returns the rectangle spanned by two opposite
// corners, given in any order.
func NewRectangleFromCorners(p0, p1 Point, opts ...Option) (*Rectangle, error) {
	if err := checkFinite("NewRectangleFromCorners", p0.X, p0.Y, p1.X, p1.Y); err != nil {
		return nil, err
	}
	r := NewRectFromPoints(p0, p1)
	return NewRectangle(r.X0, r.Y0, r.Width(), r.Height(), opts...)
}

// NewRectangleFromPoints returns a rectangle that takes ownership of the
// corner points min and max.
func NewRectangleFromPoints(min, max *Point2, opts ...Option) (*Rectangle, error) {
	if min == nil || max == nil {
		return nil, nilReference("NewRectangleFromPoints", "corner")
	}
	if min.X() > max.X() || min.Y() > max.Y() {
		return nil, invalidArgument("NewRectangleFromPoints", "min %v exceeds max %v", min.Point(), max.Point())
	}
	return newRectangle(min, max, buildOptions(opts).tol), nil
}

func newRectangle(min, max *Point2, tol Tolerance) *Rectangle {
	r := &Rectangle{min: min, max: max}
	r.bbox = NewCached("Rectangle.BoundingBox", func() Rect {
		return NewRectFromPoints(r.min.Point(), r.max.Point())
	})
	r.init(tol, r.bbox)
	r.track(min, max)
	return r
}

// checkSize validates an origin and size.
func checkSize(op string, x, y, width, height float64) error {
	if err := checkFinite(op, x, y, width, height); err != nil {
		return err
	}
	if width < 0 || height < 0 {
		return invalidArgument(op, "negative size %g×%g", width, height)
	}
	return nil
}

func (r *Rectangle) String() string {
	b := r.BoundingBox()
	return fmt.Sprintf("Rectangle(%g, %g, %g, %g)", b.X0, b.Y0, b.X1, b.Y1)
}

func (r *Rectangle) Kind() ShapeKind { return KindRectangle }

// Min returns a read-only view of the minimum corner.
func (r *Rectangle) Min() View { return r.min.Unmodifiable() }

// Max returns a read-only view of the maximum corner.
func (r *Rectangle) Max() View { return r.max.Unmodifiable() }

func (r *Rectangle) MinX() float64 { return r.BoundingBox().X0 }
func (r *Rectangle) MinY() float64 { return r.BoundingBox().Y0 }
func (r *Rectangle) MaxX() float64 { return r.BoundingBox().X1 }
func (r *Rectangle) MaxY() float64 { return r.BoundingBox().Y1 }

func (r *Rectangle) Width() float64  { return r.BoundingBox().Width() }
func (r *Rectangle) Height() float64 { return r.BoundingBox().Height() }

// BoundingBox returns the rectangle itself.
func (r *Rectangle) BoundingBox() Rect { return r.bbox.Get() }

func (r *Rectangle) Center() Point      { return r.BoundingBox().Center() }
func (r *Rectangle) Area() float64      { return r.BoundingBox().Area() }
func (r *Rectangle) Perimeter() float64 { return 2 * (r.Width() + r.Height()) }

// Set sets the origin and size. A negative width or height fails with
// [ErrInvalidArgument] and leaves the rectangle unchanged.
func (r *Rectangle) Set(x, y, width, height float64) error {
	if err := checkSize("Rectangle.Set", x, y, width, height); err != nil {
		return err
	}
	r.setCorners(x, y, x+width, y+height)
	return nil
}

// SetFromCorners sets the rectangle to the one spanned by two opposite
// corners, given in any order.
func (r *Rectangle) SetFromCorners(x0, y0, x1, y1 float64) error {
	if err := checkFinite("Rectangle.SetFromCorners", x0, y0, x1, y1); err != nil {
		return err
	}
	r.setCorners(min(x0, x1), min(y0, y1), max(x0, x1), max(y0, y1))
	return nil
}

func (r *Rectangle) setCorners(x0, y0, x1, y1 float64) {
	r.batch(func() {
		// Callers validated the coordinates, Set cannot fail.
		_ = r.min.Set(x0, y0)
		_ = r.max.Set(x1, y1)
	})
}

// SetMinX moves the left edge. The other edges stay in place; if x exceeds
// the right edge, the edges are swapped.
func (r *Rectangle) SetMinX(x float64) error {
	b := r.BoundingBox()
	return r.SetFromCorners(x, b.Y0, b.X1, b.Y1)
}

func (r *Rectangle) SetMinY(y float64) error {
	b := r.BoundingBox()
	return r.SetFromCorners(b.X0, y, b.X1, b.Y1)
}

func (r *Rectangle) SetMaxX(x float64) error {
	b := r.BoundingBox()
	return r.SetFromCorners(b.X0, b.Y0, x, b.Y1)
}

func (r *Rectangle) SetMaxY(y float64) error {
	b := r.BoundingBox()
	return r.SetFromCorners(b.X0, b.Y0, b.X1, y)
}

// Translate moves the rectangle by v.
func (r *Rectangle) Translate(v Vec2) error {
	b := r.BoundingBox().Translate(v)
	return r.SetFromCorners(b.X0, b.Y0, b.X1, b.Y1)
}

// Transform applies aff to the rectangle. Transforms that rotate or shear
// the rectangle can't be represented and fail with [ErrInvalidArgument].
func (r *Rectangle) Transform(aff Affine) error {
	if err := aff.check("Rectangle.Transform"); err != nil {
		return err
	}
	if !aff.PreservesAxes(r.tol) {
		return invalidArgument("Rectangle.Transform", "transform %v doesn't preserve the axes", aff)
	}
	b := r.BoundingBox().Transform(aff)
	return r.SetFromCorners(b.X0, b.Y0, b.X1, b.Y1)
}

// Contains reports whether pt lies inside the rectangle or on its boundary.
func (r *Rectangle) Contains(pt Point) bool {
	return rectContains(r.BoundingBox(), pt, r.tol)
}

func rectContains(b Rect, pt Point, tol Tolerance) bool {
	eps := tol.scaledRect(b)
	return b.Inflate(eps, eps).Contains(pt)
}

func (r *Rectangle) Distance(pt Point) float64 {
	return r.BoundingBox().Distance(pt)
}

func (r *Rectangle) ContainsShape(o Shape) bool { return Contains(r, o, r.tol) }
func (r *Rectangle) Intersects(o Shape) bool    { return intersectsShape(r, o) }

// Path returns a closed path tracing the rectangle's corners.
func (r *Rectangle) Path() *Path {
	b := r.BoundingBox()
	p := NewPath(NonZero, WithTolerance(r.tol))
	cs := b.Corners()
	p.mustMoveTo(cs[0])
	for _, c := range cs[1:] {
		p.mustLineTo(c)
	}
	p.mustClose()
	return p
}
