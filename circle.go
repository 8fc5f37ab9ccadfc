package geom

import (
	"fmt"
	"math"
)

// Circle is a mutable circle, defined by its center and radius.
type Circle struct {
	shapeState
	center *Point2
	radius Cell
	bbox   *Cached[Rect]
}

// NewCircle returns the circle with the given center and radius. A negative
// radius fails with [ErrInvalidArgument].
func NewCircle(center Point, radius float64, opts ...Option) (*Circle, error) {
	if err := checkFinite("NewCircle", center.X, center.Y, radius); err != nil {
		return nil, err
	}
	if radius < 0 {
		return nil, invalidArgument("NewCircle", "negative radius %g", radius)
	}
	o := buildOptions(opts)
	c := &Circle{
		center: NewPoint2(center.X, center.Y, WithStorage(o.storage)),
		radius: o.storage.NewCell(radius),
	}
	c.bbox = NewCached("Circle.BoundingBox", func() Rect {
		return c.geometry().bbox()
	})
	c.init(o.tol, c.bbox)
	c.track(c.center)
	if obs, ok := c.radius.(Observable); ok {
		obs.Watch(c.changed)
	}
	return c, nil
}

// NewCircleFromRect returns the circle framed by the square with origin
// (x, y) and the given size. Width and height must be equal, otherwise
// [ErrInvalidArgument] is returned.
func NewCircleFromRect(x, y, width, height float64, opts ...Option) (*Circle, error) {
	if err := checkSize("NewCircleFromRect", x, y, width, height); err != nil {
		return nil, err
	}
	if width != height {
		return nil, invalidArgument("NewCircleFromRect", "frame %g×%g is not a square", width, height)
	}
	return NewCircle(Point{x + width/2, y + height/2}, width/2, opts...)
}

func (c *Circle) String() string {
	return fmt.Sprintf("Circle(center %v, radius %g)", c.center.Point(), c.Radius())
}

func (c *Circle) Kind() ShapeKind { return KindCircle }

// CenterPoint returns a read-only view of the center.
func (c *Circle) CenterPoint() View { return c.center.Unmodifiable() }

func (c *Circle) Center() Point      { return c.center.Point() }
func (c *Circle) Radius() float64    { return math.Abs(c.radius.Get()) }
func (c *Circle) BoundingBox() Rect  { return c.bbox.Get() }
func (c *Circle) Area() float64      { return c.geometry().area() }
func (c *Circle) Perimeter() float64 { return 2 * math.Pi * c.Radius() }

// SetCenter moves the circle's center to pt.
func (c *Circle) SetCenter(pt Point) error {
	if err := checkFinite("Circle.SetCenter", pt.X, pt.Y); err != nil {
		return err
	}
	return c.center.SetPoint(pt)
}

// SetRadius sets the radius. A negative radius fails with
// [ErrInvalidArgument].
func (c *Circle) SetRadius(r float64) error {
	if err := checkFinite("Circle.SetRadius", r); err != nil {
		return err
	}
	if r < 0 {
		return invalidArgument("Circle.SetRadius", "negative radius %g", r)
	}
	old := c.radius.Get()
	c.radius.Set(r)
	if _, obs := c.radius.(Observable); !obs && c.radius.Get() != old {
		c.changed()
	}
	return nil
}

// Translate moves the circle by v.
func (c *Circle) Translate(v Vec2) error {
	return c.SetCenter(c.Center().Translate(v))
}

// Transform applies aff to the circle. Only similarity transforms, which
// map circles to circles, are supported.
func (c *Circle) Transform(aff Affine) error {
	if err := aff.check("Circle.Transform"); err != nil {
		return err
	}
	if !aff.IsSimilarity(c.tol) {
		return invalidArgument("Circle.Transform", "transform %v doesn't preserve circles", aff)
	}
	center := c.Center().Transform(aff)
	r := c.Radius() * math.Sqrt(math.Abs(aff.Determinant()))
	if err := checkFinite("Circle.Transform", center.X, center.Y, r); err != nil {
		return err
	}
	c.batch(func() {
		// Validated above, neither setter can fail.
		_ = c.SetCenter(center)
		_ = c.SetRadius(r)
	})
	return nil
}

// Contains reports whether pt lies inside the circle or on its boundary.
func (c *Circle) Contains(pt Point) bool {
	r := c.Radius()
	return c.Center().Distance(pt) <= r+c.tol.scaled(r)
}

// Distance returns the distance between pt and the filled circle.
func (c *Circle) Distance(pt Point) float64 {
	return max(0, c.Center().Distance(pt)-c.Radius())
}

func (c *Circle) ContainsShape(o Shape) bool { return Contains(c, o, c.tol) }
func (c *Circle) Intersects(o Shape) bool    { return intersectsShape(c, o) }
func (c *Circle) Path() *Path                { return c.geometry().path(c.tol) }

func (c *Circle) geometry() ellipseGeom {
	r := c.Radius()
	return ellipseGeom{c: c.Center(), rx: r, ry: r}
}
