package geom

import (
	"fmt"
)

// Tuple2 is a pair of coordinates. It is implemented by the mutable [*Point2]
// and by its unmodifiable [View].
type Tuple2 interface {
	X() float64
	Y() float64
	// Point returns a snapshot of the current coordinates.
	Point() Point
	// Vec returns a snapshot of the current coordinates as a vector.
	Vec() Vec2

	SetX(x float64) error
	SetY(y float64) error
	Set(x, y float64) error

	// Watch registers fn to be called synchronously after the coordinates
	// change.
	Watch(fn func()) (cancel func())
	// Unmodifiable returns a read-only view sharing the same storage.
	Unmodifiable() View
}

var (
	_ Tuple2 = (*Point2)(nil)
	_ Tuple2 = View{}
)

// Point2 is a mutable pair of coordinates stored in two cells.
//
// If the cells are [Observable], changes made to them directly (for example
// by a UI binding) are forwarded to the watchers of the Point2 as well.
type Point2 struct {
	x, y Cell
	// Observable cells notify us of every change, including our own writes.
	xObs, yObs bool
	notifier
}

// NewPoint2 returns a point at (x, y) stored in cells created by the storage
// configured with [WithStorage].
func NewPoint2(x, y float64, opts ...Option) *Point2 {
	o := buildOptions(opts)
	p, _ := NewPoint2FromCells(o.storage.NewCell(x), o.storage.NewCell(y))
	return p
}

// NewPoint2FromCells returns a point that takes ownership of the cells x and
// y.
func NewPoint2FromCells(x, y Cell) (*Point2, error) {
	if x == nil {
		return nil, nilReference("NewPoint2FromCells", "x cell")
	}
	if y == nil {
		return nil, nilReference("NewPoint2FromCells", "y cell")
	}
	p := &Point2{x: x, y: y}
	if obs, ok := x.(Observable); ok {
		p.xObs = true
		obs.Watch(p.notify)
	}
	if obs, ok := y.(Observable); ok {
		p.yObs = true
		obs.Watch(p.notify)
	}
	return p, nil
}

func (p *Point2) String() string {
	return fmt.Sprintf("Point2(%g, %g)", p.X(), p.Y())
}

func (p *Point2) X() float64   { return p.x.Get() }
func (p *Point2) Y() float64   { return p.y.Get() }
func (p *Point2) Point() Point { return Point{X: p.x.Get(), Y: p.y.Get()} }
func (p *Point2) Vec() Vec2    { return Vec2{X: p.x.Get(), Y: p.y.Get()} }

// SetX sets the x coordinate. Non-finite values are rejected with
// [ErrInvalidArgument].
func (p *Point2) SetX(x float64) error {
	if err := checkFinite("Point2.SetX", x); err != nil {
		return err
	}
	if p.write(p.x, p.xObs, x) {
		p.notify()
	}
	return nil
}

// SetY sets the y coordinate. Non-finite values are rejected with
// [ErrInvalidArgument].
func (p *Point2) SetY(y float64) error {
	if err := checkFinite("Point2.SetY", y); err != nil {
		return err
	}
	if p.write(p.y, p.yObs, y) {
		p.notify()
	}
	return nil
}

// Set sets both coordinates. Either both are written or, if one of them is
// not finite, neither is.
func (p *Point2) Set(x, y float64) error {
	if err := checkFinite("Point2.Set", x, y); err != nil {
		return err
	}
	changedX := p.write(p.x, p.xObs, x)
	changedY := p.write(p.y, p.yObs, y)
	if changedX || changedY {
		p.notify()
	}
	return nil
}

// SetPoint is like Set.
func (p *Point2) SetPoint(pt Point) error {
	return p.Set(pt.X, pt.Y)
}

// Translate moves the point by v in place.
func (p *Point2) Translate(v Vec2) error {
	return p.Set(p.X()+v.X, p.Y()+v.Y)
}

// Scale multiplies both coordinates by f in place.
func (p *Point2) Scale(f float64) error {
	return p.Set(p.X()*f, p.Y()*f)
}

// write stores v in c and reports whether the caller still has to notify
// watchers, which is the case for cells that don't notify on their own.
func (p *Point2) write(c Cell, observed bool, v float64) bool {
	old := c.Get()
	c.Set(v)
	return !observed && c.Get() != old
}

// Unmodifiable returns a read-only view of p.
func (p *Point2) Unmodifiable() View {
	return View{owner: p}
}

// View is a read-only alias of a [*Point2]. It never copies the coordinates:
// reads always return the owner's current values. All mutators fail with
// [ErrUnsupportedOperation] and leave the owner unchanged.
type View struct {
	owner *Point2
}

func (v View) String() string {
	return fmt.Sprintf("View(%g, %g)", v.X(), v.Y())
}

func (v View) X() float64   { return v.owner.X() }
func (v View) Y() float64   { return v.owner.Y() }
func (v View) Point() Point { return v.owner.Point() }
func (v View) Vec() Vec2    { return v.owner.Vec() }

func (View) SetX(float64) error         { return unsupported("View.SetX") }
func (View) SetY(float64) error         { return unsupported("View.SetY") }
func (View) Set(float64, float64) error { return unsupported("View.Set") }
func (View) SetPoint(Point) error       { return unsupported("View.SetPoint") }
func (View) Translate(Vec2) error       { return unsupported("View.Translate") }
func (View) Scale(float64) error        { return unsupported("View.Scale") }
func (v View) Unmodifiable() View       { return v }
func (v View) Watch(fn func()) func()   { return v.owner.Watch(fn) }

// IsViewOf reports whether v is a view of p.
func (v View) IsViewOf(p *Point2) bool { return v.owner == p }
