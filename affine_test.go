package geom

import (
	"errors"
	"math"
	"testing"
)

func assertNear(t *testing.T, got Point, want Point, epsilon float64) {
	t.Helper()
	if d := got.Distance(want); d > epsilon {
		t.Fatalf("got %s, expected %s", got, want)
	}
}

func TestAffineBasic(t *testing.T) {
	const epsilon = 1e-9
	p := Pt(3, 4)
	tests := []struct {
		aff  Affine
		want Point
	}{
		{Identity, p},
		{Scale(2, 2), Pt(6, 8)},
		{Rotate(0), p},
		{Rotate(math.Pi / 2), Pt(-4, 3)},
		{Translate(Vec(5, 6)), Pt(8, 10)},
		{RotateAbout(math.Pi, Pt(3, 0)), Pt(3, -4)},
		{ScaleAbout(2, 3, Pt(1, 1)), Pt(5, 10)},
	}
	for _, tt := range tests {
		assertNear(t, p.Transform(tt.aff), tt.want, epsilon)
	}
}

func TestAffineMulInvert(t *testing.T) {
	const epsilon = 1e-9
	a1 := Affine{1, 2, 3, 4, 5, 6}
	a2 := Affine{0.1, 1.2, 2.3, 3.4, 4.5, 5.6}
	inv := a2.Invert()
	for _, p := range []Point{Pt(1, 0), Pt(0, 1), Pt(1, 1)} {
		assertNear(t, p.Transform(a2).Transform(a1), p.Transform(a1.Mul(a2)), epsilon)
		assertNear(t, p.Transform(inv).Transform(a2), p, epsilon)
		assertNear(t, p.Transform(a2).Transform(inv), p, epsilon)
	}
}

func TestAffineRectTransform(t *testing.T) {
	r := Rect{0, 0, 2, 1}
	got := r.Transform(Rotate(math.Pi / 2))
	const epsilon = 1e-9
	assertNear(t, Pt(got.X0, got.Y0), Pt(-1, 0), epsilon)
	assertNear(t, Pt(got.X1, got.Y1), Pt(0, 2), epsilon)
}

func TestAffineClassify(t *testing.T) {
	tol := DefaultTolerance
	shear := Affine{1, 0, 1, 1, 0, 0}
	tests := []struct {
		name       string
		aff        Affine
		axes, simi bool
	}{
		{"identity", Identity, true, true},
		{"uniform scale", Scale(2, 2), true, true},
		{"mirror", Scale(2, -2), true, true},
		{"stretch", Scale(1, 2), true, false},
		{"quarter turn", Rotate(math.Pi / 2), true, true},
		{"small turn", Rotate(0.1), false, true},
		{"turn and scale", Rotate(0.3).Mul(Scale(2, 2)), false, true},
		{"shear", shear, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.aff.PreservesAxes(tol); got != tt.axes {
				t.Errorf("PreservesAxes = %t, want %t", got, tt.axes)
			}
			if got := tt.aff.IsSimilarity(tol); got != tt.simi {
				t.Errorf("IsSimilarity = %t, want %t", got, tt.simi)
			}
		})
	}
}

func TestShapeTransform(t *testing.T) {
	const epsilon = 1e-9

	r, _ := NewRectangle(0, 0, 2, 1)
	if err := r.Transform(ScaleAbout(2, 3, Pt(0, 0))); err != nil {
		t.Fatal(err)
	}
	diff(t, Rect{0, 0, 4, 3}, r.BoundingBox())
	if err := r.Transform(Rotate(math.Pi / 4)); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("rotating a rectangle: got error %v, want ErrInvalidArgument", err)
	}
	if err := r.Transform(Scale(0, 1)); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("singular transform: got error %v, want ErrInvalidArgument", err)
	}
	diff(t, Rect{0, 0, 4, 3}, r.BoundingBox())

	e, _ := NewEllipse(0, 0, 4, 2)
	if err := e.Transform(Scale(-1, 1)); err != nil {
		t.Fatal(err)
	}
	diff(t, Rect{-4, 0, 0, 2}, e.BoundingBox())

	c, _ := NewCircle(Pt(1, 0), 1)
	calls := 0
	c.Watch(func() { calls++ })
	if err := c.Transform(Rotate(math.Pi / 2).Mul(Scale(2, 2))); err != nil {
		t.Fatal(err)
	}
	assertNear(t, c.Center(), Pt(0, 2), epsilon)
	if math.Abs(c.Radius()-2) > epsilon {
		t.Errorf("got radius %v, want 2", c.Radius())
	}
	if calls != 1 {
		t.Errorf("got %d notifications, want 1", calls)
	}
	if err := c.Transform(Scale(2, 1)); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("stretching a circle: got error %v, want ErrInvalidArgument", err)
	}

	// The center fits, the radius overflows: neither may change.
	huge, _ := NewCircle(Pt(1, 1), 1e300)
	calls = 0
	huge.Watch(func() { calls++ })
	if err := huge.Transform(Scale(1e10, 1e10)); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("overflowing radius: got error %v, want ErrInvalidArgument", err)
	}
	diff(t, Pt(1, 1), huge.Center())
	if huge.Radius() != 1e300 {
		t.Errorf("got radius %v, want 1e300", huge.Radius())
	}
	if calls != 0 {
		t.Errorf("got %d notifications for a rejected transform, want 0", calls)
	}

	tri, _ := NewTriangle(Pt(0, 0), Pt(1, 0), Pt(0, 1))
	if err := tri.Transform(Affine{1, 0, 1, 1, 0, 0}); err != nil {
		t.Fatal(err)
	}
	diff(t, [3]Point{{0, 0}, {1, 0}, {1, 1}}, tri.Vertices())
	if tri.Area() != 0.5 {
		t.Errorf("shear changed the area to %v", tri.Area())
	}

	s, _ := NewSegment(Pt(1, 1), Pt(3, 2))
	if err := s.Transform(Scale(0, 0)); err != nil {
		t.Errorf("collapsing a segment: %v", err)
	}
	if s.Length() != 0 {
		t.Errorf("got length %v, want 0", s.Length())
	}

	p := NewPath(NonZero)
	if err := p.Transform(Translate(Vec(math.NaN(), 0))); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("NaN transform: got error %v, want ErrInvalidArgument", err)
	}
}
