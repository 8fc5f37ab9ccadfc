package geom

import (
	"fmt"
	"testing"
)

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

func pathOf(rule WindingRule, pts ...Point) *Path {
	p := NewPath(rule)
	p.mustMoveTo(pts[0])
	for _, pt := range pts[1:] {
		p.mustLineTo(pt)
	}
	p.mustClose()
	return p
}

// testShapes returns shapes of every kind, scattered so that all
// combinations of intersecting and disjoint pairs occur.
func testShapes() []Shape {
	curved := NewPath(NonZero)
	curved.mustMoveTo(Pt(20, 0))
	curved.mustCurveTo(Pt(20, 15), Pt(35, 15), Pt(35, 0))
	curved.mustClose()

	return []Shape{
		must(NewSegment(Pt(0, 0), Pt(10, 10))),
		must(NewSegment(Pt(0, 10), Pt(10, 0))),
		must(NewSegment(Pt(12, 0), Pt(12, 20))),
		must(NewSegment(Pt(3, 3), Pt(3, 3))),
		must(NewRectangle(4, 4, 2, 2)),
		must(NewRectangle(0, 0, 20, 1)),
		must(NewRectangle(30, 30, 0, 0)),
		must(NewRectangle(-5, -5, 30, 30)),
		must(NewTriangle(Pt(0, 0), Pt(10, 0), Pt(0, 10))),
		must(NewTriangle(Pt(8, 8), Pt(18, 8), Pt(8, 18))),
		must(NewTriangle(Pt(1, 1), Pt(2, 2), Pt(3, 3))),
		must(NewCircle(Pt(5, 5), 2)),
		must(NewCircle(Pt(13, 13), 4)),
		must(NewCircle(Pt(-3, 0), 0)),
		must(NewEllipse(0, 0, 10, 4)),
		must(NewEllipse(9.5, 3.5, 2, 2)),
		must(NewEllipse(11, 0, 0, 8)),
		// A wide ellipse and a circle-like one overlapping it by 0.01 at
		// (10, 0), where only the wide one's polygon has a vertex.
		must(NewEllipse(-10, -5, 20, 10)),
		must(NewEllipse(9.99, -1.37, 2.74, 2.74)),
		pathOf(NonZero, Pt(0, 0), Pt(10, 0), Pt(10, 10), Pt(0, 10)),
		pathOf(EvenOdd, Pt(2, 2), Pt(8, 2), Pt(8, 8), Pt(2, 8)),
		curved,
		NewPath(NonZero),
	}
}

func TestIntersectsIsSymmetric(t *testing.T) {
	shapes := testShapes()
	for i, a := range shapes {
		for j, b := range shapes {
			ab := Intersects(a, b, DefaultTolerance)
			ba := Intersects(b, a, DefaultTolerance)
			if ab != ba {
				t.Errorf("shapes %d (%s) and %d (%s): Intersects is %t one way and %t the other", i, a, j, b, ab, ba)
			}
			if m := a.Intersects(b); m != ab {
				t.Errorf("shapes %d and %d: method says %t, function says %t", i, j, m, ab)
			}
		}
	}
}

func TestIntersectsItself(t *testing.T) {
	for _, s := range testShapes() {
		if p, ok := s.(*Path); ok && p.IsEmpty() {
			continue
		}
		if !Intersects(s, s, DefaultTolerance) {
			t.Errorf("%s doesn't intersect itself", s)
		}
	}
}

func TestIntersects(t *testing.T) {
	tests := []struct {
		a, b Shape
		want bool
	}{
		{must(NewSegment(Pt(0, 0), Pt(10, 10))), must(NewRectangle(4, 4, 2, 2)), true},
		{must(NewSegment(Pt(0, 10), Pt(10, 0))), must(NewRectangle(0, 0, 4, 4)), false},
		{must(NewSegment(Pt(0, 0), Pt(4, 0))), must(NewSegment(Pt(0, 1), Pt(4, 1))), false},
		{must(NewSegment(Pt(0, 0), Pt(4, 0))), must(NewSegment(Pt(2, 0), Pt(6, 0))), true},
		{must(NewSegment(Pt(0, 0), Pt(4, 0))), must(NewSegment(Pt(4, 0), Pt(4, 3))), true},
		{must(NewRectangle(0, 0, 10, 10)), must(NewRectangle(10, 10, 5, 5)), true},
		{must(NewRectangle(0, 0, 10, 10)), must(NewCircle(Pt(13, 13), 4)), false},
		{must(NewRectangle(0, 0, 10, 10)), must(NewCircle(Pt(13, 13), 5)), true},
		{must(NewRectangle(0, 0, 10, 10)), must(NewCircle(Pt(5, 5), 1)), true},
		{must(NewTriangle(Pt(0, 0), Pt(10, 0), Pt(0, 10))), must(NewCircle(Pt(8, 8), 2)), false},
		{must(NewTriangle(Pt(0, 0), Pt(10, 0), Pt(0, 10))), must(NewCircle(Pt(8, 8), 5)), true},
		{must(NewTriangle(Pt(0, 0), Pt(10, 0), Pt(0, 10))), must(NewRectangle(6, 6, 4, 4)), false},
		{must(NewTriangle(Pt(0, 0), Pt(10, 0), Pt(0, 10))), must(NewRectangle(4, 4, 4, 4)), true},
		{must(NewTriangle(Pt(0, 0), Pt(10, 0), Pt(0, 10))), must(NewTriangle(Pt(6, 6), Pt(10, 6), Pt(6, 10))), false},
		{must(NewCircle(Pt(0, 0), 1)), must(NewCircle(Pt(2, 0), 1)), true},
		{must(NewCircle(Pt(0, 0), 1)), must(NewCircle(Pt(2.1, 0), 1)), false},
		{must(NewEllipse(0, 0, 10, 4)), must(NewCircle(Pt(10.5, 4.5), 1)), false},
		{must(NewEllipse(0, 0, 10, 4)), must(NewCircle(Pt(10.5, 4.5), 2.5)), true},
		{must(NewEllipse(0, 0, 10, 4)), must(NewEllipse(2, 1, 1, 1)), true},
		{must(NewEllipse(-10, -5, 20, 10)), must(NewEllipse(9.99, -1.37, 2.74, 2.74)), true},
		{must(NewEllipse(9.99, -1.37, 2.74, 2.74)), must(NewEllipse(-10, -5, 20, 10)), true},
		{must(NewEllipse(0, 0, 10, 4)), must(NewSegment(Pt(9, 4), Pt(10, 3))), false},
		{must(NewEllipse(0, 0, 10, 4)), must(NewSegment(Pt(-1, 2), Pt(11, 2))), true},
		{pathOf(NonZero, Pt(0, 0), Pt(10, 0), Pt(10, 10), Pt(0, 10)), must(NewRectangle(4, 4, 1, 1)), true},
		{pathOf(NonZero, Pt(0, 0), Pt(10, 0), Pt(0, 10)), must(NewRectangle(6, 6, 3, 3)), false},
		{pathOf(NonZero, Pt(0, 0), Pt(10, 0), Pt(10, 10), Pt(0, 10)), pathOf(NonZero, Pt(2, 2), Pt(8, 2), Pt(8, 8)), true},
		{pathOf(NonZero, Pt(0, 0), Pt(1, 0), Pt(1, 1)), NewPath(NonZero), false},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s vs %s", tt.a, tt.b), func(t *testing.T) {
			if got := Intersects(tt.a, tt.b, DefaultTolerance); got != tt.want {
				t.Errorf("Intersects = %t, want %t", got, tt.want)
			}
		})
	}
}

func TestIntersectsMixedTolerances(t *testing.T) {
	coarse := Tolerance{Epsilon: 0.5, Flatness: 1, MaxDepth: 8}
	a := must(NewRectangle(0, 0, 1, 1, WithTolerance(coarse)))
	b := must(NewRectangle(1.3, 0, 1, 1))
	if !Intersects(a, b, coarse) {
		t.Fatal("rectangles 0.3 apart don't intersect with epsilon 0.5")
	}
	if a.Intersects(b) || b.Intersects(a) {
		t.Errorf("got %t and %t, want the stricter tolerance both ways", a.Intersects(b), b.Intersects(a))
	}
}

func TestIntersectsHole(t *testing.T) {
	p := NewPath(EvenOdd)
	for _, pts := range [][]Point{
		{Pt(0, 0), Pt(10, 0), Pt(10, 10), Pt(0, 10)},
		{Pt(2, 2), Pt(8, 2), Pt(8, 8), Pt(2, 8)},
	} {
		p.mustMoveTo(pts[0])
		for _, pt := range pts[1:] {
			p.mustLineTo(pt)
		}
		p.mustClose()
	}
	hole := must(NewCircle(Pt(5, 5), 1))
	if Intersects(p, hole, DefaultTolerance) {
		t.Error("circle in the hole intersects the path")
	}
	p.SetWindingRule(NonZero)
	if !Intersects(p, hole, DefaultTolerance) {
		t.Error("circle doesn't intersect the filled path")
	}
}

func TestIntersectsNil(t *testing.T) {
	r := must(NewRectangle(0, 0, 1, 1))
	if Intersects(nil, r, DefaultTolerance) || Intersects(r, nil, DefaultTolerance) {
		t.Error("nil intersects a shape")
	}
	if Contains(nil, r, DefaultTolerance) || Contains(r, nil, DefaultTolerance) {
		t.Error("nil takes part in containment")
	}
}

func TestContains(t *testing.T) {
	ring := NewPath(EvenOdd)
	for _, pts := range [][]Point{
		{Pt(0, 0), Pt(10, 0), Pt(10, 10), Pt(0, 10)},
		{Pt(2, 2), Pt(8, 2), Pt(8, 8), Pt(2, 8)},
	} {
		ring.mustMoveTo(pts[0])
		for _, pt := range pts[1:] {
			ring.mustLineTo(pt)
		}
		ring.mustClose()
	}
	curved := NewPath(NonZero)
	curved.mustMoveTo(Pt(0, 0))
	_ = curved.QuadTo(Pt(5, 20), Pt(10, 0))
	curved.mustClose()

	tests := []struct {
		name         string
		outer, inner Shape
		want         bool
	}{
		{"rect/circle touching", must(NewRectangle(0, 0, 10, 10)), must(NewCircle(Pt(5, 5), 5)), true},
		{"rect/circle too big", must(NewRectangle(0, 0, 10, 10)), must(NewCircle(Pt(5, 5), 5.1)), false},
		{"circle/rect", must(NewCircle(Pt(5, 5), 5)), must(NewRectangle(2, 2, 6, 6)), true},
		{"circle/rect corners out", must(NewCircle(Pt(5, 5), 5)), must(NewRectangle(0, 0, 10, 10)), false},
		{"triangle/ellipse", must(NewTriangle(Pt(0, 0), Pt(10, 0), Pt(0, 10))), must(NewCircle(Pt(2, 2), 1)), true},
		{"triangle/ellipse crossing", must(NewTriangle(Pt(0, 0), Pt(10, 0), Pt(0, 10))), must(NewCircle(Pt(4, 4), 1.5)), false},
		{"circle/circle", must(NewCircle(Pt(0, 0), 5)), must(NewCircle(Pt(1, 0), 4)), true},
		{"circle/circle out", must(NewCircle(Pt(0, 0), 5)), must(NewCircle(Pt(1, 0), 4.1)), false},
		{"ellipse/segment", must(NewEllipse(0, 0, 10, 4)), must(NewSegment(Pt(1, 2), Pt(9, 2))), true},
		{"ellipse/ellipse", must(NewEllipse(0, 0, 10, 4)), must(NewEllipse(4, 1, 2, 2)), true},
		{"rect/rect", must(NewRectangle(0, 0, 10, 10)), must(NewRectangle(0, 0, 10, 10)), true},
		{"rect/rect out", must(NewRectangle(0, 0, 10, 10)), must(NewRectangle(5, 5, 10, 1)), false},
		{"segment/segment", must(NewSegment(Pt(0, 0), Pt(10, 10))), must(NewSegment(Pt(2, 2), Pt(3, 3))), true},
		{"segment/point-like rect", must(NewSegment(Pt(0, 0), Pt(10, 10))), must(NewRectangle(4, 4, 0, 0)), true},
		{"degenerate rect/point", must(NewRectangle(3, 4, 0, 0)), must(NewSegment(Pt(3, 4), Pt(3, 4))), true},
		{"triangle/triangle", must(NewTriangle(Pt(0, 0), Pt(10, 0), Pt(0, 10))), must(NewTriangle(Pt(1, 1), Pt(2, 1), Pt(1, 2))), true},
		{"ring/rect in ring", ring, must(NewRectangle(0.5, 0.5, 1, 1)), true},
		{"ring/rect in hole", ring, must(NewRectangle(4, 4, 1, 1)), false},
		{"ring/rect around hole", ring, must(NewRectangle(1, 1, 8, 8)), false},
		{"ring/rect crossing", ring, must(NewRectangle(1, 1, 2, 2)), false},
		{"rect/ring", must(NewRectangle(-1, -1, 12, 12)), ring, true},
		{"curved/segment", curved, must(NewSegment(Pt(2, 1), Pt(8, 1))), true},
		{"rect/curved", must(NewRectangle(0, 0, 10, 10.5)), curved, true},
		{"empty path", must(NewRectangle(0, 0, 10, 10)), NewPath(NonZero), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Contains(tt.outer, tt.inner, DefaultTolerance); got != tt.want {
				t.Errorf("Contains = %t, want %t", got, tt.want)
			}
		})
	}
}

func TestContainsImpliesIntersects(t *testing.T) {
	shapes := testShapes()
	for _, a := range shapes {
		for _, b := range shapes {
			if Contains(a, b, DefaultTolerance) && !Intersects(a, b, DefaultTolerance) {
				t.Errorf("%s contains %s without intersecting it", a, b)
			}
		}
	}
}
