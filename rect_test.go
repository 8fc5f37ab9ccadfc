package geom

import (
	"testing"
)

func TestRectNormalization(t *testing.T) {
	r := NewRectFromPoints(Pt(5, 8), Pt(-10, -2))
	diff(t, Rect{-10, -2, 5, 8}, r)
	diff(t, r, Rect{5, 8, -10, -2}.Abs())
	if w, h := r.Width(), r.Height(); w != 15 || h != 10 {
		t.Errorf("got size %v×%v, want 15×10", w, h)
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{0, 0, 10, 10}
	tests := []struct {
		pt   Point
		want bool
	}{
		{Pt(5, 5), true},
		{Pt(0, 0), true},
		{Pt(10, 10), true},
		{Pt(10, 5), true},
		{Pt(10.000001, 5), false},
		{Pt(-1, 5), false},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.pt); got != tt.want {
			t.Errorf("%v.Contains(%v) = %t, want %t", r, tt.pt, got, tt.want)
		}
	}
}

func TestRectDegenerateContains(t *testing.T) {
	// A rectangle without area still contains its boundary.
	r := Rect{3, 4, 3, 4}
	if !r.Contains(Pt(3, 4)) {
		t.Error("zero-size rectangle doesn't contain its corner")
	}
	if r.Contains(Pt(3, 4.5)) {
		t.Error("zero-size rectangle contains a point outside of it")
	}
	line := Rect{0, 2, 10, 2}
	if !line.Contains(Pt(7, 2)) {
		t.Error("zero-height rectangle doesn't contain a point on its edge")
	}
}

func TestRectOverlaps(t *testing.T) {
	a := Rect{0, 0, 10, 10}
	tests := []struct {
		o    Rect
		want bool
	}{
		{Rect{5, 5, 15, 15}, true},
		{Rect{10, 0, 20, 10}, true},
		{Rect{10.5, 0, 20, 10}, false},
		{Rect{2, 2, 3, 3}, true},
		{Rect{0, 11, 10, 20}, false},
	}
	for _, tt := range tests {
		if got := a.Overlaps(tt.o, 1e-6); got != tt.want {
			t.Errorf("%v.Overlaps(%v) = %t, want %t", a, tt.o, got, tt.want)
		}
		if got := tt.o.Overlaps(a, 1e-6); got != tt.want {
			t.Errorf("%v.Overlaps(%v) = %t, want %t", tt.o, a, got, tt.want)
		}
	}
}

func TestRectUnionIntersect(t *testing.T) {
	a := Rect{0, 0, 10, 10}
	b := Rect{5, -5, 20, 5}
	diff(t, Rect{0, -5, 20, 10}, a.Union(b))
	diff(t, Rect{5, 0, 10, 5}, a.Intersect(b))
	diff(t, Rect{0, 0, 12, 10}, a.UnionPoint(Pt(12, 3)))
	diff(t, Rect{20, 20, 20, 20}, Rect{0, 0, 10, 10}.Intersect(Rect{20, 20, 30, 30}))
}

func TestRectDistance(t *testing.T) {
	r := Rect{0, 0, 10, 10}
	if d := r.Distance(Pt(5, 5)); d != 0 {
		t.Errorf("got %v, want 0", d)
	}
	if d := r.Distance(Pt(13, 14)); d != 5 {
		t.Errorf("got %v, want 5", d)
	}
	if d := r.Distance(Pt(-2, 5)); d != 2 {
		t.Errorf("got %v, want 2", d)
	}
}
