package geom

import (
	"math"
	"testing"

	"golang.org/x/image/math/fixed"
)

func TestPointArithmetic(t *testing.T) {
	diff(t, Pt(0, 0).Translate(Vec(-10, 0)), Pt(-10, 0))
	diff(t, Pt(3, 4).Sub(Pt(1, 1)), Vec(2, 3))
	diff(t, Pt(0, 0).Midpoint(Pt(4, -2)), Pt(2, -1))
	diff(t, Pt(0, 0).Lerp(Pt(10, 10), 0.25), Pt(2.5, 2.5))
}

func TestPointDistance(t *testing.T) {
	p1 := Pt(0, 10)
	p2 := Pt(0, 5)
	if d := p1.Distance(p2); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}

	p3 := Pt(-11, 1)
	p4 := Pt(-7, -2)
	if d := p3.Distance(p4); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}
	if d := p3.DistanceSquared(p4); d != 25 {
		t.Errorf("got squared distance %v, want 25", d)
	}
}

func TestPointFixed(t *testing.T) {
	got := Pt(1.5, -2.25).Fixed()
	want := fixed.Point26_6{X: 96, Y: -144}
	diff(t, want, got)
}

func TestPointNonFinite(t *testing.T) {
	if Pt(1, 2).IsInf() || Pt(1, 2).IsNaN() {
		t.Error("finite point reported as non-finite")
	}
	if !Pt(math.Inf(-1), 0).IsInf() {
		t.Error("infinite point not reported as infinite")
	}
	if !Pt(0, math.NaN()).IsNaN() {
		t.Error("NaN point not reported as NaN")
	}
}

func TestOrientation(t *testing.T) {
	tests := []struct {
		a, b, c Point
		want    int
	}{
		{Pt(0, 0), Pt(1, 0), Pt(0, 1), 1},
		{Pt(0, 0), Pt(0, 1), Pt(1, 0), -1},
		{Pt(0, 0), Pt(1, 1), Pt(2, 2), 0},
		{Pt(0, 0), Pt(1e6, 0), Pt(2e6, 1e-3), 0},
	}
	for _, tt := range tests {
		if got := orientation(tt.a, tt.b, tt.c, DefaultTolerance.Epsilon); got != tt.want {
			t.Errorf("orientation(%v, %v, %v) = %d, want %d", tt.a, tt.b, tt.c, got, tt.want)
		}
	}
}
