package geom

import (
	"bytes"
	"iter"
	"log/slog"
	"slices"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func countSegments(seq iter.Seq[PathElement]) int {
	n := 0
	for el := range seq {
		if el.Kind == LineToKind {
			n++
		}
	}
	return n
}

func TestFlattenMonotone(t *testing.T) {
	p := NewPath(NonZero)
	_ = p.MoveTo(Pt(0, 0))
	_ = p.CurveTo(Pt(0, 100), Pt(100, 100), Pt(100, 0))
	_ = p.QuadTo(Pt(50, -80), Pt(0, 0))

	prev := 0
	for _, flatness := range []float64{10, 1, 0.1, 0.01, 0.001} {
		n := countSegments(p.Flatten(Tolerance{Flatness: flatness}))
		if n < prev {
			t.Errorf("flatness %v: got %d segments, fewer than the %d of a coarser flatness", flatness, n, prev)
		}
		prev = n
	}
	if prev < 16 {
		t.Errorf("got only %d segments at the finest flatness", prev)
	}
}

func TestFlattenIsConnected(t *testing.T) {
	c := CubicBez{Pt(0, 0), Pt(10, 20), Pt(30, -20), Pt(40, 0)}
	els := slices.Collect(c.Flatten(Tolerance{Flatness: 0.05}))
	if len(els) < 2 {
		t.Fatalf("got %d segments", len(els))
	}
	diff(t, c.P0, els[0].From)
	diff(t, c.P3, els[len(els)-1].To)
	for i := 1; i < len(els); i++ {
		if els[i].From != els[i-1].To {
			t.Fatalf("segment %d starts at %v, previous ended at %v", i, els[i].From, els[i-1].To)
		}
	}
}

func TestFlattenWithinTolerance(t *testing.T) {
	q := QuadBez{Pt(0, 0), Pt(50, 100), Pt(100, 0)}
	const flatness = 0.5
	els := slices.Collect(q.Flatten(Tolerance{Flatness: flatness}))
	for i := range 101 {
		pt := q.Eval(float64(i) / 100)
		best := Line{els[0].From, els[0].To}.Distance(pt)
		for _, el := range els[1:] {
			best = min(best, Line{el.From, el.To}.Distance(pt))
		}
		if best > flatness {
			t.Errorf("curve point %v is %v away from the polyline", pt, best)
		}
	}
}

func TestFlattenLeavesLinesAlone(t *testing.T) {
	els := []PathElement{
		MoveTo(Pt(0, 0)),
		LineTo(Pt(0, 0), Pt(1, 1)),
		ClosePath(Pt(1, 1), Pt(0, 0)),
	}
	diff(t, els, slices.Collect(FlattenElements(slices.Values(els), DefaultTolerance)))
}

func TestFlattenStraightCurve(t *testing.T) {
	// Control points on the chord make a curve flat from the start.
	c := CubicBez{Pt(0, 0), Pt(1, 1), Pt(2, 2), Pt(3, 3)}
	els := slices.Collect(c.Flatten(DefaultTolerance))
	diff(t, []PathElement{LineTo(Pt(0, 0), Pt(3, 3))}, els)
}

func TestFlattenMaxDepth(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer SetLogger(nil)

	c := CubicBez{Pt(0, 0), Pt(0, 1000), Pt(1000, 1000), Pt(1000, 0)}
	n := countSegments(c.Flatten(Tolerance{Flatness: 1e-9, MaxDepth: 3}))
	if n != 8 {
		t.Errorf("got %d segments, want 8", n)
	}
	if !strings.Contains(buf.String(), "maximum depth") {
		t.Errorf("depth limit not logged, got %q", buf.String())
	}
}

func TestFlattenStopsEarly(t *testing.T) {
	c := CubicBez{Pt(0, 0), Pt(0, 100), Pt(100, 100), Pt(100, 0)}
	n := 0
	for range c.Flatten(Tolerance{Flatness: 0.01}) {
		n++
		if n == 3 {
			break
		}
	}
	if n != 3 {
		t.Errorf("got %d iterations, want 3", n)
	}
}

func TestBezierEval(t *testing.T) {
	q := QuadBez{Pt(0, 0), Pt(1, 2), Pt(2, 0)}
	diff(t, Pt(1, 1), q.Eval(0.5))
	c := q.Raise()
	for _, tt := range []float64{0, 0.25, 0.5, 0.75, 1} {
		diff(t, q.Eval(tt), c.Eval(tt), cmpopts.EquateApprox(0, 1e-12))
	}
	l, r := c.Subdivide()
	diff(t, c.Eval(0.5), l.P3)
	diff(t, l.P3, r.P0)
	diff(t, Rect{0, 0, 2, 2}, q.ControlBox())
}
