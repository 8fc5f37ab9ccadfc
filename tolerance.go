package geom

import (
	"math"

	"github.com/kelseyhightower/envconfig"
	"gonum.org/v1/gonum/floats/scalar"
)

// Tolerance bundles the numeric thresholds used by the geometric algorithms.
//
// Smaller values mean finer curve approximation and stricter equality. All
// predicates that compare two shapes use the same Tolerance for both
// operands, which is what keeps Intersects symmetric.
type Tolerance struct {
	// Epsilon is the comparison threshold. It is applied both as an absolute
	// and as a relative bound, see [Tolerance.Equal].
	Epsilon float64 `envconfig:"EPSILON" default:"1e-6"`
	// Flatness is the maximum distance between a curve and the polyline that
	// approximates it.
	Flatness float64 `envconfig:"FLATNESS" default:"0.1"`
	// MaxDepth caps the recursion of curve subdivision.
	MaxDepth int `envconfig:"MAX_DEPTH" default:"20"`
}

// DefaultTolerance is used by shapes that weren't given a tolerance.
var DefaultTolerance = Tolerance{
	Epsilon:  1e-6,
	Flatness: 0.1,
	MaxDepth: 20,
}

// LoadTolerance reads a tolerance from the environment. With prefix "GEOM" it
// reads GEOM_EPSILON, GEOM_FLATNESS and GEOM_MAX_DEPTH. Unset variables take
// the values of [DefaultTolerance].
func LoadTolerance(prefix string) (Tolerance, error) {
	var tol Tolerance
	if err := envconfig.Process(prefix, &tol); err != nil {
		return Tolerance{}, invalidArgument("LoadTolerance", "%v", err)
	}
	if err := tol.Validate(); err != nil {
		return Tolerance{}, err
	}
	return tol, nil
}

// Validate checks that all thresholds are positive and finite.
func (tol Tolerance) Validate() error {
	if !isFinite(tol.Epsilon) || tol.Epsilon <= 0 {
		return invalidArgument("Tolerance.Validate", "epsilon must be positive, got %g", tol.Epsilon)
	}
	if !isFinite(tol.Flatness) || tol.Flatness <= 0 {
		return invalidArgument("Tolerance.Validate", "flatness must be positive, got %g", tol.Flatness)
	}
	if tol.MaxDepth <= 0 {
		return invalidArgument("Tolerance.Validate", "max depth must be positive, got %d", tol.MaxDepth)
	}
	return nil
}

// meet returns the stricter of two tolerances, field by field. It is
// commutative.
func (tol Tolerance) meet(o Tolerance) Tolerance {
	tol, o = tol.orDefault(), o.orDefault()
	return Tolerance{
		Epsilon:  min(tol.Epsilon, o.Epsilon),
		Flatness: min(tol.Flatness, o.Flatness),
		MaxDepth: max(tol.MaxDepth, o.MaxDepth),
	}
}

// orDefault replaces unset fields with those of DefaultTolerance.
func (tol Tolerance) orDefault() Tolerance {
	if tol.Epsilon <= 0 || math.IsNaN(tol.Epsilon) {
		tol.Epsilon = DefaultTolerance.Epsilon
	}
	if tol.Flatness <= 0 || math.IsNaN(tol.Flatness) {
		tol.Flatness = DefaultTolerance.Flatness
	}
	if tol.MaxDepth <= 0 {
		tol.MaxDepth = DefaultTolerance.MaxDepth
	}
	return tol
}

// Equal reports whether a and b are equal within Epsilon, either absolutely
// or relative to their magnitude.
func (tol Tolerance) Equal(a, b float64) bool {
	return scalar.EqualWithinAbsOrRel(a, b, tol.Epsilon, tol.Epsilon)
}

// PointsEqual reports whether both components of a and b are Equal.
func (tol Tolerance) PointsEqual(a, b Point) bool {
	return tol.Equal(a.X, b.X) && tol.Equal(a.Y, b.Y)
}

// scaled returns Epsilon scaled to the magnitude of the given values, never
// less than Epsilon itself.
func (tol Tolerance) scaled(vs ...float64) float64 {
	m := 1.0
	for _, v := range vs {
		m = max(m, math.Abs(v))
	}
	return tol.Epsilon * m
}

// scaledRect is scaled for the coordinates of rectangles.
func (tol Tolerance) scaledRect(rs ...Rect) float64 {
	m := 1.0
	for _, r := range rs {
		m = max(m, math.Abs(r.X0), math.Abs(r.Y0), math.Abs(r.X1), math.Abs(r.Y1))
	}
	return tol.Epsilon * m
}
