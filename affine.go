package geom

import (
	"math"
)

// Affine is a 2D affine transform with coefficients (a, b, c, d, e, f),
// representing the augmented matrix
//
//	| a c e |
//	| b d f |
//	| 0 0 1 |
//
// Transforms compose so that (A * B) * v == A * (B * v).
type Affine struct {
	N0, N1, N2, N3, N4, N5 float64
}

// Identity is the identity transform.
var Identity = Affine{1, 0, 0, 1, 0, 0}

// Scale returns a transform scaling x and y by independent factors.
func Scale(x, y float64) Affine { return Affine{x, 0, 0, y, 0, 0} }

// Translate returns a transform moving points by v.
func Translate(v Vec2) Affine { return Affine{1, 0, 0, 1, v.X, v.Y} }

// Rotate returns a transform rotating by th radians. A positive angle
// rotates the positive x axis towards the positive y axis.
func Rotate(th float64) Affine {
	sin, cos := math.Sincos(th)
	return Affine{cos, sin, -sin, cos, 0, 0}
}

// RotateAbout returns a transform rotating by th radians around center.
func RotateAbout(th float64, center Point) Affine {
	return about(Rotate(th), center)
}

// ScaleAbout returns a transform scaling by (x, y) with center as the fixed
// point. Resize handles of editors scale about the opposite corner.
func ScaleAbout(x, y float64, center Point) Affine {
	return about(Scale(x, y), center)
}

func about(aff Affine, center Point) Affine {
	c := Vec2(center)
	return Translate(c).Mul(aff).Mul(Translate(c.Negate()))
}

// Mul returns aff * o, the transform that applies o first and aff second.
func (aff Affine) Mul(o Affine) Affine {
	return Affine{
		aff.N0*o.N0 + aff.N2*o.N1,
		aff.N1*o.N0 + aff.N3*o.N1,
		aff.N0*o.N2 + aff.N2*o.N3,
		aff.N1*o.N2 + aff.N3*o.N3,
		aff.N0*o.N4 + aff.N2*o.N5 + aff.N4,
		aff.N1*o.N4 + aff.N3*o.N5 + aff.N5,
	}
}

// Determinant returns the determinant of the linear part.
func (aff Affine) Determinant() float64 {
	return aff.N0*aff.N3 - aff.N1*aff.N2
}

// Invert returns the inverse transform. A singular transform has no inverse
// and produces NaN coefficients.
func (aff Affine) Invert() Affine {
	inv := 1 / aff.Determinant()
	return Affine{
		inv * aff.N3,
		-inv * aff.N1,
		-inv * aff.N2,
		inv * aff.N0,
		inv * (aff.N2*aff.N5 - aff.N3*aff.N4),
		inv * (aff.N1*aff.N4 - aff.N0*aff.N5),
	}
}

// PreservesAxes reports whether aff maps axis-aligned rectangles to
// axis-aligned rectangles, that is, whether it combines only scaling,
// translation, reflection, and rotation by multiples of 90°.
func (aff Affine) PreservesAxes(tol Tolerance) bool {
	zero := func(v float64) bool { return tol.Equal(v, 0) }
	return (zero(aff.N1) && zero(aff.N2)) || (zero(aff.N0) && zero(aff.N3))
}

// IsSimilarity reports whether aff preserves angles and scales uniformly,
// mapping circles to circles.
func (aff Affine) IsSimilarity(tol Tolerance) bool {
	cx := Vec(aff.N0, aff.N1)
	cy := Vec(aff.N2, aff.N3)
	return tol.Equal(cx.Dot(cy), 0) && tol.Equal(cx.Hypot2(), cy.Hypot2())
}

// check validates aff for use by op: all coefficients must be finite and
// the linear part invertible.
func (aff Affine) check(op string) error {
	if err := checkFinite(op, aff.N0, aff.N1, aff.N2, aff.N3, aff.N4, aff.N5); err != nil {
		return err
	}
	if aff.Determinant() == 0 {
		return invalidArgument(op, "singular transform %v", aff)
	}
	return nil
}
