package geom

import (
	"fmt"
	"math"
)

// Vec2 is a displacement in the plane. Unlike [Point], a vector has no
// position; shapes are moved by vectors and points differ by them.
type Vec2 struct {
	X float64
	Y float64
}

// Vec returns the vector ⟨x, y⟩.
func Vec(x, y float64) Vec2 { return Vec2{X: x, Y: y} }

func (v Vec2) String() string { return fmt.Sprintf("⟨%g, %g⟩", v.X, v.Y) }

// Splat returns the vector's components.
func (v Vec2) Splat() (float64, float64) { return v.X, v.Y }

func (v Vec2) Add(o Vec2) Vec2      { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2      { return Vec2{v.X - o.X, v.Y - o.Y} }
func (v Vec2) Mul(f float64) Vec2   { return Vec2{v.X * f, v.Y * f} }
func (v Vec2) Div(f float64) Vec2   { return Vec2{v.X / f, v.Y / f} }
func (v Vec2) Negate() Vec2         { return Vec2{-v.X, -v.Y} }
func (v Vec2) Abs() Vec2            { return Vec2{math.Abs(v.X), math.Abs(v.Y)} }
func (v Vec2) Dot(o Vec2) float64   { return v.X*o.X + v.Y*o.Y }
func (v Vec2) Cross(o Vec2) float64 { return v.X*o.Y - v.Y*o.X }

// Hypot returns the length of the vector.
func (v Vec2) Hypot() float64 { return math.Hypot(v.X, v.Y) }

// Hypot2 returns the squared length of the vector, avoiding the square root
// of [Vec2.Hypot].
func (v Vec2) Hypot2() float64 { return v.Dot(v) }

// Angle returns atan2(y, x), the angle to the positive x axis in radians.
func (v Vec2) Angle() float64 { return math.Atan2(v.Y, v.X) }

// Lerp interpolates linearly between v and o.
func (v Vec2) Lerp(o Vec2, t float64) Vec2 { return v.Add(o.Sub(v).Mul(t)) }

// Normalize returns the unit vector pointing in the direction of v. The zero
// vector has no direction and normalizes to NaN.
func (v Vec2) Normalize() Vec2 { return v.Div(v.Hypot()) }

// Perp returns v rotated by 90°, ⟨−y, x⟩. It is the left-hand normal of an
// edge running along v.
func (v Vec2) Perp() Vec2 { return Vec2{-v.Y, v.X} }

func (v Vec2) IsInf() bool { return math.IsInf(v.X, 0) || math.IsInf(v.Y, 0) }
func (v Vec2) IsNaN() bool { return math.IsNaN(v.X) || math.IsNaN(v.Y) }
