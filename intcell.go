package geom

import (
	"math"

	"golang.org/x/exp/constraints"
)

// IntStorage returns storage whose cells hold integers of type T. Written
// values are rounded to the nearest integer and clamped to T's range, so
// shapes backed by IntStorage always have integral coordinates.
func IntStorage[T constraints.Integer]() Storage {
	return StorageFunc(func(v float64) Cell {
		c := &IntCell[T]{}
		c.Set(v)
		return c
	})
}

// IntCell is a cell holding an integer.
type IntCell[T constraints.Integer] struct {
	v T
}

func (c *IntCell[T]) Get() float64 { return float64(c.v) }

// Set stores v rounded to the nearest integer. NaN is stored as zero.
func (c *IntCell[T]) Set(v float64) {
	c.v = toInt[T](v)
}

// Int returns the stored integer.
func (c *IntCell[T]) Int() T { return c.v }

func toInt[T constraints.Integer](v float64) T {
	if math.IsNaN(v) {
		return 0
	}
	v = math.Round(v)
	lo, hi := intRange[T]()
	if v <= lo {
		return T(lo)
	}
	if v >= hi {
		return T(hi)
	}
	return T(v)
}

// intRange returns the bounds of T as float64 values that convert back to T
// without overflow.
func intRange[T constraints.Integer]() (float64, float64) {
	var zero T
	signed := ^zero < 0
	bits := 8
	for x := T(1) << 7; x<<1 != 0 && bits < 64; x <<= 1 {
		bits++
	}
	switch {
	case signed:
		hi := math.Ldexp(1, bits-1)
		// float64(1<<63) isn't representable as int64; step back to the
		// largest float64 below it.
		return -hi, math.Nextafter(hi, 0)
	default:
		return 0, math.Nextafter(math.Ldexp(1, bits), 0)
	}
}
