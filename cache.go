package geom

import (
	"log/slog"
)

// Cached is a lazily computed value that is invalidated whenever the inputs
// it was derived from change.
//
// A Cached is either clean, holding the value computed from the current
// inputs, or stale. Get recomputes a stale value exactly once and returns the
// clean value on every following call, until the next Invalidate.
type Cached[T any] struct {
	name    string
	compute func() T
	value   T
	valid   bool
	count   int
}

// NewCached returns a stale cache that computes its value with compute. The
// name is only used for logging.
func NewCached[T any](name string, compute func() T) *Cached[T] {
	return &Cached[T]{name: name, compute: compute}
}

// Get returns the cached value, computing it first if it is stale.
func (c *Cached[T]) Get() T {
	if !c.valid {
		c.value = c.compute()
		c.valid = true
		c.count++
		Logger().Debug("geom: recomputed cached value", slog.String("cache", c.name), slog.Int("count", c.count))
	}
	return c.value
}

// Invalidate marks the value as stale.
func (c *Cached[T]) Invalidate() {
	c.valid = false
	var zero T
	c.value = zero
}

// Valid reports whether the value is clean.
func (c *Cached[T]) Valid() bool { return c.valid }

// Recomputations returns how often the value has been computed.
func (c *Cached[T]) Recomputations() int { return c.count }

// invalidator is implemented by every Cached.
type invalidator interface {
	Invalidate()
}

// shapeState is embedded by every shape. It owns the shape's caches and
// watchers, and turns a change of any coordinate into invalidation followed
// by notification.
type shapeState struct {
	tol    Tolerance
	caches []invalidator
	notifier

	// batching and pending implement batch.
	batching int
	pending  bool
}

func (s *shapeState) init(tol Tolerance, caches ...invalidator) {
	s.tol = tol
	s.caches = caches
}

// changed invalidates every cache and then notifies watchers, so that
// watchers observe fresh derived values.
func (s *shapeState) changed() {
	for _, c := range s.caches {
		c.Invalidate()
	}
	if s.batching > 0 {
		s.pending = true
		return
	}
	s.notify()
}

// batch runs fn, which may change several coordinates, and notifies watchers
// once afterwards instead of once per coordinate.
func (s *shapeState) batch(fn func()) {
	s.batching++
	fn()
	s.batching--
	if s.batching == 0 && s.pending {
		s.pending = false
		s.notify()
	}
}

// Tolerance returns the tolerance the shape's queries use.
func (s *shapeState) Tolerance() Tolerance { return s.tol }

// track forwards changes of the points to the shape.
func (s *shapeState) track(ps ...*Point2) {
	for _, p := range ps {
		p.Watch(s.changed)
	}
}
