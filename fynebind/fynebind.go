// Package fynebind stores the coordinates of geom shapes in fyne data
// bindings, so that widgets bound to the same values and the shapes stay in
// sync.
//
// Writes made through a shape are visible to the binding immediately and
// notify the shape's watchers before the write returns. Writes made to the
// binding directly, for example by an entry widget, are delivered by fyne
// on its own goroutine; the cell then notifies the shape from that
// goroutine. Callers that query shapes concurrently with such writes must
// serialize access themselves.
package fynebind

import (
	"log/slog"
	"math"
	"sync"
	"sync/atomic"

	"fyne.io/fyne/v2/data/binding"

	"honnef.co/go/geom"
)

// Storage creates cells backed by new [binding.Float] values.
var Storage geom.Storage = geom.StorageFunc(func(v float64) geom.Cell {
	b := binding.NewFloat()
	if err := b.Set(v); err != nil {
		geom.Logger().Debug("fynebind: initial write failed", slog.Any("error", err))
	}
	return NewCell(b)
})

var (
	_ geom.Cell       = (*Cell)(nil)
	_ geom.Observable = (*Cell)(nil)
)

// Cell is a [geom.Cell] reading and writing a [binding.Float].
type Cell struct {
	b binding.Float
	// wmu makes writing the binding and recording the written value a
	// single step with respect to external.
	wmu sync.Mutex
	// last holds the bits of the value last seen, to tell our own writes
	// apart from external ones when fyne reports them.
	last atomic.Uint64
	dl   binding.DataListener

	mu        sync.Mutex
	nextID    int
	listeners map[int]func()
}

// NewCell returns a cell backed by b. The cell listens to b until Close is
// called.
func NewCell(b binding.Float) *Cell {
	c := &Cell{b: b, listeners: map[int]func(){}}
	c.last.Store(math.Float64bits(c.Get()))
	c.dl = binding.NewDataListener(c.external)
	b.AddListener(c.dl)
	return c
}

// Binding returns the binding the cell is backed by.
func (c *Cell) Binding() binding.Float { return c.b }

// Get returns the binding's current value. If the binding can't be read, the
// value last seen is returned.
func (c *Cell) Get() float64 {
	v, err := c.b.Get()
	if err != nil {
		geom.Logger().Debug("fynebind: read failed", slog.Any("error", err))
		return math.Float64frombits(c.last.Load())
	}
	return v
}

// Set writes v to the binding and notifies watchers if the value changed.
func (c *Cell) Set(v float64) {
	c.wmu.Lock()
	old := c.Get()
	c.last.Store(math.Float64bits(v))
	err := c.b.Set(v)
	if err != nil {
		c.last.Store(math.Float64bits(old))
	}
	c.wmu.Unlock()

	if err != nil {
		geom.Logger().Debug("fynebind: write failed", slog.Float64("value", v), slog.Any("error", err))
		return
	}
	if v != old {
		c.notify()
	}
}

// Watch registers fn to be called after every change of the value.
func (c *Cell) Watch(fn func()) (cancel func()) {
	if fn == nil {
		return func() {}
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.nextID++
	id := c.nextID
	c.listeners[id] = fn
	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		delete(c.listeners, id)
	}
}

// Close stops listening to the binding. Changes made to the binding
// directly are no longer reported afterwards.
func (c *Cell) Close() {
	c.b.RemoveListener(c.dl)
}

// external is called by fyne whenever the binding changed, including after
// our own writes, which it skips.
func (c *Cell) external() {
	c.wmu.Lock()
	bits := math.Float64bits(c.Get())
	seen := c.last.Swap(bits) == bits
	c.wmu.Unlock()
	if !seen {
		c.notify()
	}
}

func (c *Cell) notify() {
	c.mu.Lock()
	fns := make([]func(), 0, len(c.listeners))
	for id := 1; id <= c.nextID; id++ {
		if fn, ok := c.listeners[id]; ok {
			fns = append(fns, fn)
		}
	}
	c.mu.Unlock()
	for _, fn := range fns {
		fn()
	}
}
