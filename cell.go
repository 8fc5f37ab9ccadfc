package geom

// Cell stores a single coordinate. It is the unit of storage that shapes are
// built from; the storage strategy of a shape is the kind of cells it uses.
type Cell interface {
	Get() float64
	Set(v float64)
}

// Observable is implemented by cells whose value can change without going
// through their owner, such as cells bound to UI widgets. Watch registers fn
// to be called synchronously after every change and returns a function that
// unregisters it.
type Observable interface {
	Watch(fn func()) (cancel func())
}

// Storage creates cells. It is the coordinate-storage strategy of a shape.
type Storage interface {
	NewCell(v float64) Cell
}

// StorageFunc adapts a function to the Storage interface.
type StorageFunc func(v float64) Cell

func (fn StorageFunc) NewCell(v float64) Cell { return fn(v) }

// Plain is the default storage. Its cells are bare float64 values without
// change notification.
var Plain Storage = StorageFunc(func(v float64) Cell {
	c := plainCell(v)
	return &c
})

// Notifying is storage whose cells are [*NotifyingCell].
var Notifying Storage = StorageFunc(func(v float64) Cell {
	return NewNotifyingCell(v)
})

type plainCell float64

func (c *plainCell) Get() float64  { return float64(*c) }
func (c *plainCell) Set(v float64) { *c = plainCell(v) }

// NotifyingCell is a cell that notifies its watchers synchronously, before
// Set returns, whenever its value changes.
type NotifyingCell struct {
	v float64
	notifier
}

var _ Observable = (*NotifyingCell)(nil)

func NewNotifyingCell(v float64) *NotifyingCell {
	return &NotifyingCell{v: v}
}

func (c *NotifyingCell) Get() float64 { return c.v }

// Set stores v. Watchers aren't notified if the value didn't change.
func (c *NotifyingCell) Set(v float64) {
	if c.v == v {
		return
	}
	c.v = v
	c.notify()
}

// notifier maintains a list of change callbacks. The zero value is ready to
// use. It isn't safe for concurrent use.
type notifier struct {
	nextID    int
	listeners []listener
}

type listener struct {
	id int
	fn func()
}

// Watch registers fn and returns a function that unregisters it. Calling the
// returned function more than once has no effect.
func (n *notifier) Watch(fn func()) (cancel func()) {
	if fn == nil {
		return func() {}
	}
	n.nextID++
	id := n.nextID
	n.listeners = append(n.listeners, listener{id: id, fn: fn})
	return func() {
		for i, l := range n.listeners {
			if l.id == id {
				n.listeners = append(n.listeners[:i:i], n.listeners[i+1:]...)
				return
			}
		}
	}
}

func (n *notifier) notify() {
	// Listeners may cancel themselves while being notified.
	ls := n.listeners
	for _, l := range ls {
		l.fn()
	}
}

func (n *notifier) watchers() int { return len(n.listeners) }
