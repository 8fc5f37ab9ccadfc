package geom

// Option configures a tuple or shape during creation.
//
// Example:
//
//	// A rectangle whose coordinates notify watchers when changed.
//	r, err := geom.NewRectangle(0, 0, 10, 5, geom.WithStorage(geom.Notifying))
type Option func(*options)

type options struct {
	storage Storage
	tol     Tolerance
}

func defaultOptions() options {
	return options{
		storage: Plain,
		tol:     DefaultTolerance,
	}
}

func buildOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// WithStorage sets the storage strategy used for the coordinates. A nil
// storage selects [Plain].
func WithStorage(s Storage) Option {
	return func(o *options) {
		if s == nil {
			s = Plain
		}
		o.storage = s
	}
}

// WithTolerance sets the tolerance used by the shape's queries. Unset or
// invalid fields fall back to [DefaultTolerance].
func WithTolerance(tol Tolerance) Option {
	return func(o *options) {
		o.tol = tol.orDefault()
	}
}
