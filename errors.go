package geom

import (
	"errors"
	"fmt"
	"math"
)

// Errors returned by constructors and mutators. They are always wrapped with
// context; use [errors.Is] to test for them.
var (
	// ErrInvalidArgument reports a malformed argument, such as a negative
	// width or a non-finite coordinate.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrIllegalState reports an operation that isn't valid in the receiver's
	// current state, such as drawing a path before the first MoveTo.
	ErrIllegalState = errors.New("illegal state")
	// ErrUnsupportedOperation reports a mutation attempted through an
	// unmodifiable view.
	ErrUnsupportedOperation = errors.New("unsupported operation")
	// ErrNilReference reports a required argument that was nil.
	ErrNilReference = errors.New("nil reference")
)

func invalidArgument(op string, format string, args ...any) error {
	return fmt.Errorf("geom: %s: %w: %s", op, ErrInvalidArgument, fmt.Sprintf(format, args...))
}

func illegalState(op string, format string, args ...any) error {
	return fmt.Errorf("geom: %s: %w: %s", op, ErrIllegalState, fmt.Sprintf(format, args...))
}

func unsupported(op string) error {
	return fmt.Errorf("geom: %s: %w: receiver is an unmodifiable view", op, ErrUnsupportedOperation)
}

func nilReference(op string, what string) error {
	return fmt.Errorf("geom: %s: %w: %s is nil", op, ErrNilReference, what)
}

func isFinite(f float64) bool {
	return !math.IsInf(f, 0) && !math.IsNaN(f)
}

// checkFinite returns an ErrInvalidArgument error naming the first non-finite
// value in vs.
func checkFinite(op string, vs ...float64) error {
	for i, v := range vs {
		if !isFinite(v) {
			return invalidArgument(op, "coordinate %d is %g", i, v)
		}
	}
	return nil
}
