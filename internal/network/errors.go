package network

import "github.com/pkg/errors"

// Sentinel errors. Every error returned by this package wraps one of them,
// so callers can test the category with errors.Is.
var (
	// ErrInvalidArgument reports a missing or malformed argument.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvalidConfiguration reports a network that cannot be built or
	// trained as configured (no output layer, no learning rule).
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrIndexOutOfRange reports a layer, neuron or connection lookup
	// beyond bounds.
	ErrIndexOutOfRange = errors.New("index out of range")
)

func indexError(what string, i, n int) error {
	return errors.Wrapf(ErrIndexOutOfRange, "%s index %d (have %d)", what, i, n)
}
