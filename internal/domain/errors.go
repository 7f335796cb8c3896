package domain

import "errors"

// Domain errors represent the failure kinds of an implementation lookup.
// They are returned by the public API and can be checked with errors.Is.
var (
	// ErrInvalidArgument is returned when the requested specifier is not a string.
	ErrInvalidArgument = errors.New("Module path must be a string")

	// ErrCallerUnresolvable is returned when no caller file can be found on the stack.
	ErrCallerUnresolvable = errors.New("Unable to require implementation")

	// ErrImplementationNotFound matches every *ImplementationNotFoundError.
	ErrImplementationNotFound = errors.New("No implementation file found for module")

	// ErrModuleNotFound is the marker a module loader wraps when a path cannot
	// be located. It is the only failure kind translated by the resolver.
	ErrModuleNotFound = errors.New("module not found")

	// ErrUnsupportedFormat is returned when a located file has no codec.
	ErrUnsupportedFormat = errors.New("unsupported module format")
)

// ImplementationNotFoundError reports that the probe or the load step could not
// locate a module for Specifier.
type ImplementationNotFoundError struct {
	Specifier string
	Err       error
}

func (e *ImplementationNotFoundError) Error() string {
	return `No implementation file found for module: "` + e.Specifier + `"`
}

// Is reports ErrImplementationNotFound as a match so callers need not type-assert.
func (e *ImplementationNotFoundError) Is(target error) bool {
	return target == ErrImplementationNotFound
}

// Unwrap returns the loader error that carried the not-found marker.
func (e *ImplementationNotFoundError) Unwrap() error {
	return e.Err
}
