package implement

import "github.com/bft-labs/implement/internal/domain"

// Errors returned by Load and Resolve. Check them with errors.Is.
var (
	ErrInvalidArgument        = domain.ErrInvalidArgument
	ErrCallerUnresolvable     = domain.ErrCallerUnresolvable
	ErrImplementationNotFound = domain.ErrImplementationNotFound

	// ErrModuleNotFound is the marker a ModuleLoader must wrap on a miss.
	ErrModuleNotFound = domain.ErrModuleNotFound
)

// ImplementationNotFoundError carries the specifier that could not be satisfied.
type ImplementationNotFoundError = domain.ImplementationNotFoundError
