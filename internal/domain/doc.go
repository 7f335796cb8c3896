// Package domain contains the error taxonomy and value types shared by the
// resolver and the module loaders.
//
// This package is the innermost layer. It has no dependencies on the file
// system, the call stack, or logging.
//
// # Errors
//
//   - [ErrInvalidArgument]: the specifier is not a string
//   - [ErrCallerUnresolvable]: the caller's source file cannot be determined
//   - [ErrImplementationNotFound]: probe or load reported [ErrModuleNotFound]
//   - [ErrModuleNotFound]: marker wrapped by module loaders on a miss
//
// Every other failure surfaced by a loader is passed through untouched.
package domain
