// Package implement loads the "implementation" sibling of a module, resolved
// relative to the source file that asks for it.
//
// Example usage:
//
//	cfg, err := implement.Require("./config")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// For ./config resolving to config/index.toml, Require loads
// config/index_implementation.toml. A second argument replaces the suffix:
//
//	foo, err := implement.Require("./config", "_foo") // config/index_foo.*
package implement

import (
	"github.com/bft-labs/implement/pkg/implement"
	"github.com/bft-labs/implement/pkg/modload"
)

// Loader resolves and loads implementation modules.
type Loader = implement.Loader

// Option configures a Loader.
type Option = implement.Option

// Module is the value returned for files loaded by the default host loader.
type Module = modload.Module

// ImplementationNotFoundError reports a missing module or implementation file.
type ImplementationNotFoundError = implement.ImplementationNotFoundError

// DefaultSuffix replaces the extension of the resolved module file.
const DefaultSuffix = implement.DefaultSuffix

// Errors returned by Require and Loader methods.
var (
	ErrInvalidArgument        = implement.ErrInvalidArgument
	ErrCallerUnresolvable     = implement.ErrCallerUnresolvable
	ErrImplementationNotFound = implement.ErrImplementationNotFound
	ErrModuleNotFound         = implement.ErrModuleNotFound
)

// Require loads the implementation of specifier relative to the calling file.
// It is a variable so that no frame from this file sits between the caller
// and the stack capture.
var Require = implement.Require

// New creates a Loader with custom collaborators.
var New = implement.New

// Options for New.
var (
	WithModuleLoader      = implement.WithModuleLoader
	WithPathResolver      = implement.WithPathResolver
	WithStackIntrospector = implement.WithStackIntrospector
	WithLogger            = implement.WithLogger
	WithSuffix            = implement.WithSuffix
)

// ImplementationPath derives the implementation path from a resolved module path.
func ImplementationPath(resolved, suffix string) string {
	return implement.ImplementationPath(resolved, suffix)
}
