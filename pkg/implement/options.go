package implement

import (
	"github.com/bft-labs/implement/internal/ports"
	"github.com/bft-labs/implement/pkg/log"
)

// Collaborator interfaces, re-exported for callers that supply their own.
type (
	// ModuleLoader probes and loads module paths.
	ModuleLoader = ports.ModuleLoader

	// PathResolver extracts directories and joins specifiers.
	PathResolver = ports.PathResolver

	// StackIntrospector captures the active call stack.
	StackIntrospector = ports.StackIntrospector

	// Frame is one captured stack frame.
	Frame = ports.Frame

	// Logger is the structured logger interface.
	Logger = log.Logger
)

// Option configures optional behavior of a Loader.
type Option func(*options)

type options struct {
	modules ModuleLoader
	paths   PathResolver
	stack   StackIntrospector
	logger  Logger
	suffix  string
}

func defaultOptions() options {
	return options{
		logger: log.NewNoopLogger(),
		suffix: DefaultSuffix,
	}
}

// WithModuleLoader sets the module loader. If not provided, a pkg/modload
// Loader with the default codecs is used.
func WithModuleLoader(m ModuleLoader) Option {
	return func(o *options) {
		o.modules = m
	}
}

// WithPathResolver sets the path utilities. If not provided, path/filepath
// semantics are used.
func WithPathResolver(p PathResolver) Option {
	return func(o *options) {
		o.paths = p
	}
}

// WithStackIntrospector sets the stack introspector. If not provided, the
// live runtime stack is read.
func WithStackIntrospector(s StackIntrospector) Option {
	return func(o *options) {
		o.stack = s
	}
}

// WithLogger sets a logger. If not provided, nothing is logged.
func WithLogger(logger Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithSuffix changes the suffix used when a call does not pass one.
// An empty suffix keeps DefaultSuffix.
func WithSuffix(suffix string) Option {
	return func(o *options) {
		if suffix != "" {
			o.suffix = suffix
		}
	}
}
