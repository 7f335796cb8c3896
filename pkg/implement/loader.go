package implement

import (
	"errors"
	"path/filepath"
	"strings"
	"sync"

	pathAdapter "github.com/bft-labs/implement/internal/adapters/path"
	"github.com/bft-labs/implement/internal/ports"
	"github.com/bft-labs/implement/pkg/log"
	"github.com/bft-labs/implement/pkg/modload"
	"github.com/bft-labs/implement/pkg/stack"
)

// DefaultSuffix replaces the extension of the resolved module file.
const DefaultSuffix = "_implementation"

// Loader resolves specifiers against the calling file and loads their
// implementation siblings. A Loader holds no per-call state and is safe for
// concurrent and nested use.
//
// GetCaller, Load, Resolve and Require must stay in this file: the caller is
// the first stack frame outside the file of the innermost frame.
type Loader struct {
	modules ModuleLoader
	paths   PathResolver
	stack   StackIntrospector
	logger  Logger
	suffix  string
}

// New creates a Loader. Collaborators not supplied through options get
// their default implementations.
func New(opts ...Option) (*Loader, error) {
	if err := validateModuleVersions(); err != nil {
		return nil, err
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.modules == nil {
		o.modules = modload.New(modload.WithLogger(o.logger))
	}
	if o.paths == nil {
		o.paths = pathAdapter.NewResolver()
	}
	if o.stack == nil {
		o.stack = stack.NewRuntime()
	}

	return &Loader{
		modules: o.modules,
		paths:   o.paths,
		stack:   o.stack,
		logger:  o.logger,
		suffix:  o.suffix,
	}, nil
}

// GetCaller returns the source file of the code that called into this file.
// The stack is captured exactly once. Frames sharing the innermost frame's
// file are skipped so wrappers declared here resolve to the real caller.
func (l *Loader) GetCaller(specifier string) (string, bool) {
	frames := l.stack.CaptureStack(specifier)
	if len(frames) == 0 {
		return "", false
	}

	current := frames[0].FileName()
	for _, f := range frames[1:] {
		if caller := f.FileName(); caller != current {
			return caller, caller != ""
		}
	}
	return "", false
}

// Load returns the implementation module for specifier, resolved relative
// to the calling source file. suffix overrides the Loader's suffix when its
// first element is non-empty.
//
// specifier must be a string; it is typed any because specifiers usually
// arrive from decoded configuration or interpreted modules.
func (l *Loader) Load(specifier any, suffix ...string) (any, error) {
	spec, implPath, err := l.implementationPath(specifier, suffix)
	if err != nil {
		return nil, err
	}

	mod, err := l.modules.Load(implPath)
	if err != nil {
		return nil, notFound(spec, err)
	}

	l.logger.Debug("implementation loaded", log.Specifier(spec), log.Path(implPath))
	return mod, nil
}

// Resolve reports the concrete file Load would read for specifier, without
// loading it.
func (l *Loader) Resolve(specifier any, suffix ...string) (string, error) {
	spec, implPath, err := l.implementationPath(specifier, suffix)
	if err != nil {
		return "", err
	}

	file, err := l.modules.Resolve(implPath)
	if err != nil {
		return "", notFound(spec, err)
	}
	return file, nil
}

// implementationPath validates the call, locates the caller, probes the
// requested module and derives the implementation path from it.
func (l *Loader) implementationPath(specifier any, suffix []string) (string, string, error) {
	spec, ok := specifier.(string)
	if !ok {
		return "", "", ErrInvalidArgument
	}

	sfx := l.suffix
	if len(suffix) > 0 && suffix[0] != "" {
		sfx = suffix[0]
	}

	// -trimpath builds record module-relative file names.
	caller, ok := l.GetCaller(spec)
	if !ok || !filepath.IsAbs(caller) {
		return spec, "", ErrCallerUnresolvable
	}

	target := l.paths.Resolve(l.paths.Dir(caller), spec)
	resolved, err := l.modules.Resolve(target)
	if err != nil {
		return spec, "", notFound(spec, err)
	}

	implPath := ImplementationPath(resolved, sfx)
	l.logger.Debug("implementation resolved",
		log.Specifier(spec),
		ports.String("caller", caller),
		ports.String("resolved", resolved),
		log.Path(implPath))
	return spec, implPath, nil
}

// notFound converts a loader miss into an ImplementationNotFoundError and
// returns every other error unchanged.
func notFound(specifier string, err error) error {
	if errors.Is(err, ErrModuleNotFound) {
		return &ImplementationNotFoundError{Specifier: specifier, Err: err}
	}
	return err
}

// ImplementationPath drops the extension of the last element of resolved and
// appends suffix. Nothing else in the path changes.
func ImplementationPath(resolved, suffix string) string {
	base := filepath.Base(resolved)
	ext := filepath.Ext(base)
	if ext == base {
		// dotfile such as ".env": no extension
		ext = ""
	}
	return strings.TrimSuffix(resolved, ext) + suffix
}

var (
	stdOnce sync.Once
	std     *Loader
	stdErr  error
)

// Require loads the implementation of specifier for the calling file using
// a default Loader.
func Require(specifier any, suffix ...string) (any, error) {
	stdOnce.Do(func() {
		std, stdErr = New()
	})
	if stdErr != nil {
		return nil, stdErr
	}
	return std.Load(specifier, suffix...)
}
