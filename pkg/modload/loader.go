package modload

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"syscall"

	"github.com/bft-labs/implement/internal/domain"
	"github.com/bft-labs/implement/internal/ports"
	"github.com/bft-labs/implement/pkg/codec"
	"github.com/bft-labs/implement/pkg/log"
)

// IndexName is the base name probed inside a directory.
const IndexName = "index"

// Module is the value returned by Load.
type Module = domain.Module

var (
	// ErrModuleNotFound is wrapped by every resolution miss.
	ErrModuleNotFound = domain.ErrModuleNotFound

	// ErrUnsupportedFormat is returned when a resolved file has no codec.
	ErrUnsupportedFormat = domain.ErrUnsupportedFormat
)

// Loader resolves and loads module files. It is safe for concurrent use.
type Loader struct {
	codecs codec.Set
	exts   []string
	logger log.Logger

	mu    sync.RWMutex
	cache map[string]*Module
}

// New creates a Loader using the default codecs unless overridden.
func New(opts ...Option) *Loader {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	set := codec.Set(o.codecs)
	return &Loader{
		codecs: set,
		exts:   set.Extensions(),
		logger: o.logger,
		cache:  make(map[string]*Module),
	}
}

// Extensions returns the probed extensions in order.
func (l *Loader) Extensions() []string {
	return append([]string(nil), l.exts...)
}

// Resolve returns the file Load would read for path. It never reads file
// contents.
func (l *Loader) Resolve(path string) (string, error) {
	if !filepath.IsAbs(path) {
		return "", fmt.Errorf("modload: path %q is not absolute", path)
	}
	path = filepath.Clean(path)

	file, ok, err := l.resolveFile(path, true)
	if err != nil || ok {
		return file, err
	}

	dir, err := isDir(path)
	if err != nil {
		return "", err
	}
	if dir {
		file, ok, err = l.resolveFile(filepath.Join(path, IndexName), false)
		if err != nil || ok {
			return file, err
		}
	}

	return "", fmt.Errorf("modload: cannot find module %q: %w", path, ErrModuleNotFound)
}

// Load resolves path and returns the decoded *Module, from cache when present.
func (l *Loader) Load(path string) (any, error) {
	file, err := l.Resolve(path)
	if err != nil {
		return nil, err
	}

	l.mu.RLock()
	cached, ok := l.cache[file]
	l.mu.RUnlock()
	if ok {
		l.logger.Debug("module cache hit", ports.Path(file))
		return cached, nil
	}

	c, ok := l.codecs.ForPath(file)
	if !ok {
		return nil, fmt.Errorf("modload: %s: %w", file, ErrUnsupportedFormat)
	}
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("modload: read %s: %w", file, err)
	}
	value, err := c.Decode(file, data)
	if err != nil {
		return nil, err
	}

	m := &Module{Path: file, Format: c.Name(), Value: value}
	l.mu.Lock()
	if existing, ok := l.cache[file]; ok {
		m = existing
	} else {
		l.cache[file] = m
	}
	l.mu.Unlock()

	l.logger.Debug("module loaded", ports.Path(file), ports.String("format", m.Format))
	return m, nil
}

// Invalidate drops the cached module for file. It reports whether an entry existed.
func (l *Loader) Invalidate(file string) bool {
	file = filepath.Clean(file)
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.cache[file]; !ok {
		return false
	}
	delete(l.cache, file)
	return true
}

// Purge empties the cache.
func (l *Loader) Purge() {
	l.mu.Lock()
	l.cache = make(map[string]*Module)
	l.mu.Unlock()
}

// Cached returns the cached file paths, sorted.
func (l *Loader) Cached() []string {
	l.mu.RLock()
	files := make([]string, 0, len(l.cache))
	for f := range l.cache {
		files = append(files, f)
	}
	l.mu.RUnlock()
	sort.Strings(files)
	return files
}

// resolveFile tries base (when exact is set) and then base+ext for every extension.
func (l *Loader) resolveFile(base string, exact bool) (string, bool, error) {
	if exact {
		ok, err := isFile(base)
		if err != nil || ok {
			return base, ok, err
		}
	}
	for _, ext := range l.exts {
		candidate := base + ext
		ok, err := isFile(candidate)
		if err != nil {
			return "", false, err
		}
		if ok {
			return candidate, true, nil
		}
	}
	return "", false, nil
}

func isFile(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if missing(err) {
			return false, nil
		}
		return false, fmt.Errorf("modload: stat %s: %w", path, err)
	}
	return !info.IsDir(), nil
}

func isDir(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if missing(err) {
			return false, nil
		}
		return false, fmt.Errorf("modload: stat %s: %w", path, err)
	}
	return info.IsDir(), nil
}

// missing treats a path through a regular file ("a.toml/x") like an absent one.
func missing(err error) bool {
	return errors.Is(err, fs.ErrNotExist) || errors.Is(err, syscall.ENOTDIR)
}

var _ ports.ModuleLoader = (*Loader)(nil)
