// Package path provides the default PathResolver backed by path/filepath.
package path

import (
	"path/filepath"

	"github.com/bft-labs/implement/internal/ports"
)

// Resolver implements ports.PathResolver with path/filepath semantics.
type Resolver struct{}

// NewResolver creates a new filepath-backed resolver.
func NewResolver() *Resolver {
	return &Resolver{}
}

// Dir returns the directory containing path.
func (Resolver) Dir(path string) string {
	return filepath.Dir(path)
}

// Resolve joins specifier onto baseDir and cleans the result. An absolute
// specifier is returned cleaned, ignoring baseDir.
func (Resolver) Resolve(baseDir, specifier string) string {
	if filepath.IsAbs(specifier) {
		return filepath.Clean(specifier)
	}
	return filepath.Join(baseDir, specifier)
}

var _ ports.PathResolver = Resolver{}
