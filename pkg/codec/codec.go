package codec

import (
	"path/filepath"
	"strings"
)

// Codec turns the bytes of a module file into a value.
type Codec interface {
	// Name identifies the format, e.g. "toml".
	Name() string

	// Extensions lists the file extensions this codec handles, with the dot.
	Extensions() []string

	// Decode converts data read from path into a module value.
	Decode(path string, data []byte) (any, error)
}

// Default returns the built-in codecs in probe order.
func Default() []Codec {
	return []Codec{
		NewGoSource(),
		NewCUE(),
		NewTOML(),
		NewYAML(),
		NewJSON(),
	}
}

// Set is an ordered list of codecs.
type Set []Codec

// Extensions returns every claimed extension in probe order, without duplicates.
func (s Set) Extensions() []string {
	seen := make(map[string]bool)
	var exts []string
	for _, c := range s {
		for _, ext := range c.Extensions() {
			ext = strings.ToLower(ext)
			if seen[ext] {
				continue
			}
			seen[ext] = true
			exts = append(exts, ext)
		}
	}
	return exts
}

// ForPath returns the first codec claiming the extension of path.
func (s Set) ForPath(path string) (Codec, bool) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == "" {
		return nil, false
	}
	for _, c := range s {
		for _, claimed := range c.Extensions() {
			if strings.ToLower(claimed) == ext {
				return c, true
			}
		}
	}
	return nil, false
}

// Names returns the codec names in order.
func (s Set) Names() []string {
	names := make([]string, len(s))
	for i, c := range s {
		names[i] = c.Name()
	}
	return names
}
