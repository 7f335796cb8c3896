package codec

import (
	"bytes"
	"fmt"
	"reflect"

	"github.com/traefik/yaegi/interp"
	"github.com/traefik/yaegi/stdlib"
)

// DefaultGoSymbol is the exported identifier a Go module file must declare.
const DefaultGoSymbol = "Module"

// GoSource interprets a `package main` Go file and returns the value of
// Symbol. When Symbol is a function it is called with no arguments and may
// return (T) or (T, error).
type GoSource struct {
	Symbol string
}

// NewGoSource returns a Go codec reading DefaultGoSymbol.
func NewGoSource() *GoSource {
	return &GoSource{Symbol: DefaultGoSymbol}
}

func (g *GoSource) Name() string         { return "go" }
func (g *GoSource) Extensions() []string { return []string{".go"} }

// Decode evaluates the source in a fresh interpreter. Every call gets its own
// interpreter, so package-level state is never shared between files.
func (g *GoSource) Decode(path string, data []byte) (any, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("codec: %s is empty", path)
	}
	symbol := g.Symbol
	if symbol == "" {
		symbol = DefaultGoSymbol
	}

	i := interp.New(interp.Options{})
	if err := i.Use(stdlib.Symbols); err != nil {
		return nil, fmt.Errorf("codec: load stdlib symbols: %w", err)
	}
	if _, err := i.Eval(string(data)); err != nil {
		return nil, fmt.Errorf("codec: interpret %s: %w", path, err)
	}
	value, err := i.Eval(symbol)
	if err != nil {
		return nil, fmt.Errorf("codec: %s must declare %s: %w", path, symbol, err)
	}
	out, err := exported(value, symbol)
	if err != nil {
		return nil, fmt.Errorf("codec: %s: %w", path, err)
	}
	return out, nil
}

func exported(value reflect.Value, symbol string) (any, error) {
	if !value.IsValid() {
		return nil, fmt.Errorf("missing %s", symbol)
	}
	if value.Kind() != reflect.Func {
		return value.Interface(), nil
	}
	if value.Type().NumIn() != 0 {
		return nil, fmt.Errorf("%s must take no arguments", symbol)
	}
	results := value.Call(nil)
	switch len(results) {
	case 1:
		return results[0].Interface(), nil
	case 2:
		if !results[1].IsNil() {
			if e, ok := results[1].Interface().(error); ok {
				return nil, e
			}
			return nil, fmt.Errorf("%s returned non-error second value", symbol)
		}
		return results[0].Interface(), nil
	default:
		return nil, fmt.Errorf("%s must return (T) or (T, error)", symbol)
	}
}

var _ Codec = (*GoSource)(nil)
