package main

import (
	"encoding/json"
	"fmt"
	"io"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/bft-labs/implement/internal/cliconfig"
	"github.com/bft-labs/implement/pkg/modload"
)

// moduleValue unwraps the decoded value of a host-loaded module.
func moduleValue(mod any) any {
	if m, ok := mod.(*modload.Module); ok {
		return m.Value
	}
	return mod
}

// writeValue encodes v to w in the given output format. TOML documents must
// be tables, so other values are wrapped under a "module" key.
func writeValue(w io.Writer, format string, v any) error {
	switch format {
	case cliconfig.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case cliconfig.FormatTOML:
		if _, ok := v.(map[string]any); !ok {
			v = map[string]any{"module": v}
		}
		return toml.NewEncoder(w).Encode(v)
	case cliconfig.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}
