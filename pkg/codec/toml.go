package codec

import (
	"fmt"

	toml "github.com/pelletier/go-toml/v2"
)

// TOML decodes a TOML document into map[string]any.
type TOML struct{}

// NewTOML returns the TOML codec.
func NewTOML() *TOML {
	return &TOML{}
}

func (*TOML) Name() string         { return "toml" }
func (*TOML) Extensions() []string { return []string{".toml"} }

func (*TOML) Decode(path string, data []byte) (any, error) {
	out := map[string]any{}
	if err := toml.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("codec: decode %s: %w", path, err)
	}
	return out, nil
}

var _ Codec = (*TOML)(nil)
