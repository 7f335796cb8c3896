package codec

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// YAML decodes a YAML document. An empty document decodes to nil.
type YAML struct{}

// NewYAML returns the YAML codec.
func NewYAML() *YAML {
	return &YAML{}
}

func (*YAML) Name() string         { return "yaml" }
func (*YAML) Extensions() []string { return []string{".yaml", ".yml"} }

func (*YAML) Decode(path string, data []byte) (any, error) {
	var out any
	if err := yaml.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("codec: decode %s: %w", path, err)
	}
	return out, nil
}

var _ Codec = (*YAML)(nil)
