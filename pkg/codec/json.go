package codec

import (
	"encoding/json"
	"fmt"
)

// JSON decodes a JSON document.
type JSON struct{}

// NewJSON returns the JSON codec.
func NewJSON() *JSON {
	return &JSON{}
}

func (*JSON) Name() string         { return "json" }
func (*JSON) Extensions() []string { return []string{".json"} }

func (*JSON) Decode(path string, data []byte) (any, error) {
	var out any
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("codec: decode %s: %w", path, err)
	}
	return out, nil
}

var _ Codec = (*JSON)(nil)
