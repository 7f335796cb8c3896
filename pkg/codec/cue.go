package codec

import (
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

// CUE compiles a .cue file and decodes it once every field is concrete.
type CUE struct{}

// NewCUE returns the CUE codec.
func NewCUE() *CUE {
	return &CUE{}
}

func (*CUE) Name() string         { return "cue" }
func (*CUE) Extensions() []string { return []string{".cue"} }

func (*CUE) Decode(path string, data []byte) (any, error) {
	ctx := cuecontext.New()
	v := ctx.CompileBytes(data, cue.Filename(path))
	if err := v.Err(); err != nil {
		return nil, fmt.Errorf("codec: compile %s: %w", path, err)
	}
	if err := v.Validate(cue.Concrete(true)); err != nil {
		return nil, fmt.Errorf("codec: validate %s: %w", path, err)
	}
	var out any
	if err := v.Decode(&out); err != nil {
		return nil, fmt.Errorf("codec: decode %s: %w", path, err)
	}
	return out, nil
}

var _ Codec = (*CUE)(nil)
