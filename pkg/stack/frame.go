package stack

import (
	"fmt"

	"github.com/bft-labs/implement/internal/ports"
)

// Frame is one resolved stack entry.
type Frame struct {
	File     string
	Function string
	Line     int
}

// FileName returns the absolute source file of the frame.
func (f Frame) FileName() string {
	return f.File
}

func (f Frame) String() string {
	return fmt.Sprintf("%s (%s:%d)", f.Function, f.File, f.Line)
}

var _ ports.Frame = Frame{}
