package stack

import (
	"runtime"

	"github.com/bft-labs/implement/internal/ports"
)

const defaultDepth = 64

// Runtime captures frames from the calling goroutine.
type Runtime struct {
	// Skip drops additional frames above the function that called
	// CaptureStack. Zero keeps that function as the innermost frame.
	Skip int

	// Depth bounds the number of program counters collected.
	Depth int
}

// NewRuntime creates a runtime introspector with default depth.
func NewRuntime() *Runtime {
	return &Runtime{Depth: defaultDepth}
}

// CaptureStack returns the stack starting at the caller of CaptureStack,
// innermost first. Frames without a file (assembly trampolines) are dropped.
// The specifier is not needed to locate frames.
func (r *Runtime) CaptureStack(specifier string) []ports.Frame {
	depth := r.Depth
	if depth <= 0 {
		depth = defaultDepth
	}
	pcs := make([]uintptr, depth)
	// 0 is runtime.Callers, 1 is CaptureStack.
	n := runtime.Callers(2+r.Skip, pcs)
	if n == 0 {
		return nil
	}

	frames := make([]ports.Frame, 0, n)
	iter := runtime.CallersFrames(pcs[:n])
	for {
		f, more := iter.Next()
		if f.File != "" {
			frames = append(frames, Frame{File: f.File, Function: f.Function, Line: f.Line})
		}
		if !more {
			break
		}
	}
	return frames
}

var _ ports.StackIntrospector = (*Runtime)(nil)
