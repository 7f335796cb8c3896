package ports

// Frame is a single call-stack entry.
type Frame interface {
	FileName() string
}

// StackIntrospector captures the active call stack, innermost frame first.
type StackIntrospector interface {
	// CaptureStack returns the frames of the current stack. The specifier
	// being requested is passed through so implementations may use it to
	// annotate or filter frames.
	CaptureStack(specifier string) []Frame
}
