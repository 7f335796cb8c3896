package domain

// Module is the value a file-backed module loader returns for a loaded file.
type Module struct {
	// Path is the absolute path of the file that was decoded.
	Path string

	// Format is the codec name that decoded the file (e.g. "toml", "go").
	Format string

	// Value is whatever the codec produced for the file contents.
	Value any
}
