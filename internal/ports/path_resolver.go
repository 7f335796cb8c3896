package ports

// PathResolver performs the pure path arithmetic used to anchor a specifier
// at the caller's directory.
type PathResolver interface {
	// Dir returns the directory portion of an absolute path.
	Dir(path string) string

	// Resolve joins specifier onto baseDir. Absolute specifiers win.
	Resolve(baseDir, specifier string) string
}
