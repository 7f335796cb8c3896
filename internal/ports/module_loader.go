package ports

// ModuleLoader locates and loads modules by absolute path.
//
// Resolve and Load are deliberately separate: Resolve never decodes or
// executes anything, so a miss can be told apart from a module that exists
// but fails to load.
type ModuleLoader interface {
	// Resolve returns the concrete file that would be loaded for path,
	// applying extension inference and directory-to-index expansion.
	// A miss returns an error wrapping domain.ErrModuleNotFound.
	Resolve(path string) (string, error)

	// Load resolves path and returns the loaded module value.
	// A miss returns an error wrapping domain.ErrModuleNotFound.
	Load(path string) (any, error)
}
