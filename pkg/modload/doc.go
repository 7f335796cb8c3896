// Package modload is a file-backed module loader.
//
// It plays the role a host runtime's module system plays for the resolver in
// pkg/implement: [Loader.Resolve] maps an absolute path to a concrete file
// without reading it, and [Loader.Load] decodes that file with a codec from
// pkg/codec.
//
// # Resolution
//
// For an absolute path P the loader tries, in order:
//
//  1. P itself, when it is a regular file
//  2. P + ext for each codec extension, in codec order
//  3. P/index + ext for each codec extension, when P is a directory
//
// A miss returns an error wrapping [ErrModuleNotFound].
//
// # Cache
//
// Loaded modules are cached by resolved file path for the lifetime of the
// Loader. [Loader.Invalidate] and [Loader.Purge] drop entries; a [Watcher]
// invalidates entries whose files change on disk.
//
// # Version
//
// Current version: 1.0.0
// Minimum compatible version: 1.0.0
package modload
