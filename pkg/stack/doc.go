// Package stack provides stack introspectors for the caller locator.
//
// [Runtime] reads the live goroutine stack through runtime.Callers. [Fixed]
// replays a static list of file names, which is what the CLI uses for
// --from and what tests use to pin a caller.
//
// # Version
//
// Current version: 1.0.0
// Minimum compatible version: 1.0.0
package stack
