// Package ports defines the capabilities the resolver consumes.
//
// The resolver never touches the file system or the call stack directly. It
// asks three narrow collaborators and can be driven entirely by fakes in tests.
//
// # Port Interfaces
//
//   - [ModuleLoader]: resolve-only probe and full load of a module path
//   - [PathResolver]: directory extraction and specifier joining
//   - [StackIntrospector]: innermost-first frames of the active call stack
//   - [Logger]: structured logging abstraction
//
// Adapters live in internal/adapters and in the public pkg/ sub-modules
// (pkg/modload, pkg/stack).
package ports
