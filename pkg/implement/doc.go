// Package implement loads the implementation sibling of a module on behalf
// of the calling source file.
//
// A package declares an abstract module, for example config/index.toml, and
// ships one or more concrete variants next to it (config/index_implementation.toml,
// config/index_test.yaml, ...). Code that needs the concrete variant asks for
// the abstract one, relative to its own source file:
//
//	mod, err := implement.Require("../config")
//
// The loader determines the calling file from the stack, resolves "../config"
// against that file's directory through the module loader (with extension
// inference and directory-to-index expansion), swaps the extension of the
// resolved file for the suffix and loads the result.
//
// # Errors
//
//   - [ErrInvalidArgument]: the specifier is not a string
//   - [ErrCallerUnresolvable]: no caller file could be found on the stack
//   - [ErrImplementationNotFound]: the module or its implementation is missing;
//     the concrete error is an [*ImplementationNotFoundError]
//
// Any other failure from the module loader, such as a syntax error in the
// implementation file, is returned as-is.
//
// # Dependency Injection
//
// Every collaborator can be replaced:
//
//	loader, err := implement.New(
//	    implement.WithModuleLoader(modload.New(modload.WithCodecs(codec.NewYAML()))),
//	    implement.WithStackIntrospector(stack.NewFixed("/srv/cli", "/srv/app/main.go")),
//	    implement.WithLogger(logger),
//	)
//
// # Version
//
// Current version: 1.0.0
// Minimum compatible version: 1.0.0
package implement
