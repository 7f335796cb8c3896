// Package log provides the logging abstraction used by the resolver, the
// module loader and the CLI.
//
// The [Logger] interface is small enough to wrap any structured logger. A
// zerolog adapter and a no-op logger are provided:
//
//	logger := log.NewZerologAdapterWithLogger(zerolog.New(os.Stderr))
//	loader, err := implement.New(implement.WithLogger(logger))
//
// Libraries default to [NoopLogger]; nothing is written unless a logger is
// injected.
//
// # Version
//
// Current version: 1.1.0
// Minimum compatible version: 1.0.0
package log
