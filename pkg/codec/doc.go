// Package codec decodes module files into Go values.
//
// A [Codec] claims a set of file extensions. The module loader probes
// extensions in codec order, so the order of [Default] is also the order in
// which an extensionless path is expanded:
//
//	.go   Go source, interpreted with yaegi; the value of an exported symbol
//	.cue  CUE, compiled and decoded once concrete
//	.toml TOML document
//	.yaml, .yml YAML document
//	.json JSON document
//
// # Version
//
// Current version: 1.0.0
// Minimum compatible version: 1.0.0
package codec
