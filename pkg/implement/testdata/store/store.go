package main

// Store is the abstract store; see store_implementation.go.
var Module = map[string]any{"backend": "abstract"}
