package ports

import "github.com/bft-labs/implement/pkg/log"

// Logger is the structured logger used across the module.
type Logger = log.Logger

// Field is a structured log field.
type Field = log.Field

// Field constructors, re-exported so adapters need only import ports.
var (
	String    = log.String
	Path      = log.Path
	Specifier = log.Specifier
	Err       = log.Err
)
