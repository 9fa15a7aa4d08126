package config

import "errors"

// Sentinel errors for configuration validation.
var (
	ErrInvalidMaxNodes    = errors.New("invalid max nodes: must be non-negative")
	ErrInvalidMaxEdges    = errors.New("invalid max edges: must be non-negative")
	ErrInvalidMaxPlanSize = errors.New("invalid max plan size: must be non-negative")
	ErrInvalidRunDuration = errors.New("invalid max run duration: must be non-negative")
)
