package types

import "errors"

// Sentinel errors shared across the engine's packages. Each is a distinct,
// exhaustive error kind per the engine's error handling design: structural
// errors abort the operation that caused them and leave their owning
// collaborator (registry, graph, document) unchanged; runtime errors abort
// the current run and leave the prior cache unchanged.
var (
	// Structural errors.
	ErrDuplicateName     = errors.New("duplicate name")
	ErrUnknownType       = errors.New("unknown type")
	ErrUnknownFunction   = errors.New("unknown function")
	ErrTypeMismatch      = errors.New("type mismatch")
	ErrInputAlreadyBound = errors.New("input already bound")
	ErrWouldCreateCycle  = errors.New("would create cycle")
	ErrUnknownField      = errors.New("unknown field")
	ErrMalformedDocument = errors.New("malformed document")

	// Runtime errors. ExecutionFailed carries node/cause and is defined as
	// a struct type in pkg/engine rather than here, since it cannot be a
	// static sentinel.
	ErrUnboundInput = errors.New("unbound input")
)
