package builtin

import "errors"

// Sentinel errors returned by built-in function handles.
var (
	// ErrArity reports that a handle received the wrong number of inputs.
	ErrArity = errors.New("builtin: wrong number of inputs")
	// ErrPayloadType reports that an input's Payload was not the Go type
	// the handle expected.
	ErrPayloadType = errors.New("builtin: unexpected payload type")
	// ErrDivideByZero reports a "divide" invocation whose right operand is
	// zero.
	ErrDivideByZero = errors.New("builtin: division by zero")
	// ErrNegativeCount reports a "repeat" descriptor constructed with a
	// negative repeat count.
	ErrNegativeCount = errors.New("builtin: repeat count must be non-negative")
)
