package function

import (
	"github.com/flowgraph/engine/pkg/types"
)

// Slot is a single named, typed input or output port on a Function.
type Slot struct {
	Name string
	Type types.ValueType
}

// Value is a value carried on an edge: an opaque, type-tagged envelope. The
// engine compares only Type; Payload is never inspected or mutated by the
// engine itself.
type Value struct {
	Type    types.ValueType
	Payload interface{}
}

// InvocationHandle is the opaque, callable body of a Function. Invoke
// receives the ordered input payloads and returns the ordered output
// payloads, or an error if the function cannot process its inputs — such an
// error surfaces to the caller as engine.ExecutionFailedError.
type InvocationHandle interface {
	Invoke(inputs []Value) ([]Value, error)
}

// NativeFunc adapts a plain Go function into an InvocationHandle, the
// idiomatic shape for functions registered directly by Go code (as opposed
// to ExprHandle-backed or host-bridged functions).
type NativeFunc func(inputs []Value) ([]Value, error)

// Invoke implements InvocationHandle.
func (f NativeFunc) Invoke(inputs []Value) ([]Value, error) {
	return f(inputs)
}

// Descriptor is the immutable callable unit a Graph node refers to by name.
type Descriptor struct {
	Name    string
	Inputs  []Slot
	Outputs []Slot
	Handle  InvocationHandle
}

// ExecutionContext is the function-invocation collaborator an engine run
// consults to resolve a node's function name to a callable. A *Registry
// satisfies this directly; a host may instead supply a wrapper that adds
// tracing, metrics, or a different resolution strategy around one.
type ExecutionContext interface {
	Invoke(name string, inputs []Value) ([]Value, error)
}
