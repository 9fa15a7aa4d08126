package engine

import (
	"errors"
	"fmt"

	"github.com/flowgraph/engine/pkg/types"
)

// ErrNilContext is returned when Run is called with a nil
// function.ExecutionContext.
var ErrNilContext = errors.New("engine: execution context is required")

// ExecutionFailedError wraps a function invocation failure with the node
// that raised it, the one error kind the spec requires to carry a payload
// (node, cause) rather than being a bare sentinel.
type ExecutionFailedError struct {
	Node  types.NodeIndex
	Cause error
}

func (e *ExecutionFailedError) Error() string {
	return fmt.Sprintf("engine: node %d execution failed: %v", e.Node, e.Cause)
}

func (e *ExecutionFailedError) Unwrap() error {
	return e.Cause
}
