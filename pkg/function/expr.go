package function

import (
	"fmt"
	"sync"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// ExprHandle is a built-in InvocationHandle that evaluates a compiled
// expr-lang expression against its named inputs. It is the in-module
// stand-in for "a native function with an opaque invocation handle" when no
// host collaborator (scripting bridge, GPU pipeline) is wired in — useful
// for examples, tests, and small graphs that need a computed function
// without a host language runtime.
//
// The program is compiled once, lazily, and cached — the same
// compile-once-then-cache shape a host's own expression-backed functions
// would use.
type ExprHandle struct {
	source     string
	inputNames []string

	mu      sync.Mutex
	program *vm.Program
}

// NewExprHandle creates an ExprHandle over source, binding the function's
// ordered inputs to the given environment variable names. len(inputNames)
// must equal the Descriptor's input slot count; Invoke reports
// ErrExprInputCount otherwise.
func NewExprHandle(source string, inputNames []string) *ExprHandle {
	names := make([]string, len(inputNames))
	copy(names, inputNames)
	return &ExprHandle{source: source, inputNames: names}
}

// Invoke implements InvocationHandle. It produces exactly one output value,
// typed by the caller via the returned Value's Type field left zero — the
// engine does not re-type-check function outputs beyond what add_edge
// already validated at graph-construction time, so ExprHandle leaves Type
// to be filled in by whatever wraps it into a Descriptor.
func (h *ExprHandle) Invoke(inputs []Value) ([]Value, error) {
	if len(inputs) != len(h.inputNames) {
		return nil, fmt.Errorf("%w: expression %q wants %d inputs, got %d",
			ErrExprInputCount, h.source, len(h.inputNames), len(inputs))
	}

	env := make(map[string]interface{}, len(inputs))
	for i, name := range h.inputNames {
		env[name] = inputs[i].Payload
	}

	program, err := h.compiled(env)
	if err != nil {
		return nil, err
	}

	output, err := expr.Run(program, env)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExprRunFailed, err)
	}

	return []Value{{Payload: output}}, nil
}

func (h *ExprHandle) compiled(env map[string]interface{}) (*vm.Program, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.program != nil {
		return h.program, nil
	}

	program, err := expr.Compile(h.source, expr.Env(env))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExprCompileFailed, err)
	}
	h.program = program
	return program, nil
}
