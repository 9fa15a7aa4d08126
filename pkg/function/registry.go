package function

import (
	"fmt"
	"sort"
	"sync"

	"github.com/flowgraph/engine/pkg/types"
)

// Registry manages function registration and lookup. It provides
// thread-safe registration and invocation dispatch, and is the
// ExecutionContext an engine.Run call consults to resolve a node's function
// name and invoke it.
//
// Registration typically happens once at process startup from one or more
// collaborators (native Go code, a host scripting bridge, …); a single run
// never invokes functions concurrently, but nothing here prevents
// registering functions from multiple goroutines before a run starts.
type Registry struct {
	mu  sync.RWMutex
	fns map[string]*Descriptor
}

// NewRegistry creates an empty function registry.
func NewRegistry() *Registry {
	return &Registry{
		fns: make(map[string]*Descriptor),
	}
}

// Register adds a function to the registry. It fails with
// types.ErrDuplicateName if a function with the same name is already
// registered.
func (r *Registry) Register(d *Descriptor) error {
	if d == nil {
		return ErrNilDescriptor
	}
	if d.Name == "" {
		return ErrEmptyName
	}
	if d.Handle == nil {
		return ErrNilHandle
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.fns[d.Name]; exists {
		return fmt.Errorf("%w: function %q", types.ErrDuplicateName, d.Name)
	}
	r.fns[d.Name] = d
	return nil
}

// MustRegister registers a function and panics on error. Useful during
// process initialization where registration must succeed.
func (r *Registry) MustRegister(d *Descriptor) {
	if err := r.Register(d); err != nil {
		panic(err)
	}
}

// Lookup resolves a function name to its Descriptor. It fails with
// types.ErrUnknownFunction if no function with that name is registered.
func (r *Registry) Lookup(name string) (*Descriptor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	d, exists := r.fns[name]
	if !exists {
		return nil, fmt.Errorf("%w: function %q", types.ErrUnknownFunction, name)
	}
	return d, nil
}

// Invoke dispatches to the named function's handle, going through Lookup.
// *Registry satisfies ExecutionContext this way, so engine.Run calls it once
// per executed node via execCtx.Invoke(node.Function, inputs) rather than
// holding a resolved Descriptor across the call.
func (r *Registry) Invoke(name string, inputs []Value) ([]Value, error) {
	d, err := r.Lookup(name)
	if err != nil {
		return nil, err
	}
	return d.Handle.Invoke(inputs)
}

// Names returns every registered function name, sorted for deterministic
// iteration.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.fns))
	for name := range r.fns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
