package types

import (
	"fmt"
	"sort"
	"sync"
)

// TypeRegistry is the type registry (component A): the set of ValueType
// names known to the engine. Registration happens at process startup and
// the registry lives for the process. It stands alone: function.Registry
// does not check a Descriptor's slot types against it, and graph.Graph
// compares endpoint ValueTypes by name without consulting it.
type TypeRegistry struct {
	mu    sync.RWMutex
	names map[string]ValueType
}

// NewTypeRegistry creates an empty type registry.
func NewTypeRegistry() *TypeRegistry {
	return &TypeRegistry{
		names: make(map[string]ValueType),
	}
}

// Register binds a new ValueType name. It fails with ErrDuplicateName if
// the name is already bound.
func (r *TypeRegistry) Register(name string) (ValueType, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.names[name]; exists {
		return "", fmt.Errorf("%w: type %q", ErrDuplicateName, name)
	}

	vt := ValueType(name)
	r.names[name] = vt
	return vt, nil
}

// Lookup resolves a registered name to its ValueType. It fails with
// ErrUnknownType if the name has not been registered.
func (r *TypeRegistry) Lookup(name string) (ValueType, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	vt, exists := r.names[name]
	if !exists {
		return "", fmt.Errorf("%w: type %q", ErrUnknownType, name)
	}
	return vt, nil
}

// Names returns every registered type name, sorted for deterministic
// iteration (diagnostics, tests).
func (r *TypeRegistry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.names))
	for name := range r.names {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
