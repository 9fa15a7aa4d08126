// Package function is the function registry (component B): the catalog of
// callable units a Graph's nodes refer to by name.
//
// # Overview
//
// A Descriptor is an immutable callable unit: a stable name, an ordered list
// of input Slots, an ordered list of output Slots, and an InvocationHandle —
// the opaque body the engine invokes when a node must execute. The engine
// does no introspection on the handle; it is free to wrap a native Go
// closure, a compiled expression (see ExprHandle), or a bridge into a
// scripted/embedded interpreter supplied by a host application.
//
// Registry is the ExecutionContext named in the top-level specification: the
// externally-supplied, logically read-only-during-a-run bundle the executor
// consults to resolve a node's function name to its Descriptor and invoke
// it.
//
// # Usage
//
//	reg := function.NewRegistry()
//	reg.MustRegister(&function.Descriptor{
//	    Name:    "sum",
//	    Inputs:  []function.Slot{{Name: "a", Type: "f64"}, {Name: "b", Type: "f64"}},
//	    Outputs: []function.Slot{{Name: "out", Type: "f64"}},
//	    Handle:  function.NativeFunc(sumImpl),
//	})
package function
