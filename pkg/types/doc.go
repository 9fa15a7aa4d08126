// Package types provides the shared vocabulary of the node-graph execution
// engine: value types, node/edge behaviors, and index types.
//
// # Overview
//
// This package has no dependencies on the other engine packages. It exists so
// that graph, function, plan, cache, and engine can all refer to the same
// small set of concepts (ValueType, NodeBehavior, EdgeBehavior, NodeIndex,
// EdgeIndex) without creating import cycles.
//
// # Design Principles
//
//   - Minimal dependencies: this package imports nothing from the rest of the
//     module.
//   - Behaviors are closed enumerations: NodeBehavior is Passive or Active,
//     EdgeBehavior is Always or Once. There is no extensibility point here by
//     design — adding a third behavior changes the engine's must-execute
//     semantics, not this package's contract.
package types
