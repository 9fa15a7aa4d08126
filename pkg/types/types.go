package types

import "fmt"

// ValueType is the stable name of a value type carried on an edge.
// Two values are comparable for equality only when their ValueTypes match by
// name; payload contents are opaque to the engine.
type ValueType string

// NodeIndex identifies a node within a Graph. Indices are dense and stable
// for the graph's lifetime.
type NodeIndex int

// EdgeIndex identifies an edge within a Graph.
type EdgeIndex int

// NodeBehavior controls whether a node's cached outputs may be reused.
type NodeBehavior int

const (
	// Passive nodes reuse cached outputs unless an incoming Always edge
	// forces recomputation.
	Passive NodeBehavior = iota
	// Active nodes recompute on every run regardless of incoming edges.
	Active
)

// String renders a NodeBehavior using the persisted document vocabulary.
func (b NodeBehavior) String() string {
	switch b {
	case Passive:
		return "Passive"
	case Active:
		return "Active"
	default:
		return fmt.Sprintf("NodeBehavior(%d)", int(b))
	}
}

// ParseNodeBehavior parses the persisted document vocabulary for
// NodeBehavior. Unrecognized strings are reported via ErrMalformedDocument.
func ParseNodeBehavior(s string) (NodeBehavior, error) {
	switch s {
	case "Passive", "":
		return Passive, nil
	case "Active":
		return Active, nil
	default:
		return 0, fmt.Errorf("%w: unknown node behavior %q", ErrMalformedDocument, s)
	}
}

// EdgeBehavior controls whether an edge propagates upstream freshness.
type EdgeBehavior int

const (
	// Always propagates the source's freshness: if the source executed
	// this run, the edge forces the sink to execute too.
	Always EdgeBehavior = iota
	// Once latches the source's last-delivered output across the edge; a
	// fresh re-execution of the source does not by itself force the sink
	// to re-execute.
	Once
)

// String renders an EdgeBehavior using the persisted document vocabulary.
func (b EdgeBehavior) String() string {
	switch b {
	case Always:
		return "Always"
	case Once:
		return "Once"
	default:
		return fmt.Sprintf("EdgeBehavior(%d)", int(b))
	}
}

// ParseEdgeBehavior parses the persisted document vocabulary for
// EdgeBehavior. Unrecognized strings are reported via ErrMalformedDocument.
func ParseEdgeBehavior(s string) (EdgeBehavior, error) {
	switch s {
	case "Always", "":
		return Always, nil
	case "Once":
		return Once, nil
	default:
		return 0, fmt.Errorf("%w: unknown edge behavior %q", ErrMalformedDocument, s)
	}
}
