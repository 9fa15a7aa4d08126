package graph

import (
	"errors"
	"testing"

	"github.com/flowgraph/engine/pkg/config"
	"github.com/flowgraph/engine/pkg/function"
	"github.com/flowgraph/engine/pkg/types"
)

func numberFn(name string) *function.Descriptor {
	return &function.Descriptor{
		Name:    name,
		Outputs: []function.Slot{{Name: "out", Type: "f64"}},
		Handle:  function.NativeFunc(func(in []function.Value) ([]function.Value, error) { return nil, nil }),
	}
}

func binaryFn(name string) *function.Descriptor {
	return &function.Descriptor{
		Name:    name,
		Inputs:  []function.Slot{{Name: "a", Type: "f64"}, {Name: "b", Type: "f64"}},
		Outputs: []function.Slot{{Name: "out", Type: "f64"}},
		Handle:  function.NativeFunc(func(in []function.Value) ([]function.Value, error) { return nil, nil }),
	}
}

func newTestGraph(t *testing.T) (*Graph, *function.Registry) {
	t.Helper()
	reg := function.NewRegistry()
	reg.MustRegister(numberFn("val"))
	reg.MustRegister(binaryFn("sum"))
	reg.MustRegister(binaryFn("mult"))
	return New(reg), reg
}

func TestGraph_AddNodeUnknownFunction(t *testing.T) {
	g, _ := newTestGraph(t)
	_, err := g.AddNode("missing", types.Passive)
	if !errors.Is(err, types.ErrUnknownFunction) {
		t.Fatalf("AddNode() error = %v, want ErrUnknownFunction", err)
	}
}

func TestGraph_AddEdgeTypeMismatch(t *testing.T) {
	g, reg := newTestGraph(t)
	reg.MustRegister(&function.Descriptor{
		Name:    "text",
		Outputs: []function.Slot{{Name: "out", Type: "string"}},
		Handle:  function.NativeFunc(func(in []function.Value) ([]function.Value, error) { return nil, nil }),
	})

	src, _ := g.AddNode("text", types.Passive)
	dst, _ := g.AddNode("sum", types.Passive)

	_, err := g.AddEdge(src, 0, dst, 0, types.Always)
	if !errors.Is(err, types.ErrTypeMismatch) {
		t.Fatalf("AddEdge() error = %v, want ErrTypeMismatch", err)
	}
}

func TestGraph_AddEdgeInputAlreadyBound(t *testing.T) {
	g, _ := newTestGraph(t)
	a, _ := g.AddNode("val", types.Passive)
	b, _ := g.AddNode("val", types.Passive)
	sum, _ := g.AddNode("sum", types.Passive)

	if _, err := g.AddEdge(a, 0, sum, 0, types.Always); err != nil {
		t.Fatalf("first AddEdge() error = %v", err)
	}
	_, err := g.AddEdge(b, 0, sum, 0, types.Always)
	if !errors.Is(err, types.ErrInputAlreadyBound) {
		t.Fatalf("AddEdge() error = %v, want ErrInputAlreadyBound", err)
	}
}

func TestGraph_AddEdgeWouldCreateCycle(t *testing.T) {
	g, _ := newTestGraph(t)
	a, _ := g.AddNode("val", types.Passive)
	sum, _ := g.AddNode("sum", types.Passive)

	if _, err := g.AddEdge(a, 0, sum, 0, types.Always); err != nil {
		t.Fatalf("AddEdge() error = %v", err)
	}
	// sum.out -> a.* would close a cycle: a feeds sum, sum would feed a.
	reg := g.Registry()
	reg.MustRegister(&function.Descriptor{
		Name:    "identity",
		Inputs:  []function.Slot{{Name: "in", Type: "f64"}},
		Outputs: []function.Slot{{Name: "out", Type: "f64"}},
		Handle:  function.NativeFunc(func(in []function.Value) ([]function.Value, error) { return in, nil }),
	})
	// a is "val" (zero inputs); redefine scenario using identity as a sink
	// that would feed back into a is impossible since a has no inputs, so
	// instead prove the cycle check on the chain a -> sum -> id, where an
	// edge id -> sum would close the cycle sum -> id -> sum.
	idNode, _ := g.AddNode("identity", types.Passive)
	if _, err := g.AddEdge(sum, 0, idNode, 0, types.Always); err != nil {
		t.Fatalf("AddEdge() error = %v", err)
	}

	before := len(g.Edges())
	_, err := g.AddEdge(idNode, 0, sum, 1, types.Always)
	if !errors.Is(err, types.ErrWouldCreateCycle) {
		t.Fatalf("AddEdge() error = %v, want ErrWouldCreateCycle", err)
	}
	if len(g.Edges()) != before {
		t.Fatalf("AddEdge() mutated the graph despite returning an error")
	}
}

func TestGraph_RemoveNodeRemovesIncidentEdges(t *testing.T) {
	g, _ := newTestGraph(t)
	a, _ := g.AddNode("val", types.Passive)
	b, _ := g.AddNode("val", types.Passive)
	sum, _ := g.AddNode("sum", types.Passive)

	if _, err := g.AddEdge(a, 0, sum, 0, types.Always); err != nil {
		t.Fatalf("AddEdge() error = %v", err)
	}
	if _, err := g.AddEdge(b, 0, sum, 1, types.Always); err != nil {
		t.Fatalf("AddEdge() error = %v", err)
	}

	if err := g.RemoveNode(a); err != nil {
		t.Fatalf("RemoveNode() error = %v", err)
	}

	if _, ok := g.Node(a); ok {
		t.Fatalf("Node(a) still present after RemoveNode")
	}
	if got := g.InEdges(sum); len(got) != 1 {
		t.Fatalf("InEdges(sum) = %d edges, want 1 after removing a", len(got))
	}

	// Index stability: b and sum keep their original indices.
	if _, ok := g.Node(b); !ok {
		t.Fatalf("Node(b) missing after unrelated RemoveNode")
	}
	if _, ok := g.Node(sum); !ok {
		t.Fatalf("Node(sum) missing after unrelated RemoveNode")
	}
}

func TestGraph_AddNodeAtPadsGaps(t *testing.T) {
	g, _ := newTestGraph(t)

	if err := g.AddNodeAt(2, "val", types.Passive); err != nil {
		t.Fatalf("AddNodeAt() error = %v", err)
	}

	if _, ok := g.Node(0); ok {
		t.Fatalf("Node(0) present, want padded placeholder to stay absent")
	}
	if _, ok := g.Node(1); ok {
		t.Fatalf("Node(1) present, want padded placeholder to stay absent")
	}
	n, ok := g.Node(2)
	if !ok || n.Function != "val" {
		t.Fatalf("Node(2) = %+v, %v, want val node", n, ok)
	}
}

func TestGraph_AddNodeAtFillsPaddedGap(t *testing.T) {
	g, _ := newTestGraph(t)

	if err := g.AddNodeAt(1, "val", types.Passive); err != nil {
		t.Fatalf("AddNodeAt(1) error = %v", err)
	}
	if err := g.AddNodeAt(0, "sum", types.Passive); err != nil {
		t.Fatalf("AddNodeAt(0) error = %v", err)
	}

	n0, ok := g.Node(0)
	if !ok || n0.Function != "sum" {
		t.Fatalf("Node(0) = %+v, %v, want sum node", n0, ok)
	}
}

func TestGraph_AddNodeAtAlreadyBound(t *testing.T) {
	g, _ := newTestGraph(t)
	a, _ := g.AddNode("val", types.Passive)

	err := g.AddNodeAt(a, "val", types.Passive)
	if !errors.Is(err, ErrIndexAlreadyBound) {
		t.Fatalf("AddNodeAt() error = %v, want ErrIndexAlreadyBound", err)
	}
}

func TestGraph_AddNodeAtUnknownFunction(t *testing.T) {
	g, _ := newTestGraph(t)

	err := g.AddNodeAt(0, "missing", types.Passive)
	if !errors.Is(err, types.ErrUnknownFunction) {
		t.Fatalf("AddNodeAt() error = %v, want types.ErrUnknownFunction", err)
	}
}

func TestGraph_NewWithConfigEnforcesMaxNodes(t *testing.T) {
	reg := function.NewRegistry()
	reg.MustRegister(numberFn("val"))
	g := NewWithConfig(reg, &config.Config{MaxNodes: 2})

	if _, err := g.AddNode("val", types.Passive); err != nil {
		t.Fatalf("AddNode() #1 error = %v", err)
	}
	if _, err := g.AddNode("val", types.Passive); err != nil {
		t.Fatalf("AddNode() #2 error = %v", err)
	}
	if _, err := g.AddNode("val", types.Passive); !errors.Is(err, ErrMaxNodesExceeded) {
		t.Fatalf("AddNode() #3 error = %v, want ErrMaxNodesExceeded", err)
	}
}

func TestGraph_NewWithConfigEnforcesMaxEdges(t *testing.T) {
	reg := function.NewRegistry()
	reg.MustRegister(numberFn("val"))
	reg.MustRegister(binaryFn("sum"))
	g := NewWithConfig(reg, &config.Config{MaxEdges: 1})

	a, _ := g.AddNode("val", types.Passive)
	b, _ := g.AddNode("val", types.Passive)
	sum, _ := g.AddNode("sum", types.Passive)

	if _, err := g.AddEdge(a, 0, sum, 0, types.Always); err != nil {
		t.Fatalf("AddEdge() #1 error = %v", err)
	}
	if _, err := g.AddEdge(b, 0, sum, 1, types.Always); !errors.Is(err, ErrMaxEdgesExceeded) {
		t.Fatalf("AddEdge() #2 error = %v, want ErrMaxEdgesExceeded", err)
	}
}

func TestGraph_NewWithConfigNilLimitsUnlimited(t *testing.T) {
	reg := function.NewRegistry()
	reg.MustRegister(numberFn("val"))
	g := NewWithConfig(reg, nil)

	for i := 0; i < 5; i++ {
		if _, err := g.AddNode("val", types.Passive); err != nil {
			t.Fatalf("AddNode() #%d error = %v", i, err)
		}
	}
}

func TestGraph_Sinks(t *testing.T) {
	g, _ := newTestGraph(t)
	a, _ := g.AddNode("val", types.Passive)
	b, _ := g.AddNode("val", types.Passive)
	sum, _ := g.AddNode("sum", types.Passive)

	if _, err := g.AddEdge(a, 0, sum, 0, types.Always); err != nil {
		t.Fatalf("AddEdge() error = %v", err)
	}
	if _, err := g.AddEdge(b, 0, sum, 1, types.Always); err != nil {
		t.Fatalf("AddEdge() error = %v", err)
	}

	sinks := g.Sinks()
	if len(sinks) != 1 || sinks[0] != sum {
		t.Fatalf("Sinks() = %v, want [%d]", sinks, sum)
	}
}
