package document

import (
	"errors"
	"testing"

	"github.com/flowgraph/engine/pkg/function"
	"github.com/flowgraph/engine/pkg/graph"
	"github.com/flowgraph/engine/pkg/types"
)

func testRegistry() *function.Registry {
	reg := function.NewRegistry()
	reg.MustRegister(&function.Descriptor{
		Name:    "val",
		Outputs: []function.Slot{{Name: "out", Type: "f64"}},
		Handle:  function.NativeFunc(func(in []function.Value) ([]function.Value, error) { return nil, nil }),
	})
	reg.MustRegister(&function.Descriptor{
		Name:    "sum",
		Inputs:  []function.Slot{{Name: "a", Type: "f64"}, {Name: "b", Type: "f64"}},
		Outputs: []function.Slot{{Name: "out", Type: "f64"}},
		Handle:  function.NativeFunc(func(in []function.Value) ([]function.Value, error) { return nil, nil }),
	})
	return reg
}

func TestParse_RoundTrip(t *testing.T) {
	reg := testRegistry()
	g := graph.New(reg)
	a, _ := g.AddNode("val", types.Active)
	b, _ := g.AddNode("val", types.Passive)
	sum, _ := g.AddNode("sum", types.Passive)
	if _, err := g.AddEdge(a, 0, sum, 0, types.Once); err != nil {
		t.Fatalf("AddEdge() error = %v", err)
	}
	if _, err := g.AddEdge(b, 0, sum, 1, types.Always); err != nil {
		t.Fatalf("AddEdge() error = %v", err)
	}

	data, err := Serialize(g)
	if err != nil {
		t.Fatalf("Serialize() error = %v", err)
	}

	g2, err := Parse(data, reg)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if len(g2.Nodes()) != 3 {
		t.Fatalf("Parse() nodes = %d, want 3", len(g2.Nodes()))
	}
	if len(g2.Edges()) != 2 {
		t.Fatalf("Parse() edges = %d, want 2", len(g2.Edges()))
	}

	n0, _ := g2.Node(0)
	if n0.Function != "val" || n0.Behavior != types.Active {
		t.Fatalf("Parse() node 0 = %+v, want val/Active", n0)
	}

	var onceEdges int
	for _, e := range g2.Edges() {
		if e.Behavior == types.Once {
			onceEdges++
		}
	}
	if onceEdges != 1 {
		t.Fatalf("Parse() Once edges = %d, want 1", onceEdges)
	}
}

func TestParse_RoundTripPreservesIndexGaps(t *testing.T) {
	reg := testRegistry()
	g := graph.New(reg)
	a, _ := g.AddNode("val", types.Passive)
	b, _ := g.AddNode("val", types.Passive)
	sum, _ := g.AddNode("sum", types.Passive)
	if _, err := g.AddEdge(a, 0, sum, 0, types.Always); err != nil {
		t.Fatalf("AddEdge() error = %v", err)
	}
	if err := g.RemoveNode(b); err != nil {
		t.Fatalf("RemoveNode() error = %v", err)
	}

	data, err := Serialize(g)
	if err != nil {
		t.Fatalf("Serialize() error = %v", err)
	}

	g2, err := Parse(data, reg)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if _, ok := g2.Node(a); !ok {
		t.Fatalf("Parse() lost node a at its original index")
	}
	if _, ok := g2.Node(sum); !ok {
		t.Fatalf("Parse() lost node sum at its original index")
	}
	if _, ok := g2.Node(b); ok {
		t.Fatalf("Parse() resurrected removed node b")
	}

	data2, err := Serialize(g2)
	if err != nil {
		t.Fatalf("second Serialize() error = %v", err)
	}
	if string(data2) != string(data) {
		t.Fatalf("round trip not byte-identical:\nfirst:  %s\nsecond: %s", data, data2)
	}
}

func TestParse_UnknownField(t *testing.T) {
	reg := testRegistry()
	data := []byte(`{"nodes":[{"index":0,"function_name":"val","behavior":"Passive","extra":true}],"edges":[]}`)

	_, err := Parse(data, reg)
	if !errors.Is(err, types.ErrUnknownField) {
		t.Fatalf("Parse() error = %v, want ErrUnknownField", err)
	}
}

func TestParse_MissingFunctionName(t *testing.T) {
	reg := testRegistry()
	data := []byte(`{"nodes":[{"index":0,"function_name":"","behavior":"Passive"}],"edges":[]}`)

	_, err := Parse(data, reg)
	if !errors.Is(err, ErrMissingField) {
		t.Fatalf("Parse() error = %v, want ErrMissingField", err)
	}
}

func TestParse_DanglingEdge(t *testing.T) {
	reg := testRegistry()
	data := []byte(`{"nodes":[{"index":0,"function_name":"val","behavior":"Passive"}],
		"edges":[{"index":0,"src_node":0,"src_output":0,"dst_node":7,"dst_input":0,"behavior":"Always"}]}`)

	_, err := Parse(data, reg)
	if !errors.Is(err, ErrDanglingEdge) {
		t.Fatalf("Parse() error = %v, want ErrDanglingEdge", err)
	}
}

func TestParse_UnknownFunction(t *testing.T) {
	reg := testRegistry()
	data := []byte(`{"nodes":[{"index":0,"function_name":"missing","behavior":"Passive"}],"edges":[]}`)

	_, err := Parse(data, reg)
	if !errors.Is(err, types.ErrUnknownFunction) {
		t.Fatalf("Parse() error = %v, want ErrUnknownFunction", err)
	}
}
