package document

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/flowgraph/engine/pkg/function"
	"github.com/flowgraph/engine/pkg/graph"
	"github.com/flowgraph/engine/pkg/types"
)

// NodeDoc is the wire representation of a graph.Node.
type NodeDoc struct {
	Index        int    `json:"index"`
	FunctionName string `json:"function_name"`
	Behavior     string `json:"behavior"`
}

// EdgeDoc is the wire representation of a graph.Edge.
type EdgeDoc struct {
	Index     int    `json:"index"`
	SrcNode   int    `json:"src_node"`
	SrcOutput int    `json:"src_output"`
	DstNode   int    `json:"dst_node"`
	DstInput  int    `json:"dst_input"`
	Behavior  string `json:"behavior"`
}

// Document is the persisted form of a graph.Graph.
type Document struct {
	Nodes []NodeDoc `json:"nodes"`
	Edges []EdgeDoc `json:"edges"`
}

// Parse decodes data into a Document, then rebuilds a graph.Graph against
// reg. Unknown JSON fields are rejected with types.ErrUnknownField; a node
// with an empty function_name or an edge referencing a node index absent
// from the document fails with ErrMissingField / ErrDanglingEdge. A node
// whose function_name is not registered in reg fails with
// types.ErrUnknownFunction, the same error AddNode would return directly.
func Parse(data []byte, reg *function.Registry) (*graph.Graph, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		if isUnknownFieldError(err) {
			return nil, fmt.Errorf("%w: %v", types.ErrUnknownField, err)
		}
		return nil, fmt.Errorf("%w: %v", types.ErrMalformedDocument, err)
	}

	return Build(&doc, reg)
}

// Build reconstructs a graph.Graph from an already-decoded Document. Each
// node is bound at its persisted NodeDoc.Index rather than the next
// sequential index, so a document with gaps left by earlier tombstoned
// removals (ToDocument never compacts) survives a Parse/Serialize round
// trip byte-identical.
func Build(doc *Document, reg *function.Registry) (*graph.Graph, error) {
	g := graph.New(reg)

	known := make(map[int]bool, len(doc.Nodes))
	for _, nd := range doc.Nodes {
		if nd.FunctionName == "" {
			return nil, fmt.Errorf("%w: node %d function_name", ErrMissingField, nd.Index)
		}
		behavior, err := types.ParseNodeBehavior(nd.Behavior)
		if err != nil {
			return nil, err
		}
		if err := g.AddNodeAt(types.NodeIndex(nd.Index), nd.FunctionName, behavior); err != nil {
			return nil, err
		}
		known[nd.Index] = true
	}

	for _, ed := range doc.Edges {
		if !known[ed.SrcNode] {
			return nil, fmt.Errorf("%w: edge %d src_node %d", ErrDanglingEdge, ed.Index, ed.SrcNode)
		}
		if !known[ed.DstNode] {
			return nil, fmt.Errorf("%w: edge %d dst_node %d", ErrDanglingEdge, ed.Index, ed.DstNode)
		}
		behavior, err := types.ParseEdgeBehavior(ed.Behavior)
		if err != nil {
			return nil, err
		}
		srcIdx := types.NodeIndex(ed.SrcNode)
		dstIdx := types.NodeIndex(ed.DstNode)
		if _, err := g.AddEdge(srcIdx, ed.SrcOutput, dstIdx, ed.DstInput, behavior); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// Serialize walks g's live nodes and edges, in index order, into a Document
// and renders it with a stable two-space indent.
func Serialize(g *graph.Graph) ([]byte, error) {
	doc := ToDocument(g)
	return json.MarshalIndent(doc, "", "  ")
}

// ToDocument converts a graph.Graph's live nodes and edges into a Document.
func ToDocument(g *graph.Graph) *Document {
	nodes := g.Nodes()
	edges := g.Edges()

	doc := &Document{
		Nodes: make([]NodeDoc, 0, len(nodes)),
		Edges: make([]EdgeDoc, 0, len(edges)),
	}
	for _, n := range nodes {
		doc.Nodes = append(doc.Nodes, NodeDoc{
			Index:        int(n.Index),
			FunctionName: n.Function,
			Behavior:     n.Behavior.String(),
		})
	}
	for _, e := range edges {
		doc.Edges = append(doc.Edges, EdgeDoc{
			Index:     int(e.Index),
			SrcNode:   int(e.SrcNode),
			SrcOutput: e.SrcOutput,
			DstNode:   int(e.DstNode),
			DstInput:  e.DstInput,
			Behavior:  e.Behavior.String(),
		})
	}
	return doc
}

// isUnknownFieldError reports whether err was produced by a
// json.Decoder in DisallowUnknownFields mode rejecting an unrecognized key.
func isUnknownFieldError(err error) bool {
	return err != nil && bytes.Contains([]byte(err.Error()), []byte("unknown field"))
}
