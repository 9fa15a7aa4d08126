package graph

import (
	"fmt"

	"github.com/flowgraph/engine/pkg/config"
	"github.com/flowgraph/engine/pkg/function"
	"github.com/flowgraph/engine/pkg/types"
)

// Node is a graph vertex: a stable index, a reference to a function by
// name, and a behavior controlling cache reuse.
type Node struct {
	Index    types.NodeIndex
	Function string
	Behavior types.NodeBehavior
	removed  bool
}

// Edge is a directed connection from an output endpoint (SrcNode,
// SrcOutput) to an input endpoint (DstNode, DstInput).
type Edge struct {
	Index     types.EdgeIndex
	SrcNode   types.NodeIndex
	SrcOutput int
	DstNode   types.NodeIndex
	DstInput  int
	Behavior  types.EdgeBehavior
	removed   bool
}

// Graph owns its nodes and edges and validates every mutation against the
// function registry it was constructed with.
type Graph struct {
	registry *function.Registry
	limits   *config.Config
	nodes    []Node
	edges    []Edge
	// inputBinding[dstNode][dstInput] = edge index, enforcing the
	// unique-binding invariant in O(1).
	inputBinding map[types.NodeIndex]map[int]types.EdgeIndex
}

// New creates an empty Graph whose nodes are bound to functions from reg,
// with no limit on how many nodes or edges it may hold. Equivalent to
// NewWithConfig(reg, nil).
func New(reg *function.Registry) *Graph {
	return NewWithConfig(reg, nil)
}

// NewWithConfig creates an empty Graph bound to functions from reg, with
// limits.MaxNodes / limits.MaxEdges enforced by every subsequent AddNode,
// AddNodeAt, and AddEdge call. A nil limits means unlimited, the same as
// New; a non-nil limits with a zero field means unlimited for that field
// specifically.
func NewWithConfig(reg *function.Registry, limits *config.Config) *Graph {
	return &Graph{
		registry:     reg,
		limits:       limits,
		inputBinding: make(map[types.NodeIndex]map[int]types.EdgeIndex),
	}
}

func (g *Graph) liveNodeCount() int {
	n := 0
	for _, node := range g.nodes {
		if !node.removed {
			n++
		}
	}
	return n
}

func (g *Graph) liveEdgeCount() int {
	n := 0
	for _, edge := range g.edges {
		if !edge.removed {
			n++
		}
	}
	return n
}

func (g *Graph) checkMaxNodes() error {
	if g.limits != nil && g.limits.MaxNodes > 0 && g.liveNodeCount() >= g.limits.MaxNodes {
		return fmt.Errorf("%w: limit %d", ErrMaxNodesExceeded, g.limits.MaxNodes)
	}
	return nil
}

func (g *Graph) checkMaxEdges() error {
	if g.limits != nil && g.limits.MaxEdges > 0 && g.liveEdgeCount() >= g.limits.MaxEdges {
		return fmt.Errorf("%w: limit %d", ErrMaxEdgesExceeded, g.limits.MaxEdges)
	}
	return nil
}

// Registry returns the function registry this graph validates against.
func (g *Graph) Registry() *function.Registry {
	return g.registry
}

// AddNode binds a new node to functionName and returns its index. It fails
// with types.ErrUnknownFunction if functionName is not registered, or
// ErrMaxNodesExceeded if the graph is already at its configured node limit.
func (g *Graph) AddNode(functionName string, behavior types.NodeBehavior) (types.NodeIndex, error) {
	if _, err := g.registry.Lookup(functionName); err != nil {
		return 0, err
	}
	if err := g.checkMaxNodes(); err != nil {
		return 0, err
	}

	idx := types.NodeIndex(len(g.nodes))
	g.nodes = append(g.nodes, Node{Index: idx, Function: functionName, Behavior: behavior})
	return idx, nil
}

// AddNodeAt binds a node to functionName at a specific, caller-chosen
// index, padding any gap between the graph's current length and idx with
// tombstoned placeholder nodes. It exists for document reconstruction,
// where a persisted node's index may have gaps left by earlier removals
// that must survive a parse/serialize round trip rather than being
// compacted away. It fails with types.ErrUnknownFunction if functionName
// is not registered, or ErrIndexAlreadyBound if idx already names a live
// node.
func (g *Graph) AddNodeAt(idx types.NodeIndex, functionName string, behavior types.NodeBehavior) error {
	if _, err := g.registry.Lookup(functionName); err != nil {
		return err
	}
	if idx < 0 {
		return fmt.Errorf("%w: %d", ErrNodeNotFound, idx)
	}
	if err := g.checkMaxNodes(); err != nil {
		return err
	}

	for types.NodeIndex(len(g.nodes)) <= idx {
		next := types.NodeIndex(len(g.nodes))
		g.nodes = append(g.nodes, Node{Index: next, removed: true})
	}

	if !g.nodes[idx].removed {
		return fmt.Errorf("%w: %d", ErrIndexAlreadyBound, idx)
	}

	g.nodes[idx] = Node{Index: idx, Function: functionName, Behavior: behavior}
	return nil
}

// RemoveNode tombstones a node and every edge incident to it. The node's
// index is never reused.
func (g *Graph) RemoveNode(idx types.NodeIndex) error {
	n, err := g.mustNode(idx)
	if err != nil {
		return err
	}
	n.removed = true

	for i := range g.edges {
		e := &g.edges[i]
		if e.removed {
			continue
		}
		if e.SrcNode == idx || e.DstNode == idx {
			g.untrackBinding(e)
			e.removed = true
		}
	}
	return nil
}

// AddEdge connects an output endpoint to an input endpoint and returns the
// new edge's index. It fails with types.ErrTypeMismatch if the endpoint
// types disagree, types.ErrInputAlreadyBound if the destination input
// already has an incoming edge, types.ErrWouldCreateCycle if committing the
// edge would create a cycle, or ErrMaxEdgesExceeded if the graph is already
// at its configured edge limit. On any failure the graph is left unchanged.
func (g *Graph) AddEdge(srcNode types.NodeIndex, srcOutput int, dstNode types.NodeIndex, dstInput int, behavior types.EdgeBehavior) (types.EdgeIndex, error) {
	src, err := g.mustNode(srcNode)
	if err != nil {
		return 0, err
	}
	dst, err := g.mustNode(dstNode)
	if err != nil {
		return 0, err
	}

	srcFn, err := g.registry.Lookup(src.Function)
	if err != nil {
		return 0, err
	}
	dstFn, err := g.registry.Lookup(dst.Function)
	if err != nil {
		return 0, err
	}

	if srcOutput < 0 || srcOutput >= len(srcFn.Outputs) {
		return 0, fmt.Errorf("%w: node %d output %d", ErrInvalidSlot, srcNode, srcOutput)
	}
	if dstInput < 0 || dstInput >= len(dstFn.Inputs) {
		return 0, fmt.Errorf("%w: node %d input %d", ErrInvalidSlot, dstNode, dstInput)
	}

	srcType := srcFn.Outputs[srcOutput].Type
	dstType := dstFn.Inputs[dstInput].Type
	if srcType != dstType {
		return 0, fmt.Errorf("%w: %s.%d (%s) -> %s.%d (%s)",
			types.ErrTypeMismatch, src.Function, srcOutput, srcType, dst.Function, dstInput, dstType)
	}

	if g.boundEdge(dstNode, dstInput) != nil {
		return 0, fmt.Errorf("%w: node %d input %d", types.ErrInputAlreadyBound, dstNode, dstInput)
	}

	if g.reachableFrom(dstNode, srcNode) {
		return 0, fmt.Errorf("%w: edge %d.%d -> %d.%d", types.ErrWouldCreateCycle, srcNode, srcOutput, dstNode, dstInput)
	}

	if err := g.checkMaxEdges(); err != nil {
		return 0, err
	}

	idx := types.EdgeIndex(len(g.edges))
	g.edges = append(g.edges, Edge{Index: idx, SrcNode: srcNode, SrcOutput: srcOutput, DstNode: dstNode, DstInput: dstInput, Behavior: behavior})
	g.trackBinding(&g.edges[len(g.edges)-1])
	return idx, nil
}

// SetNodeBehavior updates a node's NodeBehavior in place.
func (g *Graph) SetNodeBehavior(idx types.NodeIndex, behavior types.NodeBehavior) error {
	n, err := g.mustNode(idx)
	if err != nil {
		return err
	}
	n.Behavior = behavior
	return nil
}

// SetEdgeBehavior updates an edge's EdgeBehavior in place.
func (g *Graph) SetEdgeBehavior(idx types.EdgeIndex, behavior types.EdgeBehavior) error {
	e, err := g.mustEdge(idx)
	if err != nil {
		return err
	}
	e.Behavior = behavior
	return nil
}

// Node returns the node at idx, or false if the index is unknown or has
// been removed.
func (g *Graph) Node(idx types.NodeIndex) (Node, bool) {
	if int(idx) < 0 || int(idx) >= len(g.nodes) || g.nodes[idx].removed {
		return Node{}, false
	}
	return g.nodes[idx], true
}

// Edge returns the edge at idx, or false if the index is unknown or has
// been removed.
func (g *Graph) Edge(idx types.EdgeIndex) (Edge, bool) {
	if int(idx) < 0 || int(idx) >= len(g.edges) || g.edges[idx].removed {
		return Edge{}, false
	}
	return g.edges[idx], true
}

// Nodes returns every live node, ordered by index.
func (g *Graph) Nodes() []Node {
	out := make([]Node, 0, len(g.nodes))
	for _, n := range g.nodes {
		if !n.removed {
			out = append(out, n)
		}
	}
	return out
}

// Edges returns every live edge, ordered by index.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, len(g.edges))
	for _, e := range g.edges {
		if !e.removed {
			out = append(out, e)
		}
	}
	return out
}

// InEdges returns every live edge whose destination is idx.
func (g *Graph) InEdges(idx types.NodeIndex) []Edge {
	var out []Edge
	for _, e := range g.edges {
		if !e.removed && e.DstNode == idx {
			out = append(out, e)
		}
	}
	return out
}

// OutEdges returns every live edge whose source is idx.
func (g *Graph) OutEdges(idx types.NodeIndex) []Edge {
	var out []Edge
	for _, e := range g.edges {
		if !e.removed && e.SrcNode == idx {
			out = append(out, e)
		}
	}
	return out
}

// Sinks returns every live node with no outgoing edges, ascending by index.
func (g *Graph) Sinks() []types.NodeIndex {
	hasOutgoing := make(map[types.NodeIndex]bool, len(g.edges))
	for _, e := range g.edges {
		if !e.removed {
			hasOutgoing[e.SrcNode] = true
		}
	}

	var out []types.NodeIndex
	for _, n := range g.nodes {
		if !n.removed && !hasOutgoing[n.Index] {
			out = append(out, n.Index)
		}
	}
	return out
}

func (g *Graph) mustNode(idx types.NodeIndex) (*Node, error) {
	if int(idx) < 0 || int(idx) >= len(g.nodes) || g.nodes[idx].removed {
		return nil, fmt.Errorf("%w: %d", ErrNodeNotFound, idx)
	}
	return &g.nodes[idx], nil
}

func (g *Graph) mustEdge(idx types.EdgeIndex) (*Edge, error) {
	if int(idx) < 0 || int(idx) >= len(g.edges) || g.edges[idx].removed {
		return nil, fmt.Errorf("%w: %d", ErrEdgeNotFound, idx)
	}
	return &g.edges[idx], nil
}

func (g *Graph) boundEdge(dstNode types.NodeIndex, dstInput int) *Edge {
	inputs, ok := g.inputBinding[dstNode]
	if !ok {
		return nil
	}
	edgeIdx, bound := inputs[dstInput]
	if !bound {
		return nil
	}
	e, ok := g.Edge(edgeIdx)
	if !ok {
		return nil
	}
	return &e
}

func (g *Graph) trackBinding(e *Edge) {
	inputs, ok := g.inputBinding[e.DstNode]
	if !ok {
		inputs = make(map[int]types.EdgeIndex)
		g.inputBinding[e.DstNode] = inputs
	}
	inputs[e.DstInput] = e.Index
}

func (g *Graph) untrackBinding(e *Edge) {
	if inputs, ok := g.inputBinding[e.DstNode]; ok {
		delete(inputs, e.DstInput)
	}
}

// reachableFrom reports whether target is reachable from start by following
// outgoing edges — the forward walk used to reject edges that would close a
// cycle.
func (g *Graph) reachableFrom(start, target types.NodeIndex) bool {
	if start == target {
		return true
	}

	visited := make(map[types.NodeIndex]bool)
	stack := []types.NodeIndex{start}
	for len(stack) > 0 {
		n := len(stack) - 1
		cur := stack[n]
		stack = stack[:n]

		if visited[cur] {
			continue
		}
		visited[cur] = true

		if cur == target {
			return true
		}

		for _, e := range g.OutEdges(cur) {
			if !visited[e.DstNode] {
				stack = append(stack, e.DstNode)
			}
		}
	}
	return false
}
