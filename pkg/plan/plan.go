package plan

import (
	"fmt"

	"github.com/flowgraph/engine/pkg/graph"
	"github.com/flowgraph/engine/pkg/types"
)

// Plan computes the ordered set of nodes to consider for a run. If
// requested is empty, every sink node (no outgoing edges) is requested.
//
// The returned order satisfies: for every edge u -> v where both u and v
// are in the plan, u appears strictly before v. Ties are broken by
// ascending node index.
func Plan(g *graph.Graph, requested []types.NodeIndex) ([]types.NodeIndex, error) {
	return PlanWithLimit(g, requested, 0)
}

// PlanWithLimit is Plan with an additional cap on the backward cone size. A
// maxPlanSize of 0 means unlimited, matching Plan's behavior. A cone larger
// than maxPlanSize fails with ErrPlanTooLarge before any ordering work runs.
func PlanWithLimit(g *graph.Graph, requested []types.NodeIndex, maxPlanSize int) ([]types.NodeIndex, error) {
	if len(requested) == 0 {
		requested = g.Sinks()
	}

	for _, idx := range requested {
		if _, ok := g.Node(idx); !ok {
			return nil, fmt.Errorf("%w: %d", ErrUnknownRequestedNode, idx)
		}
	}

	cone := backwardCone(g, requested)
	if maxPlanSize > 0 && len(cone) > maxPlanSize {
		return nil, fmt.Errorf("%w: %d nodes exceeds limit %d", ErrPlanTooLarge, len(cone), maxPlanSize)
	}
	return topoOrderWithin(g, cone), nil
}

// backwardCone returns the set of nodes reachable from requested by walking
// edges in reverse (following each node's incoming edges to its sources).
func backwardCone(g *graph.Graph, requested []types.NodeIndex) map[types.NodeIndex]bool {
	cone := make(map[types.NodeIndex]bool, len(requested))
	stack := append([]types.NodeIndex(nil), requested...)

	for len(stack) > 0 {
		n := len(stack) - 1
		cur := stack[n]
		stack = stack[:n]

		if cone[cur] {
			continue
		}
		cone[cur] = true

		for _, e := range g.InEdges(cur) {
			if !cone[e.SrcNode] {
				stack = append(stack, e.SrcNode)
			}
		}
	}
	return cone
}

// topoOrderWithin runs Kahn's algorithm over the subgraph induced by cone,
// using a slice-backed queue kept sorted by ascending index so that
// independent nodes are ordered deterministically.
func topoOrderWithin(g *graph.Graph, cone map[types.NodeIndex]bool) []types.NodeIndex {
	numNodes := len(cone)
	if numNodes == 0 {
		return []types.NodeIndex{}
	}

	inDegree := make(map[types.NodeIndex]int, numNodes)
	adjacency := make(map[types.NodeIndex][]types.NodeIndex, numNodes)

	for idx := range cone {
		inDegree[idx] = 0
	}
	for idx := range cone {
		for _, e := range g.OutEdges(idx) {
			if !cone[e.DstNode] {
				continue
			}
			adjacency[idx] = append(adjacency[idx], e.DstNode)
			inDegree[e.DstNode]++
		}
	}

	ready := make([]types.NodeIndex, 0, numNodes)
	for idx, degree := range inDegree {
		if degree == 0 {
			ready = append(ready, idx)
		}
	}
	insertionSort(ready)

	queue := make([]types.NodeIndex, numNodes)
	queueStart, queueEnd := 0, len(ready)
	copy(queue, ready)

	order := make([]types.NodeIndex, 0, numNodes)
	for queueStart < queueEnd {
		cur := queue[queueStart]
		queueStart++
		order = append(order, cur)

		next := adjacency[cur]
		insertionSort(next)
		for _, neighbor := range next {
			inDegree[neighbor]--
			if inDegree[neighbor] == 0 {
				queue[queueEnd] = neighbor
				queueEnd++
			}
		}
		insertionSort(queue[queueStart:queueEnd])
	}

	return order
}

// insertionSort sorts a small slice of node indices in place. Cone sizes in
// this engine's use cases are small (a single graph edit's worth of
// ready/adjacent nodes), where insertion sort beats a general sort.
func insertionSort(arr []types.NodeIndex) {
	for i := 1; i < len(arr); i++ {
		key := arr[i]
		j := i - 1
		for j >= 0 && arr[j] > key {
			arr[j+1] = arr[j]
			j--
		}
		arr[j+1] = key
	}
}
