// Package plan provides the execution planner (component E): given a Graph
// and a set of requested output nodes, it produces the ordered set of nodes
// an engine.Run call should consider.
//
// # Overview
//
// Plan first computes the backward cone — every node reachable from the
// requested set by walking edges in reverse — then orders that cone so that
// for every edge u -> v with both endpoints in the cone, u precedes v. Ties
// (nodes with no ordering constraint between them) are broken by ascending
// node index, making the plan reproducible across runs with unchanged
// structure (spec invariant: determinism).
//
// Nodes outside the backward cone are invisible to the run: Plan never
// returns them, and an engine consulting only the plan never touches their
// cache entries.
//
// The ordering algorithm is Kahn's algorithm restricted to the cone's
// induced subgraph, the same ring-buffer-queue, insertion-sort-tie-break
// shape as a whole-graph topological sort, just scoped to the cone instead
// of every node.
package plan
