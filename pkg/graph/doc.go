// Package graph provides the graph (component C): the static structure of
// nodes bound to functions, edges connecting their endpoints, and the
// per-node/per-edge behavior annotations that drive incremental execution.
//
// # Overview
//
// All graph-mutating operations are pure-structural — no execution happens
// here — and all-or-nothing: a failing AddEdge or AddNode leaves the graph
// exactly as it was before the call (spec invariant: structural errors
// abort the triggering operation).
//
// Node and edge removal tombstones rather than compacts, so that indices
// handed out by AddNode/AddEdge remain valid for the graph's lifetime, even
// across removals. Removing a node also removes every edge incident to it.
//
// Acyclicity is enforced on every AddEdge by a forward walk from the
// candidate edge's destination node: if that walk can reach the candidate
// source node, committing the edge would create a cycle, so it is rejected
// before being committed. No cycle is ever observable from outside this
// package.
package graph
