// Package document provides the serializer (component D): a bidirectional
// mapping between a *graph.Graph and a textual JSON document, plus a small
// persistence layer for keeping named documents around.
//
// # Document shape
//
// A Document is:
//
//	{
//	  "nodes": [{"index": 0, "function_name": "val", "behavior": "Passive"}],
//	  "edges": [{"index": 0, "src_node": 0, "src_output": 0,
//	             "dst_node": 1, "dst_input": 0, "behavior": "Always"}]
//	}
//
// Parse rebuilds a graph from a Document against a function.Registry,
// resolving each node's function_name through the registry (an unknown
// name surfaces as types.ErrUnknownFunction, same as a direct
// graph.Graph.AddNode call) and rejecting fields the schema doesn't
// recognize with types.ErrUnknownField. Build binds each node at its
// persisted NodeDoc.Index via graph.Graph.AddNodeAt, padding any gap left
// by an earlier tombstoned removal, so Parse(Serialize(g)) reproduces the
// same node indices (and, serialized again, the same bytes) as the
// original graph.
//
// Serialize is the inverse: it walks a graph's live nodes and edges (in
// index order) into a Document, which json.MarshalIndent renders with a
// stable two-space indent for a reproducible byte representation.
//
// Store and InMemoryStore, grounded on the teacher's pkg/storage, let a host
// keep several named graph documents in memory — the natural persistence
// layer the engine implies without reaching outside the module for file or
// network I/O.
package document
