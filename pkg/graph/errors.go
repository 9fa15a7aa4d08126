package graph

import "errors"

// Sentinel errors for graph operations not already covered by the shared
// kinds in pkg/types (DuplicateName, UnknownType, UnknownFunction,
// TypeMismatch, InputAlreadyBound, WouldCreateCycle).
var (
	ErrNodeNotFound      = errors.New("graph: node not found")
	ErrEdgeNotFound      = errors.New("graph: edge not found")
	ErrInvalidSlot       = errors.New("graph: slot index out of range")
	ErrIndexAlreadyBound = errors.New("graph: index already names a live node")
	ErrMaxNodesExceeded  = errors.New("graph: node limit exceeded")
	ErrMaxEdgesExceeded  = errors.New("graph: edge limit exceeded")
)
