package plan

import "errors"

// ErrUnknownRequestedNode is returned when a requested node index does not
// exist in the graph.
var ErrUnknownRequestedNode = errors.New("plan: requested node not found in graph")

// ErrPlanTooLarge is returned by PlanWithLimit when the backward cone of the
// requested nodes exceeds the caller's maxPlanSize.
var ErrPlanTooLarge = errors.New("plan: plan size exceeds configured limit")
