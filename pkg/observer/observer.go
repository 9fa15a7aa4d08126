// Package observer provides an event bus for watching an engine.Run call
// without the engine depending on any particular watcher.
package observer

import (
	"context"
	"time"

	"github.com/flowgraph/engine/pkg/types"
)

// EventType identifies the kind of event emitted during a run.
type EventType string

const (
	// EventNodeConsidered fires once per node in the plan order, before
	// the must_execute decision is made.
	EventNodeConsidered EventType = "node_considered"
	// EventNodeExecuted fires when a node's function was invoked.
	EventNodeExecuted EventType = "node_executed"
	// EventNodeSkipped fires when a node's cached outputs were reused.
	EventNodeSkipped EventType = "node_skipped"
	// EventRunCompleted fires once after the run finishes, success or
	// failure.
	EventRunCompleted EventType = "run_completed"
)

// Event carries the metadata for a single observed occurrence.
type Event struct {
	Type      EventType `json:"type"`
	Timestamp time.Time `json:"timestamp"`

	RunOrdinal int `json:"run_ordinal"`

	Node types.NodeIndex `json:"node,omitempty"`

	Elapsed time.Duration `json:"elapsed,omitempty"`

	Err error `json:"error,omitempty"`

	Metadata map[string]interface{} `json:"metadata,omitempty"`
}

// Observer receives notifications about run events.
type Observer interface {
	OnEvent(ctx context.Context, event Event)
}

// Logger is the minimal logging interface a built-in Observer needs; it is
// satisfied by *logging.Logger via a thin adapter, or any caller's own
// logging facade.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}
