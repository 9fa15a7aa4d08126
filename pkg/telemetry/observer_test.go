package telemetry

import (
	"context"
	"testing"
	"time"

	"github.com/flowgraph/engine/pkg/observer"
	"github.com/flowgraph/engine/pkg/types"
)

func TestTelemetryObserver_FullRun(t *testing.T) {
	ctx := context.Background()
	provider, err := NewProvider(ctx, DefaultConfig())
	if err != nil {
		t.Fatalf("NewProvider() error = %v", err)
	}
	defer provider.Shutdown(ctx)

	obs := NewTelemetryObserver(provider)

	node := types.NodeIndex(0)
	obs.OnEvent(ctx, observer.Event{Type: observer.EventNodeConsidered, Timestamp: time.Now(), RunOrdinal: 1, Node: node})
	obs.OnEvent(ctx, observer.Event{Type: observer.EventNodeExecuted, Timestamp: time.Now(), RunOrdinal: 1, Node: node})
	obs.OnEvent(ctx, observer.Event{Type: observer.EventRunCompleted, Timestamp: time.Now(), RunOrdinal: 1, Elapsed: time.Millisecond})

	if obs.runSpan != nil {
		t.Fatalf("expected run span to be cleared after EventRunCompleted")
	}
	if len(obs.nodeSpans) != 0 {
		t.Fatalf("expected all node spans to be closed, got %d remaining", len(obs.nodeSpans))
	}
}

func TestTelemetryObserver_SkippedNodeClosesSpan(t *testing.T) {
	ctx := context.Background()
	provider, err := NewProvider(ctx, DefaultConfig())
	if err != nil {
		t.Fatalf("NewProvider() error = %v", err)
	}
	defer provider.Shutdown(ctx)

	obs := NewTelemetryObserver(provider)

	node := types.NodeIndex(1)
	obs.OnEvent(ctx, observer.Event{Type: observer.EventNodeConsidered, Timestamp: time.Now(), RunOrdinal: 1, Node: node})
	obs.OnEvent(ctx, observer.Event{Type: observer.EventNodeSkipped, Timestamp: time.Now(), RunOrdinal: 1, Node: node})

	if _, stillOpen := obs.nodeSpans[node]; stillOpen {
		t.Fatalf("expected skipped node's span to be closed")
	}
}

func TestTelemetryObserver_RunCompletedWithError(t *testing.T) {
	ctx := context.Background()
	provider, err := NewProvider(ctx, DefaultConfig())
	if err != nil {
		t.Fatalf("NewProvider() error = %v", err)
	}
	defer provider.Shutdown(ctx)

	obs := NewTelemetryObserver(provider)

	node := types.NodeIndex(0)
	obs.OnEvent(ctx, observer.Event{Type: observer.EventNodeConsidered, Timestamp: time.Now(), RunOrdinal: 1, Node: node})
	obs.OnEvent(ctx, observer.Event{Type: observer.EventRunCompleted, Timestamp: time.Now(), RunOrdinal: 1, Err: errBoom})

	if obs.runSpan != nil {
		t.Fatalf("expected run span to be cleared after EventRunCompleted")
	}
}

var errBoom = &boomErr{}

type boomErr struct{}

func (e *boomErr) Error() string { return "boom" }
