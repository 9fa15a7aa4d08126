package telemetry

import (
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/flowgraph/engine/pkg/observer"
	"github.com/flowgraph/engine/pkg/types"
)

// TelemetryObserver implements observer.Observer, recording a span per run
// and per considered node (executed or skipped) plus the Provider's
// run/node metrics.
type TelemetryObserver struct {
	provider *Provider

	mu            sync.Mutex
	runSpan       trace.Span
	runStart      time.Time
	nodesExecuted int

	nodeSpans  map[types.NodeIndex]trace.Span
	nodeStarts map[types.NodeIndex]time.Time
}

// NewTelemetryObserver creates a TelemetryObserver backed by provider.
func NewTelemetryObserver(provider *Provider) *TelemetryObserver {
	return &TelemetryObserver{
		provider:   provider,
		nodeSpans:  make(map[types.NodeIndex]trace.Span),
		nodeStarts: make(map[types.NodeIndex]time.Time),
	}
}

// OnEvent implements observer.Observer.
func (o *TelemetryObserver) OnEvent(ctx context.Context, event observer.Event) {
	switch event.Type {
	case observer.EventNodeConsidered:
		o.handleNodeConsidered(ctx, event)
	case observer.EventNodeExecuted:
		o.handleNodeExecuted(ctx, event)
	case observer.EventNodeSkipped:
		o.handleNodeSkipped(ctx, event)
	case observer.EventRunCompleted:
		o.handleRunCompleted(ctx, event)
	}
}

func (o *TelemetryObserver) handleNodeConsidered(ctx context.Context, event observer.Event) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.runSpan == nil {
		_, span := o.provider.Tracer().Start(ctx, "run.execute",
			trace.WithAttributes(attribute.Int("run.ordinal", event.RunOrdinal)))
		o.runSpan = span
		o.runStart = event.Timestamp
	}

	spanCtx := trace.ContextWithSpan(ctx, o.runSpan)
	_, span := o.provider.Tracer().Start(spanCtx, "node.consider",
		trace.WithAttributes(attribute.Int("node", int(event.Node))))
	o.nodeSpans[event.Node] = span
	o.nodeStarts[event.Node] = event.Timestamp
}

func (o *TelemetryObserver) handleNodeExecuted(ctx context.Context, event observer.Event) {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.nodesExecuted++
	elapsed := event.Elapsed
	if start, ok := o.nodeStarts[event.Node]; ok {
		elapsed = time.Since(start)
	}
	o.provider.RecordNodeExecution(ctx, int(event.Node), elapsed, true)

	if span, ok := o.nodeSpans[event.Node]; ok {
		span.SetStatus(codes.Ok, "node executed")
		span.End()
		delete(o.nodeSpans, event.Node)
		delete(o.nodeStarts, event.Node)
	}
}

func (o *TelemetryObserver) handleNodeSkipped(ctx context.Context, event observer.Event) {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.provider.RecordNodeSkipped(ctx, int(event.Node))

	if span, ok := o.nodeSpans[event.Node]; ok {
		span.SetStatus(codes.Ok, "node skipped")
		span.End()
		delete(o.nodeSpans, event.Node)
		delete(o.nodeStarts, event.Node)
	}
}

func (o *TelemetryObserver) handleRunCompleted(ctx context.Context, event observer.Event) {
	o.mu.Lock()
	defer o.mu.Unlock()

	success := event.Err == nil
	o.provider.RecordRunExecution(ctx, event.RunOrdinal, event.Elapsed, success, o.nodesExecuted)

	if o.runSpan != nil {
		if event.Err != nil {
			o.runSpan.RecordError(event.Err)
			o.runSpan.SetStatus(codes.Error, event.Err.Error())
		} else {
			o.runSpan.SetStatus(codes.Ok, "run completed")
		}
		o.runSpan.End()
		o.runSpan = nil
	}
	o.nodesExecuted = 0
}
