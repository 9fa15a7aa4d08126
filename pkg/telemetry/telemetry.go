package telemetry

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
)

const (
	serviceName = "flowgraph-engine"

	metricRunExecutions = "run.executions.total"
	metricRunDuration   = "run.duration"
	metricRunSuccess    = "run.executions.success.total"
	metricRunFailure    = "run.executions.failure.total"

	metricNodeExecuted = "node.executions.total"
	metricNodeDuration = "node.execution.duration"
	metricNodeSuccess  = "node.executions.success.total"
	metricNodeFailure  = "node.executions.failure.total"
	metricNodeSkipped  = "node.executions.skipped.total"
)

// Provider manages OpenTelemetry setup and provides access to tracers and
// meters for the engine's run/node execution metrics.
type Provider struct {
	meterProvider  *sdkmetric.MeterProvider
	tracerProvider trace.TracerProvider
	meter          metric.Meter
	tracer         trace.Tracer

	runExecutions metric.Int64Counter
	runDuration   metric.Float64Histogram
	runSuccess    metric.Int64Counter
	runFailure    metric.Int64Counter

	nodeExecuted metric.Int64Counter
	nodeDuration metric.Float64Histogram
	nodeSuccess  metric.Int64Counter
	nodeFailure  metric.Int64Counter
	nodeSkipped  metric.Int64Counter

	mu sync.RWMutex
}

// Config holds telemetry configuration.
type Config struct {
	ServiceName    string
	ServiceVersion string
	Environment    string
	EnableTracing  bool
	EnableMetrics  bool
}

// DefaultConfig returns default telemetry configuration.
func DefaultConfig() Config {
	return Config{
		ServiceName:    serviceName,
		ServiceVersion: "0.1.0",
		Environment:    "development",
		EnableTracing:  true,
		EnableMetrics:  true,
	}
}

// NewProvider creates a telemetry Provider with a Prometheus metrics
// exporter, initialized per config.
func NewProvider(ctx context.Context, config Config) (*Provider, error) {
	provider := &Provider{}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(config.ServiceName),
			semconv.ServiceVersion(config.ServiceVersion),
			attribute.String("environment", config.Environment),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create resource: %w", err)
	}

	if config.EnableMetrics {
		if err := provider.initMetrics(res); err != nil {
			return nil, fmt.Errorf("failed to initialize metrics: %w", err)
		}
	}

	if config.EnableTracing {
		provider.initTracing()
	}

	return provider, nil
}

func (p *Provider) initMetrics(res *resource.Resource) error {
	exporter, err := prometheus.New()
	if err != nil {
		return fmt.Errorf("failed to create prometheus exporter: %w", err)
	}

	p.meterProvider = sdkmetric.NewMeterProvider(
		sdkmetric.WithResource(res),
		sdkmetric.WithReader(exporter),
	)
	otel.SetMeterProvider(p.meterProvider)
	p.meter = p.meterProvider.Meter(serviceName)

	return p.createMetricInstruments()
}

func (p *Provider) initTracing() {
	p.tracerProvider = otel.GetTracerProvider()
	p.tracer = p.tracerProvider.Tracer(serviceName)
}

func (p *Provider) createMetricInstruments() error {
	var err error

	if p.runExecutions, err = p.meter.Int64Counter(metricRunExecutions, metric.WithDescription("Total number of engine runs")); err != nil {
		return err
	}
	if p.runDuration, err = p.meter.Float64Histogram(metricRunDuration, metric.WithDescription("Run duration in milliseconds"), metric.WithUnit("ms")); err != nil {
		return err
	}
	if p.runSuccess, err = p.meter.Int64Counter(metricRunSuccess, metric.WithDescription("Total number of successful runs")); err != nil {
		return err
	}
	if p.runFailure, err = p.meter.Int64Counter(metricRunFailure, metric.WithDescription("Total number of failed runs")); err != nil {
		return err
	}

	if p.nodeExecuted, err = p.meter.Int64Counter(metricNodeExecuted, metric.WithDescription("Total number of node executions")); err != nil {
		return err
	}
	if p.nodeDuration, err = p.meter.Float64Histogram(metricNodeDuration, metric.WithDescription("Node execution duration in milliseconds"), metric.WithUnit("ms")); err != nil {
		return err
	}
	if p.nodeSuccess, err = p.meter.Int64Counter(metricNodeSuccess, metric.WithDescription("Total number of successful node executions")); err != nil {
		return err
	}
	if p.nodeFailure, err = p.meter.Int64Counter(metricNodeFailure, metric.WithDescription("Total number of failed node executions")); err != nil {
		return err
	}
	if p.nodeSkipped, err = p.meter.Int64Counter(metricNodeSkipped, metric.WithDescription("Total number of nodes skipped via cache reuse")); err != nil {
		return err
	}

	return nil
}

// Tracer returns the tracer for creating spans.
func (p *Provider) Tracer() trace.Tracer {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.tracer
}

// Meter returns the meter for recording metrics.
func (p *Provider) Meter() metric.Meter {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.meter
}

// RecordRunExecution records metrics for a completed engine.Run call.
func (p *Provider) RecordRunExecution(ctx context.Context, runOrdinal int, duration time.Duration, success bool, nodesExecuted int) {
	if p.meter == nil {
		return
	}

	attrs := []attribute.KeyValue{
		attribute.Int("run.ordinal", runOrdinal),
		attribute.Int("nodes.executed", nodesExecuted),
	}

	p.runExecutions.Add(ctx, 1, metric.WithAttributes(attrs...))
	p.runDuration.Record(ctx, float64(duration.Milliseconds()), metric.WithAttributes(attrs...))
	if success {
		p.runSuccess.Add(ctx, 1, metric.WithAttributes(attrs...))
	} else {
		p.runFailure.Add(ctx, 1, metric.WithAttributes(attrs...))
	}
}

// RecordNodeExecution records metrics for a single node's function
// invocation.
func (p *Provider) RecordNodeExecution(ctx context.Context, node int, duration time.Duration, success bool) {
	if p.meter == nil {
		return
	}

	attrs := []attribute.KeyValue{attribute.Int("node", node)}

	p.nodeExecuted.Add(ctx, 1, metric.WithAttributes(attrs...))
	p.nodeDuration.Record(ctx, float64(duration.Milliseconds()), metric.WithAttributes(attrs...))
	if success {
		p.nodeSuccess.Add(ctx, 1, metric.WithAttributes(attrs...))
	} else {
		p.nodeFailure.Add(ctx, 1, metric.WithAttributes(attrs...))
	}
}

// RecordNodeSkipped records that a node's cached outputs were reused rather
// than re-invoking its function.
func (p *Provider) RecordNodeSkipped(ctx context.Context, node int) {
	if p.meter == nil {
		return
	}
	p.nodeSkipped.Add(ctx, 1, metric.WithAttributes(attribute.Int("node", node)))
}

// Shutdown gracefully shuts down the telemetry provider.
func (p *Provider) Shutdown(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.meterProvider != nil {
		if err := p.meterProvider.Shutdown(ctx); err != nil {
			return fmt.Errorf("failed to shutdown meter provider: %w", err)
		}
	}
	return nil
}
