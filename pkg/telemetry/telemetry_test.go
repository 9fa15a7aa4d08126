package telemetry

import (
	"context"
	"testing"
	"time"
)

func TestNewProvider(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{name: "default config", config: DefaultConfig()},
		{
			name: "custom config",
			config: Config{
				ServiceName:    "test-service",
				ServiceVersion: "1.0.0",
				Environment:    "test",
				EnableTracing:  true,
				EnableMetrics:  true,
			},
		},
		{
			name: "metrics only",
			config: Config{
				ServiceName:    "test-service",
				ServiceVersion: "1.0.0",
				Environment:    "test",
				EnableTracing:  false,
				EnableMetrics:  true,
			},
		},
		{
			name: "tracing only",
			config: Config{
				ServiceName:    "test-service",
				ServiceVersion: "1.0.0",
				Environment:    "test",
				EnableTracing:  true,
				EnableMetrics:  false,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider, err := NewProvider(ctx, tt.config)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewProvider() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if err != nil {
				return
			}
			if provider == nil {
				t.Fatal("NewProvider() returned nil provider")
			}

			if tt.config.EnableTracing && provider.Tracer() == nil {
				t.Error("Tracer() returned nil when tracing is enabled")
			}
			if tt.config.EnableMetrics && provider.Meter() == nil {
				t.Error("Meter() returned nil when metrics are enabled")
			}

			if err := provider.Shutdown(ctx); err != nil {
				t.Errorf("Shutdown() error = %v", err)
			}
		})
	}
}

func TestRecordRunExecution(t *testing.T) {
	ctx := context.Background()
	provider, err := NewProvider(ctx, DefaultConfig())
	if err != nil {
		t.Fatalf("NewProvider() error = %v", err)
	}
	defer provider.Shutdown(ctx)

	tests := []struct {
		name          string
		runOrdinal    int
		duration      time.Duration
		success       bool
		nodesExecuted int
	}{
		{name: "successful run", runOrdinal: 1, duration: 100 * time.Millisecond, success: true, nodesExecuted: 5},
		{name: "failed run", runOrdinal: 2, duration: 50 * time.Millisecond, success: false, nodesExecuted: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider.RecordRunExecution(ctx, tt.runOrdinal, tt.duration, tt.success, tt.nodesExecuted)
		})
	}
}

func TestRecordNodeExecution(t *testing.T) {
	ctx := context.Background()
	provider, err := NewProvider(ctx, DefaultConfig())
	if err != nil {
		t.Fatalf("NewProvider() error = %v", err)
	}
	defer provider.Shutdown(ctx)

	tests := []struct {
		name     string
		node     int
		duration time.Duration
		success  bool
	}{
		{name: "successful node", node: 1, duration: 10 * time.Millisecond, success: true},
		{name: "failed node", node: 2, duration: 5 * time.Millisecond, success: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider.RecordNodeExecution(ctx, tt.node, tt.duration, tt.success)
		})
	}
}

func TestRecordNodeSkipped(t *testing.T) {
	ctx := context.Background()
	provider, err := NewProvider(ctx, DefaultConfig())
	if err != nil {
		t.Fatalf("NewProvider() error = %v", err)
	}
	defer provider.Shutdown(ctx)

	provider.RecordNodeSkipped(ctx, 3)
}

func TestShutdown(t *testing.T) {
	ctx := context.Background()
	provider, err := NewProvider(ctx, DefaultConfig())
	if err != nil {
		t.Fatalf("NewProvider() error = %v", err)
	}

	if err := provider.Shutdown(ctx); err != nil {
		t.Errorf("Shutdown() error = %v", err)
	}

	// A second shutdown should not panic, even if the underlying SDK
	// returns an error for an already-shutdown provider.
	_ = provider.Shutdown(ctx)
}

func TestProviderWithNilMetrics(t *testing.T) {
	ctx := context.Background()

	config := Config{
		ServiceName:    "test",
		ServiceVersion: "1.0.0",
		Environment:    "test",
		EnableTracing:  true,
		EnableMetrics:  false,
	}

	provider, err := NewProvider(ctx, config)
	if err != nil {
		t.Fatalf("NewProvider() error = %v", err)
	}
	defer provider.Shutdown(ctx)

	provider.RecordRunExecution(ctx, 1, time.Second, true, 1)
	provider.RecordNodeExecution(ctx, 1, time.Millisecond, true)
	provider.RecordNodeSkipped(ctx, 1)
}
