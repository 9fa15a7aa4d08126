package engine

import (
	"context"
	"time"

	"github.com/flowgraph/engine/pkg/cache"
	"github.com/flowgraph/engine/pkg/config"
	"github.com/flowgraph/engine/pkg/function"
	"github.com/flowgraph/engine/pkg/graph"
	"github.com/flowgraph/engine/pkg/observer"
	"github.com/flowgraph/engine/pkg/types"
)

// RunObserved behaves exactly like Run but additionally reports
// EventNodeConsidered/EventNodeExecuted/EventNodeSkipped for every node in
// the plan, and a final EventRunCompleted, to mgr. A nil mgr makes this
// identical to Run.
func RunObserved(ctx context.Context, g *graph.Graph, requested []types.NodeIndex, execCtx function.ExecutionContext, prior *cache.Cache, mgr *observer.Manager) (*cache.Cache, error) {
	return runObserved(ctx, g, requested, execCtx, prior, mgr, nil)
}

// RunObservedWithConfig composes RunObserved's event reporting with
// RunWithConfig's plan-size and run-duration limits.
func RunObservedWithConfig(ctx context.Context, g *graph.Graph, requested []types.NodeIndex, execCtx function.ExecutionContext, prior *cache.Cache, mgr *observer.Manager, cfg *config.Config) (*cache.Cache, error) {
	if cfg != nil && cfg.MaxRunDuration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.MaxRunDuration)
		defer cancel()
	}
	return runObserved(ctx, g, requested, execCtx, prior, mgr, cfg)
}

func runObserved(ctx context.Context, g *graph.Graph, requested []types.NodeIndex, execCtx function.ExecutionContext, prior *cache.Cache, mgr *observer.Manager, cfg *config.Config) (*cache.Cache, error) {
	runOrdinal := 0
	if prior != nil {
		runOrdinal = prior.RunOrdinal() + 1
	} else {
		runOrdinal = 1
	}

	var notify hook
	if mgr != nil {
		notify = func(phase string, idx types.NodeIndex) {
			var t observer.EventType
			switch phase {
			case "considered":
				t = observer.EventNodeConsidered
			case "executed":
				t = observer.EventNodeExecuted
			case "skipped":
				t = observer.EventNodeSkipped
			}
			mgr.Notify(ctx, observer.Event{
				Type:       t,
				Timestamp:  time.Now(),
				RunOrdinal: runOrdinal,
				Node:       idx,
			})
		}
	}

	start := time.Now()
	result, err := run(ctx, g, requested, execCtx, prior, notify, cfg)

	if mgr != nil {
		mgr.Notify(ctx, observer.Event{
			Type:       observer.EventRunCompleted,
			Timestamp:  time.Now(),
			RunOrdinal: runOrdinal,
			Elapsed:    time.Since(start),
			Err:        err,
		})
	}

	return result, err
}
