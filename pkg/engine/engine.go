package engine

import (
	"context"
	"fmt"

	"github.com/flowgraph/engine/pkg/cache"
	"github.com/flowgraph/engine/pkg/config"
	"github.com/flowgraph/engine/pkg/function"
	"github.com/flowgraph/engine/pkg/graph"
	"github.com/flowgraph/engine/pkg/plan"
	"github.com/flowgraph/engine/pkg/types"
)

// Run executes the requested nodes of g against prior's cached outputs,
// invoking functions through ctx, and returns the resulting cache.
//
// If prior is nil, a fresh cache.New() is used (a cold run). On success the
// returned cache is a new object; prior is never mutated. On failure — a
// function invocation error, an unbound input, or a canceled context — the
// returned cache is prior itself, unchanged, and err is non-nil.
func Run(ctx context.Context, g *graph.Graph, requested []types.NodeIndex, execCtx function.ExecutionContext, prior *cache.Cache) (*cache.Cache, error) {
	return run(ctx, g, requested, execCtx, prior, nil, nil)
}

// RunWithConfig behaves like Run but additionally enforces cfg's limits: a
// plan whose backward cone exceeds cfg.MaxPlanSize fails with
// plan.ErrPlanTooLarge before any node runs, and cfg.MaxRunDuration, if
// positive, bounds ctx with an additional context.WithTimeout derived
// deadline so a run that overruns it fails with context.DeadlineExceeded. A
// nil cfg is equivalent to Run.
func RunWithConfig(ctx context.Context, g *graph.Graph, requested []types.NodeIndex, execCtx function.ExecutionContext, prior *cache.Cache, cfg *config.Config) (*cache.Cache, error) {
	if cfg != nil && cfg.MaxRunDuration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.MaxRunDuration)
		defer cancel()
	}
	return run(ctx, g, requested, execCtx, prior, nil, cfg)
}

// hook, when non-nil, is notified of each node's disposition as the run
// progresses. It exists so pkg/engine can offer an observed variant (see
// observed.go) without the core Run algorithm importing pkg/observer.
type hook func(phase string, idx types.NodeIndex)

func run(ctx context.Context, g *graph.Graph, requested []types.NodeIndex, execCtx function.ExecutionContext, prior *cache.Cache, notify hook, cfg *config.Config) (*cache.Cache, error) {
	if execCtx == nil {
		return prior, ErrNilContext
	}
	if prior == nil {
		prior = cache.New()
	}

	maxPlanSize := 0
	if cfg != nil {
		maxPlanSize = cfg.MaxPlanSize
	}
	order, err := plan.PlanWithLimit(g, requested, maxPlanSize)
	if err != nil {
		return prior, err
	}

	work := prior.Clone()
	work.BeginRun()

	executedThisRun := make(map[types.NodeIndex]bool, len(order))

	for _, idx := range order {
		if err := ctx.Err(); err != nil {
			return prior, err
		}

		node, ok := g.Node(idx)
		if !ok {
			return prior, fmt.Errorf("engine: plan referenced missing node %d", idx)
		}

		if notify != nil {
			notify("considered", idx)
		}

		if !mustExecute(g, work, idx, node, executedThisRun) {
			work.MarkSkipped(idx)
			if notify != nil {
				notify("skipped", idx)
			}
			continue
		}

		inputs, err := gatherInputs(g, work, idx, node)
		if err != nil {
			return prior, err
		}

		outputs, err := execCtx.Invoke(node.Function, inputs)
		if err != nil {
			return prior, &ExecutionFailedError{Node: idx, Cause: err}
		}

		work.MarkExecuted(idx, outputs)
		executedThisRun[idx] = true
		if notify != nil {
			notify("executed", idx)
		}
	}

	return work, nil
}

// mustExecute implements the four-rule decision table: no cached outputs,
// Active behavior, or an Always edge from a node that executed this run each
// force execution; otherwise the node is skipped.
func mustExecute(g *graph.Graph, c *cache.Cache, idx types.NodeIndex, node graph.Node, executedThisRun map[types.NodeIndex]bool) bool {
	if !c.HasOutputs(idx) {
		return true
	}
	if node.Behavior == types.Active {
		return true
	}
	for _, e := range g.InEdges(idx) {
		if executedThisRun[e.SrcNode] && e.Behavior == types.Always {
			return true
		}
	}
	return false
}

// gatherInputs resolves each of node's input slots to its source's cached
// output value, in slot order. A slot with no bound incoming edge, or whose
// source has no cached output for the referenced output slot, fails with
// types.ErrUnboundInput.
func gatherInputs(g *graph.Graph, c *cache.Cache, idx types.NodeIndex, node graph.Node) ([]function.Value, error) {
	desc, err := g.Registry().Lookup(node.Function)
	if err != nil {
		return nil, err
	}
	if len(desc.Inputs) == 0 {
		return nil, nil
	}

	inEdges := g.InEdges(idx)
	inputs := make([]function.Value, len(desc.Inputs))

	for slot := range desc.Inputs {
		var bound *graph.Edge
		for i := range inEdges {
			if inEdges[i].DstInput == slot {
				bound = &inEdges[i]
				break
			}
		}
		if bound == nil {
			return nil, fmt.Errorf("%w: node %d input %d", types.ErrUnboundInput, idx, slot)
		}

		entry, ok := c.Get(bound.SrcNode)
		if !ok || !entry.HasOutputs || bound.SrcOutput >= len(entry.Outputs) {
			return nil, fmt.Errorf("%w: node %d input %d (source %d has no cached output %d)",
				types.ErrUnboundInput, idx, slot, bound.SrcNode, bound.SrcOutput)
		}
		inputs[slot] = entry.Outputs[bound.SrcOutput]
	}

	return inputs, nil
}
