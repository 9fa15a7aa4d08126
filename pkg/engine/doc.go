// Package engine provides the executor (component G): the core algorithm
// that walks a plan, decides which nodes must re-execute, invokes their
// functions through a function.ExecutionContext, and returns a new cache.
//
// # Overview
//
// Run takes a graph, an optional requested-node set, a
// function.ExecutionContext to invoke functions through, and the cache from
// the prior run (cache.New() for a cold run). It plans the run with
// pkg/plan, then walks the plan in order deciding, for each node, whether it
// must execute this run:
//
//  1. no cached outputs -> execute
//  2. NodeBehavior is Active -> execute
//  3. an incoming Always edge whose source executed this run -> execute
//  4. otherwise -> skip, the prior cache entry is left untouched
//
// A node that must execute has its inputs gathered from its sources' cached
// outputs — guaranteed present, since a source always precedes its sinks in
// the plan and was either executed this run or already holds a prior-run
// entry. The function is invoked through the context, its outputs are
// recorded in the new cache under the current run ordinal, and the node is
// marked executed-this-run so downstream Always edges see it as fresh.
//
// Run operates on a Clone of prior and only returns that clone on success;
// on any failure it returns prior itself, unmodified — a failed run never
// leaves partial outputs visible (cache atomicity).
//
// RunObserved wraps Run to additionally report each node's disposition,
// and the run's outcome, to a pkg/observer.Manager. The core algorithm
// itself never imports pkg/observer; a host that doesn't care about
// diagnostics calls Run directly and pays nothing for the event bus.
package engine
