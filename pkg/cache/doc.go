// Package cache provides the execution cache (component F): the record of
// what each node last produced, keyed by node index.
//
// # Overview
//
// A Cache holds one Entry per node that has ever produced outputs, keyed by
// node index. An entry stores only payloads, never the function descriptor
// that produced them: identity-change invalidation (function renamed, slot
// count or types changed, handle swapped) is left to the caller, which calls
// Invalidate for any node whose descriptor no longer matches the one its
// cached entry was produced under. No package in this module does this
// automatically; pkg/document.Parse builds a graph and does not touch a
// cache.
//
// Entries also carry two flags, WasExecutedThisRun and HasOutputs, that an
// engine.Run sets while walking the plan. BeginRun resets
// WasExecutedThisRun only. WasExecutedThisRun is for observability;
// engine.Run's must_execute decision consults HasOutputs, never
// WasExecutedThisRun from a prior run.
//
// Cache.Clone produces a deep, independent copy. An engine performs a run
// against a clone of the prior cache and only commits it on success, so a
// failed run leaves the caller's cache byte-for-byte as it was.
package cache
