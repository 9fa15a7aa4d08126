// Package telemetry provides OpenTelemetry integration for distributed
// tracing and Prometheus metrics for engine.Run. It exposes:
//   - a per-run span tree (run span, child span per considered node, ended
//     as executed or skipped)
//   - counters for run/node executions, broken into execute vs skip
//   - duration histograms for runs and individual node executions
//
// TelemetryObserver implements observer.Observer so it plugs directly into
// engine.RunObserved via a pkg/observer.Manager.
package telemetry
