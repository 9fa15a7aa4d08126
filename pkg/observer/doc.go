// Package observer provides an event bus a host can use to watch an
// engine.Run call without the engine depending on the host's diagnostic
// tooling.
//
// # Events
//
// A run emits EventNodeConsidered for every node in its plan, followed by
// either EventNodeExecuted or EventNodeSkipped depending on the
// must_execute decision, and finally one EventRunCompleted once the run
// finishes (successfully or not).
//
// # Usage
//
//	mgr := observer.NewManager()
//	mgr.Register(observer.NewConsoleObserver())
//	mgr.Notify(ctx, observer.Event{Type: observer.EventNodeExecuted, Node: idx})
//
// Manager.Notify delivers to each observer on its own goroutine and
// recovers a panicking observer so it cannot affect the run it is
// watching or any other observer.
package observer
