package observer

import (
	"context"
	"fmt"

	"github.com/flowgraph/engine/pkg/logging"
)

// NoOpObserver ignores all events. Useful as a zero-value default.
type NoOpObserver struct{}

func (o *NoOpObserver) OnEvent(ctx context.Context, event Event) {}

// ConsoleObserver logs events through a Logger.
type ConsoleObserver struct {
	logger Logger
}

// NewConsoleObserver creates a ConsoleObserver backed by the default logger.
func NewConsoleObserver() *ConsoleObserver {
	return &ConsoleObserver{logger: NewDefaultLogger()}
}

// NewConsoleObserverWithLogger creates a ConsoleObserver backed by logger.
func NewConsoleObserverWithLogger(logger Logger) *ConsoleObserver {
	return &ConsoleObserver{logger: logger}
}

func (o *ConsoleObserver) OnEvent(ctx context.Context, event Event) {
	fields := map[string]interface{}{
		"type":        event.Type,
		"run_ordinal": event.RunOrdinal,
	}

	if event.Node != 0 {
		fields["node"] = event.Node
	}
	if event.Elapsed > 0 {
		fields["elapsed"] = event.Elapsed.String()
	}
	for k, v := range event.Metadata {
		fields[k] = v
	}

	msg := fmt.Sprintf("[%s]", event.Type)

	switch event.Type {
	case EventNodeConsidered, EventNodeSkipped:
		o.logger.Debug(msg, fields)
	case EventNodeExecuted:
		o.logger.Info(msg, fields)
	case EventRunCompleted:
		if event.Err != nil {
			fields["error"] = event.Err.Error()
			o.logger.Error(msg, fields)
		} else {
			o.logger.Info(msg, fields)
		}
	default:
		o.logger.Info(msg, fields)
	}
}

// NoOpLogger ignores all log messages.
type NoOpLogger struct{}

func (l *NoOpLogger) Debug(msg string, fields map[string]interface{}) {}
func (l *NoOpLogger) Info(msg string, fields map[string]interface{})  {}
func (l *NoOpLogger) Warn(msg string, fields map[string]interface{})  {}
func (l *NoOpLogger) Error(msg string, fields map[string]interface{}) {}

// DefaultLogger adapts a *logging.Logger, the engine's own slog-backed
// logger, to the Logger interface this package's observers expect.
type DefaultLogger struct {
	logger *logging.Logger
}

// NewDefaultLogger creates a DefaultLogger backed by logging.New with
// logging.DefaultConfig().
func NewDefaultLogger() *DefaultLogger {
	return &DefaultLogger{logger: logging.New(logging.DefaultConfig())}
}

// NewDefaultLoggerFrom wraps an existing *logging.Logger, e.g. one pulled
// from a request context via logging.FromContext, so observer output shares
// the caller's fields and destination.
func NewDefaultLoggerFrom(logger *logging.Logger) *DefaultLogger {
	return &DefaultLogger{logger: logger}
}

func (l *DefaultLogger) Debug(msg string, fields map[string]interface{}) {
	l.logger.WithFields(fields).Debug(msg)
}

func (l *DefaultLogger) Info(msg string, fields map[string]interface{}) {
	l.logger.WithFields(fields).Info(msg)
}

func (l *DefaultLogger) Warn(msg string, fields map[string]interface{}) {
	l.logger.WithFields(fields).Warn(msg)
}

func (l *DefaultLogger) Error(msg string, fields map[string]interface{}) {
	l.logger.WithFields(fields).Error(msg)
}

// Manager fans an event out to all registered observers.
type Manager struct {
	observers []Observer
}

// NewManager creates an empty Manager.
func NewManager() *Manager {
	return &Manager{observers: []Observer{}}
}

// NewManagerWithObservers creates a Manager pre-populated with observers.
func NewManagerWithObservers(observers ...Observer) *Manager {
	return &Manager{observers: observers}
}

// Register adds an observer; a nil observer is ignored.
func (m *Manager) Register(observer Observer) {
	if observer != nil {
		m.observers = append(m.observers, observer)
	}
}

// Notify delivers event to every registered observer on its own goroutine.
// A panicking observer is recovered and does not affect the others or the
// run it is watching.
func (m *Manager) Notify(ctx context.Context, event Event) {
	for _, observer := range m.observers {
		obs := observer
		go func() {
			defer func() {
				_ = recover()
			}()
			obs.OnEvent(ctx, event)
		}()
	}
}

// HasObservers reports whether any observer is registered.
func (m *Manager) HasObservers() bool {
	return len(m.observers) > 0
}

// Count returns the number of registered observers.
func (m *Manager) Count() int {
	return len(m.observers)
}
