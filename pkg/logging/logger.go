// Package logging provides structured logging with context propagation for
// the execution engine, built on Go's slog package.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
)

// contextKey is used for context keys to avoid collisions.
type contextKey string

// ContextKeyLogger is the context key for the logger instance.
const ContextKeyLogger contextKey = "logger"

// Logger wraps slog.Logger with engine-specific context fields.
type Logger struct {
	logger *slog.Logger
}

// Config holds logging configuration.
type Config struct {
	// Level is the minimum log level (debug, info, warn, error).
	Level string
	// Output is where logs are written (default: os.Stdout).
	Output io.Writer
	// Pretty enables human-readable text output (default: false for JSON).
	Pretty bool
	// IncludeCaller includes source location in logs (default: false).
	IncludeCaller bool
}

// DefaultConfig returns the default logging configuration.
func DefaultConfig() Config {
	return Config{
		Level:         "info",
		Output:        os.Stdout,
		Pretty:        false,
		IncludeCaller: false,
	}
}

// New creates a logger from cfg.
func New(cfg Config) *Logger {
	level := parseLevel(cfg.Level)

	output := cfg.Output
	if output == nil {
		output = os.Stdout
	}

	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: cfg.IncludeCaller,
	}

	var handler slog.Handler
	if cfg.Pretty {
		handler = slog.NewTextHandler(output, opts)
	} else {
		handler = slog.NewJSONHandler(output, opts)
	}

	return &Logger{logger: slog.New(handler)}
}

func parseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// WithContext attaches the logger to ctx.
func (l *Logger) WithContext(ctx context.Context) context.Context {
	return context.WithValue(ctx, ContextKeyLogger, l)
}

// FromContext retrieves the logger attached to ctx, or a default logger.
func FromContext(ctx context.Context) *Logger {
	if logger, ok := ctx.Value(ContextKeyLogger).(*Logger); ok {
		return logger
	}
	return New(DefaultConfig())
}

// WithGraphID adds graph_id to the logger's fields.
func (l *Logger) WithGraphID(graphID string) *Logger {
	return &Logger{logger: l.logger.With(slog.String("graph_id", graphID))}
}

// WithRunOrdinal adds run_ordinal to the logger's fields.
func (l *Logger) WithRunOrdinal(ordinal int) *Logger {
	return &Logger{logger: l.logger.With(slog.Int("run_ordinal", ordinal))}
}

// WithNodeIndex adds node_index to the logger's fields.
func (l *Logger) WithNodeIndex(idx int) *Logger {
	return &Logger{logger: l.logger.With(slog.Int("node_index", idx))}
}

// WithField adds a single custom field.
func (l *Logger) WithField(key string, value interface{}) *Logger {
	return &Logger{logger: l.logger.With(slog.Any(key, value))}
}

// WithFields adds multiple custom fields.
func (l *Logger) WithFields(fields map[string]interface{}) *Logger {
	args := make([]any, 0, len(fields)*2)
	for k, v := range fields {
		args = append(args, slog.Any(k, v))
	}
	return &Logger{logger: l.logger.With(args...)}
}

// WithError adds an error field.
func (l *Logger) WithError(err error) *Logger {
	return &Logger{logger: l.logger.With(slog.Any("error", err))}
}

// Debug logs a debug message.
func (l *Logger) Debug(msg string) { l.logger.Debug(msg) }

// Debugf logs a formatted debug message.
func (l *Logger) Debugf(format string, args ...interface{}) {
	l.logger.Debug(fmt.Sprintf(format, args...))
}

// Info logs an info message.
func (l *Logger) Info(msg string) { l.logger.Info(msg) }

// Infof logs a formatted info message.
func (l *Logger) Infof(format string, args ...interface{}) {
	l.logger.Info(fmt.Sprintf(format, args...))
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string) { l.logger.Warn(msg) }

// Warnf logs a formatted warning message.
func (l *Logger) Warnf(format string, args ...interface{}) {
	l.logger.Warn(fmt.Sprintf(format, args...))
}

// Error logs an error message.
func (l *Logger) Error(msg string) { l.logger.Error(msg) }

// Errorf logs a formatted error message.
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.logger.Error(fmt.Sprintf(format, args...))
}

// GetSlogLogger returns the underlying slog.Logger for advanced use cases.
func (l *Logger) GetSlogLogger() *slog.Logger {
	return l.logger
}
