// Package logging provides structured logging for the execution engine,
// built on Go's log/slog.
//
// # Overview
//
// A Logger wraps an *slog.Logger with chainable With* methods for the
// engine's own context fields: WithGraphID, WithRunOrdinal, and
// WithNodeIndex, alongside the general-purpose WithField/WithFields/
// WithError. Output is JSON by default; Config.Pretty switches to slog's
// text handler for local development.
//
// # Basic usage
//
//	logger := logging.New(logging.Config{Level: "info", Output: os.Stdout})
//	logger.WithGraphID(id).WithNodeIndex(int(idx)).Info("node executed")
//
// # Context propagation
//
// WithContext/FromContext attach a Logger to a context.Context so any code
// holding that context can retrieve the logger a caller configured without
// threading it through every function signature. engine.Run does not
// retrieve a logger this way.
package logging
