// Package log provides structured session logging for the referee stopwatch.
//
// This package defines the Logger interface and Event types for capturing
// what happened during a timing session: operator commands, mode and phase
// transitions, status tier changes, beeps, and interruptions. It is separate
// from operational logging (slog). The session log is a complete,
// machine-readable record a referee can review after an event.
//
// # Basic Usage
//
// Applications configure logging by providing a Logger implementation:
//
//	// For development: log to console via slog
//	cfg.Logger = log.NewSlogAdapter(slog.Default())
//
//	// For competition use: write to a binary file
//	cfg.Logger, _ = log.NewFileLogger("/var/log/skatewatch/session.swlog")
//
//	// Both: use MultiLogger
//	cfg.Logger = log.NewMultiLogger(
//	    log.NewSlogAdapter(slog.Default()),
//	    fileLogger,
//	)
//
// # File Format
//
// Log files are a stream of CBOR-encoded events with the .swlog extension.
// The skatewatch-log tool views, filters, exports, and summarizes them.
package log
