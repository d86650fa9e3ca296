// Package log provides structured logging for tuning-extraction operations.
//
// The package defines a minimal, slog-compatible Logger interface plus
// standard attribute keys for this domain (combination ids, resample ids,
// characteristic counts), a JSON slog setup that expands cockroachdb/errors
// stack traces, and a buffer-backed TestLogger for tests.
package log

import (
	"context"
)

// Logger is a structured logging interface compatible with Go's log/slog.
// Fields are alternating key/value pairs, as in slog.
type Logger interface {
	// Debug logs a debug-level message with optional structured fields.
	Debug(msg string, fields ...any)

	// Info logs an info-level message with optional structured fields.
	Info(msg string, fields ...any)

	// Warn logs a warning-level message with optional structured fields.
	Warn(msg string, fields ...any)

	// Error logs an error-level message with optional structured fields.
	// If the first field is an error, stack trace information may be
	// attached automatically.
	Error(msg string, fields ...any)

	// With returns a new Logger with the given fields pre-populated.
	With(fields ...any) Logger

	// Enabled reports whether the logger emits records at the given level.
	Enabled(ctx context.Context, level Level) bool
}

// Level represents a logging level, value-compatible with slog.Level.
type Level int

// Standard logging levels.
const (
	LevelDebug Level = -4
	LevelInfo  Level = 0
	LevelWarn  Level = 4
	LevelError Level = 8
)

// String returns the string representation of the log level.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}
