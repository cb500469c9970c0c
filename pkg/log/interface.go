// Package log provides a structured logging interface for censusviz chart rendering.
//
// This package defines a minimal, slog-compatible logging interface that allows for
// flexible implementation switching while providing chart-specific structured logging
// capabilities. Two backends ship with it: a zerolog logger (NewZerologLogger) used by
// the CLI and the renderer, and a log/slog setup (SetupLogger) whose handler attaches
// cockroachdb/errors stack traces.
//
// Example usage:
//
//	logger := log.GetLogger().With(
//	    log.ComponentKey, "viz",
//	    log.ChartKindKey, log.ChartEvaluate,
//	)
//	logger.Info("Figure rendered",
//	    log.PanelsKey, 6,
//	    log.OutputLocationKey, "figures/evaluate.png",
//	)

package log

import (
	"context"
)

// Logger defines a structured logging interface compatible with Go's log/slog.
//
// The interface supports method chaining through the With method, allowing
// for creation of contextual loggers with pre-populated fields.
type Logger interface {
	// Debug logs a debug-level message with optional key-value pairs.
	Debug(msg string, fields ...any)

	// Info logs an info-level message with optional key-value pairs.
	//
	// Example:
	//   logger.Info("Figure rendered",
	//       log.ChartKindKey, log.ChartDistribution,
	//       log.DurationMsKey, 42,
	//   )
	Info(msg string, fields ...any)

	// Warn logs a warning-level message with optional key-value pairs.
	Warn(msg string, fields ...any)

	// Error logs an error-level message with optional key-value pairs.
	// If the first field is an error, it is logged under the "error" key
	// and implementations may attach its stack trace.
	//
	// Example:
	//   logger.Error("Rendering failed",
	//       err,
	//       log.ChartKindKey, log.ChartFeatures,
	//   )
	Error(msg string, fields ...any)

	// With returns a new Logger with the given fields pre-populated.
	With(fields ...any) Logger

	// Enabled reports whether the logger emits log records at the given level.
	// Use it to skip building expensive fields that would be dropped anyway.
	Enabled(ctx context.Context, level Level) bool
}

// Level represents a logging level, compatible with slog.Level.
type Level int

// Standard logging levels, values are compatible with slog.Level.
const (
	LevelDebug Level = -4 // Detailed diagnostic information
	LevelInfo  Level = 0  // General operational information
	LevelWarn  Level = 4  // Warning conditions
	LevelError Level = 8  // Error conditions
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

// ParseLevel converts a lower-case level name ("debug", "info", "warn",
// "error") to a Level.
func ParseLevel(level string) (Level, error) {
	switch level {
	case "debug":
		return LevelDebug, nil
	case "info", "":
		return LevelInfo, nil
	case "warn":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	default:
		return LevelInfo, &InvalidLevelError{Level: level}
	}
}

// InvalidLevelError is returned by ParseLevel for an unknown level name.
type InvalidLevelError struct {
	Level string
}

func (e *InvalidLevelError) Error() string {
	return "invalid log level: " + e.Level
}

// LoggerProvider defines an interface for creating and configuring loggers.
// This interface allows for dependency injection and testing with different
// logger implementations.
type LoggerProvider interface {
	// GetLogger returns the default logger instance.
	GetLogger() Logger

	// GetLoggerWithName returns a logger with a specific name/component identifier.
	GetLoggerWithName(name string) Logger

	// SetLevel sets the minimum log level for all loggers created by this provider.
	SetLevel(level Level)
}
