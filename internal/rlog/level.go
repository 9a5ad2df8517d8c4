// Package rlog provides leveled logging for runline.
// This is distinct from user-facing output (see internal/term).
//
// Log levels:
//   - Trace: Per-line diagnostics and forwarded child output marked as trace
//   - Status: Forwarded child output and normal operational events
//   - Warn: Unexpected conditions that don't prevent operation
//   - Error: Failures that affect functionality
//
// Output destinations:
//   - File: All levels at or above the configured minimum
//   - Stdout: Trace and Status (forwarded child output)
//   - Stderr: Warn and Error only
package rlog

import "strings"

// Level represents the severity of a log message.
type Level int

const (
	// LevelTrace is for per-line diagnostics and trace-routed child output.
	// Only logged when trace mode is enabled.
	LevelTrace Level = iota
	// LevelStatus is for forwarded child output and operational events.
	LevelStatus
	// LevelWarn is for unexpected conditions that don't prevent operation.
	LevelWarn
	// LevelError is for failures that affect functionality.
	LevelError
)

// String returns the uppercase name of the level.
func (l Level) String() string {
	switch l {
	case LevelTrace:
		return "TRACE"
	case LevelStatus:
		return "STATUS"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel parses a level string (case-insensitive).
// Returns LevelStatus if the string is not recognized.
func ParseLevel(s string) Level {
	switch strings.ToLower(s) {
	case "trace":
		return LevelTrace
	case "status", "info":
		return LevelStatus
	case "warn", "warning":
		return LevelWarn
	case "error", "err":
		return LevelError
	default:
		return LevelStatus
	}
}
