package rlog

import (
	"io"
)

// std is the global logger instance used by package-level functions.
var std = NewLogger()

// Configure sets up the global logger with the given minimum level.
// If logPath is empty, file logging is disabled.
func Configure(level Level, logPath string) error {
	std.SetLevel(level)

	if logPath != "" {
		f, err := OpenLogFile(logPath)
		if err != nil {
			return err
		}
		std.SetFileOutput(f)
	}

	return nil
}

// Default returns the global logger. Components that take an explicit
// sink receive this from callers instead of reaching for package-level
// functions themselves.
func Default() *Logger {
	return std
}

// Trace logs a trace message using the global logger.
func Trace(format string, args ...any) {
	std.Trace(format, args...)
}

// Status logs a status message using the global logger.
func Status(format string, args ...any) {
	std.Status(format, args...)
}

// Warn logs a warning message using the global logger.
func Warn(format string, args ...any) {
	std.Warn(format, args...)
}

// Error logs an error message using the global logger.
func Error(format string, args ...any) {
	std.Error(format, args...)
}

// Close closes the file writer if it implements io.Closer.
// This should be called during shutdown to ensure logs are flushed.
func Close() error {
	std.mu.Lock()
	defer std.mu.Unlock()

	if closer, ok := std.fileWriter.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

// Discard configures the global logger to discard all output.
// This is useful for silencing logs in tests.
func Discard() {
	std.SetFileOutput(io.Discard)
	std.SetOutput(io.Discard)
	std.SetErrOutput(io.Discard)
}

// TestLogger returns a logger that writes everything to the provided writer.
// Useful for capturing log output in tests.
func TestLogger(w io.Writer) *Logger {
	l := NewLogger()
	l.SetFileOutput(nil)
	l.SetOutput(w)
	l.SetErrOutput(w)
	l.SetLevel(LevelTrace)
	return l
}

// ReplaceGlobal replaces the global logger and returns the previous one.
// Useful for testing. Caller should restore the original logger after test.
func ReplaceGlobal(l *Logger) *Logger {
	old := std
	std = l
	return old
}
