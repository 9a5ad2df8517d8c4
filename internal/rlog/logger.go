package rlog

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Logger handles leveled logging with support for multiple outputs.
// Forwarded child-process output arrives here at Trace or Status severity;
// operational diagnostics arrive at Warn or Error.
type Logger struct {
	mu         sync.Mutex
	level      Level     // minimum level to log
	fileWriter io.Writer // receives all logs at or above level, with timestamps
	outWriter  io.Writer // receives trace/status lines (forwarded child output)
	errWriter  io.Writer // receives warn/error lines
}

// NewLogger creates a new logger with default settings.
// By default, status lines go to stdout and warnings/errors to stderr,
// both at Status level.
func NewLogger() *Logger {
	return &Logger{
		level:     LevelStatus,
		outWriter: os.Stdout,
		errWriter: os.Stderr,
	}
}

// SetLevel sets the minimum log level.
func (l *Logger) SetLevel(level Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}

// SetFileOutput sets the file writer for log output.
// Pass nil to disable file logging.
func (l *Logger) SetFileOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.fileWriter = w
}

// SetOutput sets the writer for trace/status output.
// Pass nil to disable console output for forwarded lines.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.outWriter = w
}

// SetErrOutput sets the writer for warn/error output.
// Pass nil to disable stderr logging.
func (l *Logger) SetErrOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.errWriter = w
}

// Trace logs a trace message.
func (l *Logger) Trace(format string, args ...any) {
	l.log(LevelTrace, format, args...)
}

// Status logs a status message.
func (l *Logger) Status(format string, args ...any) {
	l.log(LevelStatus, format, args...)
}

// Warn logs a warning message.
func (l *Logger) Warn(format string, args ...any) {
	l.log(LevelWarn, format, args...)
}

// Error logs an error message.
func (l *Logger) Error(format string, args ...any) {
	l.log(LevelError, format, args...)
}

// log writes a log message to the appropriate outputs.
func (l *Logger) log(level Level, format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()

	// Skip if below minimum level
	if level < l.level {
		return
	}

	msg := fmt.Sprintf(format, args...)

	// Write to file if configured, with timestamp
	if l.fileWriter != nil {
		timestamp := time.Now().UTC().Format(time.RFC3339)
		line := fmt.Sprintf("%s [%s] %s\n", timestamp, level, msg)
		_, _ = l.fileWriter.Write([]byte(line))
	}

	// Forwarded output (trace/status) goes to stdout undecorated so that
	// child-process lines read naturally; warn/error go to stderr tagged
	// with the level.
	if level >= LevelWarn {
		if l.errWriter != nil {
			errLine := fmt.Sprintf("[%s] %s\n", level, msg)
			_, _ = l.errWriter.Write([]byte(errLine))
		}
		return
	}
	if l.outWriter != nil {
		_, _ = l.outWriter.Write([]byte(msg + "\n"))
	}
}

// OpenLogFile opens a log file for writing, creating parent directories if needed.
// The file is opened in append mode.
func OpenLogFile(path string) (*os.File, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0640)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	return f, nil
}

// DefaultLogPath returns the default log file path following XDG conventions.
// Returns ~/.local/state/runline/runline.log
func DefaultLogPath() string {
	stateDir := os.Getenv("XDG_STATE_HOME")
	if stateDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			home = "."
		}
		stateDir = filepath.Join(home, ".local", "state")
	}
	return filepath.Join(stateDir, "runline", "runline.log")
}
