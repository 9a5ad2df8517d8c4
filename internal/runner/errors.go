// Package runner executes external commands and forwards their output,
// either streamed line-by-line to a logging sink or captured whole.
package runner

import (
	"errors"
	"fmt"
	"strings"
)

// CommandFailedError indicates a process ran but exited non-zero.
// In streamed mode Stderr is empty since output was already forwarded
// live; in synchronous mode it carries the captured standard error.
type CommandFailedError struct {
	Argv     []string
	Dir      string
	ExitCode int
	Stderr   string
}

func (e *CommandFailedError) Error() string {
	cmd := strings.Join(e.Argv, " ")
	msg := fmt.Sprintf("command %q failed with exit code %d", cmd, e.ExitCode)
	if e.Dir != "" {
		msg = fmt.Sprintf("command %q failed in %s with exit code %d", cmd, e.Dir, e.ExitCode)
	}
	if e.Stderr != "" {
		msg += ": " + strings.TrimSpace(e.Stderr)
	}
	return msg
}

// DecodeError indicates a stream could not be decoded into lines:
// malformed bytes in strict mode, an over-long line, or a read failure.
type DecodeError struct {
	Stream string // "stdout" or "stderr"
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s: %v", e.Stream, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// ExitCode extracts the child exit code carried by err.
// Returns false when err carries no exit code.
func ExitCode(err error) (int, bool) {
	var failed *CommandFailedError
	if errors.As(err, &failed) {
		return failed.ExitCode, true
	}
	return 0, false
}
