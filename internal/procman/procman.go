// Package procman provides the interface and types for child process
// management. The real implementation is backed by os/exec; a fake
// implementation allows tests to run without touching OS processes.
package procman

import (
	"context"
	"fmt"
	"io"
	"strings"
)

// Spec describes one command to execute. It is immutable once constructed:
// the first Argv element is the executable, Dir defaults to the current
// directory, and Env entries are merged over the parent environment.
type Spec struct {
	Argv []string
	Dir  string
	Env  map[string]string
}

// CommandLine returns the command as a single space-joined string for
// display in errors and trace messages.
func (s Spec) CommandLine() string {
	return strings.Join(s.Argv, " ")
}

// Handle represents one running child process. The two stream readers are
// each owned exclusively by whoever drains them; Wait resolves the exit
// code once the process terminates and must not be called before both
// streams have been fully read.
type Handle interface {
	// Stdout returns the process's standard output stream.
	Stdout() io.Reader

	// Stderr returns the process's standard error stream.
	Stderr() io.Reader

	// Wait blocks until the process exits and returns its exit code.
	// The returned error reports wait-level failures only; a non-zero
	// exit code is not an error at this layer.
	Wait() (int, error)
}

// Result contains the outcome of a synchronous run.
type Result struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// Manager starts and runs child processes.
type Manager interface {
	// Start launches the process described by spec and returns a live
	// Handle without waiting for completion.
	Start(ctx context.Context, spec Spec) (Handle, error)

	// Run executes spec to completion and returns the captured output
	// and exit code. A non-zero exit code is reported in the Result,
	// not as an error.
	Run(ctx context.Context, spec Spec) (Result, error)
}

// LaunchError indicates a process could not be started: missing binary,
// bad working directory, or permission denied.
type LaunchError struct {
	Argv []string
	Dir  string
	Err  error
}

func (e *LaunchError) Error() string {
	cmd := strings.Join(e.Argv, " ")
	if e.Dir != "" {
		return fmt.Sprintf("launch %q in %s: %v", cmd, e.Dir, e.Err)
	}
	return fmt.Sprintf("launch %q: %v", cmd, e.Err)
}

func (e *LaunchError) Unwrap() error {
	return e.Err
}
