package procman

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"sync"
)

// OSManager executes commands using os/exec.
type OSManager struct{}

// NewOSManager creates a new OSManager.
func NewOSManager() *OSManager {
	return &OSManager{}
}

// buildCmd constructs an exec.Cmd from a Spec without starting it.
func buildCmd(ctx context.Context, spec Spec) (*exec.Cmd, error) {
	if len(spec.Argv) == 0 {
		return nil, &LaunchError{Argv: spec.Argv, Dir: spec.Dir, Err: errors.New("empty command")}
	}

	cmd := exec.CommandContext(ctx, spec.Argv[0], spec.Argv[1:]...)

	if spec.Dir != "" {
		cmd.Dir = spec.Dir
	}

	// Merge environment variables over the parent environment
	if len(spec.Env) > 0 {
		cmd.Env = os.Environ()
		for k, v := range spec.Env {
			cmd.Env = append(cmd.Env, k+"="+v)
		}
	}

	return cmd, nil
}

// Start launches the process with stdout and stderr captured as pipes.
// The returned handle's streams must both be drained before Wait is
// called, or the child can block writing to a full pipe.
func (m *OSManager) Start(ctx context.Context, spec Spec) (Handle, error) {
	cmd, err := buildCmd(ctx, spec)
	if err != nil {
		return nil, err
	}

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, &LaunchError{Argv: spec.Argv, Dir: spec.Dir, Err: err}
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return nil, &LaunchError{Argv: spec.Argv, Dir: spec.Dir, Err: err}
	}

	if err := cmd.Start(); err != nil {
		return nil, &LaunchError{Argv: spec.Argv, Dir: spec.Dir, Err: err}
	}

	return &osHandle{cmd: cmd, stdout: stdout, stderr: stderr}, nil
}

// Run executes spec to completion, capturing stdout and stderr separately.
func (m *OSManager) Run(ctx context.Context, spec Spec) (Result, error) {
	cmd, err := buildCmd(ctx, spec)
	if err != nil {
		return Result{}, err
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	runErr := cmd.Run()
	res := Result{
		ExitCode: exitCodeFrom(runErr, cmd.ProcessState),
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
	}

	if runErr != nil {
		// A non-zero exit is reported through the Result; anything else
		// means the process never ran properly.
		var exitErr *exec.ExitError
		if !errors.As(runErr, &exitErr) {
			return Result{}, &LaunchError{Argv: spec.Argv, Dir: spec.Dir, Err: runErr}
		}
	}

	return res, nil
}

// osHandle wraps a started exec.Cmd.
type osHandle struct {
	cmd      *exec.Cmd
	stdout   io.ReadCloser
	stderr   io.ReadCloser
	waitOnce sync.Once
	code     int
	waitErr  error
}

func (h *osHandle) Stdout() io.Reader {
	return h.stdout
}

func (h *osHandle) Stderr() io.Reader {
	return h.stderr
}

// Wait resolves the exit code exactly once; later calls return the same
// values. cmd.Wait closes the pipes, so callers must have finished
// reading both streams first.
func (h *osHandle) Wait() (int, error) {
	h.waitOnce.Do(func() {
		err := h.cmd.Wait()
		h.code = exitCodeFrom(err, h.cmd.ProcessState)
		var exitErr *exec.ExitError
		if err != nil && !errors.As(err, &exitErr) {
			h.waitErr = err
		}
	})
	return h.code, h.waitErr
}

// exitCodeFrom extracts an exit code from a wait error and process state.
// Returns -1 when the process state is unavailable and the error carries
// no exit information.
func exitCodeFrom(waitErr error, state *os.ProcessState) int {
	if state != nil {
		return state.ExitCode()
	}
	if waitErr == nil {
		return 0
	}
	var exitErr *exec.ExitError
	if errors.As(waitErr, &exitErr) && exitErr.ProcessState != nil {
		return exitErr.ProcessState.ExitCode()
	}
	return -1
}
