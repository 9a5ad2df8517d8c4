package runner

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/xdg/runline/internal/pathutil"
	"github.com/xdg/runline/internal/procman"
)

// StreamOptions configures the two stream pipelines of a streamed run.
type StreamOptions struct {
	Stdout PipeConfig
	Stderr PipeConfig
}

// Stream launches spec and drains its stdout and stderr concurrently
// through their configured pipelines, forwarding surviving lines to
// sink. It returns only after both streams have reached end-of-data and
// the exit code has been observed.
//
// The ordering is deliberate: both pipelines start immediately after
// launch (sequential draining can deadlock on a full pipe), the exit
// code is read strictly after both pipelines finish (reading it earlier
// races with buffered output), and pipeline errors are reported only
// after the barrier so no output in flight is lost.
//
// A non-zero exit code is returned as a CommandFailedError.
func Stream(ctx context.Context, mgr procman.Manager, spec procman.Spec, opts StreamOptions, sink Sink) error {
	handle, err := mgr.Start(ctx, spec)
	if err != nil {
		return err
	}

	sink.Trace("run: %s (in %s)", spec.CommandLine(), pathutil.Display(spec.Dir))

	var wg sync.WaitGroup
	var outErr, errErr error
	wg.Add(2)
	go func() {
		defer wg.Done()
		outErr = drainPipe(handle.Stdout(), "stdout", opts.Stdout, sink)
	}()
	go func() {
		defer wg.Done()
		errErr = drainPipe(handle.Stderr(), "stderr", opts.Stderr, sink)
	}()
	wg.Wait()

	// Both streams have drained; the exit code can no longer race with
	// undelivered output. Wait also reaps the process, so it runs even
	// when a pipeline failed.
	code, waitErr := handle.Wait()

	if pipeErr := errors.Join(outErr, errErr); pipeErr != nil {
		return pipeErr
	}
	if waitErr != nil {
		return fmt.Errorf("wait for %q: %w", spec.CommandLine(), waitErr)
	}
	if code != 0 {
		return &CommandFailedError{Argv: spec.Argv, Dir: spec.Dir, ExitCode: code}
	}
	return nil
}
