package runner

import (
	"context"

	"github.com/xdg/runline/internal/procman"
	"github.com/xdg/runline/internal/term"
)

// Run executes spec to completion and returns the captured output.
// Unless silent is true, captured stdout is echoed to the user once the
// process has finished. A non-zero exit code is returned as a
// CommandFailedError carrying the captured stderr; the Result is still
// returned alongside it.
//
// This variant reads output only after termination, so it suits
// commands with bounded output and no user-facing latency needs. Use
// Stream for anything long-running.
func Run(ctx context.Context, mgr procman.Manager, spec procman.Spec, silent bool) (procman.Result, error) {
	res, err := mgr.Run(ctx, spec)
	if err != nil {
		return procman.Result{}, err
	}

	if !silent && res.Stdout != "" {
		term.Print(res.Stdout)
	}

	if res.ExitCode != 0 {
		return res, &CommandFailedError{
			Argv:     spec.Argv,
			Dir:      spec.Dir,
			ExitCode: res.ExitCode,
			Stderr:   res.Stderr,
		}
	}
	return res, nil
}
