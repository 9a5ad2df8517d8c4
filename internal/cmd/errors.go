package cmd

import (
	"fmt"
	"strings"

	"github.com/xdg/runline/internal/procman"
	"github.com/xdg/runline/internal/runner"
	"github.com/xdg/runline/internal/term"
)

// ExitCodeError carries a specific exit code for main to propagate.
type ExitCodeError struct {
	Code int
}

// NewExitCodeError creates an ExitCodeError with the given code.
func NewExitCodeError(code int) *ExitCodeError {
	return &ExitCodeError{Code: code}
}

func (e *ExitCodeError) Error() string {
	return fmt.Sprintf("exit code %d", e.Code)
}

// commandError converts a command failure into exit-code propagation.
// The failure is reported to the user here; other errors pass through
// for Execute to report.
func commandError(err error) error {
	if err == nil {
		return nil
	}
	if code, ok := runner.ExitCode(err); ok {
		term.Error("%v", err)
		return NewExitCodeError(code)
	}
	return err
}

// parseEnv parses KEY=VALUE flag entries into a map.
func parseEnv(entries []string) (map[string]string, error) {
	if len(entries) == 0 {
		return nil, nil
	}
	env := make(map[string]string, len(entries))
	for _, entry := range entries {
		key, value, ok := strings.Cut(entry, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid env entry %q, want KEY=VALUE", entry)
		}
		env[key] = value
	}
	return env, nil
}

// buildSpec assembles a process spec from command arguments and flags,
// applying configured defaults for the working directory and environment.
func buildSpec(argv []string, dir string, envFlags []string) (procman.Spec, error) {
	env, err := parseEnv(envFlags)
	if err != nil {
		return procman.Spec{}, err
	}

	if dir == "" {
		dir = cfg.Run.Dir
	}
	if len(cfg.Run.Env) > 0 {
		merged := make(map[string]string, len(cfg.Run.Env)+len(env))
		for k, v := range cfg.Run.Env {
			merged[k] = v
		}
		for k, v := range env {
			merged[k] = v
		}
		env = merged
	}

	return procman.Spec{Argv: argv, Dir: dir, Env: env}, nil
}
