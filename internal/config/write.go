package config

import (
	"errors"
	"fmt"
	"os"
)

// defaultConfigTemplate is the commented default config written on first use.
const defaultConfigTemplate = `# runline configuration
#
# log:
#   file: ~/.local/state/runline/runline.log  # empty disables file logging
#   level: status                             # trace, status, warn, or error
#
# run:
#   dir: ~/projects      # default working directory for commands
#   silent: false        # suppress echo of captured output
#   env:
#     CI: "true"
#
# stream:
#   stdout_prefix: ""
#   stderr_prefix: "! "
#   stderr_trace: false  # route stderr lines to trace severity
`

// WriteDefaultConfig creates the default configuration file with helpful
// comments. If the config file already exists, it returns nil without
// overwriting. The config directory is created if it doesn't exist.
// The file is written with 0600 permissions (user read/write only).
func WriteDefaultConfig() error {
	path := Path()

	_, err := os.Stat(path)
	if err == nil {
		// File exists, don't overwrite
		return nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("stat config file: %w", err)
	}

	if err := EnsureDir(); err != nil {
		return err
	}

	if err := os.WriteFile(path, []byte(defaultConfigTemplate), 0o600); err != nil {
		return fmt.Errorf("write default config: %w", err)
	}
	return nil
}
