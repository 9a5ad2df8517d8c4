package config

import (
	"fmt"
	"strings"
)

// validLogLevels defines the allowed log level values.
var validLogLevels = map[string]bool{
	"trace":  true,
	"status": true,
	"info":   true, // accepted alias for status
	"warn":   true,
	"error":  true,
}

// Validate validates a parsed Config, checking that all fields contain
// valid values. It validates:
//   - Log.Level is one of: trace, status, warn, error (if non-empty);
//     "info" is accepted as an alias for status
//   - Run.Env keys are non-empty and contain no "=" character
//
// Returns nil if the config is valid, or an error with a clear message
// indicating which field is invalid.
func Validate(cfg *Config) error {
	if cfg.Log.Level != "" && !validLogLevels[strings.ToLower(cfg.Log.Level)] {
		return fmt.Errorf("log.level: invalid level %q, must be one of: trace, status (or its alias info), warn, error", cfg.Log.Level)
	}

	for k := range cfg.Run.Env {
		if k == "" {
			return fmt.Errorf("run.env: empty variable name")
		}
		if strings.Contains(k, "=") {
			return fmt.Errorf("run.env: variable name %q must not contain '='", k)
		}
	}

	return nil
}
