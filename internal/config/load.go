package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/xdg/runline/internal/pathutil"
)

// Load loads the configuration from the default config path.
// If the config file doesn't exist, it writes and returns DefaultConfig().
// If the file exists but cannot be read or parsed, it returns an error.
// Paths containing ~ are expanded to the actual home directory.
func Load() (*Config, error) {
	return LoadFrom(Path())
}

// LoadFrom loads the configuration from an explicit path, with the same
// semantics as Load except that a missing file does not write defaults.
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			if path == Path() {
				// Best effort; defaults apply whether or not the
				// template could be written.
				_ = WriteDefaultConfig()
			}
			cfg := DefaultConfig()
			expandPaths(cfg)
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	expandPaths(cfg)
	return cfg, nil
}

// expandPaths expands ~ to the home directory in all path fields.
func expandPaths(cfg *Config) {
	cfg.Log.File = pathutil.ExpandHome(cfg.Log.File)
	cfg.Run.Dir = pathutil.ExpandHome(cfg.Run.Dir)
}
