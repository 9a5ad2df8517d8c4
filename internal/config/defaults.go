package config

// DefaultConfig returns a Config with defaults populated.
// Defaults keep runline quiet: no file logging, status-level sink,
// commands run where runline runs, stderr lines prefixed so they are
// distinguishable from stdout in the combined sink output.
func DefaultConfig() *Config {
	return &Config{
		Log: LogConfig{
			Level: "status",
		},
		Stream: StreamConfig{
			StderrPrefix: "! ",
		},
	}
}
