// Package config provides configuration types for runline settings.
// These types map to the YAML configuration file.
package config

// Config represents the top-level configuration for runline.
// It is typically stored at ~/.config/runline/config.yaml.
type Config struct {
	Log    LogConfig    `yaml:"log,omitempty"`
	Run    RunConfig    `yaml:"run,omitempty"`
	Stream StreamConfig `yaml:"stream,omitempty"`
}

// LogConfig contains logging sink settings.
type LogConfig struct {
	// File is the log file path; empty disables file logging.
	File string `yaml:"file,omitempty"`
	// Level is the minimum severity: trace, status, warn, or error.
	Level string `yaml:"level,omitempty"`
}

// RunConfig specifies defaults applied to every command invocation.
type RunConfig struct {
	// Dir is the default working directory for commands.
	Dir string `yaml:"dir,omitempty"`
	// Env entries are merged over the parent environment.
	Env map[string]string `yaml:"env,omitempty"`
	// Silent suppresses echo of captured output in synchronous runs.
	Silent bool `yaml:"silent,omitempty"`
}

// StreamConfig specifies defaults for streamed runs.
type StreamConfig struct {
	// StdoutPrefix is prepended to forwarded standard-output lines.
	StdoutPrefix string `yaml:"stdout_prefix,omitempty"`
	// StderrPrefix is prepended to forwarded standard-error lines.
	StderrPrefix string `yaml:"stderr_prefix,omitempty"`
	// StderrTrace routes standard-error lines to trace severity.
	StderrTrace bool `yaml:"stderr_trace,omitempty"`
}
