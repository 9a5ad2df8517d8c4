// Package cmd implements the CLI commands for runline.
package cmd

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/xdg/runline/internal/config"
	"github.com/xdg/runline/internal/procman"
	"github.com/xdg/runline/internal/rlog"
	"github.com/xdg/runline/internal/term"
	"github.com/xdg/runline/internal/version"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "runline",
	Short: "Run external commands and stream their output",
	Long: `Runline executes external commands and forwards their output through a
leveled logging sink.

'runline stream' drains standard output and standard error concurrently,
line by line, with optional filtering and per-stream prefixes. 'runline run'
executes a command to completion and captures its output whole.`,
	Version:       version.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

var (
	flagConfig  string
	flagSilent  bool
	flagTrace   bool
	flagLogFile string

	// cfg is loaded by the persistent pre-run and read by subcommands.
	cfg *config.Config
)

// newManager creates the process manager used by subcommands.
// Tests replace this to avoid real OS processes.
var newManager = func() procman.Manager {
	return procman.NewOSManager()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "path to config file")
	rootCmd.PersistentFlags().BoolVar(&flagSilent, "silent", false, "suppress normal output")
	rootCmd.PersistentFlags().BoolVar(&flagTrace, "trace", false, "log trace-level detail")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "append logs to this file")
	rootCmd.PersistentPreRunE = setup
}

// setup loads configuration and configures the sink and terminal output.
func setup(_ *cobra.Command, _ []string) error {
	var err error
	if flagConfig != "" {
		cfg, err = config.LoadFrom(flagConfig)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return err
	}

	term.SetSilent(flagSilent || cfg.Run.Silent)

	level := rlog.ParseLevel(cfg.Log.Level)
	if flagTrace {
		level = rlog.LevelTrace
	}
	logFile := cfg.Log.File
	if flagLogFile != "" {
		logFile = flagLogFile
	}
	return rlog.Configure(level, logFile)
}

// Execute runs the root command and returns any error.
// Errors other than exit-code propagation are reported to the user here.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		var exitErr *ExitCodeError
		if !errors.As(err, &exitErr) {
			term.Error("%v", err)
		}
	}
	_ = rlog.Close()
	return err
}
