package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/xdg/runline/internal/patterns"
	"github.com/xdg/runline/internal/rlog"
	"github.com/xdg/runline/internal/runner"
	"github.com/xdg/runline/internal/term"
)

// stdoutIsTerminal reports whether stdout is interactive.
// Tests replace this to exercise both decoration modes.
var stdoutIsTerminal = term.IsTerminal

var streamCmd = &cobra.Command{
	Use:   "stream [flags] -- COMMAND [ARGS...]",
	Short: "Run a command, streaming its output line by line",
	Long: `Run a command and forward its standard output and standard error to the
logging sink as lines are produced. Both streams are drained concurrently
and the exit status is resolved only after both have ended.

Lines can be filtered with --match (regular expression) or --glob (glob
pattern); non-matching lines are dropped. Each stream gets its own prefix;
configured default prefixes apply only when stdout is a terminal, while
--out-prefix and --err-prefix always apply. Standard error can be routed
to trace severity with --err-trace so it only appears with --trace.

A non-zero exit code from the command becomes runline's own exit code.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runStream,
}

var (
	streamFlagDir       string
	streamFlagEnv       []string
	streamFlagMatch     string
	streamFlagGlob      string
	streamFlagOutPrefix string
	streamFlagErrPrefix string
	streamFlagErrTrace  bool
	streamFlagStrict    bool
)

func init() {
	streamCmd.Flags().StringVar(&streamFlagDir, "dir", "", "working directory for the command")
	streamCmd.Flags().StringArrayVar(&streamFlagEnv, "env", nil, "extra environment entry KEY=VALUE (repeatable)")
	streamCmd.Flags().StringVar(&streamFlagMatch, "match", "", "forward only lines matching this regular expression")
	streamCmd.Flags().StringVar(&streamFlagGlob, "glob", "", "forward only lines matching this glob pattern")
	streamCmd.Flags().StringVar(&streamFlagOutPrefix, "out-prefix", "", "prefix for forwarded stdout lines")
	streamCmd.Flags().StringVar(&streamFlagErrPrefix, "err-prefix", "", "prefix for forwarded stderr lines")
	streamCmd.Flags().BoolVar(&streamFlagErrTrace, "err-trace", false, "forward stderr lines at trace severity")
	streamCmd.Flags().BoolVar(&streamFlagStrict, "strict-decode", false, "treat malformed output bytes as fatal")
	rootCmd.AddCommand(streamCmd)
}

// streamPrefix resolves a stream's line prefix. An explicit flag always
// wins; the configured default applies only when stdout is interactive,
// so piped output stays free of decorations.
func streamPrefix(flagVal, cfgVal string, interactive bool) string {
	if flagVal != "" {
		return flagVal
	}
	if !interactive {
		return ""
	}
	return cfgVal
}

// streamMatcher builds the line matcher from flags, or nil when unset.
func streamMatcher() (patterns.Matcher, error) {
	if streamFlagMatch != "" && streamFlagGlob != "" {
		return nil, fmt.Errorf("--match and --glob are mutually exclusive")
	}
	if streamFlagMatch != "" {
		return patterns.NewRegexMatcher(streamFlagMatch)
	}
	if streamFlagGlob != "" {
		return patterns.NewGlobMatcher(streamFlagGlob)
	}
	return nil, nil
}

func runStream(cmd *cobra.Command, args []string) error {
	spec, err := buildSpec(args, streamFlagDir, streamFlagEnv)
	if err != nil {
		return err
	}

	matcher, err := streamMatcher()
	if err != nil {
		return err
	}

	interactive := stdoutIsTerminal()
	outPrefix := streamPrefix(streamFlagOutPrefix, cfg.Stream.StdoutPrefix, interactive)
	errPrefix := streamPrefix(streamFlagErrPrefix, cfg.Stream.StderrPrefix, interactive)

	opts := runner.StreamOptions{
		Stdout: runner.PipeConfig{
			Include:      matcher,
			Prefix:       outPrefix,
			StrictDecode: streamFlagStrict,
		},
		Stderr: runner.PipeConfig{
			Include:      matcher,
			Prefix:       errPrefix,
			Trace:        streamFlagErrTrace || cfg.Stream.StderrTrace,
			StrictDecode: streamFlagStrict,
		},
	}

	err = runner.Stream(cmd.Context(), newManager(), spec, opts, rlog.Default())
	return commandError(err)
}
