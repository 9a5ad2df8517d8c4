package cmd

import (
	"github.com/spf13/cobra"

	"github.com/xdg/runline/internal/runner"
	"github.com/xdg/runline/internal/term"
)

var runCmd = &cobra.Command{
	Use:   "run [flags] -- COMMAND [ARGS...]",
	Short: "Run a command to completion and capture its output",
	Long: `Run a command to completion, capture its standard output and standard
error, and echo the captured output unless --silent is set.

The command's output is read only after it terminates, so this suits
commands with bounded output. Use 'runline stream' for long-running
commands whose output should appear as it is produced.

A non-zero exit code from the command becomes runline's own exit code.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRun,
}

var (
	runFlagDir string
	runFlagEnv []string
)

func init() {
	runCmd.Flags().StringVar(&runFlagDir, "dir", "", "working directory for the command")
	runCmd.Flags().StringArrayVar(&runFlagEnv, "env", nil, "extra environment entry KEY=VALUE (repeatable)")
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	spec, err := buildSpec(args, runFlagDir, runFlagEnv)
	if err != nil {
		return err
	}

	_, err = runner.Run(cmd.Context(), newManager(), spec, term.IsSilent())
	return commandError(err)
}
