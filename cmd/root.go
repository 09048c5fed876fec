// Package cmd provides the root command and CLI setup for intcheck.
package cmd

import (
	"os"

	"github.com/mouse-blink/intcheck/internal/adapter"
	"github.com/mouse-blink/intcheck/internal/controller"
	"github.com/mouse-blink/intcheck/internal/domain"
	m "github.com/mouse-blink/intcheck/internal/model"
	"github.com/spf13/cobra"
)

var processAdapter adapter.ProcessAdapter
var workflow domain.Workflow
var ui controller.UI

// exitCode is the status the process terminates with once the command returns.
var exitCode int

func init() {
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	processAdapter = adapter.NewLocalProcessAdapter()
	workflow = domain.NewWorkflow(
		ui,
		domain.NewDefaultSequence(),
		domain.DefaultExpectation(),
	)
}

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "intcheck",
		Short: "Integer arithmetic self-check",
		Long: `Intcheck runs a fixed sequence of integer operations (addition,
multiplication, negation, assignment, exact and floor division) and asserts
every intermediate result.

On success the process exits with the final value of i (4) and prints nothing.
A failed assertion aborts the run immediately and exits with status 1.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			code, err := workflow.Run()
			exitCode = code

			return err
		},
	}

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
// It always terminates the process.
func Execute() {
	processAdapter.Exit(execute(rootCmd))
}

func execute(cmd *cobra.Command) int {
	exitCode = 0

	if err := cmd.Execute(); err != nil {
		return m.ExitAssertionFailure
	}

	return exitCode
}
