package cmd

import (
	"github.com/spf13/cobra"
)

// stepsCmd represents the steps command.
var stepsCmd = newStepsCmd()

func newStepsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "steps",
		Short: "List the check sequence",
		Long:  "List every step of the check sequence with the condition asserted after it.",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return workflow.List()
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(stepsCmd)
}
