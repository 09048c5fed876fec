package cmd

import (
	"github.com/spf13/cobra"
)

// verifyCmd represents the verify command.
var verifyCmd = newVerifyCmd()

func newVerifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Run the check sequence and compare it with the declared outcome",
		Long: `Run the check sequence while reporting every step, then compare the run
with its declared outcome (PASS, exit value 4).

Exits 0 when the run matches and 1 otherwise.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			return workflow.Verify()
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(verifyCmd)
}
