package controller

import (
	"bytes"
	"fmt"

	m "github.com/mouse-blink/intcheck/internal/model"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// SimpleUI implements UI using cobra Command's output writer.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start(_ ...StartOption) error {
	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close() {

}

// Wait returns immediately; plain output needs no user interaction.
func (s *SimpleUI) Wait() {

}

// DisplaySteps prints the step table.
func (s *SimpleUI) DisplaySteps(steps []m.Step) error {
	var tableBuffer bytes.Buffer

	table := newTable(&tableBuffer, []string{"Step", "Check", "Operation", "Postcondition"})
	for _, step := range steps {
		table.Append([]string{
			fmt.Sprintf("%d", step.Index),
			step.Label,
			step.Operation(),
			step.Postcondition(),
		})
	}

	table.SetFooter([]string{"", "", "Total Steps", fmt.Sprintf("%d", len(steps))})
	table.Render()
	s.printf("%s", tableBuffer.String())

	return nil
}

// DisplayStepStarted is a no-op; results are printed on completion.
func (s *SimpleUI) DisplayStepStarted(_ m.Step) {

}

// DisplayStepCompleted prints one line per executed step.
func (s *SimpleUI) DisplayStepCompleted(result m.StepResult) {
	s.printf("step %d %-24s %s = %d  %s\n",
		result.Step.Index,
		result.Step.Operation(),
		result.Step.Target,
		result.Value,
		formatStepStatus(result),
	)
}

// DisplayVerdict prints the verdict table.
func (s *SimpleUI) DisplayVerdict(verdict m.Verdict) error {
	var tableBuffer bytes.Buffer

	table := newTable(&tableBuffer, []string{"", "Outcome", "Retval"})
	table.Append([]string{"expected", string(verdict.Expected.Outcome), fmt.Sprintf("%d", verdict.Expected.RetVal)})
	table.Append([]string{"actual", string(verdict.Trace.Outcome), fmt.Sprintf("%d", verdict.Trace.ExitCode)})
	table.Render()

	s.printf("\n%s", tableBuffer.String())

	if verdict.Err != nil {
		s.printf("error: %v\n", verdict.Err)
	}

	s.printf("%s\n", formatVerdict(verdict))

	return nil
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func newTable(buf *bytes.Buffer, header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(buf)
	table.SetHeader(header)
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	return table
}

func formatStepStatus(result m.StepResult) string {
	switch {
	case !result.Step.Check:
		return "-"
	case result.Passed:
		return "ok"
	default:
		return fmt.Sprintf("FAILED (want %d)", result.Step.Want)
	}
}

func formatVerdict(verdict m.Verdict) string {
	if verdict.Passed {
		return "PASS"
	}

	return "FAIL"
}
