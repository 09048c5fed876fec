package cmd

import (
	"bytes"
	"strings"
	"testing"

	adaptermocks "github.com/mouse-blink/intcheck/internal/adapter/mocks"
	"github.com/mouse-blink/intcheck/internal/controller"
	"github.com/mouse-blink/intcheck/internal/domain"
	domainmocks "github.com/mouse-blink/intcheck/internal/domain/mocks"
	m "github.com/mouse-blink/intcheck/internal/model"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

// useWorkflow swaps the global workflow for the duration of the test.
func useWorkflow(t *testing.T, wf domain.Workflow) {
	t.Helper()

	originalWorkflow := workflow
	workflow = wf

	t.Cleanup(func() { workflow = originalWorkflow })
}

// useProcess swaps the global process adapter for the duration of the test.
func useProcess(t *testing.T, p *adaptermocks.MockProcessAdapter) {
	t.Helper()

	originalProcess := processAdapter
	processAdapter = p

	t.Cleanup(func() { processAdapter = originalProcess })
}

func newTestCommand(t *testing.T, build func() *cobra.Command, args ...string) (*cobra.Command, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()

	var out, errOut bytes.Buffer

	cmd := build()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)

	return cmd, &out, &errOut
}

func TestRootCmd_ExitsWithRunCode(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	useWorkflow(t, mockWorkflow)

	mockWorkflow.EXPECT().Run().Return(4, nil)

	cmd, out, _ := newTestCommand(t, newRootCmd)

	require.Equal(t, 4, execute(cmd))
	require.Empty(t, out.String())
}

func TestRootCmd_AssertionFailure(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	useWorkflow(t, mockWorkflow)

	failure := &m.AssertionFailure{
		Step: domain.DefaultSteps()[2],
		Want: 4,
		Got:  5,
	}
	mockWorkflow.EXPECT().Run().Return(m.ExitAssertionFailure, failure)

	cmd, out, errOut := newTestCommand(t, newRootCmd)

	require.Equal(t, m.ExitAssertionFailure, execute(cmd))
	require.Empty(t, out.String())
	require.Contains(t, errOut.String(), "assertion failed at step 3")
	require.NotContains(t, errOut.String(), "Usage:")
}

func TestRootCmd_RejectsArgs(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	useWorkflow(t, mockWorkflow)

	cmd, _, _ := newTestCommand(t, newRootCmd, "extra")

	require.Equal(t, m.ExitAssertionFailure, execute(cmd))
}

func TestRootCmd_HasSubcommands(t *testing.T) {
	names := make([]string, 0)
	for _, sub := range rootCmd.Commands() {
		names = append(names, sub.Name())
	}

	require.Contains(t, names, "steps")
	require.Contains(t, names, "verify")
}

func TestExecute_DefaultSequenceExitsWithFour(t *testing.T) {
	var out bytes.Buffer

	ui := controller.NewSimpleUI(rootCmd)
	useWorkflow(t, domain.NewWorkflow(ui, domain.NewDefaultSequence(), domain.DefaultExpectation()))

	mockProcess := adaptermocks.NewMockProcessAdapter(t)
	useProcess(t, mockProcess)
	mockProcess.EXPECT().Exit(4).Return()

	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs([]string{})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	Execute()

	require.Empty(t, out.String())
}

func TestExecute_VerifySubcommandExitsZero(t *testing.T) {
	var out bytes.Buffer

	ui := controller.NewSimpleUI(rootCmd)
	useWorkflow(t, domain.NewWorkflow(ui, domain.NewDefaultSequence(), domain.DefaultExpectation()))

	mockProcess := adaptermocks.NewMockProcessAdapter(t)
	useProcess(t, mockProcess)
	mockProcess.EXPECT().Exit(0).Return()

	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs([]string{"verify"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	Execute()

	output := out.String()
	require.True(t, strings.HasSuffix(strings.TrimSpace(output), "PASS"), "output:\n%s", output)
	require.Contains(t, output, "step 9")
}
