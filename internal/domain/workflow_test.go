package domain

import (
	"errors"
	"testing"

	controllermocks "github.com/mouse-blink/intcheck/internal/controller/mocks"
	m "github.com/mouse-blink/intcheck/internal/model"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func brokenSteps() []m.Step {
	steps := DefaultSteps()
	steps[7].Want = 2

	return steps
}

func TestWorkflow_Run(t *testing.T) {
	ui := controllermocks.NewMockUI(t)
	wf := NewWorkflow(ui, NewDefaultSequence(), DefaultExpectation())

	code, err := wf.Run()
	require.NoError(t, err)
	require.Equal(t, 4, code)
}

func TestWorkflow_Run_AssertionFailure(t *testing.T) {
	ui := controllermocks.NewMockUI(t)
	wf := NewWorkflow(ui, NewSequence(brokenSteps(), m.VarI), DefaultExpectation())

	code, err := wf.Run()
	require.Equal(t, m.ExitAssertionFailure, code)

	var failure *m.AssertionFailure
	require.True(t, errors.As(err, &failure))
	require.Equal(t, 8, failure.Step.Index)
}

func TestWorkflow_List(t *testing.T) {
	ui := controllermocks.NewMockUI(t)
	wf := NewWorkflow(ui, NewDefaultSequence(), DefaultExpectation())

	ui.EXPECT().Start(mock.Anything).Return(nil)
	ui.EXPECT().DisplaySteps(DefaultSteps()).Return(nil)
	ui.EXPECT().Close().Return()

	require.NoError(t, wf.List())
}

func TestWorkflow_List_StartError(t *testing.T) {
	ui := controllermocks.NewMockUI(t)
	wf := NewWorkflow(ui, NewDefaultSequence(), DefaultExpectation())

	boom := errors.New("boom")
	ui.EXPECT().Start(mock.Anything).Return(boom)

	require.ErrorIs(t, wf.List(), boom)
}

func TestWorkflow_Verify_Pass(t *testing.T) {
	ui := controllermocks.NewMockUI(t)
	wf := NewWorkflow(ui, NewDefaultSequence(), DefaultExpectation())

	var started, completed []int

	ui.EXPECT().Start(mock.Anything, mock.Anything).Return(nil)
	ui.EXPECT().DisplayStepStarted(mock.Anything).Run(func(step m.Step) {
		started = append(started, step.Index)
	}).Return()
	ui.EXPECT().DisplayStepCompleted(mock.Anything).Run(func(result m.StepResult) {
		completed = append(completed, result.Step.Index)
	}).Return()
	ui.EXPECT().DisplayVerdict(mock.MatchedBy(func(v m.Verdict) bool {
		return v.Passed && v.Err == nil && v.Trace.ExitCode == 4 && v.Trace.Outcome == m.OutcomePass
	})).Return(nil)
	ui.EXPECT().Wait().Return()
	ui.EXPECT().Close().Return()

	require.NoError(t, wf.Verify())
	require.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9}, started)
	require.Equal(t, started, completed)
}

func TestWorkflow_Verify_Mismatch(t *testing.T) {
	ui := controllermocks.NewMockUI(t)
	wf := NewWorkflow(ui, NewSequence(brokenSteps(), m.VarI), DefaultExpectation())

	ui.EXPECT().Start(mock.Anything, mock.Anything).Return(nil)
	ui.EXPECT().DisplayStepStarted(mock.Anything).Return().Times(8)
	ui.EXPECT().DisplayStepCompleted(mock.Anything).Return().Times(8)
	ui.EXPECT().DisplayVerdict(mock.MatchedBy(func(v m.Verdict) bool {
		return !v.Passed && v.Trace.Outcome == m.OutcomeFail && len(v.Trace.Results) == 8
	})).Return(nil)
	ui.EXPECT().Wait().Return()
	ui.EXPECT().Close().Return()

	require.ErrorIs(t, wf.Verify(), ErrVerdictMismatch)
}

func TestWorkflow_Verify_ExpectedFailure(t *testing.T) {
	ui := controllermocks.NewMockUI(t)
	expect := m.Expectation{Outcome: m.OutcomeFail}
	wf := NewWorkflow(ui, NewSequence(brokenSteps(), m.VarI), expect)

	ui.EXPECT().Start(mock.Anything, mock.Anything).Return(nil)
	ui.EXPECT().DisplayStepStarted(mock.Anything).Return()
	ui.EXPECT().DisplayStepCompleted(mock.Anything).Return()
	ui.EXPECT().DisplayVerdict(mock.Anything).Return(nil)
	ui.EXPECT().Wait().Return()
	ui.EXPECT().Close().Return()

	require.NoError(t, wf.Verify())
}

func TestWorkflow_Verify_DisplayError(t *testing.T) {
	ui := controllermocks.NewMockUI(t)
	wf := NewWorkflow(ui, NewDefaultSequence(), DefaultExpectation())

	boom := errors.New("boom")

	ui.EXPECT().Start(mock.Anything, mock.Anything).Return(nil)
	ui.EXPECT().DisplayStepStarted(mock.Anything).Return()
	ui.EXPECT().DisplayStepCompleted(mock.Anything).Return()
	ui.EXPECT().DisplayVerdict(mock.Anything).Return(boom)
	ui.EXPECT().Close().Return()

	require.ErrorIs(t, wf.Verify(), boom)
}

func TestJudge(t *testing.T) {
	pass := m.Expectation{Outcome: m.OutcomePass, RetVal: 4}
	fail := m.Expectation{Outcome: m.OutcomeFail}
	assertion := &m.AssertionFailure{}

	tests := []struct {
		name   string
		expect m.Expectation
		trace  m.Trace
		err    error
		want   bool
	}{
		{"pass matches", pass, m.Trace{Outcome: m.OutcomePass, ExitCode: 4}, nil, true},
		{"wrong retval", pass, m.Trace{Outcome: m.OutcomePass, ExitCode: 3}, nil, false},
		{"unexpected failure", pass, m.Trace{Outcome: m.OutcomeFail}, assertion, false},
		{"expected failure", fail, m.Trace{Outcome: m.OutcomeFail}, assertion, true},
		{"expected failure ignores retval", m.Expectation{Outcome: m.OutcomeFail, RetVal: 4}, m.Trace{Outcome: m.OutcomeFail}, assertion, true},
		{"runtime error never matches", fail, m.Trace{Outcome: m.OutcomeFail}, ErrUndefinedVariable, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verdict := Judge(tt.expect, tt.trace, tt.err)
			require.Equal(t, tt.want, verdict.Passed)
			require.Equal(t, tt.expect, verdict.Expected)
			require.Equal(t, tt.err, verdict.Err)
		})
	}
}
