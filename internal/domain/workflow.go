package domain

import (
	"errors"
	"fmt"

	"github.com/mouse-blink/intcheck/internal/controller"
	m "github.com/mouse-blink/intcheck/internal/model"
)

// ErrVerdictMismatch is returned by Verify when a run does not match its expectation.
var ErrVerdictMismatch = errors.New("run does not match expectation")

// Workflow defines the operations exposed to the command line.
type Workflow interface {
	Run() (int, error)
	List() error
	Verify() error
}

type workflow struct {
	ui     controller.UI
	seq    Sequence
	expect m.Expectation
}

// NewWorkflow creates a Workflow running seq and reporting through ui.
func NewWorkflow(ui controller.UI, seq Sequence, expect m.Expectation) Workflow {
	return &workflow{
		ui:     ui,
		seq:    seq,
		expect: expect,
	}
}

// DefaultExpectation is the declared result of the default sequence.
func DefaultExpectation() m.Expectation {
	return m.Expectation{Outcome: m.OutcomePass, RetVal: 4}
}

// Run executes the sequence without any output and returns the process exit code.
func (w *workflow) Run() (int, error) {
	trace, err := w.seq.Run(nil)
	if err != nil {
		return m.ExitAssertionFailure, err
	}

	return trace.ExitCode, nil
}

// List displays the steps of the sequence.
func (w *workflow) List() error {
	if err := w.ui.Start(controller.WithListMode()); err != nil {
		return err
	}
	defer w.ui.Close()

	return w.ui.DisplaySteps(w.seq.Steps())
}

// Verify runs the sequence while reporting each step and compares the result
// against the declared expectation.
func (w *workflow) Verify() error {
	steps := w.seq.Steps()

	if err := w.ui.Start(controller.WithVerifyMode(), controller.WithTotalSteps(len(steps))); err != nil {
		return err
	}
	defer w.ui.Close()

	trace, runErr := w.seq.Run(uiObserver{ui: w.ui})
	verdict := Judge(w.expect, trace, runErr)

	if err := w.ui.DisplayVerdict(verdict); err != nil {
		return err
	}

	w.ui.Wait()

	if !verdict.Passed {
		return fmt.Errorf("%w: expected %s/%d, got %s/%d",
			ErrVerdictMismatch, w.expect.Outcome, w.expect.RetVal, trace.Outcome, trace.ExitCode)
	}

	return nil
}

// Judge builds the verdict of a run. Errors other than an assertion failure
// never satisfy an expectation.
func Judge(expect m.Expectation, trace m.Trace, runErr error) m.Verdict {
	verdict := m.Verdict{Expected: expect, Trace: trace, Err: runErr}

	var failure *m.AssertionFailure
	if runErr != nil && !errors.As(runErr, &failure) {
		return verdict
	}

	verdict.Passed = trace.Outcome == expect.Outcome &&
		(trace.Outcome != m.OutcomePass || trace.ExitCode == expect.RetVal)

	return verdict
}

// uiObserver forwards sequence progress to the UI.
type uiObserver struct {
	ui controller.UI
}

func (o uiObserver) StepStarted(step m.Step) {
	o.ui.DisplayStepStarted(step)
}

func (o uiObserver) StepCompleted(result m.StepResult) {
	o.ui.DisplayStepCompleted(result)
}
