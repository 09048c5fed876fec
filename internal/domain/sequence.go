package domain

import (
	"fmt"

	m "github.com/mouse-blink/intcheck/internal/model"
)

// Observer is notified around every executed step.
type Observer interface {
	StepStarted(step m.Step)
	StepCompleted(result m.StepResult)
}

// Sequence runs an ordered list of assignments, asserting after each one, and
// reports the value of its exit variable.
type Sequence interface {
	Steps() []m.Step
	Run(observer Observer) (m.Trace, error)
}

type sequence struct {
	steps []m.Step
	exit  m.Var
}

// NewSequence creates a Sequence over steps whose exit code is the final value of exit.
func NewSequence(steps []m.Step, exit m.Var) Sequence {
	return &sequence{
		steps: append([]m.Step(nil), steps...),
		exit:  exit,
	}
}

// NewDefaultSequence creates the Sequence of DefaultSteps exiting with i.
func NewDefaultSequence() Sequence {
	return NewSequence(DefaultSteps(), m.VarI)
}

// DefaultSteps returns the fixed integer check sequence.
func DefaultSteps() []m.Step {
	i, a := m.Ref(m.VarI), m.Ref(m.VarA)

	return []m.Step{
		{Index: 1, Label: "init", Target: m.VarI, Expr: m.Lit(0), Check: true, Want: 0},
		{Index: 2, Label: "addition", Target: m.VarI, Expr: m.Binary{Op: m.OpAdd, X: i, Y: m.Lit(2)}, Check: true, Want: 2},
		{Index: 3, Label: "multiplication", Target: m.VarI, Expr: m.Binary{Op: m.OpMul, X: i, Y: i}, Check: true, Want: 4},
		{Index: 4, Label: "init", Target: m.VarA, Expr: m.Lit(-2)},
		{
			Index:  5,
			Label:  "addition",
			Target: m.VarA,
			Expr:   m.Binary{Op: m.OpAdd, X: m.Binary{Op: m.OpAdd, X: a, Y: i}, Y: m.Lit(-2)},
			Check:  true,
			Want:   0,
		},
		{Index: 6, Label: "negation", Target: m.VarA, Expr: m.Unary{Op: m.OpNeg, X: a}, Check: true, Want: 0},
		{Index: 7, Label: "assignment", Target: m.VarA, Expr: i, Check: true, Want: 4},
		{Index: 8, Label: "exact division", Target: m.VarA, Expr: m.Binary{Op: m.OpQuo, X: a, Y: i}, Check: true, Want: 1},
		{Index: 9, Label: "floor division", Target: m.VarA, Expr: m.Binary{Op: m.OpFloorQuo, X: a, Y: i}, Check: true, Want: 0},
	}
}

func (s *sequence) Steps() []m.Step {
	return append([]m.Step(nil), s.steps...)
}

// Run executes the steps in order. The first failed check aborts the run with
// an *m.AssertionFailure; the trace holds every step executed up to and
// including the failing one.
func (s *sequence) Run(observer Observer) (m.Trace, error) {
	regs := newRegisters()
	trace := m.Trace{
		Results: make([]m.StepResult, 0, len(s.steps)),
		Outcome: m.OutcomeFail,
	}

	for _, step := range s.steps {
		if observer != nil {
			observer.StepStarted(step)
		}

		value, err := regs.eval(step.Expr)
		if err != nil {
			return trace, fmt.Errorf("step %d (%s): %w", step.Index, step.Operation(), err)
		}

		regs.set(step.Target, value)

		result := m.StepResult{Step: step, Value: value, Passed: !step.Check || value == step.Want}
		trace.Results = append(trace.Results, result)

		if observer != nil {
			observer.StepCompleted(result)
		}

		if !result.Passed {
			return trace, &m.AssertionFailure{Step: step, Want: step.Want, Got: value}
		}
	}

	exit, err := regs.get(s.exit)
	if err != nil {
		return trace, fmt.Errorf("exit: %w", err)
	}

	trace.Outcome = m.OutcomePass
	trace.ExitCode = int(exit)

	return trace, nil
}
