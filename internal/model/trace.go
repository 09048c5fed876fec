package model

// Outcome is the overall result of a run.
type Outcome string

const (
	// OutcomePass means every assertion held.
	OutcomePass Outcome = "PASS"
	// OutcomeFail means an assertion failed and the run was aborted.
	OutcomeFail Outcome = "FAIL"
)

// Process exit statuses.
const (
	// ExitAssertionFailure is the status used when a check fails or the run
	// errors before reaching the end of the sequence.
	ExitAssertionFailure = 1
)

// StepResult records the value a step assigned and whether its check held.
type StepResult struct {
	Step   Step
	Value  int32
	Passed bool
}

// Trace is the ordered record of executed steps.
type Trace struct {
	Results  []StepResult
	Outcome  Outcome
	ExitCode int
}

// Expectation is the declared result of a run.
type Expectation struct {
	Outcome Outcome
	RetVal  int
}

// Verdict compares a run against its expectation.
type Verdict struct {
	Expected Expectation
	Trace    Trace
	Err      error
	Passed   bool
}
