package model

import "fmt"

// Step is a single assignment of the check sequence, optionally followed by
// an assertion on the assigned variable.
type Step struct {
	Index  int
	Label  string
	Target Var
	Expr   Expr
	// Check is false for steps that only assign.
	Check bool
	Want  int32
}

// Operation renders the assignment, e.g. "i := i + 2".
func (s Step) Operation() string {
	return fmt.Sprintf("%s := %s", s.Target, s.Expr)
}

// Postcondition renders the asserted condition, or "-" when the step has none.
func (s Step) Postcondition() string {
	if !s.Check {
		return "-"
	}

	return fmt.Sprintf("%s == %d", s.Target, s.Want)
}
