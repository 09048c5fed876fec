package model

import "fmt"

// AssertionFailure is raised when a step's postcondition does not hold.
type AssertionFailure struct {
	Step Step
	Want int32
	Got  int32
}

func (e *AssertionFailure) Error() string {
	return fmt.Sprintf("assertion failed at step %d (%s): %s == %d, got %d",
		e.Step.Index, e.Step.Operation(), e.Step.Target, e.Want, e.Got)
}
