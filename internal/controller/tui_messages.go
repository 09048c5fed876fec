package controller

import m "github.com/mouse-blink/intcheck/internal/model"

// Message types.
type stepStartedMsg struct {
	step m.Step
}

type stepCompletedMsg struct {
	result m.StepResult
}

type verdictMsg struct {
	verdict m.Verdict
}
