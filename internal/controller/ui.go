// Package controller provides output adapters for displaying check sequence results.
package controller

import (
	m "github.com/mouse-blink/intcheck/internal/model"
)

// StartMode defines the mode of operation for the UI.
type StartMode int

// Available StartMode values.
const (
	ModeList StartMode = iota
	ModeVerify
)

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	mode  StartMode
	total int
}

// WithListMode sets the UI to step listing mode.
func WithListMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeList
	}
}

// WithVerifyMode sets the UI to verification mode.
func WithVerifyMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeVerify
	}
}

// WithTotalSteps sets the number of steps the run is expected to execute.
func WithTotalSteps(total int) StartOption {
	return func(c *StartConfig) {
		c.total = total
	}
}

func newStartConfig(options ...StartOption) StartConfig {
	cfg := StartConfig{mode: ModeList}
	for _, opt := range options {
		opt(&cfg)
	}

	return cfg
}

// UI defines the interface for displaying the check sequence and its progress.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	Start(options ...StartOption) error
	Close()
	Wait() // Wait for UI to finish (user closes it)
	DisplaySteps(steps []m.Step) error
	DisplayStepStarted(step m.Step)
	DisplayStepCompleted(result m.StepResult)
	DisplayVerdict(verdict m.Verdict) error
}
