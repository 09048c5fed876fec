package controller

import (
	"fmt"
	"io"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	m "github.com/mouse-blink/intcheck/internal/model"
)

// TUI implements UI using Bubble Tea for interactive display.
type TUI struct {
	output  io.Writer
	mu      sync.Mutex
	program *tea.Program
	done    chan struct{}
	runErr  error
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// Start initializes the UI. Verify mode runs a Bubble Tea program fed by the
// Display* calls; list mode renders statically.
func (t *TUI) Start(options ...StartOption) error {
	cfg := newStartConfig(options...)
	if cfg.mode != ModeVerify {
		return nil
	}

	return t.startWithModel(newVerifyModel(cfg.total))
}

func (t *TUI) startWithModel(model tea.Model) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.program != nil {
		return fmt.Errorf("tui already started")
	}

	t.program = tea.NewProgram(model, tea.WithOutput(t.output), tea.WithInput(nil))
	t.done = make(chan struct{})

	go func(program *tea.Program, done chan struct{}) {
		_, err := program.Run()

		t.mu.Lock()
		t.runErr = err
		t.mu.Unlock()

		close(done)
	}(t.program, t.done)

	return nil
}

func (t *TUI) send(msg tea.Msg) {
	t.mu.Lock()
	program := t.program
	t.mu.Unlock()

	if program == nil {
		return
	}

	program.Send(msg)
}

// Wait blocks until the running program exits.
func (t *TUI) Wait() {
	t.mu.Lock()
	done := t.done
	t.mu.Unlock()

	if done != nil {
		<-done
	}
}

// Close stops the running program and waits for it to exit.
func (t *TUI) Close() {
	t.mu.Lock()
	program, done := t.program, t.done
	t.program, t.done = nil, nil
	t.mu.Unlock()

	if program == nil {
		return
	}

	program.Quit()
	<-done
}

// Err returns the error the program exited with, if any.
func (t *TUI) Err() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.runErr
}

// DisplaySteps renders the step listing.
func (t *TUI) DisplaySteps(steps []m.Step) error {
	_, err := fmt.Fprint(t.output, renderStepTable(steps))

	return err
}

// DisplayStepStarted marks a step as running.
func (t *TUI) DisplayStepStarted(step m.Step) {
	t.send(stepStartedMsg{step: step})
}

// DisplayStepCompleted records the result of a step.
func (t *TUI) DisplayStepCompleted(result m.StepResult) {
	t.send(stepCompletedMsg{result: result})
}

// DisplayVerdict shows the verdict; the program exits after rendering it.
func (t *TUI) DisplayVerdict(verdict m.Verdict) error {
	t.send(verdictMsg{verdict: verdict})

	return nil
}
