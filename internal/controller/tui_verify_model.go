package controller

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	m "github.com/mouse-blink/intcheck/internal/model"
)

const progressWidth = 40

// verifyModel handles the TUI display while the sequence runs.
type verifyModel struct {
	width       int
	progressBar progress.Model
	total       int
	current     *m.Step
	results     []m.StepResult
	verdict     *m.Verdict
}

func newVerifyModel(total int) verifyModel {
	prog := progress.New(
		progress.WithDefaultGradient(),
		progress.WithWidth(progressWidth),
		progress.WithoutPercentage(),
	)

	return verifyModel{
		progressBar: prog,
		total:       total,
	}
}

func (vm verifyModel) Init() tea.Cmd {
	return nil
}

func (vm verifyModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		vm.width = msg.Width
		vm.progressBar.Width = min(progressWidth, max(msg.Width-4, 10))

	case stepStartedMsg:
		step := msg.step
		vm.current = &step

	case stepCompletedMsg:
		vm.current = nil
		vm.results = append(vm.results, msg.result)

	case verdictMsg:
		verdict := msg.verdict
		vm.verdict = &verdict

		return vm, tea.Quit
	}

	return vm, nil
}

func (vm verifyModel) percent() float64 {
	if vm.total <= 0 {
		return 0
	}

	return min(float64(len(vm.results))/float64(vm.total), 1)
}

func (vm verifyModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Integer Check Sequence"))
	b.WriteString("\n")
	b.WriteString(summaryStyle.Render(fmt.Sprintf("Progress: %s / %s",
		accentStyle.Render(fmt.Sprintf("%d", len(vm.results))),
		accentStyle.Render(fmt.Sprintf("%d", vm.total)),
	)))
	b.WriteString("\n  ")
	b.WriteString(vm.progressBar.ViewAs(vm.percent()))
	b.WriteString("\n\n")

	for _, result := range vm.results {
		detail := fmt.Sprintf("%s = %d", result.Step.Target, result.Value)
		if result.Step.Check && !result.Passed {
			detail += fmt.Sprintf(" (want %d)", result.Step.Want)
		}

		b.WriteString(renderStepLine(result.Step, stepStatus(result), detail))
		b.WriteString("\n")
	}

	if vm.current != nil {
		b.WriteString(renderStepLine(*vm.current, "running", ""))
		b.WriteString("\n")
	}

	if vm.verdict != nil {
		b.WriteString("\n")
		b.WriteString(vm.viewVerdict())
	}

	return b.String()
}

func (vm verifyModel) viewVerdict() string {
	v := vm.verdict

	status := "ok"
	if !v.Passed {
		status = "failed"
	}

	line := fmt.Sprintf("  %s  expected %s/%d, got %s/%d",
		statusStyle(status).Render(formatVerdict(*v)),
		v.Expected.Outcome, v.Expected.RetVal,
		v.Trace.Outcome, v.Trace.ExitCode,
	)

	if v.Err != nil {
		line += "\n  " + grayStyle.Render(v.Err.Error())
	}

	return line + "\n"
}
