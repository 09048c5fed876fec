package controller

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	m "github.com/mouse-blink/intcheck/internal/model"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true).
			Padding(1, 0, 0, 2)

	summaryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Padding(0, 0, 1, 2)

	indexStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11")).
			Bold(true).
			Width(4).
			Align(lipgloss.Right)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("5")).
			Width(16)

	operationStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("14")).
			Width(22)

	accentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	grayStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

var statusColorMap = map[string]lipgloss.Color{
	"ok":      lipgloss.Color("2"), // Green
	"failed":  lipgloss.Color("1"), // Red
	"assign":  lipgloss.Color("8"), // Gray
	"running": lipgloss.Color("6"), // Cyan
}

func statusStyle(status string) lipgloss.Style {
	color, ok := statusColorMap[status]
	if !ok {
		color = lipgloss.Color("8")
	}

	return lipgloss.NewStyle().Foreground(color).Bold(true)
}

func stepStatus(result m.StepResult) string {
	switch {
	case !result.Step.Check:
		return "assign"
	case result.Passed:
		return "ok"
	default:
		return "failed"
	}
}

// renderStepLine renders a single step with its status and, when known, the
// assigned value.
func renderStepLine(step m.Step, status string, detail string) string {
	line := fmt.Sprintf("%s  %s  %s  %s",
		indexStyle.Render(fmt.Sprintf("%d", step.Index)),
		labelStyle.Render(step.Label),
		operationStyle.Render(step.Operation()),
		statusStyle(status).Render(status),
	)

	if detail != "" {
		line += "  " + grayStyle.Render(detail)
	}

	return line
}

// renderStepTable renders the full step listing.
func renderStepTable(steps []m.Step) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Integer Check Sequence"))
	b.WriteString("\n")
	b.WriteString(summaryStyle.Render(fmt.Sprintf("Steps: %s", accentStyle.Render(fmt.Sprintf("%d", len(steps))))))
	b.WriteString("\n")

	for _, step := range steps {
		b.WriteString(renderStepLine(step, "", step.Postcondition()))
		b.WriteString("\n")
	}

	return b.String()
}
