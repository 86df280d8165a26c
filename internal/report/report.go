// Package report renders action results for the terminal.
package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/kobibe/tibco-developer-hub/internal/model"
)

// Outcome renders the summary of a create-yaml run.
func Outcome(taskID string, o model.Outcome) string {
	sections := []string{
		titleStyle.Render(fmt.Sprintf("create-yaml • %s", taskID)),
		row("status", fmt.Sprintf("%s %s", OutcomeIcon(o.Status), o.Status)),
		row("file", o.OutputPath),
	}
	if o.Duration > 0 {
		sections = append(sections, row("took", o.Duration.Truncate(time.Millisecond).String()))
	}
	if o.Err != nil {
		sections = append(sections, row("error", o.Err.Error()))
		if o.Status == model.StatusFailedSoft {
			sections = append(sections, pendingStyle.Render("failOnError is false, the task continues"))
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// Preview renders a dry-run result including the colored diff.
func Preview(taskID string, p *model.Preview) string {
	if p == nil {
		return ""
	}

	sections := []string{
		titleStyle.Render(fmt.Sprintf("create-yaml (dry run) • %s", taskID)),
		row("status", fmt.Sprintf("%s %s", PreviewIcon(p.Status), p.Status)),
		row("file", p.OutputPath),
	}
	if strings.TrimSpace(p.Diff) != "" {
		sections = append(sections, sectionStyle.Render("Diff"), renderDiff(p.Diff))
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// OutcomeIcon returns the glyph for an outcome status.
func OutcomeIcon(status model.Status) string {
	switch status {
	case model.StatusSucceeded:
		return successStyle.Render("✓")
	case model.StatusFailedSoft:
		return warningStyle.Render("!")
	case model.StatusFailedHard:
		return failureStyle.Render("✗")
	default:
		return pendingStyle.Render("•")
	}
}

// PreviewIcon returns the glyph for a preview status.
func PreviewIcon(status model.PreviewStatus) string {
	switch status {
	case model.StatusWouldCreate:
		return successStyle.Render("+")
	case model.StatusWouldUpdate:
		return warningStyle.Render("~")
	default:
		return pendingStyle.Render("=")
	}
}

func row(label, value string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render(label), value)
}

func renderDiff(diff string) string {
	lines := strings.Split(strings.TrimRight(diff, "\n"), "\n")
	for i, line := range lines {
		switch {
		case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
			lines[i] = pendingStyle.Render(line)
		case strings.HasPrefix(line, "@@"):
			lines[i] = hunkStyle.Render(line)
		case strings.HasPrefix(line, "+"):
			lines[i] = addStyle.Render(line)
		case strings.HasPrefix(line, "-"):
			lines[i] = removeStyle.Render(line)
		}
	}
	return strings.Join(lines, "\n")
}
