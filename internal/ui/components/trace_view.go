// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/tracechat-tui/internal/model"
	"github.com/jeranaias/tracechat-tui/internal/trace"
	"github.com/jeranaias/tracechat-tui/internal/ui/styles"
	"github.com/jeranaias/tracechat-tui/internal/util"
)

// TraceTitle heads every rendered trace.
const TraceTitle = "Chain of Thought"

// StepIcon returns the ASCII glyph of a step type.
func StepIcon(t model.StepType) string {
	switch t {
	case model.StepThought:
		return "(?)"
	case model.StepAction:
		return "(!)"
	case model.StepSearch:
		return "(/)"
	case model.StepCommand:
		return "($)"
	case model.StepPlan:
		return "(#)"
	default:
		return "(-)"
	}
}

// Chevron returns the expand marker of a step with details.
func Chevron(expanded bool) string {
	if expanded {
		return "v"
	}
	return ">"
}

// =============================================================================
// TRACE VIEW
// =============================================================================

// TraceView renders the reasoning steps of one assistant message.
type TraceView struct {
	MessageID  string
	Steps      []model.TraceStep
	Expansions *trace.Expansions
	Cursor     *trace.Cursor // nil when the thread is not focused
	Frame      string        // spinner frame for running steps
	Width      int
}

// Render returns the trace and the line (relative to its first line) of the
// focused step, or -1.
func (v TraceView) Render(theme *styles.Theme) (string, int) {
	if len(v.Steps) == 0 {
		return "", -1
	}

	width := maxInt(v.Width, 24)
	lines := []string{theme.TraceHeader.Render(TraceTitle)}
	focusLine := -1

	for _, step := range v.Steps {
		ref := trace.Ref{MessageID: v.MessageID, StepID: step.ID}
		focused := v.Cursor != nil && v.Cursor.Is(ref)
		expanded := v.Expansions.IsExpanded(v.MessageID, step.ID)

		if focused {
			focusLine = len(strings.Split(strings.Join(lines, "\n"), "\n"))
		}

		row := v.renderRow(theme, step, expanded, width)
		style := theme.TraceRow
		if focused {
			style = theme.TraceRowFocused
		}
		lines = append(lines, style.Render(row))

		if expanded && step.HasDetails() {
			lines = append(lines, v.renderDetails(theme, step, width))
		}
	}

	return strings.Join(lines, "\n"), focusLine
}

func (v TraceView) renderRow(theme *styles.Theme, step model.TraceStep, expanded bool, width int) string {
	color := theme.StepColor(step.Type)

	status := v.statusMarker(theme, step.Status)
	icon := lipgloss.NewStyle().Foreground(color).Render(StepIcon(step.Type))
	label := lipgloss.NewStyle().Foreground(color).Bold(true).Render(step.Type.String())

	prefix := status + " " + icon + " " + label + " "
	chevron := ""
	if step.HasDetails() {
		chevron = " " + theme.TraceChevron.Render(Chevron(expanded))
	}

	room := width - lipgloss.Width(prefix) - lipgloss.Width(chevron) - 1
	content := wordWrap(step.Content, maxInt(room, 10))
	if step.Type == model.StepCommand {
		content = highlightLines(content, theme.Mode)
	} else {
		content = theme.TraceContent.Render(content)
	}

	contentLines := strings.Split(content, "\n")
	contentLines[0] = prefix + contentLines[0] + chevron
	pad := strings.Repeat(" ", lipgloss.Width(prefix))
	for i := 1; i < len(contentLines); i++ {
		contentLines[i] = pad + contentLines[i]
	}
	return strings.Join(contentLines, "\n")
}

func (v TraceView) statusMarker(theme *styles.Theme, status model.StepStatus) string {
	var marker string
	switch status {
	case model.StatusRunning:
		frame := v.Frame
		if frame == "" {
			frame = "*"
		}
		return theme.TraceRunning.Render("[" + frame + "]")
	case model.StatusCompleted:
		marker = styles.StatusIndicators.Completed
	case model.StatusError:
		marker = styles.StatusIndicators.Error
	default:
		marker = styles.StatusIndicators.Pending
	}
	return lipgloss.NewStyle().Foreground(theme.StatusColor(status)).Render(marker)
}

func (v TraceView) renderDetails(theme *styles.Theme, step model.TraceStep, width int) string {
	inner := maxInt(width-10, 16)
	var lines []string
	for _, line := range strings.Split(step.Details, "\n") {
		lines = append(lines, util.TruncateWidth(line, inner))
	}
	return theme.TraceDetails.Render(strings.Join(lines, "\n"))
}

// highlightLines highlights each line of already wrapped shell text.
func highlightLines(text string, mode styles.Mode) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = HighlightShell(line, mode)
	}
	return strings.Join(lines, "\n")
}
