// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/tracechat-tui/internal/composer"
	"github.com/jeranaias/tracechat-tui/internal/model"
	"github.com/jeranaias/tracechat-tui/internal/trace"
	"github.com/jeranaias/tracechat-tui/internal/ui/styles"
	"github.com/jeranaias/tracechat-tui/internal/util"
)

// FileIcon returns the chip glyph for an attachment kind.
func FileIcon(k composer.Kind) string {
	switch k {
	case composer.KindImage:
		return "[img]"
	case composer.KindCode:
		return "[</>]"
	default:
		return "[doc]"
	}
}

// FileChip renders one attachment chip.
func FileChip(theme *styles.Theme, a model.Attachment, focused bool) string {
	icon := FileIcon(kindOfAttachment(a))
	style := theme.FileChip
	if focused {
		style = theme.FileChipFocused
	}
	return style.Render(icon + " " + util.TruncateWidth(a.Name, 24))
}

// FileChips renders attachment chips side by side, wrapping to width.
func FileChips(theme *styles.Theme, files []model.Attachment, width, focused int) string {
	chips := make([]string, len(files))
	for i, f := range files {
		chips[i] = FileChip(theme, f, i == focused)
	}
	return flowChips(chips, width)
}

// flowChips lays chips out left to right, starting a new row when the next
// chip would overflow width.
func flowChips(chips []string, width int) string {
	var rows, row []string
	rowWidth := 0
	for _, chip := range chips {
		w := lipgloss.Width(chip)
		if len(row) > 0 && rowWidth+1+w > width {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row, rowWidth = nil, 0
		}
		if len(row) > 0 {
			row = append(row, " ")
			rowWidth++
		}
		row = append(row, chip)
		rowWidth += w
	}
	if len(row) > 0 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	return strings.Join(rows, "\n")
}

// =============================================================================
// MESSAGE BUBBLE COMPONENT
// =============================================================================

// MessageBubble renders one message of the thread. User messages sit on the
// right; agent messages sit on the left with their trace above the content.
type MessageBubble struct {
	Message       model.Message
	Width         int
	ShowTimestamp bool
	Markdown      bool

	// Trace state, only read for agent messages.
	Expansions *trace.Expansions
	Cursor     *trace.Cursor
	Frame      string

	theme *styles.Theme
}

// NewMessageBubble creates a bubble with timestamps on.
func NewMessageBubble(msg model.Message, theme *styles.Theme) *MessageBubble {
	return &MessageBubble{
		Message:       msg,
		Width:         80,
		ShowTimestamp: true,
		theme:         theme,
	}
}

// View renders the bubble.
func (b *MessageBubble) View() string {
	out, _ := b.Render()
	return out
}

// Render returns the bubble and the line of the focused trace step, or -1.
func (b *MessageBubble) Render() (string, int) {
	if b.Message.IsUser() {
		return b.renderUser(), -1
	}
	return b.renderAssistant()
}

func (b *MessageBubble) renderUser() string {
	t := b.theme
	maxContent := maxInt(b.Width*3/4-4, 16)

	var parts []string
	if b.Message.HasFiles() {
		parts = append(parts, FileChips(t, b.Message.Files, maxContent, -1))
	}
	if content := b.Message.Content; content != "" {
		wrapped := wordWrap(content, maxContent)
		parts = append(parts, t.UserBubble.Render(t.MessageText.Render(wrapped)))
	}

	meta := t.UserAvatar.Render(model.RoleUser.DisplayName())
	if b.ShowTimestamp {
		if clock := formatClock(b.Message.Timestamp); clock != "" {
			meta = t.Timestamp.Render(clock) + "  " + meta
		}
	}

	body := lipgloss.JoinVertical(lipgloss.Right, append([]string{meta}, parts...)...)
	return lipgloss.PlaceHorizontal(b.Width, lipgloss.Right, body)
}

func (b *MessageBubble) renderAssistant() (string, int) {
	t := b.theme
	contentWidth := maxInt(b.Width-6, 20)

	meta := t.AssistantAvatar.Render("AI") + " " + t.MessageText.Bold(true).Render(model.RoleAssistant.DisplayName())
	if b.ShowTimestamp {
		if clock := formatClock(b.Message.Timestamp); clock != "" {
			meta += "  " + t.Timestamp.Render(clock)
		}
	}

	lines := []string{meta}
	focusLine := -1

	if b.Message.HasTrace() {
		tv := TraceView{
			MessageID:  b.Message.ID,
			Steps:      b.Message.Steps,
			Expansions: b.Expansions,
			Cursor:     b.Cursor,
			Frame:      b.Frame,
			Width:      contentWidth,
		}
		rendered, line := tv.Render(t)
		rendered = indent(rendered, 2)
		if line >= 0 {
			focusLine = lipgloss.Height(strings.Join(lines, "\n")) + line
		}
		lines = append(lines, rendered, "")
	}

	var content string
	if b.Markdown {
		content = RenderMarkdown(b.Message.Content, contentWidth, t.Mode)
	} else {
		content = t.MessageText.Render(wordWrap(b.Message.Content, contentWidth))
	}
	lines = append(lines, t.AssistantBubble.Render(content))

	return strings.Join(lines, "\n"), focusLine
}

func kindOfAttachment(a model.Attachment) composer.Kind {
	return composer.KindOf(a.MimeType, a.Name)
}
