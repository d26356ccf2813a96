// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/tracechat-tui/internal/model"
	"github.com/jeranaias/tracechat-tui/internal/trace"
	"github.com/jeranaias/tracechat-tui/internal/ui/styles"
)

// =============================================================================
// THREAD COMPONENT
// =============================================================================

// Thread renders the message log of the active session.
type Thread struct {
	Messages       []model.Message
	Expansions     *trace.Expansions
	Cursor         *trace.Cursor // nil when the thread does not have focus
	Frame          string
	Thinking       *ThinkingIndicator // non-nil while a reply is pending here
	Width          int
	ShowTimestamps bool
	Markdown       bool
}

// Render returns the thread content and the line of the focused step, or -1.
func (th Thread) Render(theme *styles.Theme) (string, int) {
	width := maxInt(th.Width, 30)
	var blocks []string
	focusLine := -1
	offset := 0

	for _, msg := range th.Messages {
		bubble := NewMessageBubble(msg, theme)
		bubble.Width = width
		bubble.ShowTimestamp = th.ShowTimestamps
		bubble.Markdown = th.Markdown
		bubble.Expansions = th.Expansions
		bubble.Cursor = th.Cursor
		bubble.Frame = th.Frame

		rendered, line := bubble.Render()
		if line >= 0 {
			focusLine = offset + line
		}
		blocks = append(blocks, rendered)
		offset += lipgloss.Height(rendered) + 1 // blank separator
	}

	if th.Thinking != nil {
		blocks = append(blocks, th.Thinking.View(theme))
	}

	return strings.Join(blocks, "\n\n"), focusLine
}
