// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/tracechat-tui/internal/ui/styles"
	"github.com/jeranaias/tracechat-tui/internal/util"
)

// =============================================================================
// HEADER COMPONENT
// =============================================================================

// Header is the title bar above the thread.
type Header struct {
	Title string // Active session title, or the fallback label
	Busy  bool
	Width int
	theme *styles.Theme
}

// NewHeader creates a header.
func NewHeader(theme *styles.Theme) *Header {
	return &Header{Width: 80, theme: theme}
}

// View renders the header.
func (h *Header) View() string {
	t := h.theme

	status := t.OnlineBadge.Render("* Agent Online")
	if h.Busy {
		status = t.TraceRunning.Render("* Agent Working")
	}
	mode := t.ModeBadge.Render("[" + t.Mode.String() + "]")
	right := mode + "  " + status

	inner := maxInt(h.Width-2, 10)
	label := t.HeaderLabel.Render("Session: ")
	room := inner - lipgloss.Width(label) - lipgloss.Width(right) - 2
	title := t.HeaderTitle.Render(util.TruncateWidth(h.Title, maxInt(room, 1)))
	left := label + title

	gap := inner - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return t.Header.Width(inner + 2).Render(left + strings.Repeat(" ", gap) + right)
}
