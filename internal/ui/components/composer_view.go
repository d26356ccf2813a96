// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/tracechat-tui/internal/composer"
	"github.com/jeranaias/tracechat-tui/internal/ui/styles"
	"github.com/jeranaias/tracechat-tui/internal/util"
)

// ComposerPlaceholder is shown in an empty composer.
const ComposerPlaceholder = "Ask me anything..."

// FooterBadges are printed under the composer.
var FooterBadges = []string{"Advanced Intelligence", "Secure Sandbox"}

// =============================================================================
// COMPOSER VIEW
// =============================================================================

// ComposerView frames the text area with the pending attachments, the send
// hint and the footer. The editor and attach prompt are rendered by their
// bubbles models and passed in as strings.
type ComposerView struct {
	Files        []composer.FileHandle
	SelectedFile int // chip targeted by remove, -1 for the last one
	Editor       string
	AttachPrompt string // non-empty while asking for a path
	CanSubmit    bool
	Busy         bool
	Focused      bool
	Width        int
}

// View renders the composer.
func (c ComposerView) View(theme *styles.Theme) string {
	width := maxInt(c.Width, 30)
	inner := width - 4

	var lines []string
	if len(c.Files) > 0 {
		lines = append(lines, c.renderChips(theme, inner))
	}
	if c.AttachPrompt != "" {
		lines = append(lines, theme.AttachPrompt.Render("Attach: ")+c.AttachPrompt)
	}
	lines = append(lines, c.Editor)
	lines = append(lines, c.renderActions(theme, inner))

	box := theme.InputContainer
	if c.Focused {
		box = theme.InputContainerFocused
	}
	framed := box.Width(width - 2).Render(strings.Join(lines, "\n"))

	badges := make([]string, len(FooterBadges))
	for i, b := range FooterBadges {
		badges[i] = theme.FooterBadge.Render("* " + b)
	}
	footer := lipgloss.PlaceHorizontal(width, lipgloss.Center, strings.Join(badges, "   "))

	return framed + "\n" + footer
}

func (c ComposerView) renderChips(theme *styles.Theme, width int) string {
	chips := make([]string, len(c.Files))
	for i, f := range c.Files {
		icon := FileIcon(composer.KindOf(f.MimeType(), f.Name()))
		style := theme.FileChip
		if i == c.SelectedFile {
			style = theme.FileChipFocused
		}
		chips[i] = style.Render(fmt.Sprintf("%d %s %s", i+1, icon, util.TruncateWidth(f.Name(), 24)))
	}
	return flowChips(chips, width)
}

func (c ComposerView) renderActions(theme *styles.Theme, width int) string {
	hints := theme.ShortcutKey.Render("ctrl+o") + theme.ShortcutDesc.Render(" attach")
	if len(c.Files) > 0 {
		hints += "  " + theme.ShortcutKey.Render("ctrl+x") + theme.ShortcutDesc.Render(" remove")
	}

	var send string
	switch {
	case c.Busy:
		send = theme.SendDisabled.Render("working...")
	case c.CanSubmit:
		send = theme.SendActive.Render("enter send")
	default:
		send = theme.SendDisabled.Render("enter send")
	}

	gap := width - lipgloss.Width(hints) - lipgloss.Width(send)
	if gap < 1 {
		gap = 1
	}
	return hints + strings.Repeat(" ", gap) + send
}
