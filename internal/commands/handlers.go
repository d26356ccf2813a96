// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// =============================================================================
// MESSAGE TYPES
// =============================================================================

// These messages are sent by command handlers to the chat model.

// ShowHelpMsg carries the one-line command summary.
type ShowHelpMsg struct {
	Text string
}

// QuitMsg asks the application to exit.
type QuitMsg struct{}

// OpenSessionMsg selects a session.
type OpenSessionMsg struct {
	ID string
}

// NewChatMsg creates and selects a new session.
type NewChatMsg struct{}

// ClearConversationMsg empties the displayed session.
type ClearConversationMsg struct{}

// CopyToClipboardMsg copies the last reply.
type CopyToClipboardMsg struct{}

// ExportConversationMsg writes the displayed session to a file.
type ExportConversationMsg struct {
	Format string // "markdown" or "json"
}

// ThemeMsg switches the theme. An empty Mode toggles.
type ThemeMsg struct {
	Mode string
}

// ToggleSidebarMsg collapses or expands the sidebar.
type ToggleSidebarMsg struct{}

// ErrorMsg reports a command that could not run.
type ErrorMsg struct {
	Text string
}

func send(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}

// =============================================================================
// HANDLERS
// =============================================================================

func (r *Registry) handleHelp(ctx *Context, args []string) tea.Cmd {
	return send(ShowHelpMsg{Text: r.Summary()})
}

// Summary lists every command name on one line.
func (r *Registry) Summary() string {
	cmds := r.All()
	names := make([]string, 0, len(cmds))
	for _, c := range cmds {
		names = append(names, c.Name)
	}
	return "Commands: " + strings.Join(names, " ")
}

func handleQuit(ctx *Context, args []string) tea.Cmd {
	return send(QuitMsg{})
}

func handleNew(ctx *Context, args []string) tea.Cmd {
	return send(NewChatMsg{})
}

func handleClear(ctx *Context, args []string) tea.Cmd {
	if ctx.Busy {
		return send(ErrorMsg{Text: "/clear: wait for the reply to arrive"})
	}
	return send(ClearConversationMsg{})
}

func handleCopy(ctx *Context, args []string) tea.Cmd {
	return send(CopyToClipboardMsg{})
}

func handleExport(ctx *Context, args []string) tea.Cmd {
	format := "markdown"
	if len(args) > 0 {
		format = strings.ToLower(args[0])
	}
	return send(ExportConversationMsg{Format: format})
}

func handleTheme(ctx *Context, args []string) tea.Cmd {
	var mode string
	if len(args) > 0 {
		mode = strings.ToLower(args[0])
	}
	return send(ThemeMsg{Mode: mode})
}

func handleSidebar(ctx *Context, args []string) tea.Cmd {
	return send(ToggleSidebarMsg{})
}

// handleOpen matches the argument against session ids first, then against
// title prefixes. Ambiguous prefixes are refused.
func handleOpen(ctx *Context, args []string) tea.Cmd {
	query := strings.TrimSpace(strings.Join(args, " "))
	for _, s := range ctx.Sessions {
		if s.ID == query {
			return send(OpenSessionMsg{ID: s.ID})
		}
	}

	var matches []string
	lower := strings.ToLower(query)
	for _, s := range ctx.Sessions {
		if strings.HasPrefix(strings.ToLower(s.Title), lower) {
			matches = append(matches, s.ID)
		}
	}
	switch len(matches) {
	case 0:
		return send(ErrorMsg{Text: fmt.Sprintf("/open: no session matches %q", query)})
	case 1:
		return send(OpenSessionMsg{ID: matches[0]})
	default:
		return send(ErrorMsg{Text: fmt.Sprintf("/open: %d sessions match %q", len(matches), query)})
	}
}
