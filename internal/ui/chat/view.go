// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/tracechat-tui/internal/commands"
	"github.com/jeranaias/tracechat-tui/internal/ui/components"
)

// =============================================================================
// VIEW
// =============================================================================

// View renders the screen: sidebar on the left; header, thread, composer and
// status bar stacked on the right.
func (m Model) View() string {
	main := lipgloss.JoinVertical(lipgloss.Left,
		m.headerView(),
		m.threadAreaView(),
		m.composerView(),
		m.statusView(),
	)
	return lipgloss.JoinHorizontal(lipgloss.Top, m.sidebarView(), main)
}

func (m Model) sidebarView() string {
	sb := components.NewSidebar(m.theme)
	sb.Sessions = m.svc.Sessions()
	sb.ActiveID = m.svc.ActiveID()
	sb.Cursor = m.sidebarCursor
	sb.Focused = m.focus == FocusSidebar
	sb.Collapsed = m.sidebarCollapsed
	sb.Height = m.height
	return sb.View()
}

func (m Model) headerView() string {
	h := components.NewHeader(m.theme)
	h.Title = m.svc.ActiveTitle()
	h.Busy = m.svc.Busy()
	h.Width = m.mainWidth()
	return h.View()
}

// threadAreaView shows the welcome screen for an empty session and the
// scrolled thread otherwise.
func (m Model) threadAreaView() string {
	if len(m.svc.Messages()) == 0 && m.pending == nil {
		w := components.NewWelcome(m.theme)
		w.SetSize(m.viewport.Width, m.viewport.Height)
		return w.View()
	}
	return m.viewport.View()
}

func (m Model) composerView() string {
	c := m.svc.Composer()
	v := components.ComposerView{
		Files:        c.Files(),
		SelectedFile: m.selectedFile,
		Editor:       m.editor.View(),
		CanSubmit:    c.CanSubmit(),
		Busy:         c.Busy(),
		Focused:      m.focus == FocusComposer || m.attaching,
		Width:        m.mainWidth(),
	}
	if m.attaching {
		v.AttachPrompt = m.attach.View()
	}
	return v.View(m.theme)
}

func (m Model) statusView() string {
	sb := components.NewStatusBar(m.theme)
	sb.Width = m.mainWidth()
	sb.Notice = m.notice
	sb.IsError = m.noticeError
	if hint := m.commandHint(); hint != "" {
		sb.Notice = hint
		sb.IsError = false
	}
	switch {
	case m.svc.Busy():
		sb.Status = components.StatusThinking
	case m.noticeError:
		sb.Status = components.StatusError
	default:
		sb.Status = components.StatusReady
	}
	sb.Shortcuts = m.keys.shortcutsFor(m.focus)
	return sb.View()
}

// commandHint lists the commands matching a partially typed name.
func (m Model) commandHint() string {
	if m.focus != FocusComposer || m.attaching {
		return ""
	}
	partial := commands.PartialCommand(m.editor.Value())
	if partial == "" {
		return ""
	}
	found := m.commands.Complete(partial)
	if len(found) == 0 {
		return ""
	}
	names := make([]string, 0, len(found))
	for _, c := range found {
		names = append(names, c.Name)
	}
	if len(found) == 1 {
		return found[0].Name + "  " + found[0].Description
	}
	return strings.Join(names, "  ")
}
