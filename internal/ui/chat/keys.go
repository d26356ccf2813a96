// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/jeranaias/tracechat-tui/internal/ui/components"
)

// =============================================================================
// KEY MAP DEFINITION
// =============================================================================

// KeyMap defines all keyboard bindings for the chat screen.
type KeyMap struct {
	Submit    key.Binding // send, select session, toggle step
	Newline   key.Binding
	NextFocus key.Binding
	PrevFocus key.Binding
	Up        key.Binding
	Down      key.Binding
	PageUp    key.Binding
	PageDown  key.Binding
	NewChat   key.Binding
	Theme     key.Binding
	Sidebar   key.Binding
	Attach    key.Binding
	Detach    key.Binding
	ChipPrev  key.Binding
	ChipNext  key.Binding
	CopyReply key.Binding
	Export    key.Binding
	Cancel    key.Binding
	Quit      key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "send"),
		),
		Newline: key.NewBinding(
			key.WithKeys("alt+enter"),
			key.WithHelp("alt+enter", "newline"),
		),
		NextFocus: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "focus"),
		),
		PrevFocus: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "focus back"),
		),
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("up", "move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("down", "move down"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdown", "page down"),
		),
		NewChat: key.NewBinding(
			key.WithKeys("ctrl+n"),
			key.WithHelp("ctrl+n", "new chat"),
		),
		Theme: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("ctrl+t", "theme"),
		),
		Sidebar: key.NewBinding(
			key.WithKeys("ctrl+b"),
			key.WithHelp("ctrl+b", "sidebar"),
		),
		Attach: key.NewBinding(
			key.WithKeys("ctrl+o"),
			key.WithHelp("ctrl+o", "attach"),
		),
		Detach: key.NewBinding(
			key.WithKeys("ctrl+x"),
			key.WithHelp("ctrl+x", "remove file"),
		),
		ChipPrev: key.NewBinding(
			key.WithKeys("alt+left"),
			key.WithHelp("alt+left", "prev file"),
		),
		ChipNext: key.NewBinding(
			key.WithKeys("alt+right"),
			key.WithHelp("alt+right", "next file"),
		),
		CopyReply: key.NewBinding(
			key.WithKeys("ctrl+y"),
			key.WithHelp("ctrl+y", "copy reply"),
		),
		Export: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "export"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "ctrl+q"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// ShortHelp returns the bindings shown in the status bar.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextFocus, k.NewChat, k.Theme, k.Sidebar, k.CopyReply, k.Quit}
}

// FullHelp returns all bindings grouped for display.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Submit, k.Newline, k.NextFocus, k.PrevFocus},
		{k.Up, k.Down, k.PageUp, k.PageDown},
		{k.NewChat, k.Theme, k.Sidebar, k.CopyReply, k.Export},
		{k.Attach, k.Detach, k.ChipPrev, k.ChipNext},
		{k.Cancel, k.Quit},
	}
}

// shortcutsFor returns the status bar hints for a focus area.
func (k KeyMap) shortcutsFor(f Focus) []components.Shortcut {
	var bindings []key.Binding
	switch f {
	case FocusSidebar:
		bindings = []key.Binding{withHelpDesc(k.Submit, "open"), k.NewChat, k.Sidebar, k.NextFocus}
	case FocusThread:
		bindings = []key.Binding{withHelpDesc(k.Submit, "expand"), k.CopyReply, k.Export, k.NextFocus}
	default:
		bindings = []key.Binding{k.Submit, k.Newline, k.Attach, k.Theme, k.NextFocus}
	}
	bindings = append(bindings, k.Quit)

	out := make([]components.Shortcut, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		out = append(out, components.Shortcut{Key: h.Key, Desc: h.Desc})
	}
	return out
}

func withHelpDesc(b key.Binding, desc string) key.Binding {
	b.SetHelp(b.Help().Key, desc)
	return b
}
