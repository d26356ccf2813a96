// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/tracechat-tui/internal/model"
	"github.com/jeranaias/tracechat-tui/internal/ui/styles"
	"github.com/jeranaias/tracechat-tui/internal/util"
)

// Sidebar widths in columns, border included.
const (
	SidebarWidth          = 32
	SidebarCollapsedWidth = 9
)

// =============================================================================
// SIDEBAR COMPONENT
// =============================================================================

// Sidebar renders the session list. Entry 0 is the "New Chat" button; entry
// i > 0 is Sessions[i-1].
type Sidebar struct {
	Sessions  []model.Session
	ActiveID  string
	Cursor    int
	Focused   bool
	Collapsed bool
	Height    int
	theme     *styles.Theme
}

// NewSidebar creates a sidebar.
func NewSidebar(theme *styles.Theme) *Sidebar {
	return &Sidebar{theme: theme}
}

// Entries returns the number of selectable rows.
func (s *Sidebar) Entries() int {
	return len(s.Sessions) + 1
}

// Width returns the rendered width.
func (s *Sidebar) Width() int {
	if s.Collapsed {
		return SidebarCollapsedWidth
	}
	return SidebarWidth
}

// View renders the sidebar at its full height.
func (s *Sidebar) View() string {
	t := s.theme
	width := s.Width()
	inner := width - 3 // border + padding

	var lines []string

	// Brand
	if s.Collapsed {
		lines = append(lines, t.SidebarBrand.Render("TC"))
	} else {
		lines = append(lines, t.SidebarBrand.Render("TraceChat")+" "+t.Muted.Render("agent"))
	}
	lines = append(lines, "")

	// New chat button
	newChat := "+ New Chat"
	if s.Collapsed {
		newChat = "+"
	}
	btn := t.SidebarNewChat
	if s.Focused && s.Cursor == 0 {
		btn = btn.BorderForeground(t.Color(styles.Cyan))
	}
	lines = append(lines, btn.Render(newChat))
	lines = append(lines, "")

	if !s.Collapsed {
		lines = append(lines, t.SidebarSection.Render("RECENT"))
	}

	groups := make([][]string, len(s.Sessions))
	for i, sess := range s.Sessions {
		groups[i] = s.renderSession(i+1, sess, inner)
	}
	// One row stays free for the footer.
	for _, g := range s.visibleGroups(groups, s.Height-lipgloss.Height(strings.Join(lines, "\n"))-1) {
		lines = append(lines, g...)
	}

	body := strings.Join(lines, "\n")

	footer := t.SidebarFooter.Render("ctrl+b collapse")
	if s.Collapsed {
		footer = t.SidebarFooter.Render(">>")
	}

	bodyHeight := lipgloss.Height(body)
	if s.Height >= bodyHeight+1 {
		body += strings.Repeat("\n", s.Height-bodyHeight-1)
		body += "\n" + footer
	}

	return t.Sidebar.
		Width(width - 1).
		Height(maxInt(s.Height, 1)).
		MaxHeight(maxInt(s.Height, 1)).
		Render(body)
}

// visibleGroups returns the session rows that fit in avail lines, scrolled
// so that the cursor's session is the last one shown when it would
// otherwise fall below the window.
func (s *Sidebar) visibleGroups(groups [][]string, avail int) [][]string {
	if s.Height <= 0 {
		return groups
	}
	avail = maxInt(avail, 1)

	start := 0
	if c := s.Cursor - 1; c >= 0 && c < len(groups) {
		used := 0
		for i := 0; i <= c; i++ {
			used += len(groups[i])
		}
		for used > avail && start < c {
			used -= len(groups[start])
			start++
		}
	}

	end, used := start, 0
	for end < len(groups) && used+len(groups[end]) <= avail {
		used += len(groups[end])
		end++
	}
	if end == start && start < len(groups) {
		end = start + 1
	}
	return groups[start:end]
}

func (s *Sidebar) renderSession(entry int, sess model.Session, inner int) []string {
	t := s.theme
	active := sess.ID == s.ActiveID
	focused := s.Focused && s.Cursor == entry

	marker := "  "
	if focused {
		marker = t.SessionItemCursor.Render("> ")
	}

	style := t.SessionItem
	if active {
		style = t.SessionItemActive
	}

	if s.Collapsed {
		icon := "o"
		if active {
			icon = "*"
		}
		return []string{marker + style.Render(icon)}
	}

	title := util.TruncateWidth(sess.Title, inner-3)
	rows := []string{marker + style.Render(title)}
	if date := sess.DateString(); date != "" {
		rows = append(rows, t.SessionMeta.Render(date))
	}
	return rows
}
