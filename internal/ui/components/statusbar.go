// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/tracechat-tui/internal/ui/styles"
)

// =============================================================================
// STATUS BAR COMPONENT
// =============================================================================

// Status represents the current application status
type Status int

const (
	StatusReady Status = iota
	StatusThinking
	StatusError
)

// String returns the display string for the status
func (s Status) String() string {
	switch s {
	case StatusReady:
		return "Ready"
	case StatusThinking:
		return "Thinking..."
	case StatusError:
		return "Error"
	default:
		return "Unknown"
	}
}

// Icon returns an icon for the status
// ACCESSIBILITY: Uses distinct shapes alongside colors for colorblind users
func (s Status) Icon() string {
	switch s {
	case StatusReady:
		return styles.StatusIndicators.Completed
	case StatusThinking:
		return styles.StatusIndicators.Pending
	case StatusError:
		return styles.StatusIndicators.Error
	default:
		return "?"
	}
}

// Shortcut is one key hint.
type Shortcut struct {
	Key  string
	Desc string
}

// StatusBar is the bottom line: status, a transient notice and key hints.
type StatusBar struct {
	Status    Status
	Notice    string // last recoverable error or info line
	IsError   bool   // Notice is an error
	Shortcuts []Shortcut
	Width     int
	theme     *styles.Theme
}

// NewStatusBar creates a new StatusBar component
func NewStatusBar(theme *styles.Theme) *StatusBar {
	return &StatusBar{Width: 80, theme: theme}
}

// View renders the status bar, dropping shortcuts that do not fit.
func (s *StatusBar) View() string {
	t := s.theme

	statusStyle := t.SuccessStyle
	switch s.Status {
	case StatusThinking:
		statusStyle = t.TraceRunning
	case StatusError:
		statusStyle = t.ErrorStyle
	}
	left := statusStyle.Render(s.Status.Icon() + " " + s.Status.String())

	if s.Notice != "" {
		style := t.InfoStyle
		if s.IsError {
			style = t.ErrorStyle
		}
		left += "  " + style.Render(s.Notice)
	}

	inner := maxInt(s.Width-2, 10)
	room := inner - lipgloss.Width(left) - 2

	var hints []string
	used := 0
	for _, sc := range s.Shortcuts {
		h := t.ShortcutKey.Render(sc.Key) + " " + t.ShortcutDesc.Render(sc.Desc)
		w := lipgloss.Width(h)
		if used > 0 {
			w += 2
		}
		if used+w > room {
			break
		}
		hints = append(hints, h)
		used += w
	}
	right := strings.Join(hints, "  ")

	gap := inner - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return t.StatusBar.Width(inner + 2).Render(left + strings.Repeat(" ", gap) + right)
}
