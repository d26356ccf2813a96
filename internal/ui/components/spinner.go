// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/tracechat-tui/internal/ui/styles"
)

// =============================================================================
// SPINNER MODEL
// =============================================================================

// Spinner wraps the bubbles spinner with an ASCII frame set. Running trace
// steps read its current frame.
type Spinner struct {
	spinner spinner.Model
}

// NewSpinner creates a spinner from a frame configuration.
func NewSpinner(cfg styles.SpinnerConfig) Spinner {
	s := spinner.New()
	s.Spinner = spinner.Spinner{
		Frames: cfg.Frames,
		FPS:    cfg.Duration(),
	}
	return Spinner{spinner: s}
}

// Tick starts the animation.
func (s Spinner) Tick() tea.Cmd {
	return s.spinner.Tick
}

// Update advances the animation.
func (s Spinner) Update(msg tea.Msg) (Spinner, tea.Cmd) {
	var cmd tea.Cmd
	s.spinner, cmd = s.spinner.Update(msg)
	return s, cmd
}

// Frame returns the current frame without styling.
func (s Spinner) Frame() string {
	return s.spinner.View()
}

// =============================================================================
// THINKING INDICATOR
// =============================================================================

// ThinkingIndicator is the line shown under the thread while a reply is
// pending.
type ThinkingIndicator struct {
	Frame   string
	Started time.Time
	Now     time.Time
}

// View renders the indicator.
func (t ThinkingIndicator) View(theme *styles.Theme) string {
	line := theme.Spinner.Render(t.Frame) + " " + theme.ThinkingText.Render("Agent is thinking")
	if !t.Started.IsZero() {
		now := t.Now
		if now.IsZero() {
			now = time.Now()
		}
		line += theme.Muted.Render(" (" + formatElapsed(now.Sub(t.Started)) + ")")
	}
	return line
}

// formatElapsed formats a duration as "1.5s" or "1m05s".
func formatElapsed(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	if d < time.Minute {
		return fmt.Sprintf("%.1fs", d.Seconds())
	}
	m := int(d.Minutes())
	s := int(d.Seconds()) % 60
	return fmt.Sprintf("%dm%02ds", m, s)
}
