// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/tracechat-tui/internal/ui/styles"
)

// FeatureCard is one tile of the welcome screen.
type FeatureCard struct {
	Icon  string
	Title string
	Desc  string
}

// FeatureCards are shown on an empty session.
var FeatureCards = []FeatureCard{
	{Icon: ">>", Title: "Rapid Analysis", Desc: "Insights in seconds"},
	{Icon: "</>", Title: "Code Guru", Desc: "Debugging simplified"},
	{Icon: "(?)", Title: "Precision Search", Desc: "Filtered knowledge"},
	{Icon: "[#]", Title: "Secure Data", Desc: "Privacy first"},
}

// =============================================================================
// WELCOME COMPONENT
// =============================================================================

// Welcome is the empty-session screen.
type Welcome struct {
	Width  int
	Height int
	theme  *styles.Theme
}

// NewWelcome creates a welcome screen.
func NewWelcome(theme *styles.Theme) Welcome {
	return Welcome{theme: theme}
}

// SetSize sets the area to center in.
func (w *Welcome) SetSize(width, height int) {
	w.Width = width
	w.Height = height
}

// View renders the logo, heading and feature cards, centered.
func (w Welcome) View() string {
	t := w.theme

	logo := t.WelcomeLogo.Render("*")
	title := t.WelcomeTitle.Render("Empowering Your Creativity")
	subtitle := t.WelcomeSubtitle.Render("AI-driven insights and code analysis at your fingertips.")

	cardWidth := 24
	cards := make([]string, len(FeatureCards))
	for i, c := range FeatureCards {
		body := t.WelcomeCardName.Render(c.Icon+" "+c.Title) + "\n" + t.WelcomeCardDesc.Render(c.Desc)
		cards[i] = t.WelcomeCard.Width(cardWidth).Render(body)
	}

	var grid string
	if w.Width >= 2*(cardWidth+4) {
		top := lipgloss.JoinHorizontal(lipgloss.Top, cards[0], " ", cards[1])
		bottom := lipgloss.JoinHorizontal(lipgloss.Top, cards[2], " ", cards[3])
		grid = lipgloss.JoinVertical(lipgloss.Center, top, bottom)
	} else {
		grid = lipgloss.JoinVertical(lipgloss.Center, cards...)
	}

	content := lipgloss.JoinVertical(lipgloss.Center, logo, "", title, subtitle, "", grid)
	if w.Width <= 0 || w.Height <= 0 {
		return content
	}
	return lipgloss.Place(w.Width, w.Height, lipgloss.Center, lipgloss.Center, content)
}
