// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// =============================================================================
// SHARED STYLES
// =============================================================================

var (
	// TitleStyle is used for command titles
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")) // Cyan

	// LabelStyle is used for field labels
	LabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")). // Light gray
			Width(12)

	// ValueStyle is used for regular values
	ValueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	// SuccessStyle marks completed operations
	SuccessStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")). // Green
			Bold(true)

	// ErrorStyle marks failures
	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")). // Red
			Bold(true)

	// DimStyle is used for secondary text
	DimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("242"))
)

// printer renders CLI styles for one output stream, dropping colors when
// the stream is not a terminal.
type printer struct {
	w        io.Writer
	renderer *lipgloss.Renderer
}

func newPrinter(w io.Writer) *printer {
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(ColorProfile(w))
	return &printer{w: w, renderer: r}
}

// render applies style through the stream's renderer.
func (p *printer) render(style lipgloss.Style, text string) string {
	return p.renderer.NewStyle().Inherit(style).Render(text)
}

// field prints an aligned "label value" line.
func (p *printer) field(label, value string) {
	io.WriteString(p.w, p.render(LabelStyle, label)+" "+p.render(ValueStyle, value)+"\n")
}
