// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package styles provides the visual styling system for the tracechat TUI.

# Color System (colors.go)

Every color is a lipgloss.AdaptiveColor pair. Unlike plain lipgloss usage,
the pair is resolved with Theme.Color against the theme's own Mode, so the
user can flip between light and dark regardless of the terminal background.

Trace steps have one accent per type:

	Thought - blue
	Action  - amber
	Search  - cyan
	Command - emerald
	Plan    - pink

# Theme (theme.go)

NewTheme(mode) builds every lipgloss.Style for one mode. Toggle and SetMode
rebuild them. Components receive the *Theme explicitly.

	theme := styles.NewTheme(styles.ParseMode(cfg.UI.Theme))
	theme.Toggle()

# Animations (animations.go)

ASCII spinner frame sets used for running steps and the thinking indicator.
*/
package styles
