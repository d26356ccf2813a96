// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling system for the tracechat TUI.
// Colors are declared as light/dark pairs and resolved against the theme's
// explicit mode rather than the terminal background.
package styles

import "github.com/charmbracelet/lipgloss"

// =============================================================================
// PRIMARY ACCENT COLORS
// =============================================================================

// Purple - Primary accent, agent avatar, selections
var Purple = lipgloss.AdaptiveColor{Light: "#7C3AED", Dark: "#A78BFA"}

// Indigo - Secondary accent, gradient partner of Purple
var Indigo = lipgloss.AdaptiveColor{Light: "#4F46E5", Dark: "#818CF8"}

// Cyan - Brand color, focus ring
var Cyan = lipgloss.AdaptiveColor{Light: "#0891B2", Dark: "#22D3EE"}

// Emerald - Online badge, completed steps
var Emerald = lipgloss.AdaptiveColor{Light: "#059669", Dark: "#34D399"}

// Rose - Errors, failed steps
var Rose = lipgloss.AdaptiveColor{Light: "#E11D48", Dark: "#FB7185"}

// Amber - Warnings, pending steps
var Amber = lipgloss.AdaptiveColor{Light: "#D97706", Dark: "#FBBF24"}

// =============================================================================
// SURFACE COLORS
// =============================================================================

// Surface - Main background
var Surface = lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#0F0F14"}

// SurfaceDim - Sidebar and header background
var SurfaceDim = lipgloss.AdaptiveColor{Light: "#F8F8FA", Dark: "#16161D"}

// SurfaceBright - Hovered / active rows, user bubble
var SurfaceBright = lipgloss.AdaptiveColor{Light: "#F1F1F4", Dark: "#23232E"}

// Overlay - Borders, separators
var Overlay = lipgloss.AdaptiveColor{Light: "#E4E4E7", Dark: "#2E2E3A"}

// =============================================================================
// TEXT COLORS
// =============================================================================

// TextPrimary - Main body text
var TextPrimary = lipgloss.AdaptiveColor{Light: "#18181B", Dark: "#F4F4F5"}

// TextSecondary - Labels, inactive session titles
var TextSecondary = lipgloss.AdaptiveColor{Light: "#52525B", Dark: "#A1A1AA"}

// TextMuted - Hints, timestamps, dates
var TextMuted = lipgloss.AdaptiveColor{Light: "#A1A1AA", Dark: "#71717A"}

// TextInverse - Text on accent backgrounds
var TextInverse = lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#FFFFFF"}

// =============================================================================
// TRACE STEP COLORS
// =============================================================================

var StepThoughtColor = lipgloss.AdaptiveColor{Light: "#2563EB", Dark: "#60A5FA"}
var StepActionColor = lipgloss.AdaptiveColor{Light: "#D97706", Dark: "#FBBF24"}
var StepSearchColor = lipgloss.AdaptiveColor{Light: "#0891B2", Dark: "#22D3EE"}
var StepCommandColor = lipgloss.AdaptiveColor{Light: "#059669", Dark: "#10B981"}
var StepPlanColor = lipgloss.AdaptiveColor{Light: "#DB2777", Dark: "#F472B6"}

// =============================================================================
// STATUS INDICATORS
// =============================================================================

// StatusIndicatorSet contains text indicators for step states.
// ACCESSIBILITY: shapes carry the state as well as color.
type StatusIndicatorSet struct {
	Pending   string
	Completed string
	Error     string
}

// StatusIndicators are ASCII-only for maximum terminal compatibility.
var StatusIndicators = StatusIndicatorSet{
	Pending:   "[ ]",
	Completed: "[OK]",
	Error:     "[X]",
}
