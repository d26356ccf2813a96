// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/jeranaias/tracechat-tui/internal/model"
)

// =============================================================================
// MODE
// =============================================================================

// Mode is the active color scheme.
type Mode int

const (
	ModeDark Mode = iota
	ModeLight
)

// String returns "dark" or "light".
func (m Mode) String() string {
	if m == ModeLight {
		return "light"
	}
	return "dark"
}

// Toggled returns the other mode.
func (m Mode) Toggled() Mode {
	if m == ModeLight {
		return ModeDark
	}
	return ModeLight
}

// ParseMode maps a config value to a mode. "auto" (or anything unknown)
// follows the terminal background.
func ParseMode(s string) Mode {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "light":
		return ModeLight
	case "dark":
		return ModeDark
	default:
		return DetectMode()
	}
}

// DetectMode asks the terminal whether its background is dark.
func DetectMode() Mode {
	if termenv.HasDarkBackground() {
		return ModeDark
	}
	return ModeLight
}

// =============================================================================
// THEME
// =============================================================================

// Theme holds all the styled components for the application. A Theme is
// passed explicitly to every component; there is no package-level instance.
type Theme struct {
	Mode         Mode
	ColorProfile termenv.Profile

	// Layout dimensions
	Width  int
	Height int

	// ==========================================================================
	// SIDEBAR STYLES
	// ==========================================================================

	Sidebar           lipgloss.Style
	SidebarBrand      lipgloss.Style
	SidebarNewChat    lipgloss.Style
	SidebarSection    lipgloss.Style
	SessionItem       lipgloss.Style
	SessionItemActive lipgloss.Style
	SessionItemCursor lipgloss.Style
	SessionMeta       lipgloss.Style
	SidebarFooter     lipgloss.Style

	// ==========================================================================
	// HEADER STYLES
	// ==========================================================================

	Header      lipgloss.Style
	HeaderLabel lipgloss.Style
	HeaderTitle lipgloss.Style
	OnlineBadge lipgloss.Style
	ModeBadge   lipgloss.Style

	// ==========================================================================
	// MESSAGE STYLES
	// ==========================================================================

	UserBubble      lipgloss.Style
	AssistantBubble lipgloss.Style
	UserAvatar      lipgloss.Style
	AssistantAvatar lipgloss.Style
	MessageText     lipgloss.Style
	Timestamp       lipgloss.Style
	FileChip        lipgloss.Style
	FileChipFocused lipgloss.Style

	// ==========================================================================
	// TRACE STYLES
	// ==========================================================================

	TraceHeader     lipgloss.Style
	TraceRow        lipgloss.Style
	TraceRowFocused lipgloss.Style
	TraceContent    lipgloss.Style
	TraceChevron    lipgloss.Style
	TraceDetails    lipgloss.Style
	TraceRunning    lipgloss.Style

	// ==========================================================================
	// INPUT AREA STYLES
	// ==========================================================================

	InputContainer        lipgloss.Style
	InputContainerFocused lipgloss.Style
	InputPrompt           lipgloss.Style
	InputPlaceholder      lipgloss.Style
	SendActive            lipgloss.Style
	SendDisabled          lipgloss.Style
	FooterBadge           lipgloss.Style
	AttachPrompt          lipgloss.Style

	// ==========================================================================
	// WELCOME SCREEN STYLES
	// ==========================================================================

	WelcomeLogo     lipgloss.Style
	WelcomeTitle    lipgloss.Style
	WelcomeSubtitle lipgloss.Style
	WelcomeCard     lipgloss.Style
	WelcomeCardName lipgloss.Style
	WelcomeCardDesc lipgloss.Style

	// ==========================================================================
	// STATUS AND FEEDBACK STYLES
	// ==========================================================================

	StatusBar    lipgloss.Style
	ShortcutKey  lipgloss.Style
	ShortcutDesc lipgloss.Style
	Spinner      lipgloss.Style
	ThinkingText lipgloss.Style
	ErrorStyle   lipgloss.Style
	SuccessStyle lipgloss.Style
	InfoStyle    lipgloss.Style
	Muted        lipgloss.Style
	Divider      lipgloss.Style
}

// NewTheme creates a theme in the given mode with all styles configured.
func NewTheme(mode Mode) *Theme {
	t := &Theme{
		Mode:         mode,
		ColorProfile: termenv.ColorProfile(),
	}
	t.initStyles()
	return t
}

// IsDark reports whether the dark scheme is active.
func (t *Theme) IsDark() bool {
	return t.Mode == ModeDark
}

// Toggle switches between light and dark and rebuilds every style.
func (t *Theme) Toggle() {
	t.SetMode(t.Mode.Toggled())
}

// SetMode switches to a specific mode.
func (t *Theme) SetMode(mode Mode) {
	if t.Mode == mode {
		return
	}
	t.Mode = mode
	t.initStyles()
}

// Color resolves an adaptive color for the active mode.
func (t *Theme) Color(c lipgloss.AdaptiveColor) lipgloss.Color {
	if t.Mode == ModeLight {
		return lipgloss.Color(c.Light)
	}
	return lipgloss.Color(c.Dark)
}

// StepColor returns the accent color of a step type.
func (t *Theme) StepColor(st model.StepType) lipgloss.Color {
	switch st {
	case model.StepThought:
		return t.Color(StepThoughtColor)
	case model.StepAction:
		return t.Color(StepActionColor)
	case model.StepSearch:
		return t.Color(StepSearchColor)
	case model.StepCommand:
		return t.Color(StepCommandColor)
	case model.StepPlan:
		return t.Color(StepPlanColor)
	default:
		return t.Color(TextSecondary)
	}
}

// StatusColor returns the color of a step status.
func (t *Theme) StatusColor(s model.StepStatus) lipgloss.Color {
	switch s {
	case model.StatusCompleted:
		return t.Color(Emerald)
	case model.StatusRunning:
		return t.Color(Purple)
	case model.StatusError:
		return t.Color(Rose)
	default:
		return t.Color(Amber)
	}
}

// initStyles initializes all the lip gloss styles for the current mode.
func (t *Theme) initStyles() {
	c := t.Color

	// Sidebar
	t.Sidebar = lipgloss.NewStyle().
		Background(c(SurfaceDim)).
		BorderStyle(lipgloss.NormalBorder()).
		BorderRight(true).
		BorderForeground(c(Overlay)).
		Padding(0, 1)

	t.SidebarBrand = lipgloss.NewStyle().
		Bold(true).
		Foreground(c(Purple))

	t.SidebarNewChat = lipgloss.NewStyle().
		Foreground(c(TextPrimary)).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(c(Overlay)).
		Padding(0, 1)

	t.SidebarSection = lipgloss.NewStyle().
		Foreground(c(TextMuted)).
		Bold(true)

	t.SessionItem = lipgloss.NewStyle().
		Foreground(c(TextSecondary)).
		PaddingLeft(1)

	t.SessionItemActive = lipgloss.NewStyle().
		Foreground(c(Purple)).
		Background(c(SurfaceBright)).
		Bold(true).
		PaddingLeft(1)

	t.SessionItemCursor = lipgloss.NewStyle().
		Foreground(c(Cyan)).
		Bold(true)

	t.SessionMeta = lipgloss.NewStyle().
		Foreground(c(TextMuted)).
		PaddingLeft(3)

	t.SidebarFooter = lipgloss.NewStyle().
		Foreground(c(TextMuted))

	// Header
	t.Header = lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(c(Overlay)).
		Padding(0, 1)

	t.HeaderLabel = lipgloss.NewStyle().
		Foreground(c(TextMuted))

	t.HeaderTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(c(TextPrimary))

	t.OnlineBadge = lipgloss.NewStyle().
		Foreground(c(Emerald)).
		Bold(true)

	t.ModeBadge = lipgloss.NewStyle().
		Foreground(c(TextSecondary))

	// Messages
	t.UserBubble = lipgloss.NewStyle().
		Foreground(c(TextPrimary)).
		Background(c(SurfaceBright)).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(c(Overlay)).
		Padding(0, 1)

	t.AssistantBubble = lipgloss.NewStyle().
		Foreground(c(TextPrimary)).
		Padding(0, 1)

	t.UserAvatar = lipgloss.NewStyle().
		Foreground(c(TextSecondary)).
		Bold(true)

	t.AssistantAvatar = lipgloss.NewStyle().
		Foreground(c(TextInverse)).
		Background(c(Purple)).
		Bold(true).
		Padding(0, 1)

	t.MessageText = lipgloss.NewStyle().
		Foreground(c(TextPrimary))

	t.Timestamp = lipgloss.NewStyle().
		Foreground(c(TextMuted)).
		Bold(true)

	t.FileChip = lipgloss.NewStyle().
		Foreground(c(TextSecondary)).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(c(Overlay)).
		Padding(0, 1)

	t.FileChipFocused = t.FileChip.
		BorderForeground(c(Cyan)).
		Foreground(c(TextPrimary))

	// Trace
	t.TraceHeader = lipgloss.NewStyle().
		Foreground(c(TextMuted)).
		Bold(true)

	t.TraceRow = lipgloss.NewStyle().
		PaddingLeft(1)

	t.TraceRowFocused = lipgloss.NewStyle().
		PaddingLeft(1).
		Background(c(SurfaceBright))

	t.TraceContent = lipgloss.NewStyle().
		Foreground(c(TextSecondary))

	t.TraceChevron = lipgloss.NewStyle().
		Foreground(c(TextMuted))

	t.TraceDetails = lipgloss.NewStyle().
		Foreground(c(TextSecondary)).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(c(Overlay)).
		Padding(0, 1).
		MarginLeft(4)

	t.TraceRunning = lipgloss.NewStyle().
		Foreground(c(Purple)).
		Bold(true)

	// Input area
	t.InputContainer = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(c(Overlay)).
		Padding(0, 1)

	t.InputContainerFocused = t.InputContainer.
		BorderForeground(c(Purple))

	t.InputPrompt = lipgloss.NewStyle().
		Foreground(c(Purple)).
		Bold(true)

	t.InputPlaceholder = lipgloss.NewStyle().
		Foreground(c(TextMuted)).
		Italic(true)

	t.SendActive = lipgloss.NewStyle().
		Foreground(c(TextInverse)).
		Background(c(Purple)).
		Bold(true).
		Padding(0, 1)

	t.SendDisabled = lipgloss.NewStyle().
		Foreground(c(TextMuted)).
		Background(c(SurfaceBright)).
		Padding(0, 1)

	t.FooterBadge = lipgloss.NewStyle().
		Foreground(c(TextMuted)).
		Italic(true)

	t.AttachPrompt = lipgloss.NewStyle().
		Foreground(c(Cyan)).
		Bold(true)

	// Welcome screen
	t.WelcomeLogo = lipgloss.NewStyle().
		Foreground(c(TextInverse)).
		Background(c(Purple)).
		Bold(true).
		Padding(0, 2)

	t.WelcomeTitle = lipgloss.NewStyle().
		Foreground(c(TextPrimary)).
		Bold(true)

	t.WelcomeSubtitle = lipgloss.NewStyle().
		Foreground(c(TextSecondary))

	t.WelcomeCard = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(c(Overlay)).
		Padding(0, 1)

	t.WelcomeCardName = lipgloss.NewStyle().
		Foreground(c(TextPrimary)).
		Bold(true)

	t.WelcomeCardDesc = lipgloss.NewStyle().
		Foreground(c(TextMuted))

	// Status and feedback
	t.StatusBar = lipgloss.NewStyle().
		Foreground(c(TextSecondary)).
		Padding(0, 1)

	t.ShortcutKey = lipgloss.NewStyle().
		Foreground(c(Cyan)).
		Bold(true)

	t.ShortcutDesc = lipgloss.NewStyle().
		Foreground(c(TextMuted))

	t.Spinner = lipgloss.NewStyle().
		Foreground(c(Purple))

	t.ThinkingText = lipgloss.NewStyle().
		Foreground(c(TextSecondary)).
		Italic(true)

	t.ErrorStyle = lipgloss.NewStyle().
		Foreground(c(Rose)).
		Bold(true)

	t.SuccessStyle = lipgloss.NewStyle().
		Foreground(c(Emerald)).
		Bold(true)

	t.InfoStyle = lipgloss.NewStyle().
		Foreground(c(Cyan))

	t.Muted = lipgloss.NewStyle().
		Foreground(c(TextMuted))

	t.Divider = lipgloss.NewStyle().
		Foreground(c(Overlay))
}

// SetSize updates the theme dimensions for responsive layouts.
func (t *Theme) SetSize(width, height int) {
	t.Width = width
	t.Height = height
}

// GetLayoutMode returns the current layout mode based on width.
func (t *Theme) GetLayoutMode() LayoutMode {
	if t.Width < 60 {
		return LayoutNarrow
	}
	if t.Width < 100 {
		return LayoutMedium
	}
	return LayoutWide
}

// LayoutMode represents the current responsive layout mode.
type LayoutMode int

const (
	LayoutNarrow LayoutMode = iota // < 60 columns, sidebar hidden
	LayoutMedium                   // 60-100 columns, sidebar collapsed
	LayoutWide                     // >= 100 columns
)
