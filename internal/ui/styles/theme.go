// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling system for chatdash.
package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Mode is the resolved light/dark mode of a theme.
type Mode int

const (
	ModeDark Mode = iota
	ModeLight
)

// String returns the mode name.
func (m Mode) String() string {
	if m == ModeLight {
		return "light"
	}
	return "dark"
}

// Theme holds all the styled components for the application.
type Theme struct {
	Mode         Mode
	Palette      Palette
	ColorProfile termenv.Profile

	// ==========================================================================
	// APPLICATION CONTAINER STYLES
	// ==========================================================================

	App   lipgloss.Style
	Panel lipgloss.Style // rounded card used by sidebar, history and main area

	// ==========================================================================
	// SIDEBAR STYLES
	// ==========================================================================

	SidebarLogo   lipgloss.Style
	NavItem       lipgloss.Style
	NavItemActive lipgloss.Style
	NavItemCursor lipgloss.Style
	ProBadge      lipgloss.Style
	PlanBox       lipgloss.Style
	PlanTitle     lipgloss.Style
	SidebarFooter lipgloss.Style

	// ==========================================================================
	// HEADER STYLES
	// ==========================================================================

	Header       lipgloss.Style
	HeaderTitle  lipgloss.Style
	SearchBox    lipgloss.Style
	HeaderAction lipgloss.Style

	// ==========================================================================
	// HISTORY STYLES
	// ==========================================================================

	HistoryTitle      lipgloss.Style
	HistoryCounter    lipgloss.Style
	HistoryItemTitle  lipgloss.Style
	HistoryItemDesc   lipgloss.Style
	HistoryItemActive lipgloss.Style
	OutlineButton     lipgloss.Style

	// ==========================================================================
	// MESSAGE STYLES
	// ==========================================================================

	UserRow            lipgloss.Style
	AssistantRow       lipgloss.Style
	UserAvatar         lipgloss.Style
	AssistantAvatar    lipgloss.Style
	RoleBadge          lipgloss.Style
	Timestamp          lipgloss.Style
	FeedbackButton     lipgloss.Style
	FeedbackUpActive   lipgloss.Style
	FeedbackDownActive lipgloss.Style
	CopiedNote         lipgloss.Style

	// ==========================================================================
	// CODE DISPLAY STYLES
	// ==========================================================================

	CodePanel     lipgloss.Style
	CodeTab       lipgloss.Style
	CodeTabActive lipgloss.Style
	CodeLineNum   lipgloss.Style
	CodeCopyBtn   lipgloss.Style
	InfoNote      lipgloss.Style

	// ==========================================================================
	// LOADING STYLES
	// ==========================================================================

	Spinner      lipgloss.Style
	ThinkingText lipgloss.Style

	// ==========================================================================
	// INPUT AREA STYLES
	// ==========================================================================

	InputContainer lipgloss.Style
	InputDisabled  lipgloss.Style
	PrimaryButton  lipgloss.Style
	Disclaimer     lipgloss.Style
	DisclaimerLink lipgloss.Style
	ShortcutKey    lipgloss.Style
	ShortcutDesc   lipgloss.Style

	// ==========================================================================
	// TEMPLATE PAGE STYLES
	// ==========================================================================

	PageTitle       lipgloss.Style
	PageSubtitle    lipgloss.Style
	TemplateCard    lipgloss.Style
	TemplateTitle   lipgloss.Style
	CategoryBadge   lipgloss.Style
	TemplateDesc    lipgloss.Style
	Banner          lipgloss.Style
	PlaceholderText lipgloss.Style
}

// NewTheme creates a theme for the named mode: "dark", "light" or "auto".
// "auto" (and anything unrecognised) follows the terminal background.
func NewTheme(name string) *Theme {
	mode := ModeDark
	switch strings.ToLower(name) {
	case "light":
		mode = ModeLight
	case "dark":
		mode = ModeDark
	default:
		if !termenv.HasDarkBackground() {
			mode = ModeLight
		}
	}
	return NewThemeWithMode(mode)
}

// NewThemeWithMode creates a theme for an explicit mode.
func NewThemeWithMode(mode Mode) *Theme {
	palette := DarkPalette
	if mode == ModeLight {
		palette = LightPalette
	}

	t := &Theme{
		Mode:         mode,
		Palette:      palette,
		ColorProfile: termenv.ColorProfile(),
	}
	t.initStyles()
	return t
}

// Toggle returns a theme in the opposite mode.
func (t *Theme) Toggle() *Theme {
	if t.Mode == ModeDark {
		return NewThemeWithMode(ModeLight)
	}
	return NewThemeWithMode(ModeDark)
}

// IsDark reports whether the theme uses the dark palette.
func (t *Theme) IsDark() bool {
	return t.Mode == ModeDark
}

// initStyles initializes all the lip gloss styles from the palette.
func (t *Theme) initStyles() {
	p := t.Palette

	// App container
	t.App = lipgloss.NewStyle().
		Foreground(p.Foreground)

	t.Panel = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(p.Border).
		Padding(0, 1)

	// Sidebar
	t.SidebarLogo = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Primary)

	t.NavItem = lipgloss.NewStyle().
		Foreground(p.MutedForeground).
		Padding(0, 1)

	t.NavItemActive = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.OnPrimary).
		Background(p.Primary).
		Padding(0, 1)

	t.NavItemCursor = lipgloss.NewStyle().
		Foreground(p.Foreground).
		Underline(true).
		Padding(0, 1)

	t.ProBadge = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Badge)

	t.PlanBox = lipgloss.NewStyle().
		Background(p.Muted).
		Foreground(p.Foreground).
		Padding(0, 1)

	t.PlanTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Primary)

	t.SidebarFooter = lipgloss.NewStyle().
		Foreground(p.MutedForeground).
		Padding(0, 1)

	// Header
	t.Header = lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(p.Border).
		Padding(0, 1)

	t.HeaderTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Foreground)

	t.SearchBox = lipgloss.NewStyle().
		Foreground(p.MutedForeground).
		Background(p.Muted).
		Padding(0, 1)

	t.HeaderAction = lipgloss.NewStyle().
		Foreground(p.MutedForeground)

	// History
	t.HistoryTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Foreground)

	t.HistoryCounter = lipgloss.NewStyle().
		Foreground(p.MutedForeground)

	t.HistoryItemTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Foreground)

	t.HistoryItemDesc = lipgloss.NewStyle().
		Foreground(p.MutedForeground).
		PaddingLeft(2)

	t.HistoryItemActive = lipgloss.NewStyle().
		Foreground(p.MutedForeground).
		BorderStyle(lipgloss.ThickBorder()).
		BorderLeft(true).
		BorderForeground(p.Primary).
		PaddingLeft(1)

	t.OutlineButton = lipgloss.NewStyle().
		Foreground(p.MutedForeground).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(p.Border).
		Padding(0, 1)

	// Messages
	t.UserRow = lipgloss.NewStyle().
		Padding(0, 1)

	t.AssistantRow = lipgloss.NewStyle().
		Background(p.Muted).
		Padding(0, 1)

	t.UserAvatar = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Foreground)

	t.AssistantAvatar = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Primary)

	t.RoleBadge = lipgloss.NewStyle().
		Foreground(p.Foreground).
		Background(p.Border).
		Padding(0, 1)

	t.Timestamp = lipgloss.NewStyle().
		Foreground(p.MutedForeground).
		Italic(true)

	t.FeedbackButton = lipgloss.NewStyle().
		Foreground(p.MutedForeground)

	t.FeedbackUpActive = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Success)

	t.FeedbackDownActive = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Danger)

	t.CopiedNote = lipgloss.NewStyle().
		Foreground(p.Success)

	// Code display
	t.CodePanel = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(p.Border).
		Padding(0, 1)

	t.CodeTab = lipgloss.NewStyle().
		Foreground(p.MutedForeground).
		Padding(0, 1)

	t.CodeTabActive = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Foreground).
		BorderStyle(lipgloss.ThickBorder()).
		BorderBottom(true).
		BorderForeground(p.Primary).
		Padding(0, 1)

	t.CodeLineNum = lipgloss.NewStyle().
		Foreground(p.MutedForeground).
		Width(4).
		Align(lipgloss.Right).
		MarginRight(1)

	t.CodeCopyBtn = lipgloss.NewStyle().
		Foreground(p.MutedForeground)

	t.InfoNote = lipgloss.NewStyle().
		Foreground(p.MutedForeground).
		Background(p.Muted).
		Padding(0, 1)

	// Loading
	t.Spinner = lipgloss.NewStyle().
		Foreground(p.Primary)

	t.ThinkingText = lipgloss.NewStyle().
		Foreground(p.MutedForeground).
		Italic(true)

	// Input
	t.InputContainer = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(p.Border).
		Padding(0, 1)

	t.InputDisabled = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(p.Muted).
		Foreground(p.MutedForeground).
		Padding(0, 1)

	t.PrimaryButton = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.OnPrimary).
		Background(p.Primary).
		Padding(0, 1)

	t.Disclaimer = lipgloss.NewStyle().
		Foreground(p.MutedForeground).
		Align(lipgloss.Center)

	t.DisclaimerLink = lipgloss.NewStyle().
		Foreground(p.Primary).
		Underline(true)

	t.ShortcutKey = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Foreground)

	t.ShortcutDesc = lipgloss.NewStyle().
		Foreground(p.MutedForeground)

	// Templates
	t.PageTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Foreground)

	t.PageSubtitle = lipgloss.NewStyle().
		Foreground(p.MutedForeground)

	t.TemplateCard = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(p.Border).
		Padding(0, 1)

	t.TemplateTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Foreground)

	t.CategoryBadge = lipgloss.NewStyle().
		Foreground(p.MutedForeground).
		Background(p.Muted).
		Padding(0, 1)

	t.TemplateDesc = lipgloss.NewStyle().
		Foreground(p.MutedForeground)

	t.Banner = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(p.Primary).
		Padding(0, 2).
		Align(lipgloss.Center)

	t.PlaceholderText = lipgloss.NewStyle().
		Foreground(p.MutedForeground).
		Italic(true).
		Align(lipgloss.Center)
}
