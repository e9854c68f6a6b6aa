// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strconv"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/chatdash/internal/ui/styles"
)

// =============================================================================
// STATUS BAR COMPONENT
// =============================================================================

// Status represents the conversation status shown in the status bar.
type Status int

const (
	StatusReady Status = iota
	StatusThinking
)

// String returns the display string for the status.
func (s Status) String() string {
	switch s {
	case StatusReady:
		return "Ready"
	case StatusThinking:
		return "Thinking..."
	default:
		return "Unknown"
	}
}

// StatusBar is the bottom line: status, message count and key hints.
type StatusBar struct {
	Status   Status
	Page     string
	Messages int
	Width    int
	help     help.Model
	theme    *styles.Theme
}

// NewStatusBar creates a status bar.
func NewStatusBar(theme *styles.Theme) *StatusBar {
	sb := &StatusBar{
		Width: 80,
		help:  help.New(),
		theme: theme,
	}
	sb.applyHelpStyles()
	return sb
}

// SetTheme replaces the theme.
func (sb *StatusBar) SetTheme(theme *styles.Theme) {
	sb.theme = theme
	sb.applyHelpStyles()
}

func (sb *StatusBar) applyHelpStyles() {
	sb.help.Styles.ShortKey = sb.theme.ShortcutKey
	sb.help.Styles.ShortDesc = sb.theme.ShortcutDesc
	sb.help.Styles.ShortSeparator = sb.theme.ShortcutDesc
	sb.help.Styles.Ellipsis = sb.theme.ShortcutDesc
}

// View renders the bar with the short help of keys.
func (sb *StatusBar) View(keys help.KeyMap) string {
	t := sb.theme

	left := t.ShortcutKey.Render(sb.Status.String())
	if sb.Page != "" {
		left += t.ShortcutDesc.Render("  " + sb.Page)
	}
	if sb.Messages > 0 {
		left += t.ShortcutDesc.Render("  " + strconv.Itoa(sb.Messages) + " msgs")
	}

	sb.help.Width = sb.Width - lipgloss.Width(left) - 2
	if sb.help.Width < 0 {
		sb.help.Width = 0
	}
	return SpaceBetween(left, sb.help.View(keys), sb.Width)
}
