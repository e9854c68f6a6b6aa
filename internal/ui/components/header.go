// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/chatdash/internal/catalog"
	"github.com/jeranaias/chatdash/internal/ui/styles"
)

// =============================================================================
// HEADER COMPONENT
// =============================================================================

// Header is the title bar above the main area: page title, search box and
// a theme indicator.
type Header struct {
	Title    string
	Width    int
	ShowMenu bool // narrow layout: hint that the sidebar opens as an overlay
	theme    *styles.Theme
}

// NewHeader creates a header with the default title.
func NewHeader(theme *styles.Theme) *Header {
	return &Header{
		Title: catalog.HeaderTitle,
		Width: 80,
		theme: theme,
	}
}

// SetWidth sets the available width.
func (h *Header) SetWidth(width int) {
	h.Width = width
}

// SetTheme replaces the theme.
func (h *Header) SetTheme(theme *styles.Theme) {
	h.theme = theme
}

// View renders the header on one line plus its bottom border.
func (h *Header) View() string {
	t := h.theme
	inner := h.Width - 2
	if inner < 10 {
		inner = 10
	}

	left := t.HeaderTitle.Render(h.Title)
	if h.ShowMenu {
		left = t.HeaderAction.Render("[=]") + " " + left
	}

	right := t.HeaderAction.Render(h.modeLabel())
	// The search box is dropped before the title is squeezed.
	search := t.SearchBox.Render(PadRight(catalog.SearchHint, 16))
	if lipgloss.Width(left)+lipgloss.Width(search)+lipgloss.Width(right)+2 <= inner {
		right = search + " " + right
	}

	return t.Header.Width(h.Width).Render(SpaceBetween(left, right, inner))
}

// modeLabel names the active theme mode.
func (h *Header) modeLabel() string {
	if h.theme.IsDark() {
		return "[dark]"
	}
	return "[light]"
}
