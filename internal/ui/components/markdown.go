// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

// =============================================================================
// MARKDOWN RENDERING
// =============================================================================

// Markdown renders message content through glamour. The underlying renderer
// is rebuilt only when the wrap width or style changes.
type Markdown struct {
	style    string
	width    int
	renderer *glamour.TermRenderer
}

// NewMarkdown creates a renderer for a glamour standard style
// ("dark", "light", "notty", ...).
func NewMarkdown(style string) *Markdown {
	return &Markdown{style: style}
}

// SetStyle switches the glamour style.
func (m *Markdown) SetStyle(style string) {
	if style == m.style {
		return
	}
	m.style = style
	m.renderer = nil
}

// Style returns the active glamour style.
func (m *Markdown) Style() string {
	return m.style
}

// Render renders content wrapped to width. Returns the content wrapped as
// plain text if rendering fails.
func (m *Markdown) Render(content string, width int) string {
	if width < 10 {
		width = 10
	}
	if m.renderer == nil || m.width != width {
		r, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle(m.style),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			m.renderer = nil
			return WrapText(content, width)
		}
		m.renderer = r
		m.width = width
	}

	out, err := m.renderer.Render(content)
	if err != nil {
		return WrapText(content, width)
	}
	return strings.Trim(out, "\n")
}
