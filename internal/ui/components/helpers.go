// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// =============================================================================
// SHARED HELPER FUNCTIONS
// =============================================================================

// ellipsis is appended to truncated labels.
const ellipsis = "..."

// Truncate shortens s to at most width display cells, marking the cut with
// an ellipsis when there is room for one.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= width {
		return s
	}
	if width <= len(ellipsis) {
		return runewidth.Truncate(s, width, "")
	}
	return runewidth.Truncate(s, width, ellipsis)
}

// PadRight pads s with spaces to width display cells.
func PadRight(s string, width int) string {
	return runewidth.FillRight(s, width)
}

// SpaceBetween lays out left and right on a single line of width cells,
// truncating left if both do not fit.
func SpaceBetween(left, right string, width int) string {
	rw := lipgloss.Width(right)
	lw := lipgloss.Width(left)
	gap := width - lw - rw
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

// =============================================================================
// CONTENT WRAPPING WITH RUNEWIDTH SUPPORT
// =============================================================================

// WrapText wraps plain text to width cells, breaking at spaces where
// possible. Wide characters count as two cells.
func WrapText(content string, width int) string {
	if width <= 0 {
		return content
	}

	lines := strings.Split(content, "\n")
	for i, line := range lines {
		if runewidth.StringWidth(line) > width {
			lines[i] = wrapLine(line, width)
		}
	}
	return strings.Join(lines, "\n")
}

// wrapLine wraps a single line that is known to be too wide.
func wrapLine(line string, width int) string {
	var out []string
	var current []rune
	currentWidth := 0
	lastSpace := -1

	for _, r := range line {
		rw := runewidth.RuneWidth(r)

		if currentWidth+rw > width && len(current) > 0 {
			if r == ' ' {
				out = append(out, string(current))
				current = current[:0]
				currentWidth = 0
				lastSpace = -1
				continue
			}
			if lastSpace > 0 {
				out = append(out, string(current[:lastSpace]))
				current = append([]rune(nil), current[lastSpace+1:]...)
			} else {
				out = append(out, string(current))
				current = current[:0]
			}
			currentWidth = runewidth.StringWidth(string(current))
			lastSpace = -1
		}

		if r == ' ' {
			lastSpace = len(current)
		}
		current = append(current, r)
		currentWidth += rw
	}

	if len(current) > 0 {
		out = append(out, string(current))
	}
	return strings.Join(out, "\n")
}
