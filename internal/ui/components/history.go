// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strconv"
	"strings"

	"github.com/jeranaias/chatdash/internal/catalog"
	"github.com/jeranaias/chatdash/internal/ui/styles"
)

// HistoryWidth is the history panel width in columns, borders included.
const HistoryWidth = 34

// HistoryPanel lists recent conversations. It is display only.
type HistoryPanel struct {
	Height int
	items  []catalog.HistoryItem
	limit  int
	theme  *styles.Theme
}

// NewHistoryPanel creates a panel over the catalog history.
func NewHistoryPanel(theme *styles.Theme) *HistoryPanel {
	return &HistoryPanel{
		items: catalog.History,
		limit: catalog.HistoryLimit,
		theme: theme,
	}
}

// SetTheme replaces the theme.
func (h *HistoryPanel) SetTheme(theme *styles.Theme) {
	h.theme = theme
}

// Counter returns the "used/limit" label.
func (h *HistoryPanel) Counter() string {
	return strconv.Itoa(len(h.items)) + "/" + strconv.Itoa(h.limit)
}

// View renders the panel.
func (h *HistoryPanel) View() string {
	t := h.theme
	inner := HistoryWidth - 4

	lines := []string{
		SpaceBetween(t.HistoryTitle.Render("History"), t.HistoryCounter.Render(h.Counter()), inner),
		"",
	}

	for _, item := range h.items {
		lines = append(lines, t.HistoryItemTitle.Render(Truncate(item.Title, inner)))
		if item.Active {
			lines = append(lines, t.HistoryItemActive.Render(Truncate(item.Description, inner-2)))
		} else {
			lines = append(lines, t.HistoryItemDesc.Render(Truncate(item.Description, inner-2)))
		}
		lines = append(lines, "")
	}

	body := strings.Join(lines, "\n")
	footer := t.OutlineButton.Width(inner - 2).Render(PadRight("Clear history", inner-4))

	panel := t.Panel.Width(HistoryWidth - 2)
	if h.Height > 2 {
		// Pin the footer to the bottom when there is room.
		gap := h.Height - 2 - lineCount(body) - lineCount(footer)
		if gap > 0 {
			body += strings.Repeat("\n", gap)
		}
		panel = panel.Height(h.Height - 2)
	}
	return panel.Render(body + "\n" + footer)
}

// lineCount returns the number of lines in s.
func lineCount(s string) int {
	return strings.Count(s, "\n") + 1
}
