// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package styles provides the visual styling system for chatdash.

A Theme is built from a Palette (DarkPalette or LightPalette) and exposes one
lipgloss.Style per visual element of the dashboard: sidebar, header, history
panel, message rows, code display, input area and the templates page.

# Usage

	theme := styles.NewTheme(cfg.UI.Theme) // "auto", "dark" or "light"
	title := theme.HeaderTitle.Render("AI Chat Helper")

	// Ctrl+T in the dashboard
	theme = theme.Toggle()

Colors are plain hex values rather than adaptive colors so that the user can
force a mode regardless of what the terminal reports.
*/
package styles
