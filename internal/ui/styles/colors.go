// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling system for chatdash.
package styles

import "github.com/charmbracelet/lipgloss"

// =============================================================================
// PALETTE
// =============================================================================

// Palette is the set of colors a theme mode is built from.
// Surfaces are neutral cards with an orange primary accent; secondary
// text uses the muted foreground.
type Palette struct {
	// Accent
	Primary     lipgloss.Color // orange: send action, active nav, active tab
	PrimaryDeep lipgloss.Color
	OnPrimary   lipgloss.Color // text drawn on Primary

	// Surfaces
	Background lipgloss.Color
	Card       lipgloss.Color
	Muted      lipgloss.Color // code panels, notes
	Border     lipgloss.Color

	// Text
	Foreground      lipgloss.Color
	MutedForeground lipgloss.Color

	// Semantic
	Success lipgloss.Color // thumbs up selected
	Danger  lipgloss.Color // thumbs down selected
	Badge   lipgloss.Color // PRO badge
}

// DarkPalette is used when the theme is dark.
var DarkPalette = Palette{
	Primary:     "#F97316",
	PrimaryDeep: "#C2410C",
	OnPrimary:   "#FFFFFF",

	Background: "#09090B",
	Card:       "#18181B",
	Muted:      "#27272A",
	Border:     "#3F3F46",

	Foreground:      "#FAFAFA",
	MutedForeground: "#A1A1AA",

	Success: "#4ADE80",
	Danger:  "#F87171",
	Badge:   "#FB923C",
}

// LightPalette is used when the theme is light.
var LightPalette = Palette{
	Primary:     "#EA580C",
	PrimaryDeep: "#9A3412",
	OnPrimary:   "#FFFFFF",

	Background: "#FFFFFF",
	Card:       "#FFFFFF",
	Muted:      "#F4F4F5",
	Border:     "#E4E4E7",

	Foreground:      "#09090B",
	MutedForeground: "#71717A",

	Success: "#16A34A",
	Danger:  "#DC2626",
	Badge:   "#C2410C",
}

// =============================================================================
// STATUS INDICATORS
// =============================================================================

// Indicators are ASCII stand-ins for the web dashboard's icons.
var Indicators = struct {
	ThumbsUp   string
	ThumbsDown string
	Copy       string
	Copied     string
	User       string
	Bot        string
	Pro        string
}{
	ThumbsUp:   "[+]",
	ThumbsDown: "[-]",
	Copy:       "[copy]",
	Copied:     "[copied]",
	User:       "(U)",
	Bot:        "(AI)",
	Pro:        "PRO",
}
