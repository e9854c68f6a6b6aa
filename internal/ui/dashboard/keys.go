// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package dashboard

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/jeranaias/chatdash/internal/ui/chat"
)

// KeyMap defines the dashboard-wide key bindings. They take precedence over
// the active page.
type KeyMap struct {
	Quit          key.Binding
	NextPage      key.Binding
	PrevPage      key.Binding
	ToggleSidebar key.Binding
	ToggleTheme   key.Binding
	ToggleHistory key.Binding
}

// DefaultKeyMap returns the default dashboard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "esc"),
			key.WithHelp("esc", "quit"),
		),
		NextPage: key.NewBinding(
			key.WithKeys("ctrl+n"),
			key.WithHelp("C-n", "next page"),
		),
		PrevPage: key.NewBinding(
			key.WithKeys("ctrl+p"),
			key.WithHelp("C-p", "prev page"),
		),
		ToggleSidebar: key.NewBinding(
			key.WithKeys("ctrl+b"),
			key.WithHelp("C-b", "sidebar"),
		),
		ToggleTheme: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("C-t", "theme"),
		),
		ToggleHistory: key.NewBinding(
			key.WithKeys("alt+h"),
			key.WithHelp("M-h", "history"),
		),
	}
}

// helpKeys merges page and dashboard bindings for the status bar.
type helpKeys struct {
	dash   KeyMap
	chat   chat.KeyMap
	onChat bool
}

// ShortHelp implements help.KeyMap.
func (h helpKeys) ShortHelp() []key.Binding {
	var out []key.Binding
	if h.onChat {
		out = append(out, h.chat.Send, h.chat.Regenerate, h.chat.CopyCode)
	}
	return append(out, h.dash.NextPage, h.dash.ToggleSidebar, h.dash.ToggleTheme, h.dash.Quit)
}

// FullHelp implements help.KeyMap.
func (h helpKeys) FullHelp() [][]key.Binding {
	groups := [][]key.Binding{{
		h.dash.NextPage, h.dash.PrevPage, h.dash.ToggleSidebar,
		h.dash.ToggleTheme, h.dash.ToggleHistory, h.dash.Quit,
	}}
	if h.onChat {
		groups = append(h.chat.FullHelp(), groups...)
	}
	return groups
}
