// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"github.com/charmbracelet/bubbles/key"
)

// =============================================================================
// KEY MAP DEFINITION
// =============================================================================

// KeyMap defines the keyboard bindings of the chat page.
type KeyMap struct {
	Send        key.Binding
	Newline     key.Binding
	Regenerate  key.Binding
	NextTab     key.Binding
	PrevTab     key.Binding
	CopyCode    key.Binding
	ThumbsUp    key.Binding
	ThumbsDown  key.Binding
	CopyMessage key.Binding
	PageUp      key.Binding
	PageDown    key.Binding
}

// DefaultKeyMap returns the default key bindings for the chat page.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Send: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "send"),
		),
		Newline: key.NewBinding(
			key.WithKeys("alt+enter"),
			key.WithHelp("alt+enter", "newline"),
		),
		Regenerate: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("C-r", "regenerate"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next code tab"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("S-tab", "prev code tab"),
		),
		CopyCode: key.NewBinding(
			key.WithKeys("ctrl+y"),
			key.WithHelp("C-y", "copy code"),
		),
		ThumbsUp: key.NewBinding(
			key.WithKeys("alt+u"),
			key.WithHelp("M-u", "good reply"),
		),
		ThumbsDown: key.NewBinding(
			key.WithKeys("alt+d"),
			key.WithHelp("M-d", "bad reply"),
		),
		CopyMessage: key.NewBinding(
			key.WithKeys("alt+c"),
			key.WithHelp("M-c", "copy reply"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("PgUp", "scroll up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("PgDn", "scroll down"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Send, k.Newline, k.Regenerate, k.CopyCode}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Send, k.Newline, k.Regenerate},
		{k.NextTab, k.PrevTab, k.CopyCode},
		{k.ThumbsUp, k.ThumbsDown, k.CopyMessage},
		{k.PageUp, k.PageDown},
	}
}
