// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/chatdash/internal/catalog"
	"github.com/jeranaias/chatdash/internal/ui/components"
)

// minCodeMessages is how many messages the log needs before the code
// display is shown.
const minCodeMessages = 2

// =============================================================================
// VIEW
// =============================================================================

// View renders the chat page.
func (m Model) View() string {
	t := m.theme

	regenStyle := t.ShortcutKey
	if m.snapshot.Pending {
		regenStyle = t.ShortcutDesc
	}
	regenLine := lipgloss.PlaceHorizontal(m.width, lipgloss.Center,
		regenStyle.Render("[C-r] "+catalog.RegenerateHint))

	inputBox := t.InputContainer
	if m.snapshot.Pending {
		inputBox = t.InputDisabled
	}
	send := t.PrimaryButton.Render(">")
	input := inputBox.Width(m.width - 2).Render(
		lipgloss.JoinHorizontal(lipgloss.Bottom, m.input.View(), " ", send),
	)

	disclaimer := t.Disclaimer.Width(m.width).Render(
		components.Truncate(catalog.Disclaimer, m.width-lipgloss.Width(catalog.TermsLink)-1) +
			" " + t.DisclaimerLink.Render(catalog.TermsLink),
	)

	return strings.Join([]string{
		m.viewport.View(),
		regenLine,
		input,
		disclaimer,
	}, "\n")
}

// refresh re-renders the viewport content. With toBottom the viewport
// jumps to the last line.
func (m *Model) refresh(toBottom bool) {
	width := m.viewport.Width
	if width <= 0 {
		width = defaultWidth
	}

	sections := []string{m.messages.View(m.snapshot.Messages, width, m.now())}
	if len(m.snapshot.Messages) >= minCodeMessages {
		sections = append(sections, m.code.View(), components.RenderInfoNote(m.theme, width))
	}
	if m.thinking.Active() {
		sections = append(sections, m.thinking.View())
	}

	m.viewport.SetContent(strings.Join(sections, "\n\n"))
	if toBottom {
		m.viewport.GotoBottom()
	}
}
