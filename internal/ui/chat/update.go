// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/text/unicode/norm"

	"github.com/jeranaias/chatdash/internal/ui/components"
)

// =============================================================================
// BUBBLE TEA INTERFACE
// =============================================================================

// Init starts the cursor blink and the change wait loop.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textarea.Blink, m.notifier.Wait())
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case ConversationChangedMsg:
		cmd := m.sync()
		return m, tea.Batch(cmd, m.notifier.Wait())

	case components.FlashExpiredMsg:
		if m.code.Update(msg) || m.messages.Update(msg) {
			m.refresh(false)
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.thinking, cmd = m.thinking.Update(msg)
		if m.thinking.Active() {
			m.refresh(false)
		}
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// =============================================================================
// KEY HANDLING
// =============================================================================

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Send):
		m.send()
		return m, nil

	case key.Matches(msg, m.keys.Regenerate):
		m.ctrl.Regenerate()
		return m, nil

	case key.Matches(msg, m.keys.NextTab):
		m.code.NextTab()
		m.refresh(false)
		return m, nil

	case key.Matches(msg, m.keys.PrevTab):
		m.code.PrevTab()
		m.refresh(false)
		return m, nil

	case key.Matches(msg, m.keys.CopyCode):
		cmd := m.code.Copy()
		m.refresh(false)
		return m, cmd

	case key.Matches(msg, m.keys.ThumbsUp):
		m.pressFeedback(components.FeedbackUp)
		return m, nil

	case key.Matches(msg, m.keys.ThumbsDown):
		m.pressFeedback(components.FeedbackDown)
		return m, nil

	case key.Matches(msg, m.keys.CopyMessage):
		return m, m.copyLastReply()

	case key.Matches(msg, m.keys.PageUp):
		m.viewport.ViewUp()
		return m, nil

	case key.Matches(msg, m.keys.PageDown):
		m.viewport.ViewDown()
		return m, nil
	}

	// The input is disabled while a reply is pending.
	if !m.input.Focused() {
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// send submits the input. Whitespace-only input is ignored; the text is
// trimmed and NFC-normalized before it reaches the controller.
func (m *Model) send() {
	if m.snapshot.Pending {
		return
	}
	text := norm.NFC.String(strings.TrimSpace(m.input.Value()))
	if text == "" {
		return
	}
	if !m.ctrl.Submit(text) {
		m.logger.Debug("input kept, submit rejected", "chars", len(text))
		return
	}
	m.input.Reset()
}

// pressFeedback toggles a feedback button on the latest assistant reply.
func (m *Model) pressFeedback(button components.Feedback) {
	reply, ok := m.snapshot.LastAssistant()
	if !ok {
		return
	}
	m.messages.PressFeedback(reply.ID, button)
	m.refresh(false)
}

// copyLastReply copies the latest assistant reply to the clipboard.
func (m *Model) copyLastReply() tea.Cmd {
	reply, ok := m.snapshot.LastAssistant()
	if !ok {
		return nil
	}
	if !m.copier.Copy("message", reply.Content) {
		return nil
	}
	cmd := m.messages.MarkCopied(reply.ID)
	m.refresh(false)
	return cmd
}

// =============================================================================
// SYNCHRONIZATION
// =============================================================================

// sync re-reads the controller snapshot. Snapshots older than the one
// already rendered are dropped. The viewport follows the tail whenever the
// message count changes; the input is disabled while a reply is pending.
func (m *Model) sync() tea.Cmd {
	snap := m.ctrl.Snapshot()
	if snap.Revision < m.snapshot.Revision {
		return nil
	}
	countChanged := len(snap.Messages) != len(m.snapshot.Messages)
	wasPending := m.snapshot.Pending
	m.snapshot = snap

	var cmd tea.Cmd
	switch {
	case snap.Pending && !wasPending:
		m.input.Blur()
		cmd = m.thinking.Start()
	case !snap.Pending && wasPending:
		m.thinking.Stop()
		cmd = m.input.Focus()
	}

	// The thinking row appears and disappears at the tail too.
	m.refresh(countChanged || snap.Pending != wasPending)
	return cmd
}
