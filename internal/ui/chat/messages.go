// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/chatdash/internal/conversation"
)

// =============================================================================
// CONVERSATION MESSAGES
// =============================================================================

// ConversationChangedMsg reports that the controller state changed. The
// model re-reads the snapshot on receipt; the message carries no state.
type ConversationChangedMsg struct{}

// =============================================================================
// NOTIFIER
// =============================================================================

// Notifier bridges controller notifications into the Bubble Tea loop.
// Notify is safe from any goroutine and never blocks; bursts coalesce into
// a single pending signal.
type Notifier struct {
	ch   chan struct{}
	done chan struct{}
	once sync.Once
}

// NewNotifier creates a notifier.
func NewNotifier() *Notifier {
	return &Notifier{
		ch:   make(chan struct{}, 1),
		done: make(chan struct{}),
	}
}

// Notify signals a change. It matches conversation.WithNotify.
func (n *Notifier) Notify(conversation.Snapshot) {
	select {
	case n.ch <- struct{}{}:
	default:
	}
}

// Wait returns a command that blocks until the next change. After Stop it
// yields nil, ending the wait loop.
func (n *Notifier) Wait() tea.Cmd {
	return func() tea.Msg {
		select {
		case <-n.ch:
			return ConversationChangedMsg{}
		case <-n.done:
			return nil
		}
	}
}

// Stop releases any pending Wait. Safe to call more than once.
func (n *Notifier) Stop() {
	n.once.Do(func() { close(n.done) })
}
