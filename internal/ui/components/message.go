// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/chatdash/internal/model"
	"github.com/jeranaias/chatdash/internal/ui/styles"
)

// =============================================================================
// FEEDBACK
// =============================================================================

// Feedback is the thumbs up/down state of an assistant message.
type Feedback int

const (
	FeedbackNone Feedback = iota
	FeedbackUp
	FeedbackDown
)

// Toggle applies a press of button: pressing the selected button clears it,
// pressing the other one switches to it.
func (f Feedback) Toggle(button Feedback) Feedback {
	if f == button {
		return FeedbackNone
	}
	return button
}

// =============================================================================
// MESSAGE LIST COMPONENT
// =============================================================================

// messageFlashKey addresses the message copy flash.
const messageFlashKey = "message"

// MessageList renders the conversation and owns per-message view state:
// feedback selections and the copy confirmation.
type MessageList struct {
	theme    *styles.Theme
	markdown *Markdown
	feedback map[string]Feedback
	flash    Flash
}

// NewMessageList creates a message list that renders content with md.
func NewMessageList(theme *styles.Theme, md *Markdown) *MessageList {
	return &MessageList{
		theme:    theme,
		markdown: md,
		feedback: make(map[string]Feedback),
		flash:    NewFlash(messageFlashKey),
	}
}

// SetTheme replaces the theme.
func (ml *MessageList) SetTheme(theme *styles.Theme) {
	ml.theme = theme
}

// Markdown returns the content renderer.
func (ml *MessageList) Markdown() *Markdown {
	return ml.markdown
}

// PressFeedback toggles a feedback button on the message with id.
func (ml *MessageList) PressFeedback(id string, button Feedback) Feedback {
	next := ml.feedback[id].Toggle(button)
	if next == FeedbackNone {
		delete(ml.feedback, id)
	} else {
		ml.feedback[id] = next
	}
	return next
}

// FeedbackFor returns the feedback selected on the message with id.
func (ml *MessageList) FeedbackFor(id string) Feedback {
	return ml.feedback[id]
}

// MarkCopied shows the "Copied" confirmation on the message with id.
func (ml *MessageList) MarkCopied(id string) tea.Cmd {
	return ml.flash.Trigger(id)
}

// CopiedShowing reports whether the confirmation is showing on id.
func (ml *MessageList) CopiedShowing(id string) bool {
	return ml.flash.ActiveFor(id)
}

// Update handles flash expiry. It reports whether the view changed.
func (ml *MessageList) Update(msg tea.Msg) bool {
	if m, ok := msg.(FlashExpiredMsg); ok {
		return ml.flash.Expire(m)
	}
	return false
}

// View renders msgs in order at width. Timestamps are relative to now.
func (ml *MessageList) View(msgs []model.Message, width int, now time.Time) string {
	rows := make([]string, 0, len(msgs))
	for _, msg := range msgs {
		rows = append(rows, ml.renderMessage(msg, width, now))
	}
	return strings.Join(rows, "\n\n")
}

// renderMessage renders one row: avatar, badge, timestamp, content and,
// for the assistant, the feedback controls.
func (ml *MessageList) renderMessage(msg model.Message, width int, now time.Time) string {
	t := ml.theme
	contentWidth := width - 4
	if contentWidth < 20 {
		contentWidth = 20
	}

	var avatar string
	if msg.Role.IsAssistant() {
		avatar = t.AssistantAvatar.Render(styles.Indicators.Bot)
	} else {
		avatar = t.UserAvatar.Render(styles.Indicators.User)
	}

	header := lipgloss.JoinHorizontal(lipgloss.Center,
		avatar, " ",
		t.RoleBadge.Render(msg.Role.DisplayName()), " ",
		t.Timestamp.Render(msg.Timestamp(now)),
	)

	parts := []string{header, ml.markdown.Render(msg.Content, contentWidth)}
	if msg.Role.IsAssistant() {
		parts = append(parts, ml.renderActions(msg.ID))
	}

	row := t.UserRow
	if msg.Role.IsAssistant() {
		row = t.AssistantRow
	}
	return row.Width(width).Render(strings.Join(parts, "\n"))
}

// renderActions renders the thumbs up/down and copy controls.
func (ml *MessageList) renderActions(id string) string {
	t := ml.theme
	fb := ml.feedback[id]

	up := t.FeedbackButton.Render(styles.Indicators.ThumbsUp)
	if fb == FeedbackUp {
		up = t.FeedbackUpActive.Render(styles.Indicators.ThumbsUp)
	}
	down := t.FeedbackButton.Render(styles.Indicators.ThumbsDown)
	if fb == FeedbackDown {
		down = t.FeedbackDownActive.Render(styles.Indicators.ThumbsDown)
	}

	copyBtn := t.FeedbackButton.Render(styles.Indicators.Copy)
	if ml.flash.ActiveFor(id) {
		copyBtn = t.CopiedNote.Render(styles.Indicators.Copied + " Copied")
	}

	return strings.Join([]string{up, down, copyBtn}, " ")
}
