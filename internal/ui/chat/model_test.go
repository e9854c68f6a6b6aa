// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/chatdash/internal/catalog"
	"github.com/jeranaias/chatdash/internal/conversation"
	"github.com/jeranaias/chatdash/internal/model"
	"github.com/jeranaias/chatdash/internal/ui/components"
	"github.com/jeranaias/chatdash/internal/ui/styles"
)

// =============================================================================
// TEST HELPERS
// =============================================================================

type fakeClipboard struct {
	writes []string
	err    error
}

func (f *fakeClipboard) WriteAll(text string) error {
	if f.err != nil {
		return f.err
	}
	f.writes = append(f.writes, text)
	return nil
}

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func newTestModel(t *testing.T) (Model, *conversation.ManualScheduler, *fakeClipboard) {
	t.Helper()
	sched := conversation.NewManualScheduler()
	cb := &fakeClipboard{}
	m := New(styles.NewThemeWithMode(styles.ModeDark),
		WithClipboard(cb),
		WithMarkdownStyle("notty"),
		WithClock(func() time.Time { return testNow }),
		WithConversationOptions(conversation.WithScheduler(sched)),
	)
	m.SetSize(100, 40)
	t.Cleanup(m.Close)
	return m, sched, cb
}

func typeText(m Model, s string) Model {
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
	return m
}

func press(m Model, k tea.KeyMsg) (Model, tea.Cmd) {
	return m.Update(k)
}

func alt(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}, Alt: true}
}

// pump delivers one controller notification through the notifier, the
// way the program loop would.
func pump(t *testing.T, m Model) Model {
	t.Helper()
	msg := m.notifier.Wait()()
	require.IsType(t, ConversationChangedMsg{}, msg)
	m, _ = m.Update(msg)
	return m
}

func contents(msgs []model.Message) []string {
	out := make([]string, len(msgs))
	for i, msg := range msgs {
		out[i] = msg.Content
	}
	return out
}

// =============================================================================
// SEED AND RENDERING
// =============================================================================

func TestNew_RendersSeed(t *testing.T) {
	m, _, _ := newTestModel(t)

	snap := m.Snapshot()
	require.Len(t, snap.Messages, 2)
	assert.False(t, snap.Pending)
	assert.True(t, m.InputEnabled())

	// The view opens scrolled to the tail.
	assert.True(t, m.Viewport().AtBottom())

	m.viewport.GotoTop()
	content := ansi.Strip(m.Viewport().View())
	assert.Contains(t, content, "You")
	assert.Contains(t, content, "AI Assistant")

	view := ansi.Strip(m.View())
	assert.Contains(t, view, catalog.RegenerateHint)
	assert.Contains(t, view, "Check our terms")
}

func TestView_CodeDisplayNeedsTwoMessages(t *testing.T) {
	sched := conversation.NewManualScheduler()
	m := New(styles.NewThemeWithMode(styles.ModeDark),
		WithClipboard(&fakeClipboard{}),
		WithMarkdownStyle("notty"),
		WithConversationOptions(conversation.WithScheduler(sched), conversation.WithSeed(nil)),
	)
	defer m.Close()
	m.SetSize(100, 60)

	assert.NotContains(t, ansi.Strip(m.Viewport().View()), "Copy code")

	m = typeText(m, "hi")
	m, _ = press(m, tea.KeyMsg{Type: tea.KeyEnter})
	m = pump(t, m)
	sched.Advance(conversation.ReplyLatency)
	m = pump(t, m)

	require.Len(t, m.Snapshot().Messages, 2)
	m.viewport.GotoTop()
	assert.Contains(t, ansi.Strip(m.Viewport().View()), "Copy code")
}

// =============================================================================
// SEND
// =============================================================================

func TestSend_DisablesInputUntilReply(t *testing.T) {
	m, sched, _ := newTestModel(t)

	m = typeText(m, "  hello  ")
	m, _ = press(m, tea.KeyMsg{Type: tea.KeyEnter})
	m = pump(t, m)

	snap := m.Snapshot()
	require.Len(t, snap.Messages, 3)
	assert.True(t, snap.Pending)
	assert.Equal(t, "hello", snap.Messages[2].Content)
	assert.Empty(t, m.InputValue(), "input cleared on send")
	assert.False(t, m.InputEnabled())
	assert.Contains(t, ansi.Strip(m.Viewport().View()), catalog.ThinkingLabel)

	// Keystrokes and sends are ignored while pending.
	m = typeText(m, "more")
	assert.Empty(t, m.InputValue())
	m, _ = press(m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, 1, sched.Pending())

	sched.Advance(conversation.ReplyLatency)
	m = pump(t, m)

	snap = m.Snapshot()
	require.Len(t, snap.Messages, 4)
	assert.False(t, snap.Pending)
	assert.Equal(t, conversation.ReplyText, snap.Messages[3].Content)
	assert.True(t, m.InputEnabled())
	assert.NotContains(t, ansi.Strip(m.Viewport().View()), catalog.ThinkingLabel)
}

func TestSend_WhitespaceIgnored(t *testing.T) {
	m, sched, _ := newTestModel(t)

	m = typeText(m, "   ")
	m, _ = press(m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Len(t, m.Snapshot().Messages, 2)
	assert.Zero(t, sched.Pending())
	assert.True(t, m.InputEnabled())
}

func TestSend_NormalizesToNFC(t *testing.T) {
	m, _, _ := newTestModel(t)

	// "e" followed by a combining acute accent.
	m = typeText(m, "cafe\u0301")
	m, _ = press(m, tea.KeyMsg{Type: tea.KeyEnter})
	m = pump(t, m)

	last, ok := m.Snapshot().Last()
	require.True(t, ok)
	assert.Equal(t, "caf\u00e9", last.Content)
}

func TestNewline_DoesNotSend(t *testing.T) {
	m, sched, _ := newTestModel(t)

	m = typeText(m, "line one")
	m, _ = press(m, tea.KeyMsg{Type: tea.KeyEnter, Alt: true})
	m = typeText(m, "line two")

	assert.Equal(t, "line one\nline two", m.InputValue())
	assert.Zero(t, sched.Pending())
}

// =============================================================================
// REGENERATE
// =============================================================================

func TestRegenerate_ReplacesLastReply(t *testing.T) {
	m, sched, _ := newTestModel(t)
	before := contents(m.Snapshot().Messages)

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyCtrlR})
	m = pump(t, m)
	assert.Len(t, m.Snapshot().Messages, 1)
	assert.True(t, m.Snapshot().Pending)

	sched.Advance(conversation.ReplyLatency)
	m = pump(t, m)

	after := contents(m.Snapshot().Messages)
	require.Len(t, after, 2)
	assert.Equal(t, before[0], after[0])
	assert.Equal(t, conversation.RegeneratedReplyText, after[1])
}

// =============================================================================
// AUTO-SCROLL
// =============================================================================

func TestAutoScroll_FollowsNewMessages(t *testing.T) {
	m, sched, _ := newTestModel(t)
	m.SetSize(100, 14)
	m.viewport.GotoTop()

	m = typeText(m, "scroll please")
	m, _ = press(m, tea.KeyMsg{Type: tea.KeyEnter})
	m = pump(t, m)
	assert.True(t, m.Viewport().AtBottom())

	m.viewport.GotoTop()
	sched.Advance(conversation.ReplyLatency)
	m = pump(t, m)
	assert.True(t, m.Viewport().AtBottom())
}

func TestSetSize_KeepsScrollAnchor(t *testing.T) {
	m, _, _ := newTestModel(t)
	require.True(t, m.Viewport().AtBottom())

	m.SetSize(90, 14)
	assert.True(t, m.Viewport().AtBottom(), "tail stays pinned")

	m.viewport.GotoTop()
	m.SetSize(100, 16)
	assert.Equal(t, 0, m.Viewport().YOffset, "reader position kept")
}

// =============================================================================
// CODE DISPLAY AND FEEDBACK
// =============================================================================

func TestCodeDisplay_TabsAndCopy(t *testing.T) {
	m, _, cb := newTestModel(t)

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, 1, m.Code().ActiveIndex())
	m, _ = press(m, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, 0, m.Code().ActiveIndex())

	m, cmd := press(m, tea.KeyMsg{Type: tea.KeyCtrlY})
	require.NotNil(t, cmd)
	assert.Equal(t, []string{catalog.CodeSamples[0].Code}, cb.writes)
	assert.True(t, m.Code().Copied())

	m, _ = m.Update(components.FlashExpiredMsg{Key: "code", Token: 1})
	assert.False(t, m.Code().Copied())
}

func TestCopyReply_FailureIsIgnored(t *testing.T) {
	m, _, cb := newTestModel(t)
	cb.err = errors.New("no clipboard")

	m, cmd := press(m, alt('c'))
	assert.Nil(t, cmd)
	reply, ok := m.Snapshot().LastAssistant()
	require.True(t, ok)
	assert.False(t, m.Messages().CopiedShowing(reply.ID))
}

func TestFeedbackAndCopyReply(t *testing.T) {
	m, _, cb := newTestModel(t)
	reply, ok := m.Snapshot().LastAssistant()
	require.True(t, ok)

	m, _ = press(m, alt('u'))
	assert.Equal(t, components.FeedbackUp, m.Messages().FeedbackFor(reply.ID))
	m, _ = press(m, alt('d'))
	assert.Equal(t, components.FeedbackDown, m.Messages().FeedbackFor(reply.ID))
	m, _ = press(m, alt('d'))
	assert.Equal(t, components.FeedbackNone, m.Messages().FeedbackFor(reply.ID))

	m, cmd := press(m, alt('c'))
	require.NotNil(t, cmd)
	assert.Equal(t, []string{reply.Content}, cb.writes)
	assert.True(t, m.Messages().CopiedShowing(reply.ID))
}

// =============================================================================
// LIFECYCLE
// =============================================================================

func TestClose_CancelsPendingReply(t *testing.T) {
	m, sched, _ := newTestModel(t)

	m = typeText(m, "bye")
	m, _ = press(m, tea.KeyMsg{Type: tea.KeyEnter})
	m = pump(t, m)
	require.True(t, m.Snapshot().Pending)

	m.Close()
	assert.Zero(t, sched.Advance(time.Hour), "pending reply cancelled")
	assert.True(t, m.Controller().Closed())
	assert.Len(t, m.Controller().Messages(), 3)
	assert.Nil(t, m.notifier.Wait()(), "wait loop ends after close")
}

func TestSync_DropsStaleSnapshots(t *testing.T) {
	m, _, _ := newTestModel(t)
	m = typeText(m, "x")
	m, _ = press(m, tea.KeyMsg{Type: tea.KeyEnter})
	m = pump(t, m)
	rev := m.Snapshot().Revision

	m.snapshot.Revision = rev + 10
	m.sync()
	assert.Equal(t, rev+10, m.Snapshot().Revision, "older controller state is not applied")
}

func TestNotifier_Coalesces(t *testing.T) {
	n := NewNotifier()
	n.Notify(conversation.Snapshot{})
	n.Notify(conversation.Snapshot{})
	n.Notify(conversation.Snapshot{})

	assert.Equal(t, ConversationChangedMsg{}, n.Wait()())
	n.Stop()
	n.Stop()
	assert.Nil(t, n.Wait()())
}
