// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package conversation owns the chat log and the simulated assistant.
package conversation

import (
	"io"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/jeranaias/chatdash/internal/model"
)

// =============================================================================
// SNAPSHOT
// =============================================================================

// Snapshot is a consistent, read-only copy of the conversation state.
type Snapshot struct {
	Messages []model.Message
	Pending  bool
	Revision uint64 // bumped on every applied mutation
}

// Last returns the most recent message, if any.
func (s Snapshot) Last() (model.Message, bool) {
	if len(s.Messages) == 0 {
		return model.Message{}, false
	}
	return s.Messages[len(s.Messages)-1], true
}

// LastAssistant returns the most recent assistant message, if any.
func (s Snapshot) LastAssistant() (model.Message, bool) {
	for i := len(s.Messages) - 1; i >= 0; i-- {
		if s.Messages[i].Role.IsAssistant() {
			return s.Messages[i], true
		}
	}
	return model.Message{}, false
}

// =============================================================================
// CONTROLLER
// =============================================================================

// Controller is the single owner and writer of a conversation log.
//
// It is Idle until Submit or Regenerate is accepted, then AwaitingReply until
// the simulated reply lands ReplyLatency later. Calls made while a reply is
// outstanding are rejected, so at most one deferred task exists at a time.
//
// All methods are safe for concurrent use. The reply callback runs on the
// scheduler's goroutine and goes through the same lock as callers.
type Controller struct {
	mu       sync.Mutex
	messages []model.Message
	pending  bool
	closed   bool
	revision uint64
	seq      uint64

	// gen identifies the outstanding reply; a callback with an older gen is stale.
	gen  uint64
	task Task

	scheduler Scheduler
	now       func() time.Time
	notify    func(Snapshot)
	logger    *slog.Logger
	seed      []Entry
}

// Option configures a Controller.
type Option func(*Controller)

// WithScheduler sets the scheduler used for simulated replies.
func WithScheduler(s Scheduler) Option {
	return func(c *Controller) { c.scheduler = s }
}

// WithClock sets the wall clock used to stamp messages.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) { c.now = now }
}

// WithNotify registers fn to be called after every applied mutation.
// fn is called without the controller lock held and must not block for long.
func WithNotify(fn func(Snapshot)) Option {
	return func(c *Controller) { c.notify = fn }
}

// WithLogger sets the logger for state transitions.
func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) { c.logger = l }
}

// WithSeed replaces the default seed log. An empty slice starts with no messages.
func WithSeed(entries []Entry) Option {
	return func(c *Controller) { c.seed = entries }
}

// New creates a controller holding the seed log, in the Idle state.
func New(opts ...Option) *Controller {
	c := &Controller{
		scheduler: ClockScheduler{},
		now:       time.Now,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		seed:      DefaultSeed(),
	}
	for _, opt := range opts {
		opt(c)
	}

	created := c.now()
	c.messages = make([]model.Message, 0, len(c.seed)+2)
	for _, e := range c.seed {
		c.seq++
		c.messages = append(c.messages, model.NewMessage(c.seq, e.Role, e.Content, created.Add(-e.Age)))
	}
	c.seed = nil

	return c
}

// =============================================================================
// OPERATIONS
// =============================================================================

// Submit appends a user message and schedules the simulated reply.
//
// Empty or whitespace-only text is ignored. Calls made while a reply is
// pending, or after Close, are rejected. It reports whether the message
// was accepted; it never fails otherwise.
func (c *Controller) Submit(text string) bool {
	if strings.TrimSpace(text) == "" {
		return false
	}

	c.mu.Lock()
	if reason := c.rejectReasonLocked(); reason != "" {
		c.mu.Unlock()
		c.logger.Debug("submit rejected", "reason", reason)
		return false
	}

	c.appendLocked(model.RoleUser, text)
	c.scheduleReplyLocked(ReplyText)
	snap := c.snapshotLocked()
	c.mu.Unlock()

	c.logger.Debug("submit accepted", "messages", len(snap.Messages), "revision", snap.Revision)
	c.emit(snap)
	return true
}

// Regenerate drops the trailing assistant message, if the log ends with
// one, and schedules a replacement reply. A log ending in a user message
// (or an empty log) is left as is and still receives a reply.
//
// Like Submit it is rejected while a reply is pending or after Close.
func (c *Controller) Regenerate() bool {
	c.mu.Lock()
	if reason := c.rejectReasonLocked(); reason != "" {
		c.mu.Unlock()
		c.logger.Debug("regenerate rejected", "reason", reason)
		return false
	}

	removed := false
	if n := len(c.messages); n > 0 && c.messages[n-1].Role.IsAssistant() {
		c.messages = c.messages[:n-1]
		removed = true
	}
	c.scheduleReplyLocked(RegeneratedReplyText)
	snap := c.snapshotLocked()
	c.mu.Unlock()

	c.logger.Debug("regenerate accepted", "removed_last", removed, "revision", snap.Revision)
	c.emit(snap)
	return true
}

// Close cancels any outstanding reply and freezes the state. Safe to call
// more than once.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}
	c.closed = true
	if c.task != nil {
		c.task.Cancel()
		c.task = nil
	}
	c.logger.Debug("conversation closed", "pending", c.pending)
}

// =============================================================================
// READ ACCESSORS
// =============================================================================

// Messages returns a copy of the ordered message log.
func (c *Controller) Messages() []model.Message {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.copyMessagesLocked()
}

// Pending reports whether a simulated reply is outstanding.
func (c *Controller) Pending() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pending
}

// Snapshot returns messages, pending flag and revision read atomically.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

// Closed reports whether Close has been called.
func (c *Controller) Closed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}

// =============================================================================
// INTERNALS
// =============================================================================

func (c *Controller) rejectReasonLocked() string {
	switch {
	case c.closed:
		return "closed"
	case c.pending:
		return "reply pending"
	default:
		return ""
	}
}

func (c *Controller) appendLocked(role model.Role, content string) {
	c.seq++
	c.messages = append(c.messages, model.NewMessage(c.seq, role, content, c.now()))
}

// scheduleReplyLocked moves to AwaitingReply and arms the deferred completion.
func (c *Controller) scheduleReplyLocked(reply string) {
	c.pending = true
	c.revision++
	c.gen++
	gen := c.gen
	c.task = c.scheduler.Schedule(ReplyLatency, func() {
		c.complete(gen, reply)
	})
}

// complete is the deferred half of Submit and Regenerate.
func (c *Controller) complete(gen uint64, reply string) {
	c.mu.Lock()
	if c.closed || !c.pending || gen != c.gen {
		c.mu.Unlock()
		return
	}
	c.appendLocked(model.RoleAssistant, reply)
	c.pending = false
	c.task = nil
	c.revision++
	snap := c.snapshotLocked()
	c.mu.Unlock()

	c.logger.Debug("reply delivered", "messages", len(snap.Messages), "revision", snap.Revision)
	c.emit(snap)
}

func (c *Controller) snapshotLocked() Snapshot {
	return Snapshot{
		Messages: c.copyMessagesLocked(),
		Pending:  c.pending,
		Revision: c.revision,
	}
}

func (c *Controller) copyMessagesLocked() []model.Message {
	out := make([]model.Message, len(c.messages))
	copy(out, c.messages)
	return out
}

func (c *Controller) emit(snap Snapshot) {
	if c.notify != nil {
		c.notify(snap)
	}
}
