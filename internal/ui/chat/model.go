// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"

	"github.com/jeranaias/chatdash/internal/catalog"
	"github.com/jeranaias/chatdash/internal/conversation"
	"github.com/jeranaias/chatdash/internal/logging"
	"github.com/jeranaias/chatdash/internal/ui/components"
	"github.com/jeranaias/chatdash/internal/ui/styles"
)

// Layout constants for the chat page.
const (
	inputHeight  = 3
	minViewport  = 3
	defaultWidth = 80
	// chromeHeight is everything below the viewport: regenerate hint,
	// bordered input and disclaimer.
	chromeHeight = 1 + inputHeight + 2 + 1
)

// =============================================================================
// MODEL
// =============================================================================

// Model is the chat page: conversation viewport, code display, thinking
// indicator and input. Conversation state is owned by the controller;
// the model renders snapshots of it.
type Model struct {
	ctrl     *conversation.Controller
	notifier *Notifier
	logger   *slog.Logger
	theme    *styles.Theme
	keys     KeyMap

	viewport viewport.Model
	input    textarea.Model
	thinking components.Thinking
	messages *components.MessageList
	code     *components.CodeDisplay
	copier   *components.Copier

	snapshot conversation.Snapshot
	width    int
	height   int
	now      func() time.Time
}

// options collects construction settings.
type options struct {
	logger    *slog.Logger
	clipboard components.Clipboard
	codeStyle string
	mdStyle   string
	now       func() time.Time
	convOpts  []conversation.Option
}

// Option configures a Model.
type Option func(*options)

// WithLogger sets the logger used by the page and its controller.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithClipboard replaces the system clipboard.
func WithClipboard(cb components.Clipboard) Option {
	return func(o *options) { o.clipboard = cb }
}

// WithCodeStyle sets the chroma style of the code display.
func WithCodeStyle(style string) Option {
	return func(o *options) { o.codeStyle = style }
}

// WithMarkdownStyle forces a glamour style instead of following the theme.
func WithMarkdownStyle(style string) Option {
	return func(o *options) { o.mdStyle = style }
}

// WithClock sets the clock used for relative timestamps.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// WithConversationOptions passes options through to the controller.
func WithConversationOptions(opts ...conversation.Option) Option {
	return func(o *options) { o.convOpts = append(o.convOpts, opts...) }
}

// New creates the chat page and its conversation controller.
func New(theme *styles.Theme, opts ...Option) Model {
	o := options{
		logger:    logging.Discard(),
		clipboard: components.SystemClipboard{},
		codeStyle: "monokai",
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(&o)
	}

	notifier := NewNotifier()
	convOpts := append([]conversation.Option{
		conversation.WithLogger(o.logger),
		conversation.WithClock(o.now),
	}, o.convOpts...)
	convOpts = append(convOpts, conversation.WithNotify(notifier.Notify))
	ctrl := conversation.New(convOpts...)

	ta := textarea.New()
	ta.Placeholder = catalog.InputHint
	ta.ShowLineNumbers = false
	ta.Prompt = ""
	ta.CharLimit = 4096
	ta.SetHeight(inputHeight)
	ta.KeyMap.InsertNewline.SetKeys("alt+enter")
	ta.Focus()

	mdStyle := o.mdStyle
	if mdStyle == "" {
		mdStyle = glamourStyleFor(theme)
	}

	m := Model{
		ctrl:     ctrl,
		notifier: notifier,
		logger:   o.logger,
		theme:    theme,
		keys:     DefaultKeyMap(),
		viewport: viewport.New(defaultWidth, 20),
		input:    ta,
		thinking: components.NewThinking(theme),
		messages: components.NewMessageList(theme, components.NewMarkdown(mdStyle)),
		code:     components.NewCodeDisplay(theme, catalog.CodeSamples, o.codeStyle, o.clipboard, o.logger),
		copier:   components.NewCopier(o.clipboard, o.logger),
		now:      o.now,
	}
	m.SetSize(defaultWidth, 24)
	m.sync()
	return m
}

// glamourStyleFor picks the glamour standard style matching a theme.
func glamourStyleFor(theme *styles.Theme) string {
	if theme.IsDark() {
		return "dark"
	}
	return "light"
}

// =============================================================================
// ACCESSORS
// =============================================================================

// Controller returns the conversation controller.
func (m *Model) Controller() *conversation.Controller {
	return m.ctrl
}

// Snapshot returns the last snapshot the page rendered.
func (m *Model) Snapshot() conversation.Snapshot {
	return m.snapshot
}

// Keys returns the page key bindings.
func (m *Model) Keys() KeyMap {
	return m.keys
}

// InputValue returns the current input text.
func (m *Model) InputValue() string {
	return m.input.Value()
}

// InputEnabled reports whether the input accepts keystrokes.
func (m *Model) InputEnabled() bool {
	return m.input.Focused()
}

// Code returns the code display.
func (m *Model) Code() *components.CodeDisplay {
	return m.code
}

// Messages returns the message list view state.
func (m *Model) Messages() *components.MessageList {
	return m.messages
}

// Viewport returns the conversation viewport.
func (m *Model) Viewport() viewport.Model {
	return m.viewport
}

// =============================================================================
// LIFECYCLE
// =============================================================================

// Close disposes of the controller and ends the notification wait. A
// pending reply is cancelled.
func (m *Model) Close() {
	m.ctrl.Close()
	m.notifier.Stop()
}

// SetTheme switches the theme of every sub-component.
func (m *Model) SetTheme(theme *styles.Theme) {
	m.theme = theme
	m.thinking.SetTheme(theme)
	m.messages.SetTheme(theme)
	m.code.SetTheme(theme)
	if m.messages.Markdown().Style() == "dark" || m.messages.Markdown().Style() == "light" {
		m.messages.Markdown().SetStyle(glamourStyleFor(theme))
	}
	m.refresh(false)
}

// SetCodeStyle changes the chroma style of the code display.
func (m *Model) SetCodeStyle(style string) {
	m.code.SetStyle(style)
	m.refresh(false)
}

// SetSize lays the page out for width x height cells.
func (m *Model) SetSize(width, height int) {
	atBottom := m.viewport.AtBottom()
	m.width = width
	m.height = height

	vh := height - chromeHeight
	if vh < minViewport {
		vh = minViewport
	}
	m.viewport.Width = width
	m.viewport.Height = vh
	// Border, padding and the send button take eight columns.
	m.input.SetWidth(width - 8)
	m.code.SetWidth(width - 2)
	m.refresh(atBottom)
}
