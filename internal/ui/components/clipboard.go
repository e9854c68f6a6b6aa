// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"errors"
	"log/slog"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/time/rate"
)

// =============================================================================
// CLIPBOARD
// =============================================================================

// ErrClipboardUnsupported is returned when no clipboard utility is available.
var ErrClipboardUnsupported = errors.New("clipboard not supported on this system")

// Clipboard writes text to a clipboard.
type Clipboard interface {
	WriteAll(text string) error
}

// SystemClipboard uses the OS clipboard via atotto/clipboard.
type SystemClipboard struct{}

// WriteAll implements Clipboard.
func (SystemClipboard) WriteAll(text string) error {
	if clipboard.Unsupported {
		return ErrClipboardUnsupported
	}
	return clipboard.WriteAll(text)
}

// copyWarnInterval is the minimum spacing between "copy failed" warnings.
// Failures in between are logged at debug.
const copyWarnInterval = 30 * time.Second

// Copier copies text to a Clipboard. Failures are logged and otherwise
// ignored; they never surface to the user.
type Copier struct {
	cb     Clipboard
	logger *slog.Logger
	warn   *rate.Limiter
}

// NewCopier creates a copier writing to cb. A nil logger discards.
func NewCopier(cb Clipboard, logger *slog.Logger) *Copier {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Copier{
		cb:     cb,
		logger: logger,
		warn:   rate.NewLimiter(rate.Every(copyWarnInterval), 1),
	}
}

// Copy writes text and reports whether it succeeded. what names the
// copied item in log records.
func (c *Copier) Copy(what, text string) bool {
	if c == nil || c.cb == nil {
		return false
	}
	if err := c.cb.WriteAll(text); err != nil {
		if c.warn.Allow() {
			c.logger.Warn("copy to clipboard failed", "what", what, "error", err)
		} else {
			c.logger.Debug("copy to clipboard failed", "what", what, "error", err)
		}
		return false
	}
	return true
}

// =============================================================================
// COPIED FLASH
// =============================================================================

// CopiedFlashDuration is how long a "Copied" confirmation stays visible.
const CopiedFlashDuration = 2 * time.Second

// FlashExpiredMsg ends a Flash. Token ties it to one trigger, so an older
// timer cannot clear a newer flash.
type FlashExpiredMsg struct {
	Key   string
	Token uint64
}

// Flash is a short-lived confirmation state shown after a copy.
type Flash struct {
	key    string
	target string
	token  uint64
	active bool
}

// NewFlash creates a flash addressed by key.
func NewFlash(key string) Flash {
	return Flash{key: key}
}

// Trigger turns the flash on for target and returns the command that
// turns it off again.
func (f *Flash) Trigger(target string) tea.Cmd {
	f.token++
	f.active = true
	f.target = target

	key, token := f.key, f.token
	return tea.Tick(CopiedFlashDuration, func(time.Time) tea.Msg {
		return FlashExpiredMsg{Key: key, Token: token}
	})
}

// Expire handles a FlashExpiredMsg and reports whether it applied.
func (f *Flash) Expire(msg FlashExpiredMsg) bool {
	if msg.Key != f.key || msg.Token != f.token || !f.active {
		return false
	}
	f.active = false
	f.target = ""
	return true
}

// ActiveFor reports whether the flash is showing for target.
func (f Flash) ActiveFor(target string) bool {
	return f.active && f.target == target
}

// Active reports whether the flash is showing.
func (f Flash) Active() bool {
	return f.active
}
