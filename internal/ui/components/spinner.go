// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/chatdash/internal/catalog"
	"github.com/jeranaias/chatdash/internal/ui/styles"
)

// =============================================================================
// THINKING INDICATOR
// =============================================================================

// Thinking is the "AI is thinking..." row shown while a reply is pending.
type Thinking struct {
	spinner spinner.Model
	theme   *styles.Theme
	label   string
	active  bool
}

// NewThinking creates an inactive thinking indicator.
func NewThinking(theme *styles.Theme) Thinking {
	return Thinking{
		spinner: newSpinnerModel(styles.LineSpinner),
		theme:   theme,
		label:   catalog.ThinkingLabel,
	}
}

// newSpinnerModel builds a bubbles spinner from a style config.
func newSpinnerModel(cfg styles.SpinnerConfig) spinner.Model {
	s := spinner.New()
	s.Spinner = spinner.Spinner{
		Frames: cfg.Frames,
		FPS:    cfg.Interval(),
	}
	return s
}

// SetTheme replaces the theme.
func (t *Thinking) SetTheme(theme *styles.Theme) {
	t.theme = theme
}

// Active reports whether the indicator is animating.
func (t Thinking) Active() bool {
	return t.active
}

// Start activates the indicator and returns the first tick, or nil if it
// is already running.
func (t *Thinking) Start() tea.Cmd {
	if t.active {
		return nil
	}
	t.active = true
	return t.spinner.Tick
}

// Stop deactivates the indicator. Pending ticks are dropped by Update.
func (t *Thinking) Stop() {
	t.active = false
}

// Update advances the animation. Ticks are ignored while inactive, which
// ends the tick loop.
func (t Thinking) Update(msg tea.Msg) (Thinking, tea.Cmd) {
	if _, ok := msg.(spinner.TickMsg); ok && !t.active {
		return t, nil
	}
	var cmd tea.Cmd
	t.spinner, cmd = t.spinner.Update(msg)
	return t, cmd
}

// View renders the indicator, or nothing while inactive.
func (t Thinking) View() string {
	if !t.active {
		return ""
	}
	return t.theme.AssistantAvatar.Render(styles.Indicators.Bot) + " " +
		t.theme.Spinner.Render(t.spinner.View()) + " " +
		t.theme.ThinkingText.Render(t.label)
}
