// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/chatdash/internal/catalog"
	"github.com/jeranaias/chatdash/internal/logging"
	"github.com/jeranaias/chatdash/internal/ui/styles"
)

func newTestCodeDisplay(cb Clipboard) *CodeDisplay {
	return NewCodeDisplay(styles.NewThemeWithMode(styles.ModeDark), catalog.CodeSamples, "monokai", cb, logging.Discard())
}

func TestCodeDisplay_Tabs(t *testing.T) {
	c := newTestCodeDisplay(&fakeClipboard{})
	assert.Equal(t, 0, c.ActiveIndex())

	c.NextTab()
	sample, ok := c.Active()
	require.True(t, ok)
	assert.Equal(t, "CSS", sample.Tab)

	c.NextTab()
	c.NextTab()
	assert.Equal(t, 0, c.ActiveIndex(), "wraps forwards")

	c.PrevTab()
	assert.Equal(t, 2, c.ActiveIndex(), "wraps backwards")
}

func TestCodeDisplay_CopyActiveTab(t *testing.T) {
	cb := &fakeClipboard{}
	c := newTestCodeDisplay(cb)
	c.NextTab()

	cmd := c.Copy()
	require.NotNil(t, cmd)
	assert.Equal(t, []string{catalog.CodeSamples[1].Code}, cb.writes)
	assert.True(t, c.Copied())
	assert.Contains(t, plain(c.View()), "Copied")

	assert.True(t, c.Update(FlashExpiredMsg{Key: codeFlashKey, Token: 1}))
	assert.False(t, c.Copied())
	assert.Contains(t, plain(c.View()), "Copy code")
}

func TestCodeDisplay_CopyFailureIsSilent(t *testing.T) {
	c := newTestCodeDisplay(&fakeClipboard{err: errors.New("unavailable")})

	assert.Nil(t, c.Copy())
	assert.False(t, c.Copied())
	assert.Contains(t, plain(c.View()), "Copy code")
}

func TestCodeDisplay_ViewHasLineNumbers(t *testing.T) {
	c := newTestCodeDisplay(&fakeClipboard{})
	c.SetWidth(100)
	view := plain(c.View())

	for _, tab := range []string{"HTML", "CSS", "JS"} {
		assert.Contains(t, view, tab)
	}
	assert.Contains(t, view, "1 ")
	assert.Contains(t, view, "10 ")
	assert.Contains(t, view, "cancelButton")
}

func TestCodeDisplay_ViewFitsWidth(t *testing.T) {
	for _, width := range []int{60, 80, 100} {
		t.Run(strconv.Itoa(width), func(t *testing.T) {
			c := newTestCodeDisplay(&fakeClipboard{})
			c.SetWidth(width)
			lines := strings.Split(c.View(), "\n")

			headerFound := false
			for _, line := range lines {
				assert.LessOrEqual(t, lipgloss.Width(line), width-2, "line %q", plain(line))
				if strings.Contains(plain(line), "[copy] Copy code") {
					headerFound = true
				}
			}
			assert.True(t, headerFound, "copy action split across lines")
		})
	}
}

func TestCodeDisplay_SetStyleDropsCache(t *testing.T) {
	c := newTestCodeDisplay(&fakeClipboard{})
	_ = c.View()
	assert.Len(t, c.highlighted, 1)

	c.SetStyle("github")
	assert.Empty(t, c.highlighted)
}

func TestHighlightCode_UnknownInputs(t *testing.T) {
	out := plain(HighlightCode("plain words", "no-such-language", "no-such-style"))
	assert.Equal(t, "plain words", out)
}

func TestRenderInfoNote(t *testing.T) {
	view := plain(RenderInfoNote(styles.NewThemeWithMode(styles.ModeDark), 80))
	assert.Contains(t, view, "Note: This is just an example")
}
