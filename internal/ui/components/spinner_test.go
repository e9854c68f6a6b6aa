// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"testing"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/chatdash/internal/ui/styles"
)

func TestThinking_StartStop(t *testing.T) {
	th := NewThinking(styles.NewThemeWithMode(styles.ModeDark))
	assert.False(t, th.Active())
	assert.Empty(t, th.View())

	cmd := th.Start()
	require.NotNil(t, cmd)
	assert.True(t, th.Active())
	assert.Contains(t, plain(th.View()), "AI is thinking...")
	assert.Nil(t, th.Start(), "already running")

	th.Stop()
	assert.False(t, th.Active())
	assert.Empty(t, th.View())
}

func TestThinking_IgnoresTicksWhenStopped(t *testing.T) {
	th := NewThinking(styles.NewThemeWithMode(styles.ModeLight))
	th, cmd := th.Update(spinner.TickMsg{})
	assert.Nil(t, cmd)
	assert.False(t, th.Active())
}
