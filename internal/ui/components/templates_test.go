// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jeranaias/chatdash/internal/ui/styles"
)

func TestTemplatesPage_Columns(t *testing.T) {
	tests := []struct {
		width int
		want  int
	}{
		{20, 1},
		{60, 2},
		{90, 3},
		{200, 3},
	}

	for _, tc := range tests {
		p := NewTemplatesPage(styles.NewThemeWithMode(styles.ModeDark))
		p.Width = tc.width
		assert.Equal(t, tc.want, p.Columns(), "width %d", tc.width)
	}
}

func TestTemplatesPage_View(t *testing.T) {
	p := NewTemplatesPage(styles.NewThemeWithMode(styles.ModeDark))
	p.Width = 120
	view := plain(p.View())

	assert.Contains(t, view, "Templates")
	assert.Contains(t, view, "Landing Page")
	assert.Contains(t, view, "Use Template")
	assert.Equal(t, 4, strings.Count(view, "Upgrade to Pro"), "three pro cards plus the banner")
	assert.Contains(t, view, "Unlock All Templates")
}

func TestRenderPlaceholder(t *testing.T) {
	view := plain(RenderPlaceholder(styles.NewThemeWithMode(styles.ModeLight), "Statistics", 60, 10))
	assert.Contains(t, view, "Statistics")
	assert.Contains(t, view, "coming soon")
}
