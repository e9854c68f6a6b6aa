// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNavItems_Order(t *testing.T) {
	labels := make([]string, len(NavItems))
	for i, item := range NavItems {
		labels[i] = item.Label
	}
	assert.Equal(t, []string{
		"AI Chat Helper", "Templates", "My Projects", "Statistics", "Settings", "Updates & FAQ",
	}, labels)
}

func TestNavItems_ProFlags(t *testing.T) {
	tests := []struct {
		page Page
		pro  bool
	}{
		{PageChat, false},
		{PageTemplates, true},
		{PageProjects, true},
		{PageStatistics, true},
		{PageSettings, false},
		{PageHelp, false},
	}

	for _, tc := range tests {
		t.Run(tc.page.String(), func(t *testing.T) {
			item, ok := Lookup(tc.page)
			require.True(t, ok)
			assert.Equal(t, tc.pro, item.Pro)
		})
	}
}

func TestPage_Unknown(t *testing.T) {
	assert.Equal(t, "Unknown", Page(42).String())
	assert.Zero(t, IndexOf(Page(42)))
	assert.Equal(t, 1, IndexOf(PageTemplates))
}

func TestHistory_FirstIsActive(t *testing.T) {
	require.Len(t, History, 6)
	assert.True(t, History[0].Active)
	for _, item := range History[1:] {
		assert.False(t, item.Active, item.Title)
	}
}

func TestTemplate_Action(t *testing.T) {
	require.Len(t, Templates, 4)
	assert.Equal(t, "Upgrade to Pro", Templates[0].Action())
	assert.Equal(t, "Use Template", Templates[2].Action())
}

func TestCodeSamples_Tabs(t *testing.T) {
	var tabs []string
	for _, s := range CodeSamples {
		tabs = append(tabs, s.Tab)
		assert.NotEmpty(t, s.Code)
	}
	assert.Equal(t, []string{"HTML", "CSS", "JS"}, tabs)
}
