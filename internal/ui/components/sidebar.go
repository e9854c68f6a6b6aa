// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/chatdash/internal/catalog"
	"github.com/jeranaias/chatdash/internal/ui/styles"
)

// =============================================================================
// SIDEBAR COMPONENT
// =============================================================================

// Sidebar widths in columns, borders included.
const (
	SidebarWidth          = 30
	SidebarCollapsedWidth = 9
)

// Sidebar is the navigation panel: logo, nav items, plan upsell and log out.
type Sidebar struct {
	Active    catalog.Page
	Collapsed bool
	Height    int
	items     []catalog.NavItem
	theme     *styles.Theme
}

// NewSidebar creates a sidebar with the chat page active.
func NewSidebar(theme *styles.Theme) *Sidebar {
	return &Sidebar{
		Active: catalog.PageChat,
		items:  catalog.NavItems,
		theme:  theme,
	}
}

// SetTheme replaces the theme.
func (s *Sidebar) SetTheme(theme *styles.Theme) {
	s.theme = theme
}

// Width returns the rendered width for the current state.
func (s *Sidebar) Width() int {
	if s.Collapsed {
		return SidebarCollapsedWidth
	}
	return SidebarWidth
}

// Next activates the following nav item, wrapping around.
func (s *Sidebar) Next() catalog.Page {
	i := (catalog.IndexOf(s.Active) + 1) % len(s.items)
	s.Active = s.items[i].Page
	return s.Active
}

// Prev activates the preceding nav item, wrapping around.
func (s *Sidebar) Prev() catalog.Page {
	i := (catalog.IndexOf(s.Active) - 1 + len(s.items)) % len(s.items)
	s.Active = s.items[i].Page
	return s.Active
}

// View renders the sidebar.
func (s *Sidebar) View() string {
	t := s.theme
	inner := s.Width() - 4 // border and padding

	var sections []string
	sections = append(sections, s.renderLogo(inner), "")
	for _, item := range s.items {
		sections = append(sections, s.renderItem(item, inner))
	}
	sections = append(sections, "")
	if !s.Collapsed {
		sections = append(sections, s.renderPlan(inner), "")
	}
	if s.Collapsed {
		sections = append(sections, t.SidebarFooter.Render("<-"))
	} else {
		sections = append(sections, t.SidebarFooter.Render("<- "+catalog.LogoutLabel))
	}

	panel := t.Panel.Width(s.Width() - 2)
	if s.Height > 2 {
		panel = panel.Height(s.Height - 2)
	}
	return panel.Render(strings.Join(sections, "\n"))
}

// renderLogo renders the brand mark, plus the name when expanded.
func (s *Sidebar) renderLogo(width int) string {
	t := s.theme
	mark := t.NavItemActive.Render(catalog.AppInitial)
	if s.Collapsed {
		return mark
	}
	name := t.SidebarLogo.Render(Truncate(catalog.AppName, width-lipgloss.Width(mark)-6))
	return SpaceBetween(mark+" "+name, t.HeaderAction.Render("[<]"), width)
}

// renderItem renders one nav row.
func (s *Sidebar) renderItem(item catalog.NavItem, width int) string {
	t := s.theme
	style := t.NavItem
	if item.Page == s.Active {
		style = t.NavItemActive
	}

	if s.Collapsed {
		return style.Render(item.Short)
	}

	// NavItem styles carry one column of padding on each side.
	labelWidth := width - 2
	var badge string
	if item.Pro {
		badge = styles.Indicators.Pro
		labelWidth -= len(badge) + 1
	}
	label := PadRight(Truncate(item.Label, labelWidth), labelWidth)
	if item.Pro {
		return style.Render(label+" ") + t.ProBadge.Render(badge)
	}
	return style.Render(label)
}

// renderPlan renders the Pro plan upsell block.
func (s *Sidebar) renderPlan(width int) string {
	t := s.theme
	lines := []string{
		t.PlanTitle.Render(catalog.PlanTitle),
		WrapText(catalog.PlanBlurb, width-2),
		SpaceBetween(catalog.PlanPrice, t.PrimaryButton.Render(catalog.PlanCTA), width-2),
	}
	return t.PlanBox.Width(width).Render(strings.Join(lines, "\n"))
}
