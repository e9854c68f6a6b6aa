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
// TEMPLATES PAGE
// =============================================================================

// templateCardMin is the narrowest a card is allowed to get.
const templateCardMin = 28

// TemplatesPage renders the template cards in a responsive grid followed by
// the upgrade banner.
type TemplatesPage struct {
	Width     int
	templates []catalog.Template
	theme     *styles.Theme
}

// NewTemplatesPage creates the page over the catalog templates.
func NewTemplatesPage(theme *styles.Theme) *TemplatesPage {
	return &TemplatesPage{
		Width:     80,
		templates: catalog.Templates,
		theme:     theme,
	}
}

// SetTheme replaces the theme.
func (p *TemplatesPage) SetTheme(theme *styles.Theme) {
	p.theme = theme
}

// Columns returns how many cards fit side by side (1 to 3).
func (p *TemplatesPage) Columns() int {
	cols := p.Width / (templateCardMin + 1)
	switch {
	case cols < 1:
		return 1
	case cols > 3:
		return 3
	default:
		return cols
	}
}

// View renders the page.
func (p *TemplatesPage) View() string {
	t := p.theme
	cols := p.Columns()
	cardWidth := p.Width/cols - 1

	var rows []string
	for i := 0; i < len(p.templates); i += cols {
		end := i + cols
		if end > len(p.templates) {
			end = len(p.templates)
		}
		var cards []string
		for _, tpl := range p.templates[i:end] {
			cards = append(cards, p.renderCard(tpl, cardWidth), " ")
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}

	banner := t.Banner.Width(p.Width - 2).Render(strings.Join([]string{
		t.PageTitle.Render(catalog.UnlockTitle),
		t.PageSubtitle.Render(WrapText(catalog.UnlockBlurb, p.Width-8)),
		"",
		t.PrimaryButton.Render(catalog.UnlockCTA),
	}, "\n"))

	return strings.Join([]string{
		t.PageTitle.Render(catalog.TemplatesTitle),
		t.PageSubtitle.Render(WrapText(catalog.TemplatesSubtitle, p.Width)),
		"",
		strings.Join(rows, "\n"),
		"",
		banner,
	}, "\n")
}

// renderCard renders one template card.
func (p *TemplatesPage) renderCard(tpl catalog.Template, width int) string {
	t := p.theme
	inner := width - 4

	title := t.TemplateTitle.Render(Truncate(tpl.Title, inner))
	badges := t.CategoryBadge.Render(tpl.Category)
	if tpl.Pro {
		badges = SpaceBetween(badges, t.ProBadge.Render(styles.Indicators.Pro), inner)
	}

	button := t.OutlineButton.Render(tpl.Action())
	if tpl.Pro {
		button = t.PrimaryButton.Render(tpl.Action())
	}

	return t.TemplateCard.Width(width - 2).Render(strings.Join([]string{
		title,
		badges,
		"",
		t.TemplateDesc.Render(WrapText(tpl.Description, inner)),
		"",
		button,
	}, "\n"))
}

// =============================================================================
// PLACEHOLDER PAGE
// =============================================================================

// RenderPlaceholder renders the "coming soon" panel for pages that have no
// content yet.
func RenderPlaceholder(theme *styles.Theme, title string, width, height int) string {
	body := theme.PageTitle.Render(title) + "\n\n" + theme.PlaceholderText.Render(catalog.ComingSoon)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, body)
}
