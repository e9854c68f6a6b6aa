// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"log/slog"
	"strconv"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	chromaStyles "github.com/alecthomas/chroma/v2/styles"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/chatdash/internal/catalog"
	"github.com/jeranaias/chatdash/internal/ui/styles"
)

// =============================================================================
// CODE DISPLAY
// =============================================================================

// codeFlashKey addresses the code display's copy flash.
const codeFlashKey = "code"

// CodeDisplay is a tabbed, syntax highlighted code viewer with a copy action.
type CodeDisplay struct {
	theme   *styles.Theme
	samples []catalog.CodeSample
	active  int
	style   string
	width   int
	copier  *Copier
	flash   Flash

	// highlighted caches chroma output per tab for the current style.
	highlighted map[int]string
}

// NewCodeDisplay creates a code display over samples, highlighted with the
// named chroma style.
func NewCodeDisplay(theme *styles.Theme, samples []catalog.CodeSample, style string, cb Clipboard, logger *slog.Logger) *CodeDisplay {
	return &CodeDisplay{
		theme:       theme,
		samples:     samples,
		style:       style,
		width:       80,
		copier:      NewCopier(cb, logger),
		flash:       NewFlash(codeFlashKey),
		highlighted: make(map[int]string),
	}
}

// SetTheme replaces the theme.
func (c *CodeDisplay) SetTheme(theme *styles.Theme) {
	c.theme = theme
}

// SetStyle changes the chroma style and drops cached highlighting.
func (c *CodeDisplay) SetStyle(style string) {
	if style == c.style {
		return
	}
	c.style = style
	c.highlighted = make(map[int]string)
}

// SetWidth sets the rendering width.
func (c *CodeDisplay) SetWidth(width int) {
	c.width = width
}

// =============================================================================
// TABS
// =============================================================================

// ActiveIndex returns the index of the selected tab.
func (c *CodeDisplay) ActiveIndex() int {
	return c.active
}

// Active returns the selected sample.
func (c *CodeDisplay) Active() (catalog.CodeSample, bool) {
	if c.active < 0 || c.active >= len(c.samples) {
		return catalog.CodeSample{}, false
	}
	return c.samples[c.active], true
}

// NextTab selects the next tab, wrapping around.
func (c *CodeDisplay) NextTab() {
	if len(c.samples) == 0 {
		return
	}
	c.active = (c.active + 1) % len(c.samples)
}

// PrevTab selects the previous tab, wrapping around.
func (c *CodeDisplay) PrevTab() {
	if len(c.samples) == 0 {
		return
	}
	c.active = (c.active - 1 + len(c.samples)) % len(c.samples)
}

// =============================================================================
// COPY
// =============================================================================

// Copy puts the active tab's code on the clipboard. On success the
// "Copied" flash starts and the returned command ends it; on failure
// nothing visible happens.
func (c *CodeDisplay) Copy() tea.Cmd {
	sample, ok := c.Active()
	if !ok {
		return nil
	}
	if !c.copier.Copy("code", sample.Code) {
		return nil
	}
	return c.flash.Trigger(sample.Tab)
}

// Copied reports whether the "Copied" confirmation is showing.
func (c *CodeDisplay) Copied() bool {
	return c.flash.Active()
}

// Update handles flash expiry. It reports whether the view changed.
func (c *CodeDisplay) Update(msg tea.Msg) bool {
	if m, ok := msg.(FlashExpiredMsg); ok {
		return c.flash.Expire(m)
	}
	return false
}

// =============================================================================
// RENDERING
// =============================================================================

// View renders the tab bar and the active tab's code with line numbers.
func (c *CodeDisplay) View() string {
	sample, ok := c.Active()
	if !ok {
		return ""
	}
	t := c.theme
	inner := c.width - 4
	if inner < 20 {
		inner = 20
	}

	// Tab bar
	tabs := make([]string, 0, len(c.samples))
	for i, s := range c.samples {
		if i == c.active {
			tabs = append(tabs, t.CodeTabActive.Render(s.Tab))
		} else {
			tabs = append(tabs, t.CodeTab.Render(s.Tab))
		}
	}
	tabBar := lipgloss.JoinHorizontal(lipgloss.Bottom, tabs...)

	action := t.CodeCopyBtn.Render(styles.Indicators.Copy + " Copy code")
	if c.flash.Active() {
		action = t.CopiedNote.Render(styles.Indicators.Copied + " Copied")
	}
	// Width(inner) on the panel includes its padding and border.
	content := inner - t.CodePanel.GetHorizontalFrameSize()
	gap := content - lipgloss.Width(tabBar) - lipgloss.Width(action)
	if gap < 1 {
		gap = 1
	}
	header := lipgloss.JoinHorizontal(lipgloss.Bottom, tabBar, strings.Repeat(" ", gap), action)

	// Code body
	lines := strings.Split(c.highlight(c.active, sample), "\n")
	rendered := make([]string, len(lines))
	for i, line := range lines {
		rendered[i] = t.CodeLineNum.Render(strconv.Itoa(i+1)) + line
	}

	body := lipgloss.NewStyle().MaxWidth(content).Render(strings.Join(rendered, "\n"))
	return t.CodePanel.Width(inner).Render(header + "\n\n" + body)
}

// highlight returns the cached chroma rendering of a tab.
func (c *CodeDisplay) highlight(idx int, sample catalog.CodeSample) string {
	if out, ok := c.highlighted[idx]; ok {
		return out
	}
	out := HighlightCode(sample.Code, sample.Lexer, c.style)
	c.highlighted[idx] = out
	return out
}

// RenderInfoNote renders the note shown under the code display.
func RenderInfoNote(theme *styles.Theme, width int) string {
	inner := width - 2
	if inner < 20 {
		inner = 20
	}
	return theme.InfoNote.Width(inner).Render(WrapText(catalog.CodeInfoNote, inner-2))
}

// =============================================================================
// SYNTAX HIGHLIGHTING (Chroma-based)
// =============================================================================

// HighlightCode highlights code with chroma for the terminal. Unknown
// languages are detected from content; unknown styles fall back to
// chroma's default. Returns code unchanged if highlighting fails.
func HighlightCode(code, language, style string) string {
	lexer := lexers.Get(language)
	if lexer == nil {
		lexer = lexers.Analyse(code)
	}
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	s := chromaStyles.Get(style)
	if s == nil {
		s = chromaStyles.Fallback
	}

	formatter := formatters.Get("terminal256")
	if formatter == nil {
		formatter = formatters.Fallback
	}

	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		return code
	}

	var buf strings.Builder
	if err := formatter.Format(&buf, s, iterator); err != nil {
		return code
	}
	return strings.TrimRight(buf.String(), "\n")
}
