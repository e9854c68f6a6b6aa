// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package dashboard

import (
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/chatdash/internal/catalog"
	"github.com/jeranaias/chatdash/internal/config"
	"github.com/jeranaias/chatdash/internal/logging"
	"github.com/jeranaias/chatdash/internal/ui/chat"
	"github.com/jeranaias/chatdash/internal/ui/components"
	"github.com/jeranaias/chatdash/internal/ui/styles"
)

// minMainWidth is the narrowest main area the history panel may squeeze.
const minMainWidth = 40

// ConfigReloadedMsg carries a configuration reloaded from disk.
type ConfigReloadedMsg struct {
	Config *config.Config
}

// =============================================================================
// APPLICATION MODEL
// =============================================================================

// Model is the root Bubble Tea model: sidebar, header, active page,
// history panel and status bar.
type Model struct {
	cfg    *config.Config
	save   Saver
	logger *slog.Logger
	theme  *styles.Theme
	keys   KeyMap

	sidebar   *components.Sidebar
	header    *components.Header
	history   *components.HistoryPanel
	templates *components.TemplatesPage
	status    *components.StatusBar
	chat      chat.Model

	width    int
	height   int
	overlay  bool // narrow layout: sidebar shown over the main area
	quitting bool
}

// options collects construction settings.
type options struct {
	logger   *slog.Logger
	save     Saver
	chatOpts []chat.Option
}

// Option configures a Model.
type Option func(*options)

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// Saver persists one preference change.
type Saver func(update func(*config.UIConfig)) error

// WithSaver sets how UI preferences are persisted. A nil saver disables
// persistence.
func WithSaver(save Saver) Option {
	return func(o *options) { o.save = save }
}

// WithConfigPath persists UI preferences to path with config.UpdatePreferences.
func WithConfigPath(path string) Option {
	return WithSaver(func(update func(*config.UIConfig)) error {
		return config.UpdatePreferences(path, update)
	})
}

// WithChatOptions passes options through to the chat page.
func WithChatOptions(opts ...chat.Option) Option {
	return func(o *options) { o.chatOpts = append(o.chatOpts, opts...) }
}

// New creates the dashboard for cfg. The config is cloned; the dashboard
// owns its copy.
func New(cfg *config.Config, opts ...Option) *Model {
	o := options{logger: logging.Discard()}
	for _, opt := range opts {
		opt(&o)
	}
	if cfg == nil {
		cfg = config.Default()
	}
	cfg = cfg.Clone()

	theme := styles.NewTheme(cfg.UI.Theme)
	chatOpts := append([]chat.Option{
		chat.WithLogger(o.logger),
		chat.WithCodeStyle(cfg.UI.CodeStyle),
	}, o.chatOpts...)

	m := &Model{
		cfg:       cfg,
		save:      o.save,
		logger:    o.logger,
		theme:     theme,
		keys:      DefaultKeyMap(),
		sidebar:   components.NewSidebar(theme),
		header:    components.NewHeader(theme),
		history:   components.NewHistoryPanel(theme),
		templates: components.NewTemplatesPage(theme),
		status:    components.NewStatusBar(theme),
		chat:      chat.New(theme, chatOpts...),
		width:     120,
		height:    40,
	}
	m.sidebar.Collapsed = cfg.UI.SidebarCollapsed
	m.layout()
	return m
}

// =============================================================================
// ACCESSORS
// =============================================================================

// Page returns the active page.
func (m *Model) Page() catalog.Page {
	return m.sidebar.Active
}

// Theme returns the active theme.
func (m *Model) Theme() *styles.Theme {
	return m.theme
}

// Config returns the dashboard's current configuration.
func (m *Model) Config() *config.Config {
	return m.cfg
}

// Chat returns the chat page.
func (m *Model) Chat() *chat.Model {
	return &m.chat
}

// Narrow reports whether the terminal is below the mobile breakpoint.
func (m *Model) Narrow() bool {
	return m.width < m.cfg.UI.MobileBreakpoint
}

// OverlayOpen reports whether the narrow-layout sidebar is open.
func (m *Model) OverlayOpen() bool {
	return m.overlay
}

// HistoryVisible reports whether the history panel is laid out.
func (m *Model) HistoryVisible() bool {
	if m.Narrow() || !m.cfg.UI.ShowHistory {
		return false
	}
	return m.width-m.sidebar.Width()-components.HistoryWidth >= minMainWidth
}

// =============================================================================
// BUBBLE TEA INTERFACE
// =============================================================================

// Init initializes the model.
func (m *Model) Init() tea.Cmd {
	return m.chat.Init()
}

// Update handles messages and updates the model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.Narrow() {
			m.overlay = false
		}
		m.layout()
		return m, nil

	case ConfigReloadedMsg:
		m.applyConfig(msg.Config)
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	}

	var cmd tea.Cmd
	m.chat, cmd = m.chat.Update(msg)
	return m, cmd
}

// handleKeyPress applies dashboard bindings, then forwards to the page.
func (m *Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		if msg.Type == tea.KeyEsc && m.overlay {
			m.overlay = false
			m.layout()
			return m, nil
		}
		return m.quit()

	case key.Matches(msg, m.keys.NextPage):
		m.sidebar.Next()
		m.layout()
		return m, nil

	case key.Matches(msg, m.keys.PrevPage):
		m.sidebar.Prev()
		m.layout()
		return m, nil

	case key.Matches(msg, m.keys.ToggleSidebar):
		if m.Narrow() {
			m.overlay = !m.overlay
		} else {
			collapsed := !m.sidebar.Collapsed
			m.sidebar.Collapsed = collapsed
			m.setPreference(func(ui *config.UIConfig) { ui.SidebarCollapsed = collapsed })
		}
		m.layout()
		return m, nil

	case key.Matches(msg, m.keys.ToggleTheme):
		m.setTheme(m.theme.Toggle())
		mode := m.theme.Mode.String()
		m.setPreference(func(ui *config.UIConfig) { ui.Theme = mode })
		return m, nil

	case key.Matches(msg, m.keys.ToggleHistory):
		show := !m.cfg.UI.ShowHistory
		m.setPreference(func(ui *config.UIConfig) { ui.ShowHistory = show })
		m.layout()
		return m, nil
	}

	if m.sidebar.Active != catalog.PageChat {
		return m, nil
	}
	var cmd tea.Cmd
	m.chat, cmd = m.chat.Update(msg)
	return m, cmd
}

// quit disposes of the conversation and ends the program.
func (m *Model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	m.chat.Close()
	return m, tea.Quit
}

// =============================================================================
// PREFERENCES
// =============================================================================

// setPreference applies update to the live config and saves just that
// change. Failures are logged and otherwise ignored.
func (m *Model) setPreference(update func(*config.UIConfig)) {
	update(&m.cfg.UI)
	if m.save == nil {
		return
	}
	if err := m.save(update); err != nil {
		m.logger.Warn("save preferences failed", "error", err)
	}
}

// applyConfig adopts a reloaded configuration.
func (m *Model) applyConfig(cfg *config.Config) {
	if cfg == nil {
		return
	}
	m.cfg = cfg.Clone()
	if resolved := styles.NewTheme(cfg.UI.Theme); resolved.Mode != m.theme.Mode {
		m.setTheme(resolved)
	}
	m.sidebar.Collapsed = cfg.UI.SidebarCollapsed
	m.chat.SetCodeStyle(cfg.UI.CodeStyle)
	if !m.Narrow() {
		m.overlay = false
	}
	m.layout()
	m.logger.Debug("config applied", "theme", cfg.UI.Theme)
}

// setTheme switches every component to theme.
func (m *Model) setTheme(theme *styles.Theme) {
	m.theme = theme
	m.sidebar.SetTheme(theme)
	m.header.SetTheme(theme)
	m.history.SetTheme(theme)
	m.templates.SetTheme(theme)
	m.status.SetTheme(theme)
	m.chat.SetTheme(theme)
}

// =============================================================================
// LAYOUT AND VIEW
// =============================================================================

// mainWidth is the width left for the header and active page.
func (m *Model) mainWidth() int {
	w := m.width
	if !m.Narrow() || m.overlay {
		w -= m.sidebarWidth()
	}
	if m.HistoryVisible() {
		w -= components.HistoryWidth
	}
	if w < 10 {
		w = 10
	}
	return w
}

// sidebarWidth is the laid out sidebar width. The overlay is always expanded.
func (m *Model) sidebarWidth() int {
	if m.Narrow() {
		return components.SidebarWidth
	}
	return m.sidebar.Width()
}

// layout propagates sizes to every component.
func (m *Model) layout() {
	bodyHeight := m.height - 1 // status bar
	if bodyHeight < 5 {
		bodyHeight = 5
	}
	mw := m.mainWidth()

	m.sidebar.Height = bodyHeight
	m.history.Height = bodyHeight
	m.header.SetWidth(mw)
	m.header.Title = m.sidebar.Active.String()
	m.header.ShowMenu = m.Narrow()
	m.templates.Width = mw
	m.status.Width = m.width

	// The header is one line plus its border.
	m.chat.SetSize(mw, bodyHeight-2)
}

// View renders the dashboard.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	bodyHeight := m.height - 1
	if bodyHeight < 5 {
		bodyHeight = 5
	}
	mw := m.mainWidth()

	main := lipgloss.NewStyle().Width(mw).Height(bodyHeight).MaxHeight(bodyHeight).
		Render(m.header.View() + "\n" + m.pageView(mw, bodyHeight-2))

	var columns []string
	if !m.Narrow() {
		columns = append(columns, m.sidebar.View())
	} else if m.overlay {
		collapsed := m.sidebar.Collapsed
		m.sidebar.Collapsed = false
		columns = append(columns, m.sidebar.View())
		m.sidebar.Collapsed = collapsed
	}
	columns = append(columns, main)
	if m.HistoryVisible() {
		columns = append(columns, m.history.View())
	}

	m.status.Status = components.StatusReady
	if m.chat.Snapshot().Pending {
		m.status.Status = components.StatusThinking
	}
	m.status.Page = m.sidebar.Active.String()
	m.status.Messages = len(m.chat.Snapshot().Messages)
	keys := helpKeys{dash: m.keys, chat: m.chat.Keys(), onChat: m.sidebar.Active == catalog.PageChat}

	return strings.Join([]string{
		lipgloss.JoinHorizontal(lipgloss.Top, columns...),
		m.status.View(keys),
	}, "\n")
}

// pageView renders the active page.
func (m *Model) pageView(width, height int) string {
	switch m.sidebar.Active {
	case catalog.PageChat:
		return m.chat.View()
	case catalog.PageTemplates:
		return m.templates.View()
	default:
		return components.RenderPlaceholder(m.theme, m.sidebar.Active.String(), width, height)
	}
}
