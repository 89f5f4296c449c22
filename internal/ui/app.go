// Package ui provides the Bubble Tea shell around the tab bar.
package ui

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/betkiray/kiray/internal/nav"
	"github.com/betkiray/kiray/internal/prefs"
	"github.com/betkiray/kiray/internal/tabbar"
)

// Options configures the UI.
type Options struct {
	Navigator *nav.Navigator
	Variant   tabbar.Variant
	ThemeName string
	PrefsPath string
	Logger    *log.Logger
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	nav       *nav.Navigator
	variant   tabbar.Variant
	logger    *log.Logger
	prefsPath string

	// UI state
	theme    Theme
	keys     keyMap
	width    int
	height   int
	ready    bool
	showHelp bool

	bar  tabbar.Model
	home *homeScreen

	unsubscribe []func()
}

// New creates a new Bubble Tea model bound to opts.Navigator.
func New(opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	variant := opts.Variant
	if variant.Name == "" {
		variant = tabbar.UserVariant()
	}
	theme := GetTheme(opts.ThemeName)

	// A nil *nav.Navigator stored in the interface would not compare equal
	// to nil inside the bar.
	var host tabbar.Host
	if opts.Navigator != nil {
		host = opts.Navigator
	}

	m := Model{
		nav:       opts.Navigator,
		variant:   variant,
		logger:    logger,
		prefsPath: opts.PrefsPath,
		theme:     theme,
		keys:      DefaultKeyMap(),
		bar:       tabbar.New(host, variant, theme.TabBarStyle(variant.Name)),
		home:      newHomeScreen(variant.Name),
	}
	if m.nav != nil {
		m.unsubscribe = append(m.unsubscribe,
			m.home.listen(m.nav),
			m.nav.AddListener(nav.EventFocus, "", func(ev *nav.Event) {
				logger.Debug("route focused", "route", ev.Target)
			}),
		)
	}
	return m
}

// Close removes the listeners New registered on the navigator.
func (m Model) Close() {
	for _, fn := range m.unsubscribe {
		fn()
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		cmd := m.bar.SetSize(msg.Width)
		m.layout()
		return m, cmd

	case tabbar.FrameMsg:
		var cmd tea.Cmd
		m.bar, cmd = m.bar.Update(msg)
		return m, cmd

	case tabbar.PressMsg:
		res := msg.Result
		if res.Event != nil && res.Event.DefaultPrevented() {
			m.logger.Debug("tab press prevented", "route", res.Route.Name)
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}

	parts := []string{m.renderHeader(), m.renderBody(m.bodyHeight())}
	if bar := m.bar.View(); bar != "" {
		parts = append(parts, bar)
	}
	return lipgloss.NewStyle().
		Background(lipgloss.Color(m.theme.Background)).
		Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	var cmd tea.Cmd
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.cycleTheme()

	case key.Matches(msg, m.keys.Back):
		if m.nav != nil && m.nav.Back() {
			m.logger.Debug("back", "route", m.activeName())
		}

	default:
		if link, ok := m.linkFor(msg.String()); ok {
			m.logger.Debug("open link", "from", m.activeName(), "to", link.Route)
			m.nav.Navigate(link.Route)
			break
		}
		if m.activeName() == "index" && m.home.handleKey(msg, m.keys) {
			break
		}
		m.bar, cmd = m.bar.Update(msg)
	}

	sync := m.bar.Sync()
	m.layout()
	return m, tea.Batch(cmd, sync)
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		return m, nil
	}
	if msg.Action == tea.MouseActionPress && m.activeName() == "index" {
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			m.home.viewport.ScrollUp(3)
			return m, nil
		case tea.MouseButtonWheelDown:
			m.home.viewport.ScrollDown(3)
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.bar, cmd = m.bar.Update(msg)
	m.layout()
	return m, cmd
}

// cycleTheme switches to the next theme and persists the choice.
func (m *Model) cycleTheme() {
	m.theme = GetTheme(NextTheme(m.theme.Name))
	m.bar.SetStyle(m.theme.TabBarStyle(m.variant.Name))
	if m.prefsPath == "" {
		return
	}
	if err := prefs.Save(m.prefsPath, prefs.Prefs{Theme: PrefForTheme(m.theme.Name)}); err != nil {
		m.logger.Warn("save prefs", "path", m.prefsPath, "err", err)
	}
}

// layout sizes the body and tells the bar where it is drawn.
func (m *Model) layout() {
	m.bar.SetOrigin(m.height - m.bar.Height())
	m.home.setSize(m.width, m.bodyHeight())
}

func (m Model) bodyHeight() int {
	return max(m.height-HeaderHeight-m.bar.Height(), 0)
}

func (m Model) activeName() string {
	if m.nav == nil {
		return ""
	}
	return m.nav.State().Active().Name
}

func (m Model) linkFor(k string) (screenLink, bool) {
	if m.nav == nil {
		return screenLink{}, false
	}
	for _, l := range contentFor(m.variant.Name, m.activeName()).Links {
		if l.Key == k {
			return l, true
		}
	}
	return screenLink{}, false
}

// renderBody renders the active screen into height rows.
func (m Model) renderBody(height int) string {
	if height <= 0 {
		return ""
	}
	styles := m.theme.Styles().WithBackground(m.theme.Background)
	box := lipgloss.NewStyle().
		Background(lipgloss.Color(m.theme.Background)).
		Foreground(lipgloss.Color(m.theme.Text)).
		Width(m.width).
		Height(height)

	if m.activeName() == "index" {
		return box.Render(m.home.viewport.View())
	}

	content := contentFor(m.variant.Name, m.activeName())
	lines := make([]string, 0, len(content.Lines)+len(content.Links)+1)
	for i, l := range content.Lines {
		if i == 0 {
			lines = append(lines, styles.Title.Render(l))
			continue
		}
		lines = append(lines, styles.Text.Render(l))
	}
	if len(content.Links) > 0 {
		lines = append(lines, "")
		for _, l := range content.Links {
			lines = append(lines, "  "+styles.Link.Render("["+l.Key+"]")+" "+styles.Text.Render(l.Label))
		}
	}
	if len(lines) > height {
		lines = lines[:height]
	}
	return box.Render(strings.Join(lines, "\n"))
}

// Run starts the Bubble Tea program and blocks until it exits or ctx is
// cancelled.
func Run(ctx context.Context, opts Options) error {
	m := New(opts)
	defer m.Close()

	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
