package app

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"gitlab.com/tinyland/lab/toybox/pkg/components"
	"gitlab.com/tinyland/lab/toybox/pkg/config"
	"gitlab.com/tinyland/lab/toybox/pkg/layout"
	"gitlab.com/tinyland/lab/toybox/pkg/registry"
	"gitlab.com/tinyland/lab/toybox/pkg/theme"
	"gitlab.com/tinyland/lab/toybox/pkg/toy"
)

// navHeader is the sidebar title plus the blank line under it.
const navHeader = 2

// Config holds the shell's presentation settings.
type Config struct {
	Theme        theme.Theme
	SidebarWidth int
	Padding      int

	// Zones resolves clicks on the sidebar. It must be the same manager
	// the toys were built with. Nil disables mouse selection.
	Zones *zone.Manager
}

// DefaultConfig returns the default theme and layout preset without
// click zones.
func DefaultConfig() Config {
	l := config.LayoutPreset("default")
	return Config{
		Theme:        theme.Get(theme.DefaultName),
		SidebarWidth: l.SidebarWidth,
		Padding:      l.Padding,
	}
}

// Shell is the root Bubbletea model of the gallery.
type Shell struct {
	reg  *registry.Registry
	cfg  Config
	keys keyMap

	help        help.Model
	view        viewport.Model
	placeholder *Placeholder
	initCmd     tea.Cmd

	width    int
	height   int
	sidebar  layout.Rect
	navTop   int
	ready    bool
	quitting bool
}

// New creates the shell over reg and mounts the initially selected toy.
// A nil registry behaves like an empty catalog.
func New(reg *registry.Registry, cfg Config) Shell {
	if reg == nil {
		reg = registry.Build(nil)
	}
	if cfg.SidebarWidth <= 0 {
		cfg.SidebarWidth = DefaultConfig().SidebarWidth
	}
	cfg.Padding = max(cfg.Padding, 0)

	keys := defaultKeyMap()
	th := cfg.Theme

	h := help.New()
	keyStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(th.HelpKey))
	descStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(th.HelpDesc))
	h.Styles.ShortKey = keyStyle
	h.Styles.ShortDesc = descStyle
	h.Styles.ShortSeparator = descStyle
	h.Styles.FullKey = keyStyle
	h.Styles.FullDesc = descStyle
	h.Styles.FullSeparator = descStyle
	h.Styles.Ellipsis = descStyle

	vp := viewport.New(0, 0)
	vp.KeyMap = viewport.KeyMap{PageUp: keys.PageUp, PageDown: keys.PageDown}

	m := Shell{
		reg:         reg,
		cfg:         cfg,
		keys:        keys,
		help:        h,
		view:        vp,
		placeholder: NewPlaceholder(th),
	}
	if u, ok := reg.Active(); ok {
		m.initCmd = u.Mount()
	}
	return m
}

// Init returns the command of the initial toy's Mount.
func (m Shell) Init() tea.Cmd {
	return m.initCmd
}

// Update routes messages: shell keys and sidebar clicks are handled here,
// everything else goes to the active toy.
func (m Shell) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
	case SelectToyMsg:
		cmd = m.selectToy(msg.Name)
	case tea.KeyMsg:
		cmd = m.handleKey(msg)
	case tea.MouseMsg:
		cmd = m.handleMouse(msg)
	default:
		cmd = m.forward(msg)
	}

	m.followSelection()
	m.syncContent()
	return m, cmd
}

func (m *Shell) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.layout()
		return nil
	case key.Matches(msg, m.keys.Next):
		return m.nextToy()
	case key.Matches(msg, m.keys.Prev):
		return m.prevToy()
	case key.Matches(msg, m.keys.PageUp, m.keys.PageDown):
		var cmd tea.Cmd
		m.view, cmd = m.view.Update(msg)
		return cmd
	}
	return m.forward(msg)
}

func (m *Shell) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if msg.Button == tea.MouseButtonWheelUp || msg.Button == tea.MouseButtonWheelDown {
		var cmd tea.Cmd
		m.view, cmd = m.view.Update(msg)
		return cmd
	}

	if msg.Action == tea.MouseActionRelease && msg.Button == tea.MouseButtonLeft && m.cfg.Zones != nil {
		for _, name := range m.reg.List() {
			if m.cfg.Zones.Get(navZone(name)).InBounds(msg) {
				return m.selectToy(name)
			}
		}
	}
	return m.forward(msg)
}

func (m *Shell) forward(msg tea.Msg) tea.Cmd {
	u, ok := m.reg.Active()
	if !ok {
		return nil
	}
	return u.Update(msg)
}

func (m *Shell) resize(width, height int) {
	m.width, m.height = width, height
	m.ready = true
	m.layout()
	m.followSelection()
}

// layout splits the terminal into the sidebar, the content region and the
// help bar, and sizes the viewport to the content region.
func (m *Shell) layout() {
	m.help.Width = max(m.width-2, 0)

	rows := layout.NewLayout(layout.Vertical,
		layout.Fill{Weight: 1},
		layout.Length{Value: lipgloss.Height(m.statusBar())},
	).Split(layout.Rect{Width: m.width, Height: m.height})

	cols := layout.NewLayout(layout.Horizontal,
		layout.Length{Value: m.sidebarWidth()},
		layout.Fill{Weight: 1},
	).Split(rows[0])

	m.sidebar = cols[0]
	m.view.Width = max(cols[1].Width-2*m.cfg.Padding, 1)
	m.view.Height = max(rows[0].Height, 1)
}

// navRows is how many sidebar entries fit under the title.
func (m Shell) navRows() int {
	return max(m.sidebar.Height-navHeader, 1)
}

// followSelection scrolls the sidebar so the selected entry is visible.
func (m *Shell) followSelection() {
	if !m.ready {
		return
	}
	rows := m.navRows()
	selected := m.reg.Selected()
	for i, name := range m.reg.List() {
		if name != selected {
			continue
		}
		if i < m.navTop {
			m.navTop = i
		}
		if i >= m.navTop+rows {
			m.navTop = i - rows + 1
		}
		break
	}
	m.navTop = max(min(m.navTop, m.reg.Len()-rows), 0)
}

// syncContent re-renders the active unit into the viewport.
func (m *Shell) syncContent() {
	if !m.ready {
		return
	}
	m.view.SetContent(m.activeUnit().View(m.view.Width, m.view.Height))
}

func (m *Shell) activeUnit() toy.Unit {
	if u, ok := m.reg.Active(); ok {
		return u
	}
	return m.placeholder
}

// sidebarWidth caps the configured width at a third of the terminal.
func (m Shell) sidebarWidth() int {
	return min(m.cfg.SidebarWidth, m.width/3)
}

// View renders the sidebar, the active toy and the help bar.
func (m Shell) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Initializing..."
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top, m.viewSidebar(), m.viewContent())
	frame := lipgloss.JoinVertical(lipgloss.Left, body, m.statusBar())
	frame = components.Clip(frame, m.width, m.height)

	if m.cfg.Zones != nil {
		frame = m.cfg.Zones.Scan(frame)
	}
	return frame
}

func (m Shell) viewSidebar() string {
	w := m.sidebar.Width
	if m.sidebar.Empty() || w <= 2 {
		return ""
	}
	th := m.cfg.Theme
	inner := w - 2

	title := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(th.Accent)).Render("Toys")
	lines := []string{title, ""}

	names := m.reg.List()
	top := min(m.navTop, len(names))
	end := min(top+m.navRows(), len(names))

	selected := m.reg.Selected()
	for _, name := range names[top:end] {
		style := lipgloss.NewStyle().
			Width(inner).
			Foreground(lipgloss.Color(th.NavForeground))
		label := "  " + components.Truncate(name, inner-2)
		if name == selected {
			style = style.Bold(true).Background(lipgloss.Color(th.NavActive))
			label = "▸ " + components.Truncate(name, inner-2)
		}
		lines = append(lines, m.mark(navZone(name), style.Render(label)))
	}

	return lipgloss.NewStyle().
		Width(w).
		Height(m.sidebar.Height).
		Padding(0, 1).
		Background(lipgloss.Color(th.NavBackground)).
		Foreground(lipgloss.Color(th.NavForeground)).
		Render(strings.Join(lines, "\n"))
}

func (m Shell) viewContent() string {
	return lipgloss.NewStyle().Padding(0, m.cfg.Padding).Render(m.view.View())
}

func (m Shell) statusBar() string {
	return lipgloss.NewStyle().Padding(0, 1).Render(m.help.View(m.helpKeys()))
}

func (m Shell) helpKeys() helpKeys {
	h := helpKeys{shell: m.keys}
	if u, ok := m.reg.Active(); ok {
		if hp, ok := u.(toy.Helper); ok {
			h.toy = hp.Bindings()
		}
	}
	return h
}

func (m Shell) mark(id, s string) string {
	if m.cfg.Zones == nil {
		return s
	}
	return m.cfg.Zones.Mark(id, s)
}

// Snapshot renders a single frame at width x height without a running
// program.
func (m Shell) Snapshot(width, height int) string {
	m.resize(width, height)
	m.syncContent()
	return m.View()
}

// Width returns the current terminal width.
func (m Shell) Width() int { return m.width }

// Height returns the current terminal height.
func (m Shell) Height() int { return m.height }

// Quitting reports whether the shell is shutting down.
func (m Shell) Quitting() bool { return m.quitting }

// HelpVisible reports whether the full help is shown.
func (m Shell) HelpVisible() bool { return m.help.ShowAll }

// Selected returns the name of the active toy, or "".
func (m Shell) Selected() string { return m.reg.Selected() }
