package app

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	zone "github.com/lrstanley/bubblezone"

	"gitlab.com/tinyland/lab/toybox/pkg/registry"
	"gitlab.com/tinyland/lab/toybox/pkg/theme"
	"gitlab.com/tinyland/lab/toybox/pkg/toy"
)

// stubUnit records the lifecycle calls and messages it receives.
type stubUnit struct {
	name     string
	mounts   int
	unmounts int
	msgs     []tea.Msg
}

type stubMountMsg struct{ name string }

func (s *stubUnit) Mount() tea.Cmd {
	s.mounts++
	name := s.name
	return func() tea.Msg { return stubMountMsg{name} }
}

func (s *stubUnit) Unmount() { s.unmounts++ }

func (s *stubUnit) Update(msg tea.Msg) tea.Cmd {
	s.msgs = append(s.msgs, msg)
	return nil
}

func (s *stubUnit) View(width, height int) string { return "stub:" + s.name }

func (s *stubUnit) Bindings() []key.Binding {
	return []key.Binding{key.NewBinding(key.WithKeys("z"), key.WithHelp("z", "zap "+s.name))}
}

// helper to create a shell over three stub toys for testing.
func newTestShell() (Shell, map[string]*stubUnit) {
	return newStubShell(DefaultConfig(), "alpha", "beta", "gamma")
}

// newStubShell creates a shell with one stub toy per name.
func newStubShell(cfg Config, names ...string) (Shell, map[string]*stubUnit) {
	stubs := make(map[string]*stubUnit, len(names))
	units := make(map[string]toy.Unit, len(names))
	for _, name := range names {
		s := &stubUnit{name: name}
		stubs[name] = s
		units[name] = s
	}
	return New(registry.Build(units), cfg), stubs
}

// waitZone polls until the zone manager's worker has stored zone id from
// the last Scan.
func waitZone(t *testing.T, zones *zone.Manager, id string) *zone.ZoneInfo {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if z := zones.Get(id); !z.IsZero() {
			return z
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("zone %q was never registered", id)
	return nil
}

// waitNoZone polls until zone id from an earlier frame has been dropped.
func waitNoZone(t *testing.T, zones *zone.Manager, id string) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if zones.Get(id).IsZero() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("zone %q was never cleared", id)
}

func leftClick(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}
}

// helper to send a message through Update and return the updated model.
func update(m Shell, msg tea.Msg) (Shell, tea.Cmd) {
	updated, cmd := m.Update(msg)
	return updated.(Shell), cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNewMountsInitialToy(t *testing.T) {
	m, stubs := newTestShell()

	if m.Selected() != "alpha" {
		t.Fatalf("expected initial selection 'alpha', got %q", m.Selected())
	}
	if stubs["alpha"].mounts != 1 {
		t.Errorf("expected alpha mounted once, got %d", stubs["alpha"].mounts)
	}

	cmd := m.Init()
	if cmd == nil {
		t.Fatal("Init() returned nil, expected the mount command")
	}
	if msg, ok := cmd().(stubMountMsg); !ok || msg.name != "alpha" {
		t.Errorf("Init() command produced %#v", msg)
	}
}

func TestWindowSizeMsgUpdatesDimensions(t *testing.T) {
	m, _ := newTestShell()
	m, _ = update(m, tea.WindowSizeMsg{Width: 120, Height: 40})

	if m.Width() != 120 {
		t.Errorf("expected width 120, got %d", m.Width())
	}
	if m.Height() != 40 {
		t.Errorf("expected height 40, got %d", m.Height())
	}
}

func TestTabCyclesForward(t *testing.T) {
	m, stubs := newTestShell()

	m, cmd := update(m, tea.KeyMsg{Type: tea.KeyTab})
	if m.Selected() != "beta" {
		t.Errorf("after first Tab, expected 'beta', got %q", m.Selected())
	}
	if cmd == nil {
		t.Error("expected beta's mount command")
	}
	if stubs["alpha"].unmounts != 1 || stubs["beta"].mounts != 1 {
		t.Errorf("lifecycle: alpha unmounts=%d beta mounts=%d", stubs["alpha"].unmounts, stubs["beta"].mounts)
	}

	m, _ = update(m, tea.KeyMsg{Type: tea.KeyTab})
	if m.Selected() != "gamma" {
		t.Errorf("after second Tab, expected 'gamma', got %q", m.Selected())
	}

	// Wrap around.
	m, _ = update(m, tea.KeyMsg{Type: tea.KeyTab})
	if m.Selected() != "alpha" {
		t.Errorf("after third Tab, expected wrap to 'alpha', got %q", m.Selected())
	}
	if stubs["alpha"].mounts != 2 {
		t.Errorf("expected alpha mounted twice, got %d", stubs["alpha"].mounts)
	}
}

func TestShiftTabCyclesBackward(t *testing.T) {
	m, _ := newTestShell()

	m, _ = update(m, tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.Selected() != "gamma" {
		t.Errorf("after Shift+Tab from 'alpha', expected 'gamma', got %q", m.Selected())
	}

	m, _ = update(m, tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.Selected() != "beta" {
		t.Errorf("after second Shift+Tab, expected 'beta', got %q", m.Selected())
	}
}

func TestBracketKeys(t *testing.T) {
	m, _ := newTestShell()

	m, _ = update(m, runes("]"))
	if m.Selected() != "beta" {
		t.Errorf("after ], expected 'beta', got %q", m.Selected())
	}
	m, _ = update(m, runes("["))
	if m.Selected() != "alpha" {
		t.Errorf("after [, expected 'alpha', got %q", m.Selected())
	}
}

func TestSelectToyMsg(t *testing.T) {
	m, stubs := newTestShell()

	m, _ = update(m, SelectToyMsg{Name: "gamma"})
	if m.Selected() != "gamma" {
		t.Fatalf("expected 'gamma', got %q", m.Selected())
	}
	if stubs["alpha"].unmounts != 1 || stubs["gamma"].mounts != 1 {
		t.Errorf("lifecycle: alpha unmounts=%d gamma mounts=%d", stubs["alpha"].unmounts, stubs["gamma"].mounts)
	}
}

func TestSelectToyMsgUnknownOrSameIsNoOp(t *testing.T) {
	m, stubs := newTestShell()

	for _, name := range []string{"nope", "", "alpha"} {
		var cmd tea.Cmd
		m, cmd = update(m, SelectToyMsg{Name: name})
		if cmd != nil {
			t.Errorf("SelectToyMsg(%q) returned a command", name)
		}
	}
	if m.Selected() != "alpha" {
		t.Errorf("selection moved to %q", m.Selected())
	}
	if stubs["alpha"].unmounts != 0 || stubs["alpha"].mounts != 1 {
		t.Errorf("lifecycle ran for a no-op selection: mounts=%d unmounts=%d",
			stubs["alpha"].mounts, stubs["alpha"].unmounts)
	}
}

func TestOtherKeysGoToActiveToy(t *testing.T) {
	m, stubs := newTestShell()

	m, _ = update(m, runes("x"))
	if n := len(stubs["alpha"].msgs); n != 1 {
		t.Fatalf("expected alpha to receive 1 message, got %d", n)
	}
	if len(stubs["beta"].msgs) != 0 {
		t.Error("inactive toy received a key")
	}

	// Shell keys are not forwarded.
	m, _ = update(m, runes("?"))
	if n := len(stubs["alpha"].msgs); n != 1 {
		t.Errorf("shell key was forwarded, alpha has %d messages", n)
	}
}

func TestUnknownMessagesGoToActiveToy(t *testing.T) {
	m, stubs := newTestShell()

	frame := toy.FrameMsg{Owner: "alpha", Gen: 1}
	m, _ = update(m, frame)
	if len(stubs["alpha"].msgs) != 1 || stubs["alpha"].msgs[0] != tea.Msg(frame) {
		t.Errorf("frame not forwarded: %#v", stubs["alpha"].msgs)
	}
}

func TestClickWithoutZonesGoesToActiveToy(t *testing.T) {
	m, stubs := newTestShell()

	m, _ = update(m, tea.MouseMsg{Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	if m.Selected() != "alpha" {
		t.Errorf("click without zones changed selection to %q", m.Selected())
	}
	if len(stubs["alpha"].msgs) != 1 {
		t.Error("click was not forwarded to the active toy")
	}
}

func TestClickSelectsToy(t *testing.T) {
	zones := zone.New()
	defer zones.Close()

	cfg := DefaultConfig()
	cfg.Zones = zones
	m, stubs := newStubShell(cfg, "alpha", "beta", "gamma")
	m, _ = update(m, tea.WindowSizeMsg{Width: 100, Height: 30})
	m.View()

	// Title, blank line, alpha, beta.
	z := waitZone(t, zones, navZone("beta"))
	if z.StartY != 3 {
		t.Errorf("beta entry on row %d, want 3", z.StartY)
	}

	m, cmd := update(m, leftClick(z.StartX+2, z.StartY))
	if m.Selected() != "beta" {
		t.Fatalf("expected click to select 'beta', got %q", m.Selected())
	}
	if cmd == nil {
		t.Fatal("expected beta's mount command")
	}
	if msg, ok := cmd().(stubMountMsg); !ok || msg.name != "beta" {
		t.Errorf("click command produced %#v", msg)
	}
	if stubs["alpha"].unmounts != 1 || stubs["beta"].mounts != 1 {
		t.Errorf("lifecycle: alpha unmounts=%d beta mounts=%d", stubs["alpha"].unmounts, stubs["beta"].mounts)
	}
	if len(stubs["alpha"].msgs) != 0 || len(stubs["beta"].msgs) != 0 {
		t.Error("nav click was forwarded to a toy")
	}

	out := ansi.Strip(m.View())
	if !strings.Contains(out, "stub:beta") || strings.Contains(out, "stub:alpha") {
		t.Error("content did not follow the click")
	}
	if !strings.Contains(out, "▸ beta") {
		t.Error("clicked entry not drawn as active")
	}
}

func TestClickOutsideNavGoesToActiveToy(t *testing.T) {
	zones := zone.New()
	defer zones.Close()

	cfg := DefaultConfig()
	cfg.Zones = zones
	m, stubs := newStubShell(cfg, "alpha", "beta")
	m, _ = update(m, tea.WindowSizeMsg{Width: 100, Height: 30})
	m.View()
	waitZone(t, zones, navZone("beta"))

	m, _ = update(m, leftClick(60, 0))
	if m.Selected() != "alpha" {
		t.Errorf("click in the content changed selection to %q", m.Selected())
	}
	if len(stubs["alpha"].msgs) != 1 {
		t.Error("content click was not forwarded to the active toy")
	}
}

func TestActiveEntryIsMarked(t *testing.T) {
	m, _ := newTestShell()
	m, _ = update(m, tea.WindowSizeMsg{Width: 100, Height: 30})

	out := ansi.Strip(m.View())
	if !strings.Contains(out, "▸ alpha") {
		t.Error("active entry missing the ▸ marker")
	}
	for _, name := range []string{"beta", "gamma"} {
		if strings.Contains(out, "▸ "+name) {
			t.Errorf("inactive entry %q drawn as active", name)
		}
		if !strings.Contains(out, "  "+name) {
			t.Errorf("inactive entry %q missing", name)
		}
	}
}

func TestSidebarFollowsSelection(t *testing.T) {
	zones := zone.New()
	defer zones.Close()

	names := make([]string, 30)
	for i := range names {
		names[i] = fmt.Sprintf("toy%02d", i)
	}
	cfg := DefaultConfig()
	cfg.Zones = zones
	m, _ := newStubShell(cfg, names...)
	m, _ = update(m, tea.WindowSizeMsg{Width: 80, Height: 12})

	out := ansi.Strip(m.View())
	if !strings.Contains(out, "▸ toy00") || strings.Contains(out, "toy20") {
		t.Fatalf("expected the top of the list first:\n%s", out)
	}

	m, _ = update(m, SelectToyMsg{Name: "toy20"})
	out = ansi.Strip(m.View())
	if !strings.Contains(out, "▸ toy20") {
		t.Errorf("selected entry scrolled out of view:\n%s", out)
	}
	if strings.Contains(out, "toy00") {
		t.Errorf("sidebar did not scroll:\n%s", out)
	}

	// Entries scrolled into view are clickable, and the ones scrolled out
	// no longer are.
	z := waitZone(t, zones, navZone("toy19"))
	waitNoZone(t, zones, navZone("toy00"))
	m, _ = update(m, leftClick(z.StartX, z.StartY))
	if m.Selected() != "toy19" {
		t.Errorf("expected click to select 'toy19', got %q", m.Selected())
	}

	// Moving back up scrolls the sidebar back.
	for range 19 {
		m, _ = update(m, tea.KeyMsg{Type: tea.KeyShiftTab})
	}
	if m.Selected() != "toy00" {
		t.Fatalf("expected 'toy00', got %q", m.Selected())
	}
	if out := ansi.Strip(m.View()); !strings.Contains(out, "▸ toy00") {
		t.Errorf("first entry not visible after moving back:\n%s", out)
	}
}

func TestQSendsQuitMessage(t *testing.T) {
	m, _ := newTestShell()

	m, cmd := update(m, runes("q"))
	if !m.Quitting() {
		t.Error("expected quitting=true after pressing q")
	}
	if cmd == nil {
		t.Error("expected non-nil quit command after pressing q")
	}
}

func TestCtrlCQuits(t *testing.T) {
	m, _ := newTestShell()

	m, cmd := update(m, tea.KeyMsg{Type: tea.KeyCtrlC})
	if !m.Quitting() {
		t.Error("expected quitting=true after Ctrl+C")
	}
	if cmd == nil {
		t.Error("expected non-nil quit command after Ctrl+C")
	}
}

func TestQuestionMarkTogglesHelp(t *testing.T) {
	m, _ := newTestShell()
	m, _ = update(m, tea.WindowSizeMsg{Width: 120, Height: 40})

	if m.HelpVisible() {
		t.Fatal("help should not be visible initially")
	}

	m, _ = update(m, runes("?"))
	if !m.HelpVisible() {
		t.Error("help should be visible after pressing ?")
	}
	if out := ansi.Strip(m.View()); !strings.Contains(out, "zap alpha") {
		t.Error("full help should list the active toy's bindings")
	}

	m, _ = update(m, runes("?"))
	if m.HelpVisible() {
		t.Error("help should be hidden after pressing ? again")
	}
}

func TestViewReturnsInitializingBeforeResize(t *testing.T) {
	m, _ := newTestShell()
	if out := m.View(); out != "Initializing..." {
		t.Errorf("expected 'Initializing...' before WindowSizeMsg, got %q", out)
	}
}

func TestViewReturnsEmptyWhenQuitting(t *testing.T) {
	m, _ := newTestShell()
	m, _ = update(m, tea.WindowSizeMsg{Width: 80, Height: 24})
	m, _ = update(m, runes("q"))

	if out := m.View(); out != "" {
		t.Errorf("expected empty view when quitting, got %q", out)
	}
}

func TestViewShowsSidebarAndActiveToy(t *testing.T) {
	m, _ := newTestShell()
	m, _ = update(m, tea.WindowSizeMsg{Width: 100, Height: 30})

	out := ansi.Strip(m.View())
	for _, s := range []string{"Toys", "alpha", "beta", "gamma", "stub:alpha"} {
		if !strings.Contains(out, s) {
			t.Errorf("view missing %q", s)
		}
	}
	if strings.Contains(out, PlaceholderText) {
		t.Error("placeholder shown while a toy is active")
	}

	m, _ = update(m, tea.KeyMsg{Type: tea.KeyTab})
	out = ansi.Strip(m.View())
	if !strings.Contains(out, "stub:beta") || strings.Contains(out, "stub:alpha") {
		t.Error("content did not follow the selection")
	}
}

func TestEmptyCatalogShowsPlaceholder(t *testing.T) {
	m := New(registry.Build(nil), DefaultConfig())
	if m.Init() != nil {
		t.Error("Init() should return nil with nothing to mount")
	}

	m, _ = update(m, tea.WindowSizeMsg{Width: 80, Height: 24})
	out := ansi.Strip(m.View())
	if !strings.Contains(out, PlaceholderText) {
		t.Errorf("expected placeholder, got:\n%s", out)
	}
	if !strings.Contains(out, "Toys") {
		t.Error("sidebar title missing")
	}
	if strings.Contains(out, "▸") {
		t.Error("empty catalog drew an active entry")
	}
	if m.Snapshot(80, 24) != m.View() {
		t.Error("Snapshot differs from View at the same size")
	}

	// Navigation on an empty catalog must not panic or select anything.
	m, _ = update(m, tea.KeyMsg{Type: tea.KeyTab})
	m, _ = update(m, tea.KeyMsg{Type: tea.KeyShiftTab})
	m, _ = update(m, runes("x"))
	if m.Selected() != "" {
		t.Errorf("expected no selection, got %q", m.Selected())
	}
}

func TestNilRegistry(t *testing.T) {
	m := New(nil, DefaultConfig())
	if out := m.Snapshot(60, 20); !strings.Contains(ansi.Strip(out), PlaceholderText) {
		t.Error("nil registry should render the placeholder")
	}
}

func TestSnapshotFitsTerminal(t *testing.T) {
	sizes := []struct{ w, h int }{{80, 24}, {200, 60}, {30, 10}}
	for _, s := range sizes {
		m, _ := newTestShell()
		out := m.Snapshot(s.w, s.h)

		lines := strings.Split(out, "\n")
		if len(lines) > s.h {
			t.Errorf("%dx%d: %d lines", s.w, s.h, len(lines))
		}
		for i, l := range lines {
			if w := ansi.StringWidth(l); w > s.w {
				t.Errorf("%dx%d: line %d is %d wide", s.w, s.h, i, w)
			}
		}
		if !strings.Contains(ansi.Strip(out), "stub:alpha") {
			t.Errorf("%dx%d: active toy missing", s.w, s.h)
		}
	}
}

func TestPlaceholderView(t *testing.T) {
	p := NewPlaceholder(theme.Get("mono"))

	if cmd := p.Mount(); cmd != nil {
		t.Error("expected nil from placeholder Mount")
	}
	if cmd := p.Update(nil); cmd != nil {
		t.Error("expected nil from placeholder Update")
	}

	view := p.View(40, 10)
	if !strings.Contains(ansi.Strip(view), PlaceholderText) {
		t.Errorf("placeholder text missing: %q", view)
	}
	if n := len(strings.Split(view, "\n")); n != 10 {
		t.Errorf("expected 10 lines, got %d", n)
	}
}

func TestPlaceholderViewZeroDimensions(t *testing.T) {
	p := NewPlaceholder(theme.Get("mono"))

	if v := p.View(0, 0); v != "" {
		t.Errorf("expected empty string for 0x0, got %q", v)
	}
	if v := p.View(-1, 10); v != "" {
		t.Errorf("expected empty string for negative width, got %q", v)
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.SidebarWidth <= 0 {
		t.Error("expected positive SidebarWidth in DefaultConfig")
	}
	if cfg.Theme.Name != theme.DefaultName {
		t.Errorf("expected theme %q, got %q", theme.DefaultName, cfg.Theme.Name)
	}
}
