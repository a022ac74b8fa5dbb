package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"gitlab.com/tinyland/lab/toybox/pkg/toy"
)

// nextToy makes the following catalog entry active, wrapping after the
// last one.
func (m *Shell) nextToy() tea.Cmd {
	return m.switchTo(m.reg.Next)
}

// prevToy makes the preceding catalog entry active, wrapping before the
// first one.
func (m *Shell) prevToy() tea.Cmd {
	return m.switchTo(m.reg.Prev)
}

// selectToy makes name active. Unknown names and the current selection
// are no-ops.
func (m *Shell) selectToy(name string) tea.Cmd {
	return m.switchTo(func() bool { return m.reg.Select(name) })
}

// switchTo runs change and, if the selection moved, unmounts the previous
// unit, mounts the new one and scrolls the content back to the top.
func (m *Shell) switchTo(change func() bool) tea.Cmd {
	prev, hadPrev := m.reg.Active()
	if !change() {
		return nil
	}

	if hadPrev {
		if u, ok := prev.(toy.Unmounter); ok {
			u.Unmount()
		}
	}
	m.view.GotoTop()

	next, ok := m.reg.Active()
	if !ok {
		return nil
	}
	return next.Mount()
}
