package app

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"gitlab.com/tinyland/lab/toybox/pkg/theme"
)

// PlaceholderText is shown in the content region when no toy is active.
const PlaceholderText = "Select a toy"

// Placeholder is the unit the shell renders when the registry has no
// active toy. It centers PlaceholderText in the area it is given.
type Placeholder struct {
	theme theme.Theme
}

// NewPlaceholder creates a placeholder drawn with th.
func NewPlaceholder(th theme.Theme) *Placeholder {
	return &Placeholder{theme: th}
}

// Mount is a no-op for the placeholder.
func (p *Placeholder) Mount() tea.Cmd {
	return nil
}

// Update is a no-op for the placeholder.
func (p *Placeholder) Update(_ tea.Msg) tea.Cmd {
	return nil
}

// View centers the placeholder text within width x height.
func (p *Placeholder) View(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}

	text := lipgloss.NewStyle().
		Foreground(lipgloss.Color(p.theme.Dim)).
		Render(PlaceholderText)

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, text)
}
