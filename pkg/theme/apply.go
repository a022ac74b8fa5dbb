package theme

import "github.com/charmbracelet/lipgloss"

// Fg returns a style with the given hex foreground color.
func Fg(hex string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hex))
}

// Colorize renders text in the given hex color. An empty color returns
// text unchanged.
func Colorize(text, hex string) string {
	if hex == "" {
		return text
	}
	return Fg(hex).Render(text)
}

// PanelStyle returns the rounded card style toys draw their sections in.
// An empty border color uses the theme's panel border.
func (t Theme) PanelStyle(border string) lipgloss.Style {
	if border == "" {
		border = t.PanelBorder
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(border)).
		Padding(0, 1)
}

// Heading renders a section heading in the accent color.
func (t Theme) Heading(text string) string {
	return Fg(t.Accent).Bold(true).Render(text)
}

// Muted renders secondary text.
func (t Theme) Muted(text string) string {
	return Fg(t.Dim).Render(text)
}

// Subtle renders tertiary text.
func (t Theme) Subtle(text string) string {
	return Fg(t.Faint).Render(text)
}
