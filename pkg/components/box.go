package components

import (
	"github.com/charmbracelet/lipgloss"
)

// Box renders body inside style so the result is width cells wide,
// border included. Text is wrapped to fit.
func Box(style lipgloss.Style, width int, body string) string {
	inner := width - style.GetHorizontalBorderSize()
	if inner < 1 {
		inner = 1
	}
	return style.Width(inner).Render(body)
}

// Button renders a bracketed label. The active button is bold in color;
// idle buttons use idle.
func Button(label string, active bool, color, idle string) string {
	s := lipgloss.NewStyle()
	if active {
		s = s.Bold(true).Foreground(lipgloss.Color(color))
		return s.Render("[" + label + "]")
	}
	return s.Foreground(lipgloss.Color(idle)).Render(" " + label + " ")
}

// Dot renders a filled circle in color, used as an item swatch.
func Dot(color string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render("●")
}

// Square renders a filled square in color, used in legends.
func Square(color string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render("■")
}
