// Package components holds the small ANSI-aware rendering primitives the
// shell and the toys share: width-safe text helpers and stacked bars.
package components

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Ellipsis is appended to text cut by Truncate.
const Ellipsis = "…"

// VisibleLen returns the visible width of s in terminal cells. ANSI escape
// sequences are ignored and wide characters count as two.
func VisibleLen(s string) int {
	return ansi.StringWidth(s)
}

// Truncate shortens s to at most maxWidth cells, ending in Ellipsis when
// anything was cut. Escape sequences before the cut point are kept.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	return ansi.Truncate(s, maxWidth, Ellipsis)
}

// PadRight pads s with trailing spaces to width cells. Wider strings are
// returned unchanged.
func PadRight(s string, width int) string {
	vis := VisibleLen(s)
	if vis >= width {
		return s
	}
	return s + strings.Repeat(" ", width-vis)
}

// Fit makes s exactly width cells wide, truncating or padding as needed.
func Fit(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return PadRight(Truncate(s, width), width)
}

// Wrap word-wraps s at width, respecting escape sequences and wide
// characters, and returns the lines.
func Wrap(s string, width int) []string {
	if width <= 0 {
		return []string{s}
	}
	return strings.Split(ansi.Wrap(s, width, ""), "\n")
}

// Clip cuts a multi-line block to at most width cells per line and height
// lines. A non-positive height keeps every line.
func Clip(block string, width, height int) string {
	lines := strings.Split(block, "\n")
	if height > 0 && len(lines) > height {
		lines = lines[:height]
	}
	for i, l := range lines {
		if VisibleLen(l) > width {
			lines[i] = ansi.Truncate(l, width, "")
		}
	}
	return strings.Join(lines, "\n")
}
