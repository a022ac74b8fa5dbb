package fusion

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"gitlab.com/tinyland/lab/toybox/pkg/components"
	"gitlab.com/tinyland/lab/toybox/pkg/layout"
	"gitlab.com/tinyland/lab/toybox/pkg/rrf"
	"gitlab.com/tinyland/lab/toybox/pkg/theme"
)

const (
	minWidth  = 40
	minCard   = 24
	cardGap   = 2
	scoreBarW = 16
)

var numberWords = []string{"zero", "one", "two", "three", "four", "five", "six", "seven", "eight", "nine"}

func number(n int) string {
	if n >= 0 && n < len(numberWords) {
		return numberWords[n]
	}
	return strconv.Itoa(n)
}

// View renders the toy at width. Height is left to the host's scrolling
// viewport.
func (f *Fusion) View(width, _ int) string {
	if width <= 0 {
		return ""
	}
	if width < minWidth {
		width = minWidth
	}

	sections := []string{
		f.viewHeader(width),
		f.viewCards(width),
		f.viewButton(width),
	}
	if f.shown {
		sections = append(sections, f.viewFormula(width), f.viewResults(width))
	}
	return strings.Join(sections, "\n\n")
}

func (f *Fusion) viewHeader(width int) string {
	th := f.env.Theme
	title := f.def.Title
	if title == "" {
		title = f.name
	}

	lines := []string{th.Heading(title)}
	if f.def.Description != "" {
		for _, l := range components.Wrap(f.def.Description, min(width, 72)) {
			lines = append(lines, th.Muted(strings.TrimSpace(l)))
		}
	}
	return strings.Join(lines, "\n")
}

// viewCards renders one card per input list, side by side when they fit.
func (f *Fusion) viewCards(width int) string {
	n := len(f.lists)
	area := layout.Rect{Width: width, Height: 1}

	cons := make([]layout.Constraint, n)
	for i := range cons {
		cons[i] = layout.Min{Value: minCard}
	}
	row := layout.NewLayout(layout.Horizontal, cons...).WithSpacing(cardGap)
	if !row.Fits(area) {
		cards := make([]string, n)
		for li := range f.lists {
			cards[li] = f.viewCard(li, width)
		}
		return strings.Join(cards, "\n")
	}

	rects := row.Split(area)
	cols := make([]string, 0, 2*n)
	for li, r := range rects {
		if li > 0 {
			cols = append(cols, strings.Repeat(" ", cardGap))
		}
		cols = append(cols, f.viewCard(li, r.Width))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cols...)
}

func (f *Fusion) viewCard(li, width int) string {
	th := f.env.Theme
	l := f.lists[li]
	inner := width - 4

	lines := []string{
		theme.Colorize(strings.Repeat("━", inner), l.Color),
		lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(th.Foreground)).Render(components.Truncate(l.Name, inner)),
		"",
	}
	for pos, item := range l.Items {
		lines = append(lines, badge(pos+1, l.Color, th.Background)+" "+
			th.Muted(components.Truncate(item, inner-badgeWidth(pos+1)-1)))
	}
	return components.Box(th.PanelStyle(""), width, strings.Join(lines, "\n"))
}

func badge(rank int, color, text string) string {
	return lipgloss.NewStyle().
		Bold(true).
		Background(lipgloss.Color(color)).
		Foreground(lipgloss.Color(text)).
		Render(" " + strconv.Itoa(rank) + " ")
}

func badgeWidth(rank int) int {
	return len(strconv.Itoa(rank)) + 2
}

func (f *Fusion) viewButton(width int) string {
	th := f.env.Theme
	label := "Fuse Lists ›"
	if f.shown {
		label = "Hide ›"
	}
	button := f.env.Mark(f.zone(), components.Button(label, true, th.Accent, th.Dim))
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, button)
}

func (f *Fusion) viewFormula(width int) string {
	th := f.env.Theme
	code := lipgloss.NewStyle().Foreground(lipgloss.Color(th.Accent))

	rank1 := fmt.Sprintf("1/%d ≈ %.6f", f.k+1, rrf.Score(f.k, 1))
	contributes := "A rank of 1 contributes " + code.Render(rank1)
	if f.maxRank > 1 {
		rankN := fmt.Sprintf("1/%d ≈ %.6f", f.k+f.maxRank, rrf.Score(f.k, f.maxRank))
		contributes += fmt.Sprintf(", while a rank of %d contributes ", f.maxRank) + code.Render(rankN)
	}

	lines := []string{
		th.Heading("How It Works"),
		"",
		lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(th.Foreground)).Render("RRF Formula:"),
		code.Render("Score = Σ 1 / (k + rank) for each list"),
		th.Muted(fmt.Sprintf("Where k = %d (standard parameter). Items not in a list contribute 0 to that list's sum.", f.k)),
		"",
		th.Muted(fmt.Sprintf("Each item is scored based on its rank across all %s lists. ", number(len(f.lists)))) +
			contributes + th.Muted(". Items that appear in multiple lists accumulate higher scores."),
	}
	return components.Box(th.PanelStyle(th.Accent), width, strings.Join(lines, "\n"))
}

func (f *Fusion) viewResults(width int) string {
	th := f.env.Theme
	inner := width - 4

	lines := []string{th.Heading("Fused Results (Sorted by RRF Score)"), ""}

	nameW := inner - 4 - scoreBarW - 1
	for i, r := range f.results {
		rank := theme.Colorize(components.PadRight("#"+strconv.Itoa(i+1), 3), th.Highlight)
		name := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(th.Foreground)).
			Render(components.Fit(r.Item, nameW))
		bar := components.Ratio(r.Score, f.maxScore, scoreBarW, th.Accent, th.Faint)

		lines = append(lines,
			rank+" "+name+" "+bar,
			"    "+theme.Colorize(fmt.Sprintf("RRF Score: %.6f", r.Score), th.Accent))

		details := make([]string, len(r.Contributions))
		for j, c := range r.Contributions {
			l := f.lists[c.List]
			details[j] = theme.Colorize(l.Name, l.Color) + " " +
				th.Muted(fmt.Sprintf("Rank %d = 1/%d = %.6f", c.Rank, f.k+c.Rank, c.Score))
		}
		for _, d := range components.Wrap(strings.Join(details, "   "), inner-4) {
			lines = append(lines, "    "+d)
		}
		lines = append(lines, "")
	}

	lines = append(lines, f.insight())
	return components.Box(th.PanelStyle(""), width, strings.Join(lines, "\n"))
}

func (f *Fusion) insight() string {
	th := f.env.Theme
	item, count := f.Insight()

	var where string
	switch {
	case count == len(f.lists) && count > 1:
		where = "all " + number(count) + " lists"
	case count == 1:
		where = "one list"
	default:
		where = number(count) + " of " + number(len(f.lists)) + " lists"
	}

	lead := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(th.Accent)).Render("Key insight:")
	return lead + " " + th.Muted(fmt.Sprintf(
		"Items appearing in multiple lists rank higher because their scores accumulate. "+
			"For example, %q appears in %s, giving it multiple contributions to its final score.",
		item, where))
}
