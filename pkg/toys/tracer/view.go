package tracer

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
	minWidth     = 40
	minColumn    = 26
	minFused     = 36
	columnGap    = 1
	rankLabelLen = 3
	scoreLen     = 7
)

var explainer = []string{
	"Each item gets a score of 1 / (k + rank) from each list it appears in. " +
		"The constant k=%d keeps top-ranked items from dominating too aggressively: " +
		"it flattens the score distribution so that rank #1 vs #5 isn't a huge gap.",
	"Scores from all lists are summed. Items appearing in more lists and at higher ranks " +
		"accumulate the most points. The final ranking is simply a sort by total score.",
	"RRF is popular in search engines for combining results from different retrieval " +
		"strategies (e.g., keyword search + vector search). It requires no training, " +
		"no normalization, and works surprisingly well in practice.",
}

// View renders the whole tracer at width. Height is left to the host's
// scrolling viewport.
func (t *Tracer) View(width, _ int) string {
	if width <= 0 {
		return ""
	}
	if width < minWidth {
		width = minWidth
	}

	sections := []string{
		t.viewHeader(width),
		t.viewFormula(width),
		t.viewSteps(width),
		t.viewGrid(width),
	}
	if t.selected != "" {
		sections = append(sections, t.viewDetail(width))
	}
	sections = append(sections, t.viewExplainer(width), t.viewFooter(width))

	return strings.Join(sections, "\n\n")
}

func (t *Tracer) viewHeader(width int) string {
	th := t.env.Theme
	title := t.def.Title
	if title == "" {
		title = t.name
	}

	lines := []string{lipgloss.PlaceHorizontal(width, lipgloss.Center, th.Heading(title))}
	if t.def.Description != "" {
		for _, l := range components.Wrap(t.def.Description, min(width, 80)) {
			lines = append(lines, lipgloss.PlaceHorizontal(width, lipgloss.Center, th.Muted(strings.TrimSpace(l))))
		}
	}
	return strings.Join(lines, "\n")
}

func (t *Tracer) viewFormula(width int) string {
	th := t.env.Theme
	kColor := th.SeriesColor(0)

	formula := theme.Colorize("RRF", th.Accent) + "(d) = Σ " +
		theme.Colorize("1", th.SeriesColor(2)) + " / (" +
		theme.Colorize("k", kColor) + " + " +
		theme.Colorize("rank", th.Highlight) + "(d))"

	body := th.Muted("RRF FORMULA") + "   " + formula + "   " +
		th.Muted("where ") + theme.Colorize(fmt.Sprintf("k = %d", t.k), kColor) +
		th.Muted(" (smoothing constant)")

	return components.Box(th.PanelStyle(""), width, body)
}

func (t *Tracer) viewSteps(width int) string {
	th := t.env.Theme

	buttons := []string{
		t.env.Mark(t.zone("step", "all"),
			components.Button("All Lists", t.step == AllLists, th.Accent, th.Dim)),
	}
	for li, l := range t.lists {
		buttons = append(buttons, t.env.Mark(t.zone("step", strconv.Itoa(li)),
			components.Button(listLabel(l), t.step == li, l.Color, th.Dim)))
	}

	row := strings.Join(buttons, "  ")
	if components.VisibleLen(row) > width {
		return strings.Join(buttons, "\n")
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, row)
}

// viewGrid lays out the list columns and the fused column side by side
// when they fit, otherwise lists in one row and the fused ranking below,
// otherwise everything stacked.
func (t *Tracer) viewGrid(width int) string {
	n := len(t.lists)
	area := layout.Rect{Width: width, Height: 1}

	cols := make([]layout.Constraint, n, n+1)
	for i := range cols {
		cols[i] = layout.Min{Value: minColumn}
	}

	if wide := layout.NewLayout(layout.Horizontal, append(cols, layout.Min{Value: minFused})...).
		WithSpacing(columnGap); wide.Fits(area) {
		rects := wide.Split(area)
		blocks := make([]string, 0, n+1)
		for li := range t.lists {
			blocks = append(blocks, t.viewList(li, rects[li].Width))
		}
		blocks = append(blocks, t.viewFused(rects[n].Width))
		return joinColumns(blocks)
	}

	if row := layout.NewLayout(layout.Horizontal, cols...).WithSpacing(columnGap); row.Fits(area) {
		rects := row.Split(area)
		blocks := make([]string, 0, n)
		for li := range t.lists {
			blocks = append(blocks, t.viewList(li, rects[li].Width))
		}
		return joinColumns(blocks) + "\n" + t.viewFused(width)
	}

	blocks := make([]string, 0, n+1)
	for li := range t.lists {
		blocks = append(blocks, t.viewList(li, width))
	}
	blocks = append(blocks, t.viewFused(width))
	return strings.Join(blocks, "\n")
}

func joinColumns(cols []string) string {
	spaced := make([]string, 0, 2*len(cols))
	for i, c := range cols {
		if i > 0 {
			spaced = append(spaced, strings.Repeat(" ", columnGap))
		}
		spaced = append(spaced, c)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, spaced...)
}

// pill renders an item swatch and name at exactly width cells.
func (t *Tracer) pill(item string, width int) string {
	th := t.env.Theme
	color := t.def.ItemColor(item, defaultItemColor)
	name := components.Truncate(item, width-2)

	switch {
	case t.selected == item:
		name = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(th.Foreground)).Render(name)
		return components.PadRight(components.Dot(color)+" "+name, width)
	case t.selected != "":
		return components.PadRight(th.Subtle("○ "+name), width)
	default:
		return components.PadRight(components.Dot(color)+" "+th.Muted(name), width)
	}
}

func (t *Tracer) viewList(li, width int) string {
	th := t.env.Theme
	l := t.lists[li]
	active := t.visible(li)
	inner := width - 4

	accent, border := l.Color, l.Color
	if !active {
		accent, border = th.Faint, th.Faint
	}

	lines := []string{lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(accent)).Render(listLabel(l)), ""}

	pillW := inner - rankLabelLen - scoreLen - 2
	for pos, item := range l.Items {
		rank := pos + 1
		score := fmt.Sprintf("%.5f", rrf.Score(t.k, rank))

		scoreColor := th.Faint
		if t.selected == item && active {
			scoreColor = l.Color
		}

		var p string
		if active {
			p = t.pill(item, pillW)
		} else {
			p = th.Subtle(components.Fit(item, pillW))
		}

		lines = append(lines,
			th.Subtle(components.PadRight("#"+strconv.Itoa(rank), rankLabelLen))+" "+
				t.env.Mark(t.zone("col", strconv.Itoa(li), item), p)+" "+
				theme.Colorize(score, scoreColor))
	}

	lines = append(lines, "", th.Subtle(fmt.Sprintf("Score = 1/(%d + rank)", t.k)))
	return components.Box(th.PanelStyle(border), width, strings.Join(lines, "\n"))
}

func (t *Tracer) viewFused(width int) string {
	th := t.env.Theme
	inner := width - 4

	lines := []string{"🏆 " + th.Heading("Fused Ranking"), ""}

	pillW := inner - rankLabelLen - scoreLen - 2
	barW := inner - rankLabelLen - 1
	progress := t.bars.progress()

	for i, r := range t.results {
		rankColor := th.Faint
		if i == 0 {
			rankColor = th.Highlight
		}
		scoreColor := th.Dim
		if t.selected == r.Item {
			scoreColor = th.Foreground
		}

		lines = append(lines,
			theme.Colorize(components.PadRight("#"+strconv.Itoa(i+1), rankLabelLen), rankColor)+" "+
				t.env.Mark(t.zone("fused", r.Item), t.pill(r.Item, pillW))+" "+
				theme.Colorize(fmt.Sprintf("%.5f", r.Score), scoreColor))

		segments := make([]components.Segment, 0, len(r.Contributions))
		for _, c := range r.Contributions {
			color := t.lists[c.List].Color
			if !t.visible(c.List) || (t.selected != "" && t.selected != r.Item) {
				color = th.Faint
			}
			segments = append(segments, components.Segment{Value: c.Score * progress, Color: color})
		}
		lines = append(lines, strings.Repeat(" ", rankLabelLen+1)+components.Bar(segments, t.maxScore, barW, th.Faint))

		if t.selected == r.Item {
			lines = append(lines, t.viewContributions(r, inner)...)
		}
	}

	legend := make([]string, len(t.lists))
	for li, l := range t.lists {
		legend[li] = components.Square(l.Color) + " " + th.Muted(l.Name)
	}
	lines = append(lines, "", th.Subtle("BAR SEGMENTS"))
	lines = append(lines, components.Wrap(strings.Join(legend, "  "), inner)...)

	return components.Box(th.PanelStyle(th.PanelBorder), width, strings.Join(lines, "\n"))
}

func (t *Tracer) viewContributions(r rrf.Result, width int) []string {
	parts := make([]string, len(r.Contributions))
	for i, c := range r.Contributions {
		l := t.lists[c.List]
		label := fmt.Sprintf("rank %d → %.5f", c.Rank, c.Score)
		if l.Emoji != "" {
			label = l.Emoji + " " + label
		}
		parts[i] = theme.Colorize(label, l.Color)
	}

	indent := strings.Repeat(" ", rankLabelLen+1)
	wrapped := components.Wrap(strings.Join(parts, "  "), width-len(indent))
	for i := range wrapped {
		wrapped[i] = indent + wrapped[i]
	}
	return wrapped
}

func (t *Tracer) viewDetail(width int) string {
	th := t.env.Theme
	r, ok := rrf.Find(t.results, t.selected)
	if !ok {
		return ""
	}
	color := t.def.ItemColor(r.Item, defaultItemColor)
	arrow := th.Muted(" → ")

	title := components.Dot(color) + " " +
		lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(th.Foreground)).
			Render(fmt.Sprintf("How %q gets its score", r.Item))
	lines := []string{title, ""}

	for _, c := range r.Contributions {
		l := t.lists[c.List]
		lines = append(lines,
			lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(l.Color)).Render(listLabel(l))+
				arrow+"rank "+theme.Colorize(strconv.Itoa(c.Rank), th.Highlight)+
				arrow+fmt.Sprintf("1/(%d + %d) = ", t.k, c.Rank)+
				theme.Colorize(fmt.Sprintf("%.5f", c.Score), th.Accent))
	}
	for li, l := range t.lists {
		if _, ok := r.In(li); ok {
			continue
		}
		lines = append(lines, th.Subtle(listLabel(l)+" → ")+theme.Colorize("not ranked → 0", th.SeriesColor(0)))
	}

	terms := make([]string, len(r.Contributions))
	for i, c := range r.Contributions {
		terms[i] = theme.Colorize(fmt.Sprintf("%.5f", c.Score), t.lists[c.List].Color)
	}
	lines = append(lines, "",
		"Total RRF Score = "+strings.Join(terms, th.Muted(" + "))+" = "+
			theme.Colorize(fmt.Sprintf("%.5f", r.Score), th.Accent))

	return components.Box(th.PanelStyle(color), width, strings.Join(lines, "\n"))
}

func (t *Tracer) viewExplainer(width int) string {
	th := t.env.Theme
	paras := []string{th.Heading("How does RRF work?")}
	for i, p := range explainer {
		if i == 0 {
			p = fmt.Sprintf(p, t.k)
		}
		paras = append(paras, th.Muted(p))
	}
	return components.Box(th.PanelStyle(""), width, strings.Join(paras, "\n\n"))
}

func (t *Tracer) viewFooter(width int) string {
	th := t.env.Theme
	text := "Click any item to see its full score breakdown · Use the filter buttons to isolate each list's contribution"
	lines := components.Wrap(text, width)
	for i, l := range lines {
		lines[i] = lipgloss.PlaceHorizontal(width, lipgloss.Center, th.Subtle(strings.TrimSpace(l)))
	}
	return strings.Join(lines, "\n")
}

func listLabel(l rrf.List) string {
	if l.Emoji == "" {
		return l.Name
	}
	return l.Emoji + " " + l.Name
}
