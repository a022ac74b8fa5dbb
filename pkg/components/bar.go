package components

import (
	"math"
	"strings"

	"gitlab.com/tinyland/lab/toybox/pkg/theme"
)

// Block characters for sub-cell precision (8 levels per cell).
var barBlocks = [9]rune{
	' ',      // 0/8 empty
	'\u258F', // 1/8 ▏
	'\u258E', // 2/8 ▎
	'\u258D', // 3/8 ▍
	'\u258C', // 4/8 ▌
	'\u258B', // 5/8 ▋
	'\u258A', // 6/8 ▊
	'\u2589', // 7/8 ▉
	'\u2588', // 8/8 █
}

// TrackRune fills the unused part of a bar.
const TrackRune = '·'

// Segment is one colored run of a stacked bar.
type Segment struct {
	Value float64
	Color string
}

// Bar renders a horizontal bar of width cells. Each segment takes
// Value/limit of the width, stacked left to right in order. The remainder is
// drawn with TrackRune in trackColor. Boundaries are resolved to eighths of
// a cell; a cell shared by two segments takes the color of the one that
// covers more of it.
func Bar(segments []Segment, limit float64, width int, trackColor string) string {
	if width <= 0 {
		return ""
	}

	total := width * 8
	// ends[i] is the eighth at which segment i stops.
	ends := make([]int, len(segments))
	var cum float64
	for i, s := range segments {
		if s.Value > 0 {
			cum += s.Value
		}
		ends[i] = barEighths(cum, limit, total)
	}
	filled := 0
	if len(ends) > 0 {
		filled = ends[len(ends)-1]
	}

	var b strings.Builder
	var run strings.Builder
	runColor := ""
	flush := func() {
		if run.Len() == 0 {
			return
		}
		b.WriteString(theme.Colorize(run.String(), runColor))
		run.Reset()
	}
	emit := func(r rune, color string) {
		if color != runColor {
			flush()
			runColor = color
		}
		run.WriteRune(r)
	}

	for cell := 0; cell < width; cell++ {
		lo, hi := cell*8, cell*8+8
		if lo >= filled {
			emit(TrackRune, trackColor)
			continue
		}

		covered := min(hi, filled) - lo
		color := barDominant(segments, ends, lo, hi)
		emit(barBlocks[covered], color)
	}
	flush()

	return b.String()
}

// Ratio renders a single-color bar filled to value/limit.
func Ratio(value, limit float64, width int, color, trackColor string) string {
	return Bar([]Segment{{Value: value, Color: color}}, limit, width, trackColor)
}

// barEighths converts value/limit into eighths of the bar, clamped to total.
func barEighths(value, limit float64, total int) int {
	if limit <= 0 || value <= 0 {
		return 0
	}
	n := int(math.Round(value / limit * float64(total)))
	if n > total {
		n = total
	}
	return n
}

// barDominant returns the color of the segment covering most of [lo, hi).
func barDominant(segments []Segment, ends []int, lo, hi int) string {
	best, bestCover := "", 0
	start := 0
	for i, end := range ends {
		cover := min(end, hi) - max(start, lo)
		if cover > bestCover {
			best, bestCover = segments[i].Color, cover
		}
		start = end
	}
	return best
}
