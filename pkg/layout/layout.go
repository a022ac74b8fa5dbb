// Package layout splits a rectangle of terminal cells into regions along
// one axis, driven by declarative constraints.
//
// Constraint types:
//   - Length(n): exactly n cells
//   - Percentage(p): p percent of the space left after spacing
//   - Min(n): at least n cells; shares the surplus when no Fill is present
//   - Fill(w): the remaining space, proportional to weight
//
// When the constraints ask for more than the area holds, regions are
// shrunk from the last one backwards.
package layout

// Rect is a rectangular area in terminal cells.
type Rect struct {
	X, Y, Width, Height int
}

// Empty returns true if this rectangle has zero area.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Direction controls the axis along which a Layout splits space.
type Direction int

const (
	// Horizontal splits left-to-right (constraints control width).
	Horizontal Direction = iota
	// Vertical splits top-to-bottom (constraints control height).
	Vertical
)

// Constraint is the interface satisfied by all layout constraint types.
type Constraint interface {
	constraint()
}

// Length allocates exactly Value cells.
type Length struct{ Value int }

func (Length) constraint() {}

// Percentage allocates Value percent of the available space (0-100).
type Percentage struct{ Value int }

func (Percentage) constraint() {}

// Min allocates at least Value cells.
type Min struct{ Value int }

func (Min) constraint() {}

// Fill distributes remaining space proportional to Weight. A Weight of 0
// is treated as 1.
type Fill struct{ Weight int }

func (Fill) constraint() {}

// Layout splits a Rect into regions according to constraints.
type Layout struct {
	direction   Direction
	constraints []Constraint
	spacing     int
}

// NewLayout creates a Layout with the given direction and constraints.
func NewLayout(dir Direction, constraints ...Constraint) *Layout {
	return &Layout{direction: dir, constraints: constraints}
}

// WithSpacing sets the gap in cells between regions.
func (l *Layout) WithSpacing(s int) *Layout {
	l.spacing = max(s, 0)
	return l
}

// Fits reports whether every Length, Percentage and Min region gets its
// full size in area.
func (l *Layout) Fits(area Rect) bool {
	available := l.available(area)
	_, fixed := l.fixed(available)
	return fixed <= available
}

// Split divides area into len(constraints) non-overlapping Rects placed in
// order along the layout axis, separated by the spacing.
func (l *Layout) Split(area Rect) []Rect {
	n := len(l.constraints)
	if n == 0 {
		return nil
	}

	available := l.available(area)
	allocs, used := l.fixed(available)

	if remaining := available - used; remaining > 0 {
		l.distribute(allocs, remaining)
	} else if remaining < 0 {
		shrink(allocs, -remaining)
	}

	rects := make([]Rect, n)
	pos := 0
	for i, a := range allocs {
		switch l.direction {
		case Horizontal:
			rects[i] = Rect{X: area.X + pos, Y: area.Y, Width: a, Height: max(area.Height, 0)}
		case Vertical:
			rects[i] = Rect{X: area.X, Y: area.Y + pos, Width: max(area.Width, 0), Height: a}
		}
		pos += a + l.spacing
	}
	return rects
}

// available is the axis size of area minus the spacing between regions.
func (l *Layout) available(area Rect) int {
	size := area.Width
	if l.direction == Vertical {
		size = area.Height
	}
	if n := len(l.constraints); n > 1 {
		size -= l.spacing * (n - 1)
	}
	return max(size, 0)
}

// fixed returns the initial allocation of every region and their sum.
// Fill regions start at zero.
func (l *Layout) fixed(available int) ([]int, int) {
	allocs := make([]int, len(l.constraints))
	used := 0
	for i, c := range l.constraints {
		switch v := c.(type) {
		case Length:
			allocs[i] = max(v.Value, 0)
		case Percentage:
			allocs[i] = available * min(max(v.Value, 0), 100) / 100
		case Min:
			allocs[i] = max(v.Value, 0)
		}
		used += allocs[i]
	}
	return allocs, used
}

// distribute hands surplus to Fill regions by weight, or evenly to Min
// regions when there are no Fills. The last receiver takes the rounding
// remainder.
func (l *Layout) distribute(allocs []int, surplus int) {
	weights := make([]int, len(allocs))
	total := 0
	for i, c := range l.constraints {
		if f, ok := c.(Fill); ok {
			weights[i] = max(f.Weight, 1)
			total += weights[i]
		}
	}
	if total == 0 {
		for i, c := range l.constraints {
			if _, ok := c.(Min); ok {
				weights[i] = 1
				total++
			}
		}
	}
	if total == 0 {
		return
	}

	last := -1
	for i, w := range weights {
		if w > 0 {
			last = i
		}
	}
	given := 0
	for i, w := range weights {
		switch {
		case w == 0:
		case i == last:
			allocs[i] += surplus - given
		default:
			share := surplus * w / total
			allocs[i] += share
			given += share
		}
	}
}

// shrink takes over cells away, starting from the last region.
func shrink(allocs []int, over int) {
	for i := len(allocs) - 1; i >= 0 && over > 0; i-- {
		cut := min(allocs[i], over)
		allocs[i] -= cut
		over -= cut
	}
}
