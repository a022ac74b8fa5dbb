// Package tracer is a toy that traces how Reciprocal Rank Fusion builds
// one ranking out of several. Every input list is shown as a column, the
// fused ranking carries a stacked bar per item, and selecting an item
// breaks its total down list by list.
package tracer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"gitlab.com/tinyland/lab/toybox/pkg/rrf"
	"gitlab.com/tinyland/lab/toybox/pkg/toy"
)

// Kind is the definition kind this package registers.
const Kind = "rrf-tracer"

// AllLists is the step value that shows every list's contribution.
const AllLists = -1

// defaultItemColor is used for items without a configured color.
const defaultItemColor = "#607D8B"

func init() {
	toy.RegisterKind(Kind, func(name string, def toy.Definition, env toy.Env) (toy.Unit, error) {
		return New(name, def, env)
	})
}

type keyMap struct {
	All     key.Binding
	Isolate key.Binding
	Prev    key.Binding
	Next    key.Binding
	Clear   key.Binding
}

var keys = keyMap{
	All: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "all lists"),
	),
	Isolate: key.NewBinding(
		key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
		key.WithHelp("1-9", "isolate list"),
	),
	Prev: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←/h", "prev item"),
	),
	Next: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("→/l", "next item"),
	),
	Clear: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "clear"),
	),
}

// Tracer is the rank fusion tracer toy.
type Tracer struct {
	name string
	def  toy.Definition
	env  toy.Env

	lists    []rrf.List
	k        int
	results  []rrf.Result
	maxScore float64

	step     int
	selected string

	gen  int
	bars growth
}

// New builds a tracer from def. The definition must contain at least one
// non-empty list.
func New(name string, def toy.Definition, env toy.Env) (*Tracer, error) {
	lists := def.RankedLists(env.Theme)
	if len(rrf.Items(lists)) == 0 {
		return nil, fmt.Errorf("tracer: %s: no ranked items", name)
	}

	k := def.SmoothingK()
	results := rrf.Fuse(lists, k)

	t := &Tracer{
		name:     name,
		def:      def,
		env:      env,
		lists:    lists,
		k:        k,
		results:  results,
		maxScore: rrf.MaxScore(results),
		step:     AllLists,
		bars:     newGrowth(env.Interval),
	}
	return t, nil
}

// Mount restarts the bar animation when animations are enabled.
func (t *Tracer) Mount() tea.Cmd {
	t.gen++
	if !t.env.Animate {
		t.bars.finish()
		return nil
	}
	t.bars.reset()
	return toy.FrameCmd(t.name, t.gen, t.env.Interval)
}

// Unmount stops any running animation.
func (t *Tracer) Unmount() {
	t.gen++
	t.bars.finish()
}

// Update handles keys, clicks and animation frames.
func (t *Tracer) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case toy.FrameMsg:
		if msg.Owner != t.name || msg.Gen != t.gen {
			return nil
		}
		if t.bars.advance() {
			return toy.FrameCmd(t.name, t.gen, t.env.Interval)
		}
	case tea.KeyMsg:
		t.handleKey(msg)
	case tea.MouseMsg:
		t.handleMouse(msg)
	}
	return nil
}

// Bindings lists the tracer's keys for the host help bar.
func (t *Tracer) Bindings() []key.Binding {
	return []key.Binding{keys.All, keys.Isolate, keys.Prev, keys.Next, keys.Clear}
}

func (t *Tracer) handleKey(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, keys.All):
		t.SetStep(AllLists)
	case key.Matches(msg, keys.Isolate):
		t.SetStep(int(msg.String()[0] - '1'))
	case key.Matches(msg, keys.Next):
		t.move(1)
	case key.Matches(msg, keys.Prev):
		t.move(-1)
	case key.Matches(msg, keys.Clear):
		t.selected = ""
	}
}

func (t *Tracer) handleMouse(msg tea.MouseMsg) {
	if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
		return
	}

	if t.env.Hit(t.zone("step", "all"), msg) {
		t.SetStep(AllLists)
		return
	}
	for li, l := range t.lists {
		if t.env.Hit(t.zone("step", strconv.Itoa(li)), msg) {
			t.SetStep(li)
			return
		}
		for _, item := range l.Items {
			if t.env.Hit(t.zone("col", strconv.Itoa(li), item), msg) {
				t.Toggle(item)
				return
			}
		}
	}
	for _, r := range t.results {
		if t.env.Hit(t.zone("fused", r.Item), msg) {
			t.Toggle(r.Item)
			return
		}
	}
}

// Step returns the isolated list index, or AllLists.
func (t *Tracer) Step() int {
	return t.step
}

// SetStep isolates list i. AllLists shows every list; other out of range
// values are ignored.
func (t *Tracer) SetStep(i int) {
	if i == AllLists || (i >= 0 && i < len(t.lists)) {
		t.step = i
	}
}

// Selected returns the traced item, or "".
func (t *Tracer) Selected() string {
	return t.selected
}

// Toggle selects item, or clears the selection if item is already
// selected. Unknown items are ignored.
func (t *Tracer) Toggle(item string) {
	if _, ok := rrf.Find(t.results, item); !ok {
		return
	}
	if t.selected == item {
		t.selected = ""
		return
	}
	t.selected = item
}

// Results returns the fused ranking.
func (t *Tracer) Results() []rrf.Result {
	return t.results
}

// Progress returns the current bar scale, 1 when no animation runs.
func (t *Tracer) Progress() float64 {
	return t.bars.progress()
}

// move steps the selection through the fused ranking, wrapping at the
// ends. With nothing selected it starts at the first or last item.
func (t *Tracer) move(delta int) {
	n := len(t.results)
	if n == 0 {
		return
	}

	i := -1
	for j, r := range t.results {
		if r.Item == t.selected {
			i = j
			break
		}
	}
	switch {
	case i >= 0:
		i = (i + delta + n) % n
	case delta > 0:
		i = 0
	default:
		i = n - 1
	}
	t.selected = t.results[i].Item
}

// visible reports whether list li contributes under the current step.
func (t *Tracer) visible(li int) bool {
	return t.step == AllLists || t.step == li
}

func (t *Tracer) zone(parts ...string) string {
	return t.name + ":" + strings.Join(parts, ":")
}
