// Package fusion is a toy that shows several ranked input lists and, on
// request, fuses them with Reciprocal Rank Fusion, listing each result's
// score and the per-list terms that produced it.
package fusion

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"gitlab.com/tinyland/lab/toybox/pkg/rrf"
	"gitlab.com/tinyland/lab/toybox/pkg/toy"
)

// Kind is the definition kind this package registers.
const Kind = "rrf-fuse"

func init() {
	toy.RegisterKind(Kind, func(name string, def toy.Definition, env toy.Env) (toy.Unit, error) {
		return New(name, def, env)
	})
}

var fuseKey = key.NewBinding(
	key.WithKeys(" ", "space", "enter", "f"),
	key.WithHelp("space/f", "fuse lists"),
)

// Fusion is the list fusion toy.
type Fusion struct {
	name string
	def  toy.Definition
	env  toy.Env

	lists    []rrf.List
	k        int
	results  []rrf.Result
	maxScore float64
	maxRank  int

	shown bool
}

// New builds a fusion toy from def. The definition must contain at least
// one non-empty list.
func New(name string, def toy.Definition, env toy.Env) (*Fusion, error) {
	lists := def.RankedLists(env.Theme)
	if len(rrf.Items(lists)) == 0 {
		return nil, fmt.Errorf("fusion: %s: no ranked items", name)
	}

	k := def.SmoothingK()
	results := rrf.Fuse(lists, k)

	maxRank := 0
	for _, l := range lists {
		maxRank = max(maxRank, len(l.Items))
	}

	return &Fusion{
		name:     name,
		def:      def,
		env:      env,
		lists:    lists,
		k:        k,
		results:  results,
		maxScore: rrf.MaxScore(results),
		maxRank:  maxRank,
	}, nil
}

// Mount implements toy.Unit. The fusion toy has nothing to start.
func (f *Fusion) Mount() tea.Cmd { return nil }

// Unmount hides the fused results so the next visit starts from the
// input lists.
func (f *Fusion) Unmount() { f.shown = false }

// Update handles the fuse key and clicks on the fuse button.
func (f *Fusion) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, fuseKey) {
			f.Toggle()
		}
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionRelease && msg.Button == tea.MouseButtonLeft &&
			f.env.Hit(f.zone(), msg) {
			f.Toggle()
		}
	}
	return nil
}

// Bindings lists the toy's keys for the host help bar.
func (f *Fusion) Bindings() []key.Binding {
	return []key.Binding{fuseKey}
}

// Toggle shows or hides the fused results.
func (f *Fusion) Toggle() { f.shown = !f.shown }

// Shown reports whether the fused results are visible.
func (f *Fusion) Shown() bool { return f.shown }

// Results returns the fused ranking.
func (f *Fusion) Results() []rrf.Result { return f.results }

// Insight returns the item found in the most input lists and how many
// lists contain it. Ties go to the item seen first.
func (f *Fusion) Insight() (item string, count int) {
	for _, it := range rrf.Items(f.lists) {
		r, ok := rrf.Find(f.results, it)
		if ok && len(r.Contributions) > count {
			item, count = it, len(r.Contributions)
		}
	}
	return item, count
}

func (f *Fusion) zone() string {
	return f.name + ":fuse"
}
