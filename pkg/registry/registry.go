// Package registry holds the gallery catalog: the discovered toys in a
// fixed order and which one is currently selected.
//
// A Registry is not safe for concurrent use. The shell touches it only
// from its update loop.
package registry

import (
	"sort"

	"gitlab.com/tinyland/lab/toybox/pkg/toy"
)

// Entry is one catalog item. Name is unique within a registry.
type Entry struct {
	Name string
	Unit toy.Unit
}

// Registry is an ordered, immutable catalog plus a mutable selection.
type Registry struct {
	entries  []Entry
	index    map[string]int
	selected string
}

// Build creates a registry with one entry per key of units, ordered
// lexicographically by name. The first entry is selected; an empty map
// yields an empty catalog with nothing selected.
func Build(units map[string]toy.Unit) *Registry {
	names := make([]string, 0, len(units))
	for name := range units {
		names = append(names, name)
	}
	sort.Strings(names)

	r := &Registry{
		entries: make([]Entry, len(names)),
		index:   make(map[string]int, len(names)),
	}
	for i, name := range names {
		r.entries[i] = Entry{Name: name, Unit: units[name]}
		r.index[name] = i
	}
	if len(r.entries) > 0 {
		r.selected = r.entries[0].Name
	}
	return r
}

// Select makes name the selection when the catalog has such an entry.
// Unknown names leave the selection untouched. It reports whether the
// selection changed.
func (r *Registry) Select(name string) bool {
	if _, ok := r.index[name]; !ok {
		return false
	}
	if r.selected == name {
		return false
	}
	r.selected = name
	return true
}

// Active returns the selected unit, or false when nothing is selected.
func (r *Registry) Active() (toy.Unit, bool) {
	i, ok := r.index[r.selected]
	if !ok {
		return nil, false
	}
	return r.entries[i].Unit, true
}

// Selected returns the selected name, or "" when nothing is selected.
func (r *Registry) Selected() string {
	return r.selected
}

// List returns the entry names in catalog order.
func (r *Registry) List() []string {
	names := make([]string, len(r.entries))
	for i, e := range r.entries {
		names[i] = e.Name
	}
	return names
}

// Entries returns a copy of the catalog.
func (r *Registry) Entries() []Entry {
	return append([]Entry(nil), r.entries...)
}

// Get returns the unit registered under name.
func (r *Registry) Get(name string) (toy.Unit, bool) {
	i, ok := r.index[name]
	if !ok {
		return nil, false
	}
	return r.entries[i].Unit, true
}

// Len returns the number of entries.
func (r *Registry) Len() int {
	return len(r.entries)
}

// Next selects the entry after the current one, wrapping to the first.
// It reports whether the selection changed.
func (r *Registry) Next() bool {
	return r.step(1)
}

// Prev selects the entry before the current one, wrapping to the last.
// It reports whether the selection changed.
func (r *Registry) Prev() bool {
	return r.step(-1)
}

func (r *Registry) step(delta int) bool {
	n := len(r.entries)
	if n == 0 {
		return false
	}

	i, ok := r.index[r.selected]
	if !ok {
		// Nothing selected: forward starts at the first entry, backward at
		// the last.
		if delta > 0 {
			i = n - 1
		} else {
			i = 0
		}
	}
	i = (i + delta + n) % n
	return r.Select(r.entries[i].Name)
}
