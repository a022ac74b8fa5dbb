// Package toy defines the renderable unit a gallery entry wraps, the
// on-disk definition format for toys, and discovery of definitions from
// one or more filesystems.
//
// Toy implementations live in their own packages and register a kind from
// init. A binary that wants a kind available blank-imports its package.
package toy

import (
	"fmt"
	"sort"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"gitlab.com/tinyland/lab/toybox/pkg/theme"
)

// Unit is a self-contained visualization. It owns its state and is driven
// by the host's update loop.
type Unit interface {
	// Mount is called when the unit becomes the active one. The returned
	// command (may be nil) is run by the host.
	Mount() tea.Cmd

	// Update receives every message the host does not consume itself.
	Update(msg tea.Msg) tea.Cmd

	// View renders the unit into the given content area.
	View(width, height int) string
}

// Unmounter is implemented by units that need to stop work when another
// unit becomes active.
type Unmounter interface {
	Unmount()
}

// Env carries the shared resources a factory may hand to its unit.
type Env struct {
	// Zones marks clickable regions. May be nil, in which case units
	// render without click targets.
	Zones *zone.Manager

	Theme theme.Theme

	// Animate enables mount animations. Interval is the frame period.
	Animate  bool
	Interval time.Duration
}

// Mark wraps s in a click zone when a manager is present.
func (e Env) Mark(id, s string) string {
	if e.Zones == nil {
		return s
	}
	return e.Zones.Mark(id, s)
}

// Hit reports whether a mouse event landed inside zone id.
func (e Env) Hit(id string, msg tea.MouseMsg) bool {
	if e.Zones == nil {
		return false
	}
	return e.Zones.Get(id).InBounds(msg)
}

// Factory builds a unit named name from its decoded definition.
type Factory func(name string, def Definition, env Env) (Unit, error)

var (
	kindsMu sync.RWMutex
	kinds   = map[string]Factory{}
)

// RegisterKind makes a factory available to Discover. Registering the same
// kind twice panics.
func RegisterKind(kind string, f Factory) {
	kindsMu.Lock()
	defer kindsMu.Unlock()

	if kind == "" || f == nil {
		panic("toy: RegisterKind with empty kind or nil factory")
	}
	if _, dup := kinds[kind]; dup {
		panic(fmt.Sprintf("toy: kind %q registered twice", kind))
	}
	kinds[kind] = f
}

// Kinds returns the registered kind names in sorted order.
func Kinds() []string {
	kindsMu.RLock()
	defer kindsMu.RUnlock()

	names := make([]string, 0, len(kinds))
	for k := range kinds {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

func lookupKind(kind string) (Factory, bool) {
	kindsMu.RLock()
	defer kindsMu.RUnlock()
	f, ok := kinds[kind]
	return f, ok
}
