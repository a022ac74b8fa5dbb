// Package theme holds the named color palettes used by the gallery shell
// and the toys. Palettes are registered by name and may also be loaded
// from TOML files.
package theme

import (
	"sort"
	"strings"
	"sync"
)

// Theme defines the complete color palette for the gallery.
type Theme struct {
	Name string

	// Shell
	NavBackground string // sidebar background
	NavForeground string // sidebar text
	NavActive     string // background of the selected toy
	Background    string // content region background
	Foreground    string // primary text

	// Toy surfaces
	Panel       string // card background
	PanelBorder string // card border
	Dim         string // secondary text
	Faint       string // tertiary text, empty bar track
	Accent      string // headings, formula highlights
	Highlight   string // first place marker

	// Series colors are assigned to ranked lists in order.
	Series []string

	HelpKey  string
	HelpDesc string
}

// SeriesColor returns the color for list i, cycling through Series.
func (t Theme) SeriesColor(i int) string {
	if len(t.Series) == 0 {
		return t.Accent
	}
	if i < 0 {
		i = -i
	}
	return t.Series[i%len(t.Series)]
}

// DefaultName is the palette used when a name is unknown.
const DefaultName = "midnight"

var (
	mu       sync.RWMutex
	registry = map[string]Theme{}
)

func init() {
	thRegisterBuiltins()
}

// Get returns a named theme, falling back to the default if not found.
func Get(name string) Theme {
	mu.RLock()
	defer mu.RUnlock()
	if t, ok := registry[strings.ToLower(name)]; ok {
		return t
	}
	return registry[DefaultName]
}

// Lookup returns a named theme and whether it exists.
func Lookup(name string) (Theme, bool) {
	mu.RLock()
	defer mu.RUnlock()
	t, ok := registry[strings.ToLower(name)]
	return t, ok
}

// Names returns all available theme names sorted alphabetically.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Register adds or replaces a theme under its lowercase name.
func Register(t Theme) {
	mu.Lock()
	defer mu.Unlock()
	registry[strings.ToLower(t.Name)] = t
}
