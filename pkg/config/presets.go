package config

// Sidebar widths in cells for the built-in layout presets.
const (
	sidebarDefault = 26
	sidebarCompact = 18
	sidebarWide    = 34
)

// LayoutPreset returns the layout configuration for a named preset.
// If the name is not recognized, the "default" preset is returned.
func LayoutPreset(name string) LayoutConfig {
	switch name {
	case "compact":
		return compactPreset()
	case "wide":
		return widePreset()
	default:
		return defaultPreset()
	}
}

// defaultPreset mirrors the browser gallery: a narrow nav column and a
// padded content area.
func defaultPreset() LayoutConfig {
	return LayoutConfig{Preset: "default", SidebarWidth: sidebarDefault, Padding: 1}
}

// compactPreset trades content padding for room on small terminals.
func compactPreset() LayoutConfig {
	return LayoutConfig{Preset: "compact", SidebarWidth: sidebarCompact, Padding: 0}
}

// widePreset leaves space for long toy names.
func widePreset() LayoutConfig {
	return LayoutConfig{Preset: "wide", SidebarWidth: sidebarWide, Padding: 2}
}

// ResolveLayout fills zero fields of l from its preset.
func ResolveLayout(l LayoutConfig) LayoutConfig {
	p := LayoutPreset(l.Preset)
	if l.SidebarWidth == 0 {
		l.SidebarWidth = p.SidebarWidth
	}
	if l.Padding == 0 {
		l.Padding = p.Padding
	}
	l.Preset = p.Preset
	return l
}
