// Package config provides TOML-based configuration for toybox.
package config

import (
	"fmt"
	"strings"
)

// Config is the root configuration loaded from config.toml.
type Config struct {
	General   GeneralConfig   `toml:"general"`
	Gallery   GalleryConfig   `toml:"gallery"`
	Layout    LayoutConfig    `toml:"layout"`
	Theme     ThemeConfig     `toml:"theme"`
	Animation AnimationConfig `toml:"animation"`
}

// GeneralConfig holds process-wide settings.
type GeneralConfig struct {
	LogLevel string `toml:"log_level"` // debug, info, warn, error
	LogFile  string `toml:"log_file"`  // empty = no log file
}

// GalleryConfig controls toy discovery and the initial selection.
type GalleryConfig struct {
	// ToyDirs lists extra directories scanned for toy definition files,
	// in addition to the built-in definitions.
	ToyDirs []string `toml:"toy_dirs"`

	// SkipBuiltin disables the embedded definitions.
	SkipBuiltin bool `toml:"skip_builtin"`

	// Initial names the toy selected at startup. Unknown names are
	// ignored and the first toy stays selected.
	Initial string `toml:"initial"`

	Mouse     bool `toml:"mouse"`
	AltScreen bool `toml:"alt_screen"`
}

// LayoutConfig sizes the shell regions.
type LayoutConfig struct {
	Preset       string `toml:"preset"`
	SidebarWidth int    `toml:"sidebar_width"`
	Padding      int    `toml:"padding"`
}

// ThemeConfig selects the color palette.
type ThemeConfig struct {
	Name string `toml:"name"`
	File string `toml:"file"` // optional custom theme TOML
}

// AnimationConfig controls toy animations.
type AnimationConfig struct {
	Enabled  bool     `toml:"enabled"`
	Interval Duration `toml:"interval"`
}

// Validate reports configuration values that cannot be used.
func (c *Config) Validate() error {
	switch strings.ToLower(c.General.LogLevel) {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("config: unknown log_level %q", c.General.LogLevel)
	}
	if c.Layout.SidebarWidth < 0 {
		return fmt.Errorf("config: sidebar_width must not be negative, got %d", c.Layout.SidebarWidth)
	}
	if c.Layout.Padding < 0 {
		return fmt.Errorf("config: padding must not be negative, got %d", c.Layout.Padding)
	}
	if c.Animation.Enabled && c.Animation.Interval.Duration <= 0 {
		return fmt.Errorf("config: animation interval must be positive when animation is enabled")
	}
	return nil
}
