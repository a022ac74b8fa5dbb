package config

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

// Load reads configuration from the standard config path.
// Search order:
//  1. $XDG_CONFIG_HOME/toybox/config.toml
//  2. ~/.config/toybox/config.toml
//
// If no file exists, returns DefaultConfig() with env overrides applied.
func Load() (*Config, error) {
	for _, p := range configSearchPaths() {
		if _, err := os.Stat(p); err == nil {
			return LoadFromFile(p)
		}
	}
	cfg := DefaultConfig()
	finalize(cfg)
	return cfg, nil
}

// LoadFromFile reads configuration from a specific file path. A missing
// file is not an error.
func LoadFromFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg := DefaultConfig()
			finalize(cfg)
			return cfg, nil
		}
		return nil, err
	}
	defer f.Close()
	return LoadFromReader(f)
}

// LoadFromReader reads configuration from an io.Reader.
func LoadFromReader(r io.Reader) (*Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.NewDecoder(r).Decode(cfg); err != nil {
		return nil, err
	}
	finalize(cfg)
	return cfg, nil
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		General: GeneralConfig{
			LogLevel: "info",
		},
		Gallery: GalleryConfig{
			Mouse:     true,
			AltScreen: true,
		},
		Layout: LayoutConfig{
			Preset: "default",
		},
		Theme: ThemeConfig{
			Name: "midnight",
		},
		Animation: AnimationConfig{
			Enabled:  true,
			Interval: Duration{1000 * time.Millisecond / 60},
		},
	}
}

// finalize applies env overrides and fills layout sizes from the preset.
func finalize(cfg *Config) {
	applyEnvOverrides(cfg)
	cfg.Layout = ResolveLayout(cfg.Layout)
}

// applyEnvOverrides checks environment variables and overrides config values.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("TOYBOX_THEME"); v != "" {
		cfg.Theme.Name = v
	}
	if v := os.Getenv("TOYBOX_TOY"); v != "" {
		cfg.Gallery.Initial = v
	}
	if v := os.Getenv("TOYBOX_TOY_DIRS"); v != "" {
		cfg.Gallery.ToyDirs = append(cfg.Gallery.ToyDirs, filepath.SplitList(v)...)
	}
	if v := os.Getenv("TOYBOX_LAYOUT"); v != "" {
		cfg.Layout = LayoutConfig{Preset: v}
	}
}

// DefaultPath returns the first config search path, used in help text.
func DefaultPath() string {
	return configSearchPaths()[0]
}

// configSearchPaths returns the ordered list of config file paths to try.
func configSearchPaths() []string {
	home, _ := os.UserHomeDir()
	var paths []string

	xdg := xdgConfigHome(home)
	paths = append(paths, filepath.Join(xdg, "toybox", "config.toml"))

	// If XDG_CONFIG_HOME was explicitly set, also try the fallback default.
	defaultXDG := filepath.Join(home, ".config")
	if xdg != defaultXDG {
		paths = append(paths, filepath.Join(defaultXDG, "toybox", "config.toml"))
	}

	return paths
}

// xdgConfigHome returns XDG_CONFIG_HOME or ~/.config as fallback.
func xdgConfigHome(home string) string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return v
	}
	return filepath.Join(home, ".config")
}
