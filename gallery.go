package main

import (
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
	"github.com/spf13/cobra"

	"gitlab.com/tinyland/lab/toybox/pkg/app"
	"gitlab.com/tinyland/lab/toybox/pkg/config"
	"gitlab.com/tinyland/lab/toybox/pkg/registry"
	"gitlab.com/tinyland/lab/toybox/pkg/terminal"
	"gitlab.com/tinyland/lab/toybox/pkg/theme"
	"gitlab.com/tinyland/lab/toybox/pkg/toy"

	// Toy kinds available to definition files.
	_ "gitlab.com/tinyland/lab/toybox/pkg/toys/fusion"
	_ "gitlab.com/tinyland/lab/toybox/pkg/toys/tracer"
)

// runGallery runs the interactive gallery until the user quits.
func runGallery(cmd *cobra.Command, opts *options) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	caps := terminal.Probe()
	if !caps.TTY {
		return fmt.Errorf("stdout is not a terminal; use %q to print a frame", "toybox render")
	}

	// Log records would corrupt the alt screen, so only the log file
	// receives them while the program runs.
	logger, closeLog, err := newLogger(cfg, io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	th, err := loadTheme(cfg, logger)
	if err != nil {
		return err
	}

	zones := zone.New()
	defer zones.Close()

	env := toy.Env{
		Zones:    zones,
		Theme:    th,
		Animate:  cfg.Animation.Enabled,
		Interval: cfg.Animation.Interval.Duration,
	}
	reg, err := buildRegistry(cfg, env, logger)
	if err != nil {
		return err
	}

	shell := app.New(reg, app.Config{
		Theme:        th,
		SidebarWidth: cfg.Layout.SidebarWidth,
		Padding:      cfg.Layout.Padding,
		Zones:        zones,
	})

	progOpts := []tea.ProgramOption{tea.WithContext(cmd.Context())}
	if cfg.Gallery.AltScreen {
		progOpts = append(progOpts, tea.WithAltScreen())
	}
	if cfg.Gallery.Mouse && caps.Mouse {
		progOpts = append(progOpts, tea.WithMouseCellMotion())
	}

	logger.Info("starting gallery",
		"toys", reg.Len(),
		"selected", reg.Selected(),
		"terminal", caps.Term.String(),
		"mouse", cfg.Gallery.Mouse && caps.Mouse,
		"fps", cfg.Animation.Interval.FPS(),
	)

	if _, err := tea.NewProgram(shell, progOpts...).Run(); err != nil {
		return fmt.Errorf("run gallery: %w", err)
	}
	return nil
}

// loadTheme returns the custom theme file when one is configured,
// otherwise the named palette.
func loadTheme(cfg *config.Config, logger *slog.Logger) (theme.Theme, error) {
	if cfg.Theme.File != "" {
		th, err := theme.LoadFile(cfg.Theme.File)
		if err != nil {
			return theme.Theme{}, fmt.Errorf("load theme: %w", err)
		}
		return th, nil
	}
	if _, ok := theme.Lookup(cfg.Theme.Name); !ok {
		logger.Warn("unknown theme, using default", "theme", cfg.Theme.Name, "default", theme.DefaultName)
	}
	return theme.Get(cfg.Theme.Name), nil
}

// buildRegistry discovers the built-in definitions and every configured
// toy directory, then applies the initial selection.
func buildRegistry(cfg *config.Config, env toy.Env, logger *slog.Logger) (*registry.Registry, error) {
	var sources []fs.FS
	if !cfg.Gallery.SkipBuiltin {
		sources = append(sources, toy.Builtin())
	}
	for _, dir := range cfg.Gallery.ToyDirs {
		info, err := os.Stat(dir)
		if err != nil {
			logger.Warn("skipping toy directory", "dir", dir, "error", err)
			continue
		}
		if !info.IsDir() {
			logger.Warn("skipping toy directory", "dir", dir, "error", "not a directory")
			continue
		}
		sources = append(sources, os.DirFS(dir))
	}

	units, err := toy.Discover(env, logger, sources...)
	if err != nil {
		return nil, err
	}
	reg := registry.Build(units)

	if name := cfg.Gallery.Initial; name != "" {
		if _, ok := reg.Get(name); ok {
			reg.Select(name)
		} else {
			logger.Warn("unknown initial toy", "toy", name, "selected", reg.Selected())
		}
	}

	logger.Debug("registry built", "toys", reg.List())
	return reg, nil
}
