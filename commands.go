package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"gitlab.com/tinyland/lab/toybox/pkg/app"
	"gitlab.com/tinyland/lab/toybox/pkg/terminal"
	"gitlab.com/tinyland/lab/toybox/pkg/toy"
)

func newListCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the discovered toys",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts)
			if err != nil {
				return err
			}
			logger, closeLog, err := newLogger(cfg, os.Stderr)
			if err != nil {
				return err
			}
			defer closeLog()

			th, err := loadTheme(cfg, logger)
			if err != nil {
				return err
			}
			reg, err := buildRegistry(cfg, toy.Env{Theme: th}, logger)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, name := range reg.List() {
				marker := " "
				if name == reg.Selected() {
					marker = "*"
				}
				if _, err := fmt.Fprintf(out, "%s %s\n", marker, name); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func newRenderCmd(opts *options) *cobra.Command {
	var width, height int

	cmd := &cobra.Command{
		Use:   "render [name]",
		Short: "Print one frame of the gallery with the named toy selected",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts)
			if err != nil {
				return err
			}
			logger, closeLog, err := newLogger(cfg, os.Stderr)
			if err != nil {
				return err
			}
			defer closeLog()

			th, err := loadTheme(cfg, logger)
			if err != nil {
				return err
			}

			// A still frame has no clicks and no animation to run.
			reg, err := buildRegistry(cfg, toy.Env{Theme: th}, logger)
			if err != nil {
				return err
			}
			if len(args) == 1 {
				if _, ok := reg.Get(args[0]); !ok {
					return fmt.Errorf("unknown toy %q", args[0])
				}
				reg.Select(args[0])
			}

			caps := terminal.Probe()
			lipgloss.SetColorProfile(caps.Profile())
			if width <= 0 {
				width = caps.Size.Cols
			}
			if height <= 0 {
				height = caps.Size.Rows
			}

			shell := app.New(reg, app.Config{
				Theme:        th,
				SidebarWidth: cfg.Layout.SidebarWidth,
				Padding:      cfg.Layout.Padding,
			})
			_, err = fmt.Fprintln(cmd.OutOrStdout(), shell.Snapshot(width, height))
			return err
		},
	}

	cmd.Flags().IntVar(&width, "width", 0, "frame width in cells (0 = terminal width)")
	cmd.Flags().IntVar(&height, "height", 0, "frame height in lines (0 = terminal height)")
	return cmd
}
