// toybox is a terminal gallery of small interactive visualizations.
//
// Toys are described by TOML or YAML definition files. Two Reciprocal Rank
// Fusion toys are built in; more can be loaded from toy directories.
//
// Usage:
//
//	toybox [flags]              run the gallery
//	toybox list                 list discovered toys
//	toybox render [name]        print one frame of the gallery
//	toybox version              print version information
//
// Flags:
//
//	--config string     Path to configuration file (default: ~/.config/toybox/config.toml)
//	--toy string        Toy selected at startup
//	--toy-dir strings   Extra directory of toy definitions (repeatable)
//	--verbose           Enable debug logging
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"gitlab.com/tinyland/lab/toybox/pkg/config"
)

var (
	version = "0.1.0"
	commit  = "dev"
	date    = "unknown"
)

// options holds the persistent flags shared by every command.
type options struct {
	configPath string
	toy        string
	toyDirs    []string
	verbose    bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "toybox: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "toybox",
		Short:         "A terminal gallery of interactive visualizations",
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGallery(cmd, opts)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "path to configuration file (default: "+config.DefaultPath()+")")
	flags.StringVar(&opts.toy, "toy", "", "toy selected at startup")
	flags.StringArrayVar(&opts.toyDirs, "toy-dir", nil, "extra directory of toy definitions (repeatable)")
	flags.BoolVar(&opts.verbose, "verbose", false, "enable debug logging")

	root.AddCommand(newListCmd(opts))
	root.AddCommand(newRenderCmd(opts))
	root.AddCommand(newVersionCmd())

	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "toybox %s (commit: %s, built: %s)\n", version, commit, date)
			return err
		},
	}
}

// loadConfig reads the configuration file and applies the flag overrides.
func loadConfig(opts *options) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if opts.configPath != "" {
		cfg, err = config.LoadFromFile(opts.configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	if opts.toy != "" {
		cfg.Gallery.Initial = opts.toy
	}
	cfg.Gallery.ToyDirs = append(cfg.Gallery.ToyDirs, opts.toyDirs...)
	if opts.verbose {
		cfg.General.LogLevel = "debug"
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newLogger builds the text logger. Records go to w and, when configured,
// to the log file. The returned func closes the log file.
func newLogger(cfg *config.Config, w io.Writer) (*slog.Logger, func(), error) {
	closeFn := func() {}

	if cfg.General.LogFile != "" {
		if err := ensureLogDir(cfg.General.LogFile); err != nil {
			return nil, nil, fmt.Errorf("create log directory: %w", err)
		}
		logFile, err := os.OpenFile(cfg.General.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w = io.MultiWriter(w, logFile)
		closeFn = func() { logFile.Close() }
	}

	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: parseLevel(cfg.General.LogLevel),
	}))
	return logger, closeFn, nil
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// ensureLogDir creates the parent directory of the log file if needed.
func ensureLogDir(logFile string) error {
	return os.MkdirAll(filepath.Dir(logFile), 0755)
}
