package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/vango-dev/domsugar/internal/config"
	"github.com/vango-dev/domsugar/internal/errors"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		errors.PrintError(os.Stderr, err)
		os.Exit(1)
	}
}

// globalOptions are the persistent flags shared by every command.
type globalOptions struct {
	verbose bool
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:   "domsugar",
		Short: "Build element trees from compact tag descriptors",
		Long: `domsugar turns tree documents into HTML.

A tree document is the data form of a builder call: an element is
{"tag": "div#id.class", "props": {...}, "children": [...]}, strings
are text and arrays are nested child lists. Documents may be JSON or
YAML.

Settings are read from domsugar.json in the working directory when it
exists.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log debug diagnostics to stderr")

	rootCmd.AddCommand(
		renderCmd(opts),
		serveCmd(opts),
		versionCmd(),
	)

	return rootCmd
}

// loadConfig reads domsugar.json and builds the command logger.
func loadConfig(cmd *cobra.Command, opts *globalOptions) (*config.Config, *slog.Logger, error) {
	cfg, err := config.LoadFromWorkingDir()
	if err != nil {
		return nil, nil, err
	}
	level, err := cfg.LogLevel()
	if err != nil {
		return nil, nil, err
	}
	if opts.verbose {
		level = slog.LevelDebug
	}
	return cfg, newLogger(cmd.ErrOrStderr(), level), nil
}

func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
