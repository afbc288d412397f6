package main

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vango-dev/domsugar/internal/errors"
	"github.com/vango-dev/domsugar/pkg/dom"
	"github.com/vango-dev/domsugar/pkg/render"
	"github.com/vango-dev/domsugar/pkg/sugar"
)

type renderOptions struct {
	format string
	pretty bool
}

func renderCmd(global *globalOptions) *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a tree document to HTML",
		Long: `Render a tree document to HTML on stdout.

The document is read from file, or from stdin when no file is given.
The format comes from --format, then the file extension (.yaml and
.yml are YAML), and is JSON otherwise.

Examples:
  domsugar render menu.json
  domsugar render --pretty menu.yaml
  echo '{"tag": "p#hi", "children": ["Hello"]}' | domsugar render`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, global, opts, args)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "Input format: json or yaml")
	cmd.Flags().BoolVarP(&opts.pretty, "pretty", "p", false, "Indent block elements (default from domsugar.json)")

	return cmd
}

func runRender(cmd *cobra.Command, global *globalOptions, opts *renderOptions, args []string) error {
	cfg, logger, err := loadConfig(cmd, global)
	if err != nil {
		return err
	}

	var (
		data []byte
		name = "stdin"
	)
	if len(args) == 1 {
		name = args[0]
		data, err = os.ReadFile(name)
	} else {
		data, err = io.ReadAll(cmd.InOrStdin())
	}
	if err != nil {
		return errors.Newf(errors.CategoryCLI, "cannot read %s", name).Wrap(err)
	}

	format := opts.format
	if format == "" && len(args) == 1 {
		format = formatFromExtension(name)
	}

	tree, err := sugar.Decode(format, data)
	if err != nil {
		if se, ok := err.(*errors.SugarError); ok && se.Path != "" {
			se.Path = name + ":" + se.Path
		}
		return err
	}

	pretty := cfg.Render.Pretty
	if cmd.Flags().Changed("pretty") {
		pretty = opts.pretty
	}

	b := sugar.New(dom.NewDocument(),
		sugar.WithFloatField(cfg.Style.FloatField),
		sugar.WithLogger(logger),
	)
	renderer := render.NewRenderer(render.RendererConfig{
		Pretty: pretty,
		Indent: cfg.Render.Indent,
	})

	out := cmd.OutOrStdout()
	if err := renderer.RenderToWriter(out, b.Build(tree)); err != nil {
		return err
	}
	if !pretty {
		_, err = io.WriteString(out, "\n")
	}
	return err
}

// formatFromExtension picks yaml for .yaml and .yml files.
func formatFromExtension(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return "yaml"
	}
	return "json"
}
