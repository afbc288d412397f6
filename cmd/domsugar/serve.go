package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/vango-dev/domsugar/pkg/preview"
	"github.com/vango-dev/domsugar/pkg/render"
	"github.com/vango-dev/domsugar/pkg/sugar"
)

func serveCmd(global *globalOptions) *cobra.Command {
	var (
		port int
		host string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the preview server",
		Long: `Start the preview server.

POST a JSON or YAML tree document to /render to get HTML back, or
connect to /ws and send one JSON tree per message. Metrics are served
on the configured path when metrics are enabled in domsugar.json.

Examples:
  domsugar serve
  domsugar serve --port=8080
  domsugar serve --host=0.0.0.0`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := loadConfig(cmd, global)
			if err != nil {
				return err
			}

			if port > 0 {
				cfg.Server.Port = port
			}
			if host != "" {
				cfg.Server.Host = host
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			pc := preview.Config{
				Renderer: render.RendererConfig{
					Pretty: cfg.Render.Pretty,
					Indent: cfg.Render.Indent,
				},
				FloatField:  cfg.Style.FloatField,
				Logger:      logger.With("component", "preview"),
				MetricsPath: cfg.Metrics.Path,
			}
			if cfg.Metrics.Enabled {
				registry := prometheus.NewRegistry()
				registry.MustRegister(
					collectors.NewGoCollector(),
					collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
				)
				pc.Metrics = sugar.NewMetrics(sugar.WithRegistry(registry))
				pc.Gatherer = registry
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return preview.New(pc).ListenAndServe(ctx, cfg.Address())
		},
	}

	cmd.Flags().IntVarP(&port, "port", "P", 0, "Port to listen on (default from domsugar.json)")
	cmd.Flags().StringVarP(&host, "host", "H", "", "Host to bind to (default from domsugar.json)")

	return cmd
}
