package preview

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/vango-dev/domsugar/pkg/dom"
	"github.com/vango-dev/domsugar/pkg/render"
	"github.com/vango-dev/domsugar/pkg/sugar"
)

const (
	// SpanName is the name of the span around each render.
	SpanName = "domsugar/preview"

	defaultTracerName   = "domsugar"
	defaultMetricsPath  = "/metrics"
	defaultMaxBodyBytes = 1 << 20
	shutdownTimeout     = 5 * time.Second
)

// Config configures the preview server.
type Config struct {
	// Renderer configures HTML output.
	Renderer render.RendererConfig

	// FloatField is the style field "float" resolves to.
	// Default: sugar.DefaultFloatField
	FloatField string

	// Logger receives request logs and builder diagnostics.
	// Default: slog.Default() with component=preview
	Logger *slog.Logger

	// Metrics records builder counters. Nil disables them.
	Metrics *sugar.Metrics

	// Gatherer is exposed on MetricsPath. Nil disables the endpoint.
	Gatherer prometheus.Gatherer

	// MetricsPath is the route of the metrics endpoint.
	// Default: "/metrics"
	MetricsPath string

	// MaxBodyBytes limits request bodies and websocket messages.
	// Default: 1 MiB
	MaxBodyBytes int64

	// TracerProvider supplies the render tracer.
	// Default: otel.GetTracerProvider()
	TracerProvider trace.TracerProvider

	// TracerName names the render tracer.
	// Default: "domsugar"
	TracerName string
}

// Server renders tree documents for HTTP and websocket clients.
// It is safe for concurrent use; each render gets its own document.
type Server struct {
	config   Config
	names    *sugar.StyleNames
	renderer *render.Renderer
	tracer   trace.Tracer
	logger   *slog.Logger
	upgrader websocket.Upgrader
	router   chi.Router
}

// New creates a preview server.
func New(config Config) *Server {
	if config.Logger == nil {
		config.Logger = slog.Default().With("component", "preview")
	}
	if config.MetricsPath == "" {
		config.MetricsPath = defaultMetricsPath
	}
	if config.MaxBodyBytes <= 0 {
		config.MaxBodyBytes = defaultMaxBodyBytes
	}
	if config.TracerProvider == nil {
		config.TracerProvider = otel.GetTracerProvider()
	}
	if config.TracerName == "" {
		config.TracerName = defaultTracerName
	}

	s := &Server{
		config:   config,
		names:    sugar.NewStyleNames(config.FloatField),
		renderer: render.NewRenderer(config.Renderer),
		tracer:   config.TracerProvider.Tracer(config.TracerName),
		logger:   config.Logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true // preview is a local tool
			},
		},
	}
	s.router = s.routes()
	return s
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Get("/healthz", s.handleHealth)
	r.Post("/render", s.handleRender)
	r.Get("/ws", s.handleWebSocket)
	if s.config.Gatherer != nil {
		r.Handle(s.config.MetricsPath, promhttp.HandlerFor(s.config.Gatherer, promhttp.HandlerOpts{}))
	}
	return r
}

// Handler returns the server's HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Render builds tree into a fresh document and serializes it.
func (s *Server) Render(ctx context.Context, tree *sugar.TreeElement) (string, error) {
	_, span := s.tracer.Start(ctx, SpanName,
		trace.WithAttributes(attribute.String("domsugar.tag", tree.Tag)),
	)
	defer span.End()

	b := sugar.New(dom.NewDocument(),
		sugar.WithStyleNames(s.names),
		sugar.WithLogger(s.logger),
		sugar.WithMetrics(s.config.Metrics),
	)
	html, err := s.renderer.RenderToString(b.Build(tree))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return "", err
	}

	span.SetAttributes(attribute.Int("domsugar.html_bytes", len(html)))
	span.SetStatus(codes.Ok, "")
	return html, nil
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("preview server listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	s.logger.Info("preview server shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// logRequests logs each request once it completes.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}
