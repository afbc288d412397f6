package preview

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/embedded"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/vango-dev/domsugar/pkg/render"
	"github.com/vango-dev/domsugar/pkg/sugar"
)

const menuJSON = `{"tag": "ul#menu", "children": [
	{"tag": "li", "props": {"className": "active"}, "children": ["One"]},
	{"tag": "li", "children": ["Two & more"]}
]}`

const menuHTML = `<ul id="menu"><li class="active">One</li><li>Two &amp; more</li></ul>`

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestServer(t *testing.T, config Config) *Server {
	t.Helper()
	if config.Logger == nil {
		config.Logger = quietLogger()
	}
	return New(config)
}

func post(t *testing.T, h http.Handler, contentType, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/render", strings.NewReader(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t, Config{})

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if rec.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", rec.Code)
	}
	if rec.Body.String() != "OK" {
		t.Errorf("expected OK, got %s", rec.Body.String())
	}
}

func TestRenderJSON(t *testing.T) {
	srv := newTestServer(t, Config{})

	for _, contentType := range []string{"", "application/json", "application/json; charset=utf-8"} {
		t.Run(contentType, func(t *testing.T) {
			rec := post(t, srv.Handler(), contentType, menuJSON)
			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
			}
			if ct := rec.Header().Get("Content-Type"); ct != "text/html; charset=utf-8" {
				t.Errorf("Content-Type = %q", ct)
			}
			if rec.Body.String() != menuHTML {
				t.Errorf("body = %q, want %q", rec.Body.String(), menuHTML)
			}
		})
	}
}

func TestRenderYAML(t *testing.T) {
	srv := newTestServer(t, Config{})
	body := `
tag: ul#menu
children:
  - tag: li
    props: {className: active}
    children: [One]
  - tag: li
    children: [Two & more]
`
	rec := post(t, srv.Handler(), "application/yaml", body)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if rec.Body.String() != menuHTML {
		t.Errorf("body = %q, want %q", rec.Body.String(), menuHTML)
	}
}

func TestRenderPretty(t *testing.T) {
	srv := newTestServer(t, Config{Renderer: render.RendererConfig{Pretty: true}})

	rec := post(t, srv.Handler(), "application/json", menuJSON)
	want := "<ul id=\"menu\">\n  <li class=\"active\">One</li>\n  <li>Two &amp; more</li>\n</ul>\n"
	if rec.Body.String() != want {
		t.Errorf("body = %q, want %q", rec.Body.String(), want)
	}
}

func TestRenderStyleFloat(t *testing.T) {
	srv := newTestServer(t, Config{FloatField: sugar.LegacyFloatField})

	rec := post(t, srv.Handler(), "", `{"tag": "div", "props": {"style": {"float": "left"}}}`)
	want := `<div style="float: left"></div>`
	if rec.Body.String() != want {
		t.Errorf("body = %q, want %q", rec.Body.String(), want)
	}
}

func TestRenderErrors(t *testing.T) {
	srv := newTestServer(t, Config{MaxBodyBytes: 256})

	tests := []struct {
		name        string
		contentType string
		body        string
		wantStatus  int
		wantCode    string
	}{
		{"unsupported type", "text/plain", menuJSON, http.StatusUnsupportedMediaType, "E401"},
		{"bad media type", "application/", menuJSON, http.StatusUnsupportedMediaType, "E401"},
		{"malformed json", "application/json", `{"tag": `, http.StatusBadRequest, "E202"},
		{"malformed yaml", "text/yaml", "tag: [", http.StatusBadRequest, "E202"},
		{"not an element", "application/json", `["div"]`, http.StatusBadRequest, "E201"},
		{"unknown key", "application/json", `{"tag": "div", "kids": []}`, http.StatusBadRequest, "E201"},
		{"empty tag", "application/json", `{"tag": "#only-id"}`, http.StatusUnprocessableEntity, "E301"},
		{"too large", "application/json", `{"tag": "p", "children": ["` + strings.Repeat("x", 300) + `"]}`, http.StatusRequestEntityTooLarge, "E202"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := post(t, srv.Handler(), tt.contentType, tt.body)
			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d (body %s)", rec.Code, tt.wantStatus, rec.Body.String())
			}
			if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
				t.Errorf("Content-Type = %q", ct)
			}
			if !strings.Contains(rec.Body.String(), `"code":"`+tt.wantCode+`"`) {
				t.Errorf("body = %s, want code %s", rec.Body.String(), tt.wantCode)
			}
		})
	}
}

func TestRenderMethodNotAllowed(t *testing.T) {
	srv := newTestServer(t, Config{})

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/render", nil))
	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", rec.Code)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	registry := prometheus.NewRegistry()
	srv := newTestServer(t, Config{
		Metrics:  sugar.NewMetrics(sugar.WithRegistry(registry)),
		Gatherer: registry,
	})

	if rec := post(t, srv.Handler(), "", menuJSON); rec.Code != http.StatusOK {
		t.Fatalf("render status = %d", rec.Code)
	}

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("metrics status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "domsugar_builder_elements_created_total 3") {
		t.Errorf("metrics output missing element count:\n%s", rec.Body.String())
	}
}

func TestMetricsEndpointDisabled(t *testing.T) {
	srv := newTestServer(t, Config{})

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestMetricsCustomPath(t *testing.T) {
	registry := prometheus.NewRegistry()
	srv := newTestServer(t, Config{Gatherer: registry, MetricsPath: "/internal/metrics"})

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/internal/metrics", nil))
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
}

type recordedSpan struct {
	trace.Span
	name   string
	attrs  []attribute.KeyValue
	status codes.Code
}

func (s *recordedSpan) SetStatus(code codes.Code, _ string) { s.status = code }

type recordingProvider struct {
	embedded.TracerProvider
	mu    sync.Mutex
	spans []*recordedSpan
}

func (p *recordingProvider) Tracer(string, ...trace.TracerOption) trace.Tracer {
	return &recordingTracer{provider: p}
}

func (p *recordingProvider) recorded() []*recordedSpan {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]*recordedSpan(nil), p.spans...)
}

type recordingTracer struct {
	embedded.Tracer
	provider *recordingProvider
}

func (t *recordingTracer) Start(ctx context.Context, name string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
	ctx, span := noop.NewTracerProvider().Tracer("").Start(ctx, name, opts...)
	cfg := trace.NewSpanStartConfig(opts...)
	rec := &recordedSpan{
		Span:  span,
		name:  name,
		attrs: cfg.Attributes(),
	}
	t.provider.mu.Lock()
	t.provider.spans = append(t.provider.spans, rec)
	t.provider.mu.Unlock()
	return ctx, rec
}

func TestRenderSpans(t *testing.T) {
	tp := &recordingProvider{}
	srv := newTestServer(t, Config{TracerProvider: tp})

	post(t, srv.Handler(), "", menuJSON)
	post(t, srv.Handler(), "", `{"tag": ".only-class"}`)

	spans := tp.recorded()
	if len(spans) != 2 {
		t.Fatalf("expected 2 spans, got %d", len(spans))
	}
	for _, span := range spans {
		if span.name != SpanName {
			t.Errorf("span name = %q, want %q", span.name, SpanName)
		}
	}
	if len(spans[0].attrs) != 1 || spans[0].attrs[0].Value.AsString() != "ul#menu" {
		t.Errorf("span attributes = %v", spans[0].attrs)
	}
	if spans[0].status != codes.Ok {
		t.Errorf("first span status = %v, want Ok", spans[0].status)
	}
	if spans[1].status != codes.Error {
		t.Errorf("second span status = %v, want Error", spans[1].status)
	}
}

func dialWS(t *testing.T, srv *Server) *websocket.Conn {
	t.Helper()
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	return conn
}

func TestWebSocketRender(t *testing.T) {
	conn := dialWS(t, newTestServer(t, Config{}))

	tests := []struct {
		name      string
		message   string
		wantHTML  string
		wantError string
	}{
		{"menu", menuJSON, menuHTML, ""},
		{"malformed", `{"tag":`, "", "E202"},
		{"not an element", `"text"`, "", "E201"},
		{"unrenderable", `{"tag": "#x"}`, "", "E301"},
		{"still alive", `{"tag": "br"}`, "<br>", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := conn.WriteMessage(websocket.TextMessage, []byte(tt.message)); err != nil {
				t.Fatalf("write: %v", err)
			}
			var reply Message
			if err := conn.ReadJSON(&reply); err != nil {
				t.Fatalf("read: %v", err)
			}
			if reply.HTML != tt.wantHTML {
				t.Errorf("html = %q, want %q", reply.HTML, tt.wantHTML)
			}
			if tt.wantError == "" && reply.Error != "" {
				t.Errorf("unexpected error %q", reply.Error)
			}
			if tt.wantError != "" && !strings.HasPrefix(reply.Error, tt.wantError) {
				t.Errorf("error = %q, want prefix %s", reply.Error, tt.wantError)
			}
		})
	}
}

func TestWebSocketIgnoresBinaryMessages(t *testing.T) {
	conn := dialWS(t, newTestServer(t, Config{}))

	if err := conn.WriteMessage(websocket.BinaryMessage, []byte(menuJSON)); err != nil {
		t.Fatal(err)
	}
	if err := conn.WriteMessage(websocket.TextMessage, []byte(`{"tag": "hr"}`)); err != nil {
		t.Fatal(err)
	}
	var reply Message
	if err := conn.ReadJSON(&reply); err != nil {
		t.Fatal(err)
	}
	if reply.HTML != "<hr>" {
		t.Errorf("first reply = %+v, want the text message's render", reply)
	}
}

func TestListenAndServeStopsOnCancel(t *testing.T) {
	srv := newTestServer(t, Config{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := make(chan error, 1)
	go func() { done <- srv.ListenAndServe(ctx, "127.0.0.1:0") }()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("ListenAndServe() = %v, want nil", err)
		}
	case <-time.After(10 * time.Second):
		t.Fatal("ListenAndServe did not return after cancel")
	}
}

func TestFormatFromContentType(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"", "json", false},
		{"application/json", "json", false},
		{"text/json", "json", false},
		{"application/x-yaml", "yaml", false},
		{"text/yaml; charset=utf-8", "yaml", false},
		{"text/html", "", true},
	}
	for _, tt := range tests {
		got, err := formatFromContentType(tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("formatFromContentType(%q) = %q, %v", tt.in, got, err)
		}
	}
}
