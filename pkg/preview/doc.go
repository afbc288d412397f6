// Package preview serves rendered tree documents over HTTP.
//
// Routes:
//
//	POST /render   JSON or YAML tree in, text/html out
//	GET  /ws       one JSON tree per message, {"html": ...} or {"error": ...} back
//	GET  /healthz  liveness
//	GET  /metrics  Prometheus exposition, when a Gatherer is configured
//
// Every render runs in an OpenTelemetry span named "domsugar/preview".
// Spans come from the global tracer provider unless Config.TracerProvider
// is set.
//
// Example:
//
//	registry := prometheus.NewRegistry()
//	srv := preview.New(preview.Config{
//	    Metrics:  sugar.NewMetrics(sugar.WithRegistry(registry)),
//	    Gatherer: registry,
//	})
//	log.Fatal(srv.ListenAndServe(ctx, "localhost:7070"))
package preview
