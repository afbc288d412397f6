package sugar

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsConfig configures the builder's Prometheus metrics.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "domsugar").
	Namespace string

	// Subsystem is the metrics subsystem (default: "builder").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// MetricsOption configures the builder's Prometheus metrics.
type MetricsOption func(*MetricsConfig)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Namespace = namespace
	}
}

// WithSubsystem sets the metrics subsystem.
func WithSubsystem(subsystem string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Subsystem = subsystem
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) MetricsOption {
	return func(c *MetricsConfig) {
		c.ConstLabels = labels
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) MetricsOption {
	return func(c *MetricsConfig) {
		c.Registry = registry
	}
}

func defaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Namespace: "domsugar",
		Subsystem: "builder",
		Registry:  prometheus.DefaultRegisterer,
	}
}

// Metrics counts builder activity. A nil *Metrics records nothing.
type Metrics struct {
	elementsCreated   prometheus.Counter
	propertiesApplied *prometheus.CounterVec
	styleLookups      *prometheus.CounterVec
	styleRejections   prometheus.Counter
	childrenAppended  prometheus.Counter
	childrenSkipped   prometheus.Counter
}

// NewMetrics registers the builder metrics.
func NewMetrics(opts ...MetricsOption) *Metrics {
	config := defaultMetricsConfig()
	for _, opt := range opts {
		opt(&config)
	}
	factory := promauto.With(config.Registry)

	return &Metrics{
		elementsCreated: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "elements_created_total",
			Help:        "Total number of elements created",
			ConstLabels: config.ConstLabels,
		}),

		propertiesApplied: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "properties_applied_total",
			Help:        "Total number of properties applied, by dispatch kind",
			ConstLabels: config.ConstLabels,
		}, []string{"kind"}),

		styleLookups: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "style_name_lookups_total",
			Help:        "Total number of style name resolutions, by cache result",
			ConstLabels: config.ConstLabels,
		}, []string{"result"}),

		styleRejections: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "style_rejections_total",
			Help:        "Total number of style assignments rejected by the host",
			ConstLabels: config.ConstLabels,
		}),

		childrenAppended: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "children_appended_total",
			Help:        "Total number of child nodes appended",
			ConstLabels: config.ConstLabels,
		}),

		childrenSkipped: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "children_skipped_total",
			Help:        "Total number of child entries skipped",
			ConstLabels: config.ConstLabels,
		}),
	}
}

func (m *Metrics) elementCreated() {
	if m == nil {
		return
	}
	m.elementsCreated.Inc()
}

func (m *Metrics) propertyApplied(kind string) {
	if m == nil {
		return
	}
	m.propertiesApplied.WithLabelValues(kind).Inc()
}

func (m *Metrics) styleLookup(cached bool) {
	if m == nil {
		return
	}
	result := "miss"
	if cached {
		result = "hit"
	}
	m.styleLookups.WithLabelValues(result).Inc()
}

func (m *Metrics) styleRejected() {
	if m == nil {
		return
	}
	m.styleRejections.Inc()
}

func (m *Metrics) childAppended() {
	if m == nil {
		return
	}
	m.childrenAppended.Inc()
}

func (m *Metrics) childSkipped() {
	if m == nil {
		return
	}
	m.childrenSkipped.Inc()
}
