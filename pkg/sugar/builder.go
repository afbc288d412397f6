package sugar

import (
	"log/slog"

	"github.com/vango-dev/domsugar/pkg/dom"
)

// Builder creates elements in one document. A Builder holds no per-call
// state; its style name cache only ever grows.
type Builder struct {
	doc        dom.Document
	names      *StyleNames
	floatField string
	logger     *slog.Logger
	metrics    *Metrics
}

// Option configures a Builder.
type Option func(*Builder)

// WithStyleNames shares a style name cache. It takes precedence over
// WithFloatField.
func WithStyleNames(names *StyleNames) Option {
	return func(b *Builder) {
		b.names = names
	}
}

// WithFloatField sets the style field that "float" resolves to, for hosts
// that use LegacyFloatField.
func WithFloatField(field string) Option {
	return func(b *Builder) {
		b.floatField = field
	}
}

// WithLogger sets the logger for dropped styles and skipped children.
func WithLogger(logger *slog.Logger) Option {
	return func(b *Builder) {
		b.logger = logger
	}
}

// WithMetrics enables Prometheus metrics.
func WithMetrics(m *Metrics) Option {
	return func(b *Builder) {
		b.metrics = m
	}
}

// New creates a Builder for doc. doc must not be nil.
func New(doc dom.Document, opts ...Option) *Builder {
	b := &Builder{doc: doc}
	for _, opt := range opts {
		opt(b)
	}
	if b.names == nil {
		b.names = NewStyleNames(b.floatField)
	}
	if b.logger == nil {
		b.logger = slog.Default().With("component", "domsugar")
	}
	return b
}

// Document returns the document elements are created in.
func (b *Builder) Document() dom.Document {
	return b.doc
}

// StyleNames returns the builder's style name cache.
func (b *Builder) StyleNames() *StyleNames {
	return b.names
}

// Create builds one element.
//
// The descriptor's tag is created, props are applied in key order, the
// descriptor's id and classes are then set (overriding "id" and
// "className" from props), and children are appended. children may hold
// strings, dom.Node values, nil, and slices of those, nested to any depth.
//
// The descriptor must have a non-empty tag name; it is not checked.
func (b *Builder) Create(descriptor string, props Props, children ...any) dom.Element {
	d := ParseDescriptor(descriptor)

	el := b.doc.CreateElement(d.Tag)
	for _, key := range props.Keys() {
		b.applyProperty(el, key, props[key])
	}
	if d.ID != "" {
		el.SetAttribute("id", d.ID)
	}
	if d.Classes != "" {
		el.SetProperty("className", d.Classes)
	}
	if len(children) > 0 {
		b.appendChildren(el, children)
	}

	b.metrics.elementCreated()
	return el
}

// El builds one element without properties.
func (b *Builder) El(descriptor string, children ...any) dom.Element {
	return b.Create(descriptor, nil, children...)
}

// Text creates a text node.
func (b *Builder) Text(s string) dom.Node {
	return b.doc.CreateTextNode(s)
}

// Apply assigns props to an existing element using the same dispatch as
// Create.
func (b *Builder) Apply(el dom.Element, props Props) {
	for _, key := range props.Keys() {
		b.applyProperty(el, key, props[key])
	}
}

// Append appends children to an existing element using the same
// flattening as Create.
func (b *Builder) Append(el dom.Element, children ...any) {
	b.appendChildren(el, children)
}
