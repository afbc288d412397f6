// Package domsugar builds element trees from compact tag descriptors.
//
// This is the recommended import for most programs:
//
//	import "github.com/vango-dev/domsugar"
//
// Usage:
//
//	b := domsugar.New(domsugar.NewDocument())
//	menu := b.Create("ul#menu.nav", domsugar.Props{"hidden": domsugar.Bool(false)},
//	    b.El("li.active", "Home"),
//	    b.El("li", "About"),
//	)
//	html, err := domsugar.HTML(menu)
//
// The builder works against any host that implements the dom interfaces;
// NewDocument returns the in-memory HTML host.
package domsugar

import (
	"github.com/vango-dev/domsugar/pkg/dom"
	"github.com/vango-dev/domsugar/pkg/render"
	"github.com/vango-dev/domsugar/pkg/sugar"
)

// =============================================================================
// Host document (re-export from pkg/dom)
// =============================================================================

// Document creates the nodes a Builder assembles.
type Document = dom.Document

// Element is a node with attributes, properties, style and children.
type Element = dom.Element

// Node is anything that can be appended to an Element.
type Node = dom.Node

// Event is passed to event handlers.
type Event = dom.Event

// NewDocument returns an empty in-memory HTML document.
var NewDocument = dom.NewDocument

// =============================================================================
// Builder (re-export from pkg/sugar)
// =============================================================================

// Builder creates elements in one document.
type Builder = sugar.Builder

// Option configures a Builder.
type Option = sugar.Option

// Props is a property bag keyed by property, attribute or event name.
type Props = sugar.Props

// Value is a property value: String, Number, Bool, Null, StyleMap or Handler.
type Value = sugar.Value

type (
	String   = sugar.String
	Number   = sugar.Number
	Bool     = sugar.Bool
	Null     = sugar.Null
	StyleMap = sugar.StyleMap
	Handler  = sugar.Handler
)

// StyleNames caches CSS name to style field resolution.
type StyleNames = sugar.StyleNames

var (
	// New creates a Builder for a document.
	New = sugar.New

	// NewStyleNames creates a style name cache.
	NewStyleNames = sugar.NewStyleNames

	WithStyleNames = sugar.WithStyleNames
	WithFloatField = sugar.WithFloatField
	WithLogger     = sugar.WithLogger
	WithMetrics    = sugar.WithMetrics

	// ParseDescriptor splits "tag#id.class" into its parts.
	ParseDescriptor = sugar.ParseDescriptor
)

// =============================================================================
// Rendering (re-export from pkg/render)
// =============================================================================

// HTML renders a tree from the in-memory host as compact HTML.
func HTML(node Node) (string, error) {
	return render.NewRenderer(render.RendererConfig{}).RenderToString(node)
}

// PrettyHTML renders a tree with block elements on indented lines.
func PrettyHTML(node Node) (string, error) {
	return render.NewRenderer(render.RendererConfig{Pretty: true}).RenderToString(node)
}
