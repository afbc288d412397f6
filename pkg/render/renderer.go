package render

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/vango-dev/domsugar/internal/errors"
	"github.com/vango-dev/domsugar/pkg/dom"
)

// RendererConfig configures the HTML renderer.
type RendererConfig struct {
	// Pretty puts block elements on their own indented lines.
	Pretty bool

	// Indent is the string used for each indentation level in pretty mode.
	// Defaults to two spaces if not specified.
	Indent string
}

// Renderer serializes DOM trees to HTML. It holds no per-render state.
type Renderer struct {
	config RendererConfig
}

// NewRenderer creates a new Renderer with the given configuration.
func NewRenderer(config RendererConfig) *Renderer {
	if config.Indent == "" {
		config.Indent = "  "
	}
	return &Renderer{config: config}
}

// RenderToString renders a tree to an HTML string.
func (r *Renderer) RenderToString(node dom.Node) (string, error) {
	var buf bytes.Buffer
	if err := r.RenderToWriter(&buf, node); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderToWriter streams a tree to the given writer.
func (r *Renderer) RenderToWriter(w io.Writer, node dom.Node) error {
	ew := &errWriter{w: w}
	if err := r.renderNode(ew, node, 0, r.config.Pretty); err != nil {
		return err
	}
	return ew.err
}

// renderNode writes node. block is true when the node sits on its own
// line in pretty mode.
func (r *Renderer) renderNode(w *errWriter, node dom.Node, depth int, block bool) error {
	switch n := node.(type) {
	case nil:
		return nil
	case *dom.HTMLElement:
		if n == nil {
			return nil
		}
		return r.renderElement(w, n, depth, block)
	case *dom.Text:
		if n == nil {
			return nil
		}
		if block {
			r.writeIndent(w, depth)
		}
		w.WriteString(escapeHTML(n.Data))
		if block {
			w.WriteString("\n")
		}
		return nil
	default:
		return errors.New("E301").WithDetail(fmt.Sprintf("unsupported node type %T", node))
	}
}

// renderElement renders an element with its attributes and children.
func (r *Renderer) renderElement(w *errWriter, el *dom.HTMLElement, depth int, block bool) error {
	tag := el.TagName()
	if tag == "" || strings.ContainsAny(tag, " \t\n\r\f<>/\"'=") {
		return errors.New("E301").WithDetail(fmt.Sprintf("invalid tag name %q", tag))
	}

	if block {
		r.writeIndent(w, depth)
	}
	w.WriteString("<")
	w.WriteString(tag)
	r.renderAttributes(w, el)
	w.WriteString(">")

	if isVoidElement(tag) {
		if block {
			w.WriteString("\n")
		}
		return w.err
	}

	children := el.Children()
	if rawTextElements[tag] {
		for _, c := range children {
			if t, ok := c.(*dom.Text); ok {
				w.WriteString(t.Data)
			}
		}
	} else {
		childBlock := block && !isInlineElement(tag) && hasElementChild(children)
		if childBlock {
			w.WriteString("\n")
		}
		for _, c := range children {
			if err := r.renderNode(w, c, depth+1, childBlock); err != nil {
				return err
			}
		}
		if childBlock {
			r.writeIndent(w, depth)
		}
	}

	w.WriteString("</")
	w.WriteString(tag)
	w.WriteString(">")
	if block {
		w.WriteString("\n")
	}
	return w.err
}

// renderAttributes writes attributes in insertion order. Attributes with
// names that cannot be written safely are skipped.
func (r *Renderer) renderAttributes(w *errWriter, el *dom.HTMLElement) {
	for _, a := range el.Attrs() {
		if !isValidAttrName(a.Name) {
			continue
		}
		if a.Value == "" && isBooleanAttr(a.Name) {
			w.WriteString(" ")
			w.WriteString(a.Name)
			continue
		}
		w.WriteString(" ")
		w.WriteString(a.Name)
		w.WriteString(`="`)
		w.WriteString(escapeAttr(a.Value))
		w.WriteString(`"`)
	}
}

func (r *Renderer) writeIndent(w *errWriter, depth int) {
	for i := 0; i < depth; i++ {
		w.WriteString(r.config.Indent)
	}
}

func hasElementChild(children []dom.Node) bool {
	for _, c := range children {
		if _, ok := c.(*dom.HTMLElement); ok {
			return true
		}
	}
	return false
}

// errWriter remembers the first write error and drops later writes.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) WriteString(s string) {
	if e.err != nil {
		return
	}
	_, e.err = io.WriteString(e.w, s)
}
