package dom

import "strings"

// Attr is a single attribute.
type Attr struct {
	Name  string
	Value string
}

// HTMLElement is the in-memory element.
type HTMLElement struct {
	doc      *HTMLDocument
	tag      string
	attrs    []Attr
	children []Node
	parent   *HTMLElement
	style    *CSSStyle

	// props holds unreflected fields such as value.
	props map[string]any

	listeners map[string][]Listener

	// handlers holds legacy on<event> property handlers, one per event.
	handlers map[string]Listener
}

// Kind implements Node.
func (e *HTMLElement) Kind() Kind { return KindElement }

// TagName returns the tag name as it was created.
func (e *HTMLElement) TagName() string { return e.tag }

// OwnerDocument returns the document that created the element.
func (e *HTMLElement) OwnerDocument() *HTMLDocument { return e.doc }

// Parent returns the parent element, or nil when detached.
func (e *HTMLElement) Parent() *HTMLElement { return e.parent }

// Children returns a copy of the child list.
func (e *HTMLElement) Children() []Node {
	out := make([]Node, len(e.children))
	copy(out, e.children)
	return out
}

// Attrs returns a copy of the attributes in insertion order.
func (e *HTMLElement) Attrs() []Attr {
	out := make([]Attr, len(e.attrs))
	copy(out, e.attrs)
	return out
}

// GetAttribute implements Element.
func (e *HTMLElement) GetAttribute(name string) (string, bool) {
	for _, a := range e.attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// HasAttribute reports whether the attribute is present.
func (e *HTMLElement) HasAttribute(name string) bool {
	_, ok := e.GetAttribute(name)
	return ok
}

// SetAttribute implements Element. Setting "style" replaces the inline style.
func (e *HTMLElement) SetAttribute(name, value string) {
	if name == "style" {
		e.Style().SetCSSText(value)
		return
	}
	e.setAttr(name, value)
}

// RemoveAttribute implements Element. Removing "style" clears the inline style.
func (e *HTMLElement) RemoveAttribute(name string) {
	if name == "style" && e.style != nil {
		e.style.clear()
	}
	e.removeAttr(name)
}

func (e *HTMLElement) setAttr(name, value string) {
	for i := range e.attrs {
		if e.attrs[i].Name == name {
			e.attrs[i].Value = value
			return
		}
	}
	e.attrs = append(e.attrs, Attr{Name: name, Value: value})
}

func (e *HTMLElement) removeAttr(name string) {
	for i, a := range e.attrs {
		if a.Name == name {
			e.attrs = append(e.attrs[:i], e.attrs[i+1:]...)
			return
		}
	}
}

// ID returns the id attribute.
func (e *HTMLElement) ID() string {
	v, _ := e.GetAttribute("id")
	return v
}

// ClassName returns the class attribute.
func (e *HTMLElement) ClassName() string {
	v, _ := e.GetAttribute("class")
	return v
}

// Style implements Element. The style is created on first use.
func (e *HTMLElement) Style() Style {
	return e.CSS()
}

// CSS returns the concrete inline style.
func (e *HTMLElement) CSS() *CSSStyle {
	if e.style == nil {
		e.style = &CSSStyle{owner: e}
	}
	return e.style
}

// AppendChild implements Element. Appending the element to itself or to
// one of its descendants is ignored.
func (e *HTMLElement) AppendChild(child Node) {
	switch c := child.(type) {
	case nil:
		return
	case *HTMLElement:
		if c == nil || c.contains(e) {
			return
		}
		if c.parent != nil {
			c.parent.RemoveChild(c)
		}
		c.parent = e
	case *Text:
		if c == nil {
			return
		}
		if c.parent != nil {
			c.parent.RemoveChild(c)
		}
		c.parent = e
	}
	e.children = append(e.children, child)
}

// RemoveChild detaches child if it is a direct child of e.
func (e *HTMLElement) RemoveChild(child Node) {
	for i, c := range e.children {
		if c != child {
			continue
		}
		e.children = append(e.children[:i], e.children[i+1:]...)
		switch n := child.(type) {
		case *HTMLElement:
			n.parent = nil
		case *Text:
			n.parent = nil
		}
		return
	}
}

// contains reports whether other is e or one of its descendants.
func (e *HTMLElement) contains(other *HTMLElement) bool {
	for n := other; n != nil; n = n.parent {
		if n == e {
			return true
		}
	}
	return false
}

// TextContent returns the concatenated text of all descendant text nodes.
func (e *HTMLElement) TextContent() string {
	var b strings.Builder
	e.writeText(&b)
	return b.String()
}

func (e *HTMLElement) writeText(b *strings.Builder) {
	for _, c := range e.children {
		switch n := c.(type) {
		case *Text:
			b.WriteString(n.Data)
		case *HTMLElement:
			n.writeText(b)
		}
	}
}

// setTextContent replaces all children with a single text node.
func (e *HTMLElement) setTextContent(text string) {
	for _, c := range e.children {
		switch n := c.(type) {
		case *HTMLElement:
			n.parent = nil
		case *Text:
			n.parent = nil
		}
	}
	e.children = nil
	if text != "" {
		e.AppendChild(e.doc.CreateTextNode(text))
	}
}
