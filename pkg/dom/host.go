package dom

// Kind is the node type discriminator.
type Kind uint8

const (
	KindElement Kind = iota + 1 // <div>, <button>, etc.
	KindText                    // Plain text node
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindElement:
		return "Element"
	case KindText:
		return "Text"
	default:
		return "Unknown"
	}
}

// Node is anything that can be appended to an element.
type Node interface {
	Kind() Kind
}

// Document creates nodes.
type Document interface {
	CreateElement(tag string) Element
	CreateTextNode(data string) Node
}

// Element is an element node.
type Element interface {
	Node

	TagName() string
	GetAttribute(name string) (string, bool)
	SetAttribute(name, value string)
	RemoveAttribute(name string)

	// SetProperty assigns a named field on the element object, as opposed
	// to an attribute. Hosts decide how (and whether) a field reflects.
	SetProperty(name string, value any)

	// AppendChild moves child under this element, detaching it from any
	// previous parent.
	AppendChild(child Node)

	Style() Style
}

// Style is an element's inline style declaration block.
type Style interface {
	// SetField assigns a style field by its camel-cased name
	// (e.g. "fontSize"). Hosts may reject unsupported fields or values.
	SetField(field, value string) error

	SetCSSText(text string)
	CSSText() string
}

// EventTarget is implemented by elements that support listener registration.
type EventTarget interface {
	AddEventListener(event string, fn Listener)
}

// Event is dispatched to listeners.
type Event struct {
	Type   string
	Target Element
	Detail any
}

// Listener handles an event.
type Listener func(*Event)
