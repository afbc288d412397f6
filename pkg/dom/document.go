package dom

// HTMLDocument is the in-memory document.
type HTMLDocument struct{}

// NewDocument creates an empty in-memory document.
func NewDocument() *HTMLDocument {
	return &HTMLDocument{}
}

// CreateElement implements Document. The tag name is kept verbatim.
func (d *HTMLDocument) CreateElement(tag string) Element {
	return &HTMLElement{
		doc: d,
		tag: tag,
	}
}

// CreateTextNode implements Document.
func (d *HTMLDocument) CreateTextNode(data string) Node {
	return &Text{Data: data}
}
