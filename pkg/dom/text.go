package dom

// Text is an in-memory text node.
type Text struct {
	Data   string
	parent *HTMLElement
}

// Kind implements Node.
func (t *Text) Kind() Kind { return KindText }

// Parent returns the element the text node is attached to, or nil.
func (t *Text) Parent() *HTMLElement { return t.parent }
