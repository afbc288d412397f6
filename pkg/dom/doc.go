// Package dom defines the host document capabilities the element builder
// needs and provides an in-memory HTML implementation of them.
//
// # Host Capabilities
//
// Document creates elements and text nodes. Element exposes attribute
// get/set/remove, child appending, a generic property assignment surface
// (SetProperty, the equivalent of el[name] = value) and an inline Style.
// EventTarget is optional: hosts that cannot register listeners receive
// handlers through SetProperty instead.
//
// # In-memory Host
//
// NewDocument returns an HTMLDocument whose elements keep attributes in
// insertion order, reflect the common IDL properties (className, htmlFor,
// defaultValue, the boolean flags) to attributes, and keep inline styles
// as an ordered list of declarations mirrored into the style attribute.
//
//	doc := dom.NewDocument()
//	el := doc.CreateElement("div")
//	el.SetAttribute("id", "main")
//	el.Style().SetField("fontSize", "10px")
//	el.AppendChild(doc.CreateTextNode("hello"))
//
// Events do not bubble. Dispatch runs the listeners registered on the
// element itself, in registration order.
package dom
