package dom

import (
	"fmt"
	"strings"
)

// reflectedProperties maps string fields to the attribute they reflect.
var reflectedProperties = map[string]string{
	"className":    "class",
	"htmlFor":      "for",
	"defaultValue": "value",
	"unselectable": "unselectable",
	"id":           "id",
	"title":        "title",
}

// booleanAttributes maps boolean fields to the attribute whose presence
// they reflect.
var booleanAttributes = map[string]string{
	"autofocus":      "autofocus",
	"checked":        "checked",
	"defaultChecked": "checked",
	"disabled":       "disabled",
	"hidden":         "hidden",
	"multiple":       "multiple",
	"readOnly":       "readonly",
	"required":       "required",
	"selected":       "selected",
}

// IsBooleanAttribute reports whether name is an attribute whose presence
// alone carries its meaning.
func IsBooleanAttribute(name string) bool {
	for _, attr := range booleanAttributes {
		if attr == name {
			return true
		}
	}
	return false
}

// SetProperty implements Element.
//
// Reflected string fields and boolean flags update attributes, textContent
// replaces the children, and on<event> fields install a legacy handler
// (a Listener) or an inline handler attribute (a string). Any other field
// is stored on the element and can be read back with Property.
func (e *HTMLElement) SetProperty(name string, value any) {
	if name == "textContent" {
		e.setTextContent(propertyString(value))
		return
	}
	if attr, ok := reflectedProperties[name]; ok {
		e.setAttr(attr, propertyString(value))
		return
	}
	if attr, ok := booleanAttributes[name]; ok {
		if on, _ := value.(bool); on {
			e.setAttr(attr, "")
		} else {
			e.removeAttr(attr)
		}
		return
	}
	if event, ok := eventProperty(name); ok {
		e.setHandlerProperty(name, event, value)
		return
	}
	if e.props == nil {
		e.props = make(map[string]any)
	}
	e.props[name] = value
}

// Property reads a field back.
func (e *HTMLElement) Property(name string) any {
	if name == "textContent" {
		return e.TextContent()
	}
	if attr, ok := reflectedProperties[name]; ok {
		v, _ := e.GetAttribute(attr)
		return v
	}
	if attr, ok := booleanAttributes[name]; ok {
		return e.HasAttribute(attr)
	}
	if event, ok := eventProperty(name); ok {
		if h, ok := e.handlers[event]; ok {
			return h
		}
		if v, ok := e.GetAttribute(strings.ToLower(name)); ok {
			return v
		}
		return nil
	}
	return e.props[name]
}

// BoolProperty reads a boolean field back.
func (e *HTMLElement) BoolProperty(name string) bool {
	b, _ := e.Property(name).(bool)
	return b
}

func (e *HTMLElement) setHandlerProperty(name, event string, value any) {
	attr := strings.ToLower(name)
	switch v := value.(type) {
	case Listener:
		if v == nil {
			e.clearHandler(event, attr)
			return
		}
		if e.handlers == nil {
			e.handlers = make(map[string]Listener)
		}
		e.handlers[event] = v
		e.removeAttr(attr)
	case func(*Event):
		e.setHandlerProperty(name, event, Listener(v))
	case string:
		delete(e.handlers, event)
		e.setAttr(attr, v)
	case nil:
		e.clearHandler(event, attr)
	default:
		delete(e.handlers, event)
		e.setAttr(attr, fmt.Sprint(v))
	}
}

func (e *HTMLElement) clearHandler(event, attr string) {
	delete(e.handlers, event)
	e.removeAttr(attr)
}

// eventProperty returns the lower-cased event name for on<event> fields.
func eventProperty(name string) (string, bool) {
	if len(name) < 3 || !strings.HasPrefix(strings.ToLower(name[:2]), "on") {
		return "", false
	}
	return strings.ToLower(name[2:]), true
}

func propertyString(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}
