package sugar

import (
	"github.com/vango-dev/domsugar/pkg/dom"
)

// Property kinds, used as the metrics label.
const (
	kindStyle     = "style"
	kindEvent     = "event"
	kindDirect    = "direct"
	kindBoolean   = "boolean"
	kindAttribute = "attribute"
)

// applyProperty assigns one property bag entry to el.
func (b *Builder) applyProperty(el dom.Element, key string, value Value) {
	if value == nil {
		value = Null{}
	}

	switch {
	case key == "style":
		b.metrics.propertyApplied(kindStyle)
		switch v := value.(type) {
		case StyleMap:
			for _, k := range v.Keys() {
				b.applyStyle(el, k, v[k])
			}
		case String:
			el.Style().SetCSSText(string(v))
		default:
			b.logger.Debug("ignoring style value", "type", valueKind(value))
		}

	case IsEventKey(key):
		b.metrics.propertyApplied(kindEvent)
		if h, ok := value.(Handler); ok {
			if target, ok := el.(dom.EventTarget); ok {
				// A nil handler registers nothing and leaves existing handlers alone.
				if h != nil {
					target.AddEventListener(EventName(key), dom.Listener(h))
				}
				return
			}
		}
		el.SetProperty(key, handlerProperty(value))

	case directProperties[key]:
		b.metrics.propertyApplied(kindDirect)
		el.SetProperty(key, stringify(value))

	case booleanProperties[key]:
		b.metrics.propertyApplied(kindBoolean)
		el.SetProperty(key, truthy(value))

	default:
		b.metrics.propertyApplied(kindAttribute)
		if isNull(value) {
			el.RemoveAttribute(key)
			return
		}
		el.SetAttribute(key, stringify(value))
	}
}

// IsEventKey reports whether key names an event handler: "on" followed by
// an upper case letter.
func IsEventKey(key string) bool {
	return len(key) > 2 && key[0] == 'o' && key[1] == 'n' && key[2] >= 'A' && key[2] <= 'Z'
}

// EventName returns the event for an event key: "onClick" -> "click".
func EventName(key string) string {
	return string(key[2]+('a'-'A')) + key[3:]
}

// handlerProperty is the value assigned through the legacy property path.
func handlerProperty(value Value) any {
	switch v := value.(type) {
	case Handler:
		if v == nil {
			return nil
		}
		return dom.Listener(v)
	case nil, Null:
		return nil
	default:
		return stringify(value)
	}
}

func valueKind(v Value) string {
	switch v.(type) {
	case String:
		return "string"
	case Number:
		return "number"
	case Bool:
		return "bool"
	case StyleMap:
		return "style"
	case Handler:
		return "handler"
	default:
		return "null"
	}
}
