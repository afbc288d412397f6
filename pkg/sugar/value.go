package sugar

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/vango-dev/domsugar/pkg/dom"
)

// Value is a property bag value. It is one of String, Number, Bool, Null,
// StyleMap or Handler. A nil Value is treated as Null.
type Value interface {
	isValue()
}

// String is a text value.
type String string

// Number is a numeric value.
type Number float64

// Bool is a boolean value.
type Bool bool

// Null is the absent value. It removes attributes and skips styles.
type Null struct{}

// StyleMap maps hyphenated CSS property names to values.
type StyleMap map[string]Value

// Handler is an event callback.
type Handler func(*dom.Event)

func (String) isValue()   {}
func (Number) isValue()   {}
func (Bool) isValue()     {}
func (Null) isValue()     {}
func (StyleMap) isValue() {}
func (Handler) isValue()  {}

// Props is a property bag. Keys are applied in sorted order.
type Props map[string]Value

// Keys returns the keys in application order.
func (p Props) Keys() []string {
	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Keys returns the keys in application order.
func (m StyleMap) Keys() []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// ValueOf converts a plain Go value to a Value. It accepts Value, nil,
// string, bool, the integer and float kinds, map[string]any (as a
// StyleMap), func(*dom.Event) and dom.Listener.
func ValueOf(x any) (Value, bool) {
	switch v := x.(type) {
	case nil:
		return Null{}, true
	case Value:
		return v, true
	case string:
		return String(v), true
	case bool:
		return Bool(v), true
	case int:
		return Number(v), true
	case int8:
		return Number(v), true
	case int16:
		return Number(v), true
	case int32:
		return Number(v), true
	case int64:
		return Number(v), true
	case uint:
		return Number(v), true
	case uint8:
		return Number(v), true
	case uint16:
		return Number(v), true
	case uint32:
		return Number(v), true
	case uint64:
		return Number(v), true
	case float32:
		return Number(v), true
	case float64:
		return Number(v), true
	case func(*dom.Event):
		return Handler(v), true
	case dom.Listener:
		return Handler(v), true
	case map[string]any:
		m := make(StyleMap, len(v))
		for k, item := range v {
			val, ok := ValueOf(item)
			if !ok {
				return nil, false
			}
			m[k] = val
		}
		return m, true
	default:
		return nil, false
	}
}

// isNull reports whether v is absent.
func isNull(v Value) bool {
	switch v.(type) {
	case nil, Null:
		return true
	default:
		return false
	}
}

// stringify returns the string form of v used for attributes, direct
// properties and style values.
func stringify(v Value) string {
	switch x := v.(type) {
	case nil, Null:
		return ""
	case String:
		return string(x)
	case Number:
		return formatNumber(float64(x))
	case Bool:
		if x {
			return "true"
		}
		return "false"
	case StyleMap:
		parts := make([]string, 0, len(x))
		for _, k := range x.Keys() {
			if isNull(x[k]) {
				continue
			}
			parts = append(parts, k+": "+stringify(x[k]))
		}
		return strings.Join(parts, "; ")
	case Handler:
		return ""
	default:
		return ""
	}
}

// truthy reports the boolean coercion of v.
func truthy(v Value) bool {
	switch x := v.(type) {
	case nil, Null:
		return false
	case String:
		return x != ""
	case Number:
		f := float64(x)
		return f != 0 && !math.IsNaN(f)
	case Bool:
		return bool(x)
	case StyleMap:
		return true
	case Handler:
		return x != nil
	default:
		return false
	}
}

// formatNumber renders f in its shortest decimal form without an exponent.
func formatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		return "0"
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
