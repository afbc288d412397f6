package sugar

import (
	"fmt"
	"reflect"

	"github.com/vango-dev/domsugar/pkg/dom"
)

// appendChildren appends children to el in order. Nested slices and
// arrays of any element type are flattened, strings become text nodes
// (empty strings included), nodes are appended as they are and
// everything else is skipped.
func (b *Builder) appendChildren(el dom.Element, children []any) {
	for _, child := range children {
		switch v := child.(type) {
		case nil:
			continue
		case []any:
			b.appendChildren(el, v)
		case []dom.Node:
			for _, n := range v {
				b.appendNode(el, n)
			}
		case []dom.Element:
			for _, n := range v {
				b.appendNode(el, n)
			}
		case []string:
			for _, s := range v {
				b.appendNode(el, b.doc.CreateTextNode(s))
			}
		case string:
			b.appendNode(el, b.doc.CreateTextNode(v))
		case dom.Node:
			b.appendNode(el, v)
		default:
			if rv := reflect.ValueOf(child); rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
				b.appendSequence(el, rv)
				continue
			}
			b.metrics.childSkipped()
			b.logger.Debug("skipping unsupported child", "type", fmt.Sprintf("%T", child))
		}
	}
}

// appendSequence flattens slices and arrays of any other element type,
// such as []*dom.HTMLElement or [][]string.
func (b *Builder) appendSequence(el dom.Element, rv reflect.Value) {
	items := make([]any, rv.Len())
	for i := range items {
		items[i] = rv.Index(i).Interface()
	}
	b.appendChildren(el, items)
}

func (b *Builder) appendNode(el dom.Element, n dom.Node) {
	if isNilNode(n) {
		b.metrics.childSkipped()
		return
	}
	el.AppendChild(n)
	b.metrics.childAppended()
}

// isNilNode reports whether n is nil or a typed nil pointer.
func isNilNode(n dom.Node) bool {
	if n == nil {
		return true
	}
	rv := reflect.ValueOf(n)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}
