package sugar

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vango-dev/domsugar/internal/errors"
	"github.com/vango-dev/domsugar/pkg/dom"
)

// TreeElement is one element of a tree document, the data form of a
// Create call:
//
//	{"tag": "ul#menu", "props": {"hidden": false}, "children": [
//	    {"tag": "li", "children": ["one"]},
//	    [{"tag": "li", "children": ["two"]}, null]
//	]}
//
// Children hold strings, *TreeElement values, nil, and []any of those.
type TreeElement struct {
	Tag      string
	Props    Props
	Children []any
}

// DecodeJSON decodes a JSON tree document whose root is an element.
func DecodeJSON(data []byte) (*TreeElement, error) {
	var raw any
	dec := json.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&raw); err != nil {
		return nil, errors.New("E202").Wrap(err)
	}
	if dec.More() {
		return nil, errors.New("E202").WithDetail("unexpected data after the root element")
	}
	return treeFromValue(raw, "$")
}

// DecodeYAML decodes a YAML tree document whose root is an element.
func DecodeYAML(data []byte) (*TreeElement, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, errors.New("E202").Wrap(err)
	}
	return treeFromValue(raw, "$")
}

// Decode decodes a tree document in the named format, json or yaml.
// An empty format means json.
func Decode(format string, data []byte) (*TreeElement, error) {
	switch strings.ToLower(format) {
	case "", "json":
		return DecodeJSON(data)
	case "yaml", "yml":
		return DecodeYAML(data)
	}
	return nil, errors.New("E401").WithDetail(fmt.Sprintf("unknown format %q", format))
}

// Build creates the elements of a tree through Create.
func (b *Builder) Build(t *TreeElement) dom.Element {
	return b.Create(t.Tag, t.Props, b.buildChildren(t.Children)...)
}

func (b *Builder) buildChildren(children []any) []any {
	out := make([]any, 0, len(children))
	for _, c := range children {
		switch v := c.(type) {
		case *TreeElement:
			out = append(out, b.Build(v))
		case []any:
			out = append(out, b.buildChildren(v))
		default:
			out = append(out, v)
		}
	}
	return out
}

func treeFromValue(raw any, path string) (*TreeElement, error) {
	m, ok := asMap(raw)
	if !ok {
		return nil, errors.New("E201").
			WithPath(path).
			WithSuggestion("the root of a tree document must be an element object")
	}

	t := &TreeElement{}
	for _, key := range sortedKeys(m) {
		value := m[key]
		switch key {
		case "tag":
			tag, ok := value.(string)
			if !ok || tag == "" {
				return nil, errors.New("E201").
					WithPath(path + ".tag").
					WithSuggestion("tag must be a non-empty string such as \"div#id.class\"")
			}
			t.Tag = tag
		case "props":
			props, err := propsFromValue(value, path+".props")
			if err != nil {
				return nil, err
			}
			t.Props = props
		case "children":
			if value == nil {
				continue
			}
			list, ok := value.([]any)
			if !ok {
				return nil, errors.New("E201").
					WithPath(path + ".children").
					WithSuggestion("children must be an array")
			}
			children, err := childrenFromValue(list, path+".children")
			if err != nil {
				return nil, err
			}
			t.Children = children
		default:
			return nil, errors.New("E201").
				WithPath(path + "." + key).
				WithSuggestion("elements only have tag, props and children")
		}
	}
	if t.Tag == "" {
		return nil, errors.New("E201").
			WithPath(path + ".tag").
			WithSuggestion("every element needs a tag")
	}
	return t, nil
}

func childrenFromValue(list []any, path string) ([]any, error) {
	out := make([]any, 0, len(list))
	for i, item := range list {
		itemPath := fmt.Sprintf("%s[%d]", path, i)
		switch v := item.(type) {
		case nil:
			out = append(out, nil)
		case string:
			out = append(out, v)
		case []any:
			nested, err := childrenFromValue(v, itemPath)
			if err != nil {
				return nil, err
			}
			out = append(out, nested)
		default:
			if _, ok := asMap(v); !ok {
				return nil, errors.New("E201").
					WithPath(itemPath).
					WithSuggestion("children must be strings, element objects, arrays or null")
			}
			el, err := treeFromValue(v, itemPath)
			if err != nil {
				return nil, err
			}
			out = append(out, el)
		}
	}
	return out, nil
}

func propsFromValue(raw any, path string) (Props, error) {
	if raw == nil {
		return nil, nil
	}
	m, ok := asMap(raw)
	if !ok {
		return nil, errors.New("E201").
			WithPath(path).
			WithSuggestion("props must be an object")
	}

	props := make(Props, len(m))
	for key, value := range m {
		keyPath := path + "." + key
		if nested, ok := asMap(value); ok {
			if key != "style" {
				return nil, errors.New("E201").
					WithPath(keyPath).
					WithSuggestion("only style may be an object")
			}
			style := make(StyleMap, len(nested))
			for name, item := range nested {
				v, err := scalarFromValue(item, keyPath+"."+name)
				if err != nil {
					return nil, err
				}
				style[name] = v
			}
			props[key] = style
			continue
		}
		v, err := scalarFromValue(value, keyPath)
		if err != nil {
			return nil, err
		}
		props[key] = v
	}
	return props, nil
}

func scalarFromValue(raw any, path string) (Value, error) {
	switch raw.(type) {
	case nil, string, bool, int, int64, uint64, float64:
		v, _ := ValueOf(raw)
		return v, nil
	default:
		return nil, errors.New("E201").
			WithPath(path).
			WithSuggestion("values must be strings, numbers, booleans or null")
	}
}

// asMap accepts both JSON objects and YAML mappings.
func asMap(raw any) (map[string]any, bool) {
	switch m := raw.(type) {
	case map[string]any:
		return m, true
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, v := range m {
			out[fmt.Sprint(k)] = v
		}
		return out, true
	default:
		return nil, false
	}
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
