package dom

import (
	"fmt"
	"strings"

	"github.com/gorilla/css/scanner"

	"github.com/vango-dev/domsugar/internal/errors"
)

// declaration is one "property: value" pair, keyed by the hyphenated
// CSS property name.
type declaration struct {
	property string
	value    string
}

// CSSStyle is the in-memory inline style of an element.
type CSSStyle struct {
	owner *HTMLElement
	decls []declaration

	// raw is the text last given to SetCSSText. It is returned verbatim by
	// CSSText until a field changes.
	raw      string
	rawValid bool
}

// SetField implements Style. An empty value removes the declaration.
func (s *CSSStyle) SetField(field, value string) error {
	if !isFieldName(field) {
		return errors.New("E210").
			WithDetail(fmt.Sprintf("unsupported style field %q", field))
	}
	if strings.ContainsAny(value, ";{}\r\n") {
		return errors.New("E210").
			WithDetail(fmt.Sprintf("invalid value %q for style field %q", value, field))
	}

	s.set(FieldToProperty(field), strings.TrimSpace(value))
	s.rawValid = false
	s.reflect()
	return nil
}

// Field returns the value of a style field by its camel-cased name.
func (s *CSSStyle) Field(field string) (string, bool) {
	return s.Get(FieldToProperty(field))
}

// Get returns the value of a declaration by its CSS property name.
func (s *CSSStyle) Get(property string) (string, bool) {
	for _, d := range s.decls {
		if d.property == property {
			return d.value, true
		}
	}
	return "", false
}

// Len returns the number of declarations.
func (s *CSSStyle) Len() int {
	return len(s.decls)
}

// SetCSSText implements Style.
func (s *CSSStyle) SetCSSText(text string) {
	s.decls = parseDeclarations(text)
	s.raw = text
	s.rawValid = true
	s.reflect()
}

// CSSText implements Style.
func (s *CSSStyle) CSSText() string {
	if s.rawValid {
		return s.raw
	}
	parts := make([]string, len(s.decls))
	for i, d := range s.decls {
		parts[i] = d.property + ": " + d.value
	}
	return strings.Join(parts, "; ")
}

func (s *CSSStyle) set(property, value string) {
	for i, d := range s.decls {
		if d.property != property {
			continue
		}
		if value == "" {
			s.decls = append(s.decls[:i], s.decls[i+1:]...)
		} else {
			s.decls[i].value = value
		}
		return
	}
	if value != "" {
		s.decls = append(s.decls, declaration{property: property, value: value})
	}
}

func (s *CSSStyle) clear() {
	s.decls = nil
	s.raw = ""
	s.rawValid = false
}

// reflect mirrors the style into the owner's style attribute.
func (s *CSSStyle) reflect() {
	if s.owner == nil {
		return
	}
	text := s.CSSText()
	if text == "" && !s.rawValid {
		s.owner.removeAttr("style")
		return
	}
	s.owner.setAttr("style", text)
}

// parseDeclarations tokenizes an inline style. Malformed declarations are
// skipped up to the next semicolon; later duplicates win.
func parseDeclarations(text string) []declaration {
	var (
		decls        []declaration
		property     string
		value        strings.Builder
		inValue      bool
		skipping     bool
		pendingSpace bool
	)

	flush := func() {
		if property != "" && inValue && !skipping {
			if v := strings.TrimSpace(value.String()); v != "" {
				decls = upsert(decls, property, v)
			}
		}
		property = ""
		value.Reset()
		inValue = false
		skipping = false
		pendingSpace = false
	}

	s := scanner.New(text)
	for {
		tok := s.Next()
		switch tok.Type {
		case scanner.TokenEOF, scanner.TokenError:
			flush()
			return decls
		case scanner.TokenComment:
			continue
		case scanner.TokenS:
			pendingSpace = inValue
			continue
		}

		if tok.Type == scanner.TokenChar && tok.Value == ";" {
			flush()
			continue
		}
		if skipping {
			continue
		}

		if !inValue {
			switch {
			case property == "" && tok.Type == scanner.TokenIdent:
				property = strings.ToLower(tok.Value)
			case property != "" && tok.Type == scanner.TokenChar && tok.Value == ":":
				inValue = true
			default:
				skipping = true
			}
			continue
		}

		if pendingSpace && value.Len() > 0 {
			value.WriteByte(' ')
		}
		pendingSpace = false
		value.WriteString(tok.Value)
	}
}

func upsert(decls []declaration, property, value string) []declaration {
	for i := range decls {
		if decls[i].property == property {
			decls[i].value = value
			return decls
		}
	}
	return append(decls, declaration{property: property, value: value})
}

// FieldToProperty converts a style field name to its CSS property name:
// "fontSize" -> "font-size", "WebkitTransform" -> "-webkit-transform",
// "msTransform" -> "-ms-transform", "cssFloat" and "styleFloat" -> "float".
func FieldToProperty(field string) string {
	switch field {
	case "cssFloat", "styleFloat":
		return "float"
	}
	if len(field) > 2 && strings.HasPrefix(field, "ms") && isUpper(field[2]) {
		field = "M" + field[1:]
	}

	var b strings.Builder
	b.Grow(len(field) + 4)
	for i := 0; i < len(field); i++ {
		c := field[i]
		if isUpper(c) {
			b.WriteByte('-')
			b.WriteByte(c + ('a' - 'A'))
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}

// isFieldName reports whether field is an ASCII identifier.
func isFieldName(field string) bool {
	if field == "" {
		return false
	}
	for i := 0; i < len(field); i++ {
		c := field[i]
		switch {
		case c >= 'a' && c <= 'z', isUpper(c):
		case c >= '0' && c <= '9' && i > 0:
		default:
			return false
		}
	}
	return true
}

func isUpper(c byte) bool {
	return c >= 'A' && c <= 'Z'
}
