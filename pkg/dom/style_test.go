package dom

import (
	"testing"

	"github.com/vango-dev/domsugar/internal/errors"
)

func TestSetFieldReflectsToAttribute(t *testing.T) {
	el := newDiv()
	s := el.CSS()

	if err := s.SetField("fontSize", "10px"); err != nil {
		t.Fatal(err)
	}
	if err := s.SetField("border", "solid"); err != nil {
		t.Fatal(err)
	}

	want := "font-size: 10px; border: solid"
	if got := s.CSSText(); got != want {
		t.Errorf("CSSText() = %q, want %q", got, want)
	}
	if got, _ := el.GetAttribute("style"); got != want {
		t.Errorf("style attr = %q, want %q", got, want)
	}

	if err := s.SetField("fontSize", ""); err != nil {
		t.Fatal(err)
	}
	if got := s.CSSText(); got != "border: solid" {
		t.Errorf("CSSText() after removal = %q", got)
	}
}

func TestSetFieldRejects(t *testing.T) {
	tests := []struct {
		name  string
		field string
		value string
	}{
		{"empty field", "", "1"},
		{"hyphenated field", "font-size", "1px"},
		{"leading digit", "1x", "1"},
		{"semicolon", "color", "red; background: blue"},
		{"brace", "color", "}"},
		{"newline", "color", "red\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			el := newDiv()
			err := el.CSS().SetField(tt.field, tt.value)
			if !errors.HasCode(err, "E210") {
				t.Fatalf("err = %v, want E210", err)
			}
			if el.CSS().Len() != 0 || el.HasAttribute("style") {
				t.Error("rejected assignment must leave the style untouched")
			}
		})
	}
}

func TestSetCSSTextVerbatim(t *testing.T) {
	el := newDiv()
	s := el.CSS()
	s.SetCSSText("color: red")

	if got := s.CSSText(); got != "color: red" {
		t.Errorf("CSSText() = %q", got)
	}
	if v, ok := s.Field("color"); !ok || v != "red" {
		t.Errorf("Field(color) = %q, %v", v, ok)
	}
	if got, _ := el.GetAttribute("style"); got != "color: red" {
		t.Errorf("style attr = %q", got)
	}

	s.SetField("width", "1px")
	if got := s.CSSText(); got != "color: red; width: 1px" {
		t.Errorf("CSSText() after SetField = %q", got)
	}
}

func TestParseDeclarations(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []declaration
	}{
		{"single", "color: red", []declaration{{"color", "red"}}},
		{"trailing semicolon", "color:red;", []declaration{{"color", "red"}}},
		{"multi token value", "border: 1px  solid   #ccc", []declaration{{"border", "1px solid #ccc"}}},
		{"function", "color: rgb(1, 2, 3)", []declaration{{"color", "rgb(1, 2, 3)"}}},
		{"vendor", "-webkit-transform: none", []declaration{{"-webkit-transform", "none"}}},
		{"duplicate wins", "color: red; color: blue", []declaration{{"color", "blue"}}},
		{"malformed skipped", "12: x; color: red", []declaration{{"color", "red"}}},
		{"missing colon", "color red; width: 1px", []declaration{{"width", "1px"}}},
		{"comment", "/* c */ color: red", []declaration{{"color", "red"}}},
		{"empty value dropped", "color: ; width: 2px", []declaration{{"width", "2px"}}},
		{"empty", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseDeclarations(tt.text)
			if len(got) != len(tt.want) {
				t.Fatalf("parseDeclarations(%q) = %v, want %v", tt.text, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("decl[%d] = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestStyleAttributeRoundTrip(t *testing.T) {
	el := newDiv()
	el.SetAttribute("style", "color: red; width: 2px")
	if v, _ := el.CSS().Field("width"); v != "2px" {
		t.Errorf("Field(width) = %q", v)
	}

	el.RemoveAttribute("style")
	if el.HasAttribute("style") || el.CSS().Len() != 0 {
		t.Error("removing the style attribute should clear the style")
	}
}

func TestFieldToProperty(t *testing.T) {
	tests := []struct {
		field string
		want  string
	}{
		{"color", "color"},
		{"fontSize", "font-size"},
		{"borderTopLeftRadius", "border-top-left-radius"},
		{"WebkitTransform", "-webkit-transform"},
		{"msTransform", "-ms-transform"},
		{"cssFloat", "float"},
		{"styleFloat", "float"},
		{"zIndex", "z-index"},
	}
	for _, tt := range tests {
		if got := FieldToProperty(tt.field); got != tt.want {
			t.Errorf("FieldToProperty(%q) = %q, want %q", tt.field, got, tt.want)
		}
	}
}

func TestFloatAliasesShareDeclaration(t *testing.T) {
	s := newDiv().CSS()
	s.SetField("cssFloat", "left")
	s.SetField("styleFloat", "right")
	if s.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", s.Len())
	}
	if v, _ := s.Field("cssFloat"); v != "right" {
		t.Errorf("float = %q", v)
	}
}
