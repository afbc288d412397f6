package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vango-dev/domsugar/internal/errors"
)

// execute runs the root command with args and stdin.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRenderStdin(t *testing.T) {
	out, err := execute(t, `{"tag": "div#foo.aa.bb"}`, "render")
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if out != "<div id=\"foo\" class=\"aa bb\"></div>\n" {
		t.Errorf("output = %q", out)
	}
}

func TestRenderFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "menu.yaml")
	doc := `
tag: ul
children:
  - tag: li
    children: [One]
`
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		t.Fatal(err)
	}

	out, err := execute(t, "", "render", path)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if out != "<ul><li>One</li></ul>\n" {
		t.Errorf("output = %q", out)
	}

	out, err = execute(t, "", "render", "--pretty", path)
	if err != nil {
		t.Fatalf("render --pretty failed: %v", err)
	}
	if out != "<ul>\n  <li>One</li>\n</ul>\n" {
		t.Errorf("pretty output = %q", out)
	}
}

func TestRenderFormatFlag(t *testing.T) {
	out, err := execute(t, "tag: br\n", "render", "--format", "yaml")
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if out != "<br>\n" {
		t.Errorf("output = %q", out)
	}
}

func TestRenderErrors(t *testing.T) {
	tests := []struct {
		name     string
		stdin    string
		args     []string
		wantCode string
	}{
		{"unknown format", `{"tag": "p"}`, []string{"render", "--format", "toml"}, "E401"},
		{"malformed", `{"tag":`, []string{"render"}, "E202"},
		{"invalid node", `{"tag": "p", "children": [1]}`, []string{"render"}, "E201"},
		{"empty tag", `{"tag": ".x"}`, []string{"render"}, "E301"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.stdin, tt.args...)
			if !errors.HasCode(err, tt.wantCode) {
				t.Errorf("err = %v, want %s", err, tt.wantCode)
			}
		})
	}
}

func TestRenderMissingFile(t *testing.T) {
	_, err := execute(t, "", "render", filepath.Join(t.TempDir(), "missing.json"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !strings.Contains(err.Error(), "missing.json") {
		t.Errorf("error should name the file: %v", err)
	}
}

func TestRenderErrorPathNamesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte(`{"tag": "p", "extra": 1}`), 0644); err != nil {
		t.Fatal(err)
	}
	_, err := execute(t, "", "render", path)
	se, ok := err.(*errors.SugarError)
	if !ok {
		t.Fatalf("err = %T %v", err, err)
	}
	if se.Path != path+":$.extra" {
		t.Errorf("Path = %q", se.Path)
	}
}

func TestFormatFromExtension(t *testing.T) {
	tests := map[string]string{
		"a.json": "json",
		"a.yaml": "yaml",
		"a.YML":  "yaml",
		"a":      "json",
	}
	for in, want := range tests {
		if got := formatFromExtension(in); got != want {
			t.Errorf("formatFromExtension(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "", "version", "--short")
	if err != nil {
		t.Fatal(err)
	}
	if out != version+"\n" {
		t.Errorf("output = %q", out)
	}

	out, err = execute(t, "", "version")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out, "domsugar "+version) || !strings.Contains(out, "Go version:") {
		t.Errorf("output = %q", out)
	}
}

func TestServeRejectsBadPort(t *testing.T) {
	_, err := execute(t, "", "serve", "--port", "70000")
	if !errors.HasCode(err, "E122") {
		t.Errorf("err = %v, want E122", err)
	}
}
