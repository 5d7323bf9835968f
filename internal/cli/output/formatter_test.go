package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/yndnr/confmerge-go/pkg/tree"
)

func sampleTree() *tree.Map {
	db := tree.NewMap()
	db.Set("host", tree.String("localhost"))
	db.Set("port", tree.Int(5432))

	m := tree.NewMap()
	m.Set("name", tree.String("demo"))
	m.Set("db", tree.MapValue(db))
	m.Set("tags", tree.Seq(tree.String("a"), tree.String("b")))
	return m
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"", FormatTable, false},
		{"table", FormatTable, false},
		{"JSON", FormatJSON, false},
		{" yaml ", FormatYAML, false},
		{"xml", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFormat(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseFormat(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNewFormatter(t *testing.T) {
	if _, ok := NewFormatter(FormatJSON).(*JSONFormatter); !ok {
		t.Error("expected JSONFormatter")
	}
	if _, ok := NewFormatter(FormatYAML).(*YAMLFormatter); !ok {
		t.Error("expected YAMLFormatter")
	}
	if _, ok := NewFormatter("unknown").(*TableFormatter); !ok {
		t.Error("expected TableFormatter as default")
	}
}

func TestJSONFormatter_Tree(t *testing.T) {
	var buf bytes.Buffer
	if err := (&JSONFormatter{}).Format(&buf, sampleTree()); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	want := `{
  "name": "demo",
  "db": {
    "host": "localhost",
    "port": 5432
  },
  "tags": [
    "a",
    "b"
  ]
}
`
	if buf.String() != want {
		t.Errorf("Format() =\n%s\nwant\n%s", buf.String(), want)
	}
}

func TestJSONFormatter_NoHTMLEscape(t *testing.T) {
	var buf bytes.Buffer
	if err := (&JSONFormatter{}).Format(&buf, map[string]string{"url": "a?b=1&c=<2>"}); err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if !strings.Contains(buf.String(), `"a?b=1&c=<2>"`) {
		t.Errorf("Format() escaped HTML: %s", buf.String())
	}
}

func TestYAMLFormatter_Tree(t *testing.T) {
	var buf bytes.Buffer
	if err := (&YAMLFormatter{}).Format(&buf, sampleTree()); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	out := buf.String()
	for _, want := range []string{"name: demo\n", "db:\n  host: localhost\n  port: 5432\n", "- a\n", "- b\n"} {
		if !strings.Contains(out, want) {
			t.Errorf("Format() output missing %q:\n%s", want, out)
		}
	}
	if strings.Index(out, "name:") > strings.Index(out, "db:") {
		t.Errorf("Format() did not keep key order:\n%s", out)
	}
}

func TestYAMLFormatter_Struct(t *testing.T) {
	data := struct {
		Name string `yaml:"name"`
	}{Name: "test"}

	var buf bytes.Buffer
	if err := (&YAMLFormatter{}).Format(&buf, data); err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if buf.String() != "name: test\n" {
		t.Errorf("Format() = %q, want %q", buf.String(), "name: test\n")
	}
}
