package themefile

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/unkn0wn-root/syntaxforge/internal/scheme"
	"github.com/unkn0wn-root/syntaxforge/internal/syntax"
)

func sampleDocument(t *testing.T) Document {
	t.Helper()
	s := scheme.Default()
	color := "#56B6C2"
	s.Syntax = syntax.Override{
		syntax.FunctionBuiltin: {Color: &color},
		syntax.Comment:         {Decorations: []syntax.Decoration{syntax.DecorationFaint}},
	}
	profile, err := syntax.Build(s)
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}
	return NewDocument(s.Metadata, profile)
}

func TestNewDocumentCarriesPresentCategoriesOnly(t *testing.T) {
	doc := sampleDocument(t)
	if doc.Name != "Default" || doc.Appearance != "dark" {
		t.Fatalf("unexpected metadata %q/%q", doc.Name, doc.Appearance)
	}
	if _, ok := doc.Syntax["function.builtin"]; !ok {
		t.Fatalf("expected overridden optional category in document")
	}
	if _, ok := doc.Syntax["function.method"]; ok {
		t.Fatalf("expected absent optional category to be omitted")
	}
	for _, c := range syntax.RequiredCategories() {
		if _, ok := doc.Syntax[c.String()]; !ok {
			t.Errorf("expected required category %s in document", c)
		}
	}
}

func TestEncodeRoundTrips(t *testing.T) {
	doc := sampleDocument(t)
	decoders := map[Format]func([]byte, any) error{
		FormatJSON: json.Unmarshal,
		FormatTOML: toml.Unmarshal,
		FormatYAML: yaml.Unmarshal,
	}
	for _, format := range Formats() {
		t.Run(string(format), func(t *testing.T) {
			var buf bytes.Buffer
			if err := Encode(&buf, doc, format); err != nil {
				t.Fatalf("Encode returned error: %v", err)
			}
			var got Document
			if err := decoders[format](buf.Bytes(), &got); err != nil {
				t.Fatalf("decode %s output: %v\n%s", format, err, buf.String())
			}
			if diff := cmp.Diff(doc, got); diff != "" {
				t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestEncodeWritesNamedAttributes(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, sampleDocument(t), FormatJSON); err != nil {
		t.Fatalf("Encode returned error: %v", err)
	}
	out := buf.String()
	for _, want := range []string{`"weight": "bold"`, `"decorations": [`, `"faint"`} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %s", want)
		}
	}
}

func TestEncodeRejectsUnknownFormat(t *testing.T) {
	err := Encode(&bytes.Buffer{}, Document{}, Format("xml"))
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestWriteFileDetectsFormatFromExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "themes", "default.yml")
	if err := WriteFile(path, sampleDocument(t), ""); err != nil {
		t.Fatalf("WriteFile returned error: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read theme: %v", err)
	}
	if !strings.HasPrefix(string(data), "name: Default\n") {
		t.Fatalf("expected yaml document, got:\n%s", data)
	}

	if err := WriteFile(filepath.Join(dir, "theme"), Document{}, ""); !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat without extension, got %v", err)
	}
}

func TestParseFormat(t *testing.T) {
	cases := map[string]Format{"JSON": FormatJSON, " toml ": FormatTOML, "yml": FormatYAML}
	for input, want := range cases {
		got, err := ParseFormat(input)
		if err != nil || got != want {
			t.Errorf("ParseFormat(%q) = %q, %v; want %q", input, got, err, want)
		}
	}
	if _, err := ParseFormat(""); err == nil {
		t.Errorf("expected error for empty format")
	}
}
