// Package themefile serialises built syntax profiles as theme documents.
package themefile

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/unkn0wn-root/syntaxforge/internal/scheme"
	"github.com/unkn0wn-root/syntaxforge/internal/syntax"
	"github.com/unkn0wn-root/syntaxforge/internal/util"
)

type Document struct {
	Name       string                  `json:"name"                 toml:"name"                 yaml:"name"`
	Appearance string                  `json:"appearance,omitempty" toml:"appearance,omitempty" yaml:"appearance,omitempty"`
	Author     string                  `json:"author,omitempty"     toml:"author,omitempty"     yaml:"author,omitempty"`
	Syntax     map[string]syntax.Style `json:"syntax"               toml:"syntax"               yaml:"syntax"`
}

// NewDocument snapshots profile. Categories the profile does not carry are
// left out of the document.
func NewDocument(meta scheme.Metadata, profile syntax.Profile) Document {
	doc := Document{
		Name:       meta.Name,
		Appearance: string(meta.Appearance),
		Author:     meta.Author,
		Syntax:     make(map[string]syntax.Style, len(profile)),
	}
	for _, c := range profile.Categories() {
		style, _ := profile.Get(c)
		doc.Syntax[c.String()] = style
	}
	return doc
}

func Encode(w io.Writer, doc Document, format Format) error {
	switch format {
	case FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(doc)
	case FormatTOML:
		encoder := toml.NewEncoder(w)
		encoder.SetIndentTables(true)
		return encoder.Encode(doc)
	case FormatYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(doc); err != nil {
			_ = encoder.Close()
			return err
		}
		return encoder.Close()
	default:
		return fmt.Errorf("%w %q", ErrUnsupportedFormat, format)
	}
}

// WriteFile encodes doc and replaces path atomically. An empty format is
// taken from the file extension.
func WriteFile(path string, doc Document, format Format) error {
	if format == "" {
		detected, err := FormatFromPath(path)
		if err != nil {
			return err
		}
		format = detected
	}

	var buf bytes.Buffer
	if err := Encode(&buf, doc, format); err != nil {
		return fmt.Errorf("encode theme: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("ensure theme directory: %w", err)
	}
	if err := util.WriteFileAtomic(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write theme %q: %w", path, err)
	}
	return nil
}
