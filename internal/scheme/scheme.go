package scheme

import (
	"github.com/unkn0wn-root/syntaxforge/internal/palette"
	"github.com/unkn0wn-root/syntaxforge/internal/syntax"
)

type Appearance string

const (
	AppearanceDark  Appearance = "dark"
	AppearanceLight Appearance = "light"
)

type Metadata struct {
	Name        string     `json:"name"        toml:"name"        yaml:"name"`
	Description string     `json:"description" toml:"description" yaml:"description"`
	Author      string     `json:"author"      toml:"author"      yaml:"author"`
	Version     string     `json:"version"     toml:"version"     yaml:"version"`
	Appearance  Appearance `json:"appearance"  toml:"appearance"  yaml:"appearance"`
	Extends     string     `json:"extends"     toml:"extends"     yaml:"extends"`
	Tags        []string   `json:"tags"        toml:"tags"        yaml:"tags"`
}

// Scheme is a compiled colour scheme: parsed ramps plus the syntax override
// layered from every scheme it extends.
type Scheme struct {
	Metadata Metadata
	Ramps    palette.Set
	Syntax   syntax.Override

	// stops keeps the raw ramp definitions so extending schemes can inherit
	// them.
	stops map[string][]string
}

func (s Scheme) Ramp(name string) (palette.Ramp, error) {
	return s.Ramps.Ramp(name)
}

func (s Scheme) SyntaxOverride() syntax.Override {
	return s.Syntax
}

// RampStops returns the stop list a ramp was defined with.
func (s Scheme) RampStops(name string) ([]string, bool) {
	stops, ok := s.stops[name]
	if !ok {
		return nil, false
	}
	return append([]string(nil), stops...), true
}

var defaultStops = map[string][]string{
	"neutral": {"#16181D", "#2A2E37", "#5C6370", "#ABB2BF", "#F5F7FA"},
	"blue":    {"#61AFEF"},
	"orange":  {"#D19A66"},
	"green":   {"#98C379"},
	"cyan":    {"#56B6C2"},
	"yellow":  {"#E5C07B"},
	"red":     {"#E06C75"},
	"violet":  {"#C678DD"},
	"magenta": {"#FF79C6"},
}

// Default returns the built-in dark scheme. It carries no syntax override.
func Default() Scheme {
	spec := SchemeSpec{
		Metadata: &Metadata{
			Name:        "Default",
			Description: "Built-in dark scheme",
			Appearance:  AppearanceDark,
		},
		Ramps: make(map[string][]string, len(defaultStops)),
	}
	for name, stops := range defaultStops {
		spec.Ramps[name] = append([]string(nil), stops...)
	}
	s, err := Compile(spec, nil)
	if err != nil {
		panic("scheme: built-in default does not compile: " + err.Error())
	}
	return s
}
