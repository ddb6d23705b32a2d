package scheme

import (
	"fmt"
	"sort"
	"strings"

	"dario.cat/mergo"

	"github.com/unkn0wn-root/syntaxforge/internal/palette"
	"github.com/unkn0wn-root/syntaxforge/internal/syntax"
)

type SchemeSpec struct {
	Metadata *Metadata            `json:"metadata" toml:"metadata" yaml:"metadata"`
	Ramps    map[string][]string  `json:"ramps"    toml:"ramps"    yaml:"ramps"`
	Syntax   map[string]StyleSpec `json:"syntax"   toml:"syntax"   yaml:"syntax"`
}

type StyleSpec struct {
	Color       *string  `json:"color"       toml:"color"       yaml:"color"`
	Weight      *string  `json:"weight"      toml:"weight"      yaml:"weight"`
	Underline   *bool    `json:"underline"   toml:"underline"   yaml:"underline"`
	Italic      *bool    `json:"italic"      toml:"italic"      yaml:"italic"`
	Decorations []string `json:"decorations" toml:"decorations" yaml:"decorations"`
}

// Compile turns a decoded spec into a scheme. Ramps missing from spec are
// inherited from parent, and the parent's syntax override is layered under
// the spec's own entries.
func Compile(spec SchemeSpec, parent *Scheme) (Scheme, error) {
	meta := Metadata{}
	if spec.Metadata != nil {
		meta = *spec.Metadata
		meta.Tags = append([]string(nil), spec.Metadata.Tags...)
	}
	appearance, err := parseAppearance(meta.Appearance)
	if err != nil {
		return Scheme{}, err
	}
	meta.Appearance = appearance

	stops := make(map[string][]string, len(spec.Ramps))
	for name, values := range spec.Ramps {
		key := strings.ToLower(strings.TrimSpace(name))
		if key == "" {
			return Scheme{}, fmt.Errorf("ramps: ramp name may not be empty")
		}
		if _, dup := stops[key]; dup {
			return Scheme{}, fmt.Errorf("ramps.%s: defined more than once", key)
		}
		stops[key] = append([]string(nil), values...)
	}

	override, err := compileSyntax(spec.Syntax)
	if err != nil {
		return Scheme{}, err
	}

	if parent != nil {
		if err := mergo.Merge(&stops, parent.stops); err != nil {
			return Scheme{}, fmt.Errorf("ramps: inherit from %q: %w", parent.Metadata.Name, err)
		}
		override = parent.Syntax.Layer(override)
		if meta.Appearance == "" {
			meta.Appearance = parent.Metadata.Appearance
		}
	}
	if meta.Appearance == "" {
		meta.Appearance = AppearanceDark
	}

	ramps := make(palette.Set, len(stops))
	names := make([]string, 0, len(stops))
	for name := range stops {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		parsed, err := palette.ParseStops(stops[name])
		if err != nil {
			return Scheme{}, fmt.Errorf("ramps.%s: %w", name, err)
		}
		ramps[name] = palette.NewRamp(parsed...)
	}

	return Scheme{
		Metadata: meta,
		Ramps:    ramps,
		Syntax:   override,
		stops:    stops,
	}, nil
}

func compileSyntax(specs map[string]StyleSpec) (syntax.Override, error) {
	if len(specs) == 0 {
		return nil, nil
	}
	keys := make([]string, 0, len(specs))
	for key := range specs {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	override := make(syntax.Override, len(specs))
	for _, key := range keys {
		category, err := syntax.ParseCategory(key)
		if err != nil {
			return nil, fmt.Errorf("syntax: %w", err)
		}
		if _, dup := override[category]; dup {
			return nil, fmt.Errorf("syntax.%s: defined more than once", category)
		}
		style, err := specs[key].compile(string(category))
		if err != nil {
			return nil, err
		}
		override[category] = style
	}
	return override, nil
}

func (s StyleSpec) compile(category string) (syntax.StyleOverride, error) {
	var out syntax.StyleOverride
	if s.Color != nil {
		color, err := toColor(fmt.Sprintf("syntax.%s.color", category), *s.Color)
		if err != nil {
			return syntax.StyleOverride{}, err
		}
		out.Color = &color
	}
	if s.Weight != nil {
		weight, err := syntax.ParseFontWeight(*s.Weight)
		if err != nil {
			return syntax.StyleOverride{}, fmt.Errorf("syntax.%s.weight: %w", category, err)
		}
		out.Weight = &weight
	}
	if s.Underline != nil {
		v := *s.Underline
		out.Underline = &v
	}
	if s.Italic != nil {
		v := *s.Italic
		out.Italic = &v
	}
	for _, raw := range s.Decorations {
		d, err := syntax.ParseDecoration(raw)
		if err != nil {
			return syntax.StyleOverride{}, fmt.Errorf("syntax.%s.decorations: %w", category, err)
		}
		out.Decorations = append(out.Decorations, d)
	}
	return out, nil
}

func toColor(field string, value string) (string, error) {
	color, err := palette.ParseColor(value)
	if err != nil {
		return "", fmt.Errorf("%s: %w", field, err)
	}
	return string(color), nil
}

func parseAppearance(value Appearance) (Appearance, error) {
	switch strings.ToLower(strings.TrimSpace(string(value))) {
	case "":
		return "", nil
	case string(AppearanceDark):
		return AppearanceDark, nil
	case string(AppearanceLight):
		return AppearanceLight, nil
	default:
		return "", fmt.Errorf("metadata.appearance: unknown appearance %q", value)
	}
}
