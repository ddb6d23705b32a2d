package syntax

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type FontWeight string

const (
	WeightThin       FontWeight = "thin"
	WeightExtraLight FontWeight = "extra_light"
	WeightLight      FontWeight = "light"
	WeightNormal     FontWeight = "normal"
	WeightMedium     FontWeight = "medium"
	WeightSemibold   FontWeight = "semibold"
	WeightBold       FontWeight = "bold"
	WeightExtraBold  FontWeight = "extra_bold"
	WeightBlack      FontWeight = "black"
)

var weightValues = map[FontWeight]int{
	WeightThin:       100,
	WeightExtraLight: 200,
	WeightLight:      300,
	WeightNormal:     400,
	WeightMedium:     500,
	WeightSemibold:   600,
	WeightBold:       700,
	WeightExtraBold:  800,
	WeightBlack:      900,
}

// Value returns the CSS numeric weight. Unset weights count as normal.
func (w FontWeight) Value() int {
	if v, ok := weightValues[w]; ok {
		return v
	}
	return weightValues[WeightNormal]
}

// ParseFontWeight accepts weight names ("bold", "extra-bold") and the numeric
// values 100 through 900.
func ParseFontWeight(value string) (FontWeight, error) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	normalized = strings.ReplaceAll(normalized, "-", "_")
	if normalized == "" {
		return "", fmt.Errorf("weight may not be empty")
	}
	if n, err := strconv.Atoi(normalized); err == nil {
		for name, v := range weightValues {
			if v == n {
				return name, nil
			}
		}
		return "", fmt.Errorf("unknown font weight %d", n)
	}
	switch normalized {
	case "regular":
		return WeightNormal, nil
	case "semi_bold":
		return WeightSemibold, nil
	case "extralight":
		return WeightExtraLight, nil
	case "extrabold":
		return WeightExtraBold, nil
	}
	w := FontWeight(normalized)
	if _, ok := weightValues[w]; !ok {
		return "", fmt.Errorf("unknown font weight %q", value)
	}
	return w, nil
}

type Decoration string

const (
	DecorationStrikethrough Decoration = "strikethrough"
	DecorationFaint         Decoration = "faint"
	DecorationReverse       Decoration = "reverse"
	DecorationBlink         Decoration = "blink"
)

func ParseDecoration(value string) (Decoration, error) {
	d := Decoration(strings.ToLower(strings.TrimSpace(value)))
	switch d {
	case DecorationStrikethrough, DecorationFaint, DecorationReverse, DecorationBlink:
		return d, nil
	default:
		return "", fmt.Errorf("unknown decoration %q", value)
	}
}

type Style struct {
	Color       lipgloss.Color `json:"color"                 toml:"color"                 yaml:"color"`
	Weight      FontWeight     `json:"weight"                toml:"weight"                yaml:"weight"`
	Underline   bool           `json:"underline"             toml:"underline"             yaml:"underline"`
	Italic      bool           `json:"italic"                toml:"italic"                yaml:"italic"`
	Decorations []Decoration   `json:"decorations,omitempty" toml:"decorations,omitempty" yaml:"decorations,omitempty"`
}

// DefaultStyle is the attribute baseline every category starts from.
func DefaultStyle() Style {
	return Style{Weight: WeightNormal}
}

func (s Style) HasColor() bool {
	return strings.TrimSpace(string(s.Color)) != ""
}

func (s Style) HasDecoration(d Decoration) bool {
	return slices.Contains(s.Decorations, d)
}

func (s Style) clone() Style {
	out := s
	if s.Decorations != nil {
		out.Decorations = slices.Clip(slices.Clone(s.Decorations))
	}
	return out
}

func (s Style) Equal(other Style) bool {
	return s.Color == other.Color &&
		s.Weight.Value() == other.Weight.Value() &&
		s.Underline == other.Underline &&
		s.Italic == other.Italic &&
		slices.Equal(s.Decorations, other.Decorations)
}

// Apply layers the style's attributes onto style. Weights from semibold
// upwards become bold; thin and light weights become faint.
func (s Style) Apply(style lipgloss.Style) lipgloss.Style {
	if s.HasColor() {
		style = style.Foreground(s.Color)
	}
	weight := s.Weight.Value()
	if weight >= weightValues[WeightSemibold] {
		style = style.Bold(true)
	}
	if weight <= weightValues[WeightLight] {
		style = style.Faint(true)
	}
	if s.Italic {
		style = style.Italic(true)
	}
	if s.Underline {
		style = style.Underline(true)
	}
	for _, d := range s.Decorations {
		switch d {
		case DecorationStrikethrough:
			style = style.Strikethrough(true)
		case DecorationFaint:
			style = style.Faint(true)
		case DecorationReverse:
			style = style.Reverse(true)
		case DecorationBlink:
			style = style.Blink(true)
		}
	}
	return style
}
