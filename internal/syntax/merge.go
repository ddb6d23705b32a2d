package syntax

import (
	"fmt"
	"slices"
	"sort"
	"strings"

	"dario.cat/mergo"

	"github.com/unkn0wn-root/syntaxforge/internal/palette"
)

// StyleOverride is a partial style. Nil fields keep the base attribute;
// Decorations are appended to the base list.
type StyleOverride struct {
	Color       *string
	Weight      *FontWeight
	Underline   *bool
	Italic      *bool
	Decorations []Decoration
}

func (o StyleOverride) IsZero() bool {
	return o.Color == nil &&
		o.Weight == nil &&
		o.Underline == nil &&
		o.Italic == nil &&
		len(o.Decorations) == 0
}

// Override is a partial profile supplied by a colour scheme.
type Override map[Category]StyleOverride

func (o Override) Clone() Override {
	if o == nil {
		return nil
	}
	out := make(Override, len(o))
	for c, s := range o {
		if s.Decorations != nil {
			s.Decorations = slices.Clip(slices.Clone(s.Decorations))
		}
		out[c] = s
	}
	return out
}

// Layer returns o with next applied on top, attribute by attribute.
// Decorations from both layers are concatenated.
func (o Override) Layer(next Override) Override {
	out := o.Clone()
	if out == nil && len(next) > 0 {
		out = make(Override, len(next))
	}
	for c, s := range next {
		cur := out[c]
		if s.Color != nil {
			cur.Color = s.Color
		}
		if s.Weight != nil {
			cur.Weight = s.Weight
		}
		if s.Underline != nil {
			cur.Underline = s.Underline
		}
		if s.Italic != nil {
			cur.Italic = s.Italic
		}
		if len(s.Decorations) > 0 {
			cur.Decorations = append(slices.Clip(cur.Decorations), s.Decorations...)
		}
		out[c] = cur
	}
	return out
}

// Merge applies override onto base and returns the result. base is never
// modified; with an empty override base itself is returned. Keys outside the
// known category set are rejected before anything is applied.
func Merge(base Profile, override Override) (Profile, error) {
	if len(override) == 0 {
		return base, nil
	}
	if err := checkOverrideKeys(override); err != nil {
		return nil, err
	}

	merged := base.Clone()
	if merged == nil {
		merged = make(Profile, len(override))
	}
	for _, c := range Categories() {
		o, ok := override[c]
		if !ok || o.IsZero() {
			continue
		}
		current, exists := merged[c]
		if !exists {
			if o.Color == nil {
				return nil, fmt.Errorf("%s: color is required for a category without a default", c)
			}
			current = DefaultStyle()
		}
		next, err := o.apply(current)
		if err != nil {
			return nil, fmt.Errorf("%s.%w", c, err)
		}
		merged[c] = next
	}

	if err := merged.Validate(); err != nil {
		return nil, err
	}
	return merged, nil
}

func checkOverrideKeys(override Override) error {
	var unknown []string
	for c := range override {
		if !c.Known() {
			unknown = append(unknown, fmt.Sprintf("%q", string(c)))
		}
	}
	if len(unknown) == 0 {
		return nil
	}
	sort.Strings(unknown)
	return fmt.Errorf("%w %s", ErrUnknownCategory, strings.Join(unknown, ", "))
}

func (o StyleOverride) apply(base Style) (Style, error) {
	current := base.clone()
	if o.Color != nil {
		color, err := palette.ParseColor(*o.Color)
		if err != nil {
			return Style{}, fmt.Errorf("color: %w", err)
		}
		current.Color = color
	}
	if o.Weight != nil {
		if _, ok := weightValues[*o.Weight]; !ok {
			return Style{}, fmt.Errorf("weight: unknown font weight %q", string(*o.Weight))
		}
		current.Weight = *o.Weight
	}
	if o.Underline != nil {
		current.Underline = *o.Underline
	}
	if o.Italic != nil {
		current.Italic = *o.Italic
	}
	if len(o.Decorations) > 0 {
		for _, d := range o.Decorations {
			if _, err := ParseDecoration(string(d)); err != nil {
				return Style{}, fmt.Errorf("decorations: %w", err)
			}
		}
		combined, err := appendDecorations(current.Decorations, o.Decorations)
		if err != nil {
			return Style{}, fmt.Errorf("decorations: %w", err)
		}
		current.Decorations = combined
	}
	return current, nil
}

type decorationList struct {
	Items []Decoration
}

// appendDecorations returns base followed by extra in a fresh slice.
func appendDecorations(base, extra []Decoration) ([]Decoration, error) {
	dst := decorationList{Items: slices.Clip(slices.Clone(base))}
	if err := mergo.Merge(&dst, decorationList{Items: extra}, mergo.WithAppendSlice); err != nil {
		return nil, err
	}
	return dst.Items, nil
}
