package syntax

import (
	"errors"
	"fmt"
	"strings"
)

var ErrIncomplete = errors.New("syntax profile incomplete")

// Profile maps categories to resolved styles. Optional categories are absent
// until a default or override supplies them.
type Profile map[Category]Style

func (p Profile) Get(c Category) (Style, bool) {
	s, ok := p[c]
	return s, ok
}

func (p Profile) Clone() Profile {
	if p == nil {
		return nil
	}
	out := make(Profile, len(p))
	for c, s := range p {
		out[c] = s.clone()
	}
	return out
}

// Categories returns the categories present in p in display order.
func (p Profile) Categories() []Category {
	out := make([]Category, 0, len(p))
	for _, c := range Categories() {
		if _, ok := p[c]; ok {
			out = append(out, c)
		}
	}
	return out
}

// Missing lists required categories without a colour, plus any present
// optional category that lost its colour.
func (p Profile) Missing() []Category {
	var missing []Category
	for _, c := range Categories() {
		s, ok := p[c]
		if !ok {
			if c.Required() {
				missing = append(missing, c)
			}
			continue
		}
		if !s.HasColor() {
			missing = append(missing, c)
		}
	}
	return missing
}

func (p Profile) Validate() error {
	for c := range p {
		if !c.Known() {
			return fmt.Errorf("%w %q", ErrUnknownCategory, string(c))
		}
	}
	missing := p.Missing()
	if len(missing) == 0 {
		return nil
	}
	names := make([]string, len(missing))
	for i, c := range missing {
		names[i] = string(c)
	}
	return fmt.Errorf("%w: no colour for %s", ErrIncomplete, strings.Join(names, ", "))
}

func (p Profile) Equal(other Profile) bool {
	if len(p) != len(other) {
		return false
	}
	for c, s := range p {
		o, ok := other[c]
		if !ok || !s.Equal(o) {
			return false
		}
	}
	return true
}
