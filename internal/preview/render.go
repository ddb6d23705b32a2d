// Package preview prints terminal swatches for a syntax profile.
package preview

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
	"github.com/samber/lo"

	"github.com/unkn0wn-root/syntaxforge/internal/syntax"
)

const DefaultSample = "The quick brown fox 0123"

type Options struct {
	// Profile forces a colour profile. Nil detects it from the writer.
	Profile *termenv.Profile
	Sample  string
	// Only limits the swatches to these categories. Empty means all present.
	Only []syntax.Category
}

// Render writes one line per category present in profile: the category name,
// a styled sample and the style's attributes.
func Render(w io.Writer, profile syntax.Profile, opts Options) error {
	r := lipgloss.NewRenderer(w)
	if opts.Profile != nil {
		r.SetColorProfile(*opts.Profile)
	}
	sample := opts.Sample
	if strings.TrimSpace(sample) == "" {
		sample = DefaultSample
	}

	categories := profile.Categories()
	if len(opts.Only) > 0 {
		categories = lo.Filter(categories, func(c syntax.Category, _ int) bool {
			return lo.Contains(opts.Only, c)
		})
	}
	if len(categories) == 0 {
		return nil
	}

	width := lo.Max(lo.Map(categories, func(c syntax.Category, _ int) int {
		return ansi.StringWidth(c.String())
	}))
	nameStyle := r.NewStyle().Width(width + 2)
	metaStyle := r.NewStyle().Faint(true)

	for _, c := range categories {
		style, _ := profile.Get(c)
		line := nameStyle.Render(c.String()) +
			style.Apply(r.NewStyle()).Render(sample) + "  " +
			metaStyle.Render(describe(style))
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func describe(s syntax.Style) string {
	parts := []string{string(s.Color), string(s.Weight)}
	if s.Italic {
		parts = append(parts, "italic")
	}
	if s.Underline {
		parts = append(parts, "underline")
	}
	for _, d := range s.Decorations {
		parts = append(parts, string(d))
	}
	return strings.Join(parts, " ")
}

// ParseColorProfile maps a user-facing name to a termenv profile. "auto" and
// the empty string return nil so the caller detects the profile instead.
func ParseColorProfile(name string) (*termenv.Profile, error) {
	var p termenv.Profile
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "auto":
		return nil, nil
	case "truecolor", "24bit":
		p = termenv.TrueColor
	case "256", "ansi256":
		p = termenv.ANSI256
	case "16", "ansi":
		p = termenv.ANSI
	case "none", "ascii":
		p = termenv.Ascii
	default:
		return nil, fmt.Errorf("unknown colour profile %q", name)
	}
	return &p, nil
}
