package palette

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

var ErrMissingRamp = errors.New("missing ramp")

// Ramp maps a lightness scalar in [0,1] to a concrete colour.
type Ramp interface {
	At(lightness float64) colorful.Color
}

type RampFunc func(lightness float64) colorful.Color

func (f RampFunc) At(lightness float64) colorful.Color {
	return f(lightness)
}

type stopRamp struct {
	stops []colorful.Color
}

// NewRamp interpolates evenly spaced stops in CIE-Lab. A single stop is
// expanded with KeyRamp. Sampling exactly on a stop returns that stop.
func NewRamp(stops ...colorful.Color) Ramp {
	switch len(stops) {
	case 0:
		return stopRamp{stops: []colorful.Color{{}}}
	case 1:
		return KeyRamp(stops[0])
	}
	return stopRamp{stops: append([]colorful.Color(nil), stops...)}
}

func (r stopRamp) At(lightness float64) colorful.Color {
	last := len(r.stops) - 1
	if lightness <= 0 || last == 0 {
		return r.stops[0]
	}
	if lightness >= 1 {
		return r.stops[last]
	}
	pos := lightness * float64(last)
	idx := int(pos)
	frac := pos - float64(idx)
	if frac == 0 {
		return r.stops[idx]
	}
	return r.stops[idx].BlendLab(r.stops[idx+1], frac).Clamped()
}

var (
	black = colorful.Color{R: 0, G: 0, B: 0}
	white = colorful.Color{R: 1, G: 1, B: 1}
)

// KeyRamp builds a dark-to-light ramp that passes through key at 0.5.
func KeyRamp(key colorful.Color) Ramp {
	return stopRamp{stops: []colorful.Color{
		key.BlendLab(black, 0.8).Clamped(),
		key,
		key.BlendLab(white, 0.8).Clamped(),
	}}
}

// ParseStops parses hex colour stops ("#rgb" or "#rrggbb").
func ParseStops(values []string) ([]colorful.Color, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("ramp needs at least one colour stop")
	}
	stops := make([]colorful.Color, 0, len(values))
	for i, value := range values {
		c, err := parseHex(value)
		if err != nil {
			return nil, fmt.Errorf("stop %d: %w", i, err)
		}
		stops = append(stops, c)
	}
	return stops, nil
}

// ParseColor validates a hex colour and returns it as upper-case #RRGGBB.
func ParseColor(value string) (lipgloss.Color, error) {
	c, err := parseHex(value)
	if err != nil {
		return "", err
	}
	return Hex(c), nil
}

func parseHex(value string) (colorful.Color, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return colorful.Color{}, fmt.Errorf("colour value may not be empty")
	}
	c, err := colorful.Hex(trimmed)
	if err != nil {
		return colorful.Color{}, fmt.Errorf("invalid colour %q", value)
	}
	return c, nil
}

// achromatic is the HCL chroma below which a colour's hue is meaningless.
const achromatic = 1e-4

// MixLCH blends a towards b in the HCL (LCH) space. weight is the share of b.
// A grey has no hue of its own and takes the other colour's.
func MixLCH(a, b colorful.Color, weight float64) colorful.Color {
	switch {
	case weight <= 0:
		return a
	case weight >= 1:
		return b
	}
	h1, c1, l1 := a.Hcl()
	h2, c2, l2 := b.Hcl()
	if c1 < achromatic {
		h1 = h2
	}
	if c2 < achromatic {
		h2 = h1
	}
	return colorful.Hcl(
		lerpHue(h1, h2, weight),
		c1+weight*(c2-c1),
		l1+weight*(l2-l1),
	).Clamped()
}

// lerpHue interpolates along the shorter arc.
func lerpHue(from, to, t float64) float64 {
	delta := math.Mod(to-from+540, 360) - 180
	return math.Mod(from+t*delta+360, 360)
}

// Hex renders c as an upper-case #RRGGBB colour.
func Hex(c colorful.Color) lipgloss.Color {
	return lipgloss.Color(strings.ToUpper(c.Clamped().Hex()))
}

// Set is a named collection of ramps.
type Set map[string]Ramp

func (s Set) Ramp(name string) (Ramp, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if r, ok := s[key]; ok && r != nil {
		return r, nil
	}
	return nil, fmt.Errorf("%w %q", ErrMissingRamp, key)
}

func (s Set) Names() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (s Set) Clone() Set {
	if s == nil {
		return nil
	}
	out := make(Set, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}
