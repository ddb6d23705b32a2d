package syntax

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/unkn0wn-root/syntaxforge/internal/palette"
)

// RampSource resolves named colour ramps. palette.Set satisfies it.
type RampSource interface {
	Ramp(name string) (palette.Ramp, error)
}

const (
	RampNeutral = "neutral"
	RampBlue    = "blue"
	RampOrange  = "orange"
	RampGreen   = "green"
	RampCyan    = "cyan"
	RampYellow  = "yellow"
)

// RequiredRamps is the minimum ramp set BuildDefault samples.
var RequiredRamps = []string{
	RampNeutral,
	RampBlue,
	RampOrange,
	RampGreen,
	RampCyan,
	RampYellow,
}

const (
	primaryLightness     = 1.0
	commentLightness     = 0.71
	punctuationLightness = 0.86
	accentLightness      = 0.5
	predictiveLightness  = 0.4
	predictiveBlueWeight = 0.45
)

type semanticColors struct {
	primary     lipgloss.Color
	comment     lipgloss.Color
	punctuation lipgloss.Color
	predictive  lipgloss.Color
	emphasis    lipgloss.Color
	str         lipgloss.Color
	function    lipgloss.Color
	typ         lipgloss.Color
	constructor lipgloss.Color
	variant     lipgloss.Color
	property    lipgloss.Color
	enum        lipgloss.Color
	operator    lipgloss.Color
	number      lipgloss.Color
	boolean     lipgloss.Color
	constant    lipgloss.Color
	keyword     lipgloss.Color
	linkURI     lipgloss.Color
	linkText    lipgloss.Color
}

func sampleColors(src RampSource) (semanticColors, error) {
	ramps := make(map[string]palette.Ramp, len(RequiredRamps))
	for _, name := range RequiredRamps {
		r, err := src.Ramp(name)
		if err != nil {
			return semanticColors{}, err
		}
		ramps[name] = r
	}
	at := func(name string, lightness float64) lipgloss.Color {
		return palette.Hex(ramps[name].At(lightness))
	}

	// Predictive must not equal any sampled colour.
	predictive := palette.MixLCH(
		ramps[RampNeutral].At(predictiveLightness),
		ramps[RampBlue].At(predictiveLightness),
		predictiveBlueWeight,
	)

	return semanticColors{
		primary:     at(RampNeutral, primaryLightness),
		comment:     at(RampNeutral, commentLightness),
		punctuation: at(RampNeutral, punctuationLightness),
		predictive:  palette.Hex(predictive),
		emphasis:    at(RampBlue, accentLightness),
		str:         at(RampOrange, accentLightness),
		function:    at(RampYellow, accentLightness),
		typ:         at(RampCyan, accentLightness),
		constructor: at(RampBlue, accentLightness),
		variant:     at(RampBlue, accentLightness),
		property:    at(RampBlue, accentLightness),
		enum:        at(RampOrange, accentLightness),
		operator:    at(RampOrange, accentLightness),
		number:      at(RampGreen, accentLightness),
		boolean:     at(RampGreen, accentLightness),
		constant:    at(RampGreen, accentLightness),
		keyword:     at(RampBlue, accentLightness),
		linkURI:     at(RampGreen, accentLightness),
		linkText:    at(RampOrange, accentLightness),
	}, nil
}

// BuildDefault derives the default profile from a scheme's ramps. It fails
// when one of RequiredRamps is missing. Optional categories without a
// default (function.method, type.builtin, ...) are left out.
func BuildDefault(src RampSource) (Profile, error) {
	if src == nil {
		return nil, fmt.Errorf("build default syntax: no ramp source")
	}
	color, err := sampleColors(src)
	if err != nil {
		return nil, fmt.Errorf("build default syntax: %w", err)
	}

	assigned := map[Category]Style{
		Comment:    {Color: color.comment},
		CommentDoc: {Color: color.comment},
		Primary:    {Color: color.primary},
		Predictive: {Color: color.predictive, Italic: true},

		Emphasis:       {Color: color.emphasis},
		EmphasisStrong: {Color: color.emphasis, Weight: WeightBold},
		Title:          {Color: color.primary, Weight: WeightBold},
		LinkURI:        {Color: color.linkURI, Underline: true},
		LinkText:       {Color: color.linkText, Italic: true},
		TextLiteral:    {Color: color.str},

		Punctuation:           {Color: color.punctuation},
		PunctuationBracket:    {Color: color.punctuation},
		PunctuationDelimiter:  {Color: color.punctuation},
		PunctuationSpecial:    {Color: color.punctuation},
		PunctuationListMarker: {Color: color.punctuation},

		String:              {Color: color.str},
		StringSpecial:       {Color: color.str},
		StringSpecialSymbol: {Color: color.str},
		StringEscape:        {Color: color.comment},
		StringRegex:         {Color: color.str},

		Constructor: {Color: color.constructor},
		Variant:     {Color: color.variant},
		Type:        {Color: color.typ},
		Variable:    {Color: color.primary},
		Label:       {Color: color.keyword},
		Tag:         {Color: color.keyword},
		Attribute:   {Color: color.keyword},
		Property:    {Color: color.property},
		Constant:    {Color: color.constant},
		Keyword:     {Color: color.keyword},
		Enum:        {Color: color.enum},
		Operator:    {Color: color.operator},
		Number:      {Color: color.number},
		Boolean:     {Color: color.boolean},
		Function:    {Color: color.function},
		Preproc:     {Color: color.primary},
		Embedded:    {Color: color.primary},
	}

	profile := make(Profile, len(assigned))
	for _, c := range Categories() {
		s, ok := assigned[c]
		if !ok {
			continue
		}
		style := DefaultStyle()
		style.Color = s.Color
		if s.Weight != "" {
			style.Weight = s.Weight
		}
		style.Underline = s.Underline
		style.Italic = s.Italic
		profile[c] = style
	}

	if err := profile.Validate(); err != nil {
		return nil, fmt.Errorf("build default syntax: %w", err)
	}
	return profile, nil
}
