package syntax

import (
	"testing"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/unkn0wn-root/syntaxforge/internal/palette"
)

type testScheme struct {
	palette.Set
	override Override
}

func (s testScheme) SyntaxOverride() Override {
	return s.override
}

func strPtr(value string) *string {
	return &value
}

func boolPtr(value bool) *bool {
	return &value
}

func weightPtr(value FontWeight) *FontWeight {
	return &value
}

func hexColor(t *testing.T, value string) colorful.Color {
	t.Helper()
	c, err := colorful.Hex(value)
	if err != nil {
		t.Fatalf("parse %q: %v", value, err)
	}
	return c
}

// referenceRamps has a white top for neutral and #3B82F6 at blue(0.5).
func referenceRamps(t *testing.T) palette.Set {
	t.Helper()
	return palette.Set{
		RampNeutral: palette.NewRamp(hexColor(t, "#0B0C10"), hexColor(t, "#FFFFFF")),
		RampBlue:    palette.NewRamp(hexColor(t, "#3B82F6")),
		RampOrange:  palette.NewRamp(hexColor(t, "#F97316")),
		RampGreen:   palette.NewRamp(hexColor(t, "#22C55E")),
		RampCyan:    palette.NewRamp(hexColor(t, "#06B6D4")),
		RampYellow:  palette.NewRamp(hexColor(t, "#EAB308")),
	}
}

func TestBuildWithoutOverrideMatchesDefault(t *testing.T) {
	ramps := referenceRamps(t)
	defaults, err := BuildDefault(ramps)
	if err != nil {
		t.Fatalf("BuildDefault returned error: %v", err)
	}
	built, err := Build(testScheme{Set: ramps})
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}
	if !built.Equal(defaults) {
		t.Fatalf("expected Build without override to equal the default profile")
	}
}

func TestBuildAppliesSchemeOverride(t *testing.T) {
	scheme := testScheme{
		Set: referenceRamps(t),
		override: Override{
			Comment: {Italic: boolPtr(true)},
		},
	}
	profile, err := Build(scheme)
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}
	defaults, err := BuildDefault(scheme)
	if err != nil {
		t.Fatalf("BuildDefault returned error: %v", err)
	}

	comment := profile[Comment]
	if comment.Color != defaults[Comment].Color {
		t.Errorf("expected comment colour %q to be kept, got %q", defaults[Comment].Color, comment.Color)
	}
	if !comment.Italic {
		t.Errorf("expected comment italic override")
	}
}

func TestBuildRejectsNilScheme(t *testing.T) {
	if _, err := Build(nil); err == nil {
		t.Fatalf("expected error for nil scheme")
	}
}
