package syntax

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func defaultProfile(t *testing.T) Profile {
	t.Helper()
	profile, err := BuildDefault(referenceRamps(t))
	if err != nil {
		t.Fatalf("BuildDefault returned error: %v", err)
	}
	return profile
}

func TestMergeWithoutOverrideReturnsInput(t *testing.T) {
	base := defaultProfile(t)
	for name, override := range map[string]Override{"nil": nil, "empty": {}} {
		merged, err := Merge(base, override)
		if err != nil {
			t.Fatalf("%s override: Merge returned error: %v", name, err)
		}
		if reflect.ValueOf(merged).Pointer() != reflect.ValueOf(base).Pointer() {
			t.Errorf("%s override: expected the input profile back", name)
		}
		if diff := cmp.Diff(base, merged); diff != "" {
			t.Errorf("%s override: profile changed (-want +got):\n%s", name, diff)
		}
	}
}

func TestMergeOverrideColourWins(t *testing.T) {
	base := defaultProfile(t)
	merged, err := Merge(base, Override{
		Keyword: {Color: strPtr(" #FF00AA ")},
	})
	if err != nil {
		t.Fatalf("Merge returned error: %v", err)
	}
	if got := merged[Keyword].Color; got != "#FF00AA" {
		t.Fatalf("expected keyword override #FF00AA, got %q", got)
	}
}

func TestMergeNormalisesOverrideColour(t *testing.T) {
	merged, err := Merge(defaultProfile(t), Override{Keyword: {Color: strPtr("#f0a")}})
	if err != nil {
		t.Fatalf("Merge returned error: %v", err)
	}
	if got := merged[Keyword].Color; got != "#FF00AA" {
		t.Fatalf("expected normalised colour #FF00AA, got %q", got)
	}
}

func TestMergePartialOverrideKeepsSiblingAttributes(t *testing.T) {
	base := defaultProfile(t)
	merged, err := Merge(base, Override{
		EmphasisStrong: {Color: strPtr("#101010")},
		LinkURI:        {Italic: boolPtr(true)},
	})
	if err != nil {
		t.Fatalf("Merge returned error: %v", err)
	}

	strong := merged[EmphasisStrong]
	if strong.Weight != WeightBold {
		t.Errorf("expected emphasis.strong to stay bold, got %q", strong.Weight)
	}
	if strong.Italic != base[EmphasisStrong].Italic || strong.Underline != base[EmphasisStrong].Underline {
		t.Errorf("expected emphasis.strong flags to be kept, got %+v", strong)
	}

	link := merged[LinkURI]
	if link.Color != base[LinkURI].Color {
		t.Errorf("expected link_uri colour %q, got %q", base[LinkURI].Color, link.Color)
	}
	if !link.Underline || !link.Italic {
		t.Errorf("expected link_uri underline and italic, got %+v", link)
	}
}

func TestMergeCopiesUntouchedCategories(t *testing.T) {
	base := defaultProfile(t)
	merged, err := Merge(base, Override{Comment: {Italic: boolPtr(true)}})
	if err != nil {
		t.Fatalf("Merge returned error: %v", err)
	}
	for c, want := range base {
		if c == Comment {
			continue
		}
		if diff := cmp.Diff(want, merged[c]); diff != "" {
			t.Errorf("%s changed (-want +got):\n%s", c, diff)
		}
	}
	if len(merged) != len(base) {
		t.Errorf("expected %d categories, got %d", len(base), len(merged))
	}
}

func TestMergeDoesNotModifyInput(t *testing.T) {
	base := defaultProfile(t)
	base[Keyword] = Style{
		Color:       base[Keyword].Color,
		Weight:      WeightNormal,
		Decorations: make([]Decoration, 1, 8),
	}
	base[Keyword].Decorations[0] = DecorationFaint
	snapshot := base.Clone()

	merged, err := Merge(base, Override{
		Keyword: {
			Color:       strPtr("#000001"),
			Weight:      weightPtr(WeightBlack),
			Decorations: []Decoration{DecorationBlink},
		},
		Comment:        {Underline: boolPtr(true)},
		FunctionMethod: {Color: strPtr("#abcdef")},
	})
	if err != nil {
		t.Fatalf("Merge returned error: %v", err)
	}
	if diff := cmp.Diff(snapshot, base); diff != "" {
		t.Fatalf("input profile was modified (-want +got):\n%s", diff)
	}
	if spare := base[Keyword].Decorations[:2]; spare[1] == DecorationBlink {
		t.Fatalf("merge wrote into the input's decoration backing array")
	}
	if merged[Keyword].Weight != WeightBlack {
		t.Fatalf("expected merged weight black, got %q", merged[Keyword].Weight)
	}
}

func TestMergeAppendsDecorations(t *testing.T) {
	base := defaultProfile(t)
	first, err := Merge(base, Override{
		Comment: {Decorations: []Decoration{DecorationFaint}},
	})
	if err != nil {
		t.Fatalf("Merge returned error: %v", err)
	}
	second, err := Merge(first, Override{
		Comment: {Decorations: []Decoration{DecorationStrikethrough, DecorationFaint}},
	})
	if err != nil {
		t.Fatalf("Merge returned error: %v", err)
	}

	want := []Decoration{DecorationFaint, DecorationStrikethrough, DecorationFaint}
	if diff := cmp.Diff(want, second[Comment].Decorations); diff != "" {
		t.Fatalf("decorations mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]Decoration{DecorationFaint}, first[Comment].Decorations); diff != "" {
		t.Fatalf("first merge result changed (-want +got):\n%s", diff)
	}
}

func TestMergeAddsOptionalCategoryWithColour(t *testing.T) {
	base := defaultProfile(t)
	merged, err := Merge(base, Override{
		FunctionBuiltin: {Color: strPtr("#56B6C2"), Weight: weightPtr(WeightSemibold)},
	})
	if err != nil {
		t.Fatalf("Merge returned error: %v", err)
	}
	got, ok := merged[FunctionBuiltin]
	if !ok {
		t.Fatalf("expected function.builtin to be added")
	}
	if got.Color != "#56B6C2" || got.Weight != WeightSemibold || got.Italic || got.Underline {
		t.Fatalf("unexpected function.builtin style %+v", got)
	}
	if _, ok := base[FunctionBuiltin]; ok {
		t.Fatalf("input profile gained function.builtin")
	}
}

func TestMergeRejectsOptionalCategoryWithoutColour(t *testing.T) {
	_, err := Merge(defaultProfile(t), Override{
		FunctionMethod: {Italic: boolPtr(true)},
	})
	if err == nil {
		t.Fatalf("expected error for uncoloured optional category")
	}
	if !strings.HasPrefix(err.Error(), "function.method") {
		t.Fatalf("expected error to name function.method, got %q", err.Error())
	}
}

func TestMergeSkipsEmptyEntries(t *testing.T) {
	base := defaultProfile(t)
	merged, err := Merge(base, Override{
		FunctionMethod: {},
		Keyword:        {Decorations: []Decoration{}},
	})
	if err != nil {
		t.Fatalf("Merge returned error: %v", err)
	}
	if _, ok := merged[FunctionMethod]; ok {
		t.Fatalf("expected empty entry not to add function.method")
	}
	if diff := cmp.Diff(base, merged); diff != "" {
		t.Fatalf("profile changed (-want +got):\n%s", diff)
	}
}

func TestMergeRejectsUnknownCategory(t *testing.T) {
	base := defaultProfile(t)
	_, err := Merge(base, Override{
		Keyword:              {Color: strPtr("#111111")},
		Category("keywords"): {Color: strPtr("#222222")},
	})
	if !errors.Is(err, ErrUnknownCategory) {
		t.Fatalf("expected ErrUnknownCategory, got %v", err)
	}
	if !strings.Contains(err.Error(), `"keywords"`) {
		t.Fatalf("expected error to name the unknown key, got %q", err.Error())
	}
	if base[Keyword].Color == "#111111" {
		t.Fatalf("known categories must not be applied when the override is rejected")
	}
}

func TestMergeRejectsInvalidAttributes(t *testing.T) {
	base := defaultProfile(t)
	cases := []struct {
		name     string
		override Override
		want     string
	}{
		{
			name:     "empty colour",
			override: Override{String: {Color: strPtr("  ")}},
			want:     "string.color",
		},
		{
			name:     "unparseable colour",
			override: Override{Keyword: {Color: strPtr("banana")}},
			want:     `keyword.color: invalid colour "banana"`,
		},
		{
			name:     "unknown weight",
			override: Override{Title: {Weight: weightPtr(FontWeight("heavy"))}},
			want:     "title.weight",
		},
		{
			name:     "unknown decoration",
			override: Override{Tag: {Decorations: []Decoration{"sparkle"}}},
			want:     "tag.decorations",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Merge(base, tc.override)
			if err == nil {
				t.Fatalf("expected error")
			}
			if !strings.HasPrefix(err.Error(), tc.want) {
				t.Fatalf("expected error prefixed %q, got %q", tc.want, err.Error())
			}
		})
	}
}

func TestOverrideLayerCombinesAttributes(t *testing.T) {
	parent := Override{
		Comment: {Color: strPtr("#111111"), Italic: boolPtr(true), Decorations: []Decoration{DecorationFaint}},
		Keyword: {Weight: weightPtr(WeightBold)},
	}
	child := Override{
		Comment: {Italic: boolPtr(false), Decorations: []Decoration{DecorationBlink}},
		String:  {Color: strPtr("#222222")},
	}

	layered := parent.Layer(child)

	comment := layered[Comment]
	if comment.Color == nil || *comment.Color != "#111111" {
		t.Errorf("expected parent comment colour to survive")
	}
	if comment.Italic == nil || *comment.Italic {
		t.Errorf("expected child italic=false to win")
	}
	if diff := cmp.Diff([]Decoration{DecorationFaint, DecorationBlink}, comment.Decorations); diff != "" {
		t.Errorf("decorations mismatch (-want +got):\n%s", diff)
	}
	if _, ok := layered[Keyword]; !ok {
		t.Errorf("expected parent keyword entry")
	}
	if _, ok := layered[String]; !ok {
		t.Errorf("expected child string entry")
	}
	if len(parent[Comment].Decorations) != 1 {
		t.Errorf("parent override was modified")
	}
}
