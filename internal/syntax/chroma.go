package syntax

import (
	"fmt"
	"strings"

	"github.com/alecthomas/chroma"
)

// chromaTokens maps categories onto chroma token types. Categories chroma has
// no token for (predictive, link_text, enum, ...) are not exported.
var chromaTokens = []struct {
	category Category
	tokens   []chroma.TokenType
}{
	{Primary, []chroma.TokenType{chroma.Background, chroma.Text, chroma.Name}},
	{Comment, []chroma.TokenType{chroma.Comment}},
	{CommentDoc, []chroma.TokenType{chroma.CommentSpecial, chroma.LiteralStringDoc}},
	{Emphasis, []chroma.TokenType{chroma.GenericEmph}},
	{EmphasisStrong, []chroma.TokenType{chroma.GenericStrong}},
	{Title, []chroma.TokenType{chroma.GenericHeading, chroma.GenericSubheading}},
	{LinkURI, []chroma.TokenType{chroma.GenericUnderline}},
	{Punctuation, []chroma.TokenType{chroma.Punctuation}},
	{String, []chroma.TokenType{chroma.LiteralString}},
	{StringSpecial, []chroma.TokenType{chroma.LiteralStringOther}},
	{StringSpecialSymbol, []chroma.TokenType{chroma.LiteralStringSymbol}},
	{StringEscape, []chroma.TokenType{chroma.LiteralStringEscape}},
	{StringRegex, []chroma.TokenType{chroma.LiteralStringRegex}},
	{Constructor, []chroma.TokenType{chroma.NameClass}},
	{Type, []chroma.TokenType{chroma.KeywordType}},
	{TypeBuiltin, []chroma.TokenType{chroma.NameBuiltinPseudo}},
	{Variable, []chroma.TokenType{chroma.NameVariable}},
	{VariableSpecial, []chroma.TokenType{chroma.NameVariableMagic}},
	{Label, []chroma.TokenType{chroma.NameLabel}},
	{Tag, []chroma.TokenType{chroma.NameTag}},
	{Attribute, []chroma.TokenType{chroma.NameAttribute}},
	{Property, []chroma.TokenType{chroma.NameProperty}},
	{Constant, []chroma.TokenType{chroma.NameConstant}},
	{Keyword, []chroma.TokenType{chroma.Keyword}},
	{Operator, []chroma.TokenType{chroma.Operator}},
	{Number, []chroma.TokenType{chroma.LiteralNumber}},
	{Boolean, []chroma.TokenType{chroma.KeywordConstant}},
	{Function, []chroma.TokenType{chroma.NameFunction}},
	{FunctionBuiltin, []chroma.TokenType{chroma.NameBuiltin}},
	{FunctionMethod, []chroma.TokenType{chroma.NameFunctionMagic}},
	{Preproc, []chroma.TokenType{chroma.CommentPreproc}},
	{Embedded, []chroma.TokenType{chroma.LiteralStringInterpol}},
}

// ChromaEntries converts the profile into chroma style entries.
func ChromaEntries(p Profile) chroma.StyleEntries {
	entries := chroma.StyleEntries{}
	for _, mapping := range chromaTokens {
		style, ok := p[mapping.category]
		if !ok {
			continue
		}
		entry := chromaEntry(style)
		if entry == "" {
			continue
		}
		for _, token := range mapping.tokens {
			if token == chroma.Background {
				if c := colourPart(style); c != "" {
					entries[token] = c
				}
				continue
			}
			entries[token] = entry
		}
	}
	return entries
}

// ChromaStyle builds a named chroma style from the profile.
func ChromaStyle(name string, p Profile) (*chroma.Style, error) {
	style, err := chroma.NewStyle(name, ChromaEntries(p))
	if err != nil {
		return nil, fmt.Errorf("chroma style %q: %w", name, err)
	}
	return style, nil
}

func colourPart(s Style) string {
	c := strings.TrimSpace(string(s.Color))
	if !strings.HasPrefix(c, "#") {
		return ""
	}
	return strings.ToLower(c)
}

func chromaEntry(s Style) string {
	parts := make([]string, 0, 4)
	if c := colourPart(s); c != "" {
		parts = append(parts, c)
	}
	if s.Weight.Value() >= WeightSemibold.Value() {
		parts = append(parts, "bold")
	}
	if s.Italic {
		parts = append(parts, "italic")
	}
	if s.Underline {
		parts = append(parts, "underline")
	}
	return strings.Join(parts, " ")
}
