package syntax

import (
	"errors"
	"fmt"
	"strings"

	"github.com/samber/lo"
)

var ErrUnknownCategory = errors.New("unknown syntax category")

// Category names a style slot. The dotted names are flat keys; "string.escape"
// does not inherit from "string".
type Category string

const (
	Comment                   Category = "comment"
	CommentDoc                Category = "comment.doc"
	Primary                   Category = "primary"
	Predictive                Category = "predictive"
	Emphasis                  Category = "emphasis"
	EmphasisStrong            Category = "emphasis.strong"
	Title                     Category = "title"
	LinkURI                   Category = "link_uri"
	LinkText                  Category = "link_text"
	TextLiteral               Category = "text.literal"
	Punctuation               Category = "punctuation"
	PunctuationBracket        Category = "punctuation.bracket"
	PunctuationDelimiter      Category = "punctuation.delimiter"
	PunctuationSpecial        Category = "punctuation.special"
	PunctuationListMarker     Category = "punctuation.list_marker"
	String                    Category = "string"
	StringSpecial             Category = "string.special"
	StringSpecialSymbol       Category = "string.special.symbol"
	StringEscape              Category = "string.escape"
	StringRegex               Category = "string.regex"
	Constructor               Category = "constructor"
	Variant                   Category = "variant"
	Type                      Category = "type"
	TypeBuiltin               Category = "type.builtin"
	Variable                  Category = "variable"
	VariableSpecial           Category = "variable.special"
	Label                     Category = "label"
	Tag                       Category = "tag"
	Attribute                 Category = "attribute"
	Property                  Category = "property"
	Constant                  Category = "constant"
	ConstantBuiltin           Category = "constant.builtin"
	Keyword                   Category = "keyword"
	Enum                      Category = "enum"
	Operator                  Category = "operator"
	Number                    Category = "number"
	Boolean                   Category = "boolean"
	Function                  Category = "function"
	FunctionBuiltin           Category = "function.builtin"
	FunctionMethod            Category = "function.method"
	FunctionDefinition        Category = "function.definition"
	FunctionSpecialDefinition Category = "function.special.definition"
	Preproc                   Category = "preproc"
	Embedded                  Category = "embedded"
)

type categoryInfo struct {
	category Category
	optional bool
}

// categoryTable is the closed category set in display order. The builder,
// merger and exporters all iterate it.
var categoryTable = []categoryInfo{
	{category: Comment},
	{category: CommentDoc},
	{category: Primary},
	{category: Predictive},
	{category: Emphasis},
	{category: EmphasisStrong},
	{category: Title},
	{category: LinkURI},
	{category: LinkText},
	{category: TextLiteral},
	{category: Punctuation},
	{category: PunctuationBracket},
	{category: PunctuationDelimiter},
	{category: PunctuationSpecial},
	{category: PunctuationListMarker},
	{category: String},
	{category: StringSpecial},
	{category: StringSpecialSymbol, optional: true},
	{category: StringEscape, optional: true},
	{category: StringRegex, optional: true},
	{category: Constructor},
	{category: Variant},
	{category: Type},
	{category: TypeBuiltin, optional: true},
	{category: Variable},
	{category: VariableSpecial, optional: true},
	{category: Label},
	{category: Tag},
	{category: Attribute},
	{category: Property},
	{category: Constant},
	{category: ConstantBuiltin, optional: true},
	{category: Keyword},
	{category: Enum},
	{category: Operator},
	{category: Number},
	{category: Boolean},
	{category: Function},
	{category: FunctionBuiltin, optional: true},
	{category: FunctionMethod, optional: true},
	{category: FunctionDefinition, optional: true},
	{category: FunctionSpecialDefinition, optional: true},
	{category: Preproc},
	{category: Embedded},
}

var categoryIndex = func() map[Category]categoryInfo {
	index := make(map[Category]categoryInfo, len(categoryTable))
	for _, info := range categoryTable {
		index[info.category] = info
	}
	return index
}()

// Categories returns every known category in display order.
func Categories() []Category {
	return lo.Map(categoryTable, func(info categoryInfo, _ int) Category {
		return info.category
	})
}

// RequiredCategories returns the categories every profile must colour.
func RequiredCategories() []Category {
	required := lo.Filter(categoryTable, func(info categoryInfo, _ int) bool {
		return !info.optional
	})
	return lo.Map(required, func(info categoryInfo, _ int) Category {
		return info.category
	})
}

func (c Category) Known() bool {
	_, ok := categoryIndex[c]
	return ok
}

func (c Category) Required() bool {
	info, ok := categoryIndex[c]
	return ok && !info.optional
}

func (c Category) String() string {
	return string(c)
}

func ParseCategory(name string) (Category, error) {
	c := Category(strings.TrimSpace(name))
	if !c.Known() {
		return "", fmt.Errorf("%w %q", ErrUnknownCategory, name)
	}
	return c, nil
}
