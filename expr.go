// SPDX-License-Identifier: MIT

// Package exprtree recovers a generic expression tree from the textual rendering of structured
// data, e.g. the output of a `show`-like serializer.
//
// The tree holds nested groups, quoted literals, numbers & free-form text; laying it out is left
// to the consumer.
package exprtree

type (
	// Expr defines a parsed expression node.
	//
	// The set of implementations is closed: Parens, Brackets, Braces, StringLit, CharLit,
	// NumberLit & Other.
	Expr interface {
		// Kind obtains the variant of the Expr.
		Kind() Kind

		expr()
	}

	// Kind identifies an Expr variant.
	Kind int

	// Group is a sequence of juxtaposed sibling expressions found between commas.
	Group []Expr

	// CommaSeparated holds the groups found within a pair of delimiters.
	CommaSeparated []Group

	// Parens holds the content of `(…)`.
	Parens struct{ Groups CommaSeparated }

	// Brackets holds the content of `[…]`.
	Brackets struct{ Groups CommaSeparated }

	// Braces holds the content of `{…}`.
	Braces struct{ Groups CommaSeparated }

	// StringLit holds the raw text of a `"…"` literal; escapes are not decoded.
	StringLit struct{ Text string }

	// CharLit holds the raw text of a `'…'` literal; escapes are not decoded.
	CharLit struct{ Text string }

	// NumberLit holds the raw text of a numeric literal, including any `0x` prefix.
	NumberLit struct{ Text string }

	// Other holds a run of free-form text.
	Other struct{ Text string }
)

// Expr kinds.
const (
	_ Kind = iota // Consume 0 to start actual numbering at 1.
	KindParens
	KindBrackets
	KindBraces
	KindStringLit
	KindCharLit
	KindNumberLit
	KindOther
)

var kindNames = [...]string{
	KindParens:    "Parens",
	KindBrackets:  "Brackets",
	KindBraces:    "Braces",
	KindStringLit: "StringLit",
	KindCharLit:   "CharLit",
	KindNumberLit: "NumberLit",
	KindOther:     "Other",
}

func (k Kind) String() string {
	if k < KindParens || k > KindOther {
		return "Unknown"
	}

	return kindNames[k]
}

func (Parens) Kind() Kind    { return KindParens }
func (Brackets) Kind() Kind  { return KindBrackets }
func (Braces) Kind() Kind    { return KindBraces }
func (StringLit) Kind() Kind { return KindStringLit }
func (CharLit) Kind() Kind   { return KindCharLit }
func (NumberLit) Kind() Kind { return KindNumberLit }
func (Other) Kind() Kind     { return KindOther }

func (Parens) expr()    {}
func (Brackets) expr()  {}
func (Braces) expr()    {}
func (StringLit) expr() {}
func (CharLit) expr()   {}
func (NumberLit) expr() {}
func (Other) expr()     {}

// Children lists the immediate sub-expressions of an Expr, in source order.
//
// Literals & Other have none.
func Children(e Expr) (children Group) {
	groups, _, _, ok := delimiters(e)
	if !ok {
		return
	}

	for _, group := range groups {
		children = append(children, group...)
	}

	return
}

// Text obtains the payload of a leaf Expr; nested groups yield an empty string.
func Text(e Expr) string {
	switch v := e.(type) {
	case StringLit:
		return v.Text
	case CharLit:
		return v.Text
	case NumberLit:
		return v.Text
	case Other:
		return v.Text
	}

	return ""
}

// delimiters obtains the opening & closing runes of a nested Expr.
func delimiters(e Expr) (groups CommaSeparated, open, end rune, ok bool) {
	switch v := e.(type) {
	case Parens:
		return v.Groups, '(', ')', true
	case Brackets:
		return v.Groups, '[', ']', true
	case Braces:
		return v.Groups, '{', '}', true
	}

	return
}
