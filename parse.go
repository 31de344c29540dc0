// SPDX-License-Identifier: MIT
package exprtree

import (
	"unicode/utf8"

	"gitlab.com/fisherprime/exprtree/scanner"
)

// parser performs the recursive descent.
//
// Each step takes the unparsed source & returns its result alongside the remainder; the only
// state is the nesting depth used to enforce a limit.
type parser struct {
	// maxDepth limits the nesting of groups, <1 disables the limit.
	maxDepth int
	depth    int

	// exceeded is set once maxDepth is reached; parsing stops with an empty remainder.
	exceeded bool
}

// Parse transforms a rendered value into its top-level expressions.
//
// Malformed input is never rejected; an unconsumed remainder (e.g. a stray closing delimiter) is
// discarded.
func Parse(src string) Group {
	exprs, _ := ParseExprs(src)
	return exprs
}

// ParseExpr parses a single expression, returning it with the unconsumed remainder.
//
// An empty source yields a nil Expr.
func ParseExpr(s string) (Expr, string) { return new(parser).expr(s) }

// ParseExprs parses a sequence of sibling expressions up to a closing delimiter, a comma or the end
// of the source; the stopping character is left in the remainder.
func ParseExprs(s string) (Group, string) { return new(parser).exprs(s) }

// ParseCommaSeparated parses the content of a group opened before s & closed by end, returning
// the remainder after end.
//
// A closing delimiter other than end stops the parse without being consumed.
func ParseCommaSeparated(end rune, s string) (CommaSeparated, string) {
	return new(parser).commaSeparated(end, s)
}

func (p *parser) expr(s string) (e Expr, rest string) {
	sc := scanner.New(s)

	r := sc.Next()
	switch {
	case r == scanner.EOF:
		return
	case r == '(':
		groups, rest := p.commaSeparated(')', sc.Rest())
		return Parens{Groups: groups}, rest
	case r == '[':
		groups, rest := p.commaSeparated(']', sc.Rest())
		return Brackets{Groups: groups}, rest
	case r == '{':
		groups, rest := p.commaSeparated('}', sc.Rest())
		return Braces{Groups: groups}, rest
	case r == '"':
		text, rest := ParseStringLit(sc.Rest())
		return StringLit{Text: text}, rest
	case r == '\'':
		text, rest := ParseCharLit(sc.Rest())
		return CharLit{Text: text}, rest
	case r == '0' && hasHexPrefix(sc):
		text, rest := parseNumber(s, len("0x"))
		return NumberLit{Text: text}, rest
	case isDigit(r):
		text, rest := parseNumber(s, 1)
		return NumberLit{Text: text}, rest
	}

	text, rest := ParseOther(s)
	return Other{Text: text}, rest
}

func (p *parser) exprs(s string) (group Group, rest string) {
	for rest = s; rest != ""; {
		// Delimiters & commas are ASCII, the leading byte suffices.
		if isSeparator(rest[0]) {
			return
		}

		var e Expr
		e, rest = p.expr(rest)
		group = append(group, e)
	}

	return
}

func (p *parser) commaSeparated(end rune, s string) (groups CommaSeparated, rest string) {
	if p.maxDepth > 0 && p.depth >= p.maxDepth {
		p.exceeded = true
		return
	}

	p.depth++
	defer func() { p.depth-- }()

	for rest = s; rest != ""; {
		r, width := utf8.DecodeRuneInString(rest)
		switch {
		case r == end:
			rest = rest[width:]
			return
		case isCloser(r):
			// Mismatched delimiter, left for the enclosing group.
			return
		case r == ',':
			rest = rest[width:]
		default:
			var group Group
			group, rest = p.exprs(rest)
			groups = append(groups, group)
		}
	}

	return
}

// hasHexPrefix reports whether the rune after a consumed '0' is 'x' followed by a hex digit.
func hasHexPrefix(sc *scanner.Scanner) bool {
	la, _ := sc.PeekN(2)
	return len(la) == 2 && la[0] == 'x' && isHexDigit(la[1])
}
