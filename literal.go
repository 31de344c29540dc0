// SPDX-License-Identifier: MIT
package exprtree

import (
	"gitlab.com/fisherprime/exprtree/scanner"
)

// Lookup tables, cheaper than chained comparisons.
var (
	decimalDigits = [256]bool{
		'0': true, '1': true, '2': true, '3': true, '4': true,
		'5': true, '6': true, '7': true, '8': true, '9': true,
	}

	hexDigits = [256]bool{
		'0': true, '1': true, '2': true, '3': true, '4': true,
		'5': true, '6': true, '7': true, '8': true, '9': true,
		'a': true, 'b': true, 'c': true, 'd': true, 'e': true, 'f': true,
		'A': true, 'B': true, 'C': true, 'D': true, 'E': true, 'F': true,
	}
)

// ParseStringLit parses the body of a string literal, s starting after the opening `"`.
//
// The body excludes both quotes; escapes are kept verbatim. An unterminated literal consumes the
// whole source.
func ParseStringLit(s string) (text, rest string) { return parseQuoted('"', s) }

// ParseCharLit parses the body of a character literal, s starting after the opening `'`.
func ParseCharLit(s string) (text, rest string) { return parseQuoted('\'', s) }

func parseQuoted(quote rune, s string) (text, rest string) {
	sc := scanner.New(s)
	for {
		switch sc.Next() {
		case scanner.EOF:
			return sc.Consumed(), ""
		case quote:
			// The body excludes the closing quote.
			_ = sc.Backup()
			text = sc.Consumed()
			sc.Next()

			return text, sc.Rest()
		case '\\':
			// The escaped rune is taken as is, the quote included.
			sc.Next()
		}
	}
}

// ParseNumberLit parses a numeric literal whose first digit has been consumed from s.
//
// The continuation accepts the hexadecimal alphabet so `0x` bodies parse alike; a decimal literal
// followed by hex letters (`3abc`) absorbs them.
func ParseNumberLit(first rune, s string) (text, rest string) {
	text, rest = parseNumber(s, 0)
	return string(first) + text, rest
}

// parseNumber parses a numeric literal from s after skipping the prefix runes, which form part of
// the literal.
func parseNumber(s string, prefix int) (text, rest string) {
	sc := scanner.New(s)
	for index := 0; index < prefix; index++ {
		sc.Next()
	}

	acceptDigits(sc)

	// Fractional part.
	if la, _ := sc.PeekN(2); len(la) == 2 && la[0] == '.' && isHexDigit(la[1]) {
		sc.Next()
		acceptDigits(sc)
	}

	// Signed exponent; an unsigned one is covered by the digit run since `e` is a hex digit.
	if hasSignedExponent(sc) {
		sc.Next()
		sc.Next()
		acceptDigits(sc)
	}

	return sc.Consumed(), sc.Rest()
}

// acceptDigits consumes a run of hex digits, stopping before a signed exponent.
func acceptDigits(sc *scanner.Scanner) {
	for {
		sc.AcceptWhile(isMantissaDigit)
		if sc.Peek() != 'e' || hasSignedExponent(sc) {
			return
		}
		sc.Next()
	}
}

// hasSignedExponent reports whether the source continues with `e+` or `e-` & a digit.
func hasSignedExponent(sc *scanner.Scanner) bool {
	la, _ := sc.PeekN(3)
	return len(la) == 3 &&
		la[0] == 'e' &&
		(la[1] == '+' || la[1] == '-') &&
		isHexDigit(la[2])
}

// isMantissaDigit reports whether r is a hex digit other than the exponent marker.
func isMantissaDigit(r rune) bool { return r != 'e' && isHexDigit(r) }

func isDigit(r rune) bool { return uint(r) < 256 && decimalDigits[r] }

func isHexDigit(r rune) bool { return uint(r) < 256 && hexDigits[r] }
