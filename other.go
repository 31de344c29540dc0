// SPDX-License-Identifier: MIT
package exprtree

import (
	"unicode"

	"gitlab.com/fisherprime/exprtree/scanner"
)

var (
	// terminators end a run of free-form text.
	terminators = [256]bool{
		'{': true, '[': true, '(': true,
		')': true, ']': true, '}': true,
		'"': true, ',': true,
	}

	// separators end a sequence of sibling expressions.
	separators = [256]bool{')': true, ']': true, '}': true, ',': true}

	closers = [256]bool{')': true, ']': true, '}': true}
)

// ParseOther parses a maximal run of free-form text.
//
// Delimiters, double quotes & commas end the run. A digit or `'` ends it too unless it continues
// an identifier, keeping tokens such as `Leaf'` or `H3110` whole while `hello 234` splits before
// the number.
func ParseOther(s string) (text, rest string) {
	sc := scanner.New(s)

	insideIdent := false
	sc.AcceptWhile(func(r rune) bool {
		if isTerminator(r) || (!insideIdent && interruptsText(r)) {
			return false
		}

		if insideIdent {
			insideIdent = isIdentRest(r)
		} else {
			insideIdent = isIdentBegin(r)
		}

		return true
	})

	return sc.Consumed(), sc.Rest()
}

func isTerminator(r rune) bool { return uint(r) < 256 && terminators[r] }

func isSeparator(c byte) bool { return separators[c] }

func isCloser(r rune) bool { return uint(r) < 256 && closers[r] }

// interruptsText reports whether r starts a literal when outside an identifier.
func interruptsText(r rune) bool { return isDigit(r) || r == '\'' }

func isIdentBegin(r rune) bool { return r == '_' || unicode.IsLetter(r) }

func isIdentRest(r rune) bool { return isIdentBegin(r) || isDigit(r) || r == '\'' }
