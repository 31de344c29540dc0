// SPDX-License-Identifier: MIT
package scanner

// REF: https://gitlab.com/fisherprime/hierarchy/-/blob/master/lexer/v2/lexer.go

import (
	"fmt"
	"unicode/utf8"
)

type (
	// ValidationFunction type for functions that validate rune identities.
	ValidationFunction func(rune) bool

	// Scanner defines a cursor over an immutable source string.
	//
	// The source is never copied; Consumed & Rest return slices of it.
	Scanner struct {
		source string

		// pos is the current read position, in bytes.
		pos int
	}
)

// EOF is returned by Next & Peek at the end of the source.
const EOF rune = -1

// Scanning errors.
var (
	ErrInvalidPeekLength   = fmt.Errorf("invalid peek length")
	ErrInvalidBackupAmount = fmt.Errorf("invalid backup amount")
)

// New creates a Scanner for the source string.
func New(source string) *Scanner { return &Scanner{source: source} }

// Next return the next rune in the source, advancing the position.
func (s *Scanner) Next() (r rune) {
	if s.pos >= len(s.source) {
		return EOF
	}

	r, width := utf8.DecodeRuneInString(s.source[s.pos:])
	s.pos += width

	return
}

// Peek return the next rune, without updating the position.
func (s *Scanner) Peek() (r rune) {
	if s.pos >= len(s.source) {
		return EOF
	}
	r, _ = utf8.DecodeRuneInString(s.source[s.pos:])

	return
}

// PeekN return the next N runes, without updating the position.
//
// This operation will return a shorter slice if the end of the source is reached.
func (s *Scanner) PeekN(n int) (list []rune, err error) {
	if n < 1 {
		err = fmt.Errorf("%w: %d", ErrInvalidPeekLength, n)
		return
	}

	list = make([]rune, 0, n)
	for index := s.pos; index < len(s.source) && len(list) < n; {
		r, width := utf8.DecodeRuneInString(s.source[index:])
		list = append(list, r)
		index += width
	}

	return
}

// Backup step back one rune.
func (s *Scanner) Backup() error { return s.BackupN(1) }

// BackupN step back N runes.
//
// Backing up past the start of the source is an error.
func (s *Scanner) BackupN(n int) (err error) {
	pos := s.pos
	for index := 0; index < n; index++ {
		if pos <= 0 {
			err = fmt.Errorf("%w: amount %d index: %d", ErrInvalidBackupAmount, n, s.pos)
			return
		}

		_, width := utf8.DecodeLastRuneInString(s.source[:pos])
		pos -= width
	}
	s.pos = pos

	return
}

// AcceptWhile consumes runes while fn is true, returning the amount consumed.
func (s *Scanner) AcceptWhile(fn ValidationFunction) (accepted int) {
	for {
		r := s.Peek()
		if r == EOF || !fn(r) {
			return
		}

		s.Next()
		accepted++
	}
}

// Consumed obtains the source read so far.
func (s *Scanner) Consumed() string { return s.source[:s.pos] }

// Rest obtains the unread source.
func (s *Scanner) Rest() string { return s.source[s.pos:] }
