// SPDX-License-Identifier: MIT
package scanner

import (
	"errors"
	"reflect"
	"testing"
	"unicode"
)

func TestScanner_Next(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   []rune
	}{
		{name: "empty", source: "", want: []rune{EOF}},
		{name: "ascii", source: "ab", want: []rune{'a', 'b', EOF}},
		{name: "multi-byte", source: "λx", want: []rune{'λ', 'x', EOF}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(tt.source)

			var got []rune
			for {
				r := s.Next()
				got = append(got, r)
				if r == EOF {
					break
				}
			}

			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Scanner.Next() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestScanner_PeekN(t *testing.T) {
	tests := []struct {
		name     string
		source   string
		n        int
		wantList []rune
		wantErr  error
	}{
		{name: "valid", source: "0x1F", n: 2, wantList: []rune{'0', 'x'}},
		{name: "short source", source: "e", n: 3, wantList: []rune{'e'}},
		{name: "empty source", source: "", n: 1, wantList: []rune{}},
		{name: "invalid length", source: "abc", n: 0, wantErr: ErrInvalidPeekLength},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(tt.source)

			gotList, err := s.PeekN(tt.n)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Scanner.PeekN() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr != nil {
				return
			}

			if !reflect.DeepEqual(gotList, tt.wantList) {
				t.Errorf("Scanner.PeekN() = %q, want %q", gotList, tt.wantList)
			}
			if got := s.Rest(); got != tt.source {
				t.Errorf("Scanner.PeekN() moved the position, Rest() = %q", got)
			}
		})
	}
}

func TestScanner_BackupN(t *testing.T) {
	s := New("aλc")
	s.Next()
	s.Next()

	if err := s.BackupN(1); err != nil {
		t.Fatalf("Scanner.BackupN() error = %v", err)
	}
	if got := s.Rest(); got != "λc" {
		t.Errorf("Scanner.Rest() = %q, want %q", got, "λc")
	}

	if err := s.BackupN(2); !errors.Is(err, ErrInvalidBackupAmount) {
		t.Errorf("Scanner.BackupN() error = %v, wantErr %v", err, ErrInvalidBackupAmount)
	}
	if got := s.Consumed(); got != "a" {
		t.Errorf("Scanner.Consumed() = %q, want %q", got, "a")
	}

	if err := s.Backup(); err != nil {
		t.Fatalf("Scanner.Backup() error = %v", err)
	}
	if err := s.Backup(); !errors.Is(err, ErrInvalidBackupAmount) {
		t.Errorf("Scanner.Backup() at the source start error = %v, wantErr %v", err, ErrInvalidBackupAmount)
	}
	if got := s.Rest(); got != "aλc" {
		t.Errorf("Scanner.Rest() = %q, want %q", got, "aλc")
	}
}

func TestScanner_AcceptWhile(t *testing.T) {
	s := New("abc123 rest")

	if got := s.AcceptWhile(unicode.IsLetter); got != 3 {
		t.Errorf("Scanner.AcceptWhile() = %d, want 3", got)
	}
	if got := s.AcceptWhile(unicode.IsDigit); got != 3 {
		t.Errorf("Scanner.AcceptWhile() = %d, want 3", got)
	}
	if got, want := s.Consumed(), "abc123"; got != want {
		t.Errorf("Scanner.Consumed() = %q, want %q", got, want)
	}
	if got, want := s.Rest(), " rest"; got != want {
		t.Errorf("Scanner.Rest() = %q, want %q", got, want)
	}
}

func BenchmarkScanner_AcceptWhile(b *testing.B) {
	src := "Leaf' 12345 (Node 'a' \"str\")"

	b.ReportAllocs()
	b.SetBytes(int64(len(src)))
	b.ResetTimer()

	for n := 0; n < b.N; n++ {
		s := New(src)
		for s.Peek() != EOF {
			if s.AcceptWhile(unicode.IsLetter) < 1 {
				s.Next()
			}
		}
	}
}
