/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package grammar provides the sub-grammars shared by spec directives:
// numbers, ranges, sides and locations, colors, image filters and error rates.
//
// Each grammar consumes input from a Scanner and returns either a value
// or a *spec.SyntaxError, so it can be tested without any directive around it.
package grammar

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Scanner walks a single clause of spec text.
type Scanner struct {
	text string
	pos  int
}

// NewScanner returns a scanner positioned at the start of text.
func NewScanner(text string) *Scanner {
	return &Scanner{text: text}
}

// Rest returns the unconsumed text, including leading whitespace.
func (s *Scanner) Rest() string {
	return s.text[s.pos:]
}

// SkipSpace advances past whitespace.
func (s *Scanner) SkipSpace() {
	for s.pos < len(s.text) {
		r, size := utf8.DecodeRuneInString(s.text[s.pos:])
		if !unicode.IsSpace(r) {
			return
		}
		s.pos += size
	}
}

// AtEnd reports whether only whitespace remains.
func (s *Scanner) AtEnd() bool {
	return strings.TrimSpace(s.Rest()) == ""
}

// Peek returns the next non-space rune without consuming it, or 0 at the end.
func (s *Scanner) Peek() rune {
	s.SkipSpace()
	if s.pos >= len(s.text) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(s.text[s.pos:])
	return r
}

// Accept consumes r if it is the next non-space rune.
func (s *Scanner) Accept(r rune) bool {
	if s.Peek() != r {
		return false
	}
	s.pos += utf8.RuneLen(r)
	return true
}

// Word reads the next whitespace-delimited word.
func (s *Scanner) Word() string {
	s.SkipSpace()
	start := s.pos
	for s.pos < len(s.text) {
		r, size := utf8.DecodeRuneInString(s.text[s.pos:])
		if unicode.IsSpace(r) {
			break
		}
		s.pos += size
	}
	return s.text[start:s.pos]
}

// PeekWord returns the next word without consuming it.
func (s *Scanner) PeekWord() string {
	saved := s.pos
	w := s.Word()
	s.pos = saved
	return w
}

// AcceptWord consumes the next word if it equals w.
func (s *Scanner) AcceptWord(w string) bool {
	if s.PeekWord() != w {
		return false
	}
	s.Word()
	return true
}

// Words reads all remaining words.
func (s *Scanner) Words() []string {
	var words []string
	for !s.AtEnd() {
		words = append(words, s.Word())
	}
	return words
}

// NumberToken reads the longest run of characters that can form a number.
// It returns an empty string when the next rune cannot start a number.
func (s *Scanner) NumberToken() string {
	s.SkipSpace()
	start := s.pos
	for s.pos < len(s.text) {
		c := s.text[s.pos]
		if (c >= '0' && c <= '9') || c == '.' || c == '-' || c == '+' {
			s.pos++
			continue
		}
		break
	}
	return s.text[start:s.pos]
}

// Unit reads a unit suffix directly following a number or after spaces:
// a run of letters, or a single '%'.
func (s *Scanner) Unit() string {
	s.SkipSpace()
	if s.pos < len(s.text) && s.text[s.pos] == '%' {
		s.pos++
		return "%"
	}
	start := s.pos
	for s.pos < len(s.text) {
		r, size := utf8.DecodeRuneInString(s.text[s.pos:])
		if !unicode.IsLetter(r) {
			break
		}
		s.pos += size
	}
	return s.text[start:s.pos]
}

// Mark returns a position to Reset to.
func (s *Scanner) Mark() int {
	return s.pos
}

// Reset moves the scanner back to a position returned by Mark.
func (s *Scanner) Reset(mark int) {
	s.pos = mark
}

// SplitClauses splits a directive body on commas, trimming each clause.
// Empty clauses are dropped.
func SplitClauses(body string) []string {
	parts := strings.Split(body, ",")
	clauses := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			clauses = append(clauses, p)
		}
	}
	return clauses
}
