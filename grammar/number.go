/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package grammar

import (
	"strconv"

	"bennypowers.dev/layoutspec/spec"
)

// ParseNumber reads a decimal number. When nothing numeric follows, the next
// word (possibly empty) is reported as the offending token.
func ParseNumber(s *Scanner) (float64, error) {
	token := s.NumberToken()
	if token == "" {
		return 0, spec.NumberFormatError(s.Word())
	}
	v, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return 0, spec.NumberFormatError(token)
	}
	return v, nil
}

// ParseInt reads an integer.
func ParseInt(s *Scanner) (int, error) {
	token := s.NumberToken()
	if token == "" {
		return 0, spec.NumberFormatError(s.Word())
	}
	v, err := strconv.Atoi(token)
	if err != nil {
		return 0, spec.NumberFormatError(token)
	}
	return v, nil
}

// ParseNumberText parses a whole string as a single number.
func ParseNumberText(text string) (float64, error) {
	s := NewScanner(text)
	v, err := ParseNumber(s)
	if err != nil {
		return 0, err
	}
	if !s.AtEnd() {
		return 0, spec.NumberFormatError(text)
	}
	return v, nil
}

// ParseIntText parses a whole string as a single integer.
func ParseIntText(text string) (int, error) {
	s := NewScanner(text)
	v, err := ParseInt(s)
	if err != nil {
		return 0, err
	}
	if !s.AtEnd() {
		return 0, spec.NumberFormatError(text)
	}
	return v, nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
