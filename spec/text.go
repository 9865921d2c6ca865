/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package spec

import (
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// TextType is the comparison mode of a text or css assertion.
type TextType int

const (
	TextIs TextType = iota
	TextContains
	TextStarts
	TextEnds
	TextMatches
)

// String returns the spec-language keyword for the comparison mode.
func (t TextType) String() string {
	switch t {
	case TextIs:
		return "is"
	case TextContains:
		return "contains"
	case TextStarts:
		return "starts"
	case TextEnds:
		return "ends"
	case TextMatches:
		return "matches"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (t TextType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// TextTypeFromString parses a comparison mode keyword.
func TextTypeFromString(word string) (TextType, error) {
	switch word {
	case "is":
		return TextIs, nil
	case "contains":
		return TextContains, nil
	case "starts":
		return TextStarts, nil
	case "ends":
		return TextEnds, nil
	case "matches":
		return TextMatches, nil
	default:
		return 0, fmt.Errorf("unrecognized validation type: %s", word)
	}
}

// TextOperation transforms the actual text before comparison.
type TextOperation string

const (
	OpLowercase TextOperation = "lowercase"
	OpUppercase TextOperation = "uppercase"
)

// IsValid reports whether op is a known operation.
func (op TextOperation) IsValid() bool {
	return op == OpLowercase || op == OpUppercase
}

// Apply runs the operation on s.
func (op TextOperation) Apply(s string) string {
	switch op {
	case OpLowercase:
		return cases.Lower(language.Und).String(s)
	case OpUppercase:
		return cases.Upper(language.Und).String(s)
	default:
		return s
	}
}

// ApplyAll runs operations on s in written order.
func ApplyAll(ops []TextOperation, s string) string {
	for _, op := range ops {
		s = op.Apply(s)
	}
	return s
}
