/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package grammar_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/layoutspec/grammar"
	"bennypowers.dev/layoutspec/spec"
)

func requireSyntaxError(t *testing.T, err error, kind error, message string) {
	t.Helper()
	require.Error(t, err)
	assert.ErrorIs(t, err, kind)
	assert.Equal(t, message, err.Error())
}

func TestParseRangeText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  spec.Range
	}{
		{"exact with unit", "10px", spec.Exact(10)},
		{"exact without unit", "10", spec.Exact(10)},
		{"negative", "-5px", spec.Exact(-5)},
		{"fraction", "10.5px", spec.Exact(10.5)},
		{"between", "10 to 20px", spec.Between(10, 20)},
		{"between without spaces", "10to20px", spec.Between(10, 20)},
		{"between without unit", "10 to 20", spec.Between(10, 20)},
		{"approximate", "~ 10px", spec.Between(8, 12)},
		{"approximate between", "~10 to 20px", spec.Between(8, 22)},
		{"greater than", "> 5px", spec.GreaterThan(5)},
		{"percent of", "50% of screen/width", spec.Exact(50).WithPercentOf("screen/width")},
		{"between percent of", "10 to 20 % of main/height", spec.Between(10, 20).WithPercentOf("main/height")},
		{"plain percent", "30%", spec.Exact(30)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := grammar.ParseRangeText(tt.input, 2)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseRangeText_Errors(t *testing.T) {
	tests := []struct {
		input   string
		kind    error
		message string
	}{
		{"20 to 10px", spec.ErrInvalidRange, "Range start should not be greater than its end: 20 > 10"},
		{"> 5 to 10px", spec.ErrInvalidRange, `Expecting "px" or "%", got "to"`},
		{"10 to 20 cm", spec.ErrInvalidRange, `Expecting "px" or "%", got "cm"`},
		{"abc", spec.ErrNumberFormat, `Cannot parse number: "abc"`},
		{"", spec.ErrNumberFormat, `Cannot parse number: ""`},
		{"1.2.3px", spec.ErrNumberFormat, `Cannot parse number: "1.2.3"`},
		{"10 to", spec.ErrNumberFormat, `Cannot parse number: ""`},
		{"10px extra", spec.ErrUnknownParameter, "Unknown parameter: extra"},
		{"10 cm", spec.ErrUnknownParameter, "Unknown parameter: cm"},
		{"50% of", spec.ErrInvalidRange, `Missing reference after "of"`},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := grammar.ParseRangeText(tt.input, 2)
			requireSyntaxError(t, err, tt.kind, tt.message)
		})
	}
}

func TestParseRange_LeavesTrailingWords(t *testing.T) {
	s := grammar.NewScanner("10 top left")
	r, err := grammar.ParseRange(s, 0)
	require.NoError(t, err)
	assert.Equal(t, spec.Exact(10), r)
	assert.Equal(t, []string{"top", "left"}, s.Words())
}

func TestParseNumberText(t *testing.T) {
	v, err := grammar.ParseNumberText(" 12.5 ")
	require.NoError(t, err)
	assert.InDelta(t, 12.5, v, 0)

	_, err = grammar.ParseNumberText("12 px")
	requireSyntaxError(t, err, spec.ErrNumberFormat, `Cannot parse number: "12 px"`)
}

func TestParseIntText(t *testing.T) {
	v, err := grammar.ParseIntText("25")
	require.NoError(t, err)
	assert.Equal(t, 25, v)

	_, err = grammar.ParseIntText("1.5")
	requireSyntaxError(t, err, spec.ErrNumberFormat, `Cannot parse number: "1.5"`)

	_, err = grammar.ParseIntText("lots")
	requireSyntaxError(t, err, spec.ErrNumberFormat, `Cannot parse number: "lots"`)
}
