/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package spec

import (
	"fmt"
	"strconv"
)

// RangeKind distinguishes the shapes a Range can take.
type RangeKind int

const (
	// RangeExact matches a single value.
	RangeExact RangeKind = iota

	// RangeBetween matches values from From to To inclusive.
	RangeBetween

	// RangeGreaterThan matches values strictly greater than From.
	RangeGreaterThan
)

// String returns the grammar keyword for the range kind.
func (k RangeKind) String() string {
	switch k {
	case RangeExact:
		return "exact"
	case RangeBetween:
		return "between"
	case RangeGreaterThan:
		return "greater-than"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (k RangeKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Range is a numeric tolerance expression.
// Approximate ranges are stored as RangeBetween; there is no separate kind for them.
type Range struct {
	Kind RangeKind `json:"kind" yaml:"kind"`
	From float64   `json:"from" yaml:"from"`
	To   float64   `json:"to,omitempty" yaml:"to,omitempty"`

	// PercentOf is the reference attribute path for relative ranges
	// (e.g. "main-container/width"). It is passed through unvalidated.
	PercentOf string `json:"percentOf,omitempty" yaml:"percentOf,omitempty"`
}

// Exact returns a range matching exactly value.
func Exact(value float64) Range {
	return Range{Kind: RangeExact, From: value, To: value}
}

// Between returns a range matching from min to max inclusive.
func Between(min, max float64) Range {
	return Range{Kind: RangeBetween, From: min, To: max}
}

// GreaterThan returns a range matching values greater than value.
func GreaterThan(value float64) Range {
	return Range{Kind: RangeGreaterThan, From: value}
}

// WithPercentOf returns a copy of r tagged as a percentage of the given reference.
func (r Range) WithPercentOf(reference string) Range {
	r.PercentOf = reference
	return r
}

// IsPercentOf reports whether the range is relative to a reference value.
func (r Range) IsPercentOf() bool {
	return r.PercentOf != ""
}

// String renders the range in spec-language notation.
func (r Range) String() string {
	var s string
	switch r.Kind {
	case RangeBetween:
		s = fmt.Sprintf("%s to %spx", formatNumber(r.From), formatNumber(r.To))
	case RangeGreaterThan:
		s = fmt.Sprintf("> %spx", formatNumber(r.From))
	default:
		s = formatNumber(r.From) + "px"
	}
	if r.PercentOf != "" {
		s = s[:len(s)-2] + "% of " + r.PercentOf
	}
	return s
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
