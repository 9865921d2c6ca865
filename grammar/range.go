/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package grammar

import (
	"bennypowers.dev/layoutspec/spec"
)

const (
	unitPixels  = "px"
	unitPercent = "%"
	wordTo      = "to"
	wordOf      = "of"
)

// ParseRange reads a range expression:
//
//	N[px] | N to M (px|%) | ~N (px|%) | > N (px|%) | N% [of REFERENCE]
//
// delta is the approximation applied to "~" ranges.
func ParseRange(s *Scanner, delta float64) (spec.Range, error) {
	approx := s.Accept('~')
	greater := !approx && s.Accept('>')

	first, err := ParseNumber(s)
	if err != nil {
		return spec.Range{}, err
	}

	mark := s.Mark()
	unit := s.Unit()

	var r spec.Range
	switch unit {
	case wordTo:
		if greater {
			return spec.Range{}, spec.Errorf(spec.ErrInvalidRange, "Expecting \"px\" or \"%%\", got \"%s\"", unit)
		}
		second, err := ParseNumber(s)
		if err != nil {
			return spec.Range{}, err
		}
		unit = s.Unit()
		if unit != "" && unit != unitPixels && unit != unitPercent {
			return spec.Range{}, spec.Errorf(spec.ErrInvalidRange, "Expecting \"px\" or \"%%\", got \"%s\"", unit)
		}
		if first > second {
			return spec.Range{}, spec.Errorf(spec.ErrInvalidRange,
				"Range start should not be greater than its end: %s > %s", formatFloat(first), formatFloat(second))
		}
		if approx {
			first, second = first-delta, second+delta
		}
		r = spec.Between(first, second)
	case unitPixels, unitPercent, "":
		r = single(first, approx, greater, delta)
	default:
		// px omitted; the word belongs to whoever reads after the range
		s.Reset(mark)
		unit = ""
		r = single(first, approx, greater, delta)
	}

	if unit == unitPercent && s.AcceptWord(wordOf) {
		reference := s.Word()
		if reference == "" {
			return spec.Range{}, spec.Errorf(spec.ErrInvalidRange, "Missing reference after \"of\"")
		}
		r = r.WithPercentOf(reference)
	}
	return r, nil
}

// ParseRangeText parses a whole string as one range.
func ParseRangeText(text string, delta float64) (spec.Range, error) {
	s := NewScanner(text)
	r, err := ParseRange(s, delta)
	if err != nil {
		return spec.Range{}, err
	}
	if !s.AtEnd() {
		return spec.Range{}, spec.UnknownParameterError(s.Word())
	}
	return r, nil
}

func single(v float64, approx, greater bool, delta float64) spec.Range {
	switch {
	case approx:
		return spec.Between(v-delta, v+delta)
	case greater:
		return spec.GreaterThan(v)
	default:
		return spec.Exact(v)
	}
}
