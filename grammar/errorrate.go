/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package grammar

import (
	"strconv"
	"strings"

	"bennypowers.dev/layoutspec/spec"
)

// ParseErrorRate reads an image error rate: "2.4%", "112 px" or "112px".
// A bare number counts pixels.
func ParseErrorRate(text string) (spec.ErrorRate, error) {
	s := NewScanner(text)
	v, err := ParseNumber(s)
	if err != nil {
		return spec.ErrorRate{}, err
	}
	if v < 0 {
		return spec.ErrorRate{}, spec.InvalidErrorRateError(text)
	}

	var rate spec.ErrorRate
	switch s.Unit() {
	case unitPercent:
		rate = spec.Percent(v)
	case unitPixels, "":
		rate = spec.Pixels(v)
	default:
		return spec.ErrorRate{}, spec.InvalidErrorRateError(text)
	}
	if !s.AtEnd() {
		return spec.ErrorRate{}, spec.InvalidErrorRateError(text)
	}
	return rate, nil
}

// ParsePixelErrorRate reads the optional "N[px]" that follows the object of
// alignment and centering directives. raw is quoted verbatim on failure.
func ParsePixelErrorRate(raw string) (int, error) {
	if strings.TrimSpace(raw) == "" {
		return 0, nil
	}
	s := NewScanner(raw)
	v, err := strconv.Atoi(s.NumberToken())
	if err != nil || v < 0 {
		return 0, spec.InvalidErrorRateError(raw)
	}
	if unit := s.Unit(); unit != "" && unit != unitPixels {
		return 0, spec.InvalidErrorRateError(raw)
	}
	if !s.AtEnd() {
		return 0, spec.InvalidErrorRateError(raw)
	}
	return v, nil
}
