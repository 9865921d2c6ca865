/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package grammar

import (
	"strings"
	"unicode"

	"github.com/mazznoer/csscolorparser"

	"bennypowers.dev/layoutspec/spec"
)

// ParseColor resolves a color token: a #rrggbb (or #rgb) hex literal, or a
// CSS color name. Functional notations such as rgb(...) are not part of the
// spec language and are rejected like any other unknown token.
func ParseColor(token string) (spec.Color, error) {
	if token == "" {
		return spec.Color{}, spec.UnknownColorError(token)
	}
	if !strings.HasPrefix(token, "#") && !isColorName(token) {
		return spec.Color{}, spec.UnknownColorError(token)
	}
	if strings.HasPrefix(token, "#") && len(token) != 4 && len(token) != 7 {
		return spec.Color{}, spec.UnknownColorError(token)
	}

	c, err := csscolorparser.Parse(token)
	if err != nil {
		return spec.Color{}, spec.UnknownColorError(token)
	}
	r, g, b, _ := c.RGBA255()
	return spec.RGB(r, g, b), nil
}

// ParseColorRange reads "<range> <color>".
func ParseColorRange(text string, delta float64) (spec.ColorRange, error) {
	s := NewScanner(text)
	r, err := ParseRange(s, delta)
	if err != nil {
		return spec.ColorRange{}, err
	}
	color, err := ParseColor(s.Word())
	if err != nil {
		return spec.ColorRange{}, err
	}
	if !s.AtEnd() {
		return spec.ColorRange{}, spec.UnknownParameterError(s.Word())
	}
	return spec.ColorRange{Range: r, Color: color}, nil
}

func isColorName(token string) bool {
	for _, r := range token {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
