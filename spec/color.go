/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package spec

import (
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color is an opaque sRGB color.
type Color struct {
	R uint8
	G uint8
	B uint8
}

// RGB returns a Color from 8-bit channel values.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// Colorful converts the color for use with go-colorful.
func (c Color) Colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}

// Hex returns the color as a lowercase #rrggbb string.
func (c Color) Hex() string {
	return c.Colorful().Hex()
}

// String returns the hex form of the color.
func (c Color) String() string {
	return c.Hex()
}

// MarshalText implements encoding.TextMarshaler.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.Hex()), nil
}

// ColorRange asserts that a share of an element's pixels, given as a
// percentage range, has the given color.
type ColorRange struct {
	Range Range `json:"range" yaml:"range"`
	Color Color `json:"color" yaml:"color"`
}
