/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package spec

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// ErrorRateKind is the unit of an image comparison error rate.
type ErrorRateKind int

const (
	// ErrorRatePixels counts mismatching pixels.
	ErrorRatePixels ErrorRateKind = iota

	// ErrorRatePercent is the share of mismatching pixels.
	ErrorRatePercent
)

// String returns the unit suffix used in spec text.
func (k ErrorRateKind) String() string {
	if k == ErrorRatePercent {
		return "%"
	}
	return "px"
}

// MarshalText implements encoding.TextMarshaler.
func (k ErrorRateKind) MarshalText() ([]byte, error) {
	if k == ErrorRatePercent {
		return []byte("percent"), nil
	}
	return []byte("pixels"), nil
}

// ErrorRate is the tolerated amount of difference in an image comparison.
type ErrorRate struct {
	Kind  ErrorRateKind `json:"kind" yaml:"kind"`
	Value float64       `json:"value" yaml:"value"`
}

// Percent returns an error rate measured as a share of pixels.
func Percent(value float64) ErrorRate {
	return ErrorRate{Kind: ErrorRatePercent, Value: value}
}

// Pixels returns an error rate measured as a pixel count.
func Pixels(value float64) ErrorRate {
	return ErrorRate{Kind: ErrorRatePixels, Value: value}
}

// String renders the error rate as written in spec text.
func (e ErrorRate) String() string {
	return strconv.FormatFloat(e.Value, 'f', -1, 64) + e.Kind.String()
}

// Rect is an area of an image, in pixels.
type Rect struct {
	X      int `json:"x" yaml:"x"`
	Y      int `json:"y" yaml:"y"`
	Width  int `json:"width" yaml:"width"`
	Height int `json:"height" yaml:"height"`
}

// String renders the rectangle as the four numbers of an area clause.
func (r Rect) String() string {
	return fmt.Sprintf("%d %d %d %d", r.X, r.Y, r.Width, r.Height)
}

// Filter is an image filter applied before comparison.
// Applying it to a bitmap is the comparator's job; the reader only records it.
type Filter interface {
	FilterName() string
}

// Blur smooths the image with the given radius.
type Blur struct {
	Radius int `json:"radius" yaml:"radius"`
}

// Denoise removes isolated pixels within the given radius.
type Denoise struct {
	Radius int `json:"radius" yaml:"radius"`
}

// Saturation changes color saturation to the given level.
type Saturation struct {
	Level int `json:"level" yaml:"level"`
}

// Contrast changes contrast by the given level.
type Contrast struct {
	Level int `json:"level" yaml:"level"`
}

// Quantinize reduces the palette to the given number of colors.
type Quantinize struct {
	Colors int `json:"colors" yaml:"colors"`
}

func (Blur) FilterName() string       { return "blur" }
func (Denoise) FilterName() string    { return "denoise" }
func (Saturation) FilterName() string { return "saturation" }
func (Contrast) FilterName() string   { return "contrast" }
func (Quantinize) FilterName() string { return "quantinize" }

// MarshalJSON includes the filter name so filter lists stay readable.
func (f Blur) MarshalJSON() ([]byte, error) { return marshalFilter(f.FilterName(), "radius", f.Radius) }

// MarshalJSON includes the filter name so filter lists stay readable.
func (f Denoise) MarshalJSON() ([]byte, error) {
	return marshalFilter(f.FilterName(), "radius", f.Radius)
}

// MarshalJSON includes the filter name so filter lists stay readable.
func (f Saturation) MarshalJSON() ([]byte, error) {
	return marshalFilter(f.FilterName(), "level", f.Level)
}

// MarshalJSON includes the filter name so filter lists stay readable.
func (f Contrast) MarshalJSON() ([]byte, error) {
	return marshalFilter(f.FilterName(), "level", f.Level)
}

// MarshalJSON includes the filter name so filter lists stay readable.
func (f Quantinize) MarshalJSON() ([]byte, error) {
	return marshalFilter(f.FilterName(), "colors", f.Colors)
}

// MarshalYAML mirrors MarshalJSON.
func (f Blur) MarshalYAML() (any, error) { return filterFields(f.FilterName(), "radius", f.Radius), nil }

// MarshalYAML mirrors MarshalJSON.
func (f Denoise) MarshalYAML() (any, error) {
	return filterFields(f.FilterName(), "radius", f.Radius), nil
}

// MarshalYAML mirrors MarshalJSON.
func (f Saturation) MarshalYAML() (any, error) {
	return filterFields(f.FilterName(), "level", f.Level), nil
}

// MarshalYAML mirrors MarshalJSON.
func (f Contrast) MarshalYAML() (any, error) {
	return filterFields(f.FilterName(), "level", f.Level), nil
}

// MarshalYAML mirrors MarshalJSON.
func (f Quantinize) MarshalYAML() (any, error) {
	return filterFields(f.FilterName(), "colors", f.Colors), nil
}

func filterFields(name, param string, value int) map[string]any {
	return map[string]any{"name": name, param: value}
}

func marshalFilter(name, param string, value int) ([]byte, error) {
	return json.Marshal(filterFields(name, param, value))
}
