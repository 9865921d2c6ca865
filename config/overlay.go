/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package config

import (
	"fmt"

	"github.com/spf13/viper"

	"bennypowers.dev/layoutspec/grammar"
	"bennypowers.dev/layoutspec/spec"
)

// Overlay keys recognized by the reader.
const (
	KeyApproximation  = "range.approximation"
	KeyImageTolerance = "spec.image.tolerance"
	KeyImageError     = "spec.image.error"
)

// Built-in fallbacks used when the overlay does not set a key.
const (
	DefaultApproximation  = 2.0
	DefaultImageTolerance = 25
	DefaultImageError     = "0px"
)

// Overlay is read-only, externally owned configuration.
type Overlay interface {
	// Lookup returns the raw value for key and whether it is set.
	Lookup(key string) (string, bool)
}

// Map is an Overlay backed by a plain map.
type Map map[string]string

// Lookup implements Overlay.
func (m Map) Lookup(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

// ViperOverlay exposes a viper instance as an Overlay, so flags, environment
// variables and the project config file all feed the reader.
type ViperOverlay struct {
	v *viper.Viper
}

// NewViperOverlay wraps v.
func NewViperOverlay(v *viper.Viper) *ViperOverlay {
	return &ViperOverlay{v: v}
}

// Lookup implements Overlay.
func (o *ViperOverlay) Lookup(key string) (string, bool) {
	if !o.v.IsSet(key) {
		return "", false
	}
	return o.v.GetString(key), true
}

// Settings is a consistent copy of the overlay values, taken once per read.
// Values are kept raw and parsed on demand, so a malformed image default
// only fails specs that need it.
type Settings struct {
	approximation  string
	imageTolerance string
	imageError     string
}

// Snapshot copies the overlay values, falling back to the built-in defaults.
// A nil overlay yields the defaults.
func Snapshot(o Overlay) Settings {
	s := Settings{
		approximation:  fmt.Sprint(DefaultApproximation),
		imageTolerance: fmt.Sprint(DefaultImageTolerance),
		imageError:     DefaultImageError,
	}
	if o == nil {
		return s
	}
	if v, ok := o.Lookup(KeyApproximation); ok {
		s.approximation = v
	}
	if v, ok := o.Lookup(KeyImageTolerance); ok {
		s.imageTolerance = v
	}
	if v, ok := o.Lookup(KeyImageError); ok {
		s.imageError = v
	}
	return s
}

// Approximation returns the delta applied to "~" ranges. It is never negative,
// so approximate ranges keep their lower bound below the upper one.
func (s Settings) Approximation() (float64, error) {
	v, err := grammar.ParseNumberText(s.approximation)
	if err == nil && v < 0 {
		err = spec.Errorf(spec.ErrInvalidRange, "Approximation should not be negative: %s", s.approximation)
	}
	if err != nil {
		return 0, fmt.Errorf("%s: %w", KeyApproximation, err)
	}
	return v, nil
}

// ImageTolerance returns the default color tolerance of image specs.
func (s Settings) ImageTolerance() (int, error) {
	v, err := grammar.ParseIntText(s.imageTolerance)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", KeyImageTolerance, err)
	}
	return v, nil
}

// ImageErrorRate returns the default error rate of image specs.
func (s Settings) ImageErrorRate() (spec.ErrorRate, error) {
	v, err := grammar.ParseErrorRate(s.imageError)
	if err != nil {
		return spec.ErrorRate{}, fmt.Errorf("%s: %w", KeyImageError, err)
	}
	return v, nil
}
