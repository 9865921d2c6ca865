/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package reader

import (
	"strings"

	"bennypowers.dev/layoutspec/grammar"
	"bennypowers.dev/layoutspec/spec"
)

// imageBuilder accumulates image clauses. Tolerance and error rate stay
// nil until a clause sets them, so overlay defaults are only consulted
// when needed.
type imageBuilder struct {
	paths         []string
	errorRate     *spec.ErrorRate
	tolerance     *int
	stretch       bool
	cropIfOutside bool
	area          *spec.Rect
	filters       grammar.FilterSet
}

// parseImage handles
//
//	image: file a.png, file b.png, error 2%, tolerance 5, stretch,
//	       crop-if-outside, area 0 0 100 20, filter blur 2, map-filter denoise 1
func parseImage(req *request) (spec.Spec, error) {
	var b imageBuilder
	for _, clause := range grammar.SplitClauses(req.body) {
		if err := b.clause(req, clause); err != nil {
			return nil, err
		}
	}
	if len(b.paths) == 0 {
		return nil, spec.NoImagesDefinedError()
	}

	img := &spec.Image{
		Base:            req.base(),
		ImagePaths:      b.paths,
		Stretch:         b.stretch,
		CropIfOutside:   b.cropIfOutside,
		SelectedArea:    b.area,
		OriginalFilters: b.filters.Original,
		SampleFilters:   b.filters.Sample,
		MapFilters:      b.filters.Map,
	}

	if b.tolerance != nil {
		img.Tolerance = *b.tolerance
	} else {
		t, err := req.settings.ImageTolerance()
		if err != nil {
			return nil, err
		}
		img.Tolerance = t
	}

	if b.errorRate != nil {
		img.ErrorRate = *b.errorRate
	} else {
		rate, err := req.settings.ImageErrorRate()
		if err != nil {
			return nil, err
		}
		img.ErrorRate = rate
	}

	return img, nil
}

func (b *imageBuilder) clause(req *request, clause string) error {
	s := grammar.NewScanner(clause)
	keyword := s.Word()
	rest := strings.TrimSpace(s.Rest())

	if target, ok := grammar.FilterTargetFor(keyword); ok {
		f, err := grammar.ParseFilter(s)
		if err != nil {
			return err
		}
		b.filters.Add(target, f)
		return nil
	}

	switch keyword {
	case "file":
		if rest == "" {
			return spec.Errorf(spec.ErrNoImagesDefined, "Missing image path")
		}
		b.paths = append(b.paths, grammar.ResolvePath(req.contextDir, rest))
	case "error":
		rate, err := grammar.ParseErrorRate(rest)
		if err != nil {
			return err
		}
		b.errorRate = &rate
	case "tolerance":
		t, err := grammar.ParseIntText(rest)
		if err != nil {
			return err
		}
		if t < 0 {
			return spec.Errorf(spec.ErrNumberFormat, "Tolerance should not be negative: %d", t)
		}
		b.tolerance = &t
	case "stretch":
		if rest != "" {
			return spec.UnknownParameterError(s.Word())
		}
		b.stretch = true
	case "crop-if-outside":
		if rest != "" {
			return spec.UnknownParameterError(s.Word())
		}
		b.cropIfOutside = true
	case "area":
		area, err := parseArea(s)
		if err != nil {
			return err
		}
		b.area = &area
	default:
		return spec.UnknownParameterError(keyword)
	}
	return nil
}

// parseArea reads "x y width height".
func parseArea(s *grammar.Scanner) (spec.Rect, error) {
	var v [4]int
	for i := range v {
		n, err := grammar.ParseInt(s)
		if err != nil {
			return spec.Rect{}, err
		}
		v[i] = n
	}
	if !s.AtEnd() {
		return spec.Rect{}, spec.UnknownParameterError(s.Word())
	}
	area := spec.Rect{X: v[0], Y: v[1], Width: v[2], Height: v[3]}
	if area.Width <= 0 || area.Height <= 0 {
		return spec.Rect{}, spec.Errorf(spec.ErrNumberFormat, "Area size should be positive: %s", area)
	}
	return area, nil
}
