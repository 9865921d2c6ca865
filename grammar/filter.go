/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package grammar

import (
	"bennypowers.dev/layoutspec/spec"
)

// FilterTarget says which filter lists of an image spec a clause feeds.
type FilterTarget int

const (
	// TargetBoth feeds the original and the sample image ("filter").
	TargetBoth FilterTarget = iota

	// TargetOriginal feeds only the original image ("filter-a").
	TargetOriginal

	// TargetSample feeds only the sample image ("filter-b").
	TargetSample

	// TargetMap feeds the difference map ("map-filter").
	TargetMap
)

// FilterTargetFor maps a clause keyword to its target.
func FilterTargetFor(keyword string) (FilterTarget, bool) {
	switch keyword {
	case "filter":
		return TargetBoth, true
	case "filter-a":
		return TargetOriginal, true
	case "filter-b":
		return TargetSample, true
	case "map-filter":
		return TargetMap, true
	default:
		return 0, false
	}
}

var filterFactories = map[string]func(arg int) spec.Filter{
	"blur":       func(arg int) spec.Filter { return spec.Blur{Radius: arg} },
	"denoise":    func(arg int) spec.Filter { return spec.Denoise{Radius: arg} },
	"saturation": func(arg int) spec.Filter { return spec.Saturation{Level: arg} },
	"contrast":   func(arg int) spec.Filter { return spec.Contrast{Level: arg} },
	"quantinize": func(arg int) spec.Filter { return spec.Quantinize{Colors: arg} },
}

// ParseFilter reads "NAME ARG" from the rest of a filter clause.
func ParseFilter(s *Scanner) (spec.Filter, error) {
	name := s.Word()
	factory, ok := filterFactories[name]
	if !ok {
		return nil, spec.UnknownFilterError(name)
	}
	arg, err := ParseInt(s)
	if err != nil {
		return nil, err
	}
	if !s.AtEnd() {
		return nil, spec.UnknownParameterError(s.Word())
	}
	return factory(arg), nil
}

// FilterSet accumulates parsed filters per target list.
type FilterSet struct {
	Original []spec.Filter
	Sample   []spec.Filter
	Map      []spec.Filter
}

// Add places f into the lists selected by target.
func (fs *FilterSet) Add(target FilterTarget, f spec.Filter) {
	switch target {
	case TargetBoth:
		fs.Original = append(fs.Original, f)
		fs.Sample = append(fs.Sample, f)
	case TargetOriginal:
		fs.Original = append(fs.Original, f)
	case TargetSample:
		fs.Sample = append(fs.Sample, f)
	case TargetMap:
		fs.Map = append(fs.Map, f)
	}
}
