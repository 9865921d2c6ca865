/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package reader

import (
	"slices"
	"strings"

	"bennypowers.dev/layoutspec/grammar"
	"bennypowers.dev/layoutspec/spec"
)

// defaultDistance is the range of above, below, left of and right of when
// the body names only the object: any non-overlapping distance.
var defaultDistance = spec.GreaterThan(-1)

// splitObject reads the leading object name of body and returns the rest
// untouched, leading whitespace included. A comma ends the name and is
// dropped, so "menu, 10px left" names "menu".
func splitObject(body string) (object, rest string, err error) {
	s := grammar.NewScanner(body)
	object = s.Word()
	rest = s.Rest()
	if i := strings.IndexByte(object, ','); i >= 0 {
		object, rest = object[:i], object[i+1:]+rest
	}
	if object == "" {
		return "", "", spec.MissingObjectNameError()
	}
	return object, rest, nil
}

// objectLocations reads "object <range> <sides>, <range> <sides>...".
func objectLocations(req *request) (string, []spec.Location, error) {
	object, rest, err := splitObject(req.body)
	if err != nil {
		return "", nil, err
	}
	delta, err := req.delta()
	if err != nil {
		return "", nil, err
	}
	locations, err := grammar.ParseLocations(rest, delta)
	if err != nil {
		return "", nil, err
	}
	return object, locations, nil
}

// objectDistance reads "object [<range>]".
func objectDistance(req *request) (string, spec.Range, error) {
	object, rest, err := splitObject(req.body)
	if err != nil {
		return "", spec.Range{}, err
	}
	if strings.TrimSpace(rest) == "" {
		return object, defaultDistance, nil
	}
	delta, err := req.delta()
	if err != nil {
		return "", spec.Range{}, err
	}
	r, err := grammar.ParseRangeText(rest, delta)
	if err != nil {
		return "", spec.Range{}, err
	}
	return object, r, nil
}

// objectErrorRate reads "object [N px]".
func objectErrorRate(req *request) (string, int, error) {
	object, rest, err := splitObject(req.body)
	if err != nil {
		return "", 0, err
	}
	rate, err := grammar.ParsePixelErrorRate(rest)
	if err != nil {
		return "", 0, err
	}
	return object, rate, nil
}

func parseContains(partly bool) parseFunc {
	return func(req *request) (spec.Spec, error) {
		objects := grammar.SplitClauses(req.body)
		if len(objects) == 0 {
			return nil, spec.MissingObjectNameError()
		}
		return &spec.Contains{Base: req.base(), ChildObjects: objects, Partly: partly}, nil
	}
}

func parseInside(partly bool) parseFunc {
	return func(req *request) (spec.Spec, error) {
		object, locations, err := objectLocations(req)
		if err != nil {
			return nil, err
		}
		return &spec.Inside{Base: req.base(), Object: object, Partly: partly, Locations: locations}, nil
	}
}

func parseNear(req *request) (spec.Spec, error) {
	object, locations, err := objectLocations(req)
	if err != nil {
		return nil, err
	}
	return &spec.Near{Base: req.base(), Object: object, Locations: locations}, nil
}

func parseOn(req *request) (spec.Spec, error) {
	corner, err := grammar.ParseCornerSides(req.modifiers)
	if err != nil {
		return nil, err
	}
	object, locations, err := objectLocations(req)
	if err != nil {
		return nil, err
	}
	return &spec.On{
		Base:           req.base(),
		Object:         object,
		SideHorizontal: corner.Horizontal,
		SideVertical:   corner.Vertical,
		Locations:      locations,
	}, nil
}

func parseAbove(req *request) (spec.Spec, error) {
	object, r, err := objectDistance(req)
	if err != nil {
		return nil, err
	}
	return &spec.Above{Base: req.base(), Object: object, Range: r}, nil
}

func parseBelow(req *request) (spec.Spec, error) {
	object, r, err := objectDistance(req)
	if err != nil {
		return nil, err
	}
	return &spec.Below{Base: req.base(), Object: object, Range: r}, nil
}

func parseLeftOf(req *request) (spec.Spec, error) {
	object, r, err := objectDistance(req)
	if err != nil {
		return nil, err
	}
	return &spec.LeftOf{Base: req.base(), Object: object, Range: r}, nil
}

func parseRightOf(req *request) (spec.Spec, error) {
	object, r, err := objectDistance(req)
	if err != nil {
		return nil, err
	}
	return &spec.RightOf{Base: req.base(), Object: object, Range: r}, nil
}

var alignmentWords = map[string]spec.Alignment{
	"all":      spec.AlignAll,
	"top":      spec.AlignTop,
	"bottom":   spec.AlignBottom,
	"left":     spec.AlignLeft,
	"right":    spec.AlignRight,
	"centered": spec.AlignCentered,
}

// alignment reads the optional alignment modifier, restricted to legal.
func alignment(req *request, legal []spec.Alignment) (spec.Alignment, error) {
	switch len(req.modifiers) {
	case 0:
		return spec.AlignAll, nil
	case 1:
		a, ok := alignmentWords[req.modifiers[0]]
		if ok && slices.Contains(legal, a) {
			return a, nil
		}
	}
	return 0, spec.UnknownDirectiveError(req.header)
}

func parseHorizontally(req *request) (spec.Spec, error) {
	a, err := alignment(req, spec.HorizontalAlignments)
	if err != nil {
		return nil, err
	}
	object, rate, err := objectErrorRate(req)
	if err != nil {
		return nil, err
	}
	return &spec.Horizontally{Base: req.base(), Object: object, Alignment: a, ErrorRate: rate}, nil
}

func parseVertically(req *request) (spec.Spec, error) {
	a, err := alignment(req, spec.VerticalAlignments)
	if err != nil {
		return nil, err
	}
	object, rate, err := objectErrorRate(req)
	if err != nil {
		return nil, err
	}
	return &spec.Vertically{Base: req.base(), Object: object, Alignment: a, ErrorRate: rate}, nil
}

var centeredAlignmentWords = map[string]spec.CenteredAlignment{
	"all":          spec.CenteredAll,
	"horizontally": spec.CenteredHorizontally,
	"vertically":   spec.CenteredVertically,
}

var centeredLocationWords = map[string]spec.CenteredLocation{
	"inside": spec.CenteredInside,
	"on":     spec.CenteredOn,
}

// parseCentered handles "centered [all|horizontally|vertically] (inside|on)".
func parseCentered(req *request) (spec.Spec, error) {
	mods := req.modifiers
	a := spec.CenteredAll
	if len(mods) == 2 {
		var ok bool
		if a, ok = centeredAlignmentWords[mods[0]]; !ok {
			return nil, spec.UnknownDirectiveError(req.header)
		}
		mods = mods[1:]
	}
	if len(mods) != 1 {
		return nil, spec.UnknownDirectiveError(req.header)
	}
	location, ok := centeredLocationWords[mods[0]]
	if !ok {
		return nil, spec.UnknownDirectiveError(req.header)
	}

	object, rate, err := objectErrorRate(req)
	if err != nil {
		return nil, err
	}
	return &spec.Centered{
		Base:      req.base(),
		Object:    object,
		Location:  location,
		Alignment: a,
		ErrorRate: rate,
	}, nil
}
