/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package grammar

import (
	"strings"

	"bennypowers.dev/layoutspec/spec"
)

// ParseSides reads the remaining words of s as side names.
// Duplicates and unknown words are errors. No words yields an empty set.
func ParseSides(s *Scanner) ([]spec.Side, error) {
	var sides []spec.Side
	seen := make(map[spec.Side]bool, 4)
	for !s.AtEnd() {
		word := s.Word()
		side, err := spec.SideFromString(word)
		if err != nil {
			return nil, spec.Errorf(spec.ErrInvalidSides, "Unknown side: %q", word)
		}
		if seen[side] {
			return nil, spec.Errorf(spec.ErrInvalidSides, "Duplicate side: %q", word)
		}
		seen[side] = true
		sides = append(sides, side)
	}
	return sides, nil
}

// ParseLocation reads one "<range> <side>..." group.
func ParseLocation(text string, delta float64) (spec.Location, error) {
	s := NewScanner(text)
	r, err := ParseRange(s, delta)
	if err != nil {
		return spec.Location{}, err
	}
	sides, err := ParseSides(s)
	if err != nil {
		return spec.Location{}, err
	}
	return spec.NewLocation(r, sides...), nil
}

// ParseLocations reads a comma-separated list of location groups.
func ParseLocations(text string, delta float64) ([]spec.Location, error) {
	clauses := SplitClauses(text)
	locations := make([]spec.Location, 0, len(clauses))
	for _, clause := range clauses {
		loc, err := ParseLocation(clause, delta)
		if err != nil {
			return nil, err
		}
		locations = append(locations, loc)
	}
	return locations, nil
}

// CornerSides holds the horizontal and vertical side picked by a directive
// header such as "on right bottom".
type CornerSides struct {
	Horizontal spec.Side
	Vertical   spec.Side
}

// DefaultCorner is the top-left corner used when no sides are written.
var DefaultCorner = CornerSides{Horizontal: spec.Top, Vertical: spec.Left}

// ParseCornerSides reads up to two orthogonal side words written before the
// colon of a directive. Missing sides keep their DefaultCorner value.
func ParseCornerSides(words []string) (CornerSides, error) {
	corner := DefaultCorner
	if len(words) > 2 {
		return corner, spec.Errorf(spec.ErrInvalidSides, "Too many sides. Should use only 2")
	}

	sides := make([]spec.Side, 0, len(words))
	for _, word := range words {
		side, err := spec.SideFromString(word)
		if err != nil {
			return corner, spec.Errorf(spec.ErrInvalidSides, "Unknown side: %q", word)
		}
		sides = append(sides, side)
	}

	if len(sides) == 2 && sides[0].IsHorizontal() == sides[1].IsHorizontal() {
		return corner, spec.Errorf(spec.ErrInvalidSides, "Cannot use theses sides: %s", strings.Join(words, " "))
	}

	for _, side := range sides {
		if side.IsHorizontal() {
			corner.Horizontal = side
		} else {
			corner.Vertical = side
		}
	}
	return corner, nil
}
