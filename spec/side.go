/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package spec

import (
	"fmt"
	"sort"
)

// Side is one edge of an element's bounding box.
type Side int

const (
	Top Side = iota
	Bottom
	Left
	Right
)

// String returns the spec-language word for the side.
func (s Side) String() string {
	switch s {
	case Top:
		return "top"
	case Bottom:
		return "bottom"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s Side) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// IsHorizontal reports whether the side is a horizontal edge (top or bottom).
func (s Side) IsHorizontal() bool {
	return s == Top || s == Bottom
}

// IsVertical reports whether the side is a vertical edge (left or right).
func (s Side) IsVertical() bool {
	return s == Left || s == Right
}

// SideFromString parses a side word.
func SideFromString(word string) (Side, error) {
	switch word {
	case "top":
		return Top, nil
	case "bottom":
		return Bottom, nil
	case "left":
		return Left, nil
	case "right":
		return Right, nil
	default:
		return 0, fmt.Errorf("unrecognized side: %s", word)
	}
}

// Location pairs a distance range with the sides it is measured from.
// Sides are kept in canonical order, so two locations written with the
// same sides in a different order are equal.
type Location struct {
	Range Range  `json:"range" yaml:"range"`
	Sides []Side `json:"sides" yaml:"sides"`
}

// NewLocation returns a location with sides sorted into canonical order.
// No sides means the range applies to every side the directive measures.
// The caller is responsible for rejecting duplicates.
func NewLocation(r Range, sides ...Side) Location {
	sorted := make([]Side, 0, len(sides))
	sorted = append(sorted, sides...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	return Location{Range: r, Sides: sorted}
}

// HasSide reports whether the location is measured from s.
func (l Location) HasSide(s Side) bool {
	for _, side := range l.Sides {
		if side == s {
			return true
		}
	}
	return false
}
