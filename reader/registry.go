/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package reader

import (
	"slices"
	"strings"

	"bennypowers.dev/layoutspec/spec"
)

type parseFunc func(req *request) (spec.Spec, error)

// directive is one entry of the name table.
type directive struct {
	name   string
	tokens []string

	// modifiers reports whether header words after the name are passed to
	// parse instead of being rejected.
	modifiers bool

	parse parseFunc
}

func entry(name string, modifiers bool, parse parseFunc) directive {
	return directive{
		name:      name,
		tokens:    strings.Fields(name),
		modifiers: modifiers,
		parse:     parse,
	}
}

var directives = []directive{
	entry("absent", false, parseAbsent),
	entry("visible", false, parseVisible),
	entry("contains", false, parseContains(false)),
	entry("contains partly", false, parseContains(true)),
	entry("inside", false, parseInside(false)),
	entry("inside partly", false, parseInside(true)),
	entry("near", false, parseNear),
	entry("aligned horizontally", true, parseHorizontally),
	entry("aligned vertically", true, parseVertically),
	entry("width", false, parseWidth),
	entry("height", false, parseHeight),
	entry("text", true, parseText),
	entry("css", true, parseCss),
	entry("above", false, parseAbove),
	entry("below", false, parseBelow),
	entry("left of", false, parseLeftOf),
	entry("right of", false, parseRightOf),
	entry("centered", true, parseCentered),
	entry("on", true, parseOn),
	entry("color scheme", false, parseColorScheme),
	entry("image", false, parseImage),
	entry("component", false, parseComponent(false)),
	entry("component frame", false, parseComponent(true)),
}

// lookup finds the directive whose name is the longest token prefix of
// header and returns the header words that follow it.
func lookup(header []string) (directive, []string, bool) {
	var (
		best  directive
		found bool
	)
	for _, d := range directives {
		if len(d.tokens) > len(header) || !slices.Equal(d.tokens, header[:len(d.tokens)]) {
			continue
		}
		if !found || len(d.tokens) > len(best.tokens) {
			best, found = d, true
		}
	}
	if !found {
		return directive{}, nil, false
	}
	return best, header[len(best.tokens):], true
}

// Directives returns the registered directive names in table order.
func Directives() []string {
	names := make([]string, len(directives))
	for i, d := range directives {
		names[i] = d.name
	}
	return names
}
