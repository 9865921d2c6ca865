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

// absent and visible take no arguments. Anything after the colon is ignored.

func parseAbsent(req *request) (spec.Spec, error) {
	return &spec.Absent{Base: req.base()}, nil
}

func parseVisible(req *request) (spec.Spec, error) {
	return &spec.Visible{Base: req.base()}, nil
}

func parseSize(req *request) (spec.Range, error) {
	delta, err := req.delta()
	if err != nil {
		return spec.Range{}, err
	}
	return grammar.ParseRangeText(req.body, delta)
}

func parseWidth(req *request) (spec.Spec, error) {
	r, err := parseSize(req)
	if err != nil {
		return nil, err
	}
	return &spec.Width{Base: req.base(), Range: r}, nil
}

func parseHeight(req *request) (spec.Spec, error) {
	r, err := parseSize(req)
	if err != nil {
		return nil, err
	}
	return &spec.Height{Base: req.base(), Range: r}, nil
}

// textMode reads "[lowercase|uppercase]* (is|contains|starts|ends|matches)".
// The mode must be the last word.
func textMode(words []string) (spec.TextType, []spec.TextOperation, error) {
	var ops []spec.TextOperation
	for i, word := range words {
		if op := spec.TextOperation(word); op.IsValid() {
			ops = append(ops, op)
			continue
		}
		t, err := spec.TextTypeFromString(word)
		if err != nil {
			return 0, nil, spec.UnknownParameterError(word)
		}
		if i != len(words)-1 {
			return 0, nil, spec.UnknownParameterError(words[i+1])
		}
		return t, ops, nil
	}
	return 0, nil, spec.MissingValidationTypeError()
}

func parseText(req *request) (spec.Spec, error) {
	t, ops, err := textMode(req.modifiers)
	if err != nil {
		return nil, err
	}
	return &spec.Text{
		Base:       req.base(),
		Type:       t,
		Text:       strings.TrimSpace(req.body),
		Operations: ops,
	}, nil
}

// parseCss handles "css <property> [ops]* <mode>: value".
func parseCss(req *request) (spec.Spec, error) {
	if len(req.modifiers) == 0 {
		return nil, spec.MissingCssPropertyNameError()
	}
	property := req.modifiers[0]
	t, ops, err := textMode(req.modifiers[1:])
	if err != nil {
		return nil, err
	}
	return &spec.Css{
		Base:         req.base(),
		PropertyName: property,
		Type:         t,
		Text:         strings.TrimSpace(req.body),
		Operations:   ops,
	}, nil
}

func parseColorScheme(req *request) (spec.Spec, error) {
	delta, err := req.delta()
	if err != nil {
		return nil, err
	}
	clauses := grammar.SplitClauses(req.body)
	colors := make([]spec.ColorRange, 0, len(clauses))
	for _, clause := range clauses {
		c, err := grammar.ParseColorRange(clause, delta)
		if err != nil {
			return nil, err
		}
		colors = append(colors, c)
	}
	return &spec.ColorScheme{Base: req.base(), ColorRanges: colors}, nil
}

func parseComponent(frame bool) parseFunc {
	return func(req *request) (spec.Spec, error) {
		p := strings.TrimSpace(req.body)
		if p == "" {
			return nil, spec.Errorf(spec.ErrMissingObjectName, "Missing spec path")
		}
		return &spec.Component{
			Base:     req.base(),
			SpecPath: grammar.ResolvePath(req.contextDir, p),
			Frame:    frame,
		}, nil
	}
}
