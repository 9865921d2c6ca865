/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package reader turns one line of spec text into a typed spec.Spec.
//
// A line has the shape "header: body". The header names a directive, with
// optional modifier words ("inside partly", "on right bottom",
// "css font-size is"); the body holds the directive's arguments as
// comma-separated clauses. Every failure is a *spec.SyntaxError whose
// message is meant to be shown to the user verbatim.
package reader

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"bennypowers.dev/layoutspec/config"
	"bennypowers.dev/layoutspec/spec"
)

// Options configures a Reader.
type Options struct {
	// Overlay supplies defaults for omitted clauses. Nil means built-in defaults.
	Overlay config.Overlay

	// ContextDir is the default directory image and component paths are
	// resolved against. ReadWithContext overrides it per call.
	ContextDir string
}

// Reader parses spec lines. It holds no mutable state and is safe for
// concurrent use, provided the overlay is not mutated while reading.
type Reader struct {
	opts Options
}

// New creates a Reader.
func New(opts Options) *Reader {
	return &Reader{opts: opts}
}

// Read parses text using the reader's default context directory.
func (r *Reader) Read(text string) (spec.Spec, error) {
	return r.ReadPtr(&text, r.opts.ContextDir)
}

// ReadWithContext parses text, resolving relative paths against contextDir.
func (r *Reader) ReadWithContext(text, contextDir string) (spec.Spec, error) {
	return r.ReadPtr(&text, contextDir)
}

// ReadPtr parses text, distinguishing absent text (nil) from empty text.
func (r *Reader) ReadPtr(text *string, contextDir string) (spec.Spec, error) {
	if text == nil {
		return nil, spec.NullInputError()
	}

	original := strings.TrimSpace(*text)
	if original == "" {
		return nil, spec.EmptyInputError()
	}

	rawHeader, body := splitHeader(original)
	header := normalizeHeader(rawHeader)

	d, modifiers, ok := lookup(strings.Fields(header))
	if !ok {
		return nil, spec.UnknownDirectiveError(header)
	}
	if len(modifiers) > 0 && !d.modifiers {
		return nil, spec.UnknownDirectiveError(header)
	}

	return d.parse(&request{
		original:   original,
		header:     header,
		modifiers:  modifiers,
		body:       body,
		contextDir: contextDir,
		settings:   config.Snapshot(r.opts.Overlay),
	})
}

// splitHeader splits on the first colon. A leading colon is not a
// delimiter, and text without a colon is all header.
func splitHeader(text string) (header, body string) {
	if i := strings.IndexByte(text, ':'); i > 0 {
		return text[:i], text[i+1:]
	}
	return text, ""
}

// normalizeHeader lowercases the header and collapses whitespace runs.
// A Caser is stateful, so one is made per call.
func normalizeHeader(header string) string {
	return strings.Join(strings.Fields(cases.Lower(language.Und).String(header)), " ")
}

// request carries one parse through a directive parser.
type request struct {
	original   string
	header     string
	modifiers  []string
	body       string
	contextDir string
	settings   config.Settings
}

func (req *request) base() spec.Base {
	return spec.Base{Text: req.original}
}

func (req *request) delta() (float64, error) {
	return req.settings.Approximation()
}
