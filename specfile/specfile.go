/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package specfile reads files holding one spec per line.
//
// Blank lines and lines starting with '#' are skipped. Every other line is
// parsed on its own, so one malformed line does not hide the others.
package specfile

import (
	"bufio"
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"bennypowers.dev/layoutspec/fs"
	"bennypowers.dev/layoutspec/internal/logger"
	"bennypowers.dev/layoutspec/reader"
	"bennypowers.dev/layoutspec/spec"
)

// CommentPrefix starts a line that is not a spec.
const CommentPrefix = "#"

// MaxLineSize is the longest line Parse accepts, in bytes.
const MaxLineSize = 1 << 20

// Line is one spec line and its outcome. Exactly one of Spec and Err is set.
type Line struct {
	Number int
	Text   string
	Spec   spec.Spec
	Err    error
}

// File is a parsed spec file.
type File struct {
	Path  string
	Lines []Line
}

// Failures returns the lines that did not parse.
func (f *File) Failures() []Line {
	var failed []Line
	for _, l := range f.Lines {
		if l.Err != nil {
			failed = append(failed, l)
		}
	}
	return failed
}

// Specs returns the parsed specs in file order.
func (f *File) Specs() []spec.Spec {
	specs := make([]spec.Spec, 0, len(f.Lines))
	for _, l := range f.Lines {
		if l.Spec != nil {
			specs = append(specs, l.Spec)
		}
	}
	return specs
}

// Options configures file loading.
type Options struct {
	// Reader parses each line. Nil means a reader with built-in defaults.
	Reader *reader.Reader

	// ContextDir overrides the directory paths are resolved against.
	// Empty means the directory of the spec file.
	ContextDir string
}

// Parse parses data line by line. It fails only when data cannot be split
// into lines, e.g. a line longer than MaxLineSize.
func Parse(data []byte, contextDir string, r *reader.Reader) ([]Line, error) {
	if r == nil {
		r = reader.New(reader.Options{})
	}

	var lines []Line
	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), MaxLineSize)
	number := 0
	for scanner.Scan() {
		number++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, CommentPrefix) {
			continue
		}

		s, err := r.ReadWithContext(text, contextDir)
		lines = append(lines, Line{Number: number, Text: text, Spec: s, Err: err})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("line %d: %w", number+1, err)
	}
	return lines, nil
}

// Load reads and parses the spec file at path.
func Load(filesystem fs.FileSystem, path string, opts Options) (*File, error) {
	data, err := filesystem.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading spec file %s: %w", path, err)
	}

	contextDir := opts.ContextDir
	if contextDir == "" {
		contextDir = filepath.ToSlash(filepath.Dir(path))
	}

	lines, err := Parse(data, contextDir, opts.Reader)
	if err != nil {
		return nil, fmt.Errorf("reading spec file %s: %w", path, err)
	}
	f := &File{Path: path, Lines: lines}

	log := logger.With("file", path)
	log.Debug().Int("specs", len(f.Lines)).Msg("parsed spec file")
	for _, l := range f.Failures() {
		log.Debug().Int("line", l.Number).Msg(l.Err.Error())
	}
	return f, nil
}

// Diagnostic formats a failed line as "path:line: message".
func Diagnostic(path string, l Line) string {
	return fmt.Sprintf("%s:%d: %s", path, l.Number, l.Err)
}
