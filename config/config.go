/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package config provides the configuration overlay consulted by the spec
// reader and the project configuration file of the layoutspec CLI.
package config

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Config represents the project configuration.
type Config struct {
	// Files lists spec files to check (paths or globs).
	Files []string `yaml:"files" json:"files"`

	// ContextDir is the directory image and component paths are resolved
	// against. Empty means each spec file's own directory.
	ContextDir string `yaml:"contextDir" json:"contextDir"`

	// Settings holds overlay values keyed by their dotted name,
	// e.g. "range.approximation".
	Settings Settings `yaml:"settings" json:"settings"`
}

// rawSettings accepts both nested and dotted forms of the settings block:
//
//	settings:
//	  range:
//	    approximation: 3
//	  spec.image.tolerance: 10
type rawSettings map[string]any

// UnmarshalYAML flattens the settings block into dotted keys.
func (s *Settings) UnmarshalYAML(node *yaml.Node) error {
	var raw rawSettings
	if err := node.Decode(&raw); err != nil {
		return err
	}
	return s.fromRaw(raw)
}

// UnmarshalJSON flattens the settings block into dotted keys.
func (s *Settings) UnmarshalJSON(data []byte) error {
	var raw rawSettings
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	return s.fromRaw(raw)
}

func (s *Settings) fromRaw(raw rawSettings) error {
	flat := make(Map)
	flatten("", raw, flat)
	*s = Snapshot(flat)
	for key := range flat {
		if !isKnownKey(key) {
			return fmt.Errorf("unknown setting %q", key)
		}
	}
	return nil
}

func flatten(prefix string, node map[string]any, out Map) {
	for k, v := range node {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		if child, ok := v.(map[string]any); ok {
			flatten(key, child, out)
			continue
		}
		out[key] = fmt.Sprint(v)
	}
}

func isKnownKey(key string) bool {
	switch key {
	case KeyApproximation, KeyImageTolerance, KeyImageError:
		return true
	}
	return false
}

// Values returns the settings as dotted key/value pairs.
func (s Settings) Values() Map {
	return Map{
		KeyApproximation:  s.approximation,
		KeyImageTolerance: s.imageTolerance,
		KeyImageError:     s.imageError,
	}
}

// Default returns a config with default values.
func Default() *Config {
	return &Config{
		Settings: Snapshot(nil),
	}
}
