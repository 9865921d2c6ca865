/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package config

import (
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment variables that override settings,
// e.g. LAYOUTSPEC_RANGE_APPROXIMATION.
const EnvPrefix = "LAYOUTSPEC"

// NewViper returns a viper instance seeded with cfg's settings as defaults.
// Environment variables take precedence over the config file, and flags
// bound later by the CLI take precedence over both.
func NewViper(cfg *Config) *viper.Viper {
	v := viper.New()
	if cfg == nil {
		cfg = Default()
	}
	for key, value := range cfg.Settings.Values() {
		v.SetDefault(key, value)
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	return v
}
