/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package flags holds the persistent flags shared by layoutspec commands and
// turns them, the project config and the environment into a spec reader.
package flags

import (
	"fmt"

	"github.com/spf13/cobra"

	"bennypowers.dev/layoutspec/config"
	"bennypowers.dev/layoutspec/fs"
	"bennypowers.dev/layoutspec/internal/logger"
	"bennypowers.dev/layoutspec/reader"
)

// Flag names.
const (
	Root           = "root"
	Context        = "context"
	LogLevel       = "log-level"
	Approximation  = "approximation"
	ImageTolerance = "image-tolerance"
	ImageError     = "image-error"
)

// overlayFlags maps flags onto overlay keys.
var overlayFlags = map[string]string{
	Approximation:  config.KeyApproximation,
	ImageTolerance: config.KeyImageTolerance,
	ImageError:     config.KeyImageError,
}

// Register adds the persistent flags to the root command.
func Register(root *cobra.Command) {
	pf := root.PersistentFlags()
	pf.String(Root, ".", "Project root holding .config/layoutspec.{yaml,yml,json}")
	pf.String(Context, "", "Directory image and component paths are resolved against")
	pf.String(LogLevel, logger.LevelWarn, "Log level (debug, info, warn, error)")
	pf.Float64(Approximation, config.DefaultApproximation, "Delta applied to ~ ranges")
	pf.Int(ImageTolerance, config.DefaultImageTolerance, "Default color tolerance of image specs")
	pf.String(ImageError, config.DefaultImageError, "Default error rate of image specs (e.g. 2%, 10px)")
}

// Env is what a command needs to read specs.
type Env struct {
	FS     fs.FileSystem
	Root   string
	Config *config.Config
	Reader *reader.Reader

	// ContextDir is the resolved --context flag or config contextDir.
	// Empty means each spec file's own directory.
	ContextDir string
}

// Setup applies the log level and builds the reader. Settings resolve in
// order of precedence: changed flags, LAYOUTSPEC_* environment variables,
// the project config, built-in defaults.
func Setup(cmd *cobra.Command, filesystem fs.FileSystem) (*Env, error) {
	flags := cmd.Flags()

	level, _ := flags.GetString(LogLevel)
	logger.SetLevel(level)

	root, _ := flags.GetString(Root)
	cfg, err := config.Load(filesystem, root)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if cfg == nil {
		logger.Debug("no config found under %s, using defaults", root)
		cfg = config.Default()
	}

	v := config.NewViper(cfg)
	for name, key := range overlayFlags {
		if f := flags.Lookup(name); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("binding flag %s: %w", name, err)
			}
		}
	}

	contextDir, _ := flags.GetString(Context)
	if contextDir == "" {
		contextDir = cfg.ContextDir
	}

	return &Env{
		FS:     filesystem,
		Root:   root,
		Config: cfg,
		Reader: reader.New(reader.Options{
			Overlay:    config.NewViperOverlay(v),
			ContextDir: contextDir,
		}),
		ContextDir: contextDir,
	}, nil
}
