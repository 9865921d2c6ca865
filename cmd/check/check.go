/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package check provides the check command for layoutspec.
package check

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"bennypowers.dev/layoutspec/cmd/flags"
	"bennypowers.dev/layoutspec/fs"
	"bennypowers.dev/layoutspec/specfile"
)

// ErrInvalidSpecs is returned when at least one spec line failed to parse.
var ErrInvalidSpecs = errors.New("invalid specs found")

// Cmd is the check cobra command.
var Cmd = &cobra.Command{
	Use:   "check [files...]",
	Short: "Check spec files for syntax errors",
	Long: `Parse every line of the given spec files and report malformed specs.

Without arguments, the files listed in .config/layoutspec.yaml are checked.
Blank lines and lines starting with # are skipped.`,
	Args:         cobra.ArbitraryArgs,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	Cmd.Flags().Bool("quiet", false, "Only output errors")
}

func run(cmd *cobra.Command, args []string) error {
	quiet, _ := cmd.Flags().GetBool("quiet")

	env, err := flags.Setup(cmd, fs.NewOSFileSystem())
	if err != nil {
		return err
	}
	return Run(env, args, quiet, cmd.OutOrStdout(), cmd.ErrOrStderr())
}

// Run checks files, or the config's files when none are given, writing
// diagnostics to errOut and a summary to out.
func Run(env *flags.Env, files []string, quiet bool, out, errOut io.Writer) error {
	if len(files) == 0 {
		expanded, err := env.Config.ExpandFiles(env.FS, env.Root)
		if err != nil {
			return fmt.Errorf("error expanding config files: %w", err)
		}
		files = expanded
	}
	if len(files) == 0 {
		return fmt.Errorf("no files specified and no files found in config")
	}

	opts := specfile.Options{Reader: env.Reader, ContextDir: env.ContextDir}

	var specs, failures, unreadable int
	for _, file := range files {
		if !quiet {
			fmt.Fprintf(out, "Checking %s...\n", file)
		}

		f, err := specfile.Load(env.FS, file, opts)
		if err != nil {
			fmt.Fprintf(errOut, "Error: %v\n", err)
			unreadable++
			continue
		}

		for _, l := range f.Failures() {
			fmt.Fprintln(errOut, specfile.Diagnostic(f.Path, l))
		}
		specs += len(f.Lines)
		failures += len(f.Failures())
	}

	if !quiet {
		fmt.Fprintf(out, "%d specs in %d files, %d invalid\n", specs, len(files)-unreadable, failures)
	}
	if failures > 0 || unreadable > 0 {
		return ErrInvalidSpecs
	}
	return nil
}
