/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package cmd provides CLI commands for layoutspec.
package cmd

import (
	"github.com/spf13/cobra"

	"bennypowers.dev/layoutspec/cmd/check"
	"bennypowers.dev/layoutspec/cmd/flags"
	"bennypowers.dev/layoutspec/cmd/list"
	"bennypowers.dev/layoutspec/cmd/parse"
	"bennypowers.dev/layoutspec/cmd/version"
)

var rootCmd = &cobra.Command{
	Use:   "layoutspec",
	Short: "Parse and check layout spec files",
	Long: `layoutspec reads the layout assertion language ("inside: form 10px top left",
"image: file login.png, error 2%") and reports precise syntax errors.`,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	flags.Register(rootCmd)

	rootCmd.AddCommand(check.Cmd)
	rootCmd.AddCommand(list.Cmd)
	rootCmd.AddCommand(parse.Cmd)
	rootCmd.AddCommand(version.Cmd)
}
