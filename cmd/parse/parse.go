/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package parse provides the parse command for layoutspec.
package parse

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"bennypowers.dev/layoutspec/cmd/flags"
	"bennypowers.dev/layoutspec/fs"
	"bennypowers.dev/layoutspec/spec"
)

// Cmd is the parse cobra command.
var Cmd = &cobra.Command{
	Use:   "parse <spec text>",
	Short: "Parse a single spec line",
	Long: `Parse one line of spec text and print the resulting spec.

Arguments are joined with spaces, so quoting is optional:

  layoutspec parse "inside: form 10 to 20px top left"
  layoutspec parse --format yaml image: file login.png, error 2%`,
	Args:         cobra.MinimumNArgs(1),
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	Cmd.Flags().StringP("format", "f", "json", "Output format: json, yaml, text")
}

// Output is the printed form of a parsed spec.
type Output struct {
	Kind spec.Kind `json:"kind" yaml:"kind"`
	Spec spec.Spec `json:"spec" yaml:"spec"`
}

func run(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")

	env, err := flags.Setup(cmd, fs.NewOSFileSystem())
	if err != nil {
		return err
	}

	s, err := env.Reader.Read(strings.Join(args, " "))
	if err != nil {
		return err
	}

	out, err := render(s, format)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), out)
	return nil
}

func render(s spec.Spec, format string) (string, error) {
	o := Output{Kind: s.Kind(), Spec: s}
	switch format {
	case "json":
		data, err := json.MarshalIndent(o, "", "  ")
		if err != nil {
			return "", fmt.Errorf("error marshaling spec: %w", err)
		}
		return string(data) + "\n", nil
	case "yaml":
		data, err := yaml.Marshal(o)
		if err != nil {
			return "", fmt.Errorf("error marshaling spec: %w", err)
		}
		return string(data), nil
	case "text":
		return fmt.Sprintf("%s\t%s\n", s.Kind(), s.OriginalText()), nil
	default:
		return "", fmt.Errorf("unknown format %q (want json, yaml or text)", format)
	}
}
