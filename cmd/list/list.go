/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package list provides the list command for layoutspec.
package list

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"bennypowers.dev/layoutspec/reader"
)

// Cmd is the list cobra command.
var Cmd = &cobra.Command{
	Use:   "list",
	Short: "List supported spec directives",
	Long:  `List the directive names the spec reader recognizes before the colon of a spec line.`,
	Args:  cobra.NoArgs,
	RunE:  run,
}

func init() {
	Cmd.Flags().String("format", "text", "Output format: text, json")
	Cmd.Flags().String("prefix", "", "Only list directives starting with this word")
}

func run(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	prefix, _ := cmd.Flags().GetString("prefix")

	return write(cmd.OutOrStdout(), filterDirectives(reader.Directives(), prefix), format)
}

// filterDirectives returns the sorted names whose first word starts with prefix.
func filterDirectives(names []string, prefix string) []string {
	var result []string
	for _, name := range names {
		if strings.HasPrefix(name, strings.ToLower(prefix)) {
			result = append(result, name)
		}
	}
	sort.Strings(result)
	return result
}

func write(w io.Writer, names []string, format string) error {
	switch format {
	case "json":
		if names == nil {
			names = []string{}
		}
		out, err := json.MarshalIndent(names, "", "  ")
		if err != nil {
			return fmt.Errorf("error marshaling directives: %w", err)
		}
		fmt.Fprintln(w, string(out))
	case "text":
		for _, name := range names {
			fmt.Fprintln(w, name)
		}
	default:
		return fmt.Errorf("unknown format %q (want text or json)", format)
	}
	return nil
}
