// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/artifact-kb/internal/check"
)

var checkCmd = &cobra.Command{
	Use:   "check [definitions-path]",
	Short: "Validate artifact definition files",
	Long: `Check parses artifact definition files and reports grammar violations:
missing or duplicate names, unknown fields, and malformed YAML. Nothing is
written; use it as a pre-commit gate for definition changes.`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	definitions := args[0]
	if _, err := os.Stat(definitions); err != nil {
		return fmt.Errorf("no such file or directory: %s", definitions)
	}

	summary, err := check.CheckSource(definitions, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	if summary.HasFailures() {
		return fmt.Errorf("%d definition file(s) failed validation", summary.Invalid)
	}
	return nil
}
