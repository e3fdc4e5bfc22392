// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/artifact-kb/internal/kb"
	"github.com/pdiddy/artifact-kb/internal/logging"
	"github.com/pdiddy/artifact-kb/pkg/types"
)

var syncCmd = &cobra.Command{
	Use:   "sync [definitions-path]",
	Short: "Generate stub articles for undocumented artifact definitions",
	Long: `Sync reads artifact definitions (a single YAML file, or every *.yaml
file at the top level of a directory) and checks each definition for a
reference URL into the knowledge base. Undocumented Windows artifacts get a
stub article written under <kb>/windows/; existing articles are never
overwritten.

Without --kb the run is an audit: gaps are reported and reflected in the
exit status, but nothing is written.`,
	Args: cobra.ExactArgs(1),
	RunE: runSync,
}

func init() {
	syncCmd.Flags().String("kb", "", "path of the artifacts-kb checkout to write articles into")

	rootCmd.AddCommand(syncCmd)
}

func runSync(cmd *cobra.Command, args []string) error {
	definitions := args[0]
	if _, err := os.Stat(definitions); err != nil {
		return fmt.Errorf("no such file or directory: %s", definitions)
	}

	kbPath, _ := cmd.Flags().GetString("kb")
	if kbPath == "" {
		kbPath = viper.GetString("sync.kb_path")
	}

	logger, err := logging.New(logLevel(cmd))
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	sync := kb.NewSynchronizer(types.SyncConfig{KBPath: kbPath}, logger)

	out := cmd.OutOrStdout()
	summary := sync.ProcessSource(definitions, out)
	if summary.HasFailures() {
		fmt.Fprintln(out, "FAILURE")
		return fmt.Errorf("%d definition file(s) failed processing", summary.Failed)
	}

	fmt.Fprintln(out, "SUCCESS")
	return nil
}
