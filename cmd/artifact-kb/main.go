// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the artifact-kb CLI.
// Implements: prd001-definitions, prd002-kb-sync (CLI surface).
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the artifact-kb CLI.
var rootCmd = &cobra.Command{
	Use:   "artifact-kb",
	Short: "Maintain the Digital Forensics Artifact Knowledge Base",
	Long: `artifact-kb keeps the artifacts-kb content repository in step with the
artifact definitions corpus. Definitions whose reference URLs already point
into the knowledge base are left alone; undocumented Windows artifacts get
a stub article generated for later write-up.

Each operation is a subcommand: sync generates missing stub articles,
check validates definition files without touching the knowledge base.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: artifact-kb.yaml in . or ~/.config/artifact-kb)")
	rootCmd.PersistentFlags().String("log-level", "", "minimum log level: debug, info, warn, or error (default info)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("artifact-kb")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "artifact-kb"))
		}
	}

	viper.SetEnvPrefix("ARTIFACT_KB")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// logLevel resolves the log level from the flag, then the config file,
// then the default.
func logLevel(cmd *cobra.Command) string {
	level, _ := cmd.Flags().GetString("log-level")
	if level == "" {
		level = viper.GetString("logging.log_level")
	}
	if level == "" {
		level = "info"
	}
	return level
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
