// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Crowd Alert

// Package commands contains all CLI command definitions.
package commands

import "github.com/spf13/cobra"

// NewRootCmd creates and returns the root command for the CLI.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "ocsf-parquet",
		Short: "Generate parquet schema definitions from a compiled OCSF schema",
	}

	rootCmd.PersistentFlags().StringP("schema", "s", "", "Path to the compiled OCSF schema (JSON or YAML)")

	registerGenerateCmd(rootCmd)
	registerClassesCmd(rootCmd)
	registerDescribeCmd(rootCmd)
	registerVersionCmd(rootCmd)

	return rootCmd
}
