// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Crowd Alert

package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/crowdalert/ocsf-parquet/internal/version"
)

func registerVersionCmd(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.Info())
		},
	}

	parent.AddCommand(cmd)
}
