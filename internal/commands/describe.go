// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Crowd Alert

package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/crowdalert/ocsf-parquet/internal/session"
	"github.com/crowdalert/ocsf-parquet/internal/translate"
	"github.com/crowdalert/ocsf-parquet/internal/translate/parquet"
)

func registerDescribeCmd(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "describe [class...]",
		Short: "Print generated parquet schemas to stdout",
		Long: `Print the parquet schema definition for the named classes to stdout.
With no arguments, prints the schema of every non-deprecated class.`,
		Example: `  # Print one class schema
  ocsf-parquet describe process_activity --schema schema.json

  # Print all class schemas
  ocsf-parquet describe --schema schema.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			schemaPath, _ := cmd.Flags().GetString("schema")
			ctx, err := session.Load(schemaPath)
			if err != nil {
				return err
			}
			return runDescribe(cmd, ctx, args)
		},
	}

	parent.AddCommand(cmd)
}

func runDescribe(cmd *cobra.Command, ctx *session.Context, names []string) error {
	out := cmd.OutOrStdout()

	if len(names) == 0 {
		for _, cs := range parquet.GenerateAll(ctx.Schema) {
			fmt.Fprintf(out, "# %s/%s\n%s\n\n", cs.Category, cs.Name, cs.Text)
		}
		return nil
	}

	translator, err := translate.Get("parquet")
	if err != nil {
		return err
	}

	for _, name := range names {
		class, ok := ctx.Schema.Classes.Get(name)
		if !ok || class == nil {
			return fmt.Errorf("class %q not found in schema", name)
		}
		if class.Deprecated != nil {
			fmt.Fprintf(out, "# %s (deprecated)\n", name)
		}
		data, err := translator.Translate(name, class, ctx.Schema)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		fmt.Fprintf(out, "%s\n", data)
	}

	return nil
}
