// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Crowd Alert

package commands

import (
	"fmt"
	"text/tabwriter"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/crowdalert/ocsf-parquet/internal/session"
)

func registerClassesCmd(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "classes",
		Short: "List all event classes in the compiled schema",
		Long: `List all event classes defined in the compiled schema, in schema
order. Displays class names, captions, categories, attribute counts, and
deprecation markers.`,
		Example: `  # List classes
  ocsf-parquet classes --schema schema.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			schemaPath, _ := cmd.Flags().GetString("schema")
			ctx, err := session.Load(schemaPath)
			if err != nil {
				return err
			}
			return runClasses(cmd, ctx)
		},
	}

	parent.AddCommand(cmd)
}

func runClasses(cmd *cobra.Command, ctx *session.Context) error {
	if ctx.Schema.Classes.Len() == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No classes defined.")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "NAME\tCAPTION\tCATEGORY\tATTRS\tDEPRECATED")

	for name, class := range ctx.Schema.Classes.All() {
		if class == nil {
			continue
		}

		caption := class.Caption
		if utf8.RuneCountInString(caption) > 40 {
			caption = string([]rune(caption)[:37]) + "..."
		}
		if caption == "" {
			caption = "-"
		}

		category := class.Category
		if category == "" {
			category = "-"
		}

		deprecated := "-"
		if class.Deprecated != nil {
			deprecated = "yes"
		}

		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\n",
			name, caption, category, class.Attributes.Len(), deprecated)
	}

	return w.Flush()
}
