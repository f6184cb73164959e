// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Crowd Alert

package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/crowdalert/ocsf-parquet/internal/prompts"
	"github.com/crowdalert/ocsf-parquet/internal/session"
	"github.com/crowdalert/ocsf-parquet/internal/translate"

	// Import translator to auto-register
	_ "github.com/crowdalert/ocsf-parquet/internal/translate/parquet"
)

type generateOptions struct {
	classes string
	output  string
	all     bool
}

func registerGenerateCmd(parent *cobra.Command) {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate parquet schema files for event classes",
		Long: `Generate one parquet schema definition per event class.

Output files are routed by category: <output>/<category>/<class>.
Deprecated classes are skipped.`,
		Example: `  # Interactive mode
  ocsf-parquet generate --schema schema.json

  # Generate schemas for all classes
  ocsf-parquet generate --schema schema.json --all

  # Generate schemas for specific classes
  ocsf-parquet generate -s schema.json -c process_activity,file_activity

  # Write to a custom output directory
  ocsf-parquet generate -s schema.json --all -o schemas`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.classes, "class", "c", "", "Class name(s), comma-separated")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "output", "Output directory")
	cmd.Flags().BoolVarP(&opts.all, "all", "a", false, "Generate schemas for all classes")

	parent.AddCommand(cmd)
}

func runGenerate(cmd *cobra.Command, opts *generateOptions) error {
	schemaPath, _ := cmd.Flags().GetString("schema")
	ctx, err := session.Load(schemaPath)
	if err != nil {
		return err
	}

	if ctx.Schema.Classes.Len() == 0 {
		return fmt.Errorf("no classes defined in %s", ctx.Path)
	}

	if opts.all && opts.classes != "" {
		return fmt.Errorf("--all and --class are mutually exclusive")
	}

	output := opts.output
	if !cmd.Flags().Changed("output") && ctx.Config != nil && ctx.Config.Output != "" {
		output = ctx.Config.Output
	}

	selected, err := selectClasses(cmd, opts, ctx, &output)
	if err != nil {
		return err
	}
	if len(selected) == 0 {
		return fmt.Errorf("no classes selected")
	}

	translator, err := translate.Get("parquet")
	if err != nil {
		return err
	}

	if err := os.MkdirAll(output, 0o750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	fmt.Printf("Generating parquet schemas for %d class(es)...\n", len(selected))

	// Each class owns its recursion guards, so classes translate in
	// parallel. Results are collected by index to keep schema order.
	outFiles := make([]string, len(selected))
	var g errgroup.Group
	for i, name := range selected {
		class, _ := ctx.Schema.Classes.Get(name)
		g.Go(func() error {
			data, err := translator.Translate(name, class, ctx.Schema)
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}

			dir := filepath.Join(output, class.Category)
			if err := os.MkdirAll(dir, 0o750); err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}

			outFile := filepath.Join(dir, name+translator.FileExtension())
			if err := os.WriteFile(outFile, data, 0o600); err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			outFiles[i] = outFile
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for _, outFile := range outFiles {
		fmt.Printf("  %s\n", outFile)
	}

	prompts.PrintResult([]prompts.ResultField{
		{Label: "Classes", Value: strconv.Itoa(len(selected))},
		{Label: "Output", Value: output},
	}, "Schema generation complete")

	return nil
}

// selectClasses resolves the class selection from flags, falling back to
// an interactive form when neither --all nor --class was given.
// Deprecated classes are skipped with a notice.
func selectClasses(cmd *cobra.Command, opts *generateOptions, ctx *session.Context, output *string) ([]string, error) {
	var requested []string

	switch {
	case opts.all:
		requested = ctx.Schema.Classes.Keys()
	case opts.classes != "":
		for _, n := range strings.Split(opts.classes, ",") {
			n = strings.TrimSpace(n)
			if n == "" {
				continue
			}
			if _, ok := ctx.Schema.Classes.Get(n); !ok {
				return nil, fmt.Errorf("class %q not found in schema", n)
			}
			requested = append(requested, n)
		}
	default:
		err := prompts.RunGenerateForm(
			&requested, output,
			!cmd.Flags().Changed("output"),
			ctx.Schema.Classes.Keys(),
		)
		if err != nil {
			return nil, err
		}
	}

	selected := make([]string, 0, len(requested))
	for _, name := range requested {
		class, _ := ctx.Schema.Classes.Get(name)
		if class == nil {
			continue
		}
		if class.Deprecated != nil {
			fmt.Printf("  Skipping %s (deprecated)\n", name)
			continue
		}
		selected = append(selected, name)
	}

	return selected, nil
}
