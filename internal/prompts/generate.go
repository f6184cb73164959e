// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Crowd Alert

package prompts

import "github.com/charmbracelet/huh"

// RunGenerateForm prompts for the class selection and, when askOutput is
// set, the output directory. Called when the generate command is invoked
// without --all or --class.
func RunGenerateForm(selected *[]string, output *string, askOutput bool, classNames []string) error {
	options := make([]huh.Option[string], len(classNames))
	for i, n := range classNames {
		options[i] = huh.NewOption(n, n)
	}

	fields := []huh.Field{
		huh.NewMultiSelect[string]().
			Title("Classes").
			Options(options...).
			Value(selected),
	}

	if askOutput {
		fields = append(fields, huh.NewInput().
			Title("Output directory").
			Value(output).
			Validate(requiredValidator("output directory")))
	}

	return huh.NewForm(huh.NewGroup(fields...)).WithTheme(Theme()).Run()
}
