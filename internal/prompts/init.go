// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Marimo Team

package prompts

import (
	"github.com/charmbracelet/huh"

	"github.com/marimo-team/marimo-sub006/internal/vega"
)

// RunInitForm runs the interactive form for the init command.
// It fills the provided pointers with user input.
func RunInitForm(chartsDir, theme, datasource, width *string) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Charts directory").
				Prompt(": ").
				Inline(true).
				Placeholder("./charts").
				Value(chartsDir).
				Validate(requiredValidator("charts directory")),
			huh.NewSelect[string]().
				Title("Default theme").
				Options(
					huh.NewOption("Light", string(vega.ThemeLight)),
					huh.NewOption("Dark", string(vega.ThemeDark)),
				).
				Value(theme),
			huh.NewInput().
				Title("Default datasource variable").
				Prompt(": ").
				Inline(true).
				Placeholder("df").
				Value(datasource),
			huh.NewInput().
				Title("Default chart width (pixels or \"container\")").
				Prompt(": ").
				Inline(true).
				Placeholder("container").
				Value(width).
				Validate(sizeValidator),
		),
	).WithTheme(Theme()).Run()
}
