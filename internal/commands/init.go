// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Marimo Team

package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/marimo-team/marimo-sub006/internal/prompts"
	"github.com/marimo-team/marimo-sub006/internal/session"
	"github.com/marimo-team/marimo-sub006/internal/vega"
)

type initOptions struct {
	chartsDir      string
	theme          string
	datasource     string
	width          string
	nonInteractive bool
}

func registerInitCmd(parent *cobra.Command) {
	opts := &initOptions{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new chartc project",
		Long: `Initialize a new chartc project with a chartc.yaml configuration file
and a directory for chart definitions.`,
		Example: `  # Interactive mode
  chartc init

  # Non-interactive
  chartc init --charts ./charts --theme dark --non-interactive`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(opts)
		},
	}

	cmd.Flags().StringVarP(&opts.chartsDir, "charts", "c", "./charts", "Path to the chart definitions folder")
	cmd.Flags().StringVarP(&opts.theme, "theme", "t", string(vega.ThemeLight), "Default theme (light or dark)")
	cmd.Flags().StringVarP(&opts.datasource, "datasource", "d", "df", "Default datasource variable for generated code")
	cmd.Flags().StringVarP(&opts.width, "width", "w", defaultWidth, "Default chart width (pixels or \"container\")")
	cmd.Flags().BoolVar(&opts.nonInteractive, "non-interactive", false, "Run without prompts")

	parent.AddCommand(cmd)
}

func runInit(opts *initOptions) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}

	// Check that the current directory isn't already initialized
	configPath := filepath.Join(cwd, session.ConfigFileName)
	if _, err := os.Stat(configPath); err == nil {
		return errors.New("chartc.yaml already exists; project already initialized")
	}

	if !opts.nonInteractive {
		if err := prompts.RunInitForm(&opts.chartsDir, &opts.theme, &opts.datasource, &opts.width); err != nil {
			return err
		}
	}

	cfg := session.Config{
		Version:    session.CurrentConfigVersion,
		ChartsDir:  opts.chartsDir,
		Theme:      opts.theme,
		Datasource: opts.datasource,
		Width:      opts.width,
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	chartsDir := opts.chartsDir
	if !filepath.IsAbs(chartsDir) {
		chartsDir = filepath.Join(cwd, chartsDir)
	}
	if err := os.MkdirAll(chartsDir, 0o750); err != nil {
		return fmt.Errorf("failed to create charts directory: %w", err)
	}

	if err := cfg.Save(configPath); err != nil {
		return fmt.Errorf("config file couldn't be saved: %w", err)
	}

	prompts.PrintResult([]prompts.ResultField{
		{Label: "Config", Value: configPath},
		{Label: "Charts", Value: chartsDir},
		{Label: "Theme", Value: opts.theme},
	}, "Initialization completed")

	return nil
}
