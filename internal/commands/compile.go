// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Marimo Team

package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/marimo-team/marimo-sub006/internal/chartform"
	"github.com/marimo-team/marimo-sub006/internal/session"
	"github.com/marimo-team/marimo-sub006/internal/vega"
)

// Built-in compile defaults, used when neither a flag nor the project
// config provides a value.
const (
	defaultWidth  = "container"
	defaultHeight = 300
)

type compileOptions struct {
	theme  string
	width  string
	height int
	data   string
	output string
}

func registerCompileCmd(parent *cobra.Command) {
	opts := &compileOptions{}

	cmd := &cobra.Command{
		Use:   "compile <chart-file>",
		Short: "Compile a chart definition to a Vega-Lite spec",
		Long: `Compile a chart definition file (YAML or JSON) to a Vega-Lite
specification. The spec carries an empty data placeholder unless --data
provides rows to attach.`,
		Example: `  # Compile to stdout
  chartc compile charts/sales.chart.yaml

  # Dark theme, fixed size, rows attached
  chartc compile charts/sales.chart.yaml --theme dark --width 400 --height 300 --data rows.json

  # Write to a file
  chartc compile charts/sales.chart.yaml -o sales.vl.json`,
		Args:    cobra.ExactArgs(1),
		PreRunE: session.PreRunLoad,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompile(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.theme, "theme", "t", "", "Theme (light or dark)")
	cmd.Flags().StringVarP(&opts.width, "width", "w", "", "Chart width in pixels, or \"container\"")
	cmd.Flags().IntVar(&opts.height, "height", 0, "Chart height in pixels")
	cmd.Flags().StringVarP(&opts.data, "data", "d", "", "JSON file with rows to attach to the spec")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Output file (default stdout)")

	parent.AddCommand(cmd)
}

func runCompile(cmd *cobra.Command, path string, opts *compileOptions) error {
	spec, err := compileSpec(cmd, path, opts.theme, opts.width, opts.height)
	if err != nil {
		return err
	}

	if opts.data != "" {
		rows, err := loadRows(opts.data)
		if err != nil {
			return err
		}
		spec = vega.AttachData(spec, rows)
	}

	out, err := json.MarshalIndent(spec, "", "  ")
	if err != nil {
		return err
	}
	return writeOutput(opts.output, append(out, '\n'))
}

// compileSpec loads and assembles a chart definition, resolving theme and
// dimensions from flags, then the project config, then built-in defaults.
func compileSpec(cmd *cobra.Command, path, theme, width string, height int) (*vega.Spec, error) {
	def, err := chartform.LoadDefinition(path)
	if err != nil {
		return nil, err
	}
	if !def.Type.Valid() {
		return nil, fmt.Errorf("unknown chart type %q", def.Type)
	}

	cfg := projectConfig(cmd)
	if theme == "" {
		theme = cfg.Theme
	}
	if theme == "" {
		theme = string(vega.ThemeLight)
	}
	if width == "" {
		width = cfg.Width
	}
	if width == "" {
		width = defaultWidth
	}
	if height == 0 {
		height = cfg.Height
	}
	if height == 0 {
		height = defaultHeight
	}

	size, err := chartform.ParseSize(width)
	if err != nil {
		return nil, err
	}

	return vega.Assemble(def.Type, &def.Form, vega.Theme(theme), size, height)
}

// projectConfig returns the project config, or an empty one outside a
// project.
func projectConfig(cmd *cobra.Command) *session.Config {
	if c := session.FromCommand(cmd); c != nil {
		return c.Config
	}
	return &session.Config{}
}

func loadRows(path string) ([]vega.Row, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return nil, err
	}
	var rows []vega.Row
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("invalid data file %s: %w", path, err)
	}
	return rows, nil
}

func writeOutput(path string, data []byte) error {
	if path == "" {
		_, err := os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(path, data, 0o600)
}
