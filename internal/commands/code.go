// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Marimo Team

package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/marimo-team/marimo-sub006/internal/codegen"
	"github.com/marimo-team/marimo-sub006/internal/session"

	// Import generators to auto-register
	_ "github.com/marimo-team/marimo-sub006/internal/codegen/altair"
	_ "github.com/marimo-team/marimo-sub006/internal/codegen/vegalite"
)

type codeOptions struct {
	format     string
	datasource string
	variable   string
	snippet    bool
	theme      string
	width      string
	height     int
	output     string
}

func registerCodeCmd(parent *cobra.Command) {
	opts := &codeOptions{}

	cmd := &cobra.Command{
		Use:   "code <chart-file>",
		Short: "Generate plotting code for a chart definition",
		Long: fmt.Sprintf(`Generate source code recreating a chart definition.

Available targets: %s`, strings.Join(codegen.Available(), ", ")),
		Example: `  # Altair chain to stdout
  chartc code charts/sales.chart.yaml

  # Ready-to-paste snippet over a custom dataframe variable
  chartc code charts/sales.chart.yaml --datasource data --var _chart --snippet

  # Raw Vega-Lite JSON
  chartc code charts/sales.chart.yaml --format vegalite`,
		Args:    cobra.ExactArgs(1),
		PreRunE: session.PreRunLoad,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCode(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", "altair", fmt.Sprintf("Code generation target (%s)", strings.Join(codegen.Available(), ", ")))
	cmd.Flags().StringVarP(&opts.datasource, "datasource", "d", "", "Datasource variable name")
	cmd.Flags().StringVar(&opts.variable, "var", "_chart", "Variable name used by --snippet")
	cmd.Flags().BoolVarP(&opts.snippet, "snippet", "s", false, "Wrap the code in a variable assignment")
	cmd.Flags().StringVarP(&opts.theme, "theme", "t", "", "Theme (light or dark)")
	cmd.Flags().StringVarP(&opts.width, "width", "w", "", "Chart width in pixels, or \"container\"")
	cmd.Flags().IntVar(&opts.height, "height", 0, "Chart height in pixels")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Output file (default stdout)")

	parent.AddCommand(cmd)
}

func runCode(cmd *cobra.Command, path string, opts *codeOptions) error {
	gen, err := codegen.Get(opts.format)
	if err != nil {
		return err
	}

	spec, err := compileSpec(cmd, path, opts.theme, opts.width, opts.height)
	if err != nil {
		return err
	}

	datasource := opts.datasource
	if datasource == "" {
		datasource = projectConfig(cmd).Datasource
	}
	if datasource == "" {
		datasource = "df"
	}

	var out string
	if opts.snippet {
		out, err = gen.Snippet(spec, datasource, opts.variable)
	} else {
		out, err = gen.Generate(spec, datasource)
	}
	if err != nil {
		return err
	}
	return writeOutput(opts.output, []byte(out+"\n"))
}
