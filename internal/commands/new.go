// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Marimo Team

package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/marimo-team/marimo-sub006/internal/chartform"
	"github.com/marimo-team/marimo-sub006/internal/prompts"
	"github.com/marimo-team/marimo-sub006/internal/session"
)

// ChartFileSuffix is the canonical extension for chart definition files.
const ChartFileSuffix = ".chart.yaml"

func registerNewCmd(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "new",
		Short: "Create a chart definition interactively",
		Long: `Walk through an interactive form and write the resulting chart
definition to the project's charts directory (or the current directory
outside a project).`,
		PreRunE: session.PreRunLoad,
		RunE:    runNew,
	}

	parent.AddCommand(cmd)
}

func runNew(cmd *cobra.Command, _ []string) error {
	dir := "."
	if c := session.FromCommand(cmd); c != nil {
		dir = c.ChartsDir()
	}

	existing, err := existingChartNames(dir)
	if err != nil {
		return err
	}

	values := prompts.ChartValues{
		ChartType:    chartform.ChartTypeBar,
		XType:        chartform.DataTypeString,
		YType:        chartform.DataTypeNumber,
		ColorByType:  chartform.DataTypeString,
		AutoTooltips: true,
	}
	if err := prompts.RunChartForm(&values, existing); err != nil {
		return err
	}

	def := definitionFromValues(&values)
	path := filepath.Join(dir, values.Name+ChartFileSuffix)
	if err := def.Save(path); err != nil {
		return fmt.Errorf("failed to write chart definition: %w", err)
	}

	prompts.PrintResult([]prompts.ResultField{
		{Label: "Chart", Value: values.Name},
		{Label: "Type", Value: string(values.ChartType)},
		{Label: "File", Value: path},
	}, "Chart definition created")

	return nil
}

// definitionFromValues translates the form answers into a chart definition.
// Only answered bindings are materialized so the saved file stays minimal.
func definitionFromValues(v *prompts.ChartValues) *chartform.Definition {
	general := &chartform.GeneralConfig{
		Title:      v.Title,
		Horizontal: v.Horizontal,
	}
	if v.XField != "" {
		general.XColumn = newBinding(v.XField, v.XType, v.XAggregate)
	}
	if v.YField != "" {
		general.YColumn = newBinding(v.YField, v.YType, v.YAggregate)
	}
	if v.ColorByField != "" {
		general.ColorByColumn = newBinding(v.ColorByField, v.ColorByType, "")
	}
	if v.ChartType == chartform.ChartTypeBar {
		stacking := v.Stacking
		general.Stacking = &stacking
	}

	form := chartform.Form{General: general}
	if v.AutoTooltips {
		form.Tooltips = &chartform.TooltipConfig{Auto: true}
	}

	return &chartform.Definition{
		Name: v.Name,
		Type: v.ChartType,
		Form: form,
	}
}

func newBinding(field string, dataType chartform.DataType, agg chartform.AggregationFn) *chartform.ColumnBinding {
	if field == chartform.CountField {
		return &chartform.ColumnBinding{Field: field}
	}
	return &chartform.ColumnBinding{
		Field:            field,
		Type:             dataType,
		SelectedDataType: selectedType(dataType),
		Aggregate:        agg,
	}
}

// selectedType narrows a raw data type to the number/string/temporal
// grouping the resolvers branch on.
func selectedType(t chartform.DataType) chartform.DataType {
	switch t {
	case chartform.DataTypeNumber, chartform.DataTypeInteger:
		return chartform.DataTypeNumber
	case chartform.DataTypeDate, chartform.DataTypeDateTime, chartform.DataTypeTime, chartform.DataTypeTemporal:
		return chartform.DataTypeTemporal
	default:
		return chartform.DataTypeString
	}
}

func existingChartNames(dir string) (map[string]bool, error) {
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return map[string]bool{}, nil
	}
	if err != nil {
		return nil, err
	}
	names := make(map[string]bool)
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ChartFileSuffix) {
			names[strings.TrimSuffix(e.Name(), ChartFileSuffix)] = true
		}
	}
	return names, nil
}
