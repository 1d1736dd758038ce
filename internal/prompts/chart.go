// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Marimo Team

package prompts

import (
	"github.com/charmbracelet/huh"

	"github.com/marimo-team/marimo-sub006/internal/chartform"
)

// ChartValues collects the answers of the chart builder form.
type ChartValues struct {
	Name      string
	ChartType chartform.ChartType

	XField     string
	XType      chartform.DataType
	XAggregate chartform.AggregationFn

	YField     string
	YType      chartform.DataType
	YAggregate chartform.AggregationFn

	ColorByField string
	ColorByType  chartform.DataType

	Title        string
	Horizontal   bool
	Stacking     bool
	AutoTooltips bool
}

// RunChartForm runs the interactive chart builder. It fills v with user
// input; existing guards against clobbering a saved chart of the same name.
func RunChartForm(v *ChartValues, existing map[string]bool) error {
	chartOptions := make([]huh.Option[chartform.ChartType], 0, len(chartform.ChartTypes()))
	for _, t := range chartform.ChartTypes() {
		chartOptions = append(chartOptions, huh.NewOption(string(t), t))
	}

	if err := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Chart name").
				Prompt(": ").
				Inline(true).
				Value(&v.Name).
				Validate(chartNameValidator(existing)),
			huh.NewSelect[chartform.ChartType]().
				Title("Chart type").
				Options(chartOptions...).
				Value(&v.ChartType),
			huh.NewInput().
				Title("Title").
				Prompt(": ").
				Inline(true).
				Value(&v.Title),
		),
	).WithTheme(Theme()).Run(); err != nil {
		return err
	}

	isPie := v.ChartType == chartform.ChartTypePie

	if err := huh.NewForm(
		columnGroup("X-axis column", &v.XField, &v.XType, &v.XAggregate).
			WithHideFunc(func() bool { return isPie }),
		columnGroup("Y-axis column", &v.YField, &v.YType, &v.YAggregate),
		huh.NewGroup(
			huh.NewInput().
				Title("Color by column").
				Prompt(": ").
				Inline(true).
				Placeholder("leave empty for none").
				Value(&v.ColorByField).
				Validate(func(s string) error {
					if isPie && s == "" {
						return requiredValidator("color by column")(s)
					}
					return nil
				}),
			huh.NewSelect[chartform.DataType]().
				Title("Color by data type").
				Options(dataTypeOptions()...).
				Value(&v.ColorByType),
		),
	).WithTheme(Theme()).Run(); err != nil {
		return err
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Horizontal bars").
				Value(&v.Horizontal),
			huh.NewConfirm().
				Title("Stack series").
				Value(&v.Stacking),
		).WithHideFunc(func() bool { return v.ChartType != chartform.ChartTypeBar }),
		huh.NewGroup(
			huh.NewConfirm().
				Title("Derive tooltips automatically").
				Value(&v.AutoTooltips),
		),
	).WithTheme(Theme()).Run()
}

// columnGroup builds the field/type/aggregate group for one axis binding.
// The aggregate options narrow to the string-safe subset when the selected
// data type is string.
func columnGroup(title string, field *string, dataType *chartform.DataType, agg *chartform.AggregationFn) *huh.Group {
	return huh.NewGroup(
		huh.NewInput().
			Title(title).
			Prompt(": ").
			Inline(true).
			Placeholder("column name, or "+chartform.CountField).
			Value(field).
			Validate(requiredValidator(title)),
		huh.NewSelect[chartform.DataType]().
			Title("Data type").
			Options(dataTypeOptions()...).
			Value(dataType),
		huh.NewSelect[chartform.AggregationFn]().
			Title("Aggregation").
			OptionsFunc(func() []huh.Option[chartform.AggregationFn] {
				return aggregateOptions(*dataType)
			}, dataType).
			Value(agg),
	)
}

func dataTypeOptions() []huh.Option[chartform.DataType] {
	return []huh.Option[chartform.DataType]{
		huh.NewOption("string", chartform.DataTypeString),
		huh.NewOption("number", chartform.DataTypeNumber),
		huh.NewOption("integer", chartform.DataTypeInteger),
		huh.NewOption("boolean", chartform.DataTypeBoolean),
		huh.NewOption("date", chartform.DataTypeDate),
		huh.NewOption("datetime", chartform.DataTypeDateTime),
		huh.NewOption("time", chartform.DataTypeTime),
		huh.NewOption("temporal", chartform.DataTypeTemporal),
	}
}

func aggregateOptions(dataType chartform.DataType) []huh.Option[chartform.AggregationFn] {
	fns := chartform.AggregationFns()
	if dataType == chartform.DataTypeString {
		fns = chartform.StringAggregationFns
	}
	options := make([]huh.Option[chartform.AggregationFn], 0, len(fns))
	for _, fn := range fns {
		options = append(options, huh.NewOption(string(fn), fn))
	}
	return options
}
