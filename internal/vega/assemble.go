// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Marimo Team

package vega

import (
	"github.com/marimo-team/marimo-sub006/internal/chartform"
)

// Assemble compiles a chart form into a complete spec, or returns a
// *ValidationError naming the missing required binding. Required fields are
// checked before any encoding is resolved; no partial spec is produced.
func Assemble(chartType chartform.ChartType, form *chartform.Form, theme Theme, width chartform.Size, height int) (*Spec, error) {
	if chartType == chartform.ChartTypePie {
		return assemblePie(form, theme, width, height)
	}

	g := general(form)
	if !g.XColumn.Configured() {
		return nil, ErrXColumnRequired
	}
	if !g.YColumn.Configured() {
		return nil, ErrYColumnRequired
	}

	// Stacking follows the value axis into the output position: when the
	// chart is horizontal the encodings swap, so the flag is attached to
	// whichever encoding ends up carrying it after the swap.
	var xStack, yStack *bool
	if g.Horizontal {
		xStack = g.Stacking
	} else {
		yStack = g.Stacking
	}

	xEnc := AxisEncoding(g.XColumn, xAxisBin(form), xAxisLabel(form), xStack, chartType, DefaultAggregation)
	yEnc := AxisEncoding(g.YColumn, yAxisBin(form), yAxisLabel(form), yStack, chartType, DefaultAggregation)

	enc := &EncodingMap{}
	if g.Horizontal {
		enc.X, enc.Y = yEnc, xEnc
	} else {
		enc.X, enc.Y = xEnc, yEnc
	}
	enc.XOffset = OffsetEncoding(chartType, form)
	enc.Color = ColorEncoding(chartType, form)
	enc.Tooltip = Tooltips(form)
	if g.Facet != nil {
		if row := g.Facet.Row; row != nil && row.Field != "" {
			enc.Row = facetEncoding(row)
		}
		if col := g.Facet.Column; col != nil && col.Field != "" {
			enc.Column = facetEncoding(col)
		}
	}

	spec := baseSpec(chartType, form, theme, width, height)
	spec.Mark = Mark{Type: chartType.MarkType()}
	spec.Encoding = enc
	spec.Resolve = axisResolve(g.Facet)
	return spec, nil
}

// assemblePie compiles the pie branch. The color-by binding supplies the
// slice key and the y binding supplies the slice magnitude, so both are
// required, each with its own message.
func assemblePie(form *chartform.Form, theme Theme, width chartform.Size, height int) (*Spec, error) {
	g := general(form)
	if !g.ColorByColumn.Configured() {
		return nil, ErrColorByRequired
	}
	if !g.YColumn.Configured() {
		return nil, ErrSizeByRequired
	}

	theta := AxisEncoding(g.YColumn, yAxisBin(form), yAxisLabel(form), nil, chartform.ChartTypePie, DefaultAggregation)

	colorBy := g.ColorByColumn
	color := &Encoding{
		Field: colorBy.Field,
		Type:  encodingType(colorBy.Selected()),
		Scale: colorScale(form.Color),
		Title: yAxisLabel(form),
	}

	spec := baseSpec(chartform.ChartTypePie, form, theme, width, height)
	spec.Mark = Mark{Type: chartform.ChartTypePie.MarkType(), InnerRadius: innerRadius(form)}
	spec.Encoding = &EncodingMap{
		Theta:   theta,
		Color:   color,
		Tooltip: Tooltips(form),
	}
	return spec, nil
}

// baseSpec fills the fields common to every chart family. Per-axis size
// overrides win over the caller-supplied defaults, and grid lines default
// on only for scatter charts.
func baseSpec(chartType chartform.ChartType, form *chartform.Form, theme Theme, width chartform.Size, height int) *Spec {
	spec := &Spec{
		Schema:     SchemaURL,
		Background: theme.Background(),
		Title:      general(form).Title,
		Data:       emptyData(),
		Width:      width,
		Height:     height,
	}
	if form != nil {
		if form.XAxis != nil && !form.XAxis.Width.IsZero() {
			spec.Width = form.XAxis.Width
			spec.WidthExplicit = true
		}
		if form.YAxis != nil && form.YAxis.Height != 0 {
			spec.Height = form.YAxis.Height
			spec.HeightExplicit = true
		}
	}

	grid := chartType == chartform.ChartTypeScatter
	if form != nil && form.Style != nil && form.Style.GridLines != nil {
		grid = *form.Style.GridLines
	}
	spec.Config = &Config{Axis: AxisGrid{Grid: grid}}
	return spec
}

// axisResolve computes per-facet axis independence. Unlinking the column
// facet's x axis or the row facet's y axis makes that axis independent per
// cell; linked (or unset) axes share scales and need no resolve key.
func axisResolve(facet *chartform.FacetConfig) *Resolve {
	if facet == nil {
		return nil
	}
	var axis AxisResolve
	if col := facet.Column; col != nil && col.LinkXAxis != nil && !*col.LinkXAxis {
		axis.X = Independent
	}
	if row := facet.Row; row != nil && row.LinkYAxis != nil && !*row.LinkYAxis {
		axis.Y = Independent
	}
	if axis == (AxisResolve{}) {
		return nil
	}
	return &Resolve{Axis: axis}
}

var emptyGeneral = &chartform.GeneralConfig{}

func general(form *chartform.Form) *chartform.GeneralConfig {
	if form == nil || form.General == nil {
		return emptyGeneral
	}
	return form.General
}

func xAxisLabel(form *chartform.Form) string {
	if form == nil || form.XAxis == nil {
		return ""
	}
	return form.XAxis.Label
}

func yAxisLabel(form *chartform.Form) string {
	if form == nil || form.YAxis == nil {
		return ""
	}
	return form.YAxis.Label
}

func xAxisBin(form *chartform.Form) *chartform.BinSpec {
	if form == nil || form.XAxis == nil {
		return nil
	}
	return form.XAxis.Bin
}

func yAxisBin(form *chartform.Form) *chartform.BinSpec {
	if form == nil || form.YAxis == nil {
		return nil
	}
	return form.YAxis.Bin
}

func innerRadius(form *chartform.Form) int {
	if form == nil || form.Style == nil {
		return 0
	}
	return form.Style.InnerRadius
}
