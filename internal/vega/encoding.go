// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Marimo Team

package vega

import (
	"github.com/marimo-team/marimo-sub006/internal/chartform"
)

// DefaultAggregation is the aggregate applied when a binding leaves it
// unset. Empty means no implicit aggregation; call sites that want one
// (the heatmap color channel) pass their own.
const DefaultAggregation chartform.AggregationFn = ""

// AxisEncoding resolves one column binding into one axis encoding.
//
// A binding on the count sentinel produces a field-less count encoding; any
// other binding maps its selected data type to an encoding type, resolves
// binning and aggregation, and passes time unit and sort through.
func AxisEncoding(
	col *chartform.ColumnBinding,
	bin *chartform.BinSpec,
	label string,
	stack *bool,
	chartType chartform.ChartType,
	defaultAgg chartform.AggregationFn,
) *Encoding {
	if col == nil {
		col = &chartform.ColumnBinding{}
	}
	selected := col.Selected()

	if col.Field == chartform.CountField {
		e := &Encoding{
			Aggregate: chartform.AggCount,
			Type:      TypeQuantitative,
			Bin:       resolveBin(chartType, selected, bin),
			Stack:     stack,
		}
		if label != chartform.CountField {
			e.Title = label
		}
		return e
	}

	e := &Encoding{
		Field:     col.Field,
		Type:      encodingType(selected),
		Bin:       resolveBin(chartType, selected, bin),
		Title:     label,
		Stack:     stack,
		Aggregate: resolveAggregate(col.Aggregate, selected, defaultAgg),
		Sort:      col.Sort,
	}
	if encodingType(selected) == TypeTemporal {
		e.TimeUnit = col.TimeUnit
	}
	return e
}

// resolveBin decides whether and how an axis is binned.
//
// Heatmaps pass bin parameters through keyed only on maxbins, regardless of
// data type. Every other chart type bins only explicitly binned numeric
// axes: auto-binning (true) when no parameters are given, explicit
// step/maxbins otherwise.
func resolveBin(chartType chartform.ChartType, selected chartform.DataType, bin *chartform.BinSpec) *BinValue {
	if chartType == chartform.ChartTypeHeatmap {
		if bin != nil && bin.Maxbins != 0 {
			return &BinValue{Maxbins: bin.Maxbins}
		}
		return nil
	}

	if bin == nil || !bin.Binned || selected != chartform.DataTypeNumber {
		return nil
	}
	if bin.Step == 0 && bin.Maxbins == 0 {
		return &BinValue{Auto: true}
	}
	return &BinValue{Step: bin.Step, Maxbins: bin.Maxbins}
}

// resolveAggregate decides the aggregate emitted for a column.
//
// Temporal columns never aggregate. An unset aggregate falls back to the
// caller's default; "none" and the bin pseudo-aggregate resolve to no
// aggregation. String columns only accept the string-safe subset.
func resolveAggregate(agg chartform.AggregationFn, selected chartform.DataType, defaultAgg chartform.AggregationFn) chartform.AggregationFn {
	if selected == chartform.DataTypeTemporal {
		return ""
	}
	if agg == "" {
		agg = defaultAgg
	}
	if agg == "" || agg == chartform.AggNone || agg == chartform.AggBin {
		return ""
	}
	if selected == chartform.DataTypeString && !agg.IsStringSafe() {
		return ""
	}
	return agg
}

// ColorEncoding resolves the color-by binding. Pie charts use a dedicated
// color scheme and return nil here, as does an unconfigured binding.
func ColorEncoding(chartType chartform.ChartType, form *chartform.Form) *Encoding {
	if chartType == chartform.ChartTypePie || form == nil || form.General == nil {
		return nil
	}
	col := form.General.ColorByColumn
	if !col.Configured() {
		return nil
	}
	if col.Field == chartform.CountField {
		return &Encoding{Aggregate: chartform.AggCount, Type: TypeQuantitative}
	}

	selected := col.Selected()
	defaultAgg := DefaultAggregation
	if chartType == chartform.ChartTypeHeatmap {
		// Heatmap cells shade by record count unless told otherwise.
		defaultAgg = chartform.AggCount
	}
	var bin *chartform.BinSpec
	if form.Color != nil {
		bin = form.Color.Bin
	}
	return &Encoding{
		Field:     col.Field,
		Type:      encodingType(selected),
		Scale:     colorScale(form.Color),
		Aggregate: resolveAggregate(col.Aggregate, selected, defaultAgg),
		Bin:       resolveBin(chartType, selected, bin),
	}
}

// colorScale builds the scale override for the color channel. An explicit
// range wins over a named scheme; the "default" scheme means no override.
func colorScale(c *chartform.ColorConfig) *Scale {
	if c == nil {
		return nil
	}
	s := &Scale{Domain: c.Domain}
	switch {
	case len(c.Range) > 0:
		s.Range = c.Range
	case c.Scheme != "" && c.Scheme != chartform.SchemeDefault:
		s.Scheme = c.Scheme
	}
	if s.Scheme == "" && len(s.Range) == 0 && len(s.Domain) == 0 {
		return nil
	}
	return s
}

// OffsetEncoding un-stacks grouped bars. It applies only to bar charts with
// an active color-by field and stacking explicitly disabled.
func OffsetEncoding(chartType chartform.ChartType, form *chartform.Form) *Encoding {
	if chartType != chartform.ChartTypeBar || form == nil || form.General == nil {
		return nil
	}
	g := form.General
	if !g.ColorByColumn.Configured() || g.ColorByColumn.Field == chartform.CountField {
		return nil
	}
	if g.Stacking == nil || *g.Stacking {
		return nil
	}
	return &Encoding{Field: g.ColorByColumn.Field}
}

// facetEncoding resolves a row or column facet binding.
func facetEncoding(f *chartform.FacetBinding) *Encoding {
	e := &Encoding{
		Field: f.Field,
		Type:  encodingType(f.Selected()),
		Sort:  f.Sort,
	}
	if f.Binned {
		if f.Maxbins != 0 {
			e.Bin = &BinValue{Maxbins: f.Maxbins}
		} else {
			e.Bin = &BinValue{Auto: true}
		}
	}
	return e
}
