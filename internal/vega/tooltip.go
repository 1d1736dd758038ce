// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Marimo Team

package vega

import (
	"github.com/marimo-team/marimo-sub006/internal/chartform"
)

// Thousands-grouped number formats keyed by the column's raw data type.
const (
	formatInteger = ",.0f"
	formatNumber  = ",.2f"
)

// Tooltips resolves the tooltip channel. It returns nil when the form has
// no tooltip configuration at all; with auto mode on, entries are derived
// from the x, y and color-by bindings in that order, otherwise the
// explicitly configured fields are used verbatim.
func Tooltips(form *chartform.Form) []Encoding {
	if form == nil || form.Tooltips == nil {
		return nil
	}

	if !form.Tooltips.Auto {
		out := make([]Encoding, 0, len(form.Tooltips.Fields))
		for _, f := range form.Tooltips.Fields {
			out = append(out, Encoding{Field: f.Field})
		}
		return out
	}

	out := make([]Encoding, 0, 3)
	g := form.General
	if g == nil {
		return out
	}
	for _, col := range []*chartform.ColumnBinding{g.XColumn, g.YColumn, g.ColorByColumn} {
		if !col.Configured() {
			continue
		}
		out = append(out, autoTooltip(col, g.YColumn))
	}
	return out
}

// autoTooltip derives one tooltip entry from a chart binding. The entry
// mirrors the chart's own y-aggregation when it shows the y field, formats
// numbers with thousands grouping, and resolves a time unit for temporal
// columns so the raw timestamp is not shown.
func autoTooltip(col, yCol *chartform.ColumnBinding) Encoding {
	if col.Field == chartform.CountField {
		return Encoding{Aggregate: chartform.AggCount}
	}

	e := Encoding{Field: col.Field}
	if yCol.Configured() && col.Field == yCol.Field {
		e.Aggregate = resolveAggregate(yCol.Aggregate, yCol.Selected(), DefaultAggregation)
	}

	switch col.Type {
	case chartform.DataTypeInteger:
		e.Format = formatInteger
	case chartform.DataTypeNumber:
		e.Format = formatNumber
	}

	e.TimeUnit = tooltipTimeUnit(col)
	if e.TimeUnit != "" {
		e.Title = col.Field
	}
	return e
}

// tooltipTimeUnit picks a time unit for a tooltip entry: the binding's own
// time unit when the column is temporal, else one inferred from the
// column's declared type.
func tooltipTimeUnit(col *chartform.ColumnBinding) chartform.TimeUnit {
	if encodingType(col.Selected()) == TypeTemporal && col.TimeUnit != "" {
		return col.TimeUnit
	}
	switch col.Type {
	case chartform.DataTypeDateTime:
		return chartform.TimeUnitFull
	case chartform.DataTypeDate:
		return chartform.TimeUnitDateOnly
	case chartform.DataTypeTime:
		return chartform.TimeUnitTimeOnly
	}
	return ""
}
