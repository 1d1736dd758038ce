// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Marimo Team

// Package chartform defines the user-editable chart configuration schema.
package chartform

// ChartType identifies the chart family being configured.
type ChartType string

// Supported chart types.
const (
	ChartTypeBar     ChartType = "bar"
	ChartTypeLine    ChartType = "line"
	ChartTypeArea    ChartType = "area"
	ChartTypePie     ChartType = "pie"
	ChartTypeScatter ChartType = "scatter"
	ChartTypeHeatmap ChartType = "heatmap"
)

// ChartTypes returns all supported chart types in display order.
func ChartTypes() []ChartType {
	return []ChartType{
		ChartTypeBar,
		ChartTypeLine,
		ChartTypeArea,
		ChartTypePie,
		ChartTypeScatter,
		ChartTypeHeatmap,
	}
}

// Valid reports whether t is a known chart type.
func (t ChartType) Valid() bool {
	switch t {
	case ChartTypeBar, ChartTypeLine, ChartTypeArea, ChartTypePie, ChartTypeScatter, ChartTypeHeatmap:
		return true
	}
	return false
}

// MarkType returns the mark used to render this chart type.
// Pie charts render as arcs, scatter as points, heatmaps as rects.
func (t ChartType) MarkType() string {
	switch t {
	case ChartTypePie:
		return "arc"
	case ChartTypeScatter:
		return "point"
	case ChartTypeHeatmap:
		return "rect"
	default:
		return string(t)
	}
}

// DataType is the declared type of a data column. A column carries both its
// raw type (as inferred from the data) and the type the user selected for
// encoding purposes.
type DataType string

// Known data types.
const (
	DataTypeString   DataType = "string"
	DataTypeBoolean  DataType = "boolean"
	DataTypeInteger  DataType = "integer"
	DataTypeNumber   DataType = "number"
	DataTypeDate     DataType = "date"
	DataTypeDateTime DataType = "datetime"
	DataTypeTime     DataType = "time"
	DataTypeTemporal DataType = "temporal"
	DataTypeUnknown  DataType = "unknown"
)

// SortDirection orders an axis by its values.
type SortDirection string

// Sort directions.
const (
	SortAscending  SortDirection = "ascending"
	SortDescending SortDirection = "descending"
)

// TimeUnit buckets a temporal field. Values follow Vega-Lite time unit names.
type TimeUnit string

// Time units used when deriving tooltips from temporal columns.
const (
	TimeUnitFull     TimeUnit = "yearmonthdatehoursminutesseconds"
	TimeUnitDateOnly TimeUnit = "yearmonthdate"
	TimeUnitTimeOnly TimeUnit = "hoursminutesseconds"
)

// CountField is the reserved field value meaning "count of records" rather
// than a reference to a real column.
const CountField = "__count__"

// SchemeDefault is the color scheme value meaning "no scheme override".
const SchemeDefault = "default"

// AggregationFn names an aggregation applied to a column before encoding.
type AggregationFn string

// Aggregation functions. AggBin is a pseudo-aggregation that toggles binning
// instead of aggregating.
const (
	AggNone      AggregationFn = "none"
	AggCount     AggregationFn = "count"
	AggSum       AggregationFn = "sum"
	AggMean      AggregationFn = "mean"
	AggMedian    AggregationFn = "median"
	AggMin       AggregationFn = "min"
	AggMax       AggregationFn = "max"
	AggDistinct  AggregationFn = "distinct"
	AggValid     AggregationFn = "valid"
	AggStdev     AggregationFn = "stdev"
	AggStdevP    AggregationFn = "stdevp"
	AggVariance  AggregationFn = "variance"
	AggVarianceP AggregationFn = "variancep"
	AggBin       AggregationFn = "bin"
)

// AggregationFns returns all aggregation functions in display order.
func AggregationFns() []AggregationFn {
	return []AggregationFn{
		AggNone, AggCount, AggSum, AggMean, AggMedian, AggMin, AggMax,
		AggDistinct, AggValid, AggStdev, AggStdevP, AggVariance, AggVarianceP,
	}
}

// StringAggregationFns are the only aggregations valid for string columns.
var StringAggregationFns = []AggregationFn{AggCount, AggDistinct, AggValid, AggNone}

// IsStringSafe reports whether fn may be applied to a string column.
func (fn AggregationFn) IsStringSafe() bool {
	for _, s := range StringAggregationFns {
		if fn == s {
			return true
		}
	}
	return false
}
