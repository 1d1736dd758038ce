// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Marimo Team

package chartform

// Form is the full chart configuration. Every sub-object is optional;
// absence means "use defaults", and defaults are resolved lazily by the
// compiler rather than filled in here, so a partially specified form
// round-trips unchanged through load and save.
type Form struct {
	General  *GeneralConfig `yaml:"general,omitempty" json:"general,omitempty"`
	XAxis    *XAxisConfig   `yaml:"xAxis,omitempty" json:"xAxis,omitempty"`
	YAxis    *YAxisConfig   `yaml:"yAxis,omitempty" json:"yAxis,omitempty"`
	Color    *ColorConfig   `yaml:"color,omitempty" json:"color,omitempty"`
	Style    *StyleConfig   `yaml:"style,omitempty" json:"style,omitempty"`
	Tooltips *TooltipConfig `yaml:"tooltips,omitempty" json:"tooltips,omitempty"`
}

// GeneralConfig holds the top-level bindings and layout switches.
type GeneralConfig struct {
	Title         string         `yaml:"title,omitempty" json:"title,omitempty"`
	XColumn       *ColumnBinding `yaml:"xColumn,omitempty" json:"xColumn,omitempty"`
	YColumn       *ColumnBinding `yaml:"yColumn,omitempty" json:"yColumn,omitempty"`
	ColorByColumn *ColumnBinding `yaml:"colorByColumn,omitempty" json:"colorByColumn,omitempty"`
	Facet         *FacetConfig   `yaml:"facet,omitempty" json:"facet,omitempty"`
	Horizontal    bool           `yaml:"horizontal,omitempty" json:"horizontal,omitempty"`
	Stacking      *bool          `yaml:"stacking,omitempty" json:"stacking,omitempty"`
}

// ColumnBinding associates one data column with a chart channel.
// An unset or empty Field means the binding is not configured. The reserved
// CountField value means "count of records" and needs no type or aggregate.
type ColumnBinding struct {
	Field            string        `yaml:"field,omitempty" json:"field,omitempty"`
	Type             DataType      `yaml:"type,omitempty" json:"type,omitempty"`
	SelectedDataType DataType      `yaml:"selectedDataType,omitempty" json:"selectedDataType,omitempty"`
	Aggregate        AggregationFn `yaml:"aggregate,omitempty" json:"aggregate,omitempty"`
	TimeUnit         TimeUnit      `yaml:"timeUnit,omitempty" json:"timeUnit,omitempty"`
	Sort             SortDirection `yaml:"sort,omitempty" json:"sort,omitempty"`
}

// Configured reports whether the binding references a column (or the count
// sentinel).
func (c *ColumnBinding) Configured() bool {
	return c != nil && c.Field != ""
}

// Selected returns the user-selected data type, defaulting to string.
func (c *ColumnBinding) Selected() DataType {
	if c == nil || c.SelectedDataType == "" {
		return DataTypeString
	}
	return c.SelectedDataType
}

// BinSpec governs numeric bucketing of an axis. Zero values mean unset.
type BinSpec struct {
	Binned  bool    `yaml:"binned,omitempty" json:"binned,omitempty"`
	Step    float64 `yaml:"step,omitempty" json:"step,omitempty"`
	Maxbins int     `yaml:"maxbins,omitempty" json:"maxbins,omitempty"`
}

// FacetConfig holds the row and column facet bindings.
type FacetConfig struct {
	Row    *FacetBinding `yaml:"row,omitempty" json:"row,omitempty"`
	Column *FacetBinding `yaml:"column,omitempty" json:"column,omitempty"`
}

// FacetBinding repeats the chart per distinct value of a column. Axis links
// default to true: facet cells share a scale unless explicitly unlinked.
type FacetBinding struct {
	Field            string        `yaml:"field,omitempty" json:"field,omitempty"`
	SelectedDataType DataType      `yaml:"selectedDataType,omitempty" json:"selectedDataType,omitempty"`
	Sort             SortDirection `yaml:"sort,omitempty" json:"sort,omitempty"`
	Binned           bool          `yaml:"binned,omitempty" json:"binned,omitempty"`
	Maxbins          int           `yaml:"maxbins,omitempty" json:"maxbins,omitempty"`
	LinkXAxis        *bool         `yaml:"linkXAxis,omitempty" json:"linkXAxis,omitempty"`
	LinkYAxis        *bool         `yaml:"linkYAxis,omitempty" json:"linkYAxis,omitempty"`
}

// Selected returns the facet's selected data type, defaulting to string.
func (f *FacetBinding) Selected() DataType {
	if f == nil || f.SelectedDataType == "" {
		return DataTypeString
	}
	return f.SelectedDataType
}

// XAxisConfig styles the x axis.
type XAxisConfig struct {
	Label string   `yaml:"label,omitempty" json:"label,omitempty"`
	Width Size     `yaml:"width,omitempty" json:"width,omitempty"`
	Bin   *BinSpec `yaml:"bin,omitempty" json:"bin,omitempty"`
}

// YAxisConfig styles the y axis.
type YAxisConfig struct {
	Label  string   `yaml:"label,omitempty" json:"label,omitempty"`
	Height int      `yaml:"height,omitempty" json:"height,omitempty"`
	Bin    *BinSpec `yaml:"bin,omitempty" json:"bin,omitempty"`
}

// ColorConfig styles the color channel. An explicit Range wins over a named
// Scheme; a Scheme of "default" means no override.
type ColorConfig struct {
	Scheme string   `yaml:"scheme,omitempty" json:"scheme,omitempty"`
	Range  []string `yaml:"range,omitempty" json:"range,omitempty"`
	Domain []string `yaml:"domain,omitempty" json:"domain,omitempty"`
	Bin    *BinSpec `yaml:"bin,omitempty" json:"bin,omitempty"`
}

// StyleConfig holds chart-wide styling.
type StyleConfig struct {
	InnerRadius int   `yaml:"innerRadius,omitempty" json:"innerRadius,omitempty"`
	GridLines   *bool `yaml:"gridLines,omitempty" json:"gridLines,omitempty"`
}

// TooltipConfig selects tooltip content. When Auto is set, tooltips are
// derived from the x, y and color-by bindings; otherwise Fields is used
// verbatim.
type TooltipConfig struct {
	Auto   bool           `yaml:"auto,omitempty" json:"auto,omitempty"`
	Fields []TooltipField `yaml:"fields,omitempty" json:"fields,omitempty"`
}

// TooltipField is one explicitly configured tooltip entry.
type TooltipField struct {
	Field string   `yaml:"field" json:"field"`
	Type  DataType `yaml:"type,omitempty" json:"type,omitempty"`
}
