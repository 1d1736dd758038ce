// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Marimo Team

// Package vega compiles a chart form into a Vega-Lite specification.
//
// The compiler is a pipeline of pure functions: encoding resolvers turn one
// column binding into one encoding channel, and the assembler composes the
// channels into a complete spec. Nothing here holds state between calls;
// every result is recomputed from the form snapshot it is given.
package vega

import (
	"encoding/json"

	"github.com/marimo-team/marimo-sub006/internal/chartform"
)

// SchemaURL is the Vega-Lite schema the compiler targets.
const SchemaURL = "https://vega.github.io/schema/vega-lite/v5.json"

// Theme selects the rendering background.
type Theme string

// Supported themes.
const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Background returns the spec background color for the theme.
func (t Theme) Background() string {
	if t == ThemeDark {
		return "black"
	}
	return "white"
}

// Row is one record of the tabular dataset.
type Row = map[string]any

// Spec is a complete Vega-Lite chart specification.
//
// WidthExplicit and HeightExplicit record whether the dimensions came from
// the form's per-axis overrides rather than the caller's ambient defaults.
// The JSON spec always carries the resolved values; code generation echoes
// only explicit sizes.
type Spec struct {
	Schema     string         `json:"$schema"`
	Background string         `json:"background"`
	Title      string         `json:"title,omitempty"`
	Data       *Data          `json:"data"`
	Width      chartform.Size `json:"width"`
	Height     int            `json:"height"`
	Mark       Mark           `json:"mark"`
	Encoding   *EncodingMap   `json:"encoding,omitempty"`
	Resolve    *Resolve       `json:"resolve,omitempty"`
	Config     *Config        `json:"config,omitempty"`

	WidthExplicit  bool `json:"-"`
	HeightExplicit bool `json:"-"`
}

// Data holds the inline dataset. The assembler always emits an empty
// placeholder; AttachData substitutes the real rows just before rendering.
type Data struct {
	Values []Row `json:"values"`
}

func emptyData() *Data {
	return &Data{Values: []Row{}}
}

// Mark describes how data points are drawn.
type Mark struct {
	Type        string `json:"type"`
	InnerRadius int    `json:"innerRadius,omitempty"`
}

// EncodingMap maps channels to encodings.
type EncodingMap struct {
	X       *Encoding  `json:"x,omitempty"`
	Y       *Encoding  `json:"y,omitempty"`
	XOffset *Encoding  `json:"xOffset,omitempty"`
	Color   *Encoding  `json:"color,omitempty"`
	Theta   *Encoding  `json:"theta,omitempty"`
	Row     *Encoding  `json:"row,omitempty"`
	Column  *Encoding  `json:"column,omitempty"`
	Tooltip []Encoding `json:"tooltip,omitempty"`
}

// Encoding is one resolved channel: how a column (or the record count) maps
// to a visual property.
type Encoding struct {
	Field     string                  `json:"field,omitempty"`
	Type      string                  `json:"type,omitempty"`
	Aggregate chartform.AggregationFn `json:"aggregate,omitempty"`
	Bin       *BinValue               `json:"bin,omitempty"`
	TimeUnit  chartform.TimeUnit      `json:"timeUnit,omitempty"`
	Sort      chartform.SortDirection `json:"sort,omitempty"`
	Stack     *bool                   `json:"stack,omitempty"`
	Title     string                  `json:"title,omitempty"`
	Scale     *Scale                  `json:"scale,omitempty"`
	Format    string                  `json:"format,omitempty"`
}

// BinValue is a resolved bin setting: either auto-binning (serialized as
// true) or explicit step/maxbins parameters.
type BinValue struct {
	Auto    bool
	Step    float64
	Maxbins int
}

type binParams struct {
	Step    float64 `json:"step,omitempty"`
	Maxbins int     `json:"maxbins,omitempty"`
}

// MarshalJSON writes auto-binning as the boolean true and explicit binning
// as a parameter object.
func (b BinValue) MarshalJSON() ([]byte, error) {
	if b.Auto {
		return json.Marshal(true)
	}
	return json.Marshal(binParams{Step: b.Step, Maxbins: b.Maxbins})
}

// UnmarshalJSON accepts the boolean true or a parameter object.
func (b *BinValue) UnmarshalJSON(data []byte) error {
	var auto bool
	if err := json.Unmarshal(data, &auto); err == nil {
		*b = BinValue{Auto: auto}
		return nil
	}
	var params binParams
	if err := json.Unmarshal(data, &params); err != nil {
		return err
	}
	*b = BinValue{Step: params.Step, Maxbins: params.Maxbins}
	return nil
}

// Scale overrides the color scale.
type Scale struct {
	Scheme string   `json:"scheme,omitempty"`
	Range  []string `json:"range,omitempty"`
	Domain []string `json:"domain,omitempty"`
}

// Resolve controls per-facet axis independence.
type Resolve struct {
	Axis AxisResolve `json:"axis"`
}

// AxisResolve marks axes as independent across facet cells.
type AxisResolve struct {
	X string `json:"x,omitempty"`
	Y string `json:"y,omitempty"`
}

// Independent is the resolution value for unlinked facet axes.
const Independent = "independent"

// Config carries spec-level rendering configuration.
type Config struct {
	Axis AxisGrid `json:"axis"`
}

// AxisGrid toggles grid lines.
type AxisGrid struct {
	Grid bool `json:"grid"`
}

// Encoding type names.
const (
	TypeQuantitative = "quantitative"
	TypeNominal      = "nominal"
	TypeTemporal     = "temporal"
)

// encodingType maps a declared data type to a Vega-Lite encoding type.
func encodingType(t chartform.DataType) string {
	switch t {
	case chartform.DataTypeNumber, chartform.DataTypeInteger:
		return TypeQuantitative
	case chartform.DataTypeDate, chartform.DataTypeDateTime, chartform.DataTypeTime, chartform.DataTypeTemporal:
		return TypeTemporal
	default:
		return TypeNominal
	}
}
