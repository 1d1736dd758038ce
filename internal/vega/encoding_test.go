// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Marimo Team

package vega

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marimo-team/marimo-sub006/internal/chartform"
)

func TestResolveBin(t *testing.T) {
	tests := []struct {
		name      string
		chartType chartform.ChartType
		selected  chartform.DataType
		bin       *chartform.BinSpec
		want      *BinValue
	}{
		{
			name:      "nil bin spec",
			chartType: chartform.ChartTypeBar,
			selected:  chartform.DataTypeNumber,
			bin:       nil,
			want:      nil,
		},
		{
			name:      "not binned",
			chartType: chartform.ChartTypeBar,
			selected:  chartform.DataTypeNumber,
			bin:       &chartform.BinSpec{},
			want:      nil,
		},
		{
			name:      "binned string column",
			chartType: chartform.ChartTypeBar,
			selected:  chartform.DataTypeString,
			bin:       &chartform.BinSpec{Binned: true},
			want:      nil,
		},
		{
			name:      "binned temporal column",
			chartType: chartform.ChartTypeLine,
			selected:  chartform.DataTypeTemporal,
			bin:       &chartform.BinSpec{Binned: true, Maxbins: 10},
			want:      nil,
		},
		{
			name:      "binned number without parameters is auto",
			chartType: chartform.ChartTypeBar,
			selected:  chartform.DataTypeNumber,
			bin:       &chartform.BinSpec{Binned: true},
			want:      &BinValue{Auto: true},
		},
		{
			name:      "binned number with step",
			chartType: chartform.ChartTypeBar,
			selected:  chartform.DataTypeNumber,
			bin:       &chartform.BinSpec{Binned: true, Step: 2.5},
			want:      &BinValue{Step: 2.5},
		},
		{
			name:      "binned number with maxbins",
			chartType: chartform.ChartTypeScatter,
			selected:  chartform.DataTypeNumber,
			bin:       &chartform.BinSpec{Binned: true, Maxbins: 20},
			want:      &BinValue{Maxbins: 20},
		},
		{
			name:      "heatmap passes maxbins through regardless of type",
			chartType: chartform.ChartTypeHeatmap,
			selected:  chartform.DataTypeString,
			bin:       &chartform.BinSpec{Maxbins: 30},
			want:      &BinValue{Maxbins: 30},
		},
		{
			name:      "heatmap ignores binned flag without maxbins",
			chartType: chartform.ChartTypeHeatmap,
			selected:  chartform.DataTypeNumber,
			bin:       &chartform.BinSpec{Binned: true, Step: 5},
			want:      nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := resolveBin(tt.chartType, tt.selected, tt.bin)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveAggregate(t *testing.T) {
	tests := []struct {
		name       string
		agg        chartform.AggregationFn
		selected   chartform.DataType
		defaultAgg chartform.AggregationFn
		want       chartform.AggregationFn
	}{
		{"temporal never aggregates", chartform.AggSum, chartform.DataTypeTemporal, "", ""},
		{"temporal ignores default", "", chartform.DataTypeTemporal, chartform.AggMean, ""},
		{"none resolves to nothing", chartform.AggNone, chartform.DataTypeNumber, "", ""},
		{"bin pseudo-aggregate resolves to nothing", chartform.AggBin, chartform.DataTypeNumber, "", ""},
		{"unset without default resolves to nothing", "", chartform.DataTypeNumber, "", ""},
		{"unset falls back to default", "", chartform.DataTypeNumber, chartform.AggCount, chartform.AggCount},
		{"string rejects sum", chartform.AggSum, chartform.DataTypeString, "", ""},
		{"string rejects mean", chartform.AggMean, chartform.DataTypeString, "", ""},
		{"string rejects variance", chartform.AggVariance, chartform.DataTypeString, "", ""},
		{"string accepts count", chartform.AggCount, chartform.DataTypeString, "", chartform.AggCount},
		{"string accepts distinct", chartform.AggDistinct, chartform.DataTypeString, "", chartform.AggDistinct},
		{"string accepts valid", chartform.AggValid, chartform.DataTypeString, "", chartform.AggValid},
		{"number keeps aggregate", chartform.AggMedian, chartform.DataTypeNumber, "", chartform.AggMedian},
		{"boolean keeps aggregate", chartform.AggCount, chartform.DataTypeBoolean, "", chartform.AggCount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := resolveAggregate(tt.agg, tt.selected, tt.defaultAgg)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAxisEncoding_CountSentinel(t *testing.T) {
	col := &chartform.ColumnBinding{Field: chartform.CountField}

	enc := AxisEncoding(col, nil, "Records", nil, chartform.ChartTypeBar, "")
	require.NotNil(t, enc)

	assert.Empty(t, enc.Field, "count encodings must not carry a field")
	assert.Equal(t, chartform.AggCount, enc.Aggregate)
	assert.Equal(t, TypeQuantitative, enc.Type)
	assert.Equal(t, "Records", enc.Title)
}

func TestAxisEncoding_CountSentinelLabel(t *testing.T) {
	col := &chartform.ColumnBinding{Field: chartform.CountField}

	enc := AxisEncoding(col, nil, chartform.CountField, nil, chartform.ChartTypeBar, "")
	assert.Empty(t, enc.Title, "sentinel label must not become a title")
}

func TestAxisEncoding_Field(t *testing.T) {
	stack := true
	col := &chartform.ColumnBinding{
		Field:            "price",
		Type:             chartform.DataTypeNumber,
		SelectedDataType: chartform.DataTypeNumber,
		Aggregate:        chartform.AggMean,
		Sort:             chartform.SortDescending,
	}

	enc := AxisEncoding(col, &chartform.BinSpec{Binned: true}, "Price", &stack, chartform.ChartTypeBar, "")

	assert.Equal(t, "price", enc.Field)
	assert.Equal(t, TypeQuantitative, enc.Type)
	assert.Equal(t, chartform.AggMean, enc.Aggregate)
	assert.Equal(t, &BinValue{Auto: true}, enc.Bin)
	assert.Equal(t, "Price", enc.Title)
	assert.Equal(t, chartform.SortDescending, enc.Sort)
	require.NotNil(t, enc.Stack)
	assert.True(t, *enc.Stack)
	assert.Empty(t, enc.TimeUnit)
}

func TestAxisEncoding_TemporalTimeUnit(t *testing.T) {
	col := &chartform.ColumnBinding{
		Field:            "created_at",
		Type:             chartform.DataTypeDateTime,
		SelectedDataType: chartform.DataTypeTemporal,
		TimeUnit:         chartform.TimeUnitDateOnly,
		Aggregate:        chartform.AggSum,
	}

	enc := AxisEncoding(col, nil, "", nil, chartform.ChartTypeLine, "")

	assert.Equal(t, TypeTemporal, enc.Type)
	assert.Equal(t, chartform.TimeUnitDateOnly, enc.TimeUnit)
	assert.Empty(t, enc.Aggregate, "temporal axes never aggregate")
}

func TestAxisEncoding_DefaultsToString(t *testing.T) {
	col := &chartform.ColumnBinding{Field: "category", Aggregate: chartform.AggSum}

	enc := AxisEncoding(col, nil, "", nil, chartform.ChartTypeBar, "")

	assert.Equal(t, TypeNominal, enc.Type)
	assert.Empty(t, enc.Aggregate, "sum is not valid for the string default")
}

func TestColorEncoding(t *testing.T) {
	form := func(col *chartform.ColumnBinding, color *chartform.ColorConfig) *chartform.Form {
		return &chartform.Form{
			General: &chartform.GeneralConfig{ColorByColumn: col},
			Color:   color,
		}
	}

	t.Run("pie has no color encoding", func(t *testing.T) {
		f := form(&chartform.ColumnBinding{Field: "region"}, nil)
		assert.Nil(t, ColorEncoding(chartform.ChartTypePie, f))
	})

	t.Run("unset field has no color encoding", func(t *testing.T) {
		assert.Nil(t, ColorEncoding(chartform.ChartTypeBar, form(nil, nil)))
		assert.Nil(t, ColorEncoding(chartform.ChartTypeBar, form(&chartform.ColumnBinding{}, nil)))
	})

	t.Run("count sentinel", func(t *testing.T) {
		enc := ColorEncoding(chartform.ChartTypeBar, form(&chartform.ColumnBinding{Field: chartform.CountField}, nil))
		require.NotNil(t, enc)
		assert.Empty(t, enc.Field)
		assert.Equal(t, chartform.AggCount, enc.Aggregate)
		assert.Equal(t, TypeQuantitative, enc.Type)
	})

	t.Run("range wins over scheme", func(t *testing.T) {
		enc := ColorEncoding(chartform.ChartTypeBar, form(
			&chartform.ColumnBinding{Field: "region"},
			&chartform.ColorConfig{Scheme: "viridis", Range: []string{"#111", "#222"}},
		))
		require.NotNil(t, enc)
		require.NotNil(t, enc.Scale)
		assert.Equal(t, []string{"#111", "#222"}, enc.Scale.Range)
		assert.Empty(t, enc.Scale.Scheme)
	})

	t.Run("default scheme means no override", func(t *testing.T) {
		enc := ColorEncoding(chartform.ChartTypeBar, form(
			&chartform.ColumnBinding{Field: "region"},
			&chartform.ColorConfig{Scheme: chartform.SchemeDefault},
		))
		require.NotNil(t, enc)
		assert.Nil(t, enc.Scale)
	})

	t.Run("heatmap defaults to count aggregation", func(t *testing.T) {
		enc := ColorEncoding(chartform.ChartTypeHeatmap, form(
			&chartform.ColumnBinding{Field: "value", SelectedDataType: chartform.DataTypeNumber},
			nil,
		))
		require.NotNil(t, enc)
		assert.Equal(t, chartform.AggCount, enc.Aggregate)
	})
}

func TestOffsetEncoding(t *testing.T) {
	stacked := true
	unstacked := false
	form := func(colorBy string, stacking *bool) *chartform.Form {
		g := &chartform.GeneralConfig{Stacking: stacking}
		if colorBy != "" {
			g.ColorByColumn = &chartform.ColumnBinding{Field: colorBy}
		}
		return &chartform.Form{General: g}
	}

	tests := []struct {
		name      string
		chartType chartform.ChartType
		form      *chartform.Form
		want      *Encoding
	}{
		{"line chart never offsets", chartform.ChartTypeLine, form("region", &unstacked), nil},
		{"no color-by no offset", chartform.ChartTypeBar, form("", &unstacked), nil},
		{"stacked bars no offset", chartform.ChartTypeBar, form("region", &stacked), nil},
		{"unset stacking no offset", chartform.ChartTypeBar, form("region", nil), nil},
		{"unstacked grouped bars offset", chartform.ChartTypeBar, form("region", &unstacked), &Encoding{Field: "region"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, OffsetEncoding(tt.chartType, tt.form))
		})
	}
}
