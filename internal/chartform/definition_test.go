// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Marimo Team

package chartform_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marimo-team/marimo-sub006/internal/chartform"
)

func TestDefinition_SaveAndLoad(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "sales.chart.yaml")

	stacked := true
	def := chartform.Definition{
		Name: "sales",
		Type: chartform.ChartTypeBar,
		Form: chartform.Form{
			General: &chartform.GeneralConfig{
				Title: "Sales by category",
				XColumn: &chartform.ColumnBinding{
					Field: "category",
					Type:  chartform.DataTypeString,
				},
				YColumn: &chartform.ColumnBinding{
					Field:            "value",
					Type:             chartform.DataTypeNumber,
					SelectedDataType: chartform.DataTypeNumber,
					Aggregate:        chartform.AggSum,
				},
				Stacking: &stacked,
			},
			XAxis: &chartform.XAxisConfig{Width: chartform.Container()},
			YAxis: &chartform.YAxisConfig{Height: 500},
		},
	}

	require.NoError(t, def.Save(path))

	loaded, err := chartform.LoadDefinition(path)
	require.NoError(t, err)
	assert.Equal(t, &def, loaded)
}

func TestDefinition_LoadJSON(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "sales.chart.json")

	doc := `{
  "type": "pie",
  "form": {
    "general": {
      "colorByColumn": {"field": "region"},
      "yColumn": {"field": "sales", "selectedDataType": "number"}
    },
    "style": {"innerRadius": 40}
  }
}`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	def, err := chartform.LoadDefinition(path)
	require.NoError(t, err)
	assert.Equal(t, chartform.ChartTypePie, def.Type)
	require.NotNil(t, def.Form.General)
	assert.Equal(t, "region", def.Form.General.ColorByColumn.Field)
	require.NotNil(t, def.Form.Style)
	assert.Equal(t, 40, def.Form.Style.InnerRadius)
}

func TestDefinition_LoadPartialForm(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "bare.chart.yaml")
	require.NoError(t, os.WriteFile(path, []byte("type: line\n"), 0o600))

	def, err := chartform.LoadDefinition(path)
	require.NoError(t, err)
	assert.Equal(t, chartform.ChartTypeLine, def.Type)
	// Optional sub-objects stay absent; defaults resolve at compile time.
	assert.Nil(t, def.Form.General)
	assert.Nil(t, def.Form.Tooltips)
}

func TestDefinition_LoadRejectsBadEnums(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"unknown chart type", "type: donut\n"},
		{"missing chart type", "name: x\n"},
		{
			"unknown aggregate",
			"type: bar\nform:\n  general:\n    yColumn:\n      field: value\n      aggregate: average\n",
		},
		{
			"unknown sort direction",
			"type: bar\nform:\n  general:\n    xColumn:\n      field: category\n      sort: sideways\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "bad.chart.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.doc), 0o600))

			_, err := chartform.LoadDefinition(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "invalid chart definition")
		})
	}
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		name string
		path string
		want chartform.Format
	}{
		{"yaml extension", "sales.chart.yaml", chartform.YAML},
		{"yml extension", "sales.yml", chartform.YAML},
		{"json extension", "sales.json", chartform.JSON},
		{"no extension", "sales", chartform.JSON},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, chartform.FormatFromPath(tt.path))
		})
	}
}

func TestSize(t *testing.T) {
	t.Run("parse pixels", func(t *testing.T) {
		s, err := chartform.ParseSize("400")
		require.NoError(t, err)
		assert.Equal(t, chartform.Pixels(400), s)
		assert.Equal(t, "400", s.String())
	})

	t.Run("parse container", func(t *testing.T) {
		s, err := chartform.ParseSize("container")
		require.NoError(t, err)
		assert.Equal(t, chartform.Container(), s)
		assert.True(t, !s.IsZero())
	})

	t.Run("parse garbage", func(t *testing.T) {
		_, err := chartform.ParseSize("wide")
		assert.Error(t, err)
	})

	t.Run("zero value is unset", func(t *testing.T) {
		assert.True(t, chartform.Size{}.IsZero())
		assert.False(t, chartform.Pixels(1).IsZero())
	})
}

func TestAggregationFn_IsStringSafe(t *testing.T) {
	assert.True(t, chartform.AggCount.IsStringSafe())
	assert.True(t, chartform.AggDistinct.IsStringSafe())
	assert.True(t, chartform.AggValid.IsStringSafe())
	assert.True(t, chartform.AggNone.IsStringSafe())
	assert.False(t, chartform.AggSum.IsStringSafe())
	assert.False(t, chartform.AggStdevP.IsStringSafe())
}

func TestChartType_MarkType(t *testing.T) {
	tests := []struct {
		chartType chartform.ChartType
		want      string
	}{
		{chartform.ChartTypeBar, "bar"},
		{chartform.ChartTypeLine, "line"},
		{chartform.ChartTypeArea, "area"},
		{chartform.ChartTypePie, "arc"},
		{chartform.ChartTypeScatter, "point"},
		{chartform.ChartTypeHeatmap, "rect"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.chartType.MarkType())
	}
}
