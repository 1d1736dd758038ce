// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Marimo Team

package altair

import (
	"testing"

	"github.com/marimo-team/marimo-sub006/internal/chartform"
	"github.com/marimo-team/marimo-sub006/internal/vega"
)

func TestGenerator_EndToEnd(t *testing.T) {
	form := &chartform.Form{
		General: &chartform.GeneralConfig{
			XColumn: &chartform.ColumnBinding{Field: "category", Type: chartform.DataTypeString},
			YColumn: &chartform.ColumnBinding{
				Field:            "value",
				Type:             chartform.DataTypeNumber,
				SelectedDataType: chartform.DataTypeNumber,
				Aggregate:        chartform.AggNone,
			},
		},
	}

	spec, err := vega.Assemble(chartform.ChartTypeBar, form, vega.ThemeLight, chartform.Pixels(400), 300)
	if err != nil {
		t.Fatalf("Assemble() error = %v", err)
	}

	got, err := New().Generate(spec, "df")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	want := "alt.Chart(df).mark_bar().encode(x=alt.X(field='category'), y=alt.Y(field='value'))"
	if got != want {
		t.Errorf("Generate() mismatch:\nwant: %s\ngot:  %s", want, got)
	}
}

func TestGenerator_EndToEndAxisOverrides(t *testing.T) {
	form := &chartform.Form{
		General: &chartform.GeneralConfig{
			XColumn: &chartform.ColumnBinding{Field: "category", Type: chartform.DataTypeString},
			YColumn: &chartform.ColumnBinding{
				Field:            "value",
				Type:             chartform.DataTypeNumber,
				SelectedDataType: chartform.DataTypeNumber,
				Aggregate:        chartform.AggNone,
			},
		},
		XAxis: &chartform.XAxisConfig{Width: chartform.Pixels(640)},
		YAxis: &chartform.YAxisConfig{Height: 480},
	}

	spec, err := vega.Assemble(chartform.ChartTypeBar, form, vega.ThemeLight, chartform.Pixels(400), 300)
	if err != nil {
		t.Fatalf("Assemble() error = %v", err)
	}

	got, err := New().Generate(spec, "df")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	want := "alt.Chart(df).mark_bar().encode(x=alt.X(field='category'), y=alt.Y(field='value')).properties(height=480, width=640)"
	if got != want {
		t.Errorf("Generate() mismatch:\nwant: %s\ngot:  %s", want, got)
	}
}

func TestGenerator_EndToEndPie(t *testing.T) {
	form := &chartform.Form{
		General: &chartform.GeneralConfig{
			ColorByColumn: &chartform.ColumnBinding{Field: "region", Type: chartform.DataTypeString},
			YColumn: &chartform.ColumnBinding{
				Field:            "sales",
				SelectedDataType: chartform.DataTypeNumber,
				Aggregate:        chartform.AggSum,
			},
		},
		Style: &chartform.StyleConfig{InnerRadius: 40},
	}

	spec, err := vega.Assemble(chartform.ChartTypePie, form, vega.ThemeLight, chartform.Pixels(400), 300)
	if err != nil {
		t.Fatalf("Assemble() error = %v", err)
	}

	got, err := New().Generate(spec, "df")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	want := "alt.Chart(df).mark_arc(innerRadius=40).encode(color=alt.Color(field='region'), theta=alt.Theta(field='sales', aggregate='sum'))"
	if got != want {
		t.Errorf("Generate() mismatch:\nwant: %s\ngot:  %s", want, got)
	}
}
