// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Marimo Team

package chartform

import (
	"fmt"
	"sync"

	"github.com/google/jsonschema-go/jsonschema"
)

// DefinitionSchema returns the JSON Schema for chart definition files.
func DefinitionSchema() *jsonschema.Schema {
	bindingSchema := func() *jsonschema.Schema {
		return &jsonschema.Schema{
			Type: "object",
			Properties: map[string]*jsonschema.Schema{
				"field":            {Type: "string"},
				"type":             enumSchema(dataTypeValues()),
				"selectedDataType": enumSchema(dataTypeValues()),
				"aggregate":        enumSchema(aggregateValues()),
				"timeUnit":         {Type: "string"},
				"sort":             enumSchema([]any{string(SortAscending), string(SortDescending)}),
			},
			AdditionalProperties: &jsonschema.Schema{Not: &jsonschema.Schema{}},
		}
	}

	binSchema := func() *jsonschema.Schema {
		return &jsonschema.Schema{
			Type: "object",
			Properties: map[string]*jsonschema.Schema{
				"binned":  {Type: "boolean"},
				"step":    {Type: "number"},
				"maxbins": {Type: "integer"},
			},
		}
	}

	facetSchema := func() *jsonschema.Schema {
		return &jsonschema.Schema{
			Type: "object",
			Properties: map[string]*jsonschema.Schema{
				"field":            {Type: "string"},
				"selectedDataType": enumSchema(dataTypeValues()),
				"sort":             enumSchema([]any{string(SortAscending), string(SortDescending)}),
				"binned":           {Type: "boolean"},
				"maxbins":          {Type: "integer"},
				"linkXAxis":        {Type: "boolean"},
				"linkYAxis":        {Type: "boolean"},
			},
		}
	}

	sizeSchema := &jsonschema.Schema{
		Types: []string{"integer", "string"},
	}

	return &jsonschema.Schema{
		Type:     "object",
		Required: []string{"type"},
		Properties: map[string]*jsonschema.Schema{
			"name": {Type: "string"},
			"type": enumSchema(chartTypeValues()),
			"form": {
				Type: "object",
				Properties: map[string]*jsonschema.Schema{
					"general": {
						Type: "object",
						Properties: map[string]*jsonschema.Schema{
							"title":         {Type: "string"},
							"xColumn":       bindingSchema(),
							"yColumn":       bindingSchema(),
							"colorByColumn": bindingSchema(),
							"facet": {
								Type: "object",
								Properties: map[string]*jsonschema.Schema{
									"row":    facetSchema(),
									"column": facetSchema(),
								},
							},
							"horizontal": {Type: "boolean"},
							"stacking":   {Type: "boolean"},
						},
					},
					"xAxis": {
						Type: "object",
						Properties: map[string]*jsonschema.Schema{
							"label": {Type: "string"},
							"width": sizeSchema,
							"bin":   binSchema(),
						},
					},
					"yAxis": {
						Type: "object",
						Properties: map[string]*jsonschema.Schema{
							"label":  {Type: "string"},
							"height": {Type: "integer"},
							"bin":    binSchema(),
						},
					},
					"color": {
						Type: "object",
						Properties: map[string]*jsonschema.Schema{
							"scheme": {Type: "string"},
							"range":  {Type: "array", Items: &jsonschema.Schema{Type: "string"}},
							"domain": {Type: "array", Items: &jsonschema.Schema{Type: "string"}},
							"bin":    binSchema(),
						},
					},
					"style": {
						Type: "object",
						Properties: map[string]*jsonschema.Schema{
							"innerRadius": {Type: "integer"},
							"gridLines":   {Type: "boolean"},
						},
					},
					"tooltips": {
						Type: "object",
						Properties: map[string]*jsonschema.Schema{
							"auto": {Type: "boolean"},
							"fields": {
								Type: "array",
								Items: &jsonschema.Schema{
									Type:     "object",
									Required: []string{"field"},
									Properties: map[string]*jsonschema.Schema{
										"field": {Type: "string"},
										"type":  enumSchema(dataTypeValues()),
									},
								},
							},
						},
					},
				},
			},
		},
	}
}

var resolveSchema = sync.OnceValues(func() (*jsonschema.Resolved, error) {
	return DefinitionSchema().Resolve(nil)
})

// ValidateDefinition checks a decoded chart definition document against the
// definition schema.
func ValidateDefinition(doc map[string]any) error {
	resolved, err := resolveSchema()
	if err != nil {
		return fmt.Errorf("resolving definition schema: %w", err)
	}
	return resolved.Validate(doc)
}

func enumSchema(values []any) *jsonschema.Schema {
	return &jsonschema.Schema{Type: "string", Enum: values}
}

func chartTypeValues() []any {
	values := make([]any, 0, len(ChartTypes()))
	for _, t := range ChartTypes() {
		values = append(values, string(t))
	}
	return values
}

func dataTypeValues() []any {
	types := []DataType{
		DataTypeString, DataTypeBoolean, DataTypeInteger, DataTypeNumber,
		DataTypeDate, DataTypeDateTime, DataTypeTime, DataTypeTemporal,
		DataTypeUnknown,
	}
	values := make([]any, 0, len(types))
	for _, t := range types {
		values = append(values, string(t))
	}
	return values
}

func aggregateValues() []any {
	values := make([]any, 0, len(AggregationFns())+1)
	for _, fn := range AggregationFns() {
		values = append(values, string(fn))
	}
	values = append(values, string(AggBin))
	return values
}
