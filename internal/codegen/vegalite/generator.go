// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Marimo Team

// Package vegalite emits the assembled spec itself as indented JSON.
package vegalite

import (
	"encoding/json"
	"fmt"

	"github.com/marimo-team/marimo-sub006/internal/codegen"
	"github.com/marimo-team/marimo-sub006/internal/vega"
)

func init() {
	// Auto-register on import
	codegen.Register(New())
}

// Generator serializes chart specs to Vega-Lite JSON.
type Generator struct{}

// New creates a new Vega-Lite generator.
func New() *Generator {
	return &Generator{}
}

// Name returns the generator's identifier.
func (g *Generator) Name() string {
	return "vegalite"
}

// FileExtension returns the file extension for Vega-Lite files.
func (g *Generator) FileExtension() string {
	return ".json"
}

// Generate marshals the spec to indented JSON. The datasource name is
// unused: a Vega-Lite spec carries its data inline.
func (g *Generator) Generate(spec *vega.Spec, _ string) (string, error) {
	if spec == nil {
		return "", fmt.Errorf("no spec to generate code for")
	}
	out, err := json.MarshalIndent(spec, "", "  ")
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// Snippet assigns the spec JSON to the named variable.
func (g *Generator) Snippet(spec *vega.Spec, datasource, variable string) (string, error) {
	out, err := g.Generate(spec, datasource)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s = %s\n%s", variable, out, variable), nil
}
