// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Marimo Team

// Package codegen translates assembled chart specs into source code.
package codegen

import (
	"fmt"
	"sort"

	"github.com/marimo-team/marimo-sub006/internal/vega"
)

// Generator defines the interface all code generation targets must implement.
type Generator interface {
	// Name returns the target's identifier (e.g., "altair")
	Name() string

	// FileExtension returns the appropriate file extension (e.g., ".py")
	FileExtension() string

	// Generate emits code that recreates the spec over the named datasource
	// variable.
	Generate(spec *vega.Spec, datasource string) (string, error)

	// Snippet wraps the generated code in a ready-to-paste assignment to
	// the named variable.
	Snippet(spec *vega.Spec, datasource, variable string) (string, error)
}

var generators = make(map[string]Generator)

// Register adds a generator to the registry.
func Register(g Generator) {
	generators[g.Name()] = g
}

// Get retrieves a generator by name.
func Get(name string) (Generator, error) {
	g, ok := generators[name]
	if !ok {
		return nil, fmt.Errorf("unknown code generation target: %s", name)
	}
	return g, nil
}

// Available returns all registered generator names, sorted.
func Available() []string {
	names := make([]string, 0, len(generators))
	for name := range generators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
