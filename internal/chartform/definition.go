// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Marimo Team

package chartform

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format identifies a chart definition file format.
type Format int

// Supported formats.
const (
	JSON Format = iota
	YAML
)

// FormatFromPath infers the file format from the path extension.
// Unknown extensions default to JSON.
func FormatFromPath(path string) Format {
	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		return YAML
	}
	return JSON
}

// Definition is one chart definition file: a chart type plus the form
// configuration.
type Definition struct {
	Name string    `yaml:"name,omitempty" json:"name,omitempty"`
	Type ChartType `yaml:"type" json:"type"`
	Form Form      `yaml:"form,omitempty" json:"form,omitempty"`
}

// LoadDefinition reads a chart definition from a YAML or JSON file. The
// document is validated against the definition schema before decoding, so a
// misspelled enum value fails with a schema error rather than silently
// producing an unconfigured chart.
func LoadDefinition(path string) (*Definition, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return nil, err
	}

	var raw map[string]any
	switch FormatFromPath(path) {
	case YAML:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("invalid chart definition %s: %w", path, err)
		}
	default:
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("invalid chart definition %s: %w", path, err)
		}
	}

	if err := ValidateDefinition(raw); err != nil {
		return nil, fmt.Errorf("invalid chart definition %s: %w", path, err)
	}

	var def Definition
	switch FormatFromPath(path) {
	case YAML:
		if err := yaml.Unmarshal(data, &def); err != nil {
			return nil, fmt.Errorf("invalid chart definition %s: %w", path, err)
		}
	default:
		if err := json.Unmarshal(data, &def); err != nil {
			return nil, fmt.Errorf("invalid chart definition %s: %w", path, err)
		}
	}
	return &def, nil
}

// Save writes the definition to a YAML or JSON file depending on the path
// extension.
func (d *Definition) Save(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return err
	}
	defer f.Close() //nolint:errcheck

	if FormatFromPath(path) == YAML {
		enc := yaml.NewEncoder(f)
		enc.SetIndent(2)
		return enc.Encode(d)
	}
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(d)
}
