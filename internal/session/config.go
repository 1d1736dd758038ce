// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Marimo Team

// Package session provides project configuration loading for CLI commands.
package session

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/marimo-team/marimo-sub006/internal/chartform"
	"github.com/marimo-team/marimo-sub006/internal/vega"
)

// CurrentConfigVersion is the current version of the config file format.
const CurrentConfigVersion = 1

// ConfigFileName is the name of the project configuration file.
const ConfigFileName = "chartc.yaml"

// Config represents the chartc.yaml project configuration file. Charts live
// in ChartsDir; the remaining fields are compile-time defaults applied when
// a command is not given the corresponding flag.
type Config struct {
	Version    int    `yaml:"version"`
	ChartsDir  string `yaml:"charts,omitempty"`
	Theme      string `yaml:"theme,omitempty"`
	Width      string `yaml:"width,omitempty"`
	Height     int    `yaml:"height,omitempty"`
	Datasource string `yaml:"datasource,omitempty"`
}

// LoadConfig reads a Config from a file path.
func LoadConfig(path string) (*Config, error) {
	f, err := os.Open(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return nil, err
	}
	defer f.Close() //nolint:errcheck

	var cfg Config
	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes the Config to a file path.
func (c *Config) Save(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return err
	}
	defer f.Close() //nolint:errcheck

	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	return enc.Encode(c)
}

// Validate checks the configuration for required fields and valid values.
func (c *Config) Validate() error {
	if c.Version != CurrentConfigVersion {
		return errors.New("unsupported config version")
	}
	switch vega.Theme(c.Theme) {
	case "", vega.ThemeLight, vega.ThemeDark:
	default:
		return fmt.Errorf("unsupported theme %q", c.Theme)
	}
	if c.Width != "" {
		if _, err := chartform.ParseSize(c.Width); err != nil {
			return err
		}
	}
	return nil
}
