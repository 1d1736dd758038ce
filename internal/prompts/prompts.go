// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Marimo Team

// Package prompts provides interactive terminal prompts for CLI commands.
package prompts

import (
	"errors"
	"fmt"
	"unicode"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/marimo-team/marimo-sub006/internal/chartform"
)

var (
	accentColor  = lipgloss.Color("#1fb5ac")
	mutedColor   = lipgloss.Color("#8a8a8a")
	successColor = lipgloss.Color("#27ca3f")
)

// Theme returns the shared huh theme used across all CLI forms.
func Theme() *huh.Theme {
	theme := huh.ThemeBase16()
	theme.FieldSeparator = lipgloss.NewStyle().SetString("\n").MarginBottom(1)
	theme.Form = theme.Form.MarginTop(1)
	theme.Group = theme.Group.MarginTop(1)
	theme.Focused.Title = theme.Focused.Title.Foreground(accentColor)
	theme.Blurred.Title = theme.Blurred.Title.Foreground(mutedColor)
	return theme
}

// ResultField is a label-value pair for PrintResult.
type ResultField struct {
	Label string
	Value string
}

// PrintResult prints a styled summary with green checkmarks and gray labels.
func PrintResult(fields []ResultField, successMsg string) {
	success := lipgloss.NewStyle().Foreground(successColor)
	label := lipgloss.NewStyle().Foreground(mutedColor)
	check := success.Render("✓")

	fmt.Println()
	for _, f := range fields {
		fmt.Printf("%s %s %s\n", check, label.Render(f.Label+":"), f.Value)
	}

	if successMsg != "" {
		fmt.Println(success.Render("\n" + successMsg))
	}
}

// chartNameValidator checks a chart name is a valid identifier not already
// taken in the project.
func chartNameValidator(existing map[string]bool) func(string) error {
	return func(s string) error {
		if s == "" {
			return errors.New("chart name is required")
		}
		for i, r := range s {
			if i == 0 && !unicode.IsLetter(r) && r != '_' {
				return errors.New("chart name must start with a letter or underscore")
			}
			if i > 0 && !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' && r != '-' {
				return errors.New("chart name may contain only letters, numbers, underscores, dashes")
			}
		}
		if existing[s] {
			return fmt.Errorf("a chart named %q already exists in this project", s)
		}
		return nil
	}
}

func requiredValidator(field string) func(string) error {
	return func(s string) error {
		if s == "" {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
}

// sizeValidator accepts a pixel count or the "container" keyword. Empty
// input is allowed so the caller's default applies.
func sizeValidator(s string) error {
	if s == "" {
		return nil
	}
	_, err := chartform.ParseSize(s)
	return err
}
