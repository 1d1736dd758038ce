// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Marimo Team

package vega

// ValidationError reports a missing required binding. The message is shown
// to the user as-is in place of the chart. It is returned, never panicked:
// the assembler is the only stage that can fail, and only for absent
// required fields.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Validation errors returned by Assemble.
var (
	ErrXColumnRequired = &ValidationError{Message: "X-axis column is required"}
	ErrYColumnRequired = &ValidationError{Message: "Y-axis column is required"}
	ErrColorByRequired = &ValidationError{Message: "Color by column is required"}
	ErrSizeByRequired  = &ValidationError{Message: "Size by column is required"}
)
