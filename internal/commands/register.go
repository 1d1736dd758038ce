// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Marimo Team

// Package commands contains all CLI command definitions.
package commands

import (
	"github.com/spf13/cobra"
)

// NewRootCmd creates and returns the root command for the CLI.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "chartc",
		Short: "Compile chart configurations to Vega-Lite specs and plotting code",
	}

	registerInitCmd(rootCmd)
	registerNewCmd(rootCmd)
	registerCompileCmd(rootCmd)
	registerCodeCmd(rootCmd)
	registerFormatsCmd(rootCmd)
	registerVersionCmd(rootCmd)

	return rootCmd
}
