// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Marimo Team

package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/marimo-team/marimo-sub006/internal/codegen"

	// Import generators to auto-register
	_ "github.com/marimo-team/marimo-sub006/internal/codegen/altair"
	_ "github.com/marimo-team/marimo-sub006/internal/codegen/vegalite"
)

func registerFormatsCmd(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "formats",
		Short: "List available code generation targets",
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, name := range codegen.Available() {
				gen, err := codegen.Get(name)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", name, gen.FileExtension())
			}
			return nil
		},
	}

	parent.AddCommand(cmd)
}
