// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Marimo Team

// Package internal contains the main application logic for the CLI.
package internal

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/marimo-team/marimo-sub006/internal/commands"
)

// Run is the main application logic, extracted for testability.
// It accepts OS dependencies as parameters (context, env lookup).
// CHARTC_ROOT, when set, names the project directory to run in.
func Run(ctx context.Context, getenv func(string) string) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if root := getenv("CHARTC_ROOT"); root != "" {
		if err := os.Chdir(root); err != nil {
			return fmt.Errorf("failed to enter CHARTC_ROOT: %w", err)
		}
	}

	rootCmd := commands.NewRootCmd()
	return rootCmd.ExecuteContext(ctx)
}
