// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Marimo Team

package session

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var (
	// ErrNotInitialized indicates no chartc.yaml was found in the current directory.
	ErrNotInitialized = errors.New("not in a chartc project (chartc.yaml not found)")

	// ErrInvalidConfig indicates the config file exists but is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// contextKey is used to store Context in context.Context.
type contextKey struct{}

// Context holds the resolved project configuration for one command run.
type Context struct {
	// Config is the parsed project configuration.
	Config *Config

	// Root is the directory containing chartc.yaml.
	Root string
}

// ChartsDir returns the absolute path of the project's charts directory.
func (c *Context) ChartsDir() string {
	dir := c.Config.ChartsDir
	if dir == "" {
		dir = "charts"
	}
	if filepath.IsAbs(dir) {
		return dir
	}
	return filepath.Join(c.Root, dir)
}

// Load loads the project context from the current working directory and
// returns a new context.Context with it stored.
func Load(ctx context.Context) (context.Context, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get current directory: %w", err)
	}

	configPath := filepath.Join(cwd, ConfigFileName)
	if _, statErr := os.Stat(configPath); os.IsNotExist(statErr) {
		return nil, ErrNotInitialized
	}

	cfg, err := LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return context.WithValue(ctx, contextKey{}, &Context{Config: cfg, Root: cwd}), nil
}

// From extracts the project Context from a context.Context.
// Returns nil if no Context is stored.
func From(ctx context.Context) *Context {
	c, _ := ctx.Value(contextKey{}).(*Context)
	return c
}

// FromCommand extracts the project Context from a cobra.Command's context.
// Returns nil if no Context is stored.
func FromCommand(cmd *cobra.Command) *Context {
	return From(cmd.Context())
}

// RequireFromCommand extracts the project Context from a cobra.Command's
// context, returning an error if not found.
func RequireFromCommand(cmd *cobra.Command) (*Context, error) {
	c := FromCommand(cmd)
	if c == nil {
		return nil, ErrNotInitialized
	}
	return c, nil
}

// PreRunLoad is a PersistentPreRunE function that loads the project context
// into the command's context when a project is present. Commands that can
// run standalone tolerate the missing project.
func PreRunLoad(cmd *cobra.Command, _ []string) error {
	ctx, err := Load(cmd.Context())
	if errors.Is(err, ErrNotInitialized) {
		return nil
	}
	if err != nil {
		return err
	}
	cmd.SetContext(ctx)
	return nil
}
