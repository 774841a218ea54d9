// SPDX-License-Identifier: MIT

// Package cli implements the vf2match command-line interface.
//
// # Commands
//
//   - match: match one query molecule against one target molecule
//   - batch: match one query against many targets in parallel
//   - version: print build information
//
// # Configuration
//
// Flags take precedence over the TOML defaults file (--config, or
// $XDG_CONFIG_HOME/vf2match/config.toml when present).
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. The logger
// travels through context.Context and is tagged with a per-invocation run id.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

const (
	// appName is the application name used for directories and display.
	appName = "vf2match"

	// progressEvery is how many search states pass between cancellation checks.
	progressEvery = 1024
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Out    io.Writer

	configPath string
	cfg        Config
}

// New creates a CLI that logs to w and prints results to out.
func New(w, out io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Out:    out,
		cfg:    DefaultConfig(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "vf2match matches molecular graphs with VF2",
		Long:         `vf2match finds isomorphisms, substructure embeddings and maximum common substructures between molecules described in TOML or YAML files.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadConfig(c.configPath)
			if err != nil {
				return err
			}
			c.cfg = cfg

			logger := c.Logger.With("run", uuid.New().String())
			cmd.SetContext(withLogger(cmd.Context(), logger))

			return nil
		},
	}

	root.SetVersionTemplate(versionTemplate())
	root.SetOut(c.Out)
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "defaults file (default: $XDG_CONFIG_HOME/vf2match/config.toml)")

	root.AddCommand(c.matchCommand())
	root.AddCommand(c.batchCommand())
	root.AddCommand(c.versionCommand())

	return root
}
