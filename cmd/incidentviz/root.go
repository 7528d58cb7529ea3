// Package main provides the entry point for the incidentviz CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for incidentviz.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "incidentviz",
		Short: "Render interactive charts from a terrorism incident dataset",
		Long: `incidentviz cleans a Global Terrorism Database CSV extract and renders
self-contained interactive HTML charts from it:

  - attack types over time (stacked, grouped, or 100% stacked area)
  - casualties by target type (filterable scatter)

plus static PNG snapshots and a Markdown run summary. The pages embed
their data and scripts, so they open from disk with no server and no
network access.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringP("config", "c", "", "Configuration file path (YAML)")
	cmd.PersistentFlags().String("log-level", "", "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().String("log-format", "", "Log format (text, json)")

	cmd.AddCommand(NewRenderCmd())
	cmd.AddCommand(NewInspectCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
