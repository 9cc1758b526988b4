// Command sheetsense inspects spreadsheet exports from the terminal: it runs
// the same header detection and auto-mapping the server exposes, without
// needing a database or a running daemon.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"sheetsense/internal/core"
)

func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "sheetsense",
		Short:         "Inspect spreadsheet exports: header detection and field auto-mapping",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.AddCommand(newDetectCommand())
	rootCmd.AddCommand(newMapCommand())
	rootCmd.AddCommand(newFieldsCommand())

	return rootCmd
}

// loadGrid reads a CSV file into a Grid.
func loadGrid(path string) (core.Grid, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	grid, err := core.ParseGrid(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return grid, nil
}
