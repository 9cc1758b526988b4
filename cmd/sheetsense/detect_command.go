package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"sheetsense/internal/core"
)

func newDetectCommand() *cobra.Command {
	var window int
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "detect <file.csv>",
		Short: "Detect the header row of a spreadsheet export",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			grid, err := loadGrid(args[0])
			if err != nil {
				return err
			}

			row := core.DetectHeaderRow(grid, core.DetectOptions{ScanWindow: window})

			var cells []string
			if row < len(grid) {
				cells = grid[row]
			}

			if jsonOut {
				return writeJSON(cmd, map[string]any{
					"headerRow":   row,
					"headerCells": cells,
				})
			}

			fmt.Fprintf(cmd.OutOrStdout(), "header row: %d\n", row)
			letters := make([]string, len(cells))
			for i := range cells {
				letters[i] = core.ColumnLetter(i)
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(letters, [][]string{cells}))
			return nil
		},
	}

	cmd.Flags().IntVar(&window, "window", core.DefaultScanWindow, "Number of leading rows to scan")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit JSON instead of a table")

	return cmd
}
