package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"sheetsense/internal/core"
)

func newMapCommand() *cobra.Command {
	var fieldsFlag string
	var confidence float64
	var samples int
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "map <file.csv>",
		Short: "Auto-map canonical fields onto a spreadsheet's columns",
		Long: `Detects the header row, assigns the requested canonical field keys to
columns, and previews synthesized display names for the leading data rows.
Ambiguous fields are listed with every candidate column; nothing is
tie-broken silently.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			grid, err := loadGrid(args[0])
			if err != nil {
				return err
			}

			requested := splitFields(fieldsFlag)
			if len(requested) == 0 {
				for _, f := range core.Fields() {
					requested = append(requested, f.Key)
				}
			}

			headerRow := core.DetectHeaderRow(grid, core.DetectOptions{})
			var header []string
			if headerRow < len(grid) {
				header = grid[headerRow]
			}
			result := core.AutoMapFields(requested, header, 0, confidence)

			names := previewNames(grid, headerRow, result, samples)

			if jsonOut {
				return writeJSON(cmd, map[string]any{
					"headerRow":   headerRow,
					"mapping":     result,
					"sampleNames": names,
				})
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "header row: %d\n", headerRow)

			if len(result.Mappings) > 0 {
				rows := make([][]string, 0, len(result.Mappings))
				for _, m := range result.Mappings {
					rows = append(rows, []string{
						m.FieldKey,
						m.ColumnLetter,
						m.Header,
						strconv.FormatFloat(m.Confidence, 'f', 2, 64),
						string(m.MatchType),
					})
				}
				fmt.Fprintln(out, renderTable([]string{"Field", "Column", "Header", "Confidence", "Match"}, rows))
			}

			if len(result.UnmatchedFields) > 0 {
				fmt.Fprintf(out, "unmatched: %s\n", strings.Join(result.UnmatchedFields, ", "))
			}
			for key, candidates := range result.AmbiguousMatches {
				letters := make([]string, len(candidates))
				for i, c := range candidates {
					letters[i] = c.ColumnLetter
				}
				fmt.Fprintf(out, "ambiguous: %s matches columns %s\n", key, strings.Join(letters, ", "))
			}
			if len(names) > 0 {
				fmt.Fprintf(out, "sample names: %s\n", strings.Join(names, " | "))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&fieldsFlag, "fields", "", "Comma-separated canonical field keys (default: full catalog)")
	cmd.Flags().Float64Var(&confidence, "confidence", core.DefaultMapConfidence, "Minimum mapping confidence")
	cmd.Flags().IntVar(&samples, "samples", 3, "Number of smart-name previews")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit JSON instead of tables")

	return cmd
}

func splitFields(flag string) []string {
	var out []string
	for _, f := range strings.Split(flag, ",") {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}

func previewNames(grid core.Grid, headerRow int, result core.AutoMappingResult, limit int) []string {
	columns := result.MappedColumns()
	names := []string{}
	for row := headerRow + 1; row < len(grid) && len(names) < limit; row++ {
		names = append(names, core.GenerateSmartName(grid[row], columns))
	}
	return names
}
