package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"sheetsense/internal/core"
)

func newFieldsCommand() *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "fields",
		Short: "List the canonical field catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fields := core.Fields()

			if jsonOut {
				return writeJSON(cmd, fields)
			}

			rows := make([][]string, 0, len(fields))
			for _, f := range fields {
				strong := ""
				if core.IsStrongField(f.Key) {
					strong = "yes"
				}
				rows = append(rows, []string{
					f.Key,
					f.DisplayName,
					string(f.Category),
					strong,
					strings.Join(f.Aliases, ", "),
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"Key", "Display Name", "Category", "Strong", "Aliases"}, rows))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit JSON instead of a table")

	return cmd
}
