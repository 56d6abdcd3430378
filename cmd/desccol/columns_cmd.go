package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/raphi011/desccol/internal/column"
	"github.com/raphi011/desccol/internal/output"
	"github.com/raphi011/desccol/internal/ui/static"
)

// ColumnInfo describes a registered column for JSON output.
type ColumnInfo struct {
	ID             string `json:"id"`
	DisplayName    string `json:"display_name"`
	ShownByDefault bool   `json:"shown_by_default"`
	Help           string `json:"help"`
}

func newColumnsCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:     "columns [ID]",
		Short:   "List available columns",
		GroupID: GroupConfig,
		Args:    cobra.MaximumNArgs(1),
		Long: `List available columns.

With ID, shows the full help of that column.`,
		Example: `  desccol columns               # List columns
  desccol columns description   # Show help for the description column
  desccol columns --json        # Output as JSON`,
		ValidArgsFunction: completeColumnIDs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := output.FromContext(cmd.Context())
			reg := column.Builtin()

			if len(args) == 1 {
				d, ok := reg.Lookup(args[0])
				if !ok {
					return fmt.Errorf("%w %q (available: %s)", column.ErrUnknownColumn, args[0], strings.Join(reg.IDs(), ", "))
				}
				if jsonOutput {
					return out.JSON(columnInfo(d))
				}
				out.Printf("%s (%s)\n\n%s\n", d.DisplayName, d.ID, d.Help)
				return nil
			}

			descriptors := reg.Descriptors()
			if jsonOutput {
				infos := make([]ColumnInfo, len(descriptors))
				for i, d := range descriptors {
					infos[i] = columnInfo(d)
				}
				return out.JSON(infos)
			}

			rows := make([][]string, len(descriptors))
			for i, d := range descriptors {
				def := ""
				if d.ShownByDefault {
					def = "yes"
				}
				rows[i] = []string{d.ID, d.DisplayName, def, firstLine(d.Help)}
			}
			table := static.RenderTable([]string{"ID", "NAME", "DEFAULT", "HELP"}, rows, nil)
			_, err := fmt.Fprint(static.NewWriter(out.Writer()), table)
			return err
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}

func columnInfo(d column.Descriptor) ColumnInfo {
	return ColumnInfo{
		ID:             d.ID,
		DisplayName:    d.DisplayName,
		ShownByDefault: d.ShownByDefault,
		Help:           d.Help,
	}
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(s, "\n")
	return line
}
