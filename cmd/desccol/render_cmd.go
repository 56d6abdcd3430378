package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/raphi011/desccol/internal/column"
	"github.com/raphi011/desccol/internal/description"
	"github.com/raphi011/desccol/internal/log"
	"github.com/raphi011/desccol/internal/output"
	"github.com/raphi011/desccol/internal/ui/static"
)

// JobRow holds the rendered columns of one job for JSON output.
// Absent values encode as null.
type JobRow map[string]*string

func newRenderCmd() *cobra.Command {
	var (
		flags      viewFlags
		tooltip    bool
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:     "render [FILE]",
		Short:   "Render jobs as a table",
		Aliases: []string{"ls"},
		GroupID: GroupCore,
		Args:    cobra.MaximumNArgs(1),
		Long: `Render jobs as a table.

FILE is a .json or .toml jobs file. Without FILE, jobs are read as JSON
from stdin. A .desccol.toml next to FILE overrides the global config.

Cells show the cell view of each column. With --tooltip the full
(tooltip) view is shown instead.`,
		Example: `  desccol render jobs.json                  # Render with configured columns
  desccol render jobs.toml --trim -n 2      # Show the first two lines
  desccol render jobs.json -r 'Build (\d+)' -g 1
  desccol render jobs.json --tooltip        # Show full descriptions
  desccol render jobs.json --json           # Output as JSON
  curl -s ci/jobs | desccol render          # Read jobs from stdin`,
		ValidArgsFunction: completeJobsFile,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			l := log.FromContext(ctx)
			out := output.FromContext(ctx)

			v, err := loadView(cmd, optionalArg(args, 0), &flags)
			if err != nil {
				return err
			}

			viewKind := column.CellView
			if tooltip {
				viewKind = column.TooltipView
			}
			l.Debug("rendering", "view", viewKind, "columns", len(v.columns))

			if jsonOutput {
				return out.JSON(jsonRows(v, viewKind))
			}

			if len(v.jobs) == 0 {
				l.Println("No jobs found")
				return nil
			}

			rows := make([][]string, len(v.jobs))
			for i, j := range v.jobs {
				rows[i] = static.Row(column.Values(v.columns, j, viewKind))
			}
			table := static.RenderTable(column.Headers(v.columns), rows, column.Layouts(v.columns))

			_, err = fmt.Fprint(static.NewWriter(out.Writer()), table)
			return err
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVarP(&tooltip, "tooltip", "t", false, "Render the full (tooltip) view")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}

// jsonRows renders every job keyed by column ID, keeping markup as is.
func jsonRows(v view, kind column.View) []JobRow {
	rows := make([]JobRow, 0, len(v.jobs))
	for _, j := range v.jobs {
		row := make(JobRow, len(v.columns))
		for i, val := range column.Values(v.columns, j, kind) {
			row[v.columns[i].ID()] = textPtr(val)
		}
		rows = append(rows, row)
	}
	return rows
}

func textPtr(t description.Text) *string {
	if !t.Valid {
		return nil
	}
	s := t.String
	return &s
}
