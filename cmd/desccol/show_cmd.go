package main

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/raphi011/desccol/internal/column"
	"github.com/raphi011/desccol/internal/description"
	"github.com/raphi011/desccol/internal/jobs"
	"github.com/raphi011/desccol/internal/log"
	"github.com/raphi011/desccol/internal/output"
	"github.com/raphi011/desccol/internal/ui/static"
)

// copyToClipboard is replaced in tests.
var copyToClipboard = clipboard.WriteAll

// JobDetail holds both views of one job for JSON output.
type JobDetail struct {
	Name    string `json:"name"`
	Cell    JobRow `json:"cell"`
	Tooltip JobRow `json:"tooltip"`
}

func newShowCmd() *cobra.Command {
	var (
		flags      viewFlags
		copyText   bool
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:     "show NAME [FILE]",
		Short:   "Show cell and tooltip text of a job",
		GroupID: GroupCore,
		Args:    cobra.RangeArgs(1, 2),
		Long: `Show cell and tooltip text of a job.

Prints what each column shows in the table cell and in the tooltip for the
job named NAME. Without FILE, jobs are read as JSON from stdin.`,
		Example: `  desccol show nightly jobs.json            # Show both views
  desccol show nightly jobs.json --copy     # Copy the tooltip text
  desccol show nightly jobs.json --json     # Output as JSON`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			l := log.FromContext(ctx)
			out := output.FromContext(ctx)

			name := args[0]
			v, err := loadView(cmd, optionalArg(args, 1), &flags)
			if err != nil {
				return err
			}

			job, ok := jobs.Find(v.jobs, name)
			if !ok {
				return fmt.Errorf("job %q not found", name)
			}

			cells := column.Values(v.columns, job, column.CellView)
			tips := column.Values(v.columns, job, column.TooltipView)

			if copyText {
				text := tooltipText(v.columns, tips)
				if err := copyToClipboard(text); err != nil {
					return fmt.Errorf("copy to clipboard: %w", err)
				}
				l.Printf("Copied tooltip of %s to clipboard\n", job.Name())
			}

			if jsonOutput {
				detail := JobDetail{Name: job.Name(), Cell: JobRow{}, Tooltip: JobRow{}}
				for i, c := range v.columns {
					detail.Cell[c.ID()] = textPtr(cells[i])
					detail.Tooltip[c.ID()] = textPtr(tips[i])
				}
				return out.JSON(detail)
			}

			out.Println(job.Name())
			for i, c := range v.columns {
				if c.ID() == "name" {
					continue
				}
				printSection(out, c.ID()+" (cell)", static.CellText(cells[i]), !cells[i].Valid)
				printSection(out, c.ID()+" (tooltip)", static.CellText(tips[i]), !tips[i].Valid)
			}
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&copyText, "copy", false, "Copy the tooltip text to the clipboard")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}

// tooltipText joins the tooltip text of all non-name columns.
func tooltipText(cols []column.Column, tips []description.Text) string {
	var parts []string
	for i, c := range cols {
		if c.ID() == "name" {
			continue
		}
		if text := static.CellText(tips[i]); text != "" {
			parts = append(parts, text)
		}
	}
	return strings.Join(parts, "\n")
}

func printSection(out *output.Printer, title, text string, absent bool) {
	out.Printf("\n%s:\n", title)
	if absent {
		out.Println("  (none)")
		return
	}
	for _, line := range strings.Split(text, "\n") {
		out.Printf("  %s\n", line)
	}
}
