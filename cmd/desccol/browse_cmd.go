package main

import (
	"github.com/spf13/cobra"

	"github.com/raphi011/desccol/internal/log"
	"github.com/raphi011/desccol/internal/ui/browse"
)

func newBrowseCmd() *cobra.Command {
	var flags viewFlags

	cmd := &cobra.Command{
		Use:     "browse FILE",
		Short:   "Browse jobs interactively",
		GroupID: GroupCore,
		Args:    cobra.ExactArgs(1),
		Long: `Browse jobs interactively.

Lists the jobs with their cell text. The detail pane shows the tooltip
text of the selected job.

Keys:
  /        filter by name
  c        copy the tooltip text to the clipboard
  q, esc   quit`,
		Example: `  desccol browse jobs.json
  desccol browse jobs.toml --trim -n 2`,
		ValidArgsFunction: completeJobsFile,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			l := log.FromContext(ctx)

			v, err := loadView(cmd, args[0], &flags)
			if err != nil {
				return err
			}
			if len(v.jobs) == 0 {
				l.Println("No jobs found")
				return nil
			}

			return browse.Run(ctx, v.items(), v.columns)
		},
	}

	flags.register(cmd)

	return cmd
}
