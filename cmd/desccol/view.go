package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/raphi011/desccol/internal/column"
	"github.com/raphi011/desccol/internal/config"
	"github.com/raphi011/desccol/internal/jobs"
	"github.com/raphi011/desccol/internal/log"
)

// viewFlags are the per-invocation overrides shared by render, show and browse.
type viewFlags struct {
	columns     []string
	filter      string
	trim        bool
	length      int
	width       int
	forceWidth  bool
	displayName bool
	regex       string
	group       int
	engine      string
}

func (f *viewFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringSliceVarP(&f.columns, "columns", "c", nil, "Columns to show, in order (see 'desccol columns')")
	cmd.Flags().StringVar(&f.filter, "filter", "", "Fuzzy-filter jobs by name")
	cmd.Flags().BoolVar(&f.trim, "trim", false, "Show only the first lines of the description in the cell")
	cmd.Flags().IntVarP(&f.length, "length", "n", 0, "Number of lines shown when trimming")
	cmd.Flags().IntVarP(&f.width, "width", "w", 0, "Description column width")
	cmd.Flags().BoolVar(&f.forceWidth, "force-width", false, "Fix the description column to exactly --width cells")
	cmd.Flags().BoolVar(&f.displayName, "display-name", false, "Show the description column header")
	cmd.Flags().StringVarP(&f.regex, "regex", "r", "", "Show the part of the description matching this expression")
	cmd.Flags().IntVarP(&f.group, "group", "g", 0, "Capture group shown with --regex")
	cmd.Flags().StringVar(&f.engine, "engine", "", "Regex engine (re2, backtrack)")

	cmd.RegisterFlagCompletionFunc("columns", completeColumnIDs)
	cmd.RegisterFlagCompletionFunc("engine", cobra.FixedCompletions([]string{"re2", "backtrack"}, cobra.ShellCompDirectiveNoFileComp))
}

// apply returns a copy of cfg with the flags that were set on cmd applied.
func (f *viewFlags) apply(cmd *cobra.Command, cfg *config.Config) (*config.Config, error) {
	out := *cfg
	out.Columns = append([]string(nil), cfg.Columns...)

	changed := cmd.Flags().Changed
	if changed("columns") {
		out.Columns = f.columns
	}
	d := &out.Description
	if changed("trim") {
		d.Trim = f.trim
	}
	if changed("length") {
		d.DisplayLength = f.length
		// a line count only makes sense when trimming
		if !changed("trim") {
			d.Trim = true
		}
	}
	if changed("width") {
		d.ColumnWidth = f.width
	}
	if changed("force-width") {
		d.ForceWidth = f.forceWidth
	}
	if changed("display-name") {
		d.DisplayName = f.displayName
	}
	if changed("regex") {
		d.Regex = f.regex != ""
		d.Expression = f.regex
	}
	if changed("group") {
		d.Group = f.group
	}
	if changed("engine") {
		d.Engine = f.engine
	}

	if err := out.Validate(); err != nil {
		return nil, err
	}
	return &out, nil
}

// view is a loaded job list with the columns that render it.
type view struct {
	jobs    []*jobs.Job
	columns []column.Column
}

// items returns the jobs as column items.
func (v view) items() []column.Item {
	items := make([]column.Item, len(v.jobs))
	for i, j := range v.jobs {
		items[i] = j
	}
	return items
}

// loadView reads jobs from path (stdin when empty) and builds the columns
// from the effective config for that file.
func loadView(cmd *cobra.Command, path string, flags *viewFlags) (view, error) {
	ctx := cmd.Context()
	l := log.FromContext(ctx)

	resolver := config.ResolverFromContext(ctx)
	if resolver == nil {
		resolver = config.NewResolver(config.FromContext(ctx))
	}
	cfg, err := resolver.ConfigForFile(path)
	if err != nil {
		return view{}, err
	}
	cfg, err = flags.apply(cmd, cfg)
	if err != nil {
		return view{}, err
	}

	list, err := readJobs(path)
	if err != nil {
		return view{}, err
	}
	l.Debug("jobs loaded", "source", sourceName(path), "count", len(list))

	if flags.filter != "" {
		list = jobs.Filter(list, flags.filter)
		l.Debug("jobs filtered", "query", flags.filter, "count", len(list))
	}

	cols, err := buildColumns(ctx, cfg)
	if err != nil {
		return view{}, err
	}
	return view{jobs: list, columns: cols}, nil
}

func buildColumns(ctx context.Context, cfg *config.Config) ([]column.Column, error) {
	return column.Builtin().Build(ctx, cfg.Columns, cfg)
}

func readJobs(path string) ([]*jobs.Job, error) {
	if path == "" || path == "-" {
		list, err := jobs.ReadPiped(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return list, nil
	}
	return jobs.Load(path)
}

func sourceName(path string) string {
	if path == "" || path == "-" {
		return "stdin"
	}
	return path
}

// optionalArg returns args[i] or "" if absent.
func optionalArg(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}
	return ""
}

func completeColumnIDs(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	var ids []string
	for _, d := range column.Builtin().Descriptors() {
		ids = append(ids, d.ID+"\t"+d.DisplayName)
	}
	return ids, cobra.ShellCompDirectiveNoFileComp
}

func completeJobsFile(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return []string{"json", "toml"}, cobra.ShellCompDirectiveFilterFileExt
}
