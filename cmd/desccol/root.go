package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/raphi011/desccol/internal/config"
	"github.com/raphi011/desccol/internal/log"
	"github.com/raphi011/desccol/internal/output"
)

var (
	// Global flags
	verbose    bool
	quiet      bool
	configPath string
)

// Command group IDs for organizing help output
const (
	GroupCore   = "core"
	GroupConfig = "config"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "desccol",
	Short: "Render CI job descriptions as a list-view column",
	Long: `desccol renders CI job descriptions the way a list-view column does.

Descriptions may contain HTML line breaks (<br>, <br/>, <br />). A cell can
show only the first lines, or a part extracted with a regular expression,
while the tooltip view always shows the full description.

Jobs are read from a JSON or TOML file, or from stdin when piped.`,
	SilenceUsage:               true,
	SilenceErrors:              true,
	SuggestionsMinimumDistance: 2, // Enable typo suggestions
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "completion" || cmd.Name() == "__complete" || cmd.Name() == "help" {
			return nil
		}

		ctx := cmd.Context()

		// Create logger (stderr for diagnostics)
		logger := log.New(cmd.ErrOrStderr(), verbose, quiet)
		ctx = log.WithLogger(ctx, logger)

		cfg, err := config.Load(configPath)
		if err != nil {
			// config commands must work with a broken file, so it can be fixed
			if !skipsConfigCheck(cmd) {
				return err
			}
			logger.Warnf("%v (using defaults)", err)
		}
		logger.Debug("config loaded", "path", configPath, "columns", len(cfg.Columns))

		ctx = config.WithConfig(ctx, &cfg)
		ctx = config.WithResolver(ctx, config.NewResolver(&cfg))
		cmd.SetContext(ctx)
		return nil
	},
	// Run is not set - shows help when no subcommand provided
}

// skipsConfigCheck reports whether cmd runs with default config when the
// config file is invalid.
func skipsConfigCheck(cmd *cobra.Command) bool {
	return cmd.Parent() != nil && cmd.Parent().Name() == "config"
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	// Create context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Add output printer (stdout for primary data)
	ctx = output.WithPrinter(ctx, os.Stdout)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "Run 'desccol -h' for help")
		cancel()
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show why cells were left empty")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress all log output")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default $DESCCOL_CONFIG or ~/.config/desccol/config.toml)")
	rootCmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	// Version flag
	rootCmd.Version = versionString()
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	// Add command groups for organized help output
	rootCmd.AddGroup(
		&cobra.Group{ID: GroupCore, Title: "Core Commands:"},
		&cobra.Group{ID: GroupConfig, Title: "Configuration Commands:"},
	)

	// Core commands
	rootCmd.AddCommand(newRenderCmd())
	rootCmd.AddCommand(newShowCmd())
	rootCmd.AddCommand(newBrowseCmd())

	// Config commands
	rootCmd.AddCommand(newColumnsCmd())
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newCompletionCmd())
}
