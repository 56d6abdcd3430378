package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/raphi011/desccol/internal/config"
	"github.com/raphi011/desccol/internal/log"
	"github.com/raphi011/desccol/internal/output"
	"github.com/raphi011/desccol/internal/ui/prompt"
)

// confirmOverwrite asks before overwriting a file. Replaced in tests.
var confirmOverwrite = func(path string) (bool, error) {
	if !isatty.IsTerminal(os.Stdin.Fd()) {
		return false, nil
	}
	return prompt.ConfirmOverwrite(path)
}

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "config",
		Short:   "Manage configuration",
		Aliases: []string{"cfg"},
		GroupID: GroupConfig,
		Long: `Manage desccol configuration.

Global config: ~/.config/desccol/config.toml (or $DESCCOL_CONFIG)
Local config:  .desccol.toml (next to a jobs file)`,
		Example: `  desccol config init          # Create default global config
  desccol config init --local  # Create local config in the current directory
  desccol config show          # Show effective config
  desccol config validate      # Check the global config`,
	}

	cmd.AddCommand(newConfigInitCmd())
	cmd.AddCommand(newConfigShowCmd())
	cmd.AddCommand(newConfigValidateCmd())

	return cmd
}

func newConfigInitCmd() *cobra.Command {
	var (
		force  bool
		stdout bool
		local  bool
		dir    string
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create default config file",
		Args:  cobra.NoArgs,
		Long: `Create default config file.

Without flags, creates the global config.
With --local, creates a per-view .desccol.toml in --dir (default: current
directory). Place it next to the jobs file it applies to.

When the file exists and stdin is a terminal, asks before overwriting.`,
		Example: `  desccol config init              # Create global config
  desccol config init --local      # Create local config
  desccol config init -f           # Overwrite existing config
  desccol config init -s           # Print config to stdout`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			l := log.FromContext(ctx)
			out := output.FromContext(ctx)

			content := config.DefaultConfig()
			if local {
				content = config.DefaultLocalConfig()
			}
			if stdout {
				out.Print(content)
				return nil
			}

			path, err := initPath(local, dir)
			if err != nil {
				return err
			}

			if !force {
				if _, err := os.Stat(path); err == nil {
					ok, err := confirmOverwrite(path)
					if err != nil {
						return err
					}
					if !ok {
						return fmt.Errorf("config file already exists: %s (use -f to overwrite)", path)
					}
				}
			}

			if local {
				if err := os.WriteFile(path, []byte(content), 0644); err != nil {
					return err
				}
			} else if _, err := config.Init(path, true); err != nil {
				return err
			}

			l.Printf("Created config file: %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing config")
	cmd.Flags().BoolVarP(&stdout, "stdout", "s", false, "Print config to stdout")
	cmd.Flags().BoolVar(&local, "local", false, "Create per-view .desccol.toml instead of global config")
	cmd.Flags().StringVarP(&dir, "dir", "d", ".", "Directory for --local")

	return cmd
}

func initPath(local bool, dir string) (string, error) {
	if local {
		return filepath.Join(dir, config.LocalConfigFileName), nil
	}
	if configPath != "" {
		return configPath, nil
	}
	return config.DefaultPath()
}

func newConfigShowCmd() *cobra.Command {
	var (
		jsonOutput bool
		dir        string
	)

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show effective configuration",
		Args:  cobra.NoArgs,
		Long: `Show effective configuration.

Merges the .desccol.toml in --dir (default: current directory) over the
global config. The output is valid TOML.`,
		Example: `  desccol config show               # Effective config for the current directory
  desccol config show -d ci/views   # Effective config for another view
  desccol config show --json        # Output as JSON`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := output.FromContext(ctx)

			resolver := config.ResolverFromContext(ctx)
			if resolver == nil {
				resolver = config.NewResolver(config.FromContext(ctx))
			}
			effCfg, err := resolver.ConfigForView(dir)
			if err != nil {
				return err
			}

			if jsonOutput {
				return out.JSON(effCfg)
			}

			localPath := filepath.Join(dir, config.LocalConfigFileName)
			if _, err := os.Stat(localPath); err != nil {
				localPath = "(none)"
			}
			out.Printf("# global: %s\n", globalPathLabel())
			out.Printf("# local:  %s\n\n", localPath)

			return toml.NewEncoder(out.Writer()).Encode(effCfg)
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	cmd.Flags().StringVarP(&dir, "dir", "d", ".", "View directory to resolve local config for")

	return cmd
}

func globalPathLabel() string {
	path, err := initPath(false, "")
	if err != nil {
		return "(unknown)"
	}
	if _, err := os.Stat(path); err != nil {
		return path + " (not found, using defaults)"
	}
	return path
}

func newConfigValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate [FILE]",
		Short: "Validate a config file",
		Args:  cobra.MaximumNArgs(1),
		Long: `Validate a config file.

Without FILE, validates the global config. A .desccol.toml is validated
merged over the global config, the way it is used when rendering.
Patterns are compiled and columns are looked up, so a bad expression,
capture group or column ID is reported here instead of when rendering.`,
		Example: `  desccol config validate
  desccol config validate ci/views/.desccol.toml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			l := log.FromContext(ctx)
			out := output.FromContext(ctx)

			path := optionalArg(args, 0)
			if path == "" {
				p, err := initPath(false, "")
				if err != nil {
					return err
				}
				path = p
			}

			if _, err := os.Stat(path); err != nil {
				if errors.Is(err, os.ErrNotExist) && len(args) == 0 {
					l.Printf("No config file at %s, defaults are valid\n", path)
					return nil
				}
				return err
			}

			var cfg *config.Config
			if filepath.Base(path) == config.LocalConfigFileName {
				global, err := config.Load(configPath)
				if err != nil {
					return fmt.Errorf("global config: %w", err)
				}
				if cfg, err = config.NewResolver(&global).ConfigForView(filepath.Dir(path)); err != nil {
					return err
				}
			} else {
				loaded, err := config.Load(path)
				if err != nil {
					return err
				}
				cfg = &loaded
			}

			// column IDs are only known to the registry
			if _, err := buildColumns(ctx, cfg); err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}

			out.Printf("%s: ok\n", path)
			return nil
		},
	}

	return cmd
}
