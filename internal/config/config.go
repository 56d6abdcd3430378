package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/raphi011/desccol/internal/description"
)

// EnvConfigPath overrides the config file location.
const EnvConfigPath = "DESCCOL_CONFIG"

// DefaultColumns is the column layout of a new config. It lists the builtin
// columns that are shown by default.
var DefaultColumns = []string{"name", "description"}

// DescriptionConfig holds the [description] section.
type DescriptionConfig struct {
	DisplayName   bool   `json:"display_name" toml:"display_name"`
	Trim          bool   `json:"trim" toml:"trim"`
	DisplayLength int    `json:"display_length" toml:"display_length"`
	ColumnWidth   int    `json:"column_width" toml:"column_width"`
	ForceWidth    bool   `json:"force_width" toml:"force_width"`
	Regex         bool   `json:"regex" toml:"regex"`
	Expression    string `json:"expression" toml:"expression"`
	Group         int    `json:"group" toml:"group"`
	Engine        string `json:"engine" toml:"engine"`               // "re2" or "backtrack"
	MatchTimeout  string `json:"match_timeout" toml:"match_timeout"` // Go duration, e.g. "250ms"
}

// Config holds the desccol configuration
type Config struct {
	Columns     []string          `json:"columns" toml:"columns"`
	Description DescriptionConfig `json:"description" toml:"description"`
}

// Default returns the default configuration
func Default() Config {
	opts := description.DefaultOptions()
	return Config{
		Columns: append([]string(nil), DefaultColumns...),
		Description: DescriptionConfig{
			DisplayName:   opts.DisplayName,
			Trim:          opts.Trim,
			DisplayLength: opts.DisplayLength,
			ColumnWidth:   opts.ColumnWidth,
			ForceWidth:    opts.ForceWidth,
			Regex:         opts.Regex,
			Expression:    opts.Expression,
			Group:         opts.Group,
			Engine:        opts.Engine,
			MatchTimeout:  opts.MatchTimeout.String(),
		},
	}
}

// Options converts the section into formatter options.
func (d DescriptionConfig) Options() (description.Options, error) {
	opts := description.Options{
		DisplayName:   d.DisplayName,
		Trim:          d.Trim,
		DisplayLength: d.DisplayLength,
		ColumnWidth:   d.ColumnWidth,
		ForceWidth:    d.ForceWidth,
		Regex:         d.Regex,
		Expression:    d.Expression,
		Group:         d.Group,
		Engine:        d.Engine,
		MatchTimeout:  description.DefaultMatchTimeout,
	}
	if d.MatchTimeout != "" {
		timeout, err := time.ParseDuration(d.MatchTimeout)
		if err != nil {
			return description.Options{}, fmt.Errorf("invalid description.match_timeout %q: %w", d.MatchTimeout, err)
		}
		opts.MatchTimeout = timeout
	}
	return opts, nil
}

// Validate checks the whole configuration, compiling the description pattern
// when regex mode is enabled.
func (c *Config) Validate() error {
	if err := validateColumns(c.Columns); err != nil {
		return err
	}
	opts, err := c.Description.Options()
	if err != nil {
		return err
	}
	if err := opts.Validate(); err != nil {
		return fmt.Errorf("description: %w", err)
	}
	return nil
}

// DefaultPath returns the path to the config file.
// DESCCOL_CONFIG takes precedence over ~/.config/desccol/config.toml.
func DefaultPath() (string, error) {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "desccol", "config.toml"), nil
}

// Load reads config from path, or from DefaultPath if path is empty.
// Returns Default() if the file doesn't exist (no error).
// Returns an error only if the file exists but is invalid.
func Load(path string) (Config, error) {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return Default(), nil
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("failed to read config file: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return Default(), fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes TOML config content on top of the defaults and validates it.
// Unknown keys are rejected so typos don't silently fall back to defaults.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return Default(), fmt.Errorf("failed to parse config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Default(), fmt.Errorf("unknown config keys: %s", strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Default(), err
	}
	return cfg, nil
}

const defaultConfig = `# desccol configuration

# Columns to render, in order. See "desccol columns" for available columns.
# An empty list shows the columns marked as default there.
columns = ["name", "description"]

[description]
# Show the column header
display_name = false

# Only show the first display_length lines in the table cell.
# Lines are separated by <br>, <br/> or <br /> (any case).
# The tooltip / detail view always shows the full description.
trim = false
display_length = 1

# Column width in terminal cells.
# force_width = true fixes the column to exactly this width,
# otherwise it is a maximum and longer text wraps.
column_width = 80
force_width = false

# Extract part of the description with a regular expression instead.
# The first match is used; group 0 is the whole match.
# regex = true
# expression = 'Build <b>(\d+)</b>'
# group = 1
regex = false
expression = ""
group = 0

# Regex engine: "re2" (linear time, Go syntax) or "backtrack"
# (adds lookarounds and backreferences). With "backtrack" and group > 0,
# use either named or numbered groups, not both: named groups are
# numbered after unnamed ones there.
engine = "re2"

# Upper bound for a single match with the backtrack engine.
match_timeout = "100ms"
`

// DefaultConfig returns the default configuration file content.
func DefaultConfig() string {
	return defaultConfig
}

// Init writes the default config file to path (DefaultPath if empty).
// If force is true, overwrites an existing file.
// Returns the path to the created file.
func Init(path string, force bool) (string, error) {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return "", err
		}
		path = p
	}

	if !force {
		if _, err := os.Stat(path); err == nil {
			return "", fmt.Errorf("config file already exists: %s (use -f to overwrite)", path)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", err
	}

	if err := os.WriteFile(path, []byte(defaultConfig), 0644); err != nil {
		return "", err
	}

	return path, nil
}

type ctxKey struct{}

// WithConfig attaches a config to the context.
func WithConfig(ctx context.Context, cfg *Config) context.Context {
	return context.WithValue(ctx, ctxKey{}, cfg)
}

// FromContext retrieves the config from context.
// Returns defaults if none is attached.
func FromContext(ctx context.Context) *Config {
	if cfg, ok := ctx.Value(ctxKey{}).(*Config); ok {
		return cfg
	}
	cfg := Default()
	return &cfg
}
