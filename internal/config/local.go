package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// LocalConfigFileName is the per-view override file, looked up in the
// directory that holds the jobs file.
const LocalConfigFileName = ".desccol.toml"

// LocalConfig holds per-view overrides from .desccol.toml.
// Pointer fields and nil slices indicate "not set" (inherit from global).
type LocalConfig struct {
	Columns     []string         `toml:"columns"`
	Description LocalDescription `toml:"description"`
}

// LocalDescription holds local [description] overrides
type LocalDescription struct {
	DisplayName   *bool   `toml:"display_name"`
	Trim          *bool   `toml:"trim"`
	DisplayLength *int    `toml:"display_length"`
	ColumnWidth   *int    `toml:"column_width"`
	ForceWidth    *bool   `toml:"force_width"`
	Regex         *bool   `toml:"regex"`
	Expression    *string `toml:"expression"`
	Group         *int    `toml:"group"`
	Engine        *string `toml:"engine"`
	MatchTimeout  *string `toml:"match_timeout"`
}

// LoadLocal reads a per-view .desccol.toml from dir.
// Returns nil (no error) if the file doesn't exist.
// Returns an error only on parse failure; the merged result is validated by
// the resolver, since a local file may only make sense on top of the global one.
func LoadLocal(dir string) (*LocalConfig, error) {
	configFile := filepath.Join(dir, LocalConfigFileName)

	data, err := os.ReadFile(configFile)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read local config %s: %w", configFile, err)
	}

	var local LocalConfig
	md, err := toml.Decode(string(data), &local)
	if err != nil {
		return nil, fmt.Errorf("failed to parse local config %s: %w", configFile, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("unknown key %q in %s", undecoded[0].String(), configFile)
	}

	return &local, nil
}

// defaultLocalConfig is the template for desccol config init --local
const defaultLocalConfig = `# desccol local config (per-view overrides)
# Place this file next to the jobs file of a view.
# Settings here override the global config for that view only.

# columns = ["name", "description"]

# [description]
# display_name = true
# trim = true
# display_length = 2
# column_width = 40
# force_width = true
# regex = true
# expression = 'Build <b>(\d+)</b>'
# group = 1
`

// DefaultLocalConfig returns the default local configuration template content.
func DefaultLocalConfig() string {
	return defaultLocalConfig
}
