package config

import (
	"fmt"
	"strings"
)

// validateColumns checks the columns list for empty and duplicate IDs.
// An empty list selects the columns shown by default. Whether an ID names a
// registered column is checked when the table is built.
func validateColumns(ids []string) error {
	seen := make(map[string]bool, len(ids))
	for i, id := range ids {
		if strings.TrimSpace(id) == "" {
			return fmt.Errorf("invalid columns[%d]: empty column id", i)
		}
		if seen[id] {
			return fmt.Errorf("invalid columns[%d]: duplicate column %q", i, id)
		}
		seen[id] = true
	}
	return nil
}

