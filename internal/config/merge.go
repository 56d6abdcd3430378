package config

// MergeLocal merges a local per-view config into a global config,
// returning a new Config without mutating the global.
// Returns global unchanged if local is nil.
func MergeLocal(global *Config, local *LocalConfig) *Config {
	if local == nil {
		return global
	}

	// Shallow copy global; Columns is replaced, never appended to, so sharing
	// the backing array is safe.
	merged := *global

	if len(local.Columns) > 0 {
		merged.Columns = append([]string(nil), local.Columns...)
	}

	d := &merged.Description
	l := local.Description
	setIf(&d.DisplayName, l.DisplayName)
	setIf(&d.Trim, l.Trim)
	setIf(&d.DisplayLength, l.DisplayLength)
	setIf(&d.ColumnWidth, l.ColumnWidth)
	setIf(&d.ForceWidth, l.ForceWidth)
	setIf(&d.Regex, l.Regex)
	setIf(&d.Expression, l.Expression)
	setIf(&d.Group, l.Group)
	setIf(&d.Engine, l.Engine)
	setIf(&d.MatchTimeout, l.MatchTimeout)

	return &merged
}

// setIf replaces *dst with *src when src is set.
func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
