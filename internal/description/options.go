package description

import (
	"fmt"
	"slices"
	"strings"
	"time"
)

// Regex engines.
const (
	// EngineRE2 uses Go's regexp package. Matching runs in linear time.
	EngineRE2 = "re2"
	// EngineBacktrack uses a backtracking engine that accepts lookarounds
	// and backreferences. Matches are bounded by Options.MatchTimeout.
	// Group numbers follow .NET rules, so a pattern that selects a group
	// may use named or numbered groups but not both.
	EngineBacktrack = "backtrack"
)

// ValidEngines lists all supported regex engines.
var ValidEngines = []string{EngineRE2, EngineBacktrack}

// DefaultMatchTimeout bounds a single backtracking match.
const DefaultMatchTimeout = 100 * time.Millisecond

// Options configures a Formatter.
type Options struct {
	DisplayName   bool // show the column header
	Trim          bool // cell view keeps only the first DisplayLength segments
	DisplayLength int  // number of segments (lines) to keep when trimming
	ColumnWidth   int  // column width in terminal cells
	ForceWidth    bool // fix the column to ColumnWidth instead of capping it

	Regex      bool   // extract Group from Expression instead of trimming
	Expression string // pattern source, used only when Regex is set
	Group      int    // capture group to extract, used only when Regex is set

	Engine       string        // EngineRE2 (default) or EngineBacktrack
	MatchTimeout time.Duration // per-match limit for EngineBacktrack
}

// DefaultOptions returns the options a newly added column starts with.
func DefaultOptions() Options {
	return Options{
		DisplayName:   false,
		Trim:          false,
		DisplayLength: 1,
		ColumnWidth:   80,
		ForceWidth:    false,
		Regex:         false,
		Expression:    "",
		Group:         0,
		Engine:        EngineRE2,
		MatchTimeout:  DefaultMatchTimeout,
	}
}

// Validate checks the options without building a Formatter.
// In regex mode the expression is compiled, so an invalid pattern or an
// out-of-range group is reported here.
func (o Options) Validate() error {
	if err := o.validateFields(); err != nil {
		return err
	}
	if o.Regex {
		if _, err := compile(o); err != nil {
			return err
		}
	}
	return nil
}

func (o Options) validateFields() error {
	if o.DisplayLength < 0 {
		return fmt.Errorf("display_length must be >= 0, got %d", o.DisplayLength)
	}
	if o.ColumnWidth < 0 {
		return fmt.Errorf("column_width must be >= 0, got %d", o.ColumnWidth)
	}
	if o.Group < 0 {
		return fmt.Errorf("group must be >= 0, got %d", o.Group)
	}
	if o.MatchTimeout < 0 {
		return fmt.Errorf("match_timeout must be >= 0, got %s", o.MatchTimeout)
	}
	if o.Engine != "" && !slices.Contains(ValidEngines, o.Engine) {
		return fmt.Errorf("invalid engine %q: must be %s", o.Engine, quoteAll(ValidEngines))
	}
	return nil
}

// quoteAll formats allowed values for error messages.
// E.g., ["a", "b"] -> `"a" or "b"`
func quoteAll(values []string) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = fmt.Sprintf("%q", v)
	}
	return strings.Join(quoted, " or ")
}
