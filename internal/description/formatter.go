package description

import (
	"fmt"
	"regexp"
	"strings"
)

// Separator is the canonical line-break marker used to rejoin trimmed segments.
const Separator = "<br/>"

// separatorRegex matches <br>, <br/>, <br /> and <BR > in any case.
var separatorRegex = regexp.MustCompile(`(?i)<br\s*/?>`)

// Formatter renders descriptions according to a fixed set of Options.
// It holds no mutable state and is safe for concurrent use.
type Formatter struct {
	opts    Options
	matcher matcher // nil in plain mode
}

// New validates opts and returns a Formatter for them.
// In regex mode the pattern is compiled once here.
func New(opts Options) (*Formatter, error) {
	if err := opts.validateFields(); err != nil {
		return nil, err
	}

	f := &Formatter{opts: opts}
	if opts.Regex {
		m, err := compile(opts)
		if err != nil {
			return nil, err
		}
		f.matcher = m
	}
	return f, nil
}

// Options returns the options the formatter was built with.
func (f *Formatter) Options() Options {
	return f.opts
}

// Tooltip returns the full description, or the extracted group in regex mode.
// It never trims.
func (f *Formatter) Tooltip(desc Text) (Text, error) {
	return f.Format(desc, false)
}

// Cell returns the description as shown in the table cell, trimmed when
// Options.Trim is set.
func (f *Formatter) Cell(desc Text) (Text, error) {
	return f.Format(desc, f.opts.Trim)
}

// Format renders desc. An absent description stays absent and an empty one
// stays empty. In regex mode trim is ignored.
func (f *Formatter) Format(desc Text, trim bool) (Text, error) {
	if !desc.Valid {
		return None(), nil
	}
	if desc.String == "" {
		return Some(""), nil
	}

	if f.matcher != nil {
		s, err := f.matcher.submatch(desc.String, f.opts.Group)
		if err != nil {
			return None(), fmt.Errorf("extract group %d: %w", f.opts.Group, err)
		}
		return Some(s), nil
	}

	if !trim {
		return desc, nil
	}
	return Some(Truncate(desc.String, f.opts.DisplayLength)), nil
}

// Truncate keeps at most n leading segments of s and joins them with
// Separator.
func Truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	parts := Split(s)
	return Join(parts[:min(n, len(parts))])
}

// Split breaks s into segments on any line-break marker.
// Trailing empty segments are dropped, so "A<br>" yields ["A"].
func Split(s string) []string {
	parts := separatorRegex.Split(s, -1)
	for len(parts) > 0 && parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}
	return parts
}

// Join joins segments with the canonical Separator.
func Join(parts []string) string {
	return strings.Join(parts, Separator)
}
