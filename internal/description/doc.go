// Package description formats free-text CI job descriptions for display in
// a list-view column.
//
// A description is treated as a sequence of segments separated by HTML line
// breaks. The separator is recognized case-insensitively in any of its
// common spellings (<br>, <br/>, <br />, <BR >), and trimmed output is always
// rejoined with the canonical marker [Separator].
//
// # Modes
//
// Plain mode returns the description unchanged, or, when trimming is
// requested, only its first DisplayLength segments.
//
// Regex mode searches the description for Expression and returns the text
// captured by Group. Group 0 is the whole match.
//
// # Views
//
// [Formatter.Tooltip] never trims. [Formatter.Cell] trims when the options
// say so. Both go through the same regex branch.
//
// # Absent Descriptions
//
// An absent description ([None]) formats to absent, which callers render as
// "no cell content". An empty description formats to the empty string.
//
// # Errors
//
// Pattern problems are reported by [New] so they surface when configuration
// is loaded, not while a table is being drawn. At format time a pattern that
// does not match returns [ErrNoMatch].
package description
