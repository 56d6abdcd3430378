// Package config handles loading and validation of desccol configuration.
//
// Configuration is read from ~/.config/desccol/config.toml. The DESCCOL_CONFIG
// environment variable or the --config flag point at a different file.
// A missing file is not an error; defaults are used.
//
// # Sources (highest priority first)
//
//   - .desccol.toml next to the jobs file (view-local overrides)
//   - --config flag / DESCCOL_CONFIG env var
//   - ~/.config/desccol/config.toml
//   - Default values
//
// # Description Column
//
// The [description] section configures how job descriptions are rendered:
//
//	[description]
//	display_name = true     # show the column header
//	trim = true             # cell shows only the first display_length lines
//	display_length = 2
//	column_width = 60
//	force_width = false     # true: fixed width, false: maximum width
//	regex = false           # extract a capture group instead of trimming
//	expression = 'Build <b>(\d+)</b>'
//	group = 1
//	engine = "re2"          # or "backtrack" for lookarounds and backreferences
//	match_timeout = "100ms" # backtrack engine only
//
// Patterns are compiled while loading, so an invalid expression or a group
// the expression does not have is reported before anything is rendered.
//
// # Columns
//
// The top-level columns list selects and orders the columns of a table:
//
//	columns = ["name", "description"]
package config
