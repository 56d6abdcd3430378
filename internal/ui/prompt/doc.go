// Package prompt provides interactive prompts for desccol commands.
//
// Prompts render on stderr so stdout stays usable for data.
//
// Available prompts:
//   - [ConfirmOverwrite]: ask before replacing an existing config file
package prompt
