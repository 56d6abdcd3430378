// Package ui groups the terminal UI components of desccol.
//
// Subpackages:
//
//   - static: non-interactive table output for "desccol render"
//   - browse: interactive job browser for "desccol browse"
//   - prompt: yes/no confirmation for "desccol config init"
//   - styles: shared lipgloss colors and styles
//
// Tables render each job as one row. The description column shows the cell
// view of the description; the browser additionally shows the tooltip view
// of the selected job in a detail pane.
//
// # Design Notes
//
// Output is designed for terminal display with:
//   - Monospace font assumptions
//   - ANSI color support, downsampled when piped or NO_COLOR is set
//   - HTML line breaks in descriptions rendered as real line breaks
package ui
