// Package static provides non-interactive terminal output components.
//
// This package renders list views as plain tables: formatted descriptions
// are converted to terminal text and laid out according to each column's
// width hints.
package static

import (
	"io"
	"os"
	"strings"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
	"github.com/charmbracelet/colorprofile"
	"github.com/charmbracelet/x/ansi"

	"github.com/raphi011/desccol/internal/column"
)

// cellPadding separates adjacent columns.
const cellPadding = 2

// RenderTable creates a formatted table with proper column alignment.
// No borders are rendered. A column with a width hint wraps its cells at that
// width; a forced column is additionally padded to exactly that width.
// The header row is omitted when every header is empty.
func RenderTable(headers []string, rows [][]string, layouts []column.Layout) string {
	if len(rows) == 0 {
		return ""
	}

	wrapped := make([][]string, len(rows))
	for i, row := range rows {
		wrapped[i] = make([]string, len(row))
		for j, cell := range row {
			wrapped[i][j] = wrapCell(cell, layoutAt(layouts, j))
		}
	}

	t := table.New().
		Rows(wrapped...).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderHeader(false).
		BorderColumn(false).
		BorderRow(false).
		StyleFunc(func(row, col int) lipgloss.Style {
			style := lipgloss.NewStyle().PaddingRight(cellPadding)
			if row == table.HeaderRow {
				style = style.Bold(true)
			}
			if l := layoutAt(layouts, col); l.Force && l.Width > 0 {
				style = style.Width(l.Width + cellPadding)
			}
			return style
		})

	if hasHeaders(headers) {
		t = t.Headers(headers...)
	}

	var output strings.Builder
	output.WriteString(t.String())
	output.WriteString("\n")
	return output.String()
}

// NewWriter wraps w so styled output is downsampled to what the terminal
// supports (plain text when piped or NO_COLOR is set).
func NewWriter(w io.Writer) io.Writer {
	return colorprofile.NewWriter(w, os.Environ())
}

func wrapCell(s string, l column.Layout) string {
	if l.Width <= 0 {
		return s
	}
	return ansi.Wrap(s, l.Width, "")
}

func layoutAt(layouts []column.Layout, i int) column.Layout {
	if i < 0 || i >= len(layouts) {
		return column.Layout{}
	}
	return layouts[i]
}

func hasHeaders(headers []string) bool {
	for _, h := range headers {
		if h != "" {
			return true
		}
	}
	return false
}
