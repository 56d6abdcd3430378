package static

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/raphi011/desccol/internal/description"
)

// stripPolicy removes every HTML element, keeping only text content.
var stripPolicy = bluemonday.StrictPolicy()

// CellText converts a formatted description into terminal text.
// Line-break markers become newlines, other markup is removed and entities
// are decoded. Descriptions are HTML, so a literal "<" must be written as
// &lt;. An absent description renders as an empty cell.
func CellText(t description.Text) string {
	if !t.Valid || t.String == "" {
		return ""
	}
	lines := description.Split(t.String)
	for i, line := range lines {
		lines[i] = strings.TrimSpace(html.UnescapeString(stripPolicy.Sanitize(line)))
	}
	return strings.Join(lines, "\n")
}

// Row converts formatted values into terminal cell text.
func Row(values []description.Text) []string {
	row := make([]string, len(values))
	for i, v := range values {
		row[i] = CellText(v)
	}
	return row
}
