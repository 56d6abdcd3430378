package column

import (
	"github.com/raphi011/desccol/internal/description"
)

// Item is a row in a list view.
type Item interface {
	Name() string
	Description() description.Text
}

// Layout holds presentational hints for a column.
type Layout struct {
	Width int  // width in terminal cells, 0 = unconstrained
	Force bool // true: exactly Width, false: at most Width
}

// Column renders one field of an Item.
type Column interface {
	ID() string
	Header() string
	Cell(item Item) description.Text
	Tooltip(item Item) description.Text
	Layout() Layout
}

// View selects which rendering of a column is used.
type View int

const (
	CellView View = iota
	TooltipView
)

// String returns the view name.
func (v View) String() string {
	if v == TooltipView {
		return "tooltip"
	}
	return "cell"
}

// Headers returns the header of each column.
func Headers(cols []Column) []string {
	headers := make([]string, len(cols))
	for i, c := range cols {
		headers[i] = c.Header()
	}
	return headers
}

// Layouts returns the layout of each column.
func Layouts(cols []Column) []Layout {
	layouts := make([]Layout, len(cols))
	for i, c := range cols {
		layouts[i] = c.Layout()
	}
	return layouts
}

// Values renders item through every column in the given view.
func Values(cols []Column, item Item, view View) []description.Text {
	values := make([]description.Text, len(cols))
	for i, c := range cols {
		if view == TooltipView {
			values[i] = c.Tooltip(item)
		} else {
			values[i] = c.Cell(item)
		}
	}
	return values
}
