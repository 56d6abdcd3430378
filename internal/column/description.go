package column

import (
	"github.com/raphi011/desccol/internal/description"
	"github.com/raphi011/desccol/internal/log"
)

// DescriptionHeader is the header shown when DisplayName is enabled.
const DescriptionHeader = "DESCRIPTION"

// DescriptionColumn renders an item's description through a Formatter.
type DescriptionColumn struct {
	formatter *description.Formatter
	logger    *log.Logger
}

// NewDescriptionColumn builds a description column from formatter options.
// Option errors (bad pattern, out-of-range group) are returned here rather
// than at render time.
func NewDescriptionColumn(opts description.Options, logger *log.Logger) (*DescriptionColumn, error) {
	f, err := description.New(opts)
	if err != nil {
		return nil, err
	}
	return &DescriptionColumn{formatter: f, logger: logger}, nil
}

func (c *DescriptionColumn) ID() string { return "description" }

// Header returns DescriptionHeader, or "" when the column name is hidden.
func (c *DescriptionColumn) Header() string {
	if c.formatter.Options().DisplayName {
		return DescriptionHeader
	}
	return ""
}

func (c *DescriptionColumn) Layout() Layout {
	opts := c.formatter.Options()
	return Layout{Width: opts.ColumnWidth, Force: opts.ForceWidth}
}

// Tooltip returns the untrimmed description (or extracted group).
func (c *DescriptionColumn) Tooltip(item Item) description.Text {
	if item == nil {
		return description.None()
	}
	return c.render(item, c.formatter.Tooltip)
}

// Cell returns the description as configured for the table cell.
func (c *DescriptionColumn) Cell(item Item) description.Text {
	if item == nil {
		return description.None()
	}
	return c.render(item, c.formatter.Cell)
}

func (c *DescriptionColumn) render(item Item, format func(description.Text) (description.Text, error)) description.Text {
	text, err := format(item.Description())
	if err != nil {
		if c.logger != nil {
			c.logger.Debug("description not rendered", "job", item.Name(), "error", err)
		}
		return description.Some("")
	}
	return text
}

// NameColumn renders an item's name.
type NameColumn struct{}

func (NameColumn) ID() string     { return "name" }
func (NameColumn) Header() string { return "NAME" }
func (NameColumn) Layout() Layout { return Layout{} }

func (NameColumn) Cell(item Item) description.Text {
	if item == nil {
		return description.None()
	}
	return description.Some(item.Name())
}

func (n NameColumn) Tooltip(item Item) description.Text {
	return n.Cell(item)
}
