// Package column adapts the description formatter to a list view.
//
// A [Column] renders one field of an [Item] in two views: the cell shown in
// the table and the tooltip shown when a row is inspected. Columns are
// created from [Descriptor]s held in a caller-owned [Registry]; nothing is
// registered implicitly.
//
// Rendering never fails. A column that cannot format an item logs the
// problem and renders an empty cell for that item only.
package column
