package column

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/raphi011/desccol/internal/config"
	"github.com/raphi011/desccol/internal/log"
)

var (
	// ErrUnknownColumn is returned when a column ID is not registered.
	ErrUnknownColumn = errors.New("unknown column")
	// ErrDuplicateColumn is returned when an ID is registered twice.
	ErrDuplicateColumn = errors.New("column already registered")
)

// Factory creates a column from the effective configuration.
type Factory func(ctx context.Context, cfg *config.Config) (Column, error)

// Descriptor describes a column type that can be added to a view.
type Descriptor struct {
	ID             string
	DisplayName    string
	Help           string
	ShownByDefault bool
	New            Factory
}

// Registry holds the column types available to a caller.
// The zero value is not usable; create one with NewRegistry.
type Registry struct {
	descriptors map[string]Descriptor
	order       []string // registration order
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{descriptors: make(map[string]Descriptor)}
}

// Register adds a descriptor. IDs must be unique and non-empty.
func (r *Registry) Register(d Descriptor) error {
	if d.ID == "" {
		return errors.New("column descriptor has no id")
	}
	if d.New == nil {
		return fmt.Errorf("column %q has no factory", d.ID)
	}
	if _, ok := r.descriptors[d.ID]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateColumn, d.ID)
	}
	r.descriptors[d.ID] = d
	r.order = append(r.order, d.ID)
	return nil
}

// Lookup returns the descriptor registered under id.
func (r *Registry) Lookup(id string) (Descriptor, bool) {
	d, ok := r.descriptors[id]
	return d, ok
}

// Descriptors returns all descriptors sorted by ID.
func (r *Registry) Descriptors() []Descriptor {
	all := make([]Descriptor, 0, len(r.descriptors))
	for _, d := range r.descriptors {
		all = append(all, d)
	}
	sort.Slice(all, func(i, j int) bool {
		return all[i].ID < all[j].ID
	})
	return all
}

// IDs returns all registered IDs, sorted.
func (r *Registry) IDs() []string {
	ids := make([]string, 0, len(r.descriptors))
	for _, d := range r.Descriptors() {
		ids = append(ids, d.ID)
	}
	return ids
}

// Defaults returns the IDs of the descriptors shown by default, in the
// order they were registered.
func (r *Registry) Defaults() []string {
	var ids []string
	for _, id := range r.order {
		if r.descriptors[id].ShownByDefault {
			ids = append(ids, id)
		}
	}
	return ids
}

// Build creates columns for ids in order. An empty ids selects Defaults.
func (r *Registry) Build(ctx context.Context, ids []string, cfg *config.Config) ([]Column, error) {
	if len(ids) == 0 {
		ids = r.Defaults()
	}
	cols := make([]Column, 0, len(ids))
	for _, id := range ids {
		d, ok := r.descriptors[id]
		if !ok {
			return nil, fmt.Errorf("%w %q (available: %s)", ErrUnknownColumn, id, strings.Join(r.IDs(), ", "))
		}
		c, err := d.New(ctx, cfg)
		if err != nil {
			return nil, fmt.Errorf("column %q: %w", id, err)
		}
		cols = append(cols, c)
	}
	return cols, nil
}

const descriptionHelp = `Shows the job description.

The description is split into lines at <br>, <br/> or <br /> (any case).
With trim enabled the cell shows only the first display_length lines,
joined with <br/>; the tooltip always shows the full description.

With regex enabled, the expression is searched in the description and the
text of the configured capture group is shown instead. Descriptions the
expression does not match render as an empty cell.`

// Builtin returns a registry holding the name and description columns.
func Builtin() *Registry {
	r := NewRegistry()
	// IDs are distinct constants, registration cannot fail
	_ = r.Register(Descriptor{
		ID:             "name",
		DisplayName:    "Name",
		Help:           "Shows the job name.",
		ShownByDefault: true,
		New: func(context.Context, *config.Config) (Column, error) {
			return NameColumn{}, nil
		},
	})
	_ = r.Register(Descriptor{
		ID:             "description",
		DisplayName:    "Description",
		Help:           descriptionHelp,
		ShownByDefault: true,
		New: func(ctx context.Context, cfg *config.Config) (Column, error) {
			opts, err := cfg.Description.Options()
			if err != nil {
				return nil, err
			}
			return NewDescriptionColumn(opts, log.FromContext(ctx))
		},
	})
	return r
}
