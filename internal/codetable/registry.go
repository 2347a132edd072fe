package codetable

import (
	"fmt"
)

// Registry holds one table per ESAD box. It is assembled once at startup and
// read-only afterwards, which is what makes concurrent classification safe
// without locking.
type Registry struct {
	order  []string
	tables map[string]*Table
}

// NewRegistry builds a registry from the given tables. Registration order is
// preserved for enumeration.
func NewRegistry(tables ...*Table) (*Registry, error) {
	r := &Registry{tables: make(map[string]*Table, len(tables))}
	for _, t := range tables {
		if t == nil {
			return nil, fmt.Errorf("registry: nil table")
		}
		if _, dup := r.tables[t.Box()]; dup {
			return nil, fmt.Errorf("registry: duplicate table for box %s", t.Box())
		}
		r.tables[t.Box()] = t
		r.order = append(r.order, t.Box())
	}
	return r, nil
}

// Get returns the table for a box. A missing table is the one fatal
// condition: callers must refuse to classify that box rather than guess.
func (r *Registry) Get(box string) (*Table, error) {
	t, ok := r.tables[box]
	if !ok {
		return nil, fmt.Errorf("no code table loaded for box %s", box)
	}
	return t, nil
}

// Boxes returns the registered boxes in registration order.
func (r *Registry) Boxes() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Len returns the number of registered tables.
func (r *Registry) Len() int { return len(r.tables) }
