// Package codetable defines the ordered code lookup tables that drive ESAD
// field classification. A table is built once, validated, and never mutated;
// classification only reads it.
package codetable

import (
	"fmt"
	"strings"
)

// Entry is one row of a code table: an official code, its human-readable
// label, and the ordered match patterns that select it.
type Entry struct {
	Code     string
	Label    string
	Patterns []string
}

// Scoring is the confidence scheme a table assigns to matches. Exact is used
// for whole-word pattern hits, Partial for substring containment. Both are
// advisory; they never decide whether a code is returned.
type Scoring struct {
	Exact   float64
	Partial float64
}

// DefaultScoring is used when a table does not override the scheme.
var DefaultScoring = Scoring{Exact: 1.0, Partial: 0.6}

// Table is an immutable, ordered code table for one ESAD box.
type Table struct {
	box         string
	entries     []Entry
	defaultCode string
	scoring     Scoring
	byCode      map[string]Entry
}

// Option configures a table at construction time.
type Option func(*Table)

// WithScoring overrides the table's confidence scheme.
func WithScoring(s Scoring) Option {
	return func(t *Table) { t.scoring = s }
}

// New builds and validates a table. Entry order is preserved and is the
// classification tie-break. The default code must belong to an entry.
func New(box string, entries []Entry, defaultCode string, opts ...Option) (*Table, error) {
	if strings.TrimSpace(box) == "" {
		return nil, fmt.Errorf("code table: box is required")
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("code table %s: no entries", box)
	}

	t := &Table{
		box:         box,
		entries:     make([]Entry, len(entries)),
		defaultCode: strings.TrimSpace(defaultCode),
		scoring:     DefaultScoring,
		byCode:      make(map[string]Entry, len(entries)),
	}
	for _, opt := range opts {
		opt(t)
	}

	for i, e := range entries {
		e.Code = strings.TrimSpace(e.Code)
		e.Label = strings.TrimSpace(e.Label)
		if e.Code == "" {
			return nil, fmt.Errorf("code table %s: entry %d has empty code", box, i)
		}
		if _, dup := t.byCode[e.Code]; dup {
			return nil, fmt.Errorf("code table %s: duplicate code %q", box, e.Code)
		}
		patterns := make([]string, 0, len(e.Patterns))
		for _, p := range e.Patterns {
			if p = strings.TrimSpace(p); p != "" {
				patterns = append(patterns, p)
			}
		}
		e.Patterns = patterns
		t.entries[i] = e
		t.byCode[e.Code] = e
	}

	if t.defaultCode == "" {
		return nil, fmt.Errorf("code table %s: no default code designated", box)
	}
	if _, ok := t.byCode[t.defaultCode]; !ok {
		return nil, fmt.Errorf("code table %s: default code %q not present in table", box, t.defaultCode)
	}
	if err := t.scoring.validate(); err != nil {
		return nil, fmt.Errorf("code table %s: %w", box, err)
	}
	return t, nil
}

func (s Scoring) validate() error {
	if s.Exact <= 0 || s.Exact > 1 || s.Partial <= 0 || s.Partial > 1 {
		return fmt.Errorf("scoring must be within (0,1]: exact=%v partial=%v", s.Exact, s.Partial)
	}
	if s.Exact < s.Partial {
		return fmt.Errorf("exact score %v must not be below partial score %v", s.Exact, s.Partial)
	}
	return nil
}

// Box returns the ESAD box this table serves.
func (t *Table) Box() string { return t.box }

// Entries returns the rows in declared order. The slice is a copy; the table
// itself stays immutable.
func (t *Table) Entries() []Entry {
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}

// Len returns the number of entries.
func (t *Table) Len() int { return len(t.entries) }

// Default returns the designated fallback entry.
func (t *Table) Default() Entry {
	return t.byCode[t.defaultCode]
}

// Lookup finds an entry by code.
func (t *Table) Lookup(code string) (Entry, bool) {
	e, ok := t.byCode[code]
	return e, ok
}

// Scoring returns the table's confidence scheme.
func (t *Table) Scoring() Scoring { return t.scoring }
