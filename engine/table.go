package engine

import (
	"sort"
	"strings"
)

// Row maps original-case column names to cell values. A missing key
// reads as null.
type Row map[string]Value

// Table is a named, immutable sequence of rows with a fixed column
// order. All rows of one table expose the same column set in the same
// order; the loaders guarantee this.
type Table struct {
	Name    string   // lowercased registry key
	Columns []string // original case, in source order
	Rows    []Row
}

// ResolveColumn resolves a requested column name case-insensitively
// against the table's columns, returning the original-case name of the
// first match in column order.
func (t *Table) ResolveColumn(name string) (string, bool) {
	for _, col := range t.Columns {
		if strings.EqualFold(col, name) {
			return col, true
		}
	}
	return "", false
}

// Registry maps lowercased table names to loaded tables. It is
// populated by loaders before queries run; Execute only reads it.
type Registry struct {
	tables map[string]*Table
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{tables: make(map[string]*Table)}
}

// Register adds a table under its lowercased name, replacing any table
// already registered under that name.
func (r *Registry) Register(t *Table) {
	r.tables[strings.ToLower(t.Name)] = t
}

// Get looks up a table by its lowercased name
func (r *Registry) Get(name string) (*Table, bool) {
	t, ok := r.tables[name]
	return t, ok
}

// Names returns the registered table names in sorted order
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.tables))
	for name := range r.tables {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
