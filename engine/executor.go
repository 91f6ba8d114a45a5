package engine

import (
	"fmt"

	"github.com/vegasq/csvql/query"
)

// ExecErrorKind identifies the class of an execution failure
type ExecErrorKind int

const (
	ErrTableNotFound ExecErrorKind = iota
	ErrColumnNotFound
)

// ExecError is a semantic resolution error with a stable kind callers
// can branch on. The message embeds the offending name.
type ExecError struct {
	Kind    ExecErrorKind
	Message string
}

func (e *ExecError) Error() string {
	return e.Message
}

func execErrorf(kind ExecErrorKind, format string, args ...interface{}) *ExecError {
	return &ExecError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Result holds the output of a query: column names and positionally
// aligned row values. Zero columns means no applicable columns (for
// example projecting * from an empty table) and is distinct from zero
// rows under known columns.
type Result struct {
	Columns []string
	Rows    [][]Value
}

// Execute runs a parsed query against the registry.
//
// The gates apply in order: the table must exist, the WHERE column
// must resolve (when the table has rows), and projected or counted
// columns must resolve against the surviving rows. Rows whose
// predicate cell is null or cannot be coerced for the comparison are
// dropped, not errored.
func Execute(q *query.Query, registry *Registry) (*Result, error) {
	table, ok := registry.Get(q.Table)
	if !ok {
		return nil, execErrorf(ErrTableNotFound, "table %q not found", q.Table)
	}

	rows := table.Rows
	if q.Where != nil {
		var err error
		rows, err = filterRows(table, q.Where)
		if err != nil {
			return nil, err
		}
	}

	if q.Selection.Kind == query.SelectCount {
		return executeCount(table, rows, q.Selection.Count)
	}
	return project(table, rows, q.Selection)
}

// filterRows applies the WHERE predicate to the table's rows
func filterRows(table *Table, cond *query.Condition) ([]Row, error) {
	if len(table.Rows) == 0 {
		return nil, nil
	}

	col, ok := table.ResolveColumn(cond.Column)
	if !ok {
		return nil, execErrorf(ErrColumnNotFound, "column %q not found in table", cond.Column)
	}

	filtered := make([]Row, 0, len(table.Rows))
	for _, row := range table.Rows {
		if match, ok := tryCompare(row[col], cond.Operator, cond.Value); ok && match {
			filtered = append(filtered, row)
		}
	}
	return filtered, nil
}

// executeCount produces the COUNT(*) or COUNT(col) aggregate over the
// filtered rows. COUNT(col) counts non-null cells.
func executeCount(table *Table, rows []Row, target string) (*Result, error) {
	if target == "*" {
		return &Result{
			Columns: []string{"COUNT(*)"},
			Rows:    [][]Value{{NewInt(int64(len(rows)))}},
		}, nil
	}

	name := fmt.Sprintf("COUNT(%s)", target)
	if len(rows) == 0 {
		return &Result{Columns: []string{name}, Rows: [][]Value{{NewInt(0)}}}, nil
	}

	col, ok := table.ResolveColumn(target)
	if !ok {
		return nil, execErrorf(ErrColumnNotFound, "column %q not found in table", target)
	}

	var count int64
	for _, row := range rows {
		if !row[col].IsNull() {
			count++
		}
	}
	return &Result{Columns: []string{name}, Rows: [][]Value{{NewInt(count)}}}, nil
}

// project builds the output columns and rows for * or a column list.
//
// Output columns come from the surviving rows: with zero surviving
// rows, * yields no columns at all, and an explicit column list is
// echoed back verbatim since no real column identity can be confirmed.
func project(table *Table, rows []Row, sel query.Selection) (*Result, error) {
	var columns []string

	switch {
	case sel.Kind == query.SelectAll:
		if len(rows) == 0 {
			return &Result{Columns: []string{}, Rows: [][]Value{}}, nil
		}
		columns = append([]string(nil), table.Columns...)
	case len(rows) == 0:
		return &Result{Columns: append([]string(nil), sel.Columns...), Rows: [][]Value{}}, nil
	default:
		columns = make([]string, len(sel.Columns))
		for i, requested := range sel.Columns {
			col, ok := table.ResolveColumn(requested)
			if !ok {
				return nil, execErrorf(ErrColumnNotFound, "column %q not found in table", requested)
			}
			columns[i] = col
		}
	}

	out := make([][]Value, 0, len(rows))
	for _, row := range rows {
		values := make([]Value, len(columns))
		for i, col := range columns {
			values[i] = row[col] // absent cell reads as null
		}
		out = append(out, values)
	}
	return &Result{Columns: columns, Rows: out}, nil
}
