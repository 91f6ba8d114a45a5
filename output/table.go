package output

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"

	"github.com/vegasq/csvql/engine"
)

// TableFormatter renders results as an aligned terminal table
type TableFormatter struct {
	writer io.Writer
}

// NewTableFormatter creates a new table formatter
func NewTableFormatter(w io.Writer) *TableFormatter {
	return &TableFormatter{writer: w}
}

// SetOutput sets the output writer
func (t *TableFormatter) SetOutput(w io.Writer) {
	t.writer = w
}

// Format writes the result as an aligned table. A result with no
// columns prints a short notice instead of an empty table.
func (t *TableFormatter) Format(result *engine.Result) error {
	if len(result.Columns) == 0 {
		_, err := fmt.Fprintln(t.writer, "(no rows / no columns)")
		return err
	}

	table := tablewriter.NewWriter(t.writer)
	table.SetHeader(result.Columns)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)

	for _, row := range result.Rows {
		record := make([]string, len(row))
		for i, value := range row {
			record[i] = cellString(value)
		}
		table.Append(record)
	}

	table.Render()
	return nil
}

// cellString renders a cell for table display
func cellString(v engine.Value) string {
	if v.IsNull() {
		return "NULL"
	}
	return v.String()
}
