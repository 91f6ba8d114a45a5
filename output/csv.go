package output

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/vegasq/csvql/engine"
)

// CSVFormatter outputs results as CSV format
type CSVFormatter struct {
	writer io.Writer
}

// NewCSVFormatter creates a new CSV formatter
func NewCSVFormatter(w io.Writer) *CSVFormatter {
	return &CSVFormatter{writer: w}
}

// SetOutput sets the output writer
func (c *CSVFormatter) SetOutput(w io.Writer) {
	c.writer = w
}

// Format writes the result as CSV: a header row followed by one
// record per result row. Null cells become empty fields.
func (c *CSVFormatter) Format(result *engine.Result) error {
	csvWriter := csv.NewWriter(c.writer)

	if len(result.Columns) == 0 {
		csvWriter.Flush()
		return csvWriter.Error()
	}

	if err := csvWriter.Write(result.Columns); err != nil {
		return err
	}

	for _, row := range result.Rows {
		record := make([]string, len(row))
		for i, value := range row {
			if !value.IsNull() {
				record[i] = value.String()
			}
		}
		if err := csvWriter.Write(record); err != nil {
			return err
		}
	}

	csvWriter.Flush()
	if err := csvWriter.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV writer: %w", err)
	}
	return nil
}
