package output

import (
	"encoding/json"
	"io"

	"github.com/vegasq/csvql/engine"
)

// JSONFormatter outputs results as JSON Lines format
type JSONFormatter struct {
	writer io.Writer
}

// NewJSONFormatter creates a new JSON Lines formatter
func NewJSONFormatter(w io.Writer) *JSONFormatter {
	return &JSONFormatter{writer: w}
}

// SetOutput sets the output writer
func (j *JSONFormatter) SetOutput(w io.Writer) {
	j.writer = w
}

// Format writes the result as JSON Lines (one object per row, keyed
// by the result's column names)
func (j *JSONFormatter) Format(result *engine.Result) error {
	encoder := json.NewEncoder(j.writer)
	for _, row := range result.Rows {
		obj := make(map[string]interface{}, len(result.Columns))
		for i, col := range result.Columns {
			obj[col] = jsonValue(row[i])
		}
		if err := encoder.Encode(obj); err != nil {
			return err
		}
	}
	return nil
}

// jsonValue converts a cell into its JSON representation
func jsonValue(v engine.Value) interface{} {
	switch v.Kind {
	case engine.KindInt:
		return v.Int
	case engine.KindFloat:
		return v.Float
	case engine.KindText:
		return v.Text
	default:
		return nil
	}
}
