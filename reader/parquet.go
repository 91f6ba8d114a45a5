package reader

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/parquet-go/parquet-go"

	"github.com/vegasq/csvql/engine"
)

// LoadParquet reads a parquet file into a table. The column order
// comes from the file schema; decoded values are mapped onto the
// engine's scalar kinds. The entire file is loaded into memory.
func LoadParquet(path string) (*engine.Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	stat, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	pqFile, err := parquet.OpenFile(file, stat.Size())
	if err != nil {
		return nil, fmt.Errorf("failed to open parquet file: %w", err)
	}

	var columns []string
	for _, field := range pqFile.Schema().Fields() {
		columns = append(columns, field.Name())
	}

	reader := parquet.NewReader(pqFile)
	defer func() { _ = reader.Close() }()

	var rows []engine.Row
	for {
		raw := make(map[string]interface{})
		err := reader.Read(&raw)
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("failed to read row: %w", err)
		}

		row := make(engine.Row, len(columns))
		for col, value := range raw {
			row[col] = valueOf(value)
		}
		rows = append(rows, row)
	}

	return &engine.Table{
		Name:    TableName(path),
		Columns: columns,
		Rows:    rows,
	}, nil
}

// valueOf maps a decoded parquet value onto the engine's scalar kinds
func valueOf(v interface{}) engine.Value {
	switch val := v.(type) {
	case nil:
		return engine.Null()
	case int:
		return engine.NewInt(int64(val))
	case int32:
		return engine.NewInt(int64(val))
	case int64:
		return engine.NewInt(val)
	case float32:
		return engine.NewFloat(float64(val))
	case float64:
		return engine.NewFloat(val)
	case string:
		return engine.NewText(val)
	case []byte:
		return engine.NewText(string(val))
	case bool:
		return engine.NewText(strconv.FormatBool(val))
	default:
		return engine.NewText(fmt.Sprintf("%v", val))
	}
}
