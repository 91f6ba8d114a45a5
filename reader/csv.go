package reader

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/vegasq/csvql/engine"
)

// LoadFile loads a data file as a table based on its extension
func LoadFile(path string) (*engine.Table, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return LoadCSV(path)
	case ".parquet":
		return LoadParquet(path)
	default:
		return nil, fmt.Errorf("unsupported file type: %s (supported: .csv, .parquet)", path)
	}
}

// LoadCSV reads a CSV file into a table. The first record is the
// header; its names keep their original case and order. Records with a
// different field count than the header are an error, so every row of
// the resulting table exposes the same column set.
func LoadCSV(path string) (*engine.Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv file %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("csv file %s has no header row", path)
	}

	header := records[0]
	rows := make([]engine.Row, 0, len(records)-1)
	for _, record := range records[1:] {
		row := make(engine.Row, len(header))
		for i, col := range header {
			row[col] = FieldValue(record[i])
		}
		rows = append(rows, row)
	}

	return &engine.Table{
		Name:    TableName(path),
		Columns: header,
		Rows:    rows,
	}, nil
}

// FieldValue converts a raw CSV field into a cell value: blank is
// null, then integer, then float, then the trimmed text itself.
func FieldValue(field string) engine.Value {
	s := strings.TrimSpace(field)
	if s == "" {
		return engine.Null()
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return engine.NewInt(n)
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return engine.NewFloat(f)
	}
	return engine.NewText(s)
}

// TableName derives the registry key for a file path: the lowercased
// basename without its extension.
func TableName(path string) string {
	base := filepath.Base(path)
	return strings.ToLower(strings.TrimSuffix(base, filepath.Ext(base)))
}
