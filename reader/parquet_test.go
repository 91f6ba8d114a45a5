package reader

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/parquet-go/parquet-go"

	"github.com/vegasq/csvql/engine"
)

// EventRow defines a simple test data structure
type EventRow struct {
	ID    int64   `parquet:"id"`
	Name  string  `parquet:"name"`
	Score float64 `parquet:"score"`
}

// createParquetFile writes a parquet fixture and returns its path
func createParquetFile(t *testing.T, name string, rows []EventRow) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}

	writer := parquet.NewGenericWriter[EventRow](f)
	if _, err := writer.Write(rows); err != nil {
		t.Fatalf("failed to write test data: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("failed to close writer: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("failed to close file: %v", err)
	}

	return path
}

func TestLoadParquet(t *testing.T) {
	path := createParquetFile(t, "Events.parquet", []EventRow{
		{ID: 1, Name: "alice", Score: 95.5},
		{ID: 2, Name: "bob", Score: 80},
	})

	table, err := LoadParquet(path)
	if err != nil {
		t.Fatalf("LoadParquet() error = %v", err)
	}

	if table.Name != "events" {
		t.Errorf("table name = %q, want %q", table.Name, "events")
	}

	wantCols := []string{"id", "name", "score"}
	if !reflect.DeepEqual(table.Columns, wantCols) {
		t.Errorf("columns = %v, want %v", table.Columns, wantCols)
	}

	if len(table.Rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(table.Rows))
	}

	first := table.Rows[0]
	if first["id"] != engine.NewInt(1) {
		t.Errorf("id = %+v, want int 1", first["id"])
	}
	if first["name"] != engine.NewText("alice") {
		t.Errorf("name = %+v, want text alice", first["name"])
	}
	if first["score"] != engine.NewFloat(95.5) {
		t.Errorf("score = %+v, want float 95.5", first["score"])
	}
}

func TestLoadParquet_NotParquet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.parquet")
	if err := os.WriteFile(path, []byte("not a parquet file"), 0o644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}
	if _, err := LoadParquet(path); err == nil {
		t.Error("LoadParquet() error = nil, want error")
	}
}

func TestValueOf(t *testing.T) {
	tests := []struct {
		name  string
		input interface{}
		want  engine.Value
	}{
		{name: "nil", input: nil, want: engine.Null()},
		{name: "int64", input: int64(7), want: engine.NewInt(7)},
		{name: "int32", input: int32(7), want: engine.NewInt(7)},
		{name: "float64", input: 1.5, want: engine.NewFloat(1.5)},
		{name: "string", input: "x", want: engine.NewText("x")},
		{name: "bytes", input: []byte("y"), want: engine.NewText("y")},
		{name: "bool", input: true, want: engine.NewText("true")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := valueOf(tt.input); got != tt.want {
				t.Errorf("valueOf(%v) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}
