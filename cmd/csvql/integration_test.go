package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vegasq/csvql/engine"
	"github.com/vegasq/csvql/reader"
)

// loadTestTable writes a CSV fixture and loads it into a registry
func loadTestTable(t *testing.T) *engine.Registry {
	t.Helper()

	path := filepath.Join(t.TempDir(), "sample_1.csv")
	content := "id,age\n1,25\n2,40\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	table, err := reader.LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}

	registry := engine.NewRegistry()
	registry.Register(table)
	return registry
}

func TestRunQuery_EndToEnd(t *testing.T) {
	registry := loadTestTable(t)

	result, err := runQuery("SELECT id FROM sample_1 WHERE age > 30", registry)
	if err != nil {
		t.Fatalf("runQuery() error = %v", err)
	}

	if len(result.Columns) != 1 || result.Columns[0] != "id" {
		t.Errorf("columns = %v, want [id]", result.Columns)
	}
	if len(result.Rows) != 1 || result.Rows[0][0] != engine.NewInt(2) {
		t.Errorf("rows = %v, want [[2]]", result.Rows)
	}
}

func TestRunQuery_ParseError(t *testing.T) {
	registry := loadTestTable(t)

	_, err := runQuery("not sql at all", registry)
	if err == nil {
		t.Fatal("runQuery() error = nil, want parse error")
	}
	if !strings.Contains(err.Error(), "parse error") {
		t.Errorf("error = %v, want parse error wrapping", err)
	}
}

func TestNewFormatter(t *testing.T) {
	var buf bytes.Buffer

	for _, format := range []string{"table", "json", "jsonl", "csv"} {
		if _, err := newFormatter(format, &buf); err != nil {
			t.Errorf("newFormatter(%q) error = %v", format, err)
		}
	}

	if _, err := newFormatter("yaml", &buf); err == nil {
		t.Error("newFormatter(yaml) error = nil, want error")
	}
}

func TestQueryThroughFormatter(t *testing.T) {
	registry := loadTestTable(t)

	result, err := runQuery("select count(*) from sample_1", registry)
	if err != nil {
		t.Fatalf("runQuery() error = %v", err)
	}

	var buf bytes.Buffer
	formatter, err := newFormatter("csv", &buf)
	if err != nil {
		t.Fatalf("newFormatter() error = %v", err)
	}
	if err := formatter.Format(result); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	want := "COUNT(*)\n2\n"
	if got := buf.String(); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}
