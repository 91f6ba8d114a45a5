package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/vegasq/csvql/engine"
	"github.com/vegasq/csvql/output"
	"github.com/vegasq/csvql/query"
	"github.com/vegasq/csvql/reader"
)

var (
	queryFlag   = flag.String("q", "", "SQL query (e.g., \"select id from sample_1 where age > 30\")")
	formatFlag  = flag.String("f", "table", "Output format: table, json, jsonl, csv")
	limitFlag   = flag.Int("limit", 0, "Limit number of result rows (0 = unlimited)")
	verboseFlag = flag.Bool("v", false, "Enable debug logging")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] [file.csv ...]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "A tool to query CSV and Parquet files with SQL.\n")
		fmt.Fprintf(os.Stderr, "Each file is loaded as a table named after the file without its extension.\n")
		fmt.Fprintf(os.Stderr, "Without -q an interactive shell starts.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s sample_1.csv\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -q \"select id from sample_1 where age > 30\" sample_1.csv\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -f csv -q \"select count(*) from events\" events.parquet\n", os.Args[0])
	}

	flag.Parse()

	level := slog.LevelWarn
	if *verboseFlag {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if *limitFlag < 0 {
		fmt.Fprintf(os.Stderr, "Error: -limit must be non-negative, got %d\n", *limitFlag)
		os.Exit(1)
	}

	registry := engine.NewRegistry()
	for _, path := range flag.Args() {
		table, err := reader.LoadFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		registry.Register(table)
		slog.Debug("loaded table", "table", table.Name, "rows", len(table.Rows))
	}

	formatter, err := newFormatter(*formatFlag, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *queryFlag == "" {
		runREPL(registry, formatter)
		return
	}

	result, err := runQuery(*queryFlag, registry)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := formatter.Format(result); err != nil {
		fmt.Fprintf(os.Stderr, "Error formatting output: %v\n", err)
		os.Exit(1)
	}
}

// runQuery parses and executes one query against the registry,
// applying the -limit cap to the result rows
func runQuery(text string, registry *engine.Registry) (*engine.Result, error) {
	q, err := query.Parse(text)
	if err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}

	result, err := engine.Execute(q, registry)
	if err != nil {
		return nil, err
	}

	if *limitFlag > 0 && len(result.Rows) > *limitFlag {
		result.Rows = result.Rows[:*limitFlag]
	}
	return result, nil
}

// newFormatter builds the formatter for the requested output format
func newFormatter(format string, w io.Writer) (output.Formatter, error) {
	switch format {
	case "table":
		return output.NewTableFormatter(w), nil
	case "json", "jsonl":
		return output.NewJSONFormatter(w), nil
	case "csv":
		return output.NewCSVFormatter(w), nil
	default:
		return nil, fmt.Errorf("unsupported format %q (supported: table, json, jsonl, csv)", format)
	}
}
