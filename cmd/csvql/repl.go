package main

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/vegasq/csvql/engine"
	"github.com/vegasq/csvql/output"
	"github.com/vegasq/csvql/reader"
)

const prompt = "csvql> "

// runREPL reads commands from stdin until EOF or an exit command.
// Lines starting with a dot are meta commands; everything else is
// executed as SQL.
func runREPL(registry *engine.Registry, formatter output.Formatter) {
	fmt.Println("csvql interactive shell (type .help for commands).")
	fmt.Println("Load a file: .load path/to/file.csv (table name is the file name without its extension)")
	fmt.Println("Run SQL: SELECT * FROM sample_1 WHERE age > 30;")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print(prompt)
		if !scanner.Scan() {
			fmt.Println()
			return
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		switch strings.ToLower(line) {
		case "exit", "quit", ".exit":
			fmt.Println("Bye.")
			return
		}

		if strings.HasPrefix(line, ".") {
			runMetaCommand(line, registry)
			continue
		}

		result, err := runQuery(line, registry)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			continue
		}
		if err := formatter.Format(result); err != nil {
			fmt.Fprintf(os.Stderr, "Error formatting output: %v\n", err)
		}
	}
}

// runMetaCommand handles the dot commands: .load, .tables, .schema, .help
func runMetaCommand(line string, registry *engine.Registry) {
	cmd, arg, _ := strings.Cut(line, " ")
	cmd = strings.ToLower(cmd)
	arg = strings.TrimSpace(arg)

	switch cmd {
	case ".load":
		if arg == "" {
			fmt.Println("Usage: .load path/to/file.csv")
			return
		}
		table, err := reader.LoadFile(arg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading file: %v\n", err)
			return
		}
		registry.Register(table)
		fmt.Printf("Loaded %q as table %q (rows: %d)\n", arg, table.Name, len(table.Rows))
		slog.Debug("table registered", "table", table.Name, "columns", len(table.Columns))
	case ".tables":
		names := registry.Names()
		if len(names) == 0 {
			fmt.Println("(no tables loaded)")
			return
		}
		for _, name := range names {
			table, _ := registry.Get(name)
			fmt.Printf("%s (rows=%d)\n", name, len(table.Rows))
		}
	case ".schema":
		if arg == "" {
			fmt.Println("Usage: .schema <table>")
			return
		}
		table, ok := registry.Get(strings.ToLower(arg))
		if !ok {
			fmt.Fprintf(os.Stderr, "Error: table %q not found\n", arg)
			return
		}
		for _, col := range table.Columns {
			fmt.Println(col)
		}
	case ".help":
		fmt.Println(".load path/to/file.csv  load a CSV or Parquet file as a table")
		fmt.Println(".tables                 list loaded tables")
		fmt.Println(".schema <table>         list a table's columns")
		fmt.Println("exit, quit, .exit       leave")
	default:
		fmt.Println("Unknown command. Type .help")
	}
}
