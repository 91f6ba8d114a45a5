// Package output provides formatters for rendering query results.
//
// Three formats are supported:
//   - table: an aligned terminal table (the interactive default)
//   - json: JSON Lines, one object per result row
//   - csv: comma-separated values with a header row
//
// All formatters work with *engine.Result and render null cells in a
// format-appropriate way: "NULL" in tables, JSON null, an empty CSV
// field.
//
// Example usage:
//
//	formatter := output.NewTableFormatter(os.Stdout)
//	if err := formatter.Format(result); err != nil {
//	    log.Fatal(err)
//	}
package output
