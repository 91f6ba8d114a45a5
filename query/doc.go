// Package query provides SQL query parsing for csvql.
//
// This package implements a small SQL dialect covering single-table
// reads:
//
//	SELECT * FROM table
//	SELECT col1, col2 FROM table WHERE col op literal
//	SELECT COUNT(*) FROM table
//	SELECT COUNT(col) FROM table WHERE col op literal
//
// Keywords and identifiers are case-insensitive; identifiers and table
// names are lowercased in the parsed Query. The WHERE clause holds at
// most one comparison (no AND/OR), with operators =, !=, <, >, <=, >=
// and a literal operand that is either a number or a string. String
// literals are single- or double-quoted with no escape processing;
// unquoted words of letters, digits and underscores are accepted as
// string literals too.
//
// The package includes a lexer for tokenization and a recursive-descent
// parser producing a Query value. Parse failures are reported as
// *ParseError values with a stable Kind that callers can branch on.
//
// Example usage:
//
//	q, err := query.Parse("select id from sample_1 where age > 30")
//	if err != nil {
//	    log.Fatal(err)
//	}
package query
