// Package reader loads data files into in-memory tables.
//
// Two sources are supported: CSV files (header row required) and
// Apache Parquet files via the parquet-go library. Both produce an
// engine.Table whose name is the lowercased file basename without its
// extension, whose column order follows the source, and whose cells
// are converted into the engine's scalar kinds: a blank field is null,
// then integer parse, then float parse, then the trimmed text.
package reader
