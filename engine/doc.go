// Package engine holds the in-memory table model and the query
// executor for csvql.
//
// Tables are loaded once by the reader package, registered in a
// Registry under their lowercased names, and never mutated afterwards.
// Execute evaluates a parsed query against the registry: it resolves
// the table, applies the WHERE predicate with type-aware comparison,
// and produces either a COUNT aggregate or a column projection.
//
// Execute is a pure function of its inputs. It keeps no state between
// calls and is safe to run concurrently as long as the registry is not
// being mutated at the same time.
//
// Example usage:
//
//	q, err := query.Parse("select id from sample_1 where age > 30")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	result, err := engine.Execute(q, registry)
//	if err != nil {
//	    log.Fatal(err)
//	}
package engine
