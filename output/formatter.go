package output

import (
	"io"

	"github.com/vegasq/csvql/engine"
)

// Formatter defines the interface for result formatters.
//
// Implementers must provide Format to render a result in the target
// format and SetOutput to change the output destination.
type Formatter interface {
	// Format writes the result in the formatter's specific format
	Format(result *engine.Result) error

	// SetOutput changes the output writer
	SetOutput(w io.Writer)
}
