package query

import "fmt"

// ErrorKind identifies the class of a parse failure
type ErrorKind int

const (
	ErrEmptyInput ErrorKind = iota
	ErrMissingSelect
	ErrMissingFrom
	ErrInvalidCount
	ErrInvalidColumn
	ErrEmptySelection
	ErrMissingOperator
	ErrInvalidWhereColumn
	ErrInvalidWhereValue
)

// ParseError is a syntax error with a stable kind callers can branch
// on. The message embeds the offending text.
type ParseError struct {
	Kind    ErrorKind
	Message string
}

func (e *ParseError) Error() string {
	return e.Message
}

func parseErrorf(kind ErrorKind, format string, args ...interface{}) *ParseError {
	return &ParseError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}
