package query

// TokenType represents the type of a token
type TokenType int

const (
	// Keywords
	TokenSelect TokenType = iota
	TokenFrom
	TokenWhere

	// Operators
	TokenEqual        // =
	TokenNotEqual     // !=
	TokenLess         // <
	TokenGreater      // >
	TokenLessEqual    // <=
	TokenGreaterEqual // >=

	// Literals
	TokenString
	TokenNumber
	TokenIdent

	// Delimiters
	TokenComma      // ,
	TokenLeftParen  // (
	TokenRightParen // )
	TokenSemicolon  // ;

	// Special
	TokenEOF
	TokenError
)

// Token represents a lexical token
type Token struct {
	Type  TokenType
	Value string
}

// SelectionKind discriminates the three selection forms
type SelectionKind int

const (
	SelectAll     SelectionKind = iota // SELECT *
	SelectColumns                      // SELECT a, b, c
	SelectCount                        // SELECT COUNT(*) or COUNT(col)
)

// Selection describes what a query projects or aggregates.
//
// For SelectColumns, Columns holds the requested column names,
// lowercased, in query order; duplicates are permitted. For
// SelectCount, Count is "*" or a lowercased column name.
type Selection struct {
	Kind    SelectionKind
	Columns []string
	Count   string
}

// LiteralKind discriminates WHERE operand kinds
type LiteralKind int

const (
	LiteralNumber LiteralKind = iota
	LiteralText
)

// Literal is a WHERE clause operand. Numbers are always carried as
// float64 regardless of how they were written.
type Literal struct {
	Kind LiteralKind
	Num  float64
	Text string
}

// Condition is the single WHERE predicate: column, operator, operand.
type Condition struct {
	Column   string // lowercased
	Operator TokenType
	Value    Literal
}

// Query represents a parsed SQL query
type Query struct {
	Selection Selection
	Table     string // lowercased
	Where     *Condition
}
