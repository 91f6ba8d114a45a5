package query

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	identPattern    = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
	barewordPattern = regexp.MustCompile(`^[A-Za-z0-9_]+$`)
)

// Parser parses token streams into Query values
type Parser struct {
	tokens []Token
	pos    int
}

// NewParser creates a new parser
func NewParser(tokens []Token) *Parser {
	return &Parser{tokens: tokens, pos: 0}
}

// current returns the current token
func (p *Parser) current() Token {
	if p.pos >= len(p.tokens) {
		return Token{Type: TokenEOF, Value: ""}
	}
	return p.tokens[p.pos]
}

// peek returns the next token without advancing
func (p *Parser) peek() Token {
	if p.pos+1 >= len(p.tokens) {
		return Token{Type: TokenEOF, Value: ""}
	}
	return p.tokens[p.pos+1]
}

// advance moves to the next token
func (p *Parser) advance() {
	p.pos++
}

// hasToken reports whether a token of the given type appears at or
// after the current position
func (p *Parser) hasToken(tokType TokenType) bool {
	for i := p.pos; i < len(p.tokens); i++ {
		if p.tokens[i].Type == tokType {
			return true
		}
	}
	return false
}

// Parse parses a SQL query
func Parse(text string) (*Query, error) {
	if strings.TrimSpace(text) == "" {
		return nil, parseErrorf(ErrEmptyInput, "empty query")
	}

	parser := NewParser(Tokenize(text))
	return parser.parseQuery()
}

// parseQuery parses: SELECT selection FROM table [WHERE condition] [;]
func (p *Parser) parseQuery() (*Query, error) {
	if p.current().Type != TokenSelect {
		return nil, parseErrorf(ErrMissingSelect, "query must start with SELECT")
	}
	p.advance()

	if p.current().Type == TokenEOF {
		return nil, parseErrorf(ErrMissingSelect, "query must start with SELECT")
	}
	if !p.hasToken(TokenFrom) {
		return nil, parseErrorf(ErrMissingFrom, "missing FROM clause")
	}

	selection, err := p.parseSelection()
	if err != nil {
		return nil, err
	}

	if p.current().Type != TokenFrom {
		return nil, parseErrorf(ErrInvalidColumn, "invalid column name: %s", strings.ToLower(p.current().Value))
	}
	p.advance()

	q := &Query{
		Selection: selection,
		Table:     p.parseTableName(),
	}

	if p.current().Type == TokenWhere {
		p.advance()
		cond, err := p.parseCondition()
		if err != nil {
			return nil, err
		}
		q.Where = cond
	}

	// trailing semicolon, then nothing
	if p.current().Type == TokenSemicolon && p.peek().Type == TokenEOF {
		p.advance()
	}
	if p.current().Type != TokenEOF {
		return nil, parseErrorf(ErrInvalidWhereValue, "WHERE value must be a number or string")
	}

	return q, nil
}

// parseSelection parses *, COUNT(...), or a column list
func (p *Parser) parseSelection() (Selection, error) {
	tok := p.current()

	// bare * selecting all columns
	if tok.Type == TokenIdent && tok.Value == "*" && p.peek().Type == TokenFrom {
		p.advance()
		return Selection{Kind: SelectAll}, nil
	}

	// COUNT aggregate; a plain "count" without parens is still a valid column name
	if tok.Type == TokenIdent && strings.EqualFold(tok.Value, "count") && p.peek().Type == TokenLeftParen {
		return p.parseCount()
	}

	return p.parseColumnList()
}

// parseCount parses COUNT(*) or COUNT(identifier)
func (p *Parser) parseCount() (Selection, error) {
	p.advance() // count
	p.advance() // (

	arg := p.current()
	if arg.Type != TokenIdent {
		return Selection{}, parseErrorf(ErrInvalidCount, "invalid COUNT() syntax")
	}
	target := strings.ToLower(arg.Value)
	if target != "*" && !identPattern.MatchString(target) {
		return Selection{}, parseErrorf(ErrInvalidCount, "invalid COUNT() syntax")
	}
	p.advance()

	if p.current().Type != TokenRightParen {
		return Selection{}, parseErrorf(ErrInvalidCount, "invalid COUNT() syntax")
	}
	p.advance()

	// the aggregate must be the entire selection
	if p.current().Type != TokenFrom {
		return Selection{}, parseErrorf(ErrInvalidCount, "invalid COUNT() syntax")
	}

	return Selection{Kind: SelectCount, Count: target}, nil
}

// parseColumnList parses a comma-separated list of column names.
// Empty list items are dropped; at least one column must survive.
func (p *Parser) parseColumnList() (Selection, error) {
	var cols []string
	prev := ""
	sep := true // a column may start the list or follow a comma

	for {
		tok := p.current()
		if tok.Type == TokenComma {
			p.advance()
			sep = true
			continue
		}
		if tok.Type != TokenIdent {
			if tok.Type == TokenFrom || tok.Type == TokenSemicolon || tok.Type == TokenEOF {
				break
			}
			return Selection{}, parseErrorf(ErrInvalidColumn, "invalid column name: %s", strings.ToLower(tok.Value))
		}
		name := strings.ToLower(tok.Value)
		if !sep {
			return Selection{}, parseErrorf(ErrInvalidColumn, "invalid column name: %s %s", prev, name)
		}
		if !identPattern.MatchString(name) {
			return Selection{}, parseErrorf(ErrInvalidColumn, "invalid column name: %s", name)
		}
		cols = append(cols, name)
		prev = name
		sep = false
		p.advance()
	}

	if len(cols) == 0 {
		return Selection{}, parseErrorf(ErrEmptySelection, "no columns specified in SELECT")
	}

	return Selection{Kind: SelectColumns, Columns: cols}, nil
}

// parseTableName consumes everything up to WHERE, a trailing semicolon,
// or the end of input. The table name is not validated as an
// identifier: any text is accepted and lowercased, and an unknown name
// surfaces later as a table-not-found execution error.
func (p *Parser) parseTableName() string {
	var parts []string
	for {
		tok := p.current()
		if tok.Type == TokenEOF || tok.Type == TokenWhere {
			break
		}
		if tok.Type == TokenSemicolon && p.peek().Type == TokenEOF {
			break
		}
		parts = append(parts, tok.Value)
		p.advance()
	}
	return strings.ToLower(strings.Join(parts, " "))
}

// parseCondition parses: identifier operator literal
func (p *Parser) parseCondition() (*Condition, error) {
	// the operator gates everything else, matching how the WHERE text
	// is reported when no comparison is present at all
	if !p.hasComparisonOperator() {
		return nil, parseErrorf(ErrMissingOperator, "WHERE must contain a comparison operator")
	}

	tok := p.current()
	if tok.Type != TokenIdent {
		return nil, parseErrorf(ErrInvalidWhereColumn, "invalid column in WHERE: %s", strings.ToLower(tok.Value))
	}
	column := strings.ToLower(tok.Value)
	if !identPattern.MatchString(column) {
		return nil, parseErrorf(ErrInvalidWhereColumn, "invalid column in WHERE: %s", column)
	}
	p.advance()

	operator := p.current().Type
	if !isComparisonOperator(operator) {
		// the left side was not a single identifier
		return nil, parseErrorf(ErrInvalidWhereColumn, "invalid column in WHERE: %s %s", column, strings.ToLower(p.current().Value))
	}
	p.advance()

	value, err := p.parseLiteral()
	if err != nil {
		return nil, err
	}

	return &Condition{Column: column, Operator: operator, Value: value}, nil
}

// parseLiteral parses a WHERE operand: a quoted string, a number, or a
// bare word of letters, digits and underscores
func (p *Parser) parseLiteral() (Literal, error) {
	tok := p.current()
	switch tok.Type {
	case TokenString:
		p.advance()
		return Literal{Kind: LiteralText, Text: tok.Value}, nil
	case TokenNumber:
		num, err := strconv.ParseFloat(tok.Value, 64)
		if err != nil {
			return Literal{}, parseErrorf(ErrInvalidWhereValue, "WHERE value must be a number or string: %s", tok.Value)
		}
		p.advance()
		return Literal{Kind: LiteralNumber, Num: num}, nil
	case TokenIdent:
		if !barewordPattern.MatchString(tok.Value) {
			return Literal{}, parseErrorf(ErrInvalidWhereValue, "WHERE value must be a number or string: %s", tok.Value)
		}
		p.advance()
		return Literal{Kind: LiteralText, Text: tok.Value}, nil
	default:
		return Literal{}, parseErrorf(ErrInvalidWhereValue, "WHERE value must be a number or string: %s", tok.Value)
	}
}

// hasComparisonOperator reports whether a comparison operator appears
// at or after the current position
func (p *Parser) hasComparisonOperator() bool {
	for i := p.pos; i < len(p.tokens); i++ {
		if isComparisonOperator(p.tokens[i].Type) {
			return true
		}
	}
	return false
}

// isComparisonOperator reports whether the token type is one of
// =, !=, <, >, <=, >=
func isComparisonOperator(t TokenType) bool {
	switch t {
	case TokenEqual, TokenNotEqual, TokenLess, TokenGreater, TokenLessEqual, TokenGreaterEqual:
		return true
	}
	return false
}
