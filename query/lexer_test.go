package query

import "testing"

func TestLexer_Tokens(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Token
	}{
		{
			name:  "simple select",
			input: "select * from users",
			want: []Token{
				{TokenSelect, "select"},
				{TokenIdent, "*"},
				{TokenFrom, "from"},
				{TokenIdent, "users"},
				{TokenEOF, ""},
			},
		},
		{
			name:  "mixed case keywords",
			input: "SeLeCt id FroM t WhErE x = 1",
			want: []Token{
				{TokenSelect, "SeLeCt"},
				{TokenIdent, "id"},
				{TokenFrom, "FroM"},
				{TokenIdent, "t"},
				{TokenWhere, "WhErE"},
				{TokenIdent, "x"},
				{TokenEqual, "="},
				{TokenNumber, "1"},
				{TokenEOF, ""},
			},
		},
		{
			name:  "count call with commas and parens",
			input: "count( id ), name;",
			want: []Token{
				{TokenIdent, "count"},
				{TokenLeftParen, "("},
				{TokenIdent, "id"},
				{TokenRightParen, ")"},
				{TokenComma, ","},
				{TokenIdent, "name"},
				{TokenSemicolon, ";"},
				{TokenEOF, ""},
			},
		},
		{
			name:  "quoted string keeps inner text verbatim",
			input: `name = 'a\nb'`,
			want: []Token{
				{TokenIdent, "name"},
				{TokenEqual, "="},
				{TokenString, `a\nb`},
				{TokenEOF, ""},
			},
		},
		{
			name:  "negative float",
			input: "delta <= -2.5",
			want: []Token{
				{TokenIdent, "delta"},
				{TokenLessEqual, "<="},
				{TokenNumber, "-2.5"},
				{TokenEOF, ""},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.input)
			if len(got) != len(tt.want) {
				t.Fatalf("Tokenize() = %v tokens, want %v: %v", len(got), len(tt.want), got)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("token %d = {%v %q}, want {%v %q}", i, got[i].Type, got[i].Value, tt.want[i].Type, tt.want[i].Value)
				}
			}
		})
	}
}

// Greedy operator matching: ">=" must never lex as ">" followed by "=".
func TestLexer_OperatorPriority(t *testing.T) {
	tests := []struct {
		input string
		want  TokenType
	}{
		{">=", TokenGreaterEqual},
		{"<=", TokenLessEqual},
		{"!=", TokenNotEqual},
		{">", TokenGreater},
		{"<", TokenLess},
		{"=", TokenEqual},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tokens := Tokenize("age " + tt.input + " 30")
			if len(tokens) != 4 {
				t.Fatalf("Tokenize() = %v tokens, want 4: %v", len(tokens), tokens)
			}
			if tokens[1].Type != tt.want {
				t.Errorf("operator token = %v, want %v", tokens[1].Type, tt.want)
			}
			if tokens[2].Type != TokenNumber || tokens[2].Value != "30" {
				t.Errorf("operand token = {%v %q}, want number 30", tokens[2].Type, tokens[2].Value)
			}
		})
	}
}

func TestLexer_ErrorToken(t *testing.T) {
	tokens := Tokenize("a ! b")
	if tokens[1].Type != TokenError {
		t.Errorf("lone ! = %v, want TokenError", tokens[1].Type)
	}
}
