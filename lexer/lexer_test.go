/*
File    : monkey/lexer/lexer_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// tokenCase represents one ConsumeTokens scenario: source in, the exact
// token stream expected out (EOF excluded, matching ConsumeTokens).
type tokenCase struct {
	name  string
	input string
	want  []Token
}

func TestLexer_ConsumeTokens(t *testing.T) {
	tests := []tokenCase{
		{
			name:  "single character operators and delimiters",
			input: `=+(){},;`,
			want: []Token{
				New(ASSIGN, "=", 1, 1),
				New(PLUS, "+", 1, 2),
				New(LPAREN, "(", 1, 3),
				New(RPAREN, ")", 1, 4),
				New(LBRACE, "{", 1, 5),
				New(RBRACE, "}", 1, 6),
				New(COMMA, ",", 1, 7),
				New(SEMICOLON, ";", 1, 8),
			},
		},
		{
			name:  "two character operators",
			input: `== != < >`,
			want: []Token{
				New(EQ, "==", 1, 1),
				New(NOTEQ, "!=", 1, 4),
				New(LT, "<", 1, 7),
				New(GT, ">", 1, 9),
			},
		},
		{
			name:  "remaining operators",
			input: `- ! * /`,
			want: []Token{
				New(MINUS, "-", 1, 1),
				New(BANG, "!", 1, 3),
				New(ASTERISK, "*", 1, 5),
				New(SLASH, "/", 1, 7),
			},
		},
		{
			name:  "integer and identifier",
			input: `five = 5`,
			want: []Token{
				New(IDENT, "five", 1, 1),
				New(ASSIGN, "=", 1, 6),
				New(INT, "5", 1, 8),
			},
		},
		{
			name:  "keywords",
			input: `fn let true false if else return`,
			want: []Token{
				New(FUNCTION, "fn", 1, 1),
				New(LET, "let", 1, 4),
				New(TRUE, "true", 1, 8),
				New(FALSE, "false", 1, 13),
				New(IF, "if", 1, 19),
				New(ELSE, "else", 1, 22),
				New(RETURN, "return", 1, 27),
			},
		},
		{
			name:  "identifier with digits and underscore is never split",
			input: `__a19bcd_aa90`,
			want: []Token{
				New(IDENT, "__a19bcd_aa90", 1, 1),
			},
		},
		{
			name:  "illegal character",
			input: `@`,
			want: []Token{
				New(ILLEGAL, "@", 1, 1),
			},
		},
		{
			name: "multi-line program tracks line and column",
			input: "let add = fn(x, y) {\n  x + y;\n};",
			want: []Token{
				New(LET, "let", 1, 1),
				New(IDENT, "add", 1, 5),
				New(ASSIGN, "=", 1, 9),
				New(FUNCTION, "fn", 1, 11),
				New(LPAREN, "(", 1, 13),
				New(IDENT, "x", 1, 14),
				New(COMMA, ",", 1, 15),
				New(IDENT, "y", 1, 17),
				New(RPAREN, ")", 1, 18),
				New(LBRACE, "{", 1, 20),
				New(IDENT, "x", 2, 3),
				New(PLUS, "+", 2, 5),
				New(IDENT, "y", 2, 7),
				New(SEMICOLON, ";", 2, 8),
				New(RBRACE, "}", 3, 1),
				New(SEMICOLON, ";", 3, 2),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lex := NewLexer(tt.input)
			got := lex.ConsumeTokens()
			if !assert.Equal(t, len(tt.want), len(got)) {
				return
			}
			for i, want := range tt.want {
				assert.Equal(t, want.Type, got[i].Type, "token %d type", i)
				assert.Equal(t, want.Literal, got[i].Literal, "token %d literal", i)
				assert.Equal(t, want.Line, got[i].Line, "token %d line", i)
				assert.Equal(t, want.Column, got[i].Column, "token %d column", i)
			}
		})
	}
}

func TestLexer_EOFIsStable(t *testing.T) {
	lex := NewLexer(`5`)
	first := lex.NextToken()
	assert.Equal(t, INT, first.Type)

	eof1 := lex.NextToken()
	eof2 := lex.NextToken()
	assert.Equal(t, EOF, eof1.Type)
	assert.Equal(t, EOF, eof2.Type)
	assert.Equal(t, eof1.Line, eof2.Line)
	assert.Equal(t, eof1.Column, eof2.Column)
}

func TestLexer_EmptyInput(t *testing.T) {
	lex := NewLexer(``)
	tok := lex.NextToken()
	assert.Equal(t, EOF, tok.Type)
	assert.Equal(t, 1, tok.Line)
	assert.Equal(t, 1, tok.Column)
}
