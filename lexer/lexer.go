/*
File    : monkey/lexer/lexer.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package lexer

// Lexer performs lexical analysis of monkey source code. It scans the
// source byte by byte, classifying and emitting one Token per call to
// NextToken. It owns its input buffer for its whole lifetime and never
// blocks on I/O — the caller hands it the complete source up front.
//
// Fields:
//   - Src: the complete source code
//   - Current: the byte at the current read head (0 at EOF)
//   - Position: byte index of Current
//   - SrcLength: len(Src)
//   - Line, Column: 1-indexed coordinates of Current
type Lexer struct {
	Src       string
	Current   byte
	Position  int
	SrcLength int
	Line      int
	Column    int
}

// NewLexer creates a Lexer positioned at the first byte of src (or EOF if
// src is empty), at line 1, column 1.
func NewLexer(src string) *Lexer {
	lex := &Lexer{Src: src, SrcLength: len(src), Line: 1, Column: 1}
	if len(src) > 0 {
		lex.Current = src[0]
	}
	return lex
}

// NextToken skips any run of whitespace, snapshots the position of the
// first character of what follows, classifies it per the table in spec
// §4.1.2, and returns the resulting Token. Once EOF is reached, further
// calls keep returning EOF.
func (lex *Lexer) NextToken() Token {
	lex.skipWhitespace()

	line, column := lex.Line, lex.Column

	var tok Token
	switch lex.Current {
	case '=':
		if lex.Peek() == '=' {
			lex.Advance()
			tok = New(EQ, "==", line, column)
		} else {
			tok = New(ASSIGN, "=", line, column)
		}
	case '!':
		if lex.Peek() == '=' {
			lex.Advance()
			tok = New(NOTEQ, "!=", line, column)
		} else {
			tok = New(BANG, "!", line, column)
		}
	case '+':
		tok = New(PLUS, "+", line, column)
	case '-':
		tok = New(MINUS, "-", line, column)
	case '*':
		tok = New(ASTERISK, "*", line, column)
	case '/':
		tok = New(SLASH, "/", line, column)
	case '<':
		tok = New(LT, "<", line, column)
	case '>':
		tok = New(GT, ">", line, column)
	case ',':
		tok = New(COMMA, ",", line, column)
	case ';':
		tok = New(SEMICOLON, ";", line, column)
	case '(':
		tok = New(LPAREN, "(", line, column)
	case ')':
		tok = New(RPAREN, ")", line, column)
	case '{':
		tok = New(LBRACE, "{", line, column)
	case '}':
		tok = New(RBRACE, "}", line, column)
	case 0:
		return New(EOF, "", line, column)
	default:
		if isLetter(lex.Current) {
			return lex.readIdentifier(line, column)
		}
		if isDigit(lex.Current) {
			return lex.readNumber(line, column)
		}
		tok = New(ILLEGAL, string(lex.Current), line, column)
	}

	lex.Advance()
	return tok
}

// Peek looks at the next byte without consuming it, returning 0 at EOF.
// Used for the two-character-lookahead operators (==, !=).
func (lex *Lexer) Peek() byte {
	if lex.Position+1 >= lex.SrcLength {
		return 0
	}
	return lex.Src[lex.Position+1]
}

// Advance moves the read head one byte forward, updating Position, Column,
// Line and Current. A newline increments Line and resets Column to 1; any
// other byte just increments Column.
func (lex *Lexer) Advance() {
	if lex.Current == '\n' {
		lex.Line++
		lex.Column = 1
	} else {
		lex.Column++
	}

	lex.Position++
	if lex.Position >= lex.SrcLength {
		lex.Current = 0
		lex.Position = lex.SrcLength
	} else {
		lex.Current = lex.Src[lex.Position]
	}
}

// skipWhitespace advances past spaces, tabs, carriage returns and newlines.
func (lex *Lexer) skipWhitespace() {
	for isWhitespace(lex.Current) {
		lex.Advance()
	}
}

// readIdentifier scans the longest run of letters/digits/underscores
// starting at the current position (already known to start with a letter
// or underscore) and classifies it as a keyword or IDENT. The token ends
// before, and does not consume, the first non-identifier byte.
func (lex *Lexer) readIdentifier(line, column int) Token {
	start := lex.Position
	for isLetter(lex.Current) || isDigit(lex.Current) {
		lex.Advance()
	}
	literal := lex.Src[start:lex.Position]
	return New(lookupIdent(literal), literal, line, column)
}

// readNumber scans the longest run of ASCII digits starting at the current
// position and returns it as an INT token.
func (lex *Lexer) readNumber(line, column int) Token {
	start := lex.Position
	for isDigit(lex.Current) {
		lex.Advance()
	}
	return New(INT, lex.Src[start:lex.Position], line, column)
}

// isWhitespace reports whether b is a space, tab, carriage return, or
// newline.
func isWhitespace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\r' || b == '\n'
}

// isLetter reports whether b is an ASCII letter or underscore.
func isLetter(b byte) bool {
	return 'a' <= b && b <= 'z' || 'A' <= b && b <= 'Z' || b == '_'
}

// isDigit reports whether b is an ASCII decimal digit.
func isDigit(b byte) bool {
	return '0' <= b && b <= '9'
}

// ConsumeTokens tokenizes the entire source and returns every token up to
// (but excluding) EOF. Used by the `lex` CLI subcommand and by tests.
func (lex *Lexer) ConsumeTokens() []Token {
	var tokens []Token
	for {
		tok := lex.NextToken()
		if tok.Type == EOF {
			break
		}
		tokens = append(tokens, tok)
	}
	return tokens
}
