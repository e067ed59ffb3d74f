/*
File    : monkey/parser/precedence.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import "github.com/akashmaji946/monkey/lexer"

// precedence levels, lowest to highest. Only the operators the grammar
// actually has get a level above LOWEST; everything else falls back to it
// and is never treated as an infix operator.
const (
	LOWEST      int = iota
	EQUALS          // == !=
	LESSGREATER     // < >
	SUM             // + -
	PRODUCT         // * /
	PREFIX          // -x !x
	CALL            // add(x)
)

// precedences maps each infix-capable token kind to its binding power.
// Token kinds absent from this table are never dispatched as infix
// operators by parseExpression.
var precedences = map[lexer.TokenType]int{
	lexer.EQ:       EQUALS,
	lexer.NOTEQ:    EQUALS,
	lexer.LT:       LESSGREATER,
	lexer.GT:       LESSGREATER,
	lexer.PLUS:     SUM,
	lexer.MINUS:    SUM,
	lexer.SLASH:    PRODUCT,
	lexer.ASTERISK: PRODUCT,
	lexer.LPAREN:   CALL,
}
