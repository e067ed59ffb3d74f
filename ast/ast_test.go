/*
File    : monkey/ast/ast_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package ast

import (
	"testing"

	"github.com/akashmaji946/monkey/lexer"
	"github.com/stretchr/testify/assert"
)

func TestProgram_String(t *testing.T) {
	program := &Program{
		Statements: []Statement{
			&LetStatement{
				Token: lexer.New(lexer.LET, "let", 1, 1),
				Name: &Identifier{
					Token: lexer.New(lexer.IDENT, "myVar", 1, 5),
					Value: "myVar",
				},
				Value: &Identifier{
					Token: lexer.New(lexer.IDENT, "anotherVar", 1, 13),
					Value: "anotherVar",
				},
			},
		},
	}

	assert.Equal(t, "let myVar = anotherVar;", program.String())
}

func TestProgram_TokenLiteral_Empty(t *testing.T) {
	program := &Program{}
	assert.Equal(t, "", program.TokenLiteral())
}

func TestInfixExpression_String(t *testing.T) {
	expr := &InfixExpression{
		Token:    lexer.New(lexer.PLUS, "+", 1, 3),
		Left:     &IntegerLiteral{Token: lexer.New(lexer.INT, "5", 1, 1), Value: 5},
		Operator: "+",
		Right:    &IntegerLiteral{Token: lexer.New(lexer.INT, "5", 1, 5), Value: 5},
	}
	assert.Equal(t, "(5 + 5)", expr.String())
}

func TestPrefixExpression_String(t *testing.T) {
	expr := &PrefixExpression{
		Token:    lexer.New(lexer.BANG, "!", 1, 1),
		Operator: "!",
		Right:    &Boolean{Token: lexer.New(lexer.TRUE, "true", 1, 2), Value: true},
	}
	assert.Equal(t, "(!true)", expr.String())
}

func TestFunctionLiteral_String(t *testing.T) {
	fn := &FunctionLiteral{
		Token: lexer.New(lexer.FUNCTION, "fn", 1, 1),
		Parameters: []*Identifier{
			{Token: lexer.New(lexer.IDENT, "x", 1, 4), Value: "x"},
			{Token: lexer.New(lexer.IDENT, "y", 1, 7), Value: "y"},
		},
		Body: &BlockStatement{
			Token: lexer.New(lexer.LBRACE, "{", 1, 10),
			Statements: []Statement{
				&ExpressionStatement{
					Token: lexer.New(lexer.IDENT, "x", 1, 12),
					Expression: &InfixExpression{
						Token:    lexer.New(lexer.PLUS, "+", 1, 14),
						Left:     &Identifier{Token: lexer.New(lexer.IDENT, "x", 1, 12), Value: "x"},
						Operator: "+",
						Right:    &Identifier{Token: lexer.New(lexer.IDENT, "y", 1, 16), Value: "y"},
					},
				},
			},
		},
	}

	assert.Equal(t, "fn(x, y) (x + y)", fn.String())
}

func TestCallExpression_String(t *testing.T) {
	call := &CallExpression{
		Token:    lexer.New(lexer.LPAREN, "(", 1, 4),
		Function: &Identifier{Token: lexer.New(lexer.IDENT, "add", 1, 1), Value: "add"},
		Arguments: []Expression{
			&IntegerLiteral{Token: lexer.New(lexer.INT, "1", 1, 5), Value: 1},
			&IntegerLiteral{Token: lexer.New(lexer.INT, "2", 1, 8), Value: 2},
		},
	}
	assert.Equal(t, "add(1, 2)", call.String())
}

func TestIfExpression_String_NoAlternative(t *testing.T) {
	ifExpr := &IfExpression{
		Token:     lexer.New(lexer.IF, "if", 1, 1),
		Condition: &Boolean{Token: lexer.New(lexer.TRUE, "true", 1, 4), Value: true},
		Consequence: &BlockStatement{
			Token: lexer.New(lexer.LBRACE, "{", 1, 9),
			Statements: []Statement{
				&ExpressionStatement{
					Token:      lexer.New(lexer.IDENT, "x", 1, 11),
					Expression: &Identifier{Token: lexer.New(lexer.IDENT, "x", 1, 11), Value: "x"},
				},
			},
		},
	}
	assert.Equal(t, "iftruex", ifExpr.String())
}

// dumpVisitor records the order in which nodes were visited; enough to
// confirm Accept dispatches to the right method without re-implementing a
// full printer in the test.
type dumpVisitor struct{ seen []string }

func (d *dumpVisitor) VisitProgram(p *Program)                         { d.seen = append(d.seen, "Program") }
func (d *dumpVisitor) VisitIdentifier(i *Identifier)                   { d.seen = append(d.seen, "Identifier") }
func (d *dumpVisitor) VisitIntegerLiteral(il *IntegerLiteral)          { d.seen = append(d.seen, "IntegerLiteral") }
func (d *dumpVisitor) VisitBoolean(b *Boolean)                         { d.seen = append(d.seen, "Boolean") }
func (d *dumpVisitor) VisitPrefixExpression(pe *PrefixExpression)      { d.seen = append(d.seen, "PrefixExpression") }
func (d *dumpVisitor) VisitInfixExpression(ie *InfixExpression)        { d.seen = append(d.seen, "InfixExpression") }
func (d *dumpVisitor) VisitIfExpression(ie *IfExpression)              { d.seen = append(d.seen, "IfExpression") }
func (d *dumpVisitor) VisitFunctionLiteral(fl *FunctionLiteral)        { d.seen = append(d.seen, "FunctionLiteral") }
func (d *dumpVisitor) VisitCallExpression(ce *CallExpression)          { d.seen = append(d.seen, "CallExpression") }
func (d *dumpVisitor) VisitLetStatement(ls *LetStatement)              { d.seen = append(d.seen, "LetStatement") }
func (d *dumpVisitor) VisitReturnStatement(rs *ReturnStatement)        { d.seen = append(d.seen, "ReturnStatement") }
func (d *dumpVisitor) VisitExpressionStatement(es *ExpressionStatement) {
	d.seen = append(d.seen, "ExpressionStatement")
}
func (d *dumpVisitor) VisitBlockStatement(bs *BlockStatement) { d.seen = append(d.seen, "BlockStatement") }

func TestAccept_DispatchesToMatchingVisitMethod(t *testing.T) {
	v := &dumpVisitor{}
	(&IntegerLiteral{Token: lexer.New(lexer.INT, "5", 1, 1), Value: 5}).Accept(v)
	(&Boolean{Token: lexer.New(lexer.TRUE, "true", 1, 1), Value: true}).Accept(v)
	assert.Equal(t, []string{"IntegerLiteral", "Boolean"}, v.seen)
}
