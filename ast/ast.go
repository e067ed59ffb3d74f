/*
File    : monkey/ast/ast.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package ast defines the syntax tree spec.md's parser builds: a closed set
// of statement and expression node types, each carrying the lexer.Token it
// was parsed from plus its own fields. Nodes never hold evaluation state —
// this is a pure syntax tree, not a partially-evaluated one.
package ast

import (
	"bytes"

	"github.com/akashmaji946/monkey/lexer"
)

// Node is the root interface every AST node satisfies.
type Node interface {
	// TokenLiteral returns the literal text of the token the node was
	// parsed from. Used mainly in tests and diagnostics.
	TokenLiteral() string
	// String renders the node in its canonical pretty-print form;
	// Program.String() is the oracle tests compare against. Block braces
	// are not printed, so the output for an if expression or a function
	// literal is not valid monkey source and does not parse back to the
	// same tree.
	String() string
	// Accept dispatches to the matching Visit method, the single place a
	// caller (the `ast` CLI dumper, say) can add a whole-tree operation
	// without every node type growing a bespoke method for it.
	Accept(v Visitor)
}

// Statement is a Node that forms a complete line of a program or block.
type Statement interface {
	Node
	statementNode()
}

// Expression is a Node that produces a value.
type Expression interface {
	Node
	expressionNode()
}

// Program is the root node: the ordered list of top-level statements that
// make up a whole parse.
type Program struct {
	Statements []Statement
}

func (p *Program) TokenLiteral() string {
	if len(p.Statements) > 0 {
		return p.Statements[0].TokenLiteral()
	}
	return ""
}

func (p *Program) String() string {
	var out bytes.Buffer
	for _, s := range p.Statements {
		out.WriteString(s.String())
	}
	return out.String()
}

func (p *Program) Accept(v Visitor) { v.VisitProgram(p) }

// Identifier is a reference to a bound name, as an expression (e.g. `x` in
// `x + 1`) or as the name half of a let statement.
type Identifier struct {
	Token lexer.Token // the IDENT token
	Value string
}

func (i *Identifier) expressionNode()      {}
func (i *Identifier) TokenLiteral() string { return i.Token.Literal }
func (i *Identifier) String() string       { return i.Value }
func (i *Identifier) Accept(v Visitor)     { v.VisitIdentifier(i) }
