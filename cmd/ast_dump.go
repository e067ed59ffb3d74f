/*
File    : monkey/cmd/ast_dump.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package cmd

import (
	"bytes"
	"fmt"
	"os"

	"github.com/akashmaji946/monkey/ast"
	"github.com/akashmaji946/monkey/lexer"
	"github.com/akashmaji946/monkey/parser"
	"github.com/spf13/cobra"
)

var astCmd = &cobra.Command{
	Use:   "ast [file]",
	Short: "Parse a file (or stdin) and print an indented structural dump of the AST",
	RunE: func(cmd *cobra.Command, args []string) error {
		source, err := readSource(args)
		if err != nil {
			redColor.Fprintf(os.Stderr, "[FILE ERROR] %v\n", err)
			os.Exit(1)
		}

		par := parser.New(lexer.NewLexer(source))
		program := par.ParseProgram()

		if diags := par.Diagnostics(); len(diags) > 0 {
			for _, d := range diags {
				redColor.Fprintf(os.Stderr, "%s\n", d.String())
			}
			os.Exit(1)
		}

		dumper := &dumpVisitor{}
		program.Accept(dumper)
		fmt.Fprint(cmd.OutOrStdout(), dumper.buf.String())
		return nil
	},
}

// dumpVisitor renders the AST as an indented tree, one line per node,
// generalized from the teacher's PrintingVisitor: a debugging aid distinct
// from the canonical String() pretty-printer, useful for seeing precedence
// and nesting at a glance.
type dumpVisitor struct {
	buf    bytes.Buffer
	indent int
}

func (d *dumpVisitor) line(format string, args ...any) {
	for i := 0; i < d.indent; i++ {
		d.buf.WriteString("  ")
	}
	fmt.Fprintf(&d.buf, format+"\n", args...)
}

func (d *dumpVisitor) nested(node ast.Node) {
	d.indent++
	node.Accept(d)
	d.indent--
}

func (d *dumpVisitor) VisitProgram(p *ast.Program) {
	d.line("Program")
	for _, s := range p.Statements {
		d.nested(s)
	}
}

func (d *dumpVisitor) VisitIdentifier(i *ast.Identifier) {
	d.line("Identifier(%s)", i.Value)
}

func (d *dumpVisitor) VisitIntegerLiteral(il *ast.IntegerLiteral) {
	d.line("IntegerLiteral(%d)", il.Value)
}

func (d *dumpVisitor) VisitBoolean(b *ast.Boolean) {
	d.line("Boolean(%t)", b.Value)
}

func (d *dumpVisitor) VisitPrefixExpression(pe *ast.PrefixExpression) {
	d.line("PrefixExpression(%s)", pe.Operator)
	d.nested(pe.Right)
}

func (d *dumpVisitor) VisitInfixExpression(ie *ast.InfixExpression) {
	d.line("InfixExpression(%s)", ie.Operator)
	d.nested(ie.Left)
	d.nested(ie.Right)
}

func (d *dumpVisitor) VisitIfExpression(ie *ast.IfExpression) {
	d.line("IfExpression")
	d.nested(ie.Condition)
	d.nested(ie.Consequence)
	if ie.Alternative != nil {
		d.nested(ie.Alternative)
	}
}

func (d *dumpVisitor) VisitFunctionLiteral(fl *ast.FunctionLiteral) {
	d.line("FunctionLiteral")
	for _, param := range fl.Parameters {
		d.nested(param)
	}
	d.nested(fl.Body)
}

func (d *dumpVisitor) VisitCallExpression(ce *ast.CallExpression) {
	d.line("CallExpression")
	d.nested(ce.Function)
	for _, arg := range ce.Arguments {
		d.nested(arg)
	}
}

func (d *dumpVisitor) VisitLetStatement(ls *ast.LetStatement) {
	d.line("LetStatement(%s)", ls.Name.Value)
	d.nested(ls.Value)
}

func (d *dumpVisitor) VisitReturnStatement(rs *ast.ReturnStatement) {
	d.line("ReturnStatement")
	d.nested(rs.ReturnValue)
}

func (d *dumpVisitor) VisitExpressionStatement(es *ast.ExpressionStatement) {
	d.line("ExpressionStatement")
	d.nested(es.Expression)
}

func (d *dumpVisitor) VisitBlockStatement(bs *ast.BlockStatement) {
	d.line("BlockStatement")
	for _, s := range bs.Statements {
		d.nested(s)
	}
}
