/*
File    : monkey/parser/diagnostic.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import "fmt"

// Diagnostic is a single parse error: where it happened and what went
// wrong. The parser never stops at the first one — it records a Diagnostic
// and resynchronizes instead of aborting.
type Diagnostic struct {
	Line    int
	Column  int
	Message string
}

// String renders a Diagnostic in the "[line L:C] <message>" form used
// everywhere diagnostics are surfaced: test assertions, the REPL, and the
// `parse`/`repl` CLI subcommands.
func (d Diagnostic) String() string {
	return fmt.Sprintf("[line %d:%d] %s", d.Line, d.Column, d.Message)
}
