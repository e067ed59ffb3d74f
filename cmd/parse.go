/*
File    : monkey/cmd/parse.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/akashmaji946/monkey/lexer"
	"github.com/akashmaji946/monkey/parser"
	"github.com/spf13/cobra"
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse a file (or stdin) and print the pretty-printed AST, or diagnostics on failure",
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

		fmt.Fprintln(cmd.OutOrStdout(), program.String())
		return nil
	},
}
