/*
File    : monkey/cmd/lex.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/akashmaji946/monkey/lexer"
	"github.com/spf13/cobra"
)

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Tokenize a file (or stdin) and print every token",
	RunE: func(cmd *cobra.Command, args []string) error {
		source, err := readSource(args)
		if err != nil {
			redColor.Fprintf(os.Stderr, "[FILE ERROR] %v\n", err)
			os.Exit(1)
		}

		lex := lexer.NewLexer(source)
		for _, tok := range lex.ConsumeTokens() {
			fmt.Fprintln(cmd.OutOrStdout(), tok.String())
		}
		return nil
	},
}
