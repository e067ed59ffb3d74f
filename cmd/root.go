/*
File    : monkey/cmd/root.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package cmd is the entry point for the monkey front-end. It provides five
subcommands: `lex` (dump tokens), `parse` (print the AST or diagnostics),
`ast` (structural AST dump via the Visitor-based dumper), `repl`
(interactive loop, optionally served over TCP), and `version`.
*/
package cmd

import (
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// VERSION is the front-end's own version string (there is no interpreter
// to version alongside, only the lexer/parser).
const VERSION = "v1.0.0"

const AUTHOR = "akashmaji(@iisc.ac.in)"
const LICENSE = "MIT"
const PROMPT = "monkey >>> "

const LINE = "----------------------------------------------------------------"

const BANNER = `
  _ __ ___   ___  _ __  | | _____ _   _
 | '_ ' _ \ / _ \| '_ \ | |/ / _ \ | | |
 | | | | | | (_) | | | ||   <  __/ |_| |
 |_| |_| |_|\___/|_| |_||_|\_\___|\__, |
                                  |___/
`

var (
	redColor    = color.New(color.FgRed)
	yellowColor = color.New(color.FgYellow)
	cyanColor   = color.New(color.FgCyan)
)

var rootCmd = &cobra.Command{
	Use:     "monkey",
	Short:   "monkey — a lexer, Pratt parser and AST for the monkey language",
	Version: VERSION,
}

// Execute runs the CLI. It is the only function main.main calls.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		redColor.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(lexCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(astCmd)
	rootCmd.AddCommand(replCmd)
}

// readSource reads source text either from the single positional file
// argument, or from stdin if none was given.
func readSource(args []string) (string, error) {
	if len(args) == 0 {
		data, err := io.ReadAll(os.Stdin)
		return string(data), err
	}
	data, err := os.ReadFile(args[0])
	return string(data), err
}
