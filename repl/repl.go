/*
File    : monkey/repl/repl.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package repl implements the Read-Parse-Print Loop for the monkey front-end.
The REPL provides an interactive environment where users can:
- Enter monkey code line by line
- See the pretty-printed AST (or diagnostics) for each line
- Navigate command history using arrow keys
- Receive colored feedback for different types of output

There is no evaluator here: every line is lexed and parsed only, and either
its diagnostics or its canonical String() form is printed back.
*/
package repl

import (
	"io"
	"strings"

	"github.com/akashmaji946/monkey/lexer"
	"github.com/akashmaji946/monkey/parser"
	"github.com/chzyer/readline"
	"github.com/fatih/color"
)

// Color definitions for REPL output.
var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl encapsulates the configuration needed to run an interactive session.
type Repl struct {
	Banner  string // ASCII art banner displayed at startup
	Version string // version string of the interpreter front-end
	Author  string // author contact information
	Line    string // separator line for visual formatting
	License string // software license information
	Prompt  string // command prompt shown to the user
}

// NewRepl creates and initializes a new REPL instance.
func NewRepl(banner, version, author, line, license, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, License: license, Prompt: prompt}
}

// PrintBannerInfo displays the welcome banner and usage instructions.
func (r *Repl) PrintBannerInfo(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Version: "+r.Version+" | Author: "+r.Author+" | License: "+r.License)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "%s\n", "Welcome to the monkey front-end!")
	cyanColor.Fprintf(writer, "%s\n", "Type an expression or statement and press enter")
	cyanColor.Fprintf(writer, "%s\n", "Type '.exit' to quit")
	cyanColor.Fprintf(writer, "%s\n", "Use up/down arrows to navigate command history")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start begins the REPL main loop. It runs until the user types `.exit`,
// sends EOF (Ctrl+D), or readline itself errors.
func (r *Repl) Start(reader io.Reader, writer io.Writer) {
	r.PrintBannerInfo(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		line = strings.Trim(line, " \n\t\r")
		if line == "" {
			continue
		}
		if line == ".exit" {
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		rl.SaveHistory(line)
		r.executeWithRecovery(writer, line)
	}
}

// executeWithRecovery parses one line and prints its diagnostics (in red)
// or its pretty-printed form (in yellow). A panic anywhere in the parser
// is caught and reported rather than crashing the session — the REPL
// always survives a single bad line.
func (r *Repl) executeWithRecovery(writer io.Writer, line string) {
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(writer, "[INTERNAL ERROR] %v\n", recovered)
		}
	}()

	par := parser.New(lexer.NewLexer(line))
	program := par.ParseProgram()

	if diags := par.Diagnostics(); len(diags) > 0 {
		for _, d := range diags {
			redColor.Fprintf(writer, "%s\n", d.String())
		}
		return
	}

	yellowColor.Fprintf(writer, "%s\n", program.String())
}
