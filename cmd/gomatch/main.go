/*
File    : gomatch/cmd/gomatch/main.go
*/

// Command gomatch is the process entry point for the interpreter (§6.1):
// with no arguments it starts an interactive REPL; with one argument it
// runs that file as a complete program.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/gomatch-lang/gomatch/eval"
	"github.com/gomatch-lang/gomatch/lexer"
	"github.com/gomatch-lang/gomatch/parser"
	"github.com/gomatch-lang/gomatch/repl"
	"github.com/gomatch-lang/gomatch/replconfig"
	"github.com/gomatch-lang/gomatch/reporter"
	"github.com/gomatch-lang/gomatch/source"
)

var VERSION = "v0.1.0"
var AUTHOR = "gomatch-lang"

var BANNER = `
   ____             __  __    _       _
  / ___| ___  _ __ |  \/  | __ _| |_ ___| |__
 | |  _ / _ \| '_ \| |\/| |/ _` + "`" + ` | __/ __| '_ \
 | |_| | (_) | | | | |  | | (_| | || (__| | | |
  \____|\___/|_| |_|_|  |_|\__,_|\__\___|_| |_|
`

var LINE = "----------------------------------------------------------------"

var (
	redColor  = color.New(color.FgRed)
	cyanColor = color.New(color.FgCyan)
)

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--help", "-h":
			showHelp()
			return
		case "--version", "-v":
			showVersion()
			return
		default:
			if err := runFile(os.Args[1]); err != nil {
				reporter.Report(os.Stderr, err)
				os.Exit(1)
			}
			return
		}
	}

	cfg, err := replconfig.Load()
	if err != nil {
		redColor.Fprintf(os.Stderr, "[CONFIG ERROR] %v\n", err)
		os.Exit(1)
	}
	r := repl.New(BANNER, VERSION, AUTHOR, LINE)
	if err := r.Start(os.Stdout, cfg); err != nil {
		redColor.Fprintf(os.Stderr, "[REPL ERROR] %v\n", err)
		os.Exit(1)
	}
}

// runFile opens path with guaranteed release (§5), lexes, parses, and
// evaluates it as one program, writing print output to stdout.
func runFile(path string) error {
	return source.Run(path, func(stream *lexer.FileStream) error {
		lx := lexer.NewFilteredLexer(lexer.NewLexer(stream))
		p, err := parser.New(lx)
		if err != nil {
			return err
		}
		prog, err := p.Parse()
		if err != nil {
			return err
		}
		ev := eval.New(os.Stdout)
		return ev.Run(prog)
	})
}

func showHelp() {
	cyanColor.Println("gomatch - a small pattern-matching scripting language")
	cyanColor.Println("")
	cyanColor.Println("USAGE:")
	fmt.Println("  gomatch                 Start the interactive REPL")
	fmt.Println("  gomatch <script>        Run a gomatch script file")
	fmt.Println("  gomatch --help          Display this help message")
	fmt.Println("  gomatch --version       Display version information")
}

func showVersion() {
	cyanColor.Printf("gomatch %s (%s)\n", VERSION, AUTHOR)
}
