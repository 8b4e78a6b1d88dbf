/*
File    : gomatch/repl/repl.go
*/

// Package repl implements gomatch's interactive Read-Eval-Print Loop: each
// line the user enters is lexed, parsed, and evaluated as a complete
// program (§6.1), with state (variables, functions) persisting in one
// Evaluator across the whole session.
package repl

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/gomatch-lang/gomatch/eval"
	"github.com/gomatch-lang/gomatch/lexer"
	"github.com/gomatch-lang/gomatch/parser"
	"github.com/gomatch-lang/gomatch/replconfig"
	"github.com/gomatch-lang/gomatch/reporter"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl holds the banner text shown at startup. Everything session-specific
// (prompt, history file, color) comes from a *replconfig.Config passed to
// Start.
type Repl struct {
	Banner  string
	Version string
	Author  string
	Line    string
}

// New creates a Repl with the given banner components.
func New(banner, version, author, line string) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line}
}

func (r *Repl) printBanner(w io.Writer) {
	blueColor.Fprintf(w, "%s\n", r.Line)
	greenColor.Fprintf(w, "%s\n", r.Banner)
	blueColor.Fprintf(w, "%s\n", r.Line)
	yellowColor.Fprintln(w, "Version: "+r.Version+" | Author: "+r.Author)
	blueColor.Fprintf(w, "%s\n", r.Line)
	cyanColor.Fprintln(w, "Type your code and press enter.")
	cyanColor.Fprintln(w, "Type '.exit' to quit, '.scope' to list bound names.")
	blueColor.Fprintf(w, "%s\n", r.Line)
}

// Start runs the loop until the user exits or stdin closes. cfg controls
// the prompt, color, and history file; the zero-value-filled Config
// replconfig.Load returns for a missing config file is a valid default.
func (r *Repl) Start(w io.Writer, cfg *replconfig.Config) error {
	color.NoColor = !cfg.ColorEnabled()
	r.printBanner(w)

	rl, err := readline.NewEx(&readline.Config{
		Prompt:      cfg.Prompt,
		HistoryFile: cfg.HistoryFile,
	})
	if err != nil {
		return err
	}
	defer rl.Close()

	ev := eval.New(w)

	for {
		line, err := rl.Readline()
		if err != nil { // io.EOF (Ctrl+D) or readline.ErrInterrupt (Ctrl+C)
			fmt.Fprintln(w, "Good bye!")
			return nil
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == ".exit" {
			fmt.Fprintln(w, "Good bye!")
			return nil
		}
		if line == ".scope" {
			printScope(w, ev)
			continue
		}

		rl.SaveHistory(line)
		r.evalLine(w, ev, line)
	}
}

// evalLine lexes, parses, and evaluates one line as a complete program,
// reporting any failure through reporter without stopping the session.
func (r *Repl) evalLine(w io.Writer, ev *eval.Evaluator, line string) {
	lx := lexer.NewFilteredLexer(lexer.NewLexer(lexer.NewTextStream(line)))
	p, err := parser.New(lx)
	if err != nil {
		reporter.Report(w, err)
		return
	}
	prog, err := p.Parse()
	if err != nil {
		reporter.Report(w, err)
		return
	}
	if err := ev.Run(prog); err != nil {
		reporter.Report(w, err)
	}
}

// printScope lists the names bound directly in the global scope, sorted
// for stable output, via Scope.Copy — the introspection use that method
// exists for, rather than iterating the live scope directly.
func printScope(w io.Writer, ev *eval.Evaluator) {
	snapshot := ev.Global.Copy()
	names := snapshot.Names()
	sort.Strings(names)
	for _, name := range names {
		v, _ := snapshot.Lookup(name)
		fmt.Fprintf(w, "  %s = %s\n", name, v.Inspect())
	}
}
