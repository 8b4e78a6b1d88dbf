/*
File    : gomatch/reporter/reporter.go
*/

// Package reporter formats lexer, parser, and evaluator failures into the
// one-or-two-line diagnostic format every driver (file runner, REPL)
// shares (§6.3), instead of each driver hand-rolling its own
// color.Fprintf calls.
package reporter

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"github.com/gomatch-lang/gomatch/lexer"
)

// Diagnostic is satisfied by lexer.Error, parser.Error, and eval.Error —
// every failure kind a driver might need to report.
type Diagnostic interface {
	error
	Kind() string
	Pos() lexer.Position
}

var (
	diagColor = color.New(color.FgRed)
	srcColor  = color.New(color.FgCyan)
)

// Report writes err to w. A Diagnostic is rendered as `Kind: message`
// followed by `   line:column | <source line>` when its position names a
// file and that line can still be read; anything else (a plain Go error,
// e.g. an I/O failure at the driver) is written as-is.
func Report(w io.Writer, err error) {
	diag, ok := err.(Diagnostic)
	if !ok {
		fmt.Fprintln(w, err)
		return
	}
	diagColor.Fprintf(w, "%s: %s\n", diag.Kind(), diag.Error())

	pos := diag.Pos()
	if pos.Filename == "" {
		return
	}
	if line, ok := sourceLine(pos.Filename, pos.Line); ok {
		srcColor.Fprintf(w, "   %d:%d | %s\n", pos.Line, pos.Column, line)
	}
}

// sourceLine re-opens filename and scans forward to line n, releasing the
// handle before returning regardless of where the scan stops.
func sourceLine(filename string, n int) (string, bool) {
	f, err := os.Open(filename)
	if err != nil {
		return "", false
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	line := 0
	for scanner.Scan() {
		line++
		if line == n {
			return scanner.Text(), true
		}
	}
	return "", false
}
