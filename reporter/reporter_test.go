/*
File    : gomatch/reporter/reporter_test.go
*/

package reporter_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gomatch-lang/gomatch/eval"
	"github.com/gomatch-lang/gomatch/lexer"
	"github.com/gomatch-lang/gomatch/reporter"
)

func init() {
	color.NoColor = true
}

func TestReportPlainErrorPassesThrough(t *testing.T) {
	var out bytes.Buffer
	reporter.Report(&out, os.ErrNotExist)
	assert.Equal(t, os.ErrNotExist.Error()+"\n", out.String())
}

func TestReportDiagnosticWithoutFilename(t *testing.T) {
	var out bytes.Buffer
	err := &eval.UndefinedVariableError{Name: "x", At: lexer.Position{Line: 1, Column: 5}}
	reporter.Report(&out, err)
	assert.Equal(t, "UndefinedVariable: Undefined variable 'x'\n", out.String())
}

func TestReportDiagnosticWithSourceLine(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "prog.gm")
	require.NoError(t, os.WriteFile(path, []byte("var x = 1;\nprint(y);\n"), 0o644))

	var out bytes.Buffer
	err := &eval.UndefinedVariableError{
		Name: "y",
		At:   lexer.Position{Line: 2, Column: 7, Filename: path},
	}
	reporter.Report(&out, err)
	assert.Equal(t, "UndefinedVariable: Undefined variable 'y'\n   2:7 | print(y);\n", out.String())
}

func TestReportDiagnosticWithMissingFileSkipsSourceLine(t *testing.T) {
	var out bytes.Buffer
	err := &eval.UndefinedVariableError{
		Name: "y",
		At:   lexer.Position{Line: 2, Column: 7, Filename: "/no/such/file.gm"},
	}
	reporter.Report(&out, err)
	assert.Equal(t, "UndefinedVariable: Undefined variable 'y'\n", out.String())
}
