/*
File    : gomatch/std/print.go
*/

package std

import (
	"fmt"
	"strings"

	"github.com/gomatch-lang/gomatch/objects"
)

// Print is the "print" builtin (§4.4.10): variadic, stringifies every
// argument via its canonical Value.String() (the same stringification
// "+" falls back to), joins with single spaces, and terminates with a
// newline.
var Print = &Builtin{
	BuiltinName: "print",
	ArityValue:  nil,
	Fn:          printFn,
}

func printFn(rt Runtime, args []objects.Value) (objects.Value, error) {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = a.String()
	}
	_, err := fmt.Fprintln(rt.Output(), strings.Join(parts, " "))
	if err != nil {
		return nil, err
	}
	return objects.NilValue, nil
}

// All lists every builtin registered into the global scope at evaluator
// construction time.
var All = []*Builtin{Print}
