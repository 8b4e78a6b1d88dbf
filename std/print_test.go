/*
File    : gomatch/std/print_test.go
*/

package std_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gomatch-lang/gomatch/objects"
	"github.com/gomatch-lang/gomatch/std"
)

type fakeRuntime struct {
	out bytes.Buffer
}

func (r *fakeRuntime) Output() io.Writer { return &r.out }

// Print is exercised through eval_test.go end to end; these tests pin its
// contract (joining, stringification, return value) directly against the
// std.Runtime seam.
func TestPrintJoinsWithSpacesAndNewline(t *testing.T) {
	rt := &fakeRuntime{}
	result, err := std.Print.Fn(rt, []objects.Value{
		&objects.Integer{Value: 1},
		&objects.String{Value: "hi"},
		&objects.Boolean{Value: true},
	})
	require.NoError(t, err)
	assert.Equal(t, objects.NilValue, result)
	assert.Equal(t, "1 hi true\n", rt.out.String())
}

func TestPrintNoArgsStillNewline(t *testing.T) {
	rt := &fakeRuntime{}
	_, err := std.Print.Fn(rt, nil)
	require.NoError(t, err)
	assert.Equal(t, "\n", rt.out.String())
}

func TestPrintIsVariadic(t *testing.T) {
	assert.Nil(t, std.Print.Arity())
	assert.Equal(t, "print", std.Print.Name())
}
