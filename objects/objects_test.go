/*
File    : gomatch/objects/objects_test.go
*/

package objects_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gomatch-lang/gomatch/objects"
)

func TestFloatStringDropsWholeValuedSuffix(t *testing.T) {
	assert.Equal(t, "3.5", (&objects.Float{Value: 3.5}).String())
	assert.Equal(t, "3", (&objects.Float{Value: 3}).String())
}

func TestFloatInspectAlwaysCarriesFractionalPart(t *testing.T) {
	assert.Equal(t, "3.5", (&objects.Float{Value: 3.5}).Inspect())
	assert.Equal(t, "3.0", (&objects.Float{Value: 3}).Inspect())
}

func TestIntegerString(t *testing.T) {
	assert.Equal(t, "42", (&objects.Integer{Value: 42}).String())
}

func TestStringInspectQuotes(t *testing.T) {
	s := &objects.String{Value: "hi"}
	assert.Equal(t, "hi", s.String())
	assert.Equal(t, `"hi"`, s.Inspect())
}

func TestBooleanString(t *testing.T) {
	assert.Equal(t, "true", (&objects.Boolean{Value: true}).String())
	assert.Equal(t, "false", (&objects.Boolean{Value: false}).String())
}

func TestNilValueIsShared(t *testing.T) {
	assert.Equal(t, "nil", objects.NilValue.String())
	assert.Same(t, objects.NilValue, objects.NilValue)
}
