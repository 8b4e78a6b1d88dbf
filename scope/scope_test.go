/*
File    : gomatch/scope/scope_test.go
*/

package scope_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gomatch-lang/gomatch/objects"
	"github.com/gomatch-lang/gomatch/scope"
)

func TestDefineAndLookup(t *testing.T) {
	s := scope.New(nil)
	require.NoError(t, s.Define("x", &objects.Integer{Value: 1}, false))
	v, err := s.Lookup("x")
	require.NoError(t, err)
	assert.Equal(t, &objects.Integer{Value: 1}, v)
}

func TestDefineRejectsRedefinitionRegardlessOfConst(t *testing.T) {
	s := scope.New(nil)
	require.NoError(t, s.Define("x", objects.NilValue, false))
	err := s.Define("x", objects.NilValue, true)
	assert.ErrorIs(t, err, scope.ErrAlreadyDefined)
}

func TestLookupWalksParentChain(t *testing.T) {
	parent := scope.New(nil)
	require.NoError(t, parent.Define("x", &objects.Integer{Value: 7}, false))
	child := scope.New(parent)
	v, err := child.Lookup("x")
	require.NoError(t, err)
	assert.Equal(t, &objects.Integer{Value: 7}, v)
}

func TestLookupMissingIsUndefined(t *testing.T) {
	s := scope.New(nil)
	_, err := s.Lookup("missing")
	assert.ErrorIs(t, err, scope.ErrUndefined)
}

func TestAssignUpdatesDefiningScope(t *testing.T) {
	parent := scope.New(nil)
	require.NoError(t, parent.Define("x", &objects.Integer{Value: 1}, false))
	child := scope.New(parent)
	require.NoError(t, child.Assign("x", &objects.Integer{Value: 2}))

	v, err := parent.Lookup("x")
	require.NoError(t, err)
	assert.Equal(t, &objects.Integer{Value: 2}, v)
}

func TestAssignUndefinedFails(t *testing.T) {
	s := scope.New(nil)
	err := s.Assign("missing", objects.NilValue)
	assert.ErrorIs(t, err, scope.ErrUndefined)
}

func TestAssignConstFails(t *testing.T) {
	s := scope.New(nil)
	require.NoError(t, s.Define("x", &objects.Integer{Value: 1}, true))
	err := s.Assign("x", &objects.Integer{Value: 2})
	assert.ErrorIs(t, err, scope.ErrConstant)
}

func TestRedeclareOverwritesNonConst(t *testing.T) {
	s := scope.New(nil)
	require.NoError(t, s.Define("f", &objects.Integer{Value: 1}, false))
	require.NoError(t, s.Redeclare("f", &objects.Integer{Value: 2}))
	v, err := s.Lookup("f")
	require.NoError(t, err)
	assert.Equal(t, &objects.Integer{Value: 2}, v)
}

func TestRedeclareFailsOnConst(t *testing.T) {
	s := scope.New(nil)
	require.NoError(t, s.Define("f", &objects.Integer{Value: 1}, true))
	err := s.Redeclare("f", &objects.Integer{Value: 2})
	assert.ErrorIs(t, err, scope.ErrConstant)
}

func TestCopyIsIndependentOfLiveScope(t *testing.T) {
	s := scope.New(nil)
	require.NoError(t, s.Define("x", &objects.Integer{Value: 1}, false))
	cp := s.Copy()
	require.NoError(t, s.Define("y", &objects.Integer{Value: 2}, false))

	assert.ElementsMatch(t, []string{"x"}, cp.Names())
	assert.ElementsMatch(t, []string{"x", "y"}, s.Names())
}
