package velderr_test

import (
	goerrors "errors"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veld-lang/veld/frontend/types"
	"github.com/veld-lang/veld/frontend/velderr"
)

func TestTypeMismatchMessageNamesBothTypes(t *testing.T) {
	err := velderr.New(velderr.NewTypeMismatch{
		First:  types.NewGeneric("List", []types.Type{types.Int}),
		Second: types.String,
	})

	assert.Equal(t, velderr.TypeMismatch, err.Code())
	assert.Contains(t, err.Error(), "List<Int>")
	assert.Contains(t, err.Error(), "String")
	assert.Contains(t, velderr.FormatWithCode(err), "(E001)")
}

func TestInfiniteTypeMessageNamesVariableAndContainer(t *testing.T) {
	v := types.NewTypeVar("T1")
	err := velderr.New(velderr.NewInfiniteType{
		Variable:   v,
		Containing: types.NewGeneric("List", []types.Type{v}),
	})

	assert.Equal(t, velderr.InfiniteType, err.Code())
	assert.Contains(t, err.Error(), "T1")
	assert.Contains(t, err.Error(), "List<T1>")
}

func TestConstraintSolvingFailedWrapsCause(t *testing.T) {
	cause := velderr.New(velderr.NewTypeMismatch{First: types.Int, Second: types.Boolean})
	err := velderr.New(velderr.NewConstraintSolvingFailed{From: cause})

	assert.Equal(t, velderr.ConstraintSolvingFailed, err.Code())

	var mismatch velderr.NewTypeMismatch
	require.True(t, goerrors.As(err, &mismatch))
	assert.Same(t, types.Int, mismatch.First)

	unwrapped := errors.Cause(error(err))
	var causeVeldErr velderr.VeldError
	require.True(t, goerrors.As(unwrapped, &causeVeldErr))
	assert.Equal(t, velderr.TypeMismatch, causeVeldErr.Code())
}

func TestUndefinedVariableMessage(t *testing.T) {
	err := velderr.New(velderr.NewUndefinedVariable{Name: "missing"})
	assert.Equal(t, velderr.UndefinedVariable, err.Code())
	assert.Contains(t, err.Error(), "missing")
}
