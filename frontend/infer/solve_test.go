package infer_test

import (
	goerrors "errors"
	"fmt"
	"go/token"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veld-lang/veld/frontend/ast"
	"github.com/veld-lang/veld/frontend/infer"
	"github.com/veld-lang/veld/frontend/types"
	"github.com/veld-lang/veld/frontend/velderr"
)

func TestSolveEmptySet(t *testing.T) {
	subst, err := infer.Solve(types.NewConstraintSet())
	require.NoError(t, err)
	assert.Empty(t, subst)
}

func TestSolveDiscardsTrivialEqualities(t *testing.T) {
	subst, err := infer.Solve(types.NewConstraintSet(
		types.Equality(types.Int, types.Int),
		types.Equality(types.NewGeneric("List", []types.Type{types.String}), types.NewGeneric("List", []types.Type{types.String})),
	))
	require.NoError(t, err)
	assert.Empty(t, subst)
}

func TestSolveBindsVariableEitherSide(t *testing.T) {
	left := types.NewTypeVar("T1")
	right := types.NewTypeVar("T2")
	subst, err := infer.Solve(types.NewConstraintSet(
		types.Equality(left, types.Int),
		types.Equality(types.String, right),
	))
	require.NoError(t, err)
	assert.Same(t, types.Int, subst.Apply(left))
	assert.Same(t, types.String, subst.Apply(right))
}

func TestSolveTransitiveChain(t *testing.T) {
	// T1 = T2, T2 = T3, ..., T49 = T50, T50 = Int: every variable must
	// resolve all the way to Int, not just to its neighbour
	vars := make([]*types.TypeVar, 50)
	for i := range vars {
		vars[i] = types.NewTypeVar(fmt.Sprintf("T%d", i+1))
	}
	constraints := types.NewConstraintSet()
	for i := 0; i < len(vars)-1; i++ {
		constraints.Insert(types.Equality(vars[i], vars[i+1]))
	}
	constraints.Insert(types.Equality(vars[len(vars)-1], types.Int))

	subst, err := infer.Solve(constraints)
	require.NoError(t, err)
	for i, v := range vars {
		assert.Same(t, types.Int, subst.Apply(v), "T%d must resolve to Int", i+1)
	}
}

func TestSolveDecomposesStructure(t *testing.T) {
	elem := types.NewTypeVar("T1")
	ret := types.NewTypeVar("T2")
	constraints := types.NewConstraintSet(
		types.Equality(
			types.NewFunc([]types.Type{types.NewGeneric("List", []types.Type{elem})}, ret),
			types.NewFunc([]types.Type{types.NewGeneric("List", []types.Type{types.Int})}, types.Boolean),
		),
	)

	subst, err := infer.Solve(constraints)
	require.NoError(t, err)
	assert.Same(t, types.Int, subst.Apply(elem))
	assert.Same(t, types.Boolean, subst.Apply(ret))
}

func TestSolveDecomposesNullableAndUnion(t *testing.T) {
	inner := types.NewTypeVar("T1")
	arg := types.NewTypeVar("T2")
	constraints := types.NewConstraintSet(
		types.Equality(types.NewNullable(inner), types.NewNullable(types.String)),
		types.Equality(types.NewUnion("Option", []types.Type{arg}), types.NewUnion("Option", []types.Type{types.Long})),
	)

	subst, err := infer.Solve(constraints)
	require.NoError(t, err)
	assert.Same(t, types.String, subst.Apply(inner))
	assert.Same(t, types.Long, subst.Apply(arg))
}

func TestSolveMismatchedPrimitives(t *testing.T) {
	_, err := infer.Solve(types.NewConstraintSet(types.Equality(types.Int, types.String)))
	requireMismatch(t, err, types.Int, types.String)
}

func TestSolveMismatchedArity(t *testing.T) {
	_, err := infer.Solve(types.NewConstraintSet(types.Equality(
		types.NewTuple([]types.Type{types.Int, types.Int}),
		types.NewTuple([]types.Type{types.Int}),
	)))
	var mismatch velderr.NewTypeMismatch
	require.ErrorAs(t, err, &mismatch)
}

func TestSolveMismatchedVariants(t *testing.T) {
	_, err := infer.Solve(types.NewConstraintSet(types.Equality(
		types.NewGeneric("List", []types.Type{types.Int}),
		types.NewUnion("List", []types.Type{types.Int}),
	)))
	var mismatch velderr.NewTypeMismatch
	require.ErrorAs(t, err, &mismatch)
}

func TestSolveOccursCheck(t *testing.T) {
	v := types.NewTypeVar("T1")
	listOfV := types.NewGeneric("List", []types.Type{v})

	_, err := infer.Solve(types.NewConstraintSet(types.Equality(v, listOfV)))
	require.Error(t, err)

	var infinite velderr.NewInfiniteType
	require.ErrorAs(t, err, &infinite)
	assert.Same(t, v, infinite.Variable)
	assert.Same(t, listOfV, infinite.Containing)

	var outer velderr.NewConstraintSolvingFailed
	assert.ErrorAs(t, err, &outer, "every failure is wrapped in the solving-failed outer error")
}

func TestSolveSameVariableBothSidesIsNotInfinite(t *testing.T) {
	v := types.NewTypeVar("T1")
	subst, err := infer.Solve(types.NewConstraintSet(types.Equality(v, v)))
	require.NoError(t, err)
	assert.Empty(t, subst)
}

func TestSolveFailureCarriesCause(t *testing.T) {
	_, err := infer.Solve(types.NewConstraintSet(types.Equality(types.Int, types.String)))
	require.Error(t, err)

	var asVeldErr velderr.VeldError
	require.True(t, goerrors.As(err, &asVeldErr))
	assert.Equal(t, velderr.ConstraintSolvingFailed, asVeldErr.Code())

	cause := errors.Cause(err)
	var causeVeldErr velderr.VeldError
	require.True(t, goerrors.As(cause, &causeVeldErr))
	assert.Equal(t, velderr.TypeMismatch, causeVeldErr.Code())
}

func TestSolveIfBranchUnification(t *testing.T) {
	ctx := freshContext()
	collected, constraints := ctx.Collect(&ast.IfExpr{
		Cond: boolLit("true"),
		Then: intLit("1"),
		Else: intLit("2"),
	})

	subst, err := infer.Solve(constraints)
	require.NoError(t, err)
	assert.Same(t, types.Int, subst.Apply(collected))
}

func TestSolveIfBranchMismatch(t *testing.T) {
	ctx := freshContext()
	_, constraints := ctx.Collect(&ast.IfExpr{
		Cond: boolLit("true"),
		Then: intLit("1"),
		Else: stringLit("s"),
	})

	_, err := infer.Solve(constraints)
	var mismatch velderr.NewTypeMismatch
	require.ErrorAs(t, err, &mismatch)
}

func TestSolveArithmeticJoin(t *testing.T) {
	ctx := freshContext()
	collected, constraints := ctx.Collect(binary(intLit("1"), token.ADD, intLit("2")))

	subst, err := infer.Solve(constraints)
	require.NoError(t, err)
	assert.Same(t, types.Double, subst.Apply(collected))
}

func TestSolveArithmeticOperandMismatch(t *testing.T) {
	ctx := freshContext()
	_, constraints := ctx.Collect(binary(stringLit("s"), token.ADD, boolLit("true")))

	_, err := infer.Solve(constraints)
	requireMismatch(t, err, types.String, types.Boolean)
}

func TestSolveGenericCallSitesAreIndependent(t *testing.T) {
	ctx := freshContext().WithFunction("identity", types.FunctionSignature{
		TypeParams: []string{"T"},
		Params:     []types.Type{types.NewNamed("T")},
		Return:     types.NewNamed("T"),
	})

	// (identity(1), identity("s")) must infer (Int, String)
	collected, constraints := ctx.Collect(&ast.TupleLit{Elements: []ast.Expr{
		call("identity", intLit("1")),
		call("identity", stringLit("s")),
	}})

	subst, err := infer.Solve(constraints)
	require.NoError(t, err)
	assert.Same(t, types.NewTuple([]types.Type{types.Int, types.String}), subst.Apply(collected))
}

func requireMismatch(t *testing.T, err error, first, second types.Type) {
	t.Helper()
	require.Error(t, err)
	var mismatch velderr.NewTypeMismatch
	require.ErrorAs(t, err, &mismatch)
	conflicting := []types.Type{mismatch.First, mismatch.Second}
	assert.Contains(t, conflicting, first)
	assert.Contains(t, conflicting, second)
}
