package types_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/veld-lang/veld/frontend/types"
)

func TestApplyResolvesToFixedPoint(t *testing.T) {
	a := types.NewTypeVar("T1")
	b := types.NewTypeVar("T2")
	// a -> List<b>, b -> Int: applying once must fully resolve a
	subst := types.Substitution{
		a: types.NewGeneric("List", []types.Type{b}),
		b: types.Int,
	}

	resolved := subst.Apply(a)
	assert.Same(t, types.NewGeneric("List", []types.Type{types.Int}), resolved)
}

func TestApplyIsIdempotent(t *testing.T) {
	a := types.NewTypeVar("T1")
	b := types.NewTypeVar("T2")
	subst := types.Substitution{
		a: types.NewFunc([]types.Type{b}, b),
		b: types.String,
	}

	term := types.NewTuple([]types.Type{a, types.NewNullable(b), types.Int})
	once := subst.Apply(term)
	assert.Same(t, once, subst.Apply(once))
}

func TestApplyLeavesUnboundVariablesAlone(t *testing.T) {
	bound := types.NewTypeVar("T1")
	free := types.NewTypeVar("T2")
	subst := types.Substitution{bound: types.Int}

	resolved := subst.Apply(types.NewTuple([]types.Type{bound, free}))
	asTuple := resolved.(*types.Tuple)
	assert.Same(t, types.Int, asTuple.Elems()[0])
	assert.Same(t, free, asTuple.Elems()[1])
}

func TestCompose(t *testing.T) {
	a := types.NewTypeVar("T1")
	b := types.NewTypeVar("T2")

	first := types.Substitution{a: b}
	second := types.Substitution{b: types.Int}
	composed := first.Compose(second)

	assert.Same(t, types.Int, composed.Apply(a))
	assert.Same(t, types.Int, composed.Apply(b))
}

func TestOccurs(t *testing.T) {
	v := types.NewTypeVar("T1")
	other := types.NewTypeVar("T2")

	assert.True(t, types.Occurs(v, v))
	assert.True(t, types.Occurs(v, types.NewGeneric("List", []types.Type{v})))
	assert.True(t, types.Occurs(v, types.NewFunc([]types.Type{types.Int}, types.NewNullable(v))))
	assert.False(t, types.Occurs(v, other))
	assert.False(t, types.Occurs(v, types.NewGeneric("List", []types.Type{other})))
	assert.False(t, types.Occurs(v, types.Int))
}

func TestFreeTypeVarNames(t *testing.T) {
	a := types.NewTypeVar("T2")
	b := types.NewTypeVar("T1")
	duplicateLabel := types.NewTypeVar("T1")

	term := types.NewTuple([]types.Type{a, types.NewFunc([]types.Type{b}, duplicateLabel)})
	assert.Equal(t, []string{"T1", "T2"}, types.FreeTypeVarNames(term))
	assert.Nil(t, types.FreeTypeVarNames(types.Int))
}

func TestSubstituteNamed(t *testing.T) {
	param := types.NewNamed("T")
	sigParam := types.NewGeneric("List", []types.Type{param})

	instantiated := types.SubstituteNamed(sigParam, map[string]types.Type{"T": types.Int})
	assert.Same(t, types.NewGeneric("List", []types.Type{types.Int}), instantiated)

	untouched := types.SubstituteNamed(sigParam, map[string]types.Type{"U": types.Int})
	assert.Same(t, sigParam, untouched)
}

func TestConstraintSetMergeIsOrderIrrelevant(t *testing.T) {
	a := types.Equality(types.Int, types.Int)
	b := types.Equality(types.String, types.Boolean)
	c := types.Equality(types.NewNamed("X"), types.Unit)

	oneWay := types.NewConstraintSet(a, b)
	oneWay.InsertSet(types.NewConstraintSet(c))
	otherWay := types.NewConstraintSet(c)
	otherWay.InsertSet(types.NewConstraintSet(b, a))

	render := func(cs types.ConstraintSet) []string {
		rendered := make([]string, 0, cs.Size())
		for constraint := range cs.Items() {
			rendered = append(rendered, constraint.String())
		}
		sort.Strings(rendered)
		return rendered
	}
	assert.Equal(t, render(oneWay), render(otherWay))
	assert.Equal(t, 3, oneWay.Size())

	// inserting an existing member is a no-op
	oneWay.Insert(a)
	assert.Equal(t, 3, oneWay.Size())
}
