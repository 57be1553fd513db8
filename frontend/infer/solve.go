package infer

import (
	"slices"
	"strings"

	"github.com/veld-lang/veld/frontend/types"
	"github.com/veld-lang/veld/frontend/velderr"
)

// Solve finds a substitution satisfying every constraint in the set, or
// reports why none exists. On failure the result is always a
// velderr.NewConstraintSolvingFailed wrapping the specific cause, either a
// type mismatch or an infinite type.
//
// The worklist is seeded in a canonical order so that, when several
// constraints are unsatisfiable, the same one is reported on every run.
func Solve(constraints types.ConstraintSet) (types.Substitution, error) {
	work := constraints.Slice()
	slices.SortFunc(work, func(a, b types.Constraint) int {
		if byString := strings.Compare(a.String(), b.String()); byString != 0 {
			return byString
		}
		// distinct variables can print alike; fall back to the hash
		switch ah, bh := a.Hash(), b.Hash(); {
		case ah < bh:
			return -1
		case ah > bh:
			return 1
		default:
			return 0
		}
	})

	subst := types.Substitution{}
	for len(work) > 0 {
		current := work[0]
		work = work[1:]

		left, right := subst.Apply(current.Left), subst.Apply(current.Right)
		// interned types and identical variables compare with ==
		if left == right {
			continue
		}

		if asVar, ok := left.(*types.TypeVar); ok {
			if err := bind(asVar, right, subst, work); err != nil {
				return nil, err
			}
			continue
		}
		if asVar, ok := right.(*types.TypeVar); ok {
			if err := bind(asVar, left, subst, work); err != nil {
				return nil, err
			}
			continue
		}

		decomposed, ok := decompose(left, right)
		if !ok {
			return nil, solvingFailed(velderr.New(velderr.NewTypeMismatch{
				First:  left,
				Second: right,
			}))
		}
		work = append(decomposed, work...)
	}
	return subst, nil
}

// bind commits v = t: the occurs check runs first, then every already
// committed entry is composed through the new binding and every constraint
// still in the worklist is rewritten, so transitive chains collapse as they
// are learned instead of one level per pass.
func bind(v *types.TypeVar, t types.Type, subst types.Substitution, work []types.Constraint) error {
	if types.Occurs(v, t) {
		return solvingFailed(velderr.New(velderr.NewInfiniteType{
			Variable:   v,
			Containing: t,
		}))
	}
	binding := types.Substitution{v: t}
	for bound, resolved := range subst {
		subst[bound] = binding.Apply(resolved)
	}
	subst[v] = t
	for i, remaining := range work {
		work[i] = types.Equality(binding.Apply(remaining.Left), binding.Apply(remaining.Right))
	}
	return nil
}

// decompose splits a constraint between two types of the same structural
// variant into one constraint per corresponding component. It reports false
// when the variants, names, or arities do not line up.
func decompose(left, right types.Type) ([]types.Constraint, bool) {
	switch left := left.(type) {
	case *types.Generic:
		right, ok := right.(*types.Generic)
		if !ok || left.Name() != right.Name() || len(left.Args()) != len(right.Args()) {
			return nil, false
		}
		return pairwise(left.Args(), right.Args()), true

	case *types.Tuple:
		right, ok := right.(*types.Tuple)
		if !ok || len(left.Elems()) != len(right.Elems()) {
			return nil, false
		}
		return pairwise(left.Elems(), right.Elems()), true

	case *types.Func:
		right, ok := right.(*types.Func)
		if !ok || len(left.Params()) != len(right.Params()) {
			return nil, false
		}
		return append(pairwise(left.Params(), right.Params()),
			types.Equality(left.Return(), right.Return())), true

	case *types.Nullable:
		right, ok := right.(*types.Nullable)
		if !ok {
			return nil, false
		}
		return []types.Constraint{types.Equality(left.Base(), right.Base())}, true

	case *types.Union:
		right, ok := right.(*types.Union)
		if !ok || left.Name() != right.Name() || len(left.TypeArgs()) != len(right.TypeArgs()) {
			return nil, false
		}
		return pairwise(left.TypeArgs(), right.TypeArgs()), true

	default:
		// Primitive and Named are interned with no components, so anything
		// that was not already pointer-equal is a mismatch
		return nil, false
	}
}

func pairwise(left, right []types.Type) []types.Constraint {
	paired := make([]types.Constraint, len(left))
	for i := range left {
		paired[i] = types.Equality(left[i], right[i])
	}
	return paired
}

func solvingFailed(cause error) error {
	return velderr.New(velderr.NewConstraintSolvingFailed{From: cause})
}
