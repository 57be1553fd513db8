package types

import (
	"fmt"

	"github.com/hashicorp/go-set/v3"
)

// Constraint is an equality obligation between two types, discharged later by
// the solver.
type Constraint struct {
	Left  Type
	Right Type
}

// Equality builds the constraint that l and r must unify.
func Equality(l, r Type) Constraint {
	return Constraint{Left: l, Right: r}
}

// Hash is order-sensitive: Equality(a, b) and Equality(b, a) are distinct set
// members even though the solver treats them alike.
func (c Constraint) Hash() uint64 {
	return 31*c.Left.Hash() ^ c.Right.Hash()
}

func (c Constraint) String() string {
	return fmt.Sprintf("%s == %s", c.Left, c.Right)
}

// ConstraintSet accumulates constraints with set semantics: merge order never
// affects the final contents.
type ConstraintSet = *set.HashSet[Constraint, uint64]

// NewConstraintSet builds a set holding the given constraints.
func NewConstraintSet(constraints ...Constraint) ConstraintSet {
	cs := set.NewHashSet[Constraint, uint64](len(constraints))
	cs.InsertSlice(constraints)
	return cs
}
