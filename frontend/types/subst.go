package types

import (
	"slices"
	"sort"

	"github.com/hashicorp/go-set/v3"
	xtgoset "github.com/xtgo/set"

	"github.com/veld-lang/veld/util"
)

// Substitution maps unification variables, by identity, to the types they
// resolved to.
type Substitution map[*TypeVar]Type

// Apply rewrites every variable reachable in t to its fully resolved type.
// A variable bound to a type that itself contains bound variables resolves
// all the way down, so applying the same substitution twice is a no-op.
func (s Substitution) Apply(t Type) Type {
	if len(s) == 0 {
		return t
	}
	return s.apply(t, nil)
}

func (s Substitution) apply(t Type, seen []*TypeVar) Type {
	if asVar, ok := t.(*TypeVar); ok {
		resolved, bound := s[asVar]
		if !bound {
			return asVar
		}
		// a binding cycle here means an occurs check was skipped upstream;
		// stop at the variable rather than recurse forever
		if slices.Contains(seen, asVar) {
			return asVar
		}
		return s.apply(resolved, append(seen, asVar))
	}
	return t.mapChildren(func(child Type) Type {
		return s.apply(child, seen)
	})
}

// Compose combines two substitutions into one equivalent to applying s first
// and then other.
func (s Substitution) Compose(other Substitution) Substitution {
	composed := make(Substitution, len(s)+len(other))
	for v, t := range other {
		composed[v] = t
	}
	for v, t := range s {
		composed[v] = other.Apply(t)
	}
	return composed
}

// Occurs reports whether v appears anywhere inside t.
func Occurs(v *TypeVar, t Type) bool {
	if asVar, ok := t.(*TypeVar); ok {
		return asVar == v
	}
	for child := range t.Children() {
		if Occurs(v, child) {
			return true
		}
	}
	return false
}

// FreeTypeVars collects every unification variable reachable from t.
func FreeTypeVars(t Type) *set.Set[*TypeVar] {
	vars := set.New[*TypeVar](0)
	insertTypeVars(t, vars)
	return vars
}

func insertTypeVars(t Type, into *set.Set[*TypeVar]) {
	if asVar, ok := t.(*TypeVar); ok {
		into.Insert(asVar)
		return
	}
	for child := range t.Children() {
		insertTypeVars(child, into)
	}
}

// FreeTypeVarNames returns the display ids of every variable free in t, sorted
// and deduplicated. Distinct variables can share a display id after a Fresher
// reset, so the result may be shorter than the variable count.
func FreeTypeVarNames(t Type) []string {
	var names sort.StringSlice
	for name := range util.MapIter(FreeTypeVars(t).Items(), (*TypeVar).Id) {
		names = append(names, name)
	}
	if len(names) == 0 {
		return nil
	}
	sort.Sort(names)
	return names[:xtgoset.Uniq(names)]
}

// SubstituteNamed replaces every Named reference whose name appears in
// bindings, leaving everything else intact. It instantiates a generic
// signature's type parameters at a call site.
func SubstituteNamed(t Type, bindings map[string]Type) Type {
	if len(bindings) == 0 {
		return t
	}
	if asNamed, ok := t.(*Named); ok {
		if bound, ok := bindings[asNamed.name]; ok {
			return bound
		}
		return asNamed
	}
	return t.mapChildren(func(child Type) Type {
		return SubstituteNamed(child, bindings)
	})
}
