package types

import (
	"fmt"
	"hash/fnv"
	"iter"
	"slices"

	"github.com/veld-lang/veld/util"
)

// Type is the interface implemented by every type in the veld type system.
//
// All structural variants are canonical: the constructors in this package
// return reference-identical instances for structurally identical arguments,
// so Type values compare with ==. TypeVar is the one exception, since every
// unification variable is its own identity.
type Type interface {
	fmt.Stringer

	// Hash returns a structural hash of the type. Canonical instances with
	// equal structure hash equal; distinct TypeVars hash distinct.
	Hash() uint64

	// Children iterates over the immediate component types, in order.
	Children() iter.Seq[Type]

	// mapChildren rebuilds the type with f applied to each immediate
	// component, going through the constructors so the result stays canonical.
	mapChildren(f func(Type) Type) Type
}

var (
	_ Type = (*Primitive)(nil)
	_ Type = (*Named)(nil)
	_ Type = (*Generic)(nil)
	_ Type = (*Tuple)(nil)
	_ Type = (*Func)(nil)
	_ Type = (*Nullable)(nil)
	_ Type = (*Union)(nil)
	_ Type = (*TypeVar)(nil)
)

func noChildren() iter.Seq[Type] {
	return func(yield func(Type) bool) {}
}

// Primitive is a builtin scalar type such as Int or Boolean.
type Primitive struct {
	name string
}

// Name returns the scalar's name.
func (t *Primitive) Name() string { return t.name }

func (t *Primitive) String() string { return t.name }

// Hash generates a hash for Primitive from its name
func (t *Primitive) Hash() uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte("Primitive"))
	_, _ = h.Write([]byte(t.name))
	return h.Sum64()
}

func (t *Primitive) Children() iter.Seq[Type] { return noChildren() }

// mapChildren for Primitive returns itself since it has no children
func (t *Primitive) mapChildren(func(Type) Type) Type { return t }

// Named is a nominal type reference. Declared generic type parameters are also
// represented as Named inside their signature until a call site instantiates
// them.
type Named struct {
	name string
}

// Name returns the referenced name.
func (t *Named) Name() string { return t.name }

func (t *Named) String() string { return t.name }

// Hash generates a hash for Named from its name
func (t *Named) Hash() uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte("Named"))
	_, _ = h.Write([]byte(t.name))
	return h.Sum64()
}

func (t *Named) Children() iter.Seq[Type] { return noChildren() }

// mapChildren for Named returns itself since it has no children
func (t *Named) mapChildren(func(Type) Type) Type { return t }

// Generic is a parameterized nominal type such as List<Int>.
type Generic struct {
	name string
	args []Type
}

// Name returns the parameterized type's name.
func (t *Generic) Name() string { return t.name }

// Args returns the ordered type arguments. Callers must not mutate the slice.
func (t *Generic) Args() []Type { return t.args }

func (t *Generic) String() string {
	if len(t.args) == 0 {
		return t.name
	}
	return fmt.Sprintf("%s<%s>", t.name, util.JoinString(t.args, ", "))
}

// Hash generates a hash for Generic from its name and type arguments
func (t *Generic) Hash() uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte("Generic"))
	_, _ = h.Write([]byte(t.name))
	hash := h.Sum64()
	for _, arg := range t.args {
		hash = 31*hash ^ arg.Hash()
	}
	return hash
}

func (t *Generic) Children() iter.Seq[Type] { return slices.Values(t.args) }

// mapChildren for Generic applies f to every type argument and re-interns the result
func (t *Generic) mapChildren(f func(Type) Type) Type {
	mappedArgs := make([]Type, len(t.args))
	for i, arg := range t.args {
		mappedArgs[i] = f(arg)
	}
	return NewGeneric(t.name, mappedArgs)
}

// Tuple is an ordered sequence of element types.
type Tuple struct {
	elems []Type
}

// Elems returns the ordered element types. Callers must not mutate the slice.
func (t *Tuple) Elems() []Type { return t.elems }

func (t *Tuple) String() string {
	return "(" + util.JoinString(t.elems, ", ") + ")"
}

// Hash generates a hash for Tuple from its element types
func (t *Tuple) Hash() uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte("Tuple"))
	hash := h.Sum64()
	for _, elem := range t.elems {
		hash = 37*hash ^ elem.Hash()
	}
	return hash
}

func (t *Tuple) Children() iter.Seq[Type] { return slices.Values(t.elems) }

// mapChildren for Tuple applies f to every element and re-interns the result
func (t *Tuple) mapChildren(f func(Type) Type) Type {
	mappedElems := make([]Type, len(t.elems))
	for i, elem := range t.elems {
		mappedElems[i] = f(elem)
	}
	return NewTuple(mappedElems)
}

// Func is a function type: ordered parameter types and a result type.
type Func struct {
	params []Type
	ret    Type
}

// Params returns the ordered parameter types. Callers must not mutate the slice.
func (t *Func) Params() []Type { return t.params }

// Return returns the result type.
func (t *Func) Return() Type { return t.ret }

func (t *Func) String() string {
	return fmt.Sprintf("(%s) -> %s", util.JoinString(t.params, ", "), t.ret.String())
}

// Hash generates a hash for Func from its parameter and result types
func (t *Func) Hash() uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte("Func"))
	hash := h.Sum64()
	for _, param := range t.params {
		hash = 41*hash ^ param.Hash()
	}
	return 43*hash ^ t.ret.Hash()
}

func (t *Func) Children() iter.Seq[Type] {
	return util.ConcatIter(slices.Values(t.params), util.SingleIter(t.ret))
}

// mapChildren for Func applies f to all parameters and the result, and re-interns the result
func (t *Func) mapChildren(f func(Type) Type) Type {
	mappedParams := make([]Type, len(t.params))
	for i, param := range t.params {
		mappedParams[i] = f(param)
	}
	return NewFunc(mappedParams, f(t.ret))
}

// Nullable wraps a base type to additionally admit the null value.
type Nullable struct {
	base Type
}

// Base returns the wrapped type.
func (t *Nullable) Base() Type { return t.base }

func (t *Nullable) String() string { return t.base.String() + "?" }

// Hash generates a hash for Nullable from its base type
func (t *Nullable) Hash() uint64 {
	return t.base.Hash() * 53
}

func (t *Nullable) Children() iter.Seq[Type] { return util.SingleIter(t.base) }

// mapChildren for Nullable applies f to the base type and re-interns the result
func (t *Nullable) mapChildren(f func(Type) Type) Type {
	return NewNullable(f(t.base))
}

// Union is a reference to a declared sum type, such as Option<Int>.
type Union struct {
	name     string
	typeArgs []Type
}

// Name returns the sum type's name.
func (t *Union) Name() string { return t.name }

// TypeArgs returns the ordered type arguments. Callers must not mutate the slice.
func (t *Union) TypeArgs() []Type { return t.typeArgs }

func (t *Union) String() string {
	if len(t.typeArgs) == 0 {
		return t.name
	}
	return fmt.Sprintf("%s<%s>", t.name, util.JoinString(t.typeArgs, ", "))
}

// Hash generates a hash for Union from its name and type arguments
func (t *Union) Hash() uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte("Union"))
	_, _ = h.Write([]byte(t.name))
	hash := h.Sum64()
	for _, arg := range t.typeArgs {
		hash = 59*hash ^ arg.Hash()
	}
	return hash
}

func (t *Union) Children() iter.Seq[Type] { return slices.Values(t.typeArgs) }

// mapChildren for Union applies f to every type argument and re-interns the result
func (t *Union) mapChildren(f func(Type) Type) Type {
	mappedArgs := make([]Type, len(t.typeArgs))
	for i, arg := range t.typeArgs {
		mappedArgs[i] = f(arg)
	}
	return NewUnion(t.name, mappedArgs)
}

// TypeVar is a unification variable. Identity is the instance itself: two
// variables carrying the same display id minted at different times are
// distinct, and a variable is only ever equal to itself.
type TypeVar struct {
	id  string
	uid uint64
}

// Id returns the display id, such as "T4". Display ids may repeat across
// compilations after a Fresher reset.
func (t *TypeVar) Id() string { return t.id }

func (t *TypeVar) String() string { return t.id }

// Hash generates a hash for TypeVar from its ordinal, so distinct variables
// hash distinct even when their display ids coincide
func (t *TypeVar) Hash() uint64 {
	return t.uid * 1099511628211 // FNV-1a 64 prime
}

func (t *TypeVar) Children() iter.Seq[Type] { return noChildren() }

// mapChildren for TypeVar returns itself since it has no children
func (t *TypeVar) mapChildren(func(Type) Type) Type { return t }
