package types

import (
	"slices"
	"sync"
	"sync/atomic"
)

// typeInterner canonicalizes structural types so that equality checks are
// pointer comparisons. Buckets are keyed by structural hash; entries within a
// bucket are told apart by exact structural comparison, so a hash collision
// can never conflate two distinct types.
//
// Reads take the shared lock; inserts take the exclusive lock and re-check the
// bucket before appending.
type typeInterner struct {
	mu sync.RWMutex

	primitives map[uint64][]*Primitive
	named      map[uint64][]*Named
	generics   map[uint64][]*Generic
	tuples     map[uint64][]*Tuple
	funcs      map[uint64][]*Func
	nullables  map[uint64][]*Nullable
	unions     map[uint64][]*Union
}

var interner = &typeInterner{
	primitives: map[uint64][]*Primitive{},
	named:      map[uint64][]*Named{},
	generics:   map[uint64][]*Generic{},
	tuples:     map[uint64][]*Tuple{},
	funcs:      map[uint64][]*Func{},
	nullables:  map[uint64][]*Nullable{},
	unions:     map[uint64][]*Union{},
}

func lookupBucket[T any](bucket []T, equal func(T) bool) (T, bool) {
	for _, existing := range bucket {
		if equal(existing) {
			return existing, true
		}
	}
	var zero T
	return zero, false
}

func intern[T Type](buckets map[uint64][]T, hash uint64, equal func(T) bool, candidate T) T {
	interner.mu.RLock()
	existing, ok := lookupBucket(buckets[hash], equal)
	interner.mu.RUnlock()
	if ok {
		return existing
	}

	interner.mu.Lock()
	defer interner.mu.Unlock()
	if existing, ok := lookupBucket(buckets[hash], equal); ok {
		return existing
	}
	buckets[hash] = append(buckets[hash], candidate)
	return candidate
}

// NewPrimitive returns the canonical instance of the builtin scalar type with
// the given name.
func NewPrimitive(name string) *Primitive {
	candidate := &Primitive{name: name}
	return intern(interner.primitives, candidate.Hash(), func(t *Primitive) bool {
		return t.name == name
	}, candidate)
}

// NewNamed returns the canonical instance of the nominal reference with the
// given name.
func NewNamed(name string) *Named {
	candidate := &Named{name: name}
	return intern(interner.named, candidate.Hash(), func(t *Named) bool {
		return t.name == name
	}, candidate)
}

// NewGeneric returns the canonical instance of the parameterized type with the
// given name and type arguments.
func NewGeneric(name string, args []Type) *Generic {
	candidate := &Generic{name: name, args: slices.Clone(args)}
	return intern(interner.generics, candidate.Hash(), func(t *Generic) bool {
		return t.name == name && slices.Equal(t.args, args)
	}, candidate)
}

// NewTuple returns the canonical instance of the tuple type with the given
// element types.
func NewTuple(elems []Type) *Tuple {
	candidate := &Tuple{elems: slices.Clone(elems)}
	return intern(interner.tuples, candidate.Hash(), func(t *Tuple) bool {
		return slices.Equal(t.elems, elems)
	}, candidate)
}

// NewFunc returns the canonical instance of the function type with the given
// parameter types and result type.
func NewFunc(params []Type, ret Type) *Func {
	candidate := &Func{params: slices.Clone(params), ret: ret}
	return intern(interner.funcs, candidate.Hash(), func(t *Func) bool {
		return t.ret == ret && slices.Equal(t.params, params)
	}, candidate)
}

// NewNullable returns the canonical instance of the nullable wrapper around
// base.
func NewNullable(base Type) *Nullable {
	candidate := &Nullable{base: base}
	return intern(interner.nullables, candidate.Hash(), func(t *Nullable) bool {
		return t.base == base
	}, candidate)
}

// NewUnion returns the canonical instance of the sum type reference with the
// given name and type arguments.
func NewUnion(name string, typeArgs []Type) *Union {
	candidate := &Union{name: name, typeArgs: slices.Clone(typeArgs)}
	return intern(interner.unions, candidate.Hash(), func(t *Union) bool {
		return t.name == name && slices.Equal(t.typeArgs, typeArgs)
	}, candidate)
}

// typeVarOrdinal distinguishes every variable minted in the process. It is
// never reset: display ids may repeat after a Fresher reset, identities may not.
var typeVarOrdinal atomic.Uint64

// NewTypeVar returns a fresh unification variable. Unlike the other
// constructors the result is never interned: each call yields a distinct
// variable, even for a repeated display id.
func NewTypeVar(id string) *TypeVar {
	return &TypeVar{id: id, uid: typeVarOrdinal.Add(1)}
}

// ClearCaches empties every interning cache, for test isolation or between
// independent compilations. The builtin scalar types are re-seeded so their
// identities survive the clear.
func ClearCaches() {
	interner.mu.Lock()
	defer interner.mu.Unlock()
	clear(interner.primitives)
	clear(interner.named)
	clear(interner.generics)
	clear(interner.tuples)
	clear(interner.funcs)
	clear(interner.nullables)
	clear(interner.unions)
	for _, builtin := range builtinScalars {
		hash := builtin.Hash()
		interner.primitives[hash] = append(interner.primitives[hash], builtin)
	}
}

// CacheStats is a snapshot of the interning cache populations.
type CacheStats struct {
	Primitives int
	Named      int
	Generics   int
	Tuples     int
	Funcs      int
	Nullables  int
	Unions     int
}

// Total returns the number of canonical instances across every cache.
func (s CacheStats) Total() int {
	return s.Primitives + s.Named + s.Generics + s.Tuples + s.Funcs + s.Nullables + s.Unions
}

func bucketPopulation[T any](buckets map[uint64][]T) int {
	total := 0
	for _, bucket := range buckets {
		total += len(bucket)
	}
	return total
}

// Stats reports the population of each interning cache. Populations only grow
// with distinct insertions, never with repeated lookups.
func Stats() CacheStats {
	interner.mu.RLock()
	defer interner.mu.RUnlock()
	return CacheStats{
		Primitives: bucketPopulation(interner.primitives),
		Named:      bucketPopulation(interner.named),
		Generics:   bucketPopulation(interner.generics),
		Tuples:     bucketPopulation(interner.tuples),
		Funcs:      bucketPopulation(interner.funcs),
		Nullables:  bucketPopulation(interner.nullables),
		Unions:     bucketPopulation(interner.unions),
	}
}

// EstimateMemoryUsage approximates the bytes held by the interning caches,
// assuming a fixed per-entry overhead plus one pointer per component type.
// Meant for diagnostics, not precise accounting.
func EstimateMemoryUsage() int {
	const entryOverhead = 48
	const pointerSize = 8

	interner.mu.RLock()
	defer interner.mu.RUnlock()
	total := 0
	for _, bucket := range interner.primitives {
		for _, t := range bucket {
			total += entryOverhead + len(t.name)
		}
	}
	for _, bucket := range interner.named {
		for _, t := range bucket {
			total += entryOverhead + len(t.name)
		}
	}
	for _, bucket := range interner.generics {
		for _, t := range bucket {
			total += entryOverhead + len(t.name) + pointerSize*len(t.args)
		}
	}
	for _, bucket := range interner.tuples {
		for _, t := range bucket {
			total += entryOverhead + pointerSize*len(t.elems)
		}
	}
	for _, bucket := range interner.funcs {
		for _, t := range bucket {
			total += entryOverhead + pointerSize*(len(t.params)+1)
		}
	}
	for _, bucket := range interner.nullables {
		total += len(bucket) * (entryOverhead + pointerSize)
	}
	for _, bucket := range interner.unions {
		for _, t := range bucket {
			total += entryOverhead + len(t.name) + pointerSize*len(t.typeArgs)
		}
	}
	return total
}
