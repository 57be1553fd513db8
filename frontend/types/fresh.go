package types

import "strconv"

// Fresher mints unification variables with sequential display ids T1, T2, ...
// It is mutable and not suitable for concurrent use: concurrent compilations
// should each own a Fresher rather than share the default.
type Fresher struct {
	freshCount uint64
}

// Fresh returns a new distinct variable labelled with the next display id.
func (f *Fresher) Fresh() *TypeVar {
	f.freshCount++
	return NewTypeVar("T" + strconv.FormatUint(f.freshCount, 10))
}

// Reset restarts display ids at T1. Identities of already-minted variables are
// unaffected; only their labels may be reused.
func (f *Fresher) Reset() {
	f.freshCount = 0
}

// DefaultFresher is the process-wide variable source. Reset it at the start of
// each independent compilation to keep display ids reproducible.
var DefaultFresher = &Fresher{}
