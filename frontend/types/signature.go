package types

import (
	"fmt"
	"strings"

	"github.com/veld-lang/veld/util"
)

// FunctionSignature describes a callable declaration: its declared type
// parameters, parameter types, and return type. A generic signature references
// its own type parameters as Named types inside Params and Return, to be
// replaced with fresh variables at each call site.
//
// Signatures are declarations rather than types, so they are not interned.
type FunctionSignature struct {
	TypeParams []string
	Params     []Type
	Return     Type
}

// IsGeneric reports whether the signature declares type parameters.
func (s FunctionSignature) IsGeneric() bool { return len(s.TypeParams) > 0 }

func (s FunctionSignature) String() string {
	if s.IsGeneric() {
		return fmt.Sprintf("<%s>(%s) -> %s",
			strings.Join(s.TypeParams, ", "), util.JoinString(s.Params, ", "), s.Return)
	}
	return fmt.Sprintf("(%s) -> %s", util.JoinString(s.Params, ", "), s.Return)
}
