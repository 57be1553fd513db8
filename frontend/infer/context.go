package infer

import (
	"github.com/benbjohnson/immutable"

	"github.com/veld-lang/veld/frontend/ast"
	"github.com/veld-lang/veld/frontend/types"
	"github.com/veld-lang/veld/internal/log"
)

var logger = ast.ExprLogger(log.DefaultLogger).With("section", "infer")

// Context is the inference environment: variable bindings, function
// signatures, and the builtin type table. A Context is immutable; the With*
// methods return extended copies, so scoping is a matter of holding on to the
// right Context and discarding it when the scope ends.
//
// Mutable per-run state (the fresh-variable source and the per-node type
// record) lives in a single state struct shared by every Context derived from
// the same root.
type Context struct {
	variables *immutable.Map[string, types.Type]
	functions *immutable.Map[string, types.FunctionSignature]
	builtins  *immutable.Map[string, types.Type]

	*state
}

// state is shared across all copies of a Context during a single inference
// run. It is not safe for concurrent use: concurrent compilations should each
// start from their own NewContext (or Context.WithFresher).
type state struct {
	fresher   *types.Fresher
	nodeTypes map[nodeKey]types.Type
}

type nodeKey struct {
	r        ast.Range
	exprHash uint64
}

func (s *state) record(expr ast.Expr, t types.Type) {
	s.nodeTypes[nodeKey{r: ast.RangeOf(expr), exprHash: expr.Hash()}] = t
}

// NewContext returns an empty environment backed by the process-wide
// DefaultFresher. Callers usually want NewContext().WithBuiltins().
func NewContext() *Context {
	hasher := immutable.NewHasher("")
	return &Context{
		variables: immutable.NewMap[string, types.Type](hasher),
		functions: immutable.NewMap[string, types.FunctionSignature](hasher),
		builtins:  immutable.NewMap[string, types.Type](hasher),
		state: &state{
			fresher:   types.DefaultFresher,
			nodeTypes: map[nodeKey]types.Type{},
		},
	}
}

// WithBuiltins returns a context that additionally resolves the builtin
// scalar type names.
func (ctx *Context) WithBuiltins() *Context {
	derived := *ctx
	for name, t := range types.Builtins() {
		derived.builtins = derived.builtins.Set(name, t)
	}
	return &derived
}

// WithVariable returns a context where name is bound to t. The receiver is
// unchanged.
func (ctx *Context) WithVariable(name string, t types.Type) *Context {
	derived := *ctx
	derived.variables = derived.variables.Set(name, t)
	return &derived
}

// WithFunction returns a context where name resolves to the given signature.
// The receiver is unchanged.
func (ctx *Context) WithFunction(name string, sig types.FunctionSignature) *Context {
	derived := *ctx
	derived.functions = derived.functions.Set(name, sig)
	return &derived
}

// WithFresher returns a context whose run state draws variables from f,
// isolated from the receiver's. Use it to give each concurrent compilation
// its own variable source and node record.
func (ctx *Context) WithFresher(f *types.Fresher) *Context {
	derived := *ctx
	derived.state = &state{
		fresher:   f,
		nodeTypes: map[nodeKey]types.Type{},
	}
	return &derived
}

// Variable looks name up in the variable bindings.
func (ctx *Context) Variable(name string) (types.Type, bool) {
	return ctx.variables.Get(name)
}

// Function looks name up in the function signatures.
func (ctx *Context) Function(name string) (types.FunctionSignature, bool) {
	return ctx.functions.Get(name)
}

// BuiltinType resolves a builtin type name, such as "Int".
func (ctx *Context) BuiltinType(name string) (types.Type, bool) {
	return ctx.builtins.Get(name)
}

func (ctx *Context) fresh() *types.TypeVar {
	return ctx.fresher.Fresh()
}
