package infer

import (
	goerrors "errors"
	"sort"

	"github.com/pkg/errors"
	xtgoset "github.com/xtgo/set"

	"github.com/veld-lang/veld/frontend/ast"
	"github.com/veld-lang/veld/frontend/types"
	"github.com/veld-lang/veld/frontend/velderr"
	"github.com/veld-lang/veld/util"
)

// Result is the outcome of type-checking a file: the final type of each
// top-level declaration in source order, the resolved type of every
// sub-expression, and whatever went wrong.
type Result struct {
	// DeclTypes pairs each top-level declaration name with its final type,
	// in declaration order.
	DeclTypes []util.Pair[string, types.Type]

	// Errors are language problems a malformed program can cause.
	Errors []velderr.VeldError

	// Failures are defects of this engine that a well-formed program should
	// never hit, such as a variable leaking past a successful solve.
	Failures []error

	nodeTypes map[nodeKey]types.Type
}

// TypeOf returns the resolved type recorded for expr, if the checked file
// contained it.
func (r *Result) TypeOf(expr ast.Expr) (types.Type, bool) {
	t, ok := r.nodeTypes[nodeKey{r: ast.RangeOf(expr), exprHash: expr.Hash()}]
	return t, ok
}

// Ok reports whether checking produced no errors and no failures.
func (r *Result) Ok() bool {
	return len(r.Errors) == 0 && len(r.Failures) == 0
}

// TypeCheck infers a type for every top-level declaration of file, in order,
// threading the context so each declaration sees the ones before it. Each
// declaration is checked as one collect-then-solve batch; the final
// substitution is applied to the provisional type of every sub-expression
// collected along the way, so a successful Result exposes only variable-free
// types to the code generator.
func TypeCheck(file *ast.File, ctx *Context) *Result {
	result := &Result{}
	for i := range file.Declarations {
		decl := &file.Declarations[i]
		declType, err := checkDeclaration(decl, ctx)
		if err != nil {
			var asVeldErr velderr.VeldError
			if goerrors.As(err, &asVeldErr) {
				result.Errors = append(result.Errors, asVeldErr)
			} else {
				result.Errors = append(result.Errors, velderr.New(velderr.Unclassified{
					From:       err,
					Positioner: decl,
				}))
			}
			// keep checking the remaining declarations against something
			declType = ctx.fresh()
		}
		result.DeclTypes = append(result.DeclTypes, util.NewPair(decl.Name, declType))
		ctx = ctx.WithVariable(decl.Name, declType)
	}

	result.nodeTypes = ctx.nodeTypes
	result.Failures = append(result.Failures, verifyNoLeakedVariables(result)...)
	return result
}

// checkDeclaration runs one collect-then-solve batch for decl under ctx and
// rewrites every node type recorded so far through the final substitution.
// Recursive declarations are collected with their own name pre-bound to a
// fresh variable, equated with the initializer's type.
func checkDeclaration(decl *ast.Declaration, ctx *Context) (types.Type, error) {
	collectCtx := ctx
	var selfVar *types.TypeVar
	if decl.Recursive {
		selfVar = ctx.fresh()
		collectCtx = ctx.WithVariable(decl.Name, selfVar)
	}

	declType, constraints := collectCtx.Collect(decl.Value)
	if selfVar != nil {
		constraints.Insert(types.Equality(selfVar, declType))
	}

	subst, err := Solve(constraints)
	if err != nil {
		return nil, err
	}

	for key, provisional := range ctx.nodeTypes {
		ctx.nodeTypes[key] = subst.Apply(provisional)
	}
	logger.Debug("declaration checked", "name", decl.Name, "type", subst.Apply(declType))
	return subst.Apply(declType), nil
}

// verifyNoLeakedVariables enforces the contract with the code generator: a
// successfully solved declaration must not expose unification variables. Any
// leak is a defect of this engine, reported once with the offending display
// ids deduplicated and sorted.
func verifyNoLeakedVariables(result *Result) []error {
	if len(result.Errors) > 0 {
		// unsolved declarations legitimately leave variables behind
		return nil
	}
	var leaked sort.StringSlice
	for _, t := range result.nodeTypes {
		leaked = append(leaked, types.FreeTypeVarNames(t)...)
	}
	for _, declType := range result.DeclTypes {
		leaked = append(leaked, types.FreeTypeVarNames(declType.Snd)...)
	}
	if len(leaked) == 0 {
		return nil
	}
	sort.Sort(leaked)
	leaked = leaked[:xtgoset.Uniq(leaked)]
	return []error{errors.Errorf(
		"type variables %v leaked past a successful solve; every node must resolve to a closed type", leaked)}
}
