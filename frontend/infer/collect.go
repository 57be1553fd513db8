package infer

import (
	"go/token"

	"github.com/veld-lang/veld/frontend/ast"
	"github.com/veld-lang/veld/frontend/types"
)

// Collect walks expr under ctx and returns its provisional type together with
// the equality constraints that must hold for that type to be valid. It never
// unifies: every consistency check is deferred to Solve, so collection is
// total and cannot fail.
//
// Fresh variables are minted in left-to-right depth-first order, so collecting
// the same expression under an equivalent, freshly-reset context always yields
// the same numbering.
func (ctx *Context) Collect(expr ast.Expr) (types.Type, types.ConstraintSet) {
	constraints := types.NewConstraintSet()
	t := ctx.collect(expr, constraints)
	logger.Debug("collected constraints", "expr", expr, "type", t, "constraints", constraints.Size())
	return t, constraints
}

// collect accumulates into constraints and returns the expression's type. It
// also records the provisional type of every node it visits for the driver.
func (ctx *Context) collect(expr ast.Expr, constraints types.ConstraintSet) types.Type {
	t := ctx.collectExpr(expr, constraints)
	ctx.record(expr, t)
	return t
}

func (ctx *Context) collectExpr(expr ast.Expr, constraints types.ConstraintSet) types.Type {
	switch expr := expr.(type) {
	case *ast.Literal:
		return literalType(expr.Kind)

	case *ast.Identifier:
		if bound, ok := ctx.Variable(expr.Name); ok {
			return bound
		}
		// a free variable stands for whatever its eventual use requires
		return ctx.fresh()

	case *ast.BinaryExpr:
		return ctx.collectBinary(expr, constraints)

	case *ast.IfExpr:
		condType := ctx.collect(expr.Cond, constraints)
		thenType := ctx.collect(expr.Then, constraints)
		elseType := ctx.collect(expr.Else, constraints)
		result := ctx.fresh()
		constraints.Insert(types.Equality(condType, types.Boolean))
		constraints.Insert(types.Equality(thenType, result))
		constraints.Insert(types.Equality(elseType, result))
		return result

	case *ast.TupleLit:
		elems := make([]types.Type, len(expr.Elements))
		for i, elem := range expr.Elements {
			elems[i] = ctx.collect(elem, constraints)
		}
		return types.NewTuple(elems)

	case *ast.FuncLit:
		params := make([]types.Type, len(expr.Params))
		bodyCtx := ctx
		for i, param := range expr.Params {
			paramVar := ctx.fresh()
			params[i] = paramVar
			bodyCtx = bodyCtx.WithVariable(param.Name, paramVar)
		}
		bodyType := bodyCtx.collect(expr.Body, constraints)
		return types.NewFunc(params, bodyType)

	case *ast.BlockExpr:
		return ctx.collectBlock(expr, constraints)

	case *ast.CallExpr:
		return ctx.collectCall(expr, constraints)

	default:
		// the node kinds above are the whole ast.Expr union; a new kind
		// reaching this point means the switch was not extended with it
		logger.Warn("unhandled expression kind during collection", "expr", expr)
		return ctx.fresh()
	}
}

func literalType(kind ast.LitKind) types.Type {
	switch kind {
	case ast.IntLit:
		return types.Int
	case ast.LongLit:
		return types.Long
	case ast.FloatLit:
		return types.Float
	case ast.DoubleLit:
		return types.Double
	case ast.BoolLit:
		return types.Boolean
	case ast.StringLit:
		return types.String
	case ast.UnitLit:
		return types.Unit
	default:
		return types.Unit
	}
}

func (ctx *Context) collectBinary(expr *ast.BinaryExpr, constraints types.ConstraintSet) types.Type {
	leftType := ctx.collect(expr.Left, constraints)
	rightType := ctx.collect(expr.Right, constraints)

	switch expr.Operator {
	case token.ADD, token.SUB, token.MUL, token.QUO, token.REM:
		// both operands must agree through one numeric join variable per
		// operator node; the node itself is typed with the numeric join
		join := ctx.fresh()
		constraints.Insert(types.Equality(leftType, join))
		constraints.Insert(types.Equality(rightType, join))
		return types.Double

	case token.EQL, token.NEQ, token.LSS, token.LEQ, token.GTR, token.GEQ:
		constraints.Insert(types.Equality(leftType, rightType))
		return types.Boolean

	case token.LAND, token.LOR:
		constraints.Insert(types.Equality(leftType, types.Boolean))
		constraints.Insert(types.Equality(rightType, types.Boolean))
		return types.Boolean

	default:
		logger.Warn("unhandled binary operator during collection", "operator", expr.Operator.String(), "expr", expr)
		return ctx.fresh()
	}
}

// collectBlock threads the context left to right: each val declaration
// extends the context seen by the statements after it. The block's type is
// that of its trailing expression statement, or Unit when there is none.
func (ctx *Context) collectBlock(expr *ast.BlockExpr, constraints types.ConstraintSet) types.Type {
	blockCtx := ctx
	var result types.Type = types.Unit
	for i, stmt := range expr.Stmts {
		switch stmt := stmt.(type) {
		case *ast.ValDecl:
			valType := blockCtx.collect(stmt.Value, constraints)
			blockCtx = blockCtx.WithVariable(stmt.Name, valType)
			result = types.Unit
		case *ast.ExprStmt:
			stmtType := blockCtx.collect(stmt.X, constraints)
			if i == len(expr.Stmts)-1 {
				result = stmtType
			} else {
				result = types.Unit
			}
		case *ast.BlockExpr:
			stmtType := blockCtx.collect(stmt, constraints)
			if i == len(expr.Stmts)-1 {
				result = stmtType
			} else {
				result = types.Unit
			}
		default:
			logger.Warn("unhandled statement kind during collection", "stmt", stmt)
		}
	}
	return result
}

// collectCall resolves the callee's signature in the context. Generic
// signatures are instantiated with one fresh variable per declared type
// parameter per call site, so repeated calls to the same generic function
// resolve independently. An unknown callee is a contract violation of the
// context; the collector stays total and types the call with a fresh
// variable instead of diagnosing it.
func (ctx *Context) collectCall(expr *ast.CallExpr, constraints types.ConstraintSet) types.Type {
	argTypes := make([]types.Type, len(expr.Args))
	for i, arg := range expr.Args {
		argTypes[i] = ctx.collect(arg, constraints)
	}

	sig, ok := ctx.Function(expr.Func.Name)
	if !ok {
		if bound, isBound := ctx.Variable(expr.Func.Name); isBound {
			// a call through a variable, such as a recursive binding's own
			// name: require the binding to be a function of these arguments
			result := ctx.fresh()
			constraints.Insert(types.Equality(bound, types.NewFunc(argTypes, result)))
			return result
		}
		logger.Debug("call to unknown function", "name", expr.Func.Name, "expr", expr)
		return ctx.fresh()
	}

	params, ret := sig.Params, sig.Return
	if sig.IsGeneric() {
		instantiation := make(map[string]types.Type, len(sig.TypeParams))
		for _, typeParam := range sig.TypeParams {
			instantiation[typeParam] = ctx.fresh()
		}
		instantiated := make([]types.Type, len(params))
		for i, param := range params {
			instantiated[i] = types.SubstituteNamed(param, instantiation)
		}
		params, ret = instantiated, types.SubstituteNamed(ret, instantiation)
	}

	// arity is validated by an earlier pass; equate as far as both lists go
	for i, argType := range argTypes {
		if i < len(params) {
			constraints.Insert(types.Equality(argType, params[i]))
		}
	}
	return ret
}
