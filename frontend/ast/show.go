package ast

import (
	"strings"
)

// ExprString renders an expression as veld-like source, for logs and error
// messages. The output is not guaranteed to re-parse.
func ExprString(expr Expr) string {
	ctx := newShowContext()
	ctx.showExpr(expr)
	return ctx.String()
}

type showContext struct {
	*strings.Builder
	indent    int
	indentStr string
}

func newShowContext() *showContext {
	return &showContext{
		Builder:   &strings.Builder{},
		indentStr: "  ",
		indent:    0,
	}
}

func (ctx *showContext) currentIndent() string {
	return strings.Repeat(ctx.indentStr, ctx.indent)
}

func (ctx *showContext) showExpr(expr Expr) {
	if expr == nil {
		ctx.WriteString("nil")
		return
	}
	switch expr := expr.(type) {
	case *Literal:
		if expr.Kind == StringLit {
			ctx.WriteString(`"` + expr.Value + `"`)
			return
		}
		ctx.WriteString(expr.Value)
	case *Identifier:
		ctx.WriteString(expr.Name)
	case *BinaryExpr:
		ctx.WriteString("(")
		ctx.showExpr(expr.Left)
		ctx.WriteString(" " + expr.Operator.String() + " ")
		ctx.showExpr(expr.Right)
		ctx.WriteString(")")
	case *IfExpr:
		ctx.WriteString("if (")
		ctx.showExpr(expr.Cond)
		ctx.WriteString(") ")
		ctx.showExpr(expr.Then)
		ctx.WriteString(" else ")
		ctx.showExpr(expr.Else)
	case *TupleLit:
		ctx.WriteString("(")
		for i, elem := range expr.Elements {
			if i > 0 {
				ctx.WriteString(", ")
			}
			ctx.showExpr(elem)
		}
		ctx.WriteString(")")
	case *FuncLit:
		ctx.WriteString("fn ")
		for i, param := range expr.Params {
			if i > 0 {
				ctx.WriteString(", ")
			}
			ctx.WriteString(param.Name)
		}
		ctx.WriteString(" -> ")
		ctx.showExpr(expr.Body)
	case *CallExpr:
		if expr.Func != nil {
			ctx.WriteString(expr.Func.Name)
		}
		ctx.WriteString("(")
		for i, arg := range expr.Args {
			if i > 0 {
				ctx.WriteString(", ")
			}
			ctx.showExpr(arg)
		}
		ctx.WriteString(")")
	case *BlockExpr:
		ctx.WriteString("{\n")
		ctx.indent++
		for _, stmt := range expr.Stmts {
			ctx.WriteString(ctx.currentIndent())
			ctx.showStmt(stmt)
			ctx.WriteString("\n")
		}
		ctx.indent--
		ctx.WriteString(ctx.currentIndent() + "}")
	default:
		ctx.WriteString("<expr>")
	}
}

func (ctx *showContext) showStmt(stmt Stmt) {
	if stmt == nil {
		ctx.WriteString("nil")
		return
	}
	switch stmt := stmt.(type) {
	case *ValDecl:
		ctx.WriteString("val " + stmt.Name + " = ")
		ctx.showExpr(stmt.Value)
	case *ExprStmt:
		ctx.showExpr(stmt.X)
	case *BlockExpr:
		ctx.showExpr(stmt)
	default:
		ctx.WriteString("<stmt>")
	}
}
