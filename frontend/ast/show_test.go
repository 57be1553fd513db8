package ast_test

import (
	"go/token"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/veld-lang/veld/frontend/ast"
)

func TestExprStringRendersNestedExpressions(t *testing.T) {
	// if (n < 10) f(n, "go") else (n, true)
	expr := &ast.IfExpr{
		Cond: &ast.BinaryExpr{
			Left:     &ast.Identifier{Name: "n"},
			Operator: token.LSS,
			Right:    &ast.Literal{Value: "10", Kind: ast.IntLit},
		},
		Then: &ast.CallExpr{
			Func: &ast.Identifier{Name: "f"},
			Args: []ast.Expr{
				&ast.Identifier{Name: "n"},
				&ast.Literal{Value: "go", Kind: ast.StringLit},
			},
		},
		Else: &ast.TupleLit{Elements: []ast.Expr{
			&ast.Identifier{Name: "n"},
			&ast.Literal{Value: "true", Kind: ast.BoolLit},
		}},
	}

	assert.Equal(t, `if ((n < 10)) f(n, "go") else (n, true)`, ast.ExprString(expr))
}

func TestExprStringRendersBlocks(t *testing.T) {
	expr := &ast.BlockExpr{Stmts: []ast.Stmt{
		&ast.ValDecl{Name: "x", Value: &ast.Literal{Value: "1", Kind: ast.IntLit}},
		&ast.ExprStmt{X: &ast.Identifier{Name: "x"}},
	}}

	assert.Equal(t, "{\n  val x = 1\n  x\n}", ast.ExprString(expr))
}

func TestExprStringRendersFuncLit(t *testing.T) {
	expr := &ast.FuncLit{
		Params: []ast.Parameter{{Name: "x"}, {Name: "y"}},
		Body: &ast.BinaryExpr{
			Left:     &ast.Identifier{Name: "x"},
			Operator: token.ADD,
			Right:    &ast.Identifier{Name: "y"},
		},
	}
	assert.Equal(t, "fn x, y -> (x + y)", ast.ExprString(expr))
}

func TestHashDistinguishesStructure(t *testing.T) {
	one := &ast.Literal{Value: "1", Kind: ast.IntLit}
	alsoOne := &ast.Literal{Value: "1", Kind: ast.IntLit}
	two := &ast.Literal{Value: "2", Kind: ast.IntLit}
	oneAsString := &ast.Literal{Value: "1", Kind: ast.StringLit}

	assert.Equal(t, one.Hash(), alsoOne.Hash())
	assert.NotEqual(t, one.Hash(), two.Hash())
	assert.NotEqual(t, one.Hash(), oneAsString.Hash())
}

func TestHashAccountsForPosition(t *testing.T) {
	here := &ast.Identifier{Name: "x", Range: ast.Range{PosStart: 1, PosEnd: 2}}
	there := &ast.Identifier{Name: "x", Range: ast.Range{PosStart: 10, PosEnd: 11}}
	assert.NotEqual(t, here.Hash(), there.Hash())
}
