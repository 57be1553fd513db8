package ast

import (
	"encoding/binary"
	"fmt"
	"go/token"
	"hash/fnv"
)

// All expression types implement the Expr interface

// LitKind identifies the lexical class of a Literal.
type LitKind int

const (
	IntLit LitKind = iota
	LongLit
	FloatLit
	DoubleLit
	BoolLit
	StringLit
	UnitLit
)

var litKindNames = [...]string{
	IntLit:    "IntLit",
	LongLit:   "LongLit",
	FloatLit:  "FloatLit",
	DoubleLit: "DoubleLit",
	BoolLit:   "BoolLit",
	StringLit: "StringLit",
	UnitLit:   "UnitLit",
}

func (k LitKind) String() string {
	if k < 0 || int(k) >= len(litKindNames) {
		return fmt.Sprintf("LitKind(%d)", int(k))
	}
	return litKindNames[k]
}

// Identifier represents a variable or function name.
type Identifier struct {
	Range
	Name string
}

func (e *Identifier) exprNode() {}

// Hash returns a hash value for the Identifier, based on its structural characteristics
func (e *Identifier) Hash() uint64 {
	h := fnv.New64a()
	arr := []byte("Identifier")
	_, _ = h.Write([]byte(e.Name))
	arr = binary.LittleEndian.AppendUint64(arr, e.Range.Hash())

	_, _ = h.Write(arr)
	return h.Sum64()
}

// Literal represents a literal value (42, "hello", true, ()).
type Literal struct {
	Range
	Value string
	Kind  LitKind
}

func (e *Literal) exprNode() {}

// Hash returns a hash value for the Literal, based on its structural characteristics
func (e *Literal) Hash() uint64 {
	h := fnv.New64a()
	arr := []byte("Literal")
	_, _ = h.Write([]byte(e.Value))
	_, _ = h.Write([]byte(e.Kind.String()))
	arr = binary.LittleEndian.AppendUint64(arr, e.Range.Hash())

	_, _ = h.Write(arr)
	return h.Sum64()
}

// BinaryExpr represents a binary operation (a + b, a < b, a && b).
type BinaryExpr struct {
	Range
	Left     Expr
	Operator token.Token // ADD, SUB, EQL, LAND, etc.
	Right    Expr
}

func (e *BinaryExpr) exprNode() {}

// Hash returns a hash value for the BinaryExpr, based on its structural characteristics
func (e *BinaryExpr) Hash() uint64 {
	h := fnv.New64a()
	arr := []byte("BinaryExpr")
	_, _ = h.Write([]byte(e.Operator.String()))
	arr = binary.LittleEndian.AppendUint64(arr, e.Range.Hash())

	if e.Left != nil {
		arr = binary.LittleEndian.AppendUint64(arr, e.Left.Hash())
	}

	if e.Right != nil {
		arr = binary.LittleEndian.AppendUint64(arr, e.Right.Hash())
	}

	_, _ = h.Write(arr)
	return h.Sum64()
}

// IfExpr represents a conditional expression (if (cond) a else b).
// Both branches are mandatory since the whole expression has a value.
type IfExpr struct {
	Range
	Cond Expr
	Then Expr
	Else Expr
}

func (e *IfExpr) exprNode() {}

// Hash returns a hash value for the IfExpr, based on its structural characteristics
func (e *IfExpr) Hash() uint64 {
	h := fnv.New64a()
	arr := []byte("IfExpr")
	arr = binary.LittleEndian.AppendUint64(arr, e.Range.Hash())

	if e.Cond != nil {
		arr = binary.LittleEndian.AppendUint64(arr, e.Cond.Hash())
	}

	if e.Then != nil {
		arr = binary.LittleEndian.AppendUint64(arr, e.Then.Hash())
	}

	if e.Else != nil {
		arr = binary.LittleEndian.AppendUint64(arr, e.Else.Hash())
	}

	_, _ = h.Write(arr)
	return h.Sum64()
}

// TupleLit represents a tuple literal ((a, b, c)).
type TupleLit struct {
	Range
	Elements []Expr
}

func (e *TupleLit) exprNode() {}

// Hash returns a hash value for the TupleLit, based on its structural characteristics
func (e *TupleLit) Hash() uint64 {
	h := fnv.New64a()
	arr := []byte("TupleLit")
	arr = binary.LittleEndian.AppendUint64(arr, e.Range.Hash())

	for _, elem := range e.Elements {
		if elem != nil {
			arr = binary.LittleEndian.AppendUint64(arr, elem.Hash())
		}
	}

	_, _ = h.Write(arr)
	return h.Sum64()
}

// FuncLit represents a function literal (fn x, y -> x + y).
type FuncLit struct {
	Range
	Params []Parameter
	Body   Expr
}

func (e *FuncLit) exprNode() {}

// Hash returns a hash value for the FuncLit, based on its structural characteristics
func (e *FuncLit) Hash() uint64 {
	h := fnv.New64a()
	arr := []byte("FuncLit")
	arr = binary.LittleEndian.AppendUint64(arr, e.Range.Hash())

	for _, param := range e.Params {
		arr = binary.LittleEndian.AppendUint64(arr, (&param).Hash())
	}

	if e.Body != nil {
		arr = binary.LittleEndian.AppendUint64(arr, e.Body.Hash())
	}

	_, _ = h.Write(arr)
	return h.Sum64()
}

// Parameter represents a function literal parameter.
type Parameter struct {
	Range
	Name string
}

// Hash returns a hash value for the Parameter, based on its structural characteristics
func (p *Parameter) Hash() uint64 {
	h := fnv.New64a()
	arr := []byte("Parameter")
	_, _ = h.Write([]byte(p.Name))
	arr = binary.LittleEndian.AppendUint64(arr, p.Range.Hash())

	_, _ = h.Write(arr)
	return h.Sum64()
}

// CallExpr represents a call of a named function (f(x, y)).
type CallExpr struct {
	Range
	Func *Identifier
	Args []Expr
}

func (e *CallExpr) exprNode() {}

// Hash returns a hash value for the CallExpr, based on its structural characteristics
func (e *CallExpr) Hash() uint64 {
	h := fnv.New64a()
	arr := []byte("CallExpr")
	arr = binary.LittleEndian.AppendUint64(arr, e.Range.Hash())

	if e.Func != nil {
		arr = binary.LittleEndian.AppendUint64(arr, e.Func.Hash())
	}

	for _, arg := range e.Args {
		if arg != nil {
			arr = binary.LittleEndian.AppendUint64(arr, arg.Hash())
		}
	}

	_, _ = h.Write(arr)
	return h.Sum64()
}

// BlockExpr represents a braced statement sequence whose value is that of its
// trailing expression statement, or the unit value if there is none.
// It implements both the Expr and Stmt interfaces to allow blocks to be used as both expressions and statements.
type BlockExpr struct {
	Range
	Stmts []Stmt
}

func (e *BlockExpr) exprNode() {}
func (e *BlockExpr) stmtNode() {}

// Hash returns a hash value for the BlockExpr, based on its structural characteristics
func (e *BlockExpr) Hash() uint64 {
	h := fnv.New64a()
	arr := []byte("BlockExpr")
	arr = binary.LittleEndian.AppendUint64(arr, e.Range.Hash())

	for _, stmt := range e.Stmts {
		if stmt != nil {
			arr = binary.LittleEndian.AppendUint64(arr, stmt.Hash())
		}
	}

	_, _ = h.Write(arr)
	return h.Sum64()
}
