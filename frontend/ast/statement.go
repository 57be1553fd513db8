package ast

import (
	"encoding/binary"
	"hash/fnv"
)

// All statement types implement the Stmt interface

// ExprStmt represents an expression used as a statement.
type ExprStmt struct {
	Range
	X Expr
}

func (s *ExprStmt) stmtNode() {}

// Hash returns a hash value for the ExprStmt, based on its structural characteristics
func (s *ExprStmt) Hash() uint64 {
	h := fnv.New64a()
	arr := []byte("ExprStmt")
	arr = binary.LittleEndian.AppendUint64(arr, s.Range.Hash())

	if s.X != nil {
		arr = binary.LittleEndian.AppendUint64(arr, s.X.Hash())
	}

	_, _ = h.Write(arr)
	return h.Sum64()
}

// ValDecl represents a block-local value binding (val x = expr).
// The bound name is visible to the statements that follow it in the same block.
type ValDecl struct {
	Range
	Name  string
	Value Expr
}

func (s *ValDecl) stmtNode() {}

// Hash returns a hash value for the ValDecl, based on its structural characteristics
func (s *ValDecl) Hash() uint64 {
	h := fnv.New64a()
	arr := []byte("ValDecl")
	_, _ = h.Write([]byte(s.Name))
	arr = binary.LittleEndian.AppendUint64(arr, s.Range.Hash())

	if s.Value != nil {
		arr = binary.LittleEndian.AppendUint64(arr, s.Value.Hash())
	}

	_, _ = h.Write(arr)
	return h.Sum64()
}
