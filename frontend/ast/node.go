package ast

import (
	"encoding/binary"
	"hash/fnv"
)

// Node is the base interface for all AST nodes.
type Node interface {
	Positioner
	Hash() uint64
}

// Expr is the interface for all expression nodes in the AST.
type Expr interface {
	Node
	exprNode() // Marker method to distinguish expressions
}

// Stmt is the interface for all statement nodes in the AST.
type Stmt interface {
	Node
	stmtNode() // Marker method to distinguish statements
}

// File represents a source file in the AST.
type File struct {
	Range
	PkgName      string
	Declarations []Declaration
}

// Hash returns a hash value for the File, based on its structural characteristics
func (f *File) Hash() uint64 {
	h := fnv.New64a()
	arr := []byte("File")
	_, _ = h.Write([]byte(f.PkgName))
	arr = binary.LittleEndian.AppendUint64(arr, f.Range.Hash())

	for _, decl := range f.Declarations {
		arr = binary.LittleEndian.AppendUint64(arr, (&decl).Hash())
	}

	_, _ = h.Write(arr)
	return h.Sum64()
}

// Declaration represents a top-level binding of a name to an expression.
// A Recursive declaration may refer to its own name inside Value.
type Declaration struct {
	Range
	Name      string
	Value     Expr
	Recursive bool
	Comments  []string
}

// Hash returns a hash value for the Declaration, based on its structural characteristics
func (d *Declaration) Hash() uint64 {
	h := fnv.New64a()
	arr := []byte("Declaration")
	_, _ = h.Write([]byte(d.Name))
	arr = binary.LittleEndian.AppendUint64(arr, d.Range.Hash())

	if d.Recursive {
		arr = append(arr, 1)
	}

	if d.Value != nil {
		arr = binary.LittleEndian.AppendUint64(arr, d.Value.Hash())
	}

	for _, comment := range d.Comments {
		_, _ = h.Write([]byte(comment))
	}

	_, _ = h.Write(arr)
	return h.Sum64()
}
