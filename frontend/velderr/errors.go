package velderr

import (
	"fmt"
	"runtime/debug"
	"strings"

	"github.com/veld-lang/veld/frontend/ast"
	"github.com/veld-lang/veld/frontend/types"
)

// enableDebugErrorPrinting makes errors include their stacktrace when printed
const enableDebugErrorPrinting bool = true
const enableDebugFullStacktrace bool = false

type ErrCode int

const (
	None ErrCode = iota
	TypeMismatch
	InfiniteType
	ConstraintSolvingFailed
	UndefinedVariable
)

// VeldError is a compiler error with a stable code and an optional source
// position. The engine itself never fills the position; callers that know the
// offending node attach it.
type VeldError interface {
	Error() string
	Code() ErrCode
	ast.Positioner

	withStack([]byte) VeldError
	getStack() []byte
}

func FormatWithCode(e VeldError) string {
	if enableDebugErrorPrinting && e.getStack() != nil {
		stack := string(e.getStack())
		if !enableDebugFullStacktrace {
			stack = strings.Split(stack, "\n")[6]
		}
		return fmt.Sprintf("%s:(E%03d) %s", stack, e.Code(), e.Error())
	}
	return fmt.Sprintf("(E%03d) %s", e.Code(), e.Error())
}

func New[E VeldError](err E) VeldError {
	return err.withStack(debug.Stack())
}

type Unclassified struct {
	From error
	ast.Positioner
	stack []byte
}

func (e Unclassified) Error() string {
	return fmt.Sprintf("unclassified error: %v", e.From)
}
func (e Unclassified) Code() ErrCode { return None }
func (e Unclassified) Unwrap() error { return e.From }

// Cause returns the wrapped error, following the pkg/errors causer convention.
func (e Unclassified) Cause() error     { return e.From }
func (e Unclassified) getStack() []byte { return e.stack }
func (e Unclassified) withStack(stack []byte) VeldError {
	e.stack = stack
	return e
}

// NewTypeMismatch reports two structurally incompatible types that a
// constraint required to be equal.
type NewTypeMismatch struct {
	ast.Positioner
	First  types.Type
	Second types.Type
	stack  []byte
}

func (e NewTypeMismatch) Error() string {
	return fmt.Sprintf("type mismatch: expected type '%v', but found incompatible type '%v'", e.First, e.Second)
}
func (e NewTypeMismatch) Code() ErrCode    { return TypeMismatch }
func (e NewTypeMismatch) getStack() []byte { return e.stack }
func (e NewTypeMismatch) withStack(stack []byte) VeldError {
	e.stack = stack
	return e
}

// NewInfiniteType reports an occurs check violation: the variable would have
// to contain itself to satisfy the constraint.
type NewInfiniteType struct {
	ast.Positioner
	Variable   *types.TypeVar
	Containing types.Type
	stack      []byte
}

func (e NewInfiniteType) Error() string {
	return fmt.Sprintf("infinite type: variable '%v' occurs inside '%v'", e.Variable, e.Containing)
}
func (e NewInfiniteType) Code() ErrCode    { return InfiniteType }
func (e NewInfiniteType) getStack() []byte { return e.stack }
func (e NewInfiniteType) withStack(stack []byte) VeldError {
	e.stack = stack
	return e
}

// NewConstraintSolvingFailed wraps the specific cause every time a constraint
// set cannot be solved. Callers branch on the cause via errors.As or
// errors.Cause without losing the solving context.
type NewConstraintSolvingFailed struct {
	ast.Positioner
	From  error
	stack []byte
}

func (e NewConstraintSolvingFailed) Error() string {
	return fmt.Sprintf("cannot solve type constraints: %v", e.From)
}
func (e NewConstraintSolvingFailed) Code() ErrCode { return ConstraintSolvingFailed }
func (e NewConstraintSolvingFailed) Unwrap() error { return e.From }

// Cause returns the wrapped error, following the pkg/errors causer convention.
func (e NewConstraintSolvingFailed) Cause() error     { return e.From }
func (e NewConstraintSolvingFailed) getStack() []byte { return e.stack }
func (e NewConstraintSolvingFailed) withStack(stack []byte) VeldError {
	e.stack = stack
	return e
}

// NewUndefinedVariable reports a name that no scope in the program binds.
type NewUndefinedVariable struct {
	ast.Positioner
	Name  string
	stack []byte
}

func (e NewUndefinedVariable) Error() string {
	return fmt.Sprintf("variable '%s' is not defined", e.Name)
}
func (e NewUndefinedVariable) Code() ErrCode    { return UndefinedVariable }
func (e NewUndefinedVariable) getStack() []byte { return e.stack }
func (e NewUndefinedVariable) withStack(stack []byte) VeldError {
	e.stack = stack
	return e
}
