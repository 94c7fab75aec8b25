// Package expr models trees of simple Java expressions and computes their
// compile-time types. Expressions are never evaluated: the only two
// operations are StaticType, the type a node would produce at runtime, and
// CheckTypes, which walks the subtree and reports the first inconsistency
// against the type model. Trees are built bottom-up by the caller, own their
// children exclusively, and are immutable once constructed, so any number of
// validation passes can run over the same tree.
package expr

import (
	"github.com/milobeyene/javacheck/src/types"
)

type (
	// Expression is one node in an expression tree.
	Expression interface {
		// StaticType returns the compile-time type of this expression, i.e.
		// the most specific type that describes all the values it could take
		// on at runtime. It is pure and deterministic, and it stays callable
		// on invalid trees: it only fails when the answer itself depends on
		// a method lookup that cannot be resolved.
		StaticType() (*types.Type, error)
		// CheckTypes validates the subtree depth-first, left-to-right,
		// arguments before self, and returns the first violation found. A
		// nil return means the whole subtree is well typed.
		CheckTypes() error
	}

	// Variable reads the value of a named variable, e.g. `x`.
	Variable struct {
		name     string
		declared *types.Type
	}

	// Literal is a constant written in the code, e.g. `5`, kept as its
	// source text together with its type.
	Literal struct {
		value string
		typ   *types.Type
	}

	// NullLiteral is the null constant. Its static type is always
	// types.Null.
	NullLiteral struct{}
)

// NewVariable builds a variable read with its declared type.
func NewVariable(name string, declared *types.Type) *Variable {
	return &Variable{name: name, declared: declared}
}

// Name returns the variable name.
func (v *Variable) Name() string { return v.name }

// StaticType returns the variable's declared type.
func (v *Variable) StaticType() (*types.Type, error) { return v.declared, nil }

// CheckTypes never fails; a variable read has no constraints.
func (v *Variable) CheckTypes() error { return nil }

// NewLiteral builds a literal from its source text and type.
func NewLiteral(value string, typ *types.Type) *Literal {
	return &Literal{value: value, typ: typ}
}

// Value returns the literal's source text.
func (l *Literal) Value() string { return l.value }

// StaticType returns the literal's fixed type.
func (l *Literal) StaticType() (*types.Type, error) { return l.typ, nil }

// CheckTypes never fails; a literal has no constraints.
func (l *Literal) CheckTypes() error { return nil }

// NewNullLiteral builds the null constant.
func NewNullLiteral() *NullLiteral { return &NullLiteral{} }

// Value returns the literal text "null".
func (n *NullLiteral) Value() string { return "null" }

// StaticType always returns the null sentinel type.
func (n *NullLiteral) StaticType() (*types.Type, error) { return types.Null, nil }

// CheckTypes never fails; null is always a valid expression on its own.
func (n *NullLiteral) CheckTypes() error { return nil }
