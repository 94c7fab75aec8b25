// Package jerrors is a unified errors package for lexing, parsing, and type
// checking so that every failure carries a kind tag and can be formatted and
// handled in a uniform way by the CLI and by tests.
package jerrors

import "fmt"

type (
	// Kind is an enum naming the rule or stage that produced the error.
	Kind int
	// Error captures all errors raised by javacheck. Type-check errors carry
	// only their kind and message; lexer and parser errors also carry the
	// source position they were raised at.
	Error struct {
		Line   int64
		Column int64
		Kind   Kind
		Err    error
	}
)

const (
	// LexerErr is an error that originates from the lexer.
	LexerErr Kind = iota
	// ParserErr is an error that originates from the parser.
	ParserErr
	// NoMethodsOnPrimitive is raised when a method call receiver is a
	// primitive or void.
	NoMethodsOnPrimitive
	// UnknownMethod is raised when the receiver type has no method with the
	// called name.
	UnknownMethod
	// NoSuchConstructor is raised when instantiating a class type that never
	// declared a constructor.
	NoSuchConstructor
	// ArityMismatch is raised when a call supplies the wrong number of
	// arguments for the method or constructor signature.
	ArityMismatch
	// ArgumentTypeMismatch is raised when an argument's static type is not
	// acceptable for the corresponding parameter type.
	ArgumentTypeMismatch
	// PrimitiveNotInstantiable is raised when instantiating a primitive or void.
	PrimitiveNotInstantiable
	// NullNotInstantiable is raised when instantiating the null type.
	NullNotInstantiable
)

// Newf builds an Error of the given kind with a formatted message.
func Newf(kind Kind, msg string, data ...any) *Error {
	return &Error{Kind: kind, Err: fmt.Errorf(msg, data...)}
}

func (err *Error) Error() string {
	switch err.Kind {
	case LexerErr:
		return fmt.Sprintf("lex error: %v:%v %v", err.Line, err.Column, err.Err)
	case ParserErr:
		return fmt.Sprintf("parse error: %v:%v %v", err.Line, err.Column, err.Err)
	default:
		return fmt.Sprintf("type error: %v", err.Err)
	}
}

func (err *Error) Unwrap() error { return err.Err }
