// Package parse turns Java expression source into expression trees for the
// checker. The parser is the tree-builder collaborator: it resolves type
// names against a caller-supplied universe and variable names against its
// own scope, so the trees it hands back arrive with every declared and
// literal type already attached.
package parse

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/milobeyene/javacheck/src/expr"
	"github.com/milobeyene/javacheck/src/jerrors"
	"github.com/milobeyene/javacheck/src/types"
)

// Parser parses one statement or expression at a time. It keeps the
// variable scope between calls so a repl can declare a variable on one line
// and use it on the next.
type Parser struct {
	universe *types.Universe
	scope    map[string]*types.Type
}

// New creates a parser resolving type names against the given universe.
func New(universe *types.Universe) *Parser {
	return &Parser{
		universe: universe,
		scope:    map[string]*types.Type{},
	}
}

// Declare binds a variable name to its declared type in the parser scope.
func (p *Parser) Declare(name string, t *types.Type) {
	p.scope[name] = t
}

// Stat parses a single statement: either a variable declaration of the form
// `TypeName varName;`, which binds the name in the parser scope and returns
// the declared variable, or a plain expression. Blank input returns nil.
func (p *Parser) Stat(src string) (expr.Expression, error) {
	lex := newLexer(strings.NewReader(src))
	tk, err := lex.Peek()
	if err != nil {
		return nil, err
	}
	if tk.Kind == tokenEOS {
		return nil, nil
	}
	if tk.Kind == tokenIdentifier {
		if decl, ok, err := p.declaration(lex); err != nil {
			return nil, err
		} else if ok {
			return decl, nil
		}
	}
	ex, err := p.expression(lex)
	if err != nil {
		return nil, err
	}
	return ex, p.finishStat(lex)
}

// Expression parses src as a single expression with no trailing input.
func (p *Parser) Expression(src string) (expr.Expression, error) {
	lex := newLexer(strings.NewReader(src))
	ex, err := p.expression(lex)
	if err != nil {
		return nil, err
	}
	return ex, p.finishStat(lex)
}

// declaration tries to parse `TypeName varName;`. The second return value
// reports whether the statement was a declaration at all; when it is not,
// the consumed token is pushed back and the caller parses an expression.
func (p *Parser) declaration(lex *lexer) (expr.Expression, bool, error) {
	typeTk, err := lex.Next()
	if err != nil {
		return nil, false, err
	}
	nameTk, err := lex.Peek()
	if err != nil {
		return nil, false, err
	}
	if nameTk.Kind != tokenIdentifier {
		lex.back(typeTk)
		return nil, false, nil
	}
	declared, ok := p.universe.Lookup(typeTk.StringVal)
	if !ok {
		return nil, false, p.errf(typeTk, "unknown type %s", typeTk.StringVal)
	}
	if _, err := lex.Next(); err != nil {
		return nil, false, err
	}
	if err := p.finishStat(lex); err != nil {
		return nil, false, err
	}
	p.scope[nameTk.StringVal] = declared
	return expr.NewVariable(nameTk.StringVal, declared), true, nil
}

// expression parses `primary { "." ident "(" args ")" }`.
func (p *Parser) expression(lex *lexer) (expr.Expression, error) {
	left, err := p.primary(lex)
	if err != nil {
		return nil, err
	}
	for {
		tk, err := lex.Peek()
		if err != nil {
			return nil, err
		}
		if tk.Kind != tokenPeriod {
			return left, nil
		}
		if _, err := lex.Next(); err != nil {
			return nil, err
		}
		nameTk, err := p.next(lex)
		if err != nil {
			return nil, err
		}
		if nameTk.Kind != tokenIdentifier {
			return nil, p.errf(nameTk, "expected method name but found %s", nameTk)
		}
		args, err := p.arguments(lex)
		if err != nil {
			return nil, err
		}
		left = expr.NewMethodCall(left, nameTk.StringVal, args...)
	}
}

// next returns the following token, mapping the end of input to an EOS token
// so grammar errors name <EOS> instead of surfacing a raw EOF.
func (p *Parser) next(lex *lexer) (*token, error) {
	tk, err := lex.Peek()
	if err != nil || tk.Kind == tokenEOS {
		return tk, err
	}
	return lex.Next()
}

func (p *Parser) primary(lex *lexer) (expr.Expression, error) {
	tk, err := p.next(lex)
	if err != nil {
		return nil, err
	}
	switch tk.Kind {
	case tokenNull:
		return expr.NewNullLiteral(), nil
	case tokenTrue, tokenFalse:
		return expr.NewLiteral(string(tk.Kind), types.Boolean), nil
	case tokenInteger:
		return expr.NewLiteral(strconv.FormatInt(tk.IntVal, 10), types.Int), nil
	case tokenFloat:
		return expr.NewLiteral(strconv.FormatFloat(tk.FloatVal, 'g', -1, 64), types.Double), nil
	case tokenString:
		strType, ok := p.universe.Lookup("String")
		if !ok {
			return nil, p.errf(tk, "no String type defined in this universe")
		}
		return expr.NewLiteral(tk.StringVal, strType), nil
	case tokenNew:
		return p.constructorCall(lex)
	case tokenIdentifier:
		declared, ok := p.scope[tk.StringVal]
		if !ok {
			return nil, p.errf(tk, "undeclared variable %s", tk.StringVal)
		}
		return expr.NewVariable(tk.StringVal, declared), nil
	default:
		return nil, p.errf(tk, "unexpected token %s", tk)
	}
}

func (p *Parser) constructorCall(lex *lexer) (expr.Expression, error) {
	nameTk, err := p.next(lex)
	if err != nil {
		return nil, err
	}
	if nameTk.Kind != tokenIdentifier {
		return nil, p.errf(nameTk, "expected type name after new but found %s", nameTk)
	}
	instantiated, ok := p.universe.Lookup(nameTk.StringVal)
	if !ok {
		return nil, p.errf(nameTk, "unknown type %s", nameTk.StringVal)
	}
	args, err := p.arguments(lex)
	if err != nil {
		return nil, err
	}
	return expr.NewConstructorCall(instantiated, args...), nil
}

// arguments parses `"(" [ expr { "," expr } ] ")"`.
func (p *Parser) arguments(lex *lexer) ([]expr.Expression, error) {
	if err := p.expect(lex, tokenOpenParen); err != nil {
		return nil, err
	}
	args := []expr.Expression{}
	tk, err := lex.Peek()
	if err != nil {
		return nil, err
	}
	if tk.Kind == tokenCloseParen {
		_, err := lex.Next()
		return args, err
	}
	for {
		arg, err := p.expression(lex)
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		tk, err := p.next(lex)
		if err != nil {
			return nil, err
		}
		if tk.Kind == tokenCloseParen {
			return args, nil
		}
		if tk.Kind != tokenComma {
			return nil, p.errf(tk, "expected , or ) in argument list but found %s", tk)
		}
	}
}

// finishStat consumes an optional trailing semicolon and requires the end of
// the input.
func (p *Parser) finishStat(lex *lexer) error {
	tk, err := lex.Peek()
	if err != nil {
		return err
	}
	if tk.Kind == tokenSemiColon {
		if _, err := lex.Next(); err != nil {
			return err
		}
		if tk, err = lex.Peek(); err != nil {
			return err
		}
	}
	if tk.Kind != tokenEOS {
		return p.errf(tk, "unexpected input after expression: %s", tk)
	}
	return nil
}

func (p *Parser) expect(lex *lexer, kind tokenType) error {
	tk, err := p.next(lex)
	if err != nil {
		return err
	}
	if tk.Kind != kind {
		return p.errf(tk, "expected %s but found %s", kind, tk)
	}
	return nil
}

func (p *Parser) errf(tk *token, msg string, data ...any) error {
	return &jerrors.Error{
		Kind:   jerrors.ParserErr,
		Line:   tk.Line,
		Column: tk.Column,
		Err:    fmt.Errorf(msg, data...),
	}
}
