package jerrors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorFormatting(t *testing.T) {
	t.Parallel()
	cases := []struct {
		err      *Error
		expected string
	}{
		{
			&Error{Kind: LexerErr, Line: 1, Column: 4, Err: errors.New("unexpected character @")},
			"lex error: 1:4 unexpected character @",
		},
		{
			&Error{Kind: ParserErr, Line: 2, Column: 1, Err: errors.New("undeclared variable rect")},
			"parse error: 2:1 undeclared variable rect",
		},
		{
			Newf(UnknownMethod, "%s has no method named %s", "Object", "foo"),
			"type error: Object has no method named foo",
		},
		{
			Newf(NullNotInstantiable, "Type null is not instantiable"),
			"type error: Type null is not instantiable",
		},
	}

	for _, tc := range cases {
		assert.EqualError(t, tc.err, tc.expected)
	}
}

func TestErrorUnwrap(t *testing.T) {
	t.Parallel()
	inner := errors.New("boom")
	err := &Error{Kind: ArityMismatch, Err: inner}
	assert.Same(t, inner, errors.Unwrap(err))

	var jerr *Error
	require.ErrorAs(t, error(err), &jerr)
	assert.Equal(t, ArityMismatch, jerr.Kind)
}
