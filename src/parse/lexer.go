package parse

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
	"unicode"

	"github.com/milobeyene/javacheck/src/jerrors"
)

var escapeCodes = map[rune]rune{
	'b':  '\x08', // backspace
	'f':  '\x0C', // form feed
	'n':  '\n',   // newline
	'r':  '\r',   // carriage return
	't':  '\t',   // tab
	'\\': '\\',   // backslash
	'"':  '"',    // quote
	'\'': '\'',   // apostrophe
}

type lexer struct {
	rdr    *bufio.Reader
	peeked []*token
	LineInfo
}

func newLexer(src io.Reader) *lexer {
	return &lexer{
		LineInfo: LineInfo{Line: 1},
		rdr:      bufio.NewReaderSize(src, 4096),
		peeked:   []*token{},
	}
}

func (lex *lexer) errf(msg string, data ...any) error {
	return lex.err(fmt.Errorf(msg, data...))
}

func (lex *lexer) err(err error) error {
	if errors.Is(err, io.EOF) {
		return err
	}
	return &jerrors.Error{
		Kind:   jerrors.LexerErr,
		Line:   lex.Line,
		Column: lex.Column,
		Err:    err,
	}
}

func (lex *lexer) peek() rune {
	chs, _ := lex.rdr.Peek(1)
	if len(chs) == 0 {
		return 0
	}
	return rune(chs[0])
}

func (lex *lexer) next() (rune, error) {
	ch, _, err := lex.rdr.ReadRune()
	if err != nil {
		return ch, lex.err(err)
	}
	if ch == '\n' || ch == '\r' {
		lex.Line++
		lex.Column = 0
	}
	lex.Column++
	return ch, err
}

func (lex *lexer) skipWhitespace() error {
	for {
		if tk := lex.peek(); tk == ' ' || tk == '\t' || tk == '\n' || tk == '\r' {
			if _, err := lex.next(); err != nil {
				return err
			}
			continue
		}
		return nil
	}
}

func (lex *lexer) tokenVal(tk tokenType) (*token, error) {
	return &token{Kind: tk, LineInfo: LineInfo{Line: lex.Line, Column: lex.Column - int64(len(tk))}}, nil
}

// allow for FIFO stack.
func (lex *lexer) back(tk *token) {
	lex.peeked = append(lex.peeked, tk)
}

func (lex *lexer) Peek() (*token, error) {
	if len(lex.peeked) == 0 {
		tk, err := lex.Next()
		if err != nil && !errors.Is(err, io.EOF) {
			return &token{Kind: tokenEOS}, err
		} else if err != nil && errors.Is(err, io.EOF) {
			return &token{Kind: tokenEOS}, nil
		}
		lex.peeked = append(lex.peeked, tk)
	}
	return lex.peeked[len(lex.peeked)-1], nil
}

func (lex *lexer) Next() (*token, error) {
	if len(lex.peeked) != 0 {
		top := lex.peeked[len(lex.peeked)-1]
		lex.peeked = lex.peeked[:len(lex.peeked)-1]
		return top, nil
	}
	if err := lex.skipWhitespace(); err != nil {
		return nil, err
	}
	ch, err := lex.next()
	if err != nil {
		return nil, err
	}
	if ch == '.' {
		return lex.tokenVal(tokenPeriod)
	} else if ch == ',' {
		return lex.tokenVal(tokenComma)
	} else if ch == ';' {
		return lex.tokenVal(tokenSemiColon)
	} else if ch == '(' {
		return lex.tokenVal(tokenOpenParen)
	} else if ch == ')' {
		return lex.tokenVal(tokenCloseParen)
	} else if ch == '"' || ch == '\'' {
		return lex.parseString(ch)
	} else if unicode.IsDigit(ch) {
		return lex.parseNumber(ch)
	} else if unicode.IsLetter(ch) || ch == '_' {
		return lex.parseIdentifier(ch)
	}
	return nil, lex.errf("unexpected character %v", string(ch))
}

func (lex *lexer) parseIdentifier(start rune) (*token, error) {
	linfo := lex.LineInfo
	var ident bytes.Buffer
	if _, err := ident.WriteRune(start); err != nil {
		return nil, err
	}

	for {
		if peekCh := lex.peek(); unicode.IsLetter(peekCh) || unicode.IsDigit(peekCh) || peekCh == '_' {
			if ch, err := lex.next(); err != nil {
				return nil, err
			} else if _, err := ident.WriteRune(ch); err != nil {
				return nil, err
			}
		} else {
			break
		}
	}

	strVal := ident.String()
	if kw, ok := keywords[strVal]; ok {
		return lex.tokenVal(kw)
	}
	return &token{
		Kind:      tokenIdentifier,
		StringVal: strVal,
		LineInfo:  linfo,
	}, nil
}

func (lex *lexer) parseString(delimiter rune) (*token, error) {
	linfo := lex.LineInfo
	var str bytes.Buffer
	for {
		if ch, err := lex.next(); err != nil {
			if errors.Is(err, io.EOF) {
				return nil, lex.errf("unterminated string")
			}
			return nil, err
		} else if ch == '\\' {
			if ch, err := lex.next(); err != nil {
				return nil, err
			} else if esc, ok := escapeCodes[ch]; ok {
				str.WriteRune(esc)
			} else {
				return nil, lex.err(fmt.Errorf("unexpected escape code \\%s", string(ch)))
			}
		} else if ch == delimiter {
			return &token{
				Kind:      tokenString,
				StringVal: str.String(),
				LineInfo:  linfo,
			}, nil
		} else {
			str.WriteRune(ch)
		}
	}
}

func (lex *lexer) parseNumber(start rune) (*token, error) {
	linfo := lex.LineInfo
	var number bytes.Buffer
	isFloat := false

	if _, err := number.WriteRune(start); err != nil {
		return nil, lex.err(err)
	}
	if err := lex.consumeDigits(&number); err != nil {
		return nil, err
	}
	if peekCh := lex.peek(); peekCh == '.' {
		isFloat = true
		if err := lex.writeNext(&number); err != nil {
			return nil, err
		} else if err := lex.consumeDigits(&number); err != nil {
			return nil, err
		}
	}
	if peekCh := lex.peek(); peekCh == 'e' || peekCh == 'E' {
		isFloat = true
		if err := lex.writeNext(&number); err != nil {
			return nil, err
		}
		if tk := lex.peek(); tk == '-' || tk == '+' {
			if err := lex.writeNext(&number); err != nil {
				return nil, err
			}
		}
		if err := lex.consumeDigits(&number); err != nil {
			return nil, err
		}
	}

	if isFloat {
		fval, err := strconv.ParseFloat(number.String(), 64)
		if err != nil {
			return nil, lex.err(fmt.Errorf("parse float: %w", errors.Unwrap(err)))
		}
		return &token{
			Kind:     tokenFloat,
			FloatVal: fval,
			LineInfo: linfo,
		}, nil
	}

	ivalue, err := strconv.ParseInt(number.String(), 10, 64)
	if err != nil {
		return nil, lex.err(fmt.Errorf("parse int: %w", errors.Unwrap(err)))
	}
	return &token{
		Kind:     tokenInteger,
		IntVal:   ivalue,
		LineInfo: linfo,
	}, nil
}

func (lex *lexer) consumeDigits(number *bytes.Buffer) error {
	for {
		if ch := lex.peek(); !unicode.IsDigit(ch) {
			return nil
		} else if err := lex.writeNext(number); err != nil {
			return err
		}
	}
}

func (lex *lexer) writeNext(number *bytes.Buffer) error {
	if ch, err := lex.next(); err != nil {
		return err
	} else if _, err := number.WriteRune(ch); err != nil {
		return lex.err(err)
	}
	return nil
}
