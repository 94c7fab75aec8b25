package parse

import "fmt"

type (
	tokenType string
	token     struct {
		LineInfo
		Kind      tokenType
		StringVal string
		FloatVal  float64
		IntVal    int64
	}
	// LineInfo is the position of a token within the source text.
	LineInfo struct {
		Line   int64
		Column int64
	}
)

const (
	tokenPeriod     tokenType = "."
	tokenComma      tokenType = ","
	tokenSemiColon  tokenType = ";"
	tokenOpenParen  tokenType = "("
	tokenCloseParen tokenType = ")"
	tokenNew        tokenType = "new"
	tokenNull       tokenType = "null"
	tokenTrue       tokenType = "true"
	tokenFalse      tokenType = "false"
	tokenFloat      tokenType = "float"
	tokenInteger    tokenType = "integer"
	tokenIdentifier tokenType = "identifier"
	tokenString     tokenType = "string"
	tokenEOS        tokenType = "<EOS>"
)

var keywords = map[string]tokenType{
	string(tokenNew):   tokenNew,
	string(tokenNull):  tokenNull,
	string(tokenTrue):  tokenTrue,
	string(tokenFalse): tokenFalse,
}

func (tk *token) String() string {
	switch tk.Kind {
	case tokenFloat:
		return fmt.Sprintf("f%v", tk.FloatVal)
	case tokenInteger:
		return fmt.Sprintf("i%v", tk.IntVal)
	case tokenIdentifier:
		return fmt.Sprintf("<%v>", tk.StringVal)
	case tokenString:
		return fmt.Sprintf("%q", tk.StringVal)
	default:
		return string(tk.Kind)
	}
}
