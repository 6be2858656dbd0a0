package parser

import "fmt"

// LexError is returned by the scanner when no lexical rule matches at a
// position, which in practice means an unterminated string literal or one of
// the few characters no rule claims (a lone ':', '[' or ']').
type LexError struct {
	Message  string
	Position Position // line, column, offset
	Length   int      // how many characters it covers
}

func (e *LexError) Error() string {
	return fmt.Sprintf("lex error at %d:%d: %s", e.Position.Line, e.Position.Column, e.Message)
}

// ParseError reports the first token at which a production's required
// continuation was absent. Parsing stops there.
type ParseError struct {
	Position Position
	Expected string
	Found    string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at %d:%d: expected %s, found %s",
		e.Position.Line, e.Position.Column, e.Expected, e.Found)
}

// Expectations reported when a node was parsed but may not stand where it
// does. Both front ends use them.
const (
	ExpectedInitTarget   = "variable or tuple before ':='"
	ExpectedAssignTarget = "variable, tuple, block, string or number before '='"
	ExpectedFuncArg      = "variable or tuple before '->'"
	ExpectedChainLink    = "chain link (block, tuple, string, number or variable)"
)
