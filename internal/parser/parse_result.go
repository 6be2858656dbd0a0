package parser

import "mers/internal/ast"

// ParseResult keeps the token stream next to the tree; editors need both.
type ParseResult struct {
	Tokens []Token
	File   *ast.File
	Err    error
}

// ParseSourceWithTokens parses source and returns whatever stages succeeded.
// Tokens is nil on a LexError, File is nil on any error.
func ParseSourceWithTokens(path string, source string) *ParseResult {
	tokens, err := Tokenize(source)
	if err != nil {
		return &ParseResult{Err: err}
	}

	file, err := NewParser(path, tokens).ParseFile()
	return &ParseResult{
		Tokens: tokens,
		File:   file,
		Err:    err,
	}
}

// Declarations returns the variables bound by Init targets anywhere in the
// file, in source order. Tuple targets are destructured recursively.
func (pr *ParseResult) Declarations() []*ast.Variable {
	if pr.File == nil {
		return nil
	}

	var vars []*ast.Variable
	ast.Inspect(pr.File, func(n ast.Node) bool {
		if init, ok := n.(*ast.Init); ok {
			vars = appendBound(vars, init.Target)
		}
		return true
	})
	return vars
}

func appendBound(vars []*ast.Variable, target ast.Definition) []*ast.Variable {
	switch t := target.(type) {
	case *ast.Variable:
		return append(vars, t)
	case *ast.Tuple:
		for _, e := range t.Elements {
			vars = appendBound(vars, e)
		}
	}
	return vars
}
