package parser

import (
	"mers/internal/ast"
)

// Parser is a recursive-descent parser over a token slice that ends in EOF.
// It stops at the first error; there is no recovery.
type Parser struct {
	filename string
	tokens   []Token
	current  int
}

func NewParser(filename string, tokens []Token) *Parser {
	if len(tokens) == 0 || tokens[len(tokens)-1].Type != EOF {
		tokens = append(tokens, Token{Type: EOF})
	}
	return &Parser{
		filename: filename,
		tokens:   tokens,
	}
}

// ParseFile parses `repeat(definition)` up to end of input.
func (p *Parser) ParseFile() (*ast.File, error) {
	file := &ast.File{
		Name: p.filename,
		Pos:  p.makePos(p.peek()),
	}

	for !p.isAtEnd() {
		def, err := p.parseDefinition("definition")
		if err != nil {
			return nil, err
		}
		file.Definitions = append(file.Definitions, def)
	}

	file.EndPos = p.makePos(p.peek())
	return file, nil
}
