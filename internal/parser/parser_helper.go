package parser

import (
	"mers/internal/ast"
)

func (p *Parser) advance() Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) check(tt TokenType) bool {
	if p.isAtEnd() {
		return false
	}
	return p.peek().Type == tt
}

func (p *Parser) match(types ...TokenType) bool {
	for _, tt := range types {
		if p.check(tt) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *Parser) consume(tt TokenType, expected string) (Token, error) {
	if p.check(tt) {
		return p.advance(), nil
	}
	return Token{}, p.errorAtCurrent(expected)
}

func (p *Parser) peek() Token {
	return p.tokens[p.current]
}

func (p *Parser) previous() Token {
	return p.tokens[p.current-1]
}

func (p *Parser) isAtEnd() bool {
	return p.peek().Type == EOF
}

// startsDefinition reports whether the current token can begin a definition.
func (p *Parser) startsDefinition() bool {
	switch p.peek().Type {
	case IF, BLOCK_START, TUPLE_START, STRING, NUMBER, IDENTIFIER:
		return true
	}
	return false
}

func (p *Parser) errorAtCurrent(expected string) error {
	return p.errorAt(p.peek(), expected)
}

func (p *Parser) errorAt(tok Token, expected string) error {
	return &ParseError{
		Position: tok.Position,
		Expected: expected,
		Found:    describeToken(tok),
	}
}

// errorAtNode reports a restriction violation on an already built node.
func (p *Parser) errorAtNode(n ast.Node, expected string) error {
	pos := n.NodePos()
	return &ParseError{
		Position: Position{Line: pos.Line, Column: pos.Column, Offset: pos.Offset},
		Expected: expected,
		Found:    ast.Describe(n),
	}
}

func describeToken(tok Token) string {
	if tok.Type == EOF {
		return "end of input"
	}
	return "'" + tok.Lexeme + "'"
}

func (p *Parser) makePos(tok Token) ast.Position {
	return ast.Position{
		Filename: p.filename,
		Offset:   tok.Position.Offset,
		Line:     tok.Position.Line,
		Column:   tok.Position.Column,
	}
}

func (p *Parser) makeEndPos(tok Token) ast.Position {
	end := tok.End()
	return ast.Position{
		Filename: p.filename,
		Offset:   end.Offset,
		Line:     end.Line,
		Column:   end.Column,
	}
}
