package grammar

import (
	"io"

	"github.com/alecthomas/participle/v2/lexer"

	"mers/internal/parser"
)

// Symbol types handed to participle. EOF must keep lexer.EOF.
const (
	identType lexer.TokenType = lexer.EOF - 1 - iota
	numberType
	stringType
	keywordType
	punctType
)

// MersLexer feeds participle from the hand-written scanner, so both front
// ends agree on every token boundary.
var MersLexer lexer.Definition = &mersDefinition{}

type mersDefinition struct{}

func (*mersDefinition) Symbols() map[string]lexer.TokenType {
	return map[string]lexer.TokenType{
		"EOF":     lexer.EOF,
		"Ident":   identType,
		"Number":  numberType,
		"String":  stringType,
		"Keyword": keywordType,
		"Punct":   punctType,
	}
}

func (d *mersDefinition) Lex(filename string, r io.Reader) (lexer.Lexer, error) {
	source, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return d.LexString(filename, string(source))
}

func (*mersDefinition) LexString(filename string, source string) (lexer.Lexer, error) {
	tokens, err := parser.Tokenize(source)
	if err != nil {
		return nil, err
	}
	return &tokenLexer{filename: filename, tokens: tokens}, nil
}

type tokenLexer struct {
	filename string
	tokens   []parser.Token
	next     int
}

func (l *tokenLexer) Next() (lexer.Token, error) {
	if l.next >= len(l.tokens) {
		l.next = len(l.tokens) - 1
	}
	tok := l.tokens[l.next]
	l.next++
	return lexer.Token{
		Type:  symbolType(tok.Type),
		Value: tok.Lexeme,
		Pos: lexer.Position{
			Filename: l.filename,
			Offset:   tok.Position.Offset,
			Line:     tok.Position.Line,
			Column:   tok.Position.Column,
		},
	}, nil
}

func symbolType(tt parser.TokenType) lexer.TokenType {
	switch tt {
	case parser.EOF:
		return lexer.EOF
	case parser.IDENTIFIER:
		return identType
	case parser.NUMBER:
		return numberType
	case parser.STRING:
		return stringType
	case parser.IF, parser.ELSE:
		return keywordType
	}
	return punctType
}
