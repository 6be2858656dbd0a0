package lsp

import (
	"strings"

	"mers/internal/parser"
)

// SemanticToken represents a single LSP semantic token entry
// Line and StartChar are 0-based positions
// TokenType is an index into the semanticTokenTypes array
// TokenModifiers is a bitmask based on semanticTokenModifiers
type SemanticToken struct {
	Line           uint32
	StartChar      uint32
	Length         uint32
	TokenType      int // index into semanticTokenTypes
	TokenModifiers int // bitmask
}

// collectSemanticTokens classifies the token stream. Variables bound by an
// Init target carry the declaration modifier. Delimiters are left to the
// editor's own highlighting.
func collectSemanticTokens(result *parser.ParseResult) []SemanticToken {
	var tokens []SemanticToken

	if result == nil {
		return tokens
	}

	declared := make(map[int]bool)
	for _, v := range result.Declarations() {
		declared[v.Pos.Offset] = true
	}

	for _, tok := range result.Tokens {
		switch tok.Type {
		case parser.IF, parser.ELSE:
			tokens = append(tokens, makeToken(tok.Position, tok.Lexeme, "keyword", 0)...)
		case parser.STRING:
			tokens = append(tokens, makeToken(tok.Position, tok.Lexeme, "string", 0)...)
		case parser.NUMBER:
			tokens = append(tokens, makeToken(tok.Position, tok.Lexeme, "number", 0)...)
		case parser.IDENTIFIER:
			decl := 0
			if declared[tok.Position.Offset] {
				decl = 1
			}
			tokens = append(tokens, makeToken(tok.Position, tok.Lexeme, "variable", decl)...)
		case parser.CHAIN_DOT, parser.ARROW, parser.COLON_EQUALS, parser.EQUALS:
			tokens = append(tokens, makeToken(tok.Position, tok.Lexeme, "operator", 0)...)
		}
	}

	return tokens
}

// makeToken emits one entry per source line the lexeme covers, since LSP
// tokens may not span lines.
func makeToken(pos parser.Position, value, tokenType string, declModifier int) []SemanticToken {
	if value == "" {
		return nil
	}

	var tokens []SemanticToken
	line, column := pos.Line, pos.Column
	for i, part := range strings.Split(value, "\n") {
		if i > 0 {
			line++
			column = 1
		}
		if part == "" {
			continue
		}
		tokens = append(tokens, SemanticToken{
			Line:           uint32(line - 1),   // LSP uses 0-based line numbers
			StartChar:      uint32(column - 1), // LSP uses 0-based column numbers
			Length:         uint32(len(part)),
			TokenType:      indexOf(tokenType, SemanticTokenTypes),
			TokenModifiers: declModifier << indexOf("declaration", SemanticTokenModifiers),
		})
	}
	return tokens
}

// indexOf returns the index of a string in a slice, or 0 if not found
func indexOf(target string, list []string) int {
	for i, v := range list {
		if v == target {
			return i
		}
	}
	return 0 // Default to first token type if not found
}
