package parser

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeywordsAndIdentifiers(t *testing.T) {
	input := "if else iffy elsewhere x &ref foo_bar"
	expected := []TokenType{
		IF, ELSE, IDENTIFIER, IDENTIFIER, IDENTIFIER, IDENTIFIER, IDENTIFIER,
	}

	tokens, err := Tokenize(input)
	require.NoError(t, err)

	if len(tokens) < len(expected) {
		t.Fatalf("expected at least %d tokens, got %d", len(expected), len(tokens))
	}

	for i, exp := range expected {
		if tokens[i].Type != exp {
			t.Errorf("token %d: expected %s, got %s", i, exp, tokens[i].Type)
		}
	}
}

func TestNumbers(t *testing.T) {
	input := "42 0 -7 +3 1.5 -0.25"
	expectedLexemes := []string{"42", "0", "-7", "+3", "1.5", "-0.25"}

	tokens, err := Tokenize(input)
	require.NoError(t, err)
	require.Len(t, tokens, len(expectedLexemes)+1)

	for i, exp := range expectedLexemes {
		if tokens[i].Type != NUMBER {
			t.Errorf("token %d: expected NUMBER, got %s", i, tokens[i].Type)
		}
		if tokens[i].Lexeme != exp {
			t.Errorf("token %d: expected lexeme %q, got %q", i, exp, tokens[i].Lexeme)
		}
	}
}

func TestNumberWithoutFractionDigitsIsChained(t *testing.T) {
	tokens, err := Tokenize("1.x")
	require.NoError(t, err)

	assert.Equal(t, []TokenType{NUMBER, CHAIN_DOT, IDENTIFIER, EOF}, tokenTypes(tokens))
	assert.Equal(t, "1", tokens[0].Lexeme)
}

func TestStrings(t *testing.T) {
	input := `"hello" "" "a\"b" "back\\slash"`
	expectedLexemes := []string{`"hello"`, `""`, `"a\"b"`, `"back\\slash"`}

	tokens, err := Tokenize(input)
	require.NoError(t, err)

	for i, exp := range expectedLexemes {
		if tokens[i].Type != STRING || tokens[i].Lexeme != exp {
			t.Errorf("token %d: expected STRING %s, got %s %s", i, exp, tokens[i].Type, tokens[i].Lexeme)
		}
	}
}

func TestPunctuation(t *testing.T) {
	input := `{ } ( ) , . -> := =`
	expected := []TokenType{
		BLOCK_START, BLOCK_END, TUPLE_START, TUPLE_END, TUPLE_SEPARATOR,
		CHAIN_DOT, ARROW, COLON_EQUALS, EQUALS,
	}
	expectedLexemes := []string{"{", "}", "(", ")", ",", ".", "->", ":=", "="}

	tokens, err := Tokenize(input)
	require.NoError(t, err)

	if len(tokens) < len(expected) {
		t.Fatalf("expected at least %d tokens, got %d", len(expected), len(tokens))
	}

	for i, exp := range expected {
		if tokens[i].Type != exp {
			t.Errorf("expected %s, got %s", exp, tokens[i].Type)
		}
		if tokens[i].Lexeme != expectedLexemes[i] {
			t.Errorf("expected lexeme '%s', got '%s'", expectedLexemes[i], tokens[i].Lexeme)
		}
	}
}

func TestIdentifierStopsAtDelimiters(t *testing.T) {
	tokens, err := Tokenize(`a,b(c)d{e}f.g"h"x->y`)
	require.NoError(t, err)

	assert.Equal(t, []TokenType{
		IDENTIFIER, TUPLE_SEPARATOR, IDENTIFIER, TUPLE_START, IDENTIFIER, TUPLE_END,
		IDENTIFIER, BLOCK_START, IDENTIFIER, BLOCK_END, IDENTIFIER, CHAIN_DOT,
		IDENTIFIER, STRING, IDENTIFIER, ARROW, IDENTIFIER, EOF,
	}, tokenTypes(tokens))
}

func TestIdentifierExcludesDigits(t *testing.T) {
	tokens, err := Tokenize("abc123")
	require.NoError(t, err)

	assert.Equal(t, []TokenType{IDENTIFIER, NUMBER, EOF}, tokenTypes(tokens))
	assert.Equal(t, "abc", tokens[0].Lexeme)
	assert.Equal(t, "123", tokens[1].Lexeme)
}

func TestSignWithoutDigitIsIdentifier(t *testing.T) {
	tokens, err := Tokenize("- +x a-b")
	require.NoError(t, err)

	assert.Equal(t, []TokenType{IDENTIFIER, IDENTIFIER, IDENTIFIER, EOF}, tokenTypes(tokens))
	assert.Equal(t, "-", tokens[0].Lexeme)
	assert.Equal(t, "+x", tokens[1].Lexeme)
	assert.Equal(t, "a-b", tokens[2].Lexeme)
}

func TestVerticalTabIsWhitespace(t *testing.T) {
	tokens, err := Tokenize("a\vb")
	require.NoError(t, err)

	assert.Equal(t, []TokenType{IDENTIFIER, IDENTIFIER, EOF}, tokenTypes(tokens))
	assert.Equal(t, "a", tokens[0].Lexeme)
	assert.Equal(t, "b", tokens[1].Lexeme)
}

func TestEmptyInput(t *testing.T) {
	for _, input := range []string{"", "   ", "\n\t\r\n", "\v\f"} {
		tokens, err := Tokenize(input)
		require.NoError(t, err)
		assert.Equal(t, []TokenType{EOF}, tokenTypes(tokens), "input %q", input)
	}
}

func TestUnterminatedString(t *testing.T) {
	_, err := Tokenize(`x := "unterminated`)
	require.Error(t, err)

	var lexErr *LexError
	require.True(t, errors.As(err, &lexErr))
	assertLexError(t, lexErr, "unterminated string", 1, 6, 5)
}

func TestUnterminatedEscapeAtEnd(t *testing.T) {
	_, err := Tokenize(`"abc\`)

	var lexErr *LexError
	require.True(t, errors.As(err, &lexErr))
	assertLexError(t, lexErr, "unterminated string", 1, 1, 0)
}

func TestMultilineUnterminatedString(t *testing.T) {
	input := `"unterminated string
that spans multiple lines`

	_, err := Tokenize(input)

	var lexErr *LexError
	require.True(t, errors.As(err, &lexErr))
	if lexErr.Message != "unterminated string" {
		t.Errorf("expected unterminated string error, got %q", lexErr.Message)
	}
}

func TestUnclassifiableCharacters(t *testing.T) {
	for _, input := range []string{"a : b", "[", "x ]"} {
		_, err := Tokenize(input)

		var lexErr *LexError
		assert.True(t, errors.As(err, &lexErr), "input %q", input)
	}
}

func TestTokenPositions(t *testing.T) {
	input := "if\nx := 123\n  \"str\\\"\" y"
	tokens, err := Tokenize(input)
	require.NoError(t, err)

	expected := []struct {
		typ    TokenType
		lexeme string
		line   int
		column int
	}{
		{IF, "if", 1, 1},
		{IDENTIFIER, "x", 2, 1},
		{COLON_EQUALS, ":=", 2, 3},
		{NUMBER, "123", 2, 6},
		{STRING, `"str\""`, 3, 3},
		{IDENTIFIER, "y", 3, 11},
	}

	for i, exp := range expected {
		if i >= len(tokens) {
			t.Fatalf("missing token at index %d", i)
		}
		tok := tokens[i]
		if tok.Type != exp.typ {
			t.Errorf("token %d: expected type %s, got %s", i, exp.typ, tok.Type)
		}
		if tok.Lexeme != exp.lexeme {
			t.Errorf("token %d: expected lexeme %q, got %q", i, exp.lexeme, tok.Lexeme)
		}
		if tok.Position.Line != exp.line {
			t.Errorf("token %d: expected line %d, got %d", i, exp.line, tok.Position.Line)
		}
		if tok.Position.Column != exp.column {
			t.Errorf("token %d: expected column %d, got %d", i, exp.column, tok.Position.Column)
		}
	}

	// Check that offsets strictly increase
	for i := 1; i < len(tokens); i++ {
		if tokens[i].Position.Offset <= tokens[i-1].Position.Offset {
			t.Errorf("token %d: expected offset to increase, got %d after %d",
				i, tokens[i].Position.Offset, tokens[i-1].Position.Offset)
		}
	}
}

func TestMultilineStringPosition(t *testing.T) {
	tokens, err := Tokenize("\"a\nb\" c")
	require.NoError(t, err)

	assert.Equal(t, 1, tokens[0].Position.Line)
	assert.Equal(t, 2, tokens[1].Position.Line)
	assert.Equal(t, 4, tokens[1].Position.Column)
}

func assertLexError(t *testing.T, got *LexError, wantMessage string, wantLine, wantCol, wantOffset int) {
	t.Helper()
	if got.Message != wantMessage {
		t.Errorf("expected message '%s', got %q", wantMessage, got.Message)
	}
	if got.Position.Line != wantLine || got.Position.Column != wantCol || got.Position.Offset != wantOffset {
		t.Errorf("unexpected position: got line %d, column %d, offset %d",
			got.Position.Line, got.Position.Column, got.Position.Offset)
	}
}

func tokenTypes(tokens []Token) []TokenType {
	types := make([]TokenType, len(tokens))
	for i, tok := range tokens {
		types[i] = tok.Type
	}
	return types
}
