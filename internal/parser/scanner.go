package parser

import (
	"fmt"
)

type Token struct {
	Type     TokenType
	Lexeme   string // exact source text, quotes included for strings
	Position Position
}

// End returns the position just past the token. Column is only meaningful
// for tokens that do not span a newline.
func (t Token) End() Position {
	return Position{
		Line:   t.Position.Line,
		Column: t.Position.Column + len(t.Lexeme),
		Offset: t.Position.Offset + len(t.Lexeme),
	}
}

type Scanner struct {
	source      string
	tokens      []Token
	start       int
	current     int
	line        int
	startLine   int
	startColumn int
	column      int
	err         *LexError
}

func NewScanner(source string) *Scanner {
	return &Scanner{
		source: source,
		line:   1,
		column: 1,
	}
}

// Tokenize scans source into tokens. The returned slice always ends with an
// EOF token, so empty input yields just that sentinel.
func Tokenize(source string) ([]Token, error) {
	return NewScanner(source).ScanTokens()
}

func (s *Scanner) ScanTokens() ([]Token, error) {
	for !s.isAtEnd() {
		s.start = s.current
		s.startLine = s.line
		s.startColumn = s.column
		s.scanToken()
		if s.err != nil {
			return nil, s.err
		}
	}
	s.tokens = append(s.tokens, Token{Type: EOF, Position: Position{Line: s.line, Column: s.column, Offset: s.current}})
	return s.tokens, nil
}

func (s *Scanner) scanToken() {
	c := s.advance()
	switch c {
	case '{':
		s.addToken(BLOCK_START)
	case '}':
		s.addToken(BLOCK_END)
	case '(':
		s.addToken(TUPLE_START)
	case ')':
		s.addToken(TUPLE_END)
	case ',':
		s.addToken(TUPLE_SEPARATOR)
	case '.':
		s.addToken(CHAIN_DOT)
	case '=':
		s.addToken(EQUALS)

	case ':':
		s.scanColonOperator()
	case '-', '+':
		s.scanSignOrArrow(c)

	case ' ', '\r', '\t', '\f', '\v':
		// Ignore whitespace
	case '\n':
		// Handled in advance()

	case '"':
		s.scanString()

	default:
		s.scanDefault(c)
	}
}

func (s *Scanner) scanColonOperator() {
	if s.matchNext('=') {
		s.addToken(COLON_EQUALS)
	} else {
		s.reportError("unexpected character ':'")
	}
}

// scanSignOrArrow handles the three things a leading '+' or '-' can start:
// the arrow, a signed number, or an identifier such as `-` or `+x`.
func (s *Scanner) scanSignOrArrow(c byte) {
	switch {
	case c == '-' && s.matchNext('>'):
		s.addToken(ARROW)
	case isDigit(s.peek()):
		s.scanNumber()
	default:
		s.scanIdentifier()
	}
}

func (s *Scanner) scanDefault(c byte) {
	if isDigit(c) {
		s.scanNumber()
	} else if isIdentChar(c) {
		s.scanIdentifier()
	} else {
		s.reportError(fmt.Sprintf("unexpected character %q", c))
	}
}

func (s *Scanner) advance() byte {
	c := s.source[s.current]
	s.current++
	if c == '\n' {
		s.line++
		s.column = 1
	} else {
		s.column++
	}
	return c
}

func (s *Scanner) matchNext(expected byte) bool {
	if s.isAtEnd() || s.source[s.current] != expected {
		return false
	}
	s.advance()
	return true
}

func (s *Scanner) peek() byte {
	if s.isAtEnd() {
		return 0
	}
	return s.source[s.current]
}

func (s *Scanner) peekNext() byte {
	if s.current+1 >= len(s.source) {
		return 0
	}
	return s.source[s.current+1]
}

func (s *Scanner) addToken(tokenType TokenType) {
	s.tokens = append(s.tokens, Token{
		Type:   tokenType,
		Lexeme: s.source[s.start:s.current],
		Position: Position{
			Line:   s.startLine,
			Column: s.startColumn,
			Offset: s.start,
		},
	})
}

func (s *Scanner) reportError(message string) {
	s.err = &LexError{
		Message:  message,
		Position: Position{Line: s.startLine, Column: s.startColumn, Offset: s.start},
		Length:   s.current - s.start,
	}
}

func (s *Scanner) isAtEnd() bool {
	return s.current >= len(s.source)
}

// Helper functions.

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

// isIdentChar reports whether c may appear in an identifier run. Digits are
// excluded so numbers and identifiers stay lexically disjoint.
func isIdentChar(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\f', '\v',
		':', '=', '.', '{', '}', '[', ']', '(', ')', '"', ',':
		return false
	}
	return !isDigit(c)
}

func (s *Scanner) scanIdentifier() {
	for !s.isAtEnd() && isIdentChar(s.peek()) {
		// an arrow ends the run: `x->y` is `x` `->` `y`
		if s.peek() == '-' && s.peekNext() == '>' {
			break
		}
		s.advance()
	}
	s.addToken(lookupIdentifier(s.source[s.start:s.current]))
}

// scanNumber is entered with the sign or the first digit already consumed.
func (s *Scanner) scanNumber() {
	for isDigit(s.peek()) {
		s.advance()
	}
	if s.peek() == '.' && isDigit(s.peekNext()) {
		s.advance() // .
		for isDigit(s.peek()) {
			s.advance()
		}
	}
	s.addToken(NUMBER)
}

func (s *Scanner) scanString() {
	for !s.isAtEnd() && s.peek() != '"' {
		if s.peek() == '\\' {
			s.advance()
			if s.isAtEnd() {
				break
			}
		}
		s.advance()
	}
	if s.isAtEnd() {
		s.reportError("unterminated string")
		return
	}
	s.advance() // closing quote
	s.addToken(STRING)
}

func lookupIdentifier(text string) TokenType {
	if t, ok := KEYWORDS[text]; ok {
		return t
	}
	return IDENTIFIER
}
