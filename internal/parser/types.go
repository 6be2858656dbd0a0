package parser

// regenerate tokentype_string.go with `go generate ./internal/parser`
//
//go:generate stringer -type=TokenType
type TokenType int

const (
	// Special tokens
	ILLEGAL TokenType = iota
	EOF

	// Delimiters
	BLOCK_START
	BLOCK_END
	TUPLE_START
	TUPLE_END
	TUPLE_SEPARATOR

	// Connectives
	CHAIN_DOT
	ARROW
	COLON_EQUALS
	EQUALS

	// Keywords
	IF
	ELSE

	// Literals + identifiers
	STRING
	NUMBER
	IDENTIFIER
)

type Position struct {
	Line   int // 1-based
	Column int // 1-based
	Offset int // 0-based absolute index in input
}
