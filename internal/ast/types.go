package ast

type NodeType int

// regenerate nodetype_string.go with `go generate ./internal/ast`
//
//go:generate stringer -type=NodeType
const (
	ILLEGAL NodeType = iota

	// Root
	FILE

	// Postfix extensions of a primary
	INIT
	ASSIGN
	FUNC
	CHAIN

	// Keyword constructs
	IF

	// Primaries
	BLOCK
	TUPLE
	STRING
	NUMBER
	VARIABLE
)
