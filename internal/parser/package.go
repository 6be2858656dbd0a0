package parser

import (
	"fmt"
	"os"

	"mers/internal/ast"
)

// ParseSource tokenizes and parses one source unit. The first LexError or
// ParseError is returned and no partial tree is produced.
func ParseSource(path string, source string) (*ast.File, error) {
	tokens, err := Tokenize(source)
	if err != nil {
		return nil, err
	}

	return NewParser(path, tokens).ParseFile()
}

func ParseFile(path string) (*ast.File, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	return ParseSource(path, string(source))
}
