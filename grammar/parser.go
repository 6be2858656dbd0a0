package grammar

import (
	"errors"
	"fmt"
	"os"

	"github.com/alecthomas/participle/v2"

	"mers/internal/ast"
	"mers/internal/parser"
)

var fileParser = participle.MustBuild[File](
	participle.Lexer(MersLexer),
	participle.UseLookahead(2),
)

// ParseSource parses source with the participle grammar and lowers the result.
// Errors are the same *parser.LexError and *parser.ParseError types the
// hand-written parser returns.
func ParseSource(path string, source string) (*ast.File, error) {
	tree, err := ParseTree(path, source)
	if err != nil {
		return nil, err
	}
	return Lower(path, tree)
}

// ParseTree returns the participle tree without lowering it, so no target
// or chain link restrictions have been checked yet.
func ParseTree(path string, source string) (*File, error) {
	if _, err := parser.Tokenize(source); err != nil {
		return nil, err
	}

	tree, err := fileParser.ParseString(path, source)
	if err != nil {
		return nil, convertError(err)
	}
	return tree, nil
}

func ParseFile(path string) (*ast.File, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return ParseSource(path, string(source))
}

// convertError maps a participle error onto a *parser.ParseError.
func convertError(err error) error {
	var unexpected *participle.UnexpectedTokenError
	if errors.As(err, &unexpected) {
		expected := unexpected.Expect
		if expected == "" {
			expected = "definition"
		}
		return &parser.ParseError{
			Position: position(unexpected.Unexpected.Pos),
			Expected: expected,
			Found:    describeToken(unexpected.Unexpected),
		}
	}

	var perr participle.Error
	if errors.As(err, &perr) {
		return &parser.ParseError{
			Position: position(perr.Position()),
			Expected: "definition",
			Found:    perr.Message(),
		}
	}
	return err
}
