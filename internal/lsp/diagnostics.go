package lsp

import (
	"errors"

	protocol "github.com/tliron/glsp/protocol_3_16"

	"mers/internal/parser"
)

// ConvertError turns a lex or parse error into the diagnostics published for
// a document. Both stages stop at the first error, so there is at most one.
func ConvertError(err error) []protocol.Diagnostic {
	if err == nil {
		return nil
	}

	var lexErr *parser.LexError
	if errors.As(err, &lexErr) {
		length := lexErr.Length
		if length < 1 {
			length = 1
		}
		return []protocol.Diagnostic{
			newDiagnostic(lexErr.Position, length, "mers-lexer", lexErr.Message),
		}
	}

	var parseErr *parser.ParseError
	if errors.As(err, &parseErr) {
		return []protocol.Diagnostic{
			newDiagnostic(parseErr.Position, 1, "mers-parser",
				"expected "+parseErr.Expected+", found "+parseErr.Found),
		}
	}

	return []protocol.Diagnostic{
		newDiagnostic(parser.Position{Line: 1, Column: 1}, 1, "mers", err.Error()),
	}
}

func newDiagnostic(pos parser.Position, length int, source, message string) protocol.Diagnostic {
	severity := protocol.DiagnosticSeverityError
	line := uint32(pos.Line - 1)
	char := uint32(pos.Column - 1)

	return protocol.Diagnostic{
		Range: protocol.Range{
			Start: protocol.Position{Line: line, Character: char},
			End:   protocol.Position{Line: line, Character: char + uint32(length)},
		},
		Severity: &severity,
		Source:   &source,
		Message:  message,
	}
}
