package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"mers/internal/parser"
)

func newTokensCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "tokens <file>",
		Short: "Print the token stream of a file as a table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTokens(cmd, args[0])
		},
	}
}

func runTokens(cmd *cobra.Command, path string) error {
	source, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	tokens, err := parser.Tokenize(string(source))
	if err != nil {
		printError(cmd, path, err)
		return errReported
	}

	table := tablewriter.NewWriter(cmd.OutOrStdout())
	table.SetHeader([]string{"Kind", "Lexeme", "Position"})
	table.SetAutoWrapText(false)
	for _, tok := range tokens {
		table.Append([]string{
			tok.Type.String(),
			strconv.Quote(tok.Lexeme),
			fmt.Sprintf("%d:%d", tok.Position.Line, tok.Position.Column),
		})
	}
	table.Render()
	return nil
}
