package main

import (
	"io"

	"github.com/spf13/cobra"

	"mers/internal/ast"
	"mers/internal/render"
	"mers/repl"
)

func newReplCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Start an interactive parse loop",
		RunE: func(cmd *cobra.Command, args []string) error {
			return repl.Start(repl.Options{
				HistoryFile: opts.cfg.Repl.History,
				Parse:       opts.parse,
				Render: func(w io.Writer, file *ast.File) error {
					return render.Write(w, opts.cfg.Output.Format, file)
				},
			})
		},
	}
}
