package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"mers/internal/ast"
	"mers/internal/render"
)

type parseOutcome struct {
	file *ast.File
	err  error
}

func newParseCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "parse [files...]",
		Short: "Parse files and print their syntax trees",
		Long: `Parse one or more mers files and print each tree in the configured format.

Files are parsed concurrently and printed in argument order. With no
arguments source is read from standard input.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(cmd, opts, args)
		},
	}
}

func runParse(cmd *cobra.Command, opts *rootOptions, paths []string) error {
	startTime := time.Now()

	if len(paths) == 0 {
		source, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
		file, err := opts.parse("<stdin>", string(source))
		return reportParse(cmd, opts, []string{"<stdin>"}, []parseOutcome{{file, err}}, startTime)
	}

	outcomes := make([]parseOutcome, len(paths))
	var g errgroup.Group
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			source, err := os.ReadFile(path)
			if err != nil {
				outcomes[i].err = fmt.Errorf("failed to read file: %w", err)
				return nil
			}
			outcomes[i].file, outcomes[i].err = opts.parse(path, string(source))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	return reportParse(cmd, opts, paths, outcomes, startTime)
}

func reportParse(cmd *cobra.Command, opts *rootOptions, paths []string, outcomes []parseOutcome, startTime time.Time) error {
	out := cmd.OutOrStdout()
	failed := 0

	for i, o := range outcomes {
		if o.err != nil {
			printError(cmd, paths[i], o.err)
			failed++
			continue
		}
		if len(paths) > 1 {
			fmt.Fprintln(out, color.CyanString("%s:", paths[i]))
		}
		if err := render.Write(out, opts.cfg.Output.Format, o.file); err != nil {
			return err
		}
	}

	duration := formatDuration(time.Since(startTime))
	if failed > 0 {
		color.New(color.FgRed).Fprintf(cmd.ErrOrStderr(), "Parsing failed for %d of %d file(s) after %s\n", failed, len(paths), duration)
		return errReported
	}
	printSuccess(cmd, "Successfully parsed %d file(s) in %s", len(paths), duration)
	return nil
}
