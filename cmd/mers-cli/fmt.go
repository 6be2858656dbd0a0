package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newFmtCmd(opts *rootOptions) *cobra.Command {
	var write bool

	cmd := &cobra.Command{
		Use:   "fmt <file>",
		Short: "Print a file in canonical syntax",
		Long: `Parse a file and print it back in canonical syntax, one top-level
definition per line. With -w the file is rewritten in place.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFmt(cmd, opts, args[0], write)
		},
	}
	cmd.Flags().BoolVarP(&write, "write", "w", false, "write result to the source file")
	return cmd
}

func runFmt(cmd *cobra.Command, opts *rootOptions, path string, write bool) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}
	source, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	file, err := opts.parse(path, string(source))
	if err != nil {
		printError(cmd, path, err)
		return errReported
	}

	formatted := file.String()
	if !write {
		_, err := fmt.Fprint(cmd.OutOrStdout(), formatted)
		return err
	}

	if formatted == string(source) {
		log.Debugf("%s already formatted", path)
		return nil
	}
	if err := os.WriteFile(path, []byte(formatted), info.Mode().Perm()); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	printSuccess(cmd, "Formatted %s", path)
	return nil
}
