package main

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	"mers/grammar"
	"mers/internal/ast"
	"mers/internal/config"
	"mers/internal/parser"
)

// errReported is returned once a command has already printed its failure.
var errReported = errors.New("failed")

var log = commonlog.GetLogger("mers.cli")

type rootOptions struct {
	cfgFile string
	verbose int
	noColor bool
	engine  string
	format  string

	cfg *config.Config
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "mers-cli",
		Short: "Parse mers source into syntax trees",
		Long: `mers-cli runs the mers front end: it tokenizes and parses source files
and prints the resulting definitions.

Engines:
  parser   - hand-written recursive descent parser
  grammar  - participle reference grammar`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.load(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.cfgFile, "config", "", "config file (default: ./mers.toml or ./mers.yaml)")
	flags.CountVarP(&opts.verbose, "verbose", "v", "verbose output (repeat for more)")
	flags.BoolVar(&opts.noColor, "no-color", false, "disable colored output")
	flags.StringVar(&opts.engine, "engine", "", "parser engine: parser or grammar")
	flags.StringVarP(&opts.format, "format", "f", "", "output format: tree, sexpr, json or yaml")

	rootCmd.AddCommand(
		newParseCmd(opts),
		newTokensCmd(opts),
		newFmtCmd(opts),
		newReplCmd(opts),
		newVersionCmd(),
	)
	return rootCmd
}

// load reads the config file and lets explicitly set flags override it.
func (o *rootOptions) load(cmd *cobra.Command) error {
	cfg, err := config.Load(o.cfgFile)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("engine") {
		cfg.Output.Engine = o.engine
	}
	if flags.Changed("format") {
		cfg.Output.Format = o.format
	}
	if flags.Changed("verbose") {
		cfg.Log.Verbosity = o.verbose
	}
	if o.noColor {
		cfg.Output.Color = false
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	color.NoColor = !cfg.Output.Color
	commonlog.Configure(cfg.Log.Verbosity, nil)
	log.Debugf("engine=%s format=%s", cfg.Output.Engine, cfg.Output.Format)

	o.cfg = cfg
	return nil
}

func (o *rootOptions) parse(path string, source string) (*ast.File, error) {
	if o.cfg.Output.Engine == "grammar" {
		return grammar.ParseSource(path, source)
	}
	return parser.ParseSource(path, source)
}

func printError(cmd *cobra.Command, path string, err error) {
	color.New(color.FgRed).Fprintf(cmd.ErrOrStderr(), "%s: %s\n", path, err)
}

func printSuccess(cmd *cobra.Command, format string, args ...interface{}) {
	fmt.Fprintln(cmd.ErrOrStderr(), color.GreenString(format, args...))
}
