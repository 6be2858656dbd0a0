// Package repl SPDX-License-Identifier: Apache-2.0
package repl

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"
	"github.com/tliron/commonlog"

	"mers/internal/ast"
)

const (
	PROMPT   = "mers> "
	CONTINUE = "...   "
)

var log = commonlog.GetLogger("mers.repl")

type ParseFunc func(path string, source string) (*ast.File, error)

type RenderFunc func(w io.Writer, file *ast.File) error

// Session accumulates input lines until brackets balance, then parses and
// renders what was entered. It does no terminal handling of its own.
type Session struct {
	parse  ParseFunc
	render RenderFunc
	out    io.Writer
	errOut io.Writer

	buf      strings.Builder
	depth    int
	inString bool
}

func NewSession(parse ParseFunc, render RenderFunc, out io.Writer, errOut io.Writer) *Session {
	return &Session{parse: parse, render: render, out: out, errOut: errOut}
}

// Pending reports whether a multi-line entry is still open.
func (s *Session) Pending() bool {
	return s.depth > 0 || s.inString
}

// Reset drops any partially entered input.
func (s *Session) Reset() {
	s.buf.Reset()
	s.depth = 0
	s.inString = false
}

// Feed adds one line of input. It returns false once the user typed exit.
func (s *Session) Feed(line string) bool {
	if !s.Pending() && strings.TrimSpace(line) == "exit" {
		return false
	}

	s.scanBrackets(line)
	s.buf.WriteString(line)
	s.buf.WriteString("\n")

	if s.Pending() {
		return true
	}

	source := s.buf.String()
	s.Reset()
	if strings.TrimSpace(source) == "" {
		return true
	}

	file, err := s.parse("<repl>", source)
	if err != nil {
		color.New(color.FgRed).Fprintf(s.errOut, "error: %s\n", err)
		return true
	}
	if err := s.render(s.out, file); err != nil {
		log.Errorf("render failed: %s", err)
		color.New(color.FgRed).Fprintf(s.errOut, "error: %s\n", err)
	}
	return true
}

// scanBrackets tracks `{`/`(` nesting outside string literals. A closing
// bracket too many is left for the parser to report.
func (s *Session) scanBrackets(line string) {
	for i := 0; i < len(line); i++ {
		c := line[i]
		if s.inString {
			switch c {
			case '\\':
				i++
			case '"':
				s.inString = false
			}
			continue
		}
		switch c {
		case '"':
			s.inString = true
		case '{', '(':
			s.depth++
		case '}', ')':
			if s.depth > 0 {
				s.depth--
			}
		}
	}
}

type Options struct {
	HistoryFile string
	Parse       ParseFunc
	Render      RenderFunc
}

// Start runs the interactive loop until exit, Ctrl+D or a readline failure.
func Start(opts Options) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:            color.GreenString(PROMPT),
		HistoryFile:       opts.HistoryFile,
		InterruptPrompt:   "^C",
		EOFPrompt:         "exit",
		HistorySearchFold: true,
	})
	if err != nil {
		return fmt.Errorf("readline init failed: %w", err)
	}
	defer rl.Close()

	log.Debugf("history file: %s", opts.HistoryFile)
	fmt.Fprintf(rl.Stdout(), "%s %s\n\n",
		color.New(color.Bold, color.FgCyan).Sprint("mers REPL"),
		color.HiBlackString("(type 'exit' or Ctrl+D to quit)"))

	session := NewSession(opts.Parse, opts.Render, rl.Stdout(), rl.Stderr())
	for {
		if session.Pending() {
			rl.SetPrompt(color.HiBlackString(CONTINUE))
		} else {
			rl.SetPrompt(color.GreenString(PROMPT))
		}

		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			if session.Pending() {
				session.Reset()
				continue
			}
			fmt.Fprintln(rl.Stdout(), color.HiBlackString("(use 'exit' or Ctrl+D to quit)"))
			continue
		}
		if err == io.EOF {
			fmt.Fprintln(rl.Stdout())
			return nil
		}
		if err != nil {
			return err
		}

		if !session.Feed(line) {
			return nil
		}
	}
}
