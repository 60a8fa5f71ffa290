package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	"github.com/you-not-fish/snow/internal/diag"
	"github.com/you-not-fish/snow/internal/eval"
	"github.com/you-not-fish/snow/internal/syntax"
)

const (
	historyFile = ".snow_history"
	promptMain  = "snow> "
	promptCont  = "  ... "
	replName    = "<repl>"
)

const helpText = `REPL commands:
  :help          Show this message
  :env           List global definitions
  :clear         Clear the screen
  :quit | :exit  Exit the REPL

Enter a declaration (add x y = x + y;) to define it, or an expression
(add 1 2) to evaluate it. Input continues on the next line until it is
complete.
`

// runREPL runs an interactive session on the terminal.
func runREPL() int {
	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	conf := &eval.Config{Stdout: os.Stdout, MaxDepth: *maxDepth}
	if *trace {
		conf.Trace = log.New(os.Stderr, "eval: ", 0)
	}
	sess := newSession(eval.New(nil, conf), os.Stdout, os.Stderr)

	fmt.Printf("Snow %s REPL\nCtrl+C cancels input, Ctrl+D exits. Type :help for help.\n", Version)

	var input strings.Builder
	for {
		prompt := promptMain
		if input.Len() > 0 {
			prompt = promptCont
		}
		line, err := ln.Prompt(prompt)
		if errors.Is(err, io.EOF) {
			fmt.Println()
			return 0
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			input.Reset()
			continue
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			return 1
		}

		if input.Len() == 0 && strings.HasPrefix(strings.TrimSpace(line), ":") {
			if sess.command(strings.TrimSpace(line)) {
				return 0
			}
			continue
		}

		if input.Len() > 0 {
			input.WriteByte('\n')
		}
		input.WriteString(line)
		if sess.exec(input.String()) {
			continue
		}
		if src := strings.TrimSpace(input.String()); src != "" {
			ln.AppendHistory(strings.ReplaceAll(src, "\n", " "))
		}
		input.Reset()
	}
}

// A session holds the global definitions entered so far.
type session struct {
	in   *eval.Interpreter
	w    io.Writer // values and command output
	errw io.Writer // diagnostics
}

func newSession(in *eval.Interpreter, w, errw io.Writer) *session {
	return &session{in: in, w: w, errw: errw}
}

// exec evaluates src as an expression or adds it as declarations. It
// reports whether src is incomplete and more input is needed.
func (s *session) exec(src string) (more bool) {
	trimmed := strings.TrimSpace(src)
	if trimmed == "" {
		return false
	}

	x, exprErr := syntax.ParseExpr(src)
	if exprErr == nil {
		v, err := s.in.Eval(x, nil)
		if err != nil {
			diag.Report(s.errw, replName, []byte(src), err)
			return false
		}
		fmt.Fprintln(s.w, syntax.Quote(v))
		return false
	}

	decls, declErr := syntax.ParseString(src)
	if declErr == nil {
		s.declare(decls)
		return false
	}

	if !strings.HasSuffix(trimmed, ";") && (incomplete(src, exprErr) || incomplete(src, declErr)) {
		return true
	}

	// Input ending in ';' was meant as declarations.
	err := exprErr
	if strings.HasSuffix(trimmed, ";") {
		err = declErr
	}
	diag.Report(s.errw, replName, []byte(src), err)
	return false
}

func (s *session) declare(decls []syntax.Expr) {
	for _, d := range decls {
		switch d := d.(type) {
		case *syntax.Func:
			s.in.Define(d)
			fmt.Fprintf(s.w, "defined %s\n", d.Name)
		case *syntax.Enum:
			fmt.Fprintf(s.w, "declared enum %s\n", d.Name)
		case *syntax.TypeDec:
			fmt.Fprintf(s.w, "declared %s :: %s\n", d.Name, strings.Join(d.Types, " -> "))
		}
	}
}

// command runs a REPL command and reports whether the session should end.
func (s *session) command(line string) (quit bool) {
	fields := strings.Fields(line)
	switch fields[0] {
	case ":quit", ":exit":
		return true
	case ":help":
		fmt.Fprint(s.w, helpText)
	case ":env":
		env := s.in.Globals()
		names := env.Names()
		if len(names) == 0 {
			fmt.Fprintln(s.w, "no definitions")
		}
		for _, name := range names {
			body, _ := env.Lookup(name)
			fmt.Fprintf(s.w, "%s = %s\n", name, syntax.ExprString(body))
		}
	case ":clear":
		fmt.Fprint(s.w, "\x1b[2J\x1b[H")
	default:
		fmt.Fprintf(s.w, "unknown command %s. Type :help for help.\n", fields[0])
	}
	return false
}

// incomplete reports whether err was caused by src ending too early.
func incomplete(src string, err error) bool {
	var list syntax.ErrorList
	if !errors.As(err, &list) {
		return false
	}
	for _, e := range list {
		switch {
		case strings.HasSuffix(e.Msg, "found end of input"):
			return true
		case e.Msg == "unclosed (" && strings.Count(src, "(") > strings.Count(src, ")"):
			return true
		case e.Msg == "unclosed [" && strings.Count(src, "[") > strings.Count(src, "]"):
			return true
		}
	}
	return false
}
