// Package main implements the Snow interpreter entry point.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"strings"

	"github.com/kr/pretty"

	"github.com/you-not-fish/snow/internal/codegen"
	"github.com/you-not-fish/snow/internal/diag"
	"github.com/you-not-fish/snow/internal/eval"
	"github.com/you-not-fish/snow/internal/syntax"
)

// Interpreter flags
var (
	srcExpr    = flag.String("e", "", "Program source (instead of a file)")
	emitTokens = flag.Bool("emit-tokens", false, "Output token stream")
	emitAST    = flag.Bool("emit-ast", false, "Output AST")
	astFormat  = flag.String("ast-format", "text", "AST output format (text, sexpr, json or go)")
	emitJS     = flag.Bool("emit-js", false, "Output JavaScript")
	traceLexer = flag.Bool("trace-lexer", false, "Log every scanned token to stderr")
	trace      = flag.Bool("trace", false, "Log every function call to stderr")
	entry      = flag.String("entry", "main", "Entry point function")
	maxDepth   = flag.Int("max-depth", eval.DefaultMaxDepth, "Maximum evaluation depth")
	version    = flag.Bool("version", false, "Print version")
)

// Version information
const Version = "0.1.0-dev"

func main() {
	log.SetFlags(0)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Snow %s\n\n", Version)
		fmt.Fprintf(os.Stderr, "Usage: snowc [options] [file.snow]\n\n")
		fmt.Fprintf(os.Stderr, "Without a file or -e, snowc starts an interactive session.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	if *version {
		fmt.Printf("snowc version %s\n", Version)
		fmt.Printf("go version %s\n", runtime.Version())
		os.Exit(0)
	}

	if *srcExpr == "" && flag.NArg() == 0 {
		os.Exit(runREPL())
	}

	filename, src, err := loadSource(*srcExpr, flag.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	switch {
	case *emitTokens:
		os.Exit(runEmitTokens(filename, src))
	case *emitAST:
		os.Exit(runEmitAST(filename, src))
	case *emitJS:
		os.Exit(runEmitJS(filename, src))
	}
	os.Exit(runProgram(filename, src))
}

// loadSource returns the program text given with -e, or the contents of
// the single file named in args.
func loadSource(expr string, args []string) (string, []byte, error) {
	if expr != "" {
		if len(args) > 0 {
			return "", nil, fmt.Errorf("cannot use -e with input file %s", args[0])
		}
		return "<expr>", []byte(expr), nil
	}
	if len(args) > 1 {
		return "", nil, fmt.Errorf("too many input files: %s", strings.Join(args, " "))
	}
	src, err := os.ReadFile(args[0])
	if err != nil {
		return "", nil, err
	}
	return args[0], src, nil
}

// parse parses src, tracing tokens to stderr if requested.
func parse(filename string, src []byte) ([]syntax.Expr, error) {
	p := syntax.NewParser(filename, bytes.NewReader(src), nil)
	if *traceLexer {
		p.SetTrace(log.New(os.Stderr, "lexer: ", 0))
	}
	return p.Parse()
}

// runProgram evaluates the entry point of the program and prints its value.
func runProgram(filename string, src []byte) int {
	decls, err := parse(filename, src)
	if err != nil {
		diag.Report(os.Stderr, filename, src, err)
		return 1
	}

	conf := &eval.Config{
		Stdout:   os.Stdout,
		MaxDepth: *maxDepth,
	}
	if *trace {
		conf.Trace = log.New(os.Stderr, "eval: ", 0)
	}

	v, err := eval.Run(decls, *entry, conf)
	if err != nil {
		diag.Report(os.Stderr, filename, src, err)
		return 1
	}
	fmt.Println(syntax.Quote(v))
	return 0
}

// runEmitAST parses the input and outputs the AST.
func runEmitAST(filename string, src []byte) int {
	decls, err := parse(filename, src)

	// Print errors first
	if err != nil {
		diag.Report(os.Stderr, filename, src, err)
	}

	switch *astFormat {
	case "json":
		if err := syntax.FprintJSONAll(os.Stdout, decls); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			return 1
		}
	case "sexpr":
		for _, d := range decls {
			fmt.Println(syntax.ExprString(d))
		}
	case "go":
		for _, d := range decls {
			fmt.Printf("%# v\n", pretty.Formatter(d))
		}
	case "text":
		syntax.FprintAll(os.Stdout, decls)
	default:
		fmt.Fprintf(os.Stderr, "error: unknown AST format %q\n", *astFormat)
		return 1
	}

	if err != nil {
		return 1
	}
	return 0
}

// runEmitJS parses the input and outputs its JavaScript translation.
func runEmitJS(filename string, src []byte) int {
	decls, err := parse(filename, src)
	if err != nil {
		diag.Report(os.Stderr, filename, src, err)
		return 1
	}
	if err := codegen.GenerateJS(os.Stdout, decls); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	return 0
}

// runEmitTokens scans the input and prints all tokens with positions.
func runEmitTokens(filename string, src []byte) int {
	s := syntax.NewScanner(filename, bytes.NewReader(src), nil)
	if *traceLexer {
		s.SetTrace(log.New(os.Stderr, "lexer: ", 0))
	}

	// Print header
	fmt.Printf("%-16s %-10s %-10s %s\n", "POSITION", "SPAN", "TOKEN", "LITERAL")
	fmt.Printf("%-16s %-10s %-10s %s\n", strings.Repeat("-", 16), strings.Repeat("-", 10), strings.Repeat("-", 10), strings.Repeat("-", 20))

	var bad syntax.ErrorList
	for {
		s.Next()
		tok := s.Token()
		span := s.Span()
		pos := syntax.Position(filename, src, span.Start)

		fmt.Printf("%-16s %-10s %-10s %s\n", pos, span, tok, formatLiteral(s.Literal()))

		if tok.IsError() {
			bad = append(bad, &syntax.SyntaxError{Span: span, Msg: syntax.BadTokenMessage(s.Literal())})
		}
		if tok.IsEOF() {
			break
		}
	}

	// Print any errors
	if len(bad) > 0 {
		fmt.Println()
		diag.Report(os.Stderr, filename, src, bad)
		return 1
	}
	return 0
}

// formatLiteral formats a literal for display, escaping special characters.
func formatLiteral(lit string) string {
	if lit == "" {
		return "\"\""
	}

	// Show the content with escapes visible for readability
	var b strings.Builder
	b.WriteRune('"')
	for _, r := range lit {
		switch r {
		case '\n':
			b.WriteString("\\n")
		case '\t':
			b.WriteString("\\t")
		case '\r':
			b.WriteString("\\r")
		case '\\':
			b.WriteString("\\\\")
		case '"':
			b.WriteString("\\\"")
		default:
			b.WriteRune(r)
		}
	}
	b.WriteRune('"')
	return b.String()
}
