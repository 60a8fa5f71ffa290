package syntax

import (
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"
	"unicode/utf8"
)

// SyntaxError represents a syntax error.
type SyntaxError struct {
	Span Span
	Msg  string
}

func (e *SyntaxError) Error() string {
	return e.Span.String() + ": " + e.Msg
}

// ErrorList is the ordered list of syntax errors found in one parse.
type ErrorList []*SyntaxError

func (l ErrorList) Error() string {
	switch len(l) {
	case 0:
		return "no errors"
	case 1:
		return l[0].Error()
	}
	return fmt.Sprintf("%s (and %d more errors)", l[0], len(l)-1)
}

// Parser performs syntax analysis on Snow source code.
//
// The whole token stream is buffered up front so the parser can rewind
// to any earlier token when an alternative does not match.
type Parser struct {
	scanner *Scanner

	toks []Item // token buffer, ends with _EOF
	i    int    // index of the current token in toks

	// Current token info (cached from toks[i])
	tok     Token
	lit     string
	kind    LitKind
	span    Span
	prevEnd int // end offset of the previously consumed token

	// Error handling
	errh   func(span Span, msg string)
	errors ErrorList
	bad    bool // current declaration already has an error

	depth int // expression nesting
}

// maxNesting bounds how deeply expressions may nest.
const maxNesting = 1000

// NewParser creates a new Parser for the given source.
// If errh is not nil it is called for every error in addition to the
// errors being returned by Parse.
func NewParser(filename string, src io.Reader, errh func(span Span, msg string)) *Parser {
	p := &Parser{errh: errh}
	p.scanner = NewScanner(filename, src, func(span Span, msg string) {
		p.errorAt(span, msg)
	})
	return p
}

// SetTrace passes a trace logger to the underlying scanner.
func (p *Parser) SetTrace(l *log.Logger) {
	p.scanner.SetTrace(l)
}

// fill drains the scanner into the token buffer.
func (p *Parser) fill() {
	if p.toks != nil {
		return
	}
	p.toks = p.scanner.drain(nil)
	p.reset(0)
}

// ----------------------------------------------------------------------------
// Token navigation

// load caches toks[i] in the parser.
func (p *Parser) load() {
	it := p.toks[p.i]
	p.tok, p.lit, p.kind, p.span = it.Tok, it.Lit, it.Kind, it.Span
	p.prevEnd = 0
	if p.i > 0 {
		p.prevEnd = p.toks[p.i-1].Span.End
	}
}

// next advances to the next token. It stays on the final _EOF.
func (p *Parser) next() {
	if p.i < len(p.toks)-1 {
		p.i++
	}
	p.load()
}

// peek returns the token n positions ahead of the current one.
func (p *Parser) peek(n int) Token {
	if j := p.i + n; j < len(p.toks) {
		return p.toks[j].Tok
	}
	return _EOF
}

// got reports whether the current token is tok.
// If so, it consumes the token and returns true.
func (p *Parser) got(tok Token) bool {
	if p.tok == tok {
		p.next()
		return true
	}
	return false
}

// want consumes the current token if it matches tok.
// Otherwise, reports an error and returns false.
func (p *Parser) want(tok Token) bool {
	if !p.got(tok) {
		p.unexpected(tok.String())
		return false
	}
	return true
}

// mark returns the current cursor for a later reset.
func (p *Parser) mark() int {
	return p.i
}

// reset rewinds the cursor to m.
func (p *Parser) reset(m int) {
	p.i = m
	p.load()
}

// since returns the span from offset start to the end of the last
// consumed token.
func (p *Parser) since(start int) Span {
	if p.prevEnd < start {
		return Span{Start: start, End: start}
	}
	return Span{Start: start, End: p.prevEnd}
}

// ----------------------------------------------------------------------------
// Combinators
//
// An alternative returns ok == false only if it has neither reported an
// error nor needs to keep the tokens it looked at.

// alt returns the result of the first alternative that matches,
// rewinding the cursor after each one that does not.
func (p *Parser) alt(alts ...func() (Expr, bool)) (Expr, bool) {
	m := p.mark()
	for _, f := range alts {
		if x, ok := f(); ok {
			return x, true
		}
		p.reset(m)
	}
	return nil, false
}

// many applies f until it no longer matches or an error occurs.
func (p *Parser) many(f func() (Expr, bool)) []Expr {
	var list []Expr
	for !p.bad {
		m := p.mark()
		x, ok := f()
		if !ok {
			p.reset(m)
			break
		}
		list = append(list, x)
	}
	return list
}

// list parses a comma-separated list of f up to (not including) close.
// A trailing comma is accepted.
func (p *Parser) list(close Token, f func() Expr) []Expr {
	var list []Expr
	for p.tok != close && p.tok != _EOF && !p.bad {
		list = append(list, f())
		if !p.got(_Comma) {
			break
		}
	}
	return list
}

// ----------------------------------------------------------------------------
// Error handling

// errorAt reports a syntax error at span. Only the first error of a
// declaration is recorded; the rest are usually follow-on errors.
func (p *Parser) errorAt(span Span, msg string) {
	if p.bad {
		return
	}
	p.bad = true
	p.errors = append(p.errors, &SyntaxError{Span: span, Msg: msg})
	if p.errh != nil {
		p.errh(span, msg)
	}
}

// unexpected reports the current token as not being what was expected.
func (p *Parser) unexpected(expected string) {
	if p.tok == _Error {
		p.errorAt(p.span, BadTokenMessage(p.lit))
		return
	}
	p.errorAt(p.span, "expected "+expected+", found "+p.describe())
}

// describe names the current token for error messages.
func (p *Parser) describe() string {
	switch p.tok {
	case _EOF:
		return "end of input"
	case _Name:
		return "name " + p.lit
	case _Literal:
		if p.kind == StringLit {
			return "literal " + strconv.Quote(p.lit)
		}
		return "literal " + p.lit
	}
	if p.tok.IsKeyword() {
		return "keyword " + p.tok.String()
	}
	return strconv.Quote(p.tok.String())
}

// BadTokenMessage describes the lexical error token with literal lit.
func BadTokenMessage(lit string) string {
	switch {
	case strings.HasPrefix(lit, `"`):
		return "unterminated string literal"
	case strings.HasPrefix(lit, "'"):
		return "unterminated character literal"
	}
	return fmt.Sprintf("unexpected character %q", lit)
}

// skipDecl skips to just past the next ';' so parsing can resume with the
// following declaration.
func (p *Parser) skipDecl() {
	for p.tok != _Semi && p.tok != _EOF {
		p.next()
	}
	p.got(_Semi)
}

// ----------------------------------------------------------------------------
// Parsing entry points

// Parse parses a complete source file and returns its declarations in
// order. If there were syntax errors the returned error is an ErrorList
// and the declarations that failed are represented by BadExpr nodes.
func (p *Parser) Parse() ([]Expr, error) {
	p.fill()

	var decls []Expr
	types := make(map[string][]string)
	for p.tok != _EOF {
		// Skip empty declarations
		if p.got(_Semi) {
			continue
		}
		d := p.decl()
		switch d := d.(type) {
		case *TypeDec:
			types[d.Name] = d.Types
		case *Func:
			d.Types = types[d.Name]
		}
		decls = append(decls, d)
	}

	if len(p.errors) > 0 {
		return decls, p.errors
	}
	return decls, nil
}

// ParseString parses src as a complete source file.
func ParseString(src string) ([]Expr, error) {
	return NewParser("", strings.NewReader(src), nil).Parse()
}

// ParseExpr parses src as a single expression, optionally followed by ';'.
func ParseExpr(src string) (Expr, error) {
	p := NewParser("", strings.NewReader(src), nil)
	p.fill()
	x := p.expr()
	p.got(_Semi)
	if p.tok != _EOF {
		p.unexpected("end of input")
	}
	if len(p.errors) > 0 {
		return x, p.errors
	}
	return x, nil
}

// ----------------------------------------------------------------------------
// Declarations

// decl parses one top-level declaration. On error the rest of the
// declaration is skipped and a BadExpr takes its place.
func (p *Parser) decl() Expr {
	p.bad = false
	start := p.span.Start
	m := p.mark()

	d, _ := p.alt(p.letDecl, p.enumDecl, p.typeDecl, p.funcDecl)
	if p.bad {
		// The failed declaration may already have consumed its ';'.
		if p.i == m || p.toks[p.i-1].Tok != _Semi {
			p.skipDecl()
		}
		b := &BadExpr{}
		b.span = p.since(start)
		return b
	}
	return d
}

// letDecl parses: let name params = expr ;
func (p *Parser) letDecl() (Expr, bool) {
	start := p.span.Start
	if !p.got(_Let) || p.tok != _Name {
		return nil, false
	}
	for i := 0; ; i++ {
		switch p.peek(i) {
		case _Name:
			continue
		case _Assign:
			d, ok := p.funcDecl()
			if f, isFunc := d.(*Func); isFunc {
				f.span = p.since(start)
			}
			return d, ok
		}
		return nil, false
	}
}

// enumDecl parses: enum Name = V1 T... | V2 T... ;
func (p *Parser) enumDecl() (Expr, bool) {
	if p.tok != _Enum {
		return nil, false
	}
	start := p.span.Start
	p.next()

	d := &Enum{}
	d.Name = p.name()
	p.want(_Assign)
	for !p.bad {
		d.Variants = append(d.Variants, p.variant())
		if !p.got(_Bar) {
			break
		}
	}
	p.want(_Semi)
	d.span = p.since(start)
	return d, true
}

// variant parses: Name T...
func (p *Parser) variant() Variant {
	start := p.span.Start
	v := Variant{Name: p.name()}
	for !p.bad && (p.tok == _Name || p.tok == _Lbrack) {
		v.Fields = append(v.Fields, p.typeName())
	}
	v.Span = p.since(start)
	return v
}

// typeDecl parses: name :: T1 -> T2 -> ... -> Tn ;
func (p *Parser) typeDecl() (Expr, bool) {
	if p.tok != _Name || p.peek(1) != _DColon {
		return nil, false
	}
	start := p.span.Start

	d := &TypeDec{Name: p.lit}
	p.next()
	p.next()
	d.Types = append(d.Types, p.typeName())
	for !p.bad && p.got(_Arrow) {
		d.Types = append(d.Types, p.typeName())
	}
	p.want(_Semi)
	d.span = p.since(start)
	return d, true
}

// typeName parses a type: Name or [T].
func (p *Parser) typeName() string {
	if p.got(_Lbrack) {
		elem := p.typeName()
		p.want(_Rbrack)
		return "[" + elem + "]"
	}
	return p.name()
}

// funcDecl parses: name p1 p2 ... = expr ;
// It is the last alternative and always matches.
func (p *Parser) funcDecl() (Expr, bool) {
	if p.tok != _Name {
		p.unexpected("declaration")
		return nil, true
	}
	start := p.span.Start

	d := &Func{Name: p.lit}
	p.next()
	params := p.params()
	p.want(_Assign)
	d.Body = curry(params, p.expr())
	p.want(_Semi)
	d.span = p.since(start)
	return d, true
}

// params parses zero or more parameter names.
func (p *Parser) params() []*Atom {
	var params []*Atom
	for p.tok == _Name {
		params = append(params, NewAtom(Id(p.lit), p.span))
		p.next()
	}
	return params
}

// curry wraps body in one closure per parameter, the first parameter
// outermost.
func curry(params []*Atom, body Expr) Expr {
	for i := len(params) - 1; i >= 0; i-- {
		c := &Closure{Param: params[i], Body: body}
		c.span = params[i].span.Join(body.Span())
		body = c
	}
	return body
}

// name parses an identifier and returns its text.
func (p *Parser) name() string {
	if p.tok != _Name {
		p.unexpected("name")
		return "_"
	}
	name := p.lit
	p.next()
	return name
}

// ----------------------------------------------------------------------------
// Expressions

// expr parses an expression.
func (p *Parser) expr() Expr {
	return p.binaryExpr(1)
}

// binaryExpr parses a binary expression whose operators all have
// precedence >= prec. Implements precedence climbing.
func (p *Parser) binaryExpr(prec int) Expr {
	x := p.unaryExpr()

	for !p.bad {
		oprec, assoc, ok := p.tok.Precedence()
		if !ok || oprec < prec {
			return x
		}

		op := &Binary{Op: p.tok, X: x}
		p.next() // consume operator

		// Left-associative operators bind their right operand tighter.
		next := oprec + 1
		if assoc == RightAssoc {
			next = oprec
		}
		op.Y = p.binaryExpr(next)
		op.span = x.Span().Join(op.Y.Span())
		x = op
	}
	return x
}

// unaryExpr parses a prefix operation or an application.
func (p *Parser) unaryExpr() Expr {
	p.depth++
	defer func() { p.depth-- }()
	if p.depth > maxNesting {
		p.errorAt(p.span, "expression nested too deeply")
		b := &BadExpr{}
		b.span = p.span
		return b
	}

	switch p.tok {
	case _Sub, _Not:
		op := &Unary{Op: p.tok}
		start := p.span
		p.next()
		op.X = p.unaryExpr()
		op.span = start.Join(op.X.Span())
		return op
	}
	return p.appExpr()
}

// appExpr parses a term followed by any number of juxtaposed arguments.
// All arguments go into a single App node.
func (p *Parser) appExpr() Expr {
	switch p.tok {
	case _Lambda, _If, _Let:
		return p.term()
	}

	fun := p.term()
	args := p.many(p.arg)
	if len(args) == 0 {
		return fun
	}
	app := &App{Fun: fun, Args: args}
	app.span = fun.Span().Join(args[len(args)-1].Span())
	return app
}

// arg parses a term that can appear as an argument.
func (p *Parser) arg() (Expr, bool) {
	switch p.tok {
	case _Literal, _Name, _True, _False, _Lparen, _Lbrack:
		return p.term(), true
	}
	return nil, false
}

// term parses a single operand.
func (p *Parser) term() Expr {
	switch p.tok {
	case _Literal:
		return p.literal()

	case _Name:
		a := NewAtom(Id(p.lit), p.span)
		p.next()
		return a

	case _True, _False:
		a := NewAtom(Bool(p.tok == _True), p.span)
		p.next()
		return a

	case _Lparen:
		if x, ok := p.section(); ok {
			return x
		}
		return p.parenExpr()

	case _Lbrack:
		return p.arrayLit()

	case _Lambda:
		return p.lambda()

	case _If:
		return p.ifExpr()

	case _Let:
		return p.letExpr()
	}

	p.unexpected("expression")
	b := &BadExpr{}
	b.span = p.span
	return b
}

// literal parses a number, string or character literal.
func (p *Parser) literal() Expr {
	a := NewAtom(nil, p.span)
	switch p.kind {
	case IntLit:
		n, err := strconv.ParseInt(strings.ReplaceAll(p.lit, "_", ""), 10, 64)
		if err != nil {
			p.errorAt(p.span, "malformed number literal "+p.lit)
		}
		a.Value = Int(n)

	case FloatLit:
		f, err := strconv.ParseFloat(strings.ReplaceAll(p.lit, "_", ""), 64)
		if err != nil {
			p.errorAt(p.span, "malformed number literal "+p.lit)
		}
		a.Value = Float(f)

	case StringLit:
		a.Value = String(p.lit)

	case CharLit:
		r, size := utf8.DecodeRuneInString(p.lit)
		if size == 0 || size != len(p.lit) {
			p.errorAt(p.span, "character literal must contain exactly one character")
		}
		a.Value = Char(r)
	}
	p.next()
	return a
}

// section parses an operator used as a value: (+)
func (p *Parser) section() (Expr, bool) {
	op := p.peek(1)
	if _, _, ok := op.Precedence(); !ok && op != _Not {
		return nil, false
	}
	if p.peek(2) != _Rparen {
		return nil, false
	}
	start := p.span.Start
	p.next()
	p.next()
	p.next()
	return NewAtom(Id(op.String()), p.since(start)), true
}

// parenExpr parses (expr). Parentheses are transparent: the inner node
// is returned as is.
func (p *Parser) parenExpr() Expr {
	open := p.span
	p.next()
	x := p.expr()
	if !p.got(_Rparen) {
		p.errorAt(open, "unclosed (")
	}
	return x
}

// arrayLit parses [e, e, ...].
func (p *Parser) arrayLit() Expr {
	open := p.span
	p.next()
	a := &ArrayLit{Elems: p.list(_Rbrack, p.expr)}
	if !p.got(_Rbrack) {
		if p.tok == _EOF || p.tok == _Semi {
			p.errorAt(open, "unclosed [")
		} else {
			p.unexpected(", or ]")
		}
	}
	a.span = p.since(open.Start)
	return a
}

// lambda parses \x y -> body, which is sugar for \x -> \y -> body.
func (p *Parser) lambda() Expr {
	start := p.span
	p.next()
	params := p.params()
	if len(params) == 0 {
		p.unexpected("parameter name")
	}
	p.want(_Arrow)
	body := p.expr()
	if len(params) == 0 {
		return body
	}
	x := curry(params, body)
	x.(*Closure).span = start.Join(body.Span())
	return x
}

// ifExpr parses if cond then a else b.
func (p *Parser) ifExpr() Expr {
	start := p.span.Start
	p.next()
	x := &IfElse{}
	x.Cond = p.expr()
	p.want(_Then)
	x.Then = p.expr()
	p.want(_Else)
	x.Else = p.expr()
	x.span = p.since(start)
	return x
}

// letExpr parses let x = e1, y = e2 in body and desugars it into
// immediately applied closures:
//
//	(\x -> (\y -> body) e2) e1
func (p *Parser) letExpr() Expr {
	start := p.span.Start
	p.next()

	type binding struct {
		name  *Atom
		value Expr
	}
	var binds []binding
	for !p.bad {
		name := NewAtom(Id(p.lit), p.span)
		if !p.want(_Name) {
			break
		}
		p.want(_Assign)
		binds = append(binds, binding{name, p.expr()})
		if !p.got(_Comma) {
			break
		}
	}
	p.want(_In)
	body := p.expr()

	for i := len(binds) - 1; i >= 0; i-- {
		c := &Closure{Param: binds[i].name, Body: body}
		c.span = binds[i].name.span.Join(body.Span())
		app := &App{Fun: c, Args: []Expr{binds[i].value}}
		app.span = p.since(start)
		if i > 0 {
			app.span = c.span
		}
		body = app
	}
	return body
}
