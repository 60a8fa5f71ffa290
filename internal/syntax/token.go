// Package syntax implements lexical and syntactic analysis for the Snow language.
package syntax

import "fmt"

// Token represents the type of a lexical token.
type Token uint

const (
	// Special tokens
	_EOF   Token = iota // end of file
	_Error              // lexical error

	// Literals
	_Name    // identifier: add, main, Option
	_Literal // literal value (used with LitKind)

	// Two-character operators
	_Arrow    // ->
	_FatArrow // =>
	_LArrow   // <-
	_Leq      // <=
	_Geq      // >=
	_Eql      // ==
	_Neq      // !=
	_DColon   // ::
	_Pipe     // |>

	// Single-character operators
	_Add    // +
	_Sub    // -
	_Mul    // *
	_Div    // /
	_Colon  // :
	_Bar    // |
	_Not    // !
	_Lss    // <
	_Gtr    // >
	_Assign // =
	_Lambda // \ or λ

	// Delimiters
	_Lparen // (
	_Rparen // )
	_Lbrack // [
	_Rbrack // ]
	_Lbrace // {
	_Rbrace // }
	_Comma  // ,
	_Semi   // ;

	// Keywords
	_Else
	_Enum
	_False
	_If
	_In
	_Let
	_Then
	_True

	tokenCount
)

// tokenNames maps tokens to their string representation.
var tokenNames = [...]string{
	_EOF:   "EOF",
	_Error: "ERROR",

	_Name:    "NAME",
	_Literal: "LITERAL",

	_Arrow:    "->",
	_FatArrow: "=>",
	_LArrow:   "<-",
	_Leq:      "<=",
	_Geq:      ">=",
	_Eql:      "==",
	_Neq:      "!=",
	_DColon:   "::",
	_Pipe:     "|>",

	_Add:    "+",
	_Sub:    "-",
	_Mul:    "*",
	_Div:    "/",
	_Colon:  ":",
	_Bar:    "|",
	_Not:    "!",
	_Lss:    "<",
	_Gtr:    ">",
	_Assign: "=",
	_Lambda: "\\",

	_Lparen: "(",
	_Rparen: ")",
	_Lbrack: "[",
	_Rbrack: "]",
	_Lbrace: "{",
	_Rbrace: "}",
	_Comma:  ",",
	_Semi:   ";",

	_Else:  "else",
	_Enum:  "enum",
	_False: "false",
	_If:    "if",
	_In:    "in",
	_Let:   "let",
	_Then:  "then",
	_True:  "true",
}

// String returns the string representation of the token.
func (t Token) String() string {
	if t < tokenCount {
		return tokenNames[t]
	}
	return fmt.Sprintf("token(%d)", t)
}

// IsKeyword reports whether t is a keyword token.
func (t Token) IsKeyword() bool {
	return t >= _Else && t <= _True
}

// IsLiteral reports whether t is a literal token.
func (t Token) IsLiteral() bool {
	return t == _Literal
}

// IsOperator reports whether t is an operator token.
func (t Token) IsOperator() bool {
	return t >= _Arrow && t <= _Lambda
}

// IsEOF reports whether t is the EOF token.
func (t Token) IsEOF() bool {
	return t == _EOF
}

// IsError reports whether t is a lexical error token.
func (t Token) IsError() bool {
	return t == _Error
}

// Exported operator tokens for consumers of the AST.
const (
	Add  Token = _Add   // +
	Sub  Token = _Sub   // -
	Mul  Token = _Mul   // *
	Div  Token = _Div   // /
	Eql  Token = _Eql   // ==
	Neq  Token = _Neq   // !=
	Lss  Token = _Lss   // <
	Leq  Token = _Leq   // <=
	Gtr  Token = _Gtr   // >
	Geq  Token = _Geq   // >=
	Not  Token = _Not   // !
	Cons Token = _Colon // :
	Pipe Token = _Pipe  // |>
)

// Assoc is the associativity of a binary operator.
type Assoc uint8

const (
	LeftAssoc Assoc = iota
	RightAssoc
)

type binop struct {
	prec  int
	assoc Assoc
}

// binops is the precedence table used by the expression parser.
// Higher precedence binds tighter.
var binops = map[Token]binop{
	_Pipe:  {1, LeftAssoc},
	_Eql:   {2, LeftAssoc},
	_Neq:   {2, LeftAssoc},
	_Lss:   {3, LeftAssoc},
	_Leq:   {3, LeftAssoc},
	_Gtr:   {3, LeftAssoc},
	_Geq:   {3, LeftAssoc},
	_Colon: {4, RightAssoc},
	_Add:   {5, LeftAssoc},
	_Sub:   {5, LeftAssoc},
	_Mul:   {6, LeftAssoc},
	_Div:   {6, LeftAssoc},
}

// Precedence returns the binding strength and associativity of t as a
// binary operator. ok is false if t is not a binary operator.
func (t Token) Precedence() (prec int, assoc Assoc, ok bool) {
	b, ok := binops[t]
	return b.prec, b.assoc, ok
}

// LookupOperator returns the binary or unary operator token spelled s.
func LookupOperator(s string) (Token, bool) {
	for t := _Arrow; t <= _Lambda; t++ {
		if tokenNames[t] == s {
			return t, true
		}
	}
	return 0, false
}

// LitKind represents the kind of a literal token.
type LitKind uint8

const (
	IntLit    LitKind = iota // 123, 1_000
	FloatLit                 // 3.14
	StringLit                // "hello"
	CharLit                  // 'c'
)

// litKindNames maps literal kinds to their string representation.
var litKindNames = [...]string{
	IntLit:    "int",
	FloatLit:  "float",
	StringLit: "string",
	CharLit:   "char",
}

// String returns the string representation of the literal kind.
func (k LitKind) String() string {
	if k <= CharLit {
		return litKindNames[k]
	}
	return fmt.Sprintf("LitKind(%d)", k)
}

// keywords maps keyword strings to their token type.
var keywords = map[string]Token{
	"else":  _Else,
	"enum":  _Enum,
	"false": _False,
	"if":    _If,
	"in":    _In,
	"let":   _Let,
	"then":  _Then,
	"true":  _True,
}

// LookupKeyword returns the token for the given identifier string.
// If the identifier is a keyword, returns the keyword token.
// Otherwise, returns _Name.
func LookupKeyword(ident string) Token {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return _Name
}

// Item is a single scanned token together with its literal and span.
type Item struct {
	Tok  Token
	Kind LitKind // only valid when Tok == _Literal
	Lit  string
	Span Span
}

func (it Item) String() string {
	switch it.Tok {
	case _Name, _Literal, _Error:
		return fmt.Sprintf("%s(%q) @ %s", it.Tok, it.Lit, it.Span)
	}
	return fmt.Sprintf("%s @ %s", it.Tok, it.Span)
}
