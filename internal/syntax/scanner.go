package syntax

import (
	"io"
	"log"
	"strings"
)

// Scanner performs lexical analysis on Snow source code.
// It is single pass: once EOF is reached every further call to Next
// yields EOF again.
type Scanner struct {
	source // embedded character cursor

	// Current token info
	tok  Token   // token type
	lit  string  // token literal (identifier name, number, string content)
	kind LitKind // literal kind (only valid when tok == _Literal)
	sp   Span    // token span

	trace *log.Logger // if set, every token is logged
}

// NewScanner creates a new Scanner for the given source.
// The errh function is called if the source cannot be read; lexical
// errors are reported as _Error tokens instead.
func NewScanner(filename string, src io.Reader, errh func(span Span, msg string)) *Scanner {
	return &Scanner{source: *newSource(filename, src, errh)}
}

// SetTrace enables token tracing to l. A nil logger disables it.
func (s *Scanner) SetTrace(l *log.Logger) {
	s.trace = l
}

// Next advances to the next token.
func (s *Scanner) Next() {
redo:
	for isWhitespace(s.ch) {
		s.nextch()
	}
	s.resetSpan()

	s.lit = ""
	switch {
	case s.ch < 0:
		s.tok = _EOF

	case isDigit(s.ch):
		s.scanNumber()

	case isLetter(s.ch):
		s.scanIdent()

	case s.ch == '"':
		s.scanQuoted('"', StringLit)

	case s.ch == '\'':
		s.scanQuoted('\'', CharLit)

	case s.ch == '-' && s.peek() == '-':
		s.skipLineComment()
		goto redo

	default:
		s.scanOperator()
	}

	s.sp = s.span()
	if s.trace != nil {
		s.trace.Printf("%s @ %s", s.tok, s.sp)
	}
}

// Token returns the current token type.
func (s *Scanner) Token() Token {
	return s.tok
}

// Literal returns the current token's literal value.
func (s *Scanner) Literal() string {
	return s.lit
}

// LitKind returns the current literal's kind (only valid when Token() == _Literal).
func (s *Scanner) LitKind() LitKind {
	return s.kind
}

// Span returns the current token's span.
func (s *Scanner) Span() Span {
	return s.sp
}

// Item returns the current token as an Item.
func (s *Scanner) Item() Item {
	return Item{Tok: s.tok, Kind: s.kind, Lit: s.lit, Span: s.sp}
}

// ScanAll scans src to the end and returns every token, the last one
// being EOF.
func ScanAll(filename string, src io.Reader) ([]Item, error) {
	var readErr error
	s := NewScanner(filename, src, func(_ Span, msg string) {
		if readErr == nil {
			readErr = &SyntaxError{Msg: msg}
		}
	})
	return s.drain(nil), readErr
}

// drain scans to the end of input and appends every token to items,
// the last one being EOF.
func (s *Scanner) drain(items []Item) []Item {
	for {
		s.Next()
		items = append(items, s.Item())
		if s.tok == _EOF {
			return items
		}
	}
}

// scanIdent scans an identifier or keyword.
func (s *Scanner) scanIdent() {
	s.nextch()
	for isIdentChar(s.ch) {
		s.nextch()
	}
	s.lit = s.text()
	s.tok = LookupKeyword(s.lit)
}

// scanNumber scans a number literal. A run containing a decimal point is a
// float; validation of the digits is left to the parser.
func (s *Scanner) scanNumber() {
	s.kind = IntLit
	for isNumberChar(s.ch) {
		if s.ch == '.' {
			s.kind = FloatLit
		}
		s.nextch()
	}
	s.lit = s.text()
	s.tok = _Literal
}

// scanQuoted scans a string or character literal. There are no escape
// sequences: the literal runs up to the next matching quote.
// A missing closing quote produces an _Error token holding the partial text.
func (s *Scanner) scanQuoted(quote rune, kind LitKind) {
	s.nextch() // skip opening quote
	var b strings.Builder
	for s.ch != quote {
		if s.ch < 0 {
			s.tok = _Error
			s.lit = s.text()
			return
		}
		b.WriteRune(s.ch)
		s.nextch()
	}
	s.nextch() // skip closing quote
	s.tok = _Literal
	s.kind = kind
	s.lit = b.String()
}

// skipLineComment skips a comment from -- to the end of the line.
func (s *Scanner) skipLineComment() {
	for s.ch != '\n' && s.ch >= 0 {
		s.nextch()
	}
}

// twoCharOps lists the two-character operators, matched before any
// single-character operator.
var twoCharOps = map[[2]rune]Token{
	{'-', '>'}: _Arrow,
	{'=', '>'}: _FatArrow,
	{'<', '-'}: _LArrow,
	{'<', '='}: _Leq,
	{'>', '='}: _Geq,
	{'=', '='}: _Eql,
	{'!', '='}: _Neq,
	{':', ':'}: _DColon,
	{'|', '>'}: _Pipe,
}

var oneCharOps = map[rune]Token{
	'+':  _Add,
	'-':  _Sub,
	'*':  _Mul,
	'/':  _Div,
	':':  _Colon,
	'|':  _Bar,
	'!':  _Not,
	'<':  _Lss,
	'>':  _Gtr,
	'=':  _Assign,
	'\\': _Lambda,
	'λ':  _Lambda,
	'(':  _Lparen,
	')':  _Rparen,
	'[':  _Lbrack,
	']':  _Rbrack,
	'{':  _Lbrace,
	'}':  _Rbrace,
	',':  _Comma,
	';':  _Semi,
}

// scanOperator scans an operator or delimiter, longest match first.
// Unknown characters produce an _Error token carrying the character.
func (s *Scanner) scanOperator() {
	ch := s.ch
	if tok, ok := twoCharOps[[2]rune{ch, s.peek()}]; ok {
		s.nextch()
		s.nextch()
		s.tok = tok
		s.lit = tok.String()
		return
	}

	s.nextch()
	if tok, ok := oneCharOps[ch]; ok {
		s.tok = tok
		s.lit = s.text()
		return
	}

	s.tok = _Error
	s.lit = s.text()
}
