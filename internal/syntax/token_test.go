package syntax

import "testing"

func TestTokenString(t *testing.T) {
	tests := []struct {
		tok  Token
		want string
	}{
		// Special tokens
		{_EOF, "EOF"},
		{_Error, "ERROR"},

		// Literals
		{_Name, "NAME"},
		{_Literal, "LITERAL"},

		// Operators
		{_Arrow, "->"},
		{_FatArrow, "=>"},
		{_LArrow, "<-"},
		{_Leq, "<="},
		{_Geq, ">="},
		{_Eql, "=="},
		{_Neq, "!="},
		{_DColon, "::"},
		{_Pipe, "|>"},
		{_Add, "+"},
		{_Sub, "-"},
		{_Mul, "*"},
		{_Div, "/"},
		{_Colon, ":"},
		{_Bar, "|"},
		{_Not, "!"},
		{_Lss, "<"},
		{_Gtr, ">"},
		{_Assign, "="},
		{_Lambda, "\\"},

		// Delimiters
		{_Lparen, "("},
		{_Rparen, ")"},
		{_Lbrack, "["},
		{_Rbrack, "]"},
		{_Lbrace, "{"},
		{_Rbrace, "}"},
		{_Comma, ","},
		{_Semi, ";"},

		// Keywords
		{_Else, "else"},
		{_Enum, "enum"},
		{_False, "false"},
		{_If, "if"},
		{_In, "in"},
		{_Let, "let"},
		{_Then, "then"},
		{_True, "true"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.tok.String(); got != tt.want {
				t.Errorf("Token(%d).String() = %q, want %q", tt.tok, got, tt.want)
			}
		})
	}
}

func TestTokenStringUnknown(t *testing.T) {
	tok := Token(999)
	if got := tok.String(); got != "token(999)" {
		t.Errorf("Token(999).String() = %q, want %q", got, "token(999)")
	}
}

func TestTokenPrecedence(t *testing.T) {
	tests := []struct {
		tok   Token
		prec  int
		assoc Assoc
		ok    bool
	}{
		{_Pipe, 1, LeftAssoc, true},
		{_Eql, 2, LeftAssoc, true},
		{_Neq, 2, LeftAssoc, true},
		{_Lss, 3, LeftAssoc, true},
		{_Geq, 3, LeftAssoc, true},
		{_Colon, 4, RightAssoc, true},
		{_Add, 5, LeftAssoc, true},
		{_Sub, 5, LeftAssoc, true},
		{_Mul, 6, LeftAssoc, true},
		{_Div, 6, LeftAssoc, true},

		// Not binary operators
		{_Not, 0, LeftAssoc, false},
		{_Arrow, 0, LeftAssoc, false},
		{_Assign, 0, LeftAssoc, false},
		{_Name, 0, LeftAssoc, false},
		{_Semi, 0, LeftAssoc, false},
	}

	for _, tt := range tests {
		t.Run(tt.tok.String(), func(t *testing.T) {
			prec, assoc, ok := tt.tok.Precedence()
			if prec != tt.prec || assoc != tt.assoc || ok != tt.ok {
				t.Errorf("%s.Precedence() = (%d, %d, %v), want (%d, %d, %v)",
					tt.tok, prec, assoc, ok, tt.prec, tt.assoc, tt.ok)
			}
		})
	}
}

func TestTokenIsKeyword(t *testing.T) {
	for _, tok := range []Token{_Else, _Enum, _False, _If, _In, _Let, _Then, _True} {
		if !tok.IsKeyword() {
			t.Errorf("%s.IsKeyword() = false, want true", tok)
		}
	}
	for _, tok := range []Token{_EOF, _Name, _Literal, _Add, _Semi, _Lambda} {
		if tok.IsKeyword() {
			t.Errorf("%s.IsKeyword() = true, want false", tok)
		}
	}
}

func TestTokenIsOperator(t *testing.T) {
	for _, tok := range []Token{_Arrow, _Pipe, _Add, _Colon, _Assign, _Lambda} {
		if !tok.IsOperator() {
			t.Errorf("%s.IsOperator() = false, want true", tok)
		}
	}
	for _, tok := range []Token{_Lparen, _Semi, _If, _Name, _EOF} {
		if tok.IsOperator() {
			t.Errorf("%s.IsOperator() = true, want false", tok)
		}
	}
}

func TestTokenIsEOF(t *testing.T) {
	if !_EOF.IsEOF() {
		t.Error("_EOF.IsEOF() = false, want true")
	}
	if _Error.IsEOF() {
		t.Error("_Error.IsEOF() = true, want false")
	}
	if !_Error.IsError() || _Name.IsError() {
		t.Error("IsError mismatch")
	}
}

func TestBadTokenMessage(t *testing.T) {
	tests := []struct{ lit, want string }{
		{`"abc`, "unterminated string literal"},
		{`'a`, "unterminated character literal"},
		{"@", `unexpected character "@"`},
	}
	for _, tt := range tests {
		if got := BadTokenMessage(tt.lit); got != tt.want {
			t.Errorf("BadTokenMessage(%q) = %q, want %q", tt.lit, got, tt.want)
		}
	}
}

func TestLitKindString(t *testing.T) {
	tests := []struct {
		kind LitKind
		want string
	}{
		{IntLit, "int"},
		{FloatLit, "float"},
		{StringLit, "string"},
		{CharLit, "char"},
		{LitKind(42), "LitKind(42)"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("LitKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestLookupKeyword(t *testing.T) {
	for word, tok := range keywords {
		if got := LookupKeyword(word); got != tok {
			t.Errorf("LookupKeyword(%q) = %s, want %s", word, got, tok)
		}
	}
	for _, word := range []string{"main", "add", "If", "THEN", "print_int", "enums"} {
		if got := LookupKeyword(word); got != _Name {
			t.Errorf("LookupKeyword(%q) = %s, want NAME", word, got)
		}
	}
}

func TestLookupOperator(t *testing.T) {
	tests := []struct {
		s    string
		want Token
		ok   bool
	}{
		{"+", _Add, true},
		{"==", _Eql, true},
		{"|>", _Pipe, true},
		{":", _Colon, true},
		{"(", 0, false},
		{"%", 0, false},
	}
	for _, tt := range tests {
		got, ok := LookupOperator(tt.s)
		if got != tt.want || ok != tt.ok {
			t.Errorf("LookupOperator(%q) = (%s, %v), want (%s, %v)", tt.s, got, ok, tt.want, tt.ok)
		}
	}
}

func TestKeywordCount(t *testing.T) {
	if got, want := len(keywords), int(_True-_Else)+1; got != want {
		t.Errorf("len(keywords) = %d, want %d", got, want)
	}
}
