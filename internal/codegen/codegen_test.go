package codegen

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/you-not-fish/snow/internal/syntax"
)

func generate(t *testing.T, src string) string {
	t.Helper()
	decls, err := syntax.ParseString(src)
	if err != nil {
		t.Fatalf("ParseString(%q): %v", src, err)
	}
	var buf bytes.Buffer
	if err := GenerateJS(&buf, decls); err != nil {
		t.Fatalf("GenerateJS: %v", err)
	}
	return buf.String()
}

func TestGenerateProgram(t *testing.T) {
	got := generate(t, "add :: Int -> Int -> Int;\nadd x y = x + y;\nmain = add 1 2;\n")
	want := `// Code generated by snowc. DO NOT EDIT.
"use strict";

// add :: Int -> Int -> Int
/** @type {function(number): function(number): number} */
const add = (x) => (y) => (x + y);

const main = () => add(1)(2);

console.log(main());
`
	if got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestGenerateExpressions(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want []string
	}{
		{"builtins", "main = nth (push [1, 2] 3) 2;", []string{
			"const $nth = (xs) => (i) => {",
			"const $push = (xs) => (x) => [...xs, x];",
			"const main = () => $nth($push([1, 2])(3))(2);",
		}},
		{"print", "main = print_int 3;", []string{
			"const $print_int = (x) => (console.log(String(x)), x);",
			"const main = () => $print_int(3);",
		}},
		{"int_div", "main = 7 / 2;", []string{
			"const $div = ",
			"const main = () => $div(7)(2);",
		}},
		{"pipe", "inc x = x + 1; main = 2 |> inc;", []string{"const main = () => inc(2);"}},
		{"pipe_app", "add x y = x + y; main = 2 |> add 1;", []string{"const main = () => add(1)(2);"}},
		{"cons", "main = 1 : [2];", []string{"const main = () => [1, ...[2]];"}},
		{"if", `main = if 1 > 0 then "a" else 'b';`, []string{`const main = () => ((1 > 0) ? "a" : "b");`}},
		{"equality", "main = 1 == 2;", []string{"const main = () => (1 === 2);"}},
		{"inequality", "main = 1 != 2;", []string{"const main = () => (1 !== 2);"}},
		{"not", "main = !true;", []string{"const main = () => (!true);"}},
		{"negate", "f x = -x;", []string{"const f = (x) => (-x);"}},
		{"float", "main = 1.5 * 2.0;", []string{"const main = () => (1.5 * 2);"}},
		{"thunk_ref", "x = 1; main = x + x;", []string{"const x = () => 1;", "const main = () => (x() + x());"}},
		{"param_shadows_global", "x = 1; f x = x;", []string{"const f = (x) => x;"}},
		{"section", "main = (+) 1 2;", []string{"const $add = (x) => (y) => x + y;", "const main = () => $add(1)(2);"}},
		{"section_arg", "ap f a b = f a b; main = ap (*) 2 3;", []string{"const main = () => ap($mul)(2)(3);"}},
		{"inline_lambda", "main = (\\x -> x) 1;", []string{"const main = () => ((x) => x)(1);"}},
		{"let", "main = let x = 1 in x;", []string{"const main = () => ((x) => x)(1);"}},
		{"reserved", "new x = x; main = new 1;", []string{"const new_ = (x) => x;", "const main = () => new_(1);"}},
		{"typed_thunk", "n :: Int; n = 1;", []string{"/** @type {function(): number} */", "const n = () => 1;"}},
		{"lone_typedec", "f :: [Int] -> Bool;", []string{"// f :: [Int] -> Bool"}},
		{"redefinition", "f = 1; f = 2;", []string{"const f = () => 2;"}},
		{"enum", "enum Option = Some Int | None;", []string{
			"// enum Option",
			`const Some = (a0) => Object.freeze({ tag: "Some", values: [a0] });`,
			`const None = Object.freeze({ tag: "None", values: [] });`,
			"const Option = Object.freeze({ Some, None });",
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := generate(t, tt.src)
			for _, w := range tt.want {
				if !strings.Contains(got, w) {
					t.Errorf("output does not contain %q:\n%s", w, got)
				}
			}
		})
	}
}

func TestGenerateOmits(t *testing.T) {
	tests := []struct {
		name string
		src  string
		omit string
	}{
		{"unused_prelude", "main = nth [1] 0;", "$pop"},
		{"no_prelude", "main = 1 + 2;", "const $"},
		{"earlier_definition", "f = 1; f = 2;", "() => 1"},
		{"main_with_params", "main x = x;", "console.log"},
		{"no_main", "f x = x;", "console.log"},
		{"typedec_with_func", "f :: Int -> Int; f x = x;", "\n\n// f :: Int -> Int\n\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := generate(t, tt.src); strings.Contains(got, tt.omit) {
				t.Errorf("output contains %q:\n%s", tt.omit, got)
			}
		})
	}
}

func TestGenerateErrors(t *testing.T) {
	decls, err := syntax.ParseString("main = ;")
	if err == nil {
		t.Fatal("expected parse error")
	}
	var e *Error
	if err := GenerateJS(new(bytes.Buffer), decls); !errors.As(err, &e) {
		t.Errorf("BadExpr: got %v, want *Error", err)
	}

	decls, err = syntax.ParseString("nth x = x;")
	if err != nil {
		t.Fatal(err)
	}
	err = GenerateJS(new(bytes.Buffer), decls)
	if err == nil || !strings.Contains(err.Error(), "cannot redefine builtin nth") {
		t.Errorf("builtin redefinition: got %v", err)
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestGenerateWriteError(t *testing.T) {
	decls, err := syntax.ParseString("main = 1;")
	if err != nil {
		t.Fatal(err)
	}
	if err := GenerateJS(failingWriter{}, decls); err == nil || err.Error() != "disk full" {
		t.Errorf("got %v, want disk full", err)
	}
}

func TestJSQuote(t *testing.T) {
	tests := []struct{ in, want string }{
		{"plain", `"plain"`},
		{`a"b`, `"a\"b"`},
		{`back\slash`, `"back\\slash"`},
		{"line\nbreak\ttab", `"line\nbreak\ttab"`},
		{"bell\a", `"bell\u0007"`},
		{"héllo", `"héllo"`},
		{"sep\u2028", `"sep\u2028"`},
	}
	for _, tt := range tests {
		if got := jsQuote(tt.in); got != tt.want {
			t.Errorf("jsQuote(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestJSFuncType(t *testing.T) {
	tests := []struct {
		types []string
		want  string
	}{
		{nil, "*"},
		{[]string{"Int"}, "number"},
		{[]string{"[Char]", "Bool"}, "function(Array<string>): boolean"},
		{[]string{"Float", "Option", "String"}, "function(number): function(Option): string"},
	}
	for _, tt := range tests {
		if got := jsFuncType(tt.types); got != tt.want {
			t.Errorf("jsFuncType(%v) = %q, want %q", tt.types, got, tt.want)
		}
	}
}
