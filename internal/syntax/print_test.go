package syntax

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestExprStringDecls(t *testing.T) {
	src := "enum E = A | B Int;\nf :: Int -> Int;\nf x = x;\nmain = f 'c' \"s\" 1.5;"
	decls := parseDecls(t, src)

	want := []string{
		"<E: (A, []), (B, [Int])>",
		"<f :: Int -> Int>",
		`<f: (\x -> x)>`,
		`<main: <f: ('c', "s", 1.5)>>`,
	}
	for i, d := range decls {
		if got := ExprString(d); got != want[i] {
			t.Errorf("ExprString(decl %d) = %s, want %s", i, got, want[i])
		}
	}
	if got := ExprString(nil); got != "<nil>" {
		t.Errorf("ExprString(nil) = %s", got)
	}
}

func TestFprint(t *testing.T) {
	decls := parseDecls(t, `main = \x -> -x;`)

	var buf bytes.Buffer
	Fprint(&buf, decls[0])

	want := `Func 0:16 main
  Params: x
  Body:
    Closure 7:15 x
      Unary 13:15 -
        Atom 14:15 Id x
`
	if got := buf.String(); got != want {
		t.Errorf("Fprint output:\n%s\nwant:\n%s", got, want)
	}
}

func TestFprintJSON(t *testing.T) {
	decls := parseDecls(t, "main = add 1 [true];")

	var buf bytes.Buffer
	if err := FprintJSON(&buf, decls[0]); err != nil {
		t.Fatal(err)
	}

	var got map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, buf.String())
	}
	if got["type"] != "Func" || got["name"] != "main" || got["span"] != "0:20" {
		t.Errorf("unexpected Func object: %v", got)
	}
	body := got["body"].(map[string]interface{})
	if body["type"] != "App" {
		t.Errorf("body type = %v, want App", body["type"])
	}
	args := body["args"].([]interface{})
	if len(args) != 2 {
		t.Fatalf("got %d args, want 2", len(args))
	}
	first := args[0].(map[string]interface{})
	if first["kind"] != "Int" || first["value"] != float64(1) {
		t.Errorf("first arg = %v", first)
	}
}

func TestFprintJSONAll(t *testing.T) {
	decls := parseDecls(t, "enum Option = Some Int | None;\nadd :: Int -> Int;")

	var buf bytes.Buffer
	if err := FprintJSONAll(&buf, decls); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{`"type": "Enum"`, `"type": "TypeDec"`, `"fields": []`, `"Int"`} {
		if !strings.Contains(out, want) {
			t.Errorf("JSON output missing %s:\n%s", want, out)
		}
	}
}
