package compiler

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"
)

func TestRender_PlainJSON(t *testing.T) {
	n := mustNode(t, `
type: object
schema:
  name: {type: string, values: [bob]}
  age: {type: number, integer: true}
  tags:
    type: array
    nested: {type: string}
    length: 2
  meta: {type: object}
`)
	out := Renderer{Comments: false}.Render(Compile(n))
	want := "{\n" +
		"\t\"name\": \"bob\",\n" +
		"\t\"age\": 0,\n" +
		"\t\"tags\": [\n" +
		"\t\t\"\",\n" +
		"\t\t\"\"\n" +
		"\t],\n" +
		"\t\"meta\": {}\n" +
		"}"
	if out != want {
		t.Errorf("unexpected output:\n%s\nwant:\n%s", out, want)
	}
}

func TestRender_Comments(t *testing.T) {
	n := mustNode(t, `
type: object
schema:
  role: {type: string, values: [admin, member]}
  plain: {type: string}
`)
	out := Renderer{Comments: true}.Render(Compile(n))
	if !strings.Contains(out, `"role": "admin", // values: ["admin","member"]`) {
		t.Errorf("expected trailing comment after comma, got:\n%s", out)
	}
	if strings.Contains(out, `"plain": "" //`) {
		t.Errorf("unconstrained member must not carry a comment:\n%s", out)
	}
}

func TestRender_CommentsDisabled(t *testing.T) {
	n := mustNode(t, `
type: object
schema:
  role: {type: string, values: [admin]}
`)
	out := Renderer{Comments: false}.Render(Compile(n))
	if strings.Contains(out, "//") {
		t.Errorf("comments disabled, got:\n%s", out)
	}
}

func TestRender_Scalars(t *testing.T) {
	tests := []struct {
		name string
		v    *Value
		want string
	}{
		{"null", &Value{Kind: Null}, "null"},
		{"true", &Value{Kind: Bool, Bool: true}, "true"},
		{"int", &Value{Kind: Number, Number: 42}, "42"},
		{"float", &Value{Kind: Number, Number: 1.5}, "1.5"},
		{"string", &Value{Kind: String, Str: "hi"}, `"hi"`},
		{"empty array", &Value{Kind: Array}, "[]"},
		{"empty object", &Value{Kind: Object}, "{}"},
	}
	r := Renderer{Comments: true}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Render(tt.v); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestRender_RootHasNoComment(t *testing.T) {
	v := &Value{Kind: String, Str: "x", Description: "values: [x]"}
	if got := (Renderer{Comments: true}).Render(v); got != `"x"` {
		t.Errorf("root must not carry a comment, got %q", got)
	}
}

// Serializing then parsing a compiled value (comments off) yields a
// structurally identical value.
func TestRender_RoundTrip(t *testing.T) {
	n := mustNode(t, `
type: object
schema:
  user:
    type: object
    schema:
      name: {type: string, values: [ann]}
      active: {type: boolean}
  scores:
    type: array
    nested: {type: number, values: [10]}
    length: 3
  note: {type: string}
  extra: {type: uuid}
`)
	compiled := Compile(n)
	out := Renderer{Comments: false}.Render(compiled)

	var parsed interface{}
	if err := json.Unmarshal([]byte(out), &parsed); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, out)
	}
	if !reflect.DeepEqual(parsed, compiled.Interface()) {
		t.Errorf("round trip mismatch:\nparsed: %#v\nvalue:  %#v", parsed, compiled.Interface())
	}
}
