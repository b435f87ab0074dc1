package core

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDecodeTerm(t *testing.T) {
	data := []string{
		`Type`,
		`{universe: 2}`,
		`Bool`,
		`true`,
		`{u32: 42}`,
		`{i8: -1}`,
		`{char: "λ"}`,
		`{string: hello}`,
		`x`,
		`{lam: {name: x, type: Bool, body: x}}`,
		`{arrow: [Bool, Bool]}`,
		`{app: [f, a, b]}`,
		`{record_type: {a: Bool, b: String}}`,
		`{proj: [{record: {a: true}}, a]}`,
		`{ann: [true, Bool]}`,
	}

	testCases := []struct {
		name string
		exp  Term
	}{
		{"Universe0", Universe{0}},
		{"Universe2", Universe{2}},
		{"PrimType", Const{BoolType}},
		{"BoolLit", Const{Bool(true)}},
		{"U32", Const{U32(42)}},
		{"I8", Const{I8(-1)}},
		{"Char", Const{Char('λ')}},
		{"String", Const{String("hello")}},
		{"Var", FreeVar{UserName("x")}},
		{"Lam", Lam{Scope{"x", Const{BoolType}, BoundVar{Hint: "x"}}}},
		{"Arrow", Pi{Scope{"_", Const{BoolType}, Const{BoolType}}}},
		{"App", App{App{FreeVar{UserName("f")}, FreeVar{UserName("a")}}, FreeVar{UserName("b")}}},
		{"RecordType", NewRecordType(Field{"a", Const{BoolType}}, Field{"b", Const{StringType}})},
		{"Proj", Proj{NewRecord(Field{"a", Const{Bool(true)}}), "a"}},
		{"Ann", Ann{Const{Bool(true)}, Const{BoolType}}},
	}

	for ind, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := DecodeTerm([]byte(data[ind]))
			if err != nil {
				t.Fatalf("Expected no error, got %v instead", err)
			}
			if !cmp.Equal(res, tc.exp) {
				t.Errorf("Expected %v, got %v instead", tc.exp, res)
			}
		})
	}
}

func TestDecodeTermErrors(t *testing.T) {
	testCases := []struct {
		name string
		src  string
	}{
		{"TwoForms", `{u8: 1, u16: 2}`},
		{"UnknownForm", `{nat: 3}`},
		{"Overflow", `{u8: 300}`},
		{"LongChar", `{char: ab}`},
		{"MissingBody", `{pi: {name: x, type: Bool}}`},
		{"BadIf", `{if: [true, false]}`},
		{"BareApp", `{app: [f]}`},
		{"UnknownPrim", `{prim: Nat}`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := DecodeTerm([]byte(tc.src))
			var derr DecodeError
			if !errors.As(err, &derr) {
				t.Fatalf("Expected a DecodeError, got %v instead", err)
			}
			if derr.Line != 1 {
				t.Errorf("Expected error on line 1, got %v instead", derr.Line)
			}
		})
	}
}

func TestDecodeModule(t *testing.T) {
	src := `
name: prelude
definitions:
  - name: id
    type: {pi: {name: a, type: Type, body: {arrow: [a, a]}}}
    term: {lam: {name: a, type: Type, body: {lam: {name: x, type: a, body: x}}}}
  - name: not
    type: {arrow: [Bool, Bool]}
    term: {lam: {name: b, type: Bool, body: {if: [b, false, true]}}}
`
	mod, err := DecodeModule([]byte(src))
	if err != nil {
		t.Fatalf("Expected no error, got %v instead", err)
	}
	if mod.Name != "prelude" || len(mod.Definitions) != 2 {
		t.Fatalf("Expected module prelude with 2 definitions, got %v with %d", mod.Name, len(mod.Definitions))
	}

	id := mod.Definitions[0]
	expTerm := Lam{Scope{"a", Universe{0}, Lam{Scope{"x", BoundVar{Hint: "a"}, BoundVar{Hint: "x"}}}}}
	if !cmp.Equal(id.Term, Term(expTerm)) {
		t.Errorf("Expected %v, got %v instead", expTerm, id.Term)
	}
	expAnn := Pi{Scope{"a", Universe{0}, Pi{Scope{"_", BoundVar{Hint: "a"}, BoundVar{Hint: "a", Scope: 1}}}}}
	if !cmp.Equal(id.Ann, Term(expAnn)) {
		t.Errorf("Expected %v, got %v instead", expAnn, id.Ann)
	}
	for _, def := range mod.Definitions {
		if !IsLocallyClosed(def.Ann) || !IsLocallyClosed(def.Term) {
			t.Errorf("Expected definition %s to be locally closed", def.Name)
		}
	}
}

func TestDecodeModuleErrors(t *testing.T) {
	testCases := []struct {
		name string
		src  string
	}{
		{"NotMapping", `[1, 2]`},
		{"DefinitionsNotSequence", `definitions: {a: 1}`},
		{"NoName", "definitions:\n  - type: Bool\n    term: true\n"},
		{"NoType", "definitions:\n  - name: a\n    term: true\n"},
		{"NoTerm", "definitions:\n  - name: a\n    type: Bool\n"},
		{"Empty", ``},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := DecodeModule([]byte(tc.src)); err == nil {
				t.Errorf("Expected an error decoding %q", tc.src)
			}
		})
	}
}
