package resugar

import (
	"math"
	"testing"

	"github.com/glossopoeia/resugar/compiler/concrete"
	"github.com/glossopoeia/resugar/compiler/core"
	"github.com/google/go-cmp/cmp"
)

func TestConstant(t *testing.T) {
	data := []core.Constant{
		core.Bool(true),
		core.Bool(false),
		core.String("hi"),
		core.Char('λ'),
		core.U8(255),
		core.U32(42),
		core.U64(math.MaxUint64),
		core.I32(7),
		core.I8(-1),
		core.F32(1.5),
		core.F64(-0.25),
		core.U16Type,
		core.BoolType,
	}

	testCases := []struct {
		name string
		exp  concrete.Term
	}{
		{"True", concrete.Var{Name: "true"}},
		{"False", concrete.Var{Name: "false"}},
		{"String", concrete.Literal{Value: concrete.StringLit("hi")}},
		{"Char", concrete.Literal{Value: concrete.CharLit('λ')}},
		{"U8", concrete.Literal{Value: concrete.IntLit(255)}},
		{"U32", concrete.Literal{Value: concrete.IntLit(42)}},
		{"U64", concrete.Literal{Value: concrete.IntLit(math.MaxUint64)}},
		{"I32", concrete.Literal{Value: concrete.IntLit(7)}},
		{"NegativeI8", concrete.Literal{Value: concrete.IntLit(math.MaxUint64)}},
		{"F32", concrete.Literal{Value: concrete.FloatLit(1.5)}},
		{"F64", concrete.Literal{Value: concrete.FloatLit(-0.25)}},
		{"U16Type", concrete.Var{Name: "U16"}},
		{"BoolType", concrete.Var{Name: "Bool"}},
	}

	for ind, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			res := Constant(data[ind])
			if diff := cmp.Diff(tc.exp, res); diff != "" {
				t.Errorf("Unexpected translation (-want +got):\n%s", diff)
			}
		})
	}
}

func TestPrimTypesAreReserved(t *testing.T) {
	r := New(DefaultOptions())
	for _, p := range core.PrimTypes {
		v, ok := Constant(p).(concrete.Var)
		if !ok {
			t.Fatalf("Expected %v to translate to a variable", p)
		}
		if !r.reserved.Contains(v.Name) {
			t.Errorf("Expected %v to be reserved", v.Name)
		}
	}
}

func TestConstantViaTerm(t *testing.T) {
	res, err := Term(core.Const{Value: core.U32(42)})
	if err != nil {
		t.Fatalf("Expected no error, got %v instead", err)
	}
	if concrete.Print(res) != "42" {
		t.Errorf("Expected %v, got %v instead", "42", concrete.Print(res))
	}
}
