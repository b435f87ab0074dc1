package resugar

import (
	"testing"

	"github.com/glossopoeia/resugar/compiler/concrete"
	"github.com/glossopoeia/resugar/compiler/core"
	"github.com/glossopoeia/resugar/compiler/prec"
	"github.com/google/go-cmp/cmp"
)

func vBool() core.Value { return core.VConst{Value: core.BoolType} }

func TestValue(t *testing.T) {
	x := core.UserName("x")
	f := core.UserName("f")

	data := []core.Value{
		core.VUniverse{Level: 2},
		core.VPi{Scope: core.ValueScope{Name: x, Ann: vBool(), Body: vBool()}},
		core.VLam{Scope: core.ValueScope{Name: x, Ann: vBool(), Body: core.VNeutral{Neutral: core.NVar{Name: x}}}},
		core.VRecordType{Label: "a", Ann: vBool(), Rest: core.VEmptyRecordType{}},
		core.VRecord{Label: "a", Expr: core.VConst{Value: core.Bool(false)}, Rest: core.VEmptyRecord{}},
		core.VNeutral{Neutral: core.NProj{Expr: core.NApp{Fn: core.NVar{Name: f}, Arg: vBool()}, Label: "l"}},
		core.VNeutral{Neutral: core.NIf{Cond: core.NVar{Name: x}, Then: core.VUniverse{}, Else: vBool()}},
	}

	testCases := []struct {
		name string
		exp  concrete.Term
	}{
		{"Universe", concrete.Universe{Level: lvl(2)}},
		{"Arrow", concrete.Arrow{Ann: cv("Bool"), Body: cv("Bool")}},
		{"Lam", concrete.Lam{Params: []concrete.Param{cparam(cv("Bool"), "x")}, Body: cv("x")}},
		{"RecordType", concrete.RecordType{Fields: []concrete.Field{{Label: "a", Term: cv("Bool")}}}},
		{"Record", concrete.Record{Fields: []concrete.Field{{Label: "a", Term: cv("false")}}}},
		{"StuckProj", concrete.Proj{Expr: parens(capp(cv("f"), cv("Bool"))), Label: "l"}},
		{"StuckIf", concrete.If{Cond: cv("x"), Then: concrete.Universe{}, Else: cv("Bool")}},
	}

	for ind, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := Value(data[ind])
			if err != nil {
				t.Fatalf("Expected no error, got %v instead", err)
			}
			if diff := cmp.Diff(tc.exp, res); diff != "" {
				t.Errorf("Unexpected translation (-want +got):\n%s", diff)
			}
		})
	}
}

func TestNeutralPrecedence(t *testing.T) {
	n := core.NApp{Fn: core.NVar{Name: core.UserName("f")}, Arg: core.VNeutral{Neutral: core.NVar{Name: core.UserName("a")}}}

	res, err := Neutral(n)
	if err != nil {
		t.Fatalf("Expected no error, got %v instead", err)
	}
	if diff := cmp.Diff(capp(cv("f"), cv("a")), res); diff != "" {
		t.Errorf("Unexpected translation (-want +got):\n%s", diff)
	}

	res, err = defaultResugarer.NeutralPrec(n, prec.Atomic)
	if err != nil {
		t.Fatalf("Expected no error, got %v instead", err)
	}
	if diff := cmp.Diff(parens(capp(cv("f"), cv("a"))), res); diff != "" {
		t.Errorf("Unexpected translation (-want +got):\n%s", diff)
	}
}

func TestValueBinderAvoidsFreeName(t *testing.T) {
	bound := core.Name{Hint: "y", Gen: 1 << 40}
	v := core.VLam{Scope: core.ValueScope{
		Name: bound,
		Ann:  vBool(),
		Body: core.VNeutral{Neutral: core.NApp{
			Fn:  core.NVar{Name: core.UserName("y")},
			Arg: core.VNeutral{Neutral: core.NVar{Name: bound}},
		}},
	}}
	res, err := Value(v)
	if err != nil {
		t.Fatalf("Expected no error, got %v instead", err)
	}
	exp := concrete.Lam{
		Params: []concrete.Param{cparam(cv("Bool"), "y1")},
		Body:   capp(cv("y"), cv("y1")),
	}
	if diff := cmp.Diff(exp, res); diff != "" {
		t.Errorf("Unexpected translation (-want +got):\n%s", diff)
	}
}
