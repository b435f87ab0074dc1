package prec

import (
	"testing"
	"testing/quick"
)

func TestWraps(t *testing.T) {
	data := []struct {
		natural  Prec
		required Prec
	}{
		{Ann, NoWrap},
		{Lam, Lam},
		{Lam, Pi},
		{Pi, App},
		{App, Atomic},
		{Atomic, Atomic},
		{Ann, Atomic},
	}

	testCases := []struct {
		name string
		exp  bool
	}{
		{"NoWrapNeverWraps", false},
		{"EqualDoesNotWrap", false},
		{"LamInPiWraps", true},
		{"PiInAppWraps", true},
		{"AppInAtomicWraps", true},
		{"AtomicInAtomic", false},
		{"AnnInAtomicWraps", true},
	}

	for ind, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			res := data[ind].natural.Wraps(data[ind].required)
			if res != tc.exp {
				t.Errorf("Expected %v, got %v instead", tc.exp, res)
			}
		})
	}
}

func TestLatticeOrder(t *testing.T) {
	for i := 1; i < len(All); i++ {
		if !(All[i-1] < All[i]) {
			t.Errorf("Expected %s to bind looser than %s", All[i-1], All[i])
		}
	}
}

func TestWrapsIffStrictlyLower(t *testing.T) {
	law := func(a, b uint8) bool {
		natural := All[int(a)%len(All)]
		required := All[int(b)%len(All)]
		return natural.Wraps(required) == (natural < required)
	}
	if err := quick.Check(law, nil); err != nil {
		t.Error(err)
	}
}

func TestNoWrapPositionNeverWraps(t *testing.T) {
	for _, p := range All {
		if p.Wraps(NoWrap) {
			t.Errorf("Expected %s not to wrap at the top level", p)
		}
	}
}

func TestString(t *testing.T) {
	exp := []string{"nowrap", "ann", "lam", "pi", "app", "atomic"}
	for i, p := range All {
		if p.String() != exp[i] {
			t.Errorf("Expected %v, got %v instead", exp[i], p.String())
		}
	}
}
