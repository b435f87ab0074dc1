package resugar

import (
	"github.com/glossopoeia/resugar/compiler/concrete"
	"github.com/glossopoeia/resugar/compiler/core"
	"github.com/glossopoeia/resugar/compiler/prec"
)

func (r *Resugarer) Value(v core.Value) (concrete.Term, error) {
	return r.ValuePrec(v, prec.NoWrap)
}

// Quote the value back into a term first, then translate the term.
func (r *Resugarer) ValuePrec(v core.Value, p prec.Prec) (concrete.Term, error) {
	return r.TermPrec(core.Quote(v), p)
}

func (r *Resugarer) Neutral(n core.Neutral) (concrete.Term, error) {
	return r.NeutralPrec(n, prec.NoWrap)
}

func (r *Resugarer) NeutralPrec(n core.Neutral, p prec.Prec) (concrete.Term, error) {
	return r.TermPrec(core.QuoteNeutral(n), p)
}
