package resugar

import (
	"fmt"

	"github.com/glossopoeia/resugar/compiler/concrete"
	"github.com/glossopoeia/resugar/compiler/core"
	"github.com/glossopoeia/resugar/compiler/prec"
	"github.com/rjNemo/underscore"
	"github.com/samber/lo"
)

// Translate a definition into its type claim and its definition. Leading
// lambda parameters of the body move into the definition header, so that
// `f = \(x : A) => e` becomes `f (x : A) = e`, or `f x = e` when hoisted
// annotations are elided.
func (r *Resugarer) Definition(def core.Definition) (concrete.Claim, concrete.Definition, error) {
	ann, err := r.TermPrec(def.Ann, prec.Ann)
	if err != nil {
		return concrete.Claim{}, concrete.Definition{}, fmt.Errorf("resugar: claim of %s: %w", def.Name, err)
	}
	body, err := r.TermPrec(def.Term, prec.Ann)
	if err != nil {
		return concrete.Claim{}, concrete.Definition{}, fmt.Errorf("resugar: definition of %s: %w", def.Name, err)
	}

	var params []concrete.Param
	if lam, ok := body.(concrete.Lam); ok {
		params, body = lam.Params, lam.Body
		if r.opts.ElideHoistedAnnotations {
			params = underscore.Map(params, func(p concrete.Param) concrete.Param {
				return concrete.Param{Names: p.Names}
			})
		}
		r.logger.Debug("hoisted parameters", "definition", def.Name, "groups", len(params))
	}

	claim := concrete.Claim{Name: concrete.Ident{Name: def.Name}, Ann: ann}
	definition := concrete.Definition{Name: def.Name, Params: params, Body: body}
	return claim, definition, nil
}

// Translate every definition of a module in order, each contributing its
// claim immediately followed by its definition.
func (r *Resugarer) Module(mod core.Module) (concrete.Module, error) {
	type pair struct {
		claim      concrete.Claim
		definition concrete.Definition
	}

	pairs := make([]pair, len(mod.Definitions))
	for i, def := range mod.Definitions {
		claim, definition, err := r.Definition(def)
		if err != nil {
			return concrete.Module{}, err
		}
		pairs[i] = pair{claim, definition}
	}

	return concrete.Module{
		Name: concrete.Ident{Name: mod.Name},
		Declarations: lo.FlatMap(pairs, func(p pair, _ int) []concrete.Declaration {
			return []concrete.Declaration{p.claim, p.definition}
		}),
	}, nil
}
