package resugar

import (
	"fmt"

	"github.com/glossopoeia/resugar/compiler/concrete"
	"github.com/glossopoeia/resugar/compiler/core"
	"github.com/glossopoeia/resugar/compiler/prec"
	"github.com/google/go-cmp/cmp"
)

func (r *Resugarer) term(t core.Term, p prec.Prec, e env) (concrete.Term, error) {
	switch t := t.(type) {
	case core.Ann:
		term, err := r.term(t.Term, prec.Lam, e)
		if err != nil {
			return nil, err
		}
		ty, err := r.term(t.Type, prec.Ann, e)
		if err != nil {
			return nil, err
		}
		return parensIf(prec.Ann.Wraps(p), concrete.Ann{Term: term, Type: ty}), nil
	case core.Universe:
		if t.Level == 0 {
			return concrete.Universe{}, nil
		}
		level := uint32(t.Level)
		return parensIf(prec.App.Wraps(p), concrete.Universe{Level: &level}), nil
	case core.Const:
		return Constant(t.Value), nil
	case core.FreeVar:
		return concrete.Var{Name: e.lookup(t.Name)}, nil
	case core.BoundVar:
		return nil, &InternalError{Kind: UnresolvedBoundVar, Term: t}
	case core.Pi:
		return r.pi(t, p, e)
	case core.Lam:
		return r.lam(t, p, e)
	case core.App:
		return r.app(t, p, e)
	case core.If:
		cond, err := r.term(t.Cond, prec.App, e)
		if err != nil {
			return nil, err
		}
		then, err := r.term(t.Then, prec.App, e)
		if err != nil {
			return nil, err
		}
		els, err := r.term(t.Else, prec.App, e)
		if err != nil {
			return nil, err
		}
		return parensIf(prec.Lam.Wraps(p), concrete.If{Cond: cond, Then: then, Else: els}), nil
	case core.RecordType:
		fields, err := r.recordTypeFields(t, e)
		if err != nil {
			return nil, err
		}
		return concrete.RecordType{Fields: fields}, nil
	case core.Record:
		fields, err := r.recordFields(t, e)
		if err != nil {
			return nil, err
		}
		return concrete.Record{Fields: fields}, nil
	case core.EmptyRecordType:
		return concrete.RecordType{}, nil
	case core.EmptyRecord:
		return concrete.Record{}, nil
	case core.Proj:
		expr, err := r.term(t.Expr, prec.Atomic, e)
		if err != nil {
			return nil, err
		}
		return concrete.Proj{Expr: expr, Label: t.Label}, nil
	default:
		panic(fmt.Sprintf("resugar: unknown term %T", t))
	}
}

// A pi whose body mentions its variable keeps the binder, `(x : A) -> B`.
// Otherwise the binder is dropped and the result is an arrow, `A -> B`.
func (r *Resugarer) pi(t core.Pi, p prec.Prec, e env) (concrete.Term, error) {
	name, ann, body := t.Scope.Unbind()
	annC, err := r.term(ann, prec.App, e)
	if err != nil {
		return nil, err
	}

	if !core.FreeVars(body).Contains(name) {
		bodyC, err := r.term(body, prec.Lam, e)
		if err != nil {
			return nil, err
		}
		return parensIf(prec.Pi.Wraps(p), concrete.Arrow{Ann: annC, Body: bodyC}), nil
	}

	display, inner := r.bindName(e, name, ann, body, true)
	bodyC, err := r.term(body, prec.Lam, inner)
	if err != nil {
		return nil, err
	}
	params := []concrete.Param{param(display, annC)}
	if nested, ok := bodyC.(concrete.Pi); ok && r.opts.CollapseTelescopes {
		params = append(params, nested.Params...)
		bodyC = nested.Body
	}
	return parensIf(prec.Pi.Wraps(p), concrete.Pi{Params: r.group(params), Body: bodyC}), nil
}

// Lambdas always keep their binder, even when unused, since dropping it would
// change the arity.
func (r *Resugarer) lam(t core.Lam, p prec.Prec, e env) (concrete.Term, error) {
	name, ann, body := t.Scope.Unbind()
	annC, err := r.term(ann, prec.Lam, e)
	if err != nil {
		return nil, err
	}

	display, inner := r.bindName(e, name, ann, body, core.FreeVars(body).Contains(name))
	bodyC, err := r.term(body, prec.Lam, inner)
	if err != nil {
		return nil, err
	}
	params := []concrete.Param{param(display, annC)}
	if nested, ok := bodyC.(concrete.Lam); ok && r.opts.CollapseTelescopes {
		params = append(params, nested.Params...)
		bodyC = nested.Body
	}
	return parensIf(prec.Lam.Wraps(p), concrete.Lam{Params: r.group(params), Body: bodyC}), nil
}

// The function sits at application precedence and each argument at atomic
// precedence, so a nested application in argument position keeps its
// parentheses and the printed text parses back to the same tree.
func (r *Resugarer) app(t core.App, p prec.Prec, e env) (concrete.Term, error) {
	head, args := core.Term(t.Fn), []core.Term{t.Arg}
	if r.opts.MergeApplications {
		for {
			inner, ok := head.(core.App)
			if !ok {
				break
			}
			head = inner.Fn
			args = append([]core.Term{inner.Arg}, args...)
		}
	}

	fn, err := r.term(head, prec.App, e)
	if err != nil {
		return nil, err
	}
	argsC := make([]concrete.Term, len(args))
	for i, arg := range args {
		if argsC[i], err = r.term(arg, prec.Atomic, e); err != nil {
			return nil, err
		}
	}
	return parensIf(prec.App.Wraps(p), concrete.App{Fn: fn, Args: argsC}), nil
}

func (r *Resugarer) recordTypeFields(t core.RecordType, e env) ([]concrete.Field, error) {
	fields := []concrete.Field{}
	var rest core.Term = t
	for {
		switch link := rest.(type) {
		case core.RecordType:
			ann, err := r.term(link.Ann, prec.NoWrap, e)
			if err != nil {
				return nil, err
			}
			fields = append(fields, concrete.Field{Label: link.Label, Term: ann})
			rest = link.Rest
		case core.EmptyRecordType:
			return fields, nil
		default:
			return nil, &InternalError{Kind: MalformedRecordChain, Term: rest}
		}
	}
}

func (r *Resugarer) recordFields(t core.Record, e env) ([]concrete.Field, error) {
	fields := []concrete.Field{}
	var rest core.Term = t
	for {
		switch link := rest.(type) {
		case core.Record:
			expr, err := r.term(link.Expr, prec.NoWrap, e)
			if err != nil {
				return nil, err
			}
			fields = append(fields, concrete.Field{Label: link.Label, Term: expr})
			rest = link.Rest
		case core.EmptyRecord:
			return fields, nil
		default:
			return nil, &InternalError{Kind: MalformedRecordChain, Term: rest}
		}
	}
}

func param(name string, ann concrete.Term) concrete.Param {
	return concrete.Param{Names: []concrete.Ident{{Name: name}}, Ann: ann}
}

// Merge adjacent parameters whose annotations are identical, turning
// `(x : A) (y : A)` into `(x y : A)`. With capture avoidance a binder's display
// name differs from every name free in its own annotation and every binder in
// scope, so equal annotations always refer to the same things.
func (r *Resugarer) group(params []concrete.Param) []concrete.Param {
	if !r.opts.GroupParameters || len(params) < 2 {
		return params
	}
	res := []concrete.Param{params[0]}
	for _, next := range params[1:] {
		last := &res[len(res)-1]
		if last.Ann != nil && next.Ann != nil && cmp.Equal(last.Ann, next.Ann) {
			last.Names = append(append([]concrete.Ident{}, last.Names...), next.Names...)
			continue
		}
		res = append(res, next)
	}
	return res
}
