package core

import "fmt"

// A binder over a single variable. The annotation sits outside the binder, so
// it cannot refer to the variable; inside Body the variable is the BoundVar
// with Scope 0 (or Scope n under n further binders). Scopes are only ever
// inspected through Unbind, which hands out a name no other scope has used.
type Scope struct {
	Hint string
	Ann  Term
	Body Term
}

// Abstract the free occurrences of name in body, producing a scope whose
// binder displays as the name's hint.
func Bind(name Name, ann Term, body Term) Scope {
	return Scope{
		Hint: name.Hint,
		Ann:  ann,
		Body: closeTerm(body, 0, name),
	}
}

// Open the scope, returning a fresh name, the annotation, and the body with
// the bound variable replaced by a free reference to the fresh name.
func (s Scope) Unbind() (Name, Term, Term) {
	name := freshName(s.Hint)
	return name, s.Ann, openTerm(s.Body, 0, name)
}

func NewPi(name string, ann Term, body Term) Pi {
	return Pi{Bind(UserName(name), ann, body)}
}

func NewLam(name string, ann Term, body Term) Lam {
	return Lam{Bind(UserName(name), ann, body)}
}

func openTerm(t Term, depth int, name Name) Term {
	return mapVars(t, depth, func(v Term, depth int) Term {
		if bv, ok := v.(BoundVar); ok && bv.Scope == depth {
			return FreeVar{name}
		}
		return v
	})
}

func closeTerm(t Term, depth int, name Name) Term {
	return mapVars(t, depth, func(v Term, depth int) Term {
		if fv, ok := v.(FreeVar); ok && fv.Name == name {
			return BoundVar{Hint: name.Hint, Scope: depth}
		}
		return v
	})
}

// Rebuild a term, replacing every variable with the result of f. The depth
// passed to f counts the binders crossed since the starting point.
func mapVars(t Term, depth int, f func(Term, int) Term) Term {
	switch t := t.(type) {
	case FreeVar, BoundVar:
		return f(t, depth)
	case Universe, Const, EmptyRecordType, EmptyRecord:
		return t
	case Ann:
		return Ann{mapVars(t.Term, depth, f), mapVars(t.Type, depth, f)}
	case Pi:
		return Pi{mapScope(t.Scope, depth, f)}
	case Lam:
		return Lam{mapScope(t.Scope, depth, f)}
	case App:
		return App{mapVars(t.Fn, depth, f), mapVars(t.Arg, depth, f)}
	case If:
		return If{mapVars(t.Cond, depth, f), mapVars(t.Then, depth, f), mapVars(t.Else, depth, f)}
	case RecordType:
		return RecordType{t.Label, mapVars(t.Ann, depth, f), mapVars(t.Rest, depth, f)}
	case Record:
		return Record{t.Label, mapVars(t.Expr, depth, f), mapVars(t.Rest, depth, f)}
	case Proj:
		return Proj{mapVars(t.Expr, depth, f), t.Label}
	default:
		panic(fmt.Sprintf("core: unknown term %T", t))
	}
}

func mapScope(s Scope, depth int, f func(Term, int) Term) Scope {
	return Scope{
		Hint: s.Hint,
		Ann:  mapVars(s.Ann, depth, f),
		Body: mapVars(s.Body, depth+1, f),
	}
}
