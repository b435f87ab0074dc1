package core

import "fmt"

// Values are terms in normal form, as produced by the normalizer. Binders in
// values are named rather than nameless: the body of a ValueScope refers to
// its variable as a free occurrence of Name. Computations that cannot reduce
// further are kept as neutral terms.
type Value interface {
	isValue()
}

type ValueScope struct {
	Name Name
	Ann  Value
	Body Value
}

type VUniverse struct {
	Level Level
}

type VConst struct {
	Value Constant
}

type VPi struct {
	Scope ValueScope
}

type VLam struct {
	Scope ValueScope
}

type VRecordType struct {
	Label string
	Ann   Value
	Rest  Value
}

type VRecord struct {
	Label string
	Expr  Value
	Rest  Value
}

type VEmptyRecordType struct{}

type VEmptyRecord struct{}

type VNeutral struct {
	Neutral Neutral
}

func (VUniverse) isValue()        {}
func (VConst) isValue()           {}
func (VPi) isValue()              {}
func (VLam) isValue()             {}
func (VRecordType) isValue()      {}
func (VRecord) isValue()          {}
func (VEmptyRecordType) isValue() {}
func (VEmptyRecord) isValue()     {}
func (VNeutral) isValue()         {}

// A stuck computation: a variable at the head of a spine of eliminations.
type Neutral interface {
	isNeutral()
}

type NVar struct {
	Name Name
}

type NApp struct {
	Fn  Neutral
	Arg Value
}

type NIf struct {
	Cond Neutral
	Then Value
	Else Value
}

type NProj struct {
	Expr  Neutral
	Label string
}

func (NVar) isNeutral()  {}
func (NApp) isNeutral()  {}
func (NIf) isNeutral()   {}
func (NProj) isNeutral() {}

// Read a value back into a term. Named binders are abstracted into scopes, so
// the result is locally closed whenever the value's binders are well-scoped.
func Quote(v Value) Term {
	switch v := v.(type) {
	case VUniverse:
		return Universe{v.Level}
	case VConst:
		return Const{v.Value}
	case VPi:
		return Pi{quoteScope(v.Scope)}
	case VLam:
		return Lam{quoteScope(v.Scope)}
	case VRecordType:
		return RecordType{v.Label, Quote(v.Ann), Quote(v.Rest)}
	case VRecord:
		return Record{v.Label, Quote(v.Expr), Quote(v.Rest)}
	case VEmptyRecordType:
		return EmptyRecordType{}
	case VEmptyRecord:
		return EmptyRecord{}
	case VNeutral:
		return QuoteNeutral(v.Neutral)
	default:
		panic(fmt.Sprintf("core: unknown value %T", v))
	}
}

func QuoteNeutral(n Neutral) Term {
	switch n := n.(type) {
	case NVar:
		return FreeVar{n.Name}
	case NApp:
		return App{QuoteNeutral(n.Fn), Quote(n.Arg)}
	case NIf:
		return If{QuoteNeutral(n.Cond), Quote(n.Then), Quote(n.Else)}
	case NProj:
		return Proj{QuoteNeutral(n.Expr), n.Label}
	default:
		panic(fmt.Sprintf("core: unknown neutral %T", n))
	}
}

func quoteScope(s ValueScope) Scope {
	return Bind(s.Name, Quote(s.Ann), Quote(s.Body))
}
