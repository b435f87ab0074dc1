package core

import "fmt"

// Core terms are the fully elaborated syntax produced by the type checker.
// Binders use a locally nameless representation: a variable refers to an
// enclosing binder by how many scopes up that binder is (BoundVar), or to
// something outside the term by name (FreeVar). A term is locally closed when
// every BoundVar is satisfied by a binder within the term itself. Records are
// right-nested chains of single fields ending in an explicit empty marker.
type Term interface {
	fmt.Stringer
	isTerm()
}

// A universe level, the index of a type of types.
type Level uint32

// A term ascribed a type: `term : type`.
type Ann struct {
	Term Term
	Type Term
}

type Universe struct {
	Level Level
}

type Const struct {
	Value Constant
}

type FreeVar struct {
	Name Name
}

// A reference to the binder Scope levels up. Slot picks the variable within
// that binder's pattern, which is always 0 for the single-variable binders
// used here. Hint is the binder's spelling, kept for diagnostics.
type BoundVar struct {
	Hint  string
	Scope int
	Slot  int
}

// A dependent function type.
type Pi struct {
	Scope Scope
}

type Lam struct {
	Scope Scope
}

type App struct {
	Fn  Term
	Arg Term
}

type If struct {
	Cond Term
	Then Term
	Else Term
}

// One field of a record type, followed by the rest of the chain.
type RecordType struct {
	Label string
	Ann   Term
	Rest  Term
}

// One field of a record value, followed by the rest of the chain.
type Record struct {
	Label string
	Expr  Term
	Rest  Term
}

type EmptyRecordType struct{}

type EmptyRecord struct{}

type Proj struct {
	Expr  Term
	Label string
}

func (Ann) isTerm()             {}
func (Universe) isTerm()        {}
func (Const) isTerm()           {}
func (FreeVar) isTerm()         {}
func (BoundVar) isTerm()        {}
func (Pi) isTerm()              {}
func (Lam) isTerm()             {}
func (App) isTerm()             {}
func (If) isTerm()              {}
func (RecordType) isTerm()      {}
func (Record) isTerm()          {}
func (EmptyRecordType) isTerm() {}
func (EmptyRecord) isTerm()     {}
func (Proj) isTerm()            {}

func (t Ann) String() string             { return Show(t) }
func (t Universe) String() string        { return Show(t) }
func (t Const) String() string           { return Show(t) }
func (t FreeVar) String() string         { return Show(t) }
func (t BoundVar) String() string        { return Show(t) }
func (t Pi) String() string              { return Show(t) }
func (t Lam) String() string             { return Show(t) }
func (t App) String() string             { return Show(t) }
func (t If) String() string              { return Show(t) }
func (t RecordType) String() string      { return Show(t) }
func (t Record) String() string          { return Show(t) }
func (t EmptyRecordType) String() string { return Show(t) }
func (t EmptyRecord) String() string     { return Show(t) }
func (t Proj) String() string            { return Show(t) }

// Render a core term in a fully parenthesized debugging notation. Bound
// variables are shown as `hint@scope.slot` and never resolved, so the output
// reflects the nameless structure exactly.
func Show(t Term) string {
	switch t := t.(type) {
	case Ann:
		return fmt.Sprintf("(%s : %s)", Show(t.Term), Show(t.Type))
	case Universe:
		return fmt.Sprintf("Type^%d", t.Level)
	case Const:
		return t.Value.String()
	case FreeVar:
		return t.Name.String()
	case BoundVar:
		return fmt.Sprintf("%s@%d.%d", t.Hint, t.Scope, t.Slot)
	case Pi:
		return fmt.Sprintf("(Pi (%s : %s) %s)", t.Scope.Hint, Show(t.Scope.Ann), Show(t.Scope.Body))
	case Lam:
		return fmt.Sprintf("(\\(%s : %s) %s)", t.Scope.Hint, Show(t.Scope.Ann), Show(t.Scope.Body))
	case App:
		return fmt.Sprintf("(%s %s)", Show(t.Fn), Show(t.Arg))
	case If:
		return fmt.Sprintf("(if %s %s %s)", Show(t.Cond), Show(t.Then), Show(t.Else))
	case RecordType:
		return fmt.Sprintf("(Record %s : %s ; %s)", t.Label, Show(t.Ann), Show(t.Rest))
	case Record:
		return fmt.Sprintf("(record %s = %s ; %s)", t.Label, Show(t.Expr), Show(t.Rest))
	case EmptyRecordType:
		return "Record{}"
	case EmptyRecord:
		return "record{}"
	case Proj:
		return fmt.Sprintf("%s.%s", Show(t.Expr), t.Label)
	default:
		panic(fmt.Sprintf("core: unknown term %T", t))
	}
}
