package concrete

// The concrete syntax tree mirrors the surface grammar closely enough to be
// printed and re-parsed. Nodes carry source positions; trees built from core
// terms have no source to point at and use the zero positions throughout.
type Term interface {
	isTerm()
}

type ByteIndex int

type ByteSpan struct {
	Start ByteIndex
	End   ByteIndex
}

// An identifier together with its position, as found in binders and labels.
type Ident struct {
	Pos  ByteIndex
	Name string
}

// One group of a telescope: names that share a type, `(x y : A)`. Lambda
// parameters may leave the type out, in which case Ann is nil.
type Param struct {
	Names []Ident
	Ann   Term
}

// One field of a record type (`label : type`) or record value (`label = term`).
type Field struct {
	Pos   ByteIndex
	Label string
	Term  Term
}

// Parentheses, only ever introduced to preserve structure when printing.
type Parens struct {
	Span ByteSpan
	Term Term
}

type Ann struct {
	Term Term
	Type Term
}

// `Type` or `Type n`. A nil level is the bottom universe.
type Universe struct {
	Span  ByteSpan
	Level *uint32
}

type Var struct {
	Pos  ByteIndex
	Name string
}

type Literal struct {
	Span  ByteSpan
	Value Lit
}

// A dependent function type with a telescope of parameters.
type Pi struct {
	Pos    ByteIndex
	Params []Param
	Body   Term
}

// A non-dependent function type, `A -> B`.
type Arrow struct {
	Ann  Term
	Body Term
}

type Lam struct {
	Pos    ByteIndex
	Params []Param
	Body   Term
}

type App struct {
	Fn   Term
	Args []Term
}

type If struct {
	Pos  ByteIndex
	Cond Term
	Then Term
	Else Term
}

type RecordType struct {
	Span   ByteSpan
	Fields []Field
}

type Record struct {
	Span   ByteSpan
	Fields []Field
}

type Proj struct {
	Expr  Term
	Pos   ByteIndex
	Label string
}

func (Parens) isTerm()     {}
func (Ann) isTerm()        {}
func (Universe) isTerm()   {}
func (Var) isTerm()        {}
func (Literal) isTerm()    {}
func (Pi) isTerm()         {}
func (Arrow) isTerm()      {}
func (Lam) isTerm()        {}
func (App) isTerm()        {}
func (If) isTerm()         {}
func (RecordType) isTerm() {}
func (Record) isTerm()     {}
func (Proj) isTerm()       {}

// A literal value as written in source.
type Lit interface {
	isLit()
}

type StringLit string

type CharLit rune

// Integer literals are unsigned; the grammar has no negative literals.
type IntLit uint64

type FloatLit float64

func (StringLit) isLit() {}
func (CharLit) isLit()   {}
func (IntLit) isLit()    {}
func (FloatLit) isLit()  {}
