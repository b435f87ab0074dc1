package concrete

type Declaration interface {
	isDeclaration()
}

// A type claim, `name : type;`.
type Claim struct {
	Name Ident
	Ann  Term
}

// A definition, `name params = body;`, optionally followed by local
// declarations in a where clause.
type Definition struct {
	Span   ByteSpan
	Name   string
	Params []Param
	Body   Term
	Wheres []Declaration
}

func (Claim) isDeclaration()      {}
func (Definition) isDeclaration() {}

type Module struct {
	Name         Ident
	Declarations []Declaration
}
