package prec

// Every concrete term constructor has a natural precedence, and every position
// a sub-term can be placed in demands a minimum precedence. When a term is put
// in a position demanding more than it naturally has, it must be wrapped in
// parentheses to re-parse with the same structure. The classes mirror the
// nonterminals of the concrete grammar, loosest first.
type Prec int8

const (
	// Positions at NoWrap never parenthesize anything. Used at the top level.
	NoWrap Prec = iota - 1
	// Corresponds to `Term` in the parser, the position of an annotation type.
	Ann
	// Corresponds to `LamTerm`, the position of lambda and pi bodies.
	Lam
	// Corresponds to `PiTerm`, the position of function types.
	Pi
	// Corresponds to `AppTerm`, the position of application heads and pi domains.
	App
	// Corresponds to `AtomicTerm`, the position of arguments and projection bases.
	Atomic
)

// All precedence classes in ascending order.
var All = []Prec{NoWrap, Ann, Lam, Pi, App, Atomic}

// Whether a term of natural precedence p must be parenthesized when placed in
// a position that requires the given precedence. Equal or tighter precedence
// never wraps.
func (p Prec) Wraps(required Prec) bool {
	return p < required
}

func (p Prec) String() string {
	switch p {
	case NoWrap:
		return "nowrap"
	case Ann:
		return "ann"
	case Lam:
		return "lam"
	case Pi:
		return "pi"
	case App:
		return "app"
	case Atomic:
		return "atomic"
	default:
		panic("prec: invalid precedence encountered")
	}
}
