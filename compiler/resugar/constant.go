package resugar

import (
	"fmt"

	"github.com/glossopoeia/resugar/compiler/concrete"
	"github.com/glossopoeia/resugar/compiler/core"
)

// Translate a primitive constant. Booleans and primitive types become
// references to their reserved names, everything else a literal. Integers of
// every width are widened to the unsigned 64-bit literal the grammar has, so
// negative signed values show as their two's complement.
func Constant(c core.Constant) concrete.Term {
	switch c := c.(type) {
	case core.Bool:
		if c {
			return concrete.Var{Name: "true"}
		}
		return concrete.Var{Name: "false"}
	case core.String:
		return literal(concrete.StringLit(c))
	case core.Char:
		return literal(concrete.CharLit(c))
	case core.U8:
		return literal(concrete.IntLit(c))
	case core.U16:
		return literal(concrete.IntLit(c))
	case core.U32:
		return literal(concrete.IntLit(c))
	case core.U64:
		return literal(concrete.IntLit(c))
	// FIXME: negative values wrap around until the grammar grows signed literals
	case core.I8:
		return literal(concrete.IntLit(c))
	case core.I16:
		return literal(concrete.IntLit(c))
	case core.I32:
		return literal(concrete.IntLit(c))
	case core.I64:
		return literal(concrete.IntLit(c))
	case core.F32:
		return literal(concrete.FloatLit(c))
	case core.F64:
		return literal(concrete.FloatLit(c))
	case core.PrimType:
		return concrete.Var{Name: c.String()}
	default:
		panic(fmt.Sprintf("resugar: unknown constant %T", c))
	}
}

func literal(l concrete.Lit) concrete.Term {
	return concrete.Literal{Value: l}
}
