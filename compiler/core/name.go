package core

import (
	"fmt"

	"github.com/glossopoeia/resugar/compiler/util"
)

// A free variable name. User names come straight from source text and are
// identified by their spelling. Generated names are produced when a scope is
// opened; they are identified by a process-unique index, and keep the binder's
// spelling around only as a hint for display.
type Name struct {
	Hint string
	Gen  uint64
}

var gens util.IndexFresh

func UserName(name string) Name {
	return Name{Hint: name}
}

func freshName(hint string) Name {
	return Name{Hint: hint, Gen: gens.Next()}
}

func (n Name) IsUser() bool {
	return n.Gen == 0
}

// The raw internal representation of the name. Generated names carry their
// index so that distinct binders with the same hint stay distinguishable.
func (n Name) String() string {
	if n.IsUser() {
		return n.Hint
	}
	return fmt.Sprintf("%s$%d", n.Hint, n.Gen)
}
