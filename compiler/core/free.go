package core

import (
	"github.com/glossopoeia/resugar/compiler/util"
	"github.com/hashicorp/go-set/v3"
)

// The set of names occurring free in the term.
func FreeVars(t Term) *set.Set[Name] {
	acc := set.New[Name](0)
	mapVars(t, 0, func(v Term, _ int) Term {
		if fv, ok := v.(FreeVar); ok {
			acc.Insert(fv.Name)
		}
		return v
	})
	return acc
}

// The number of occurrences of each distinct free name in the term.
func Occurrences(t Term) map[Name]int {
	occ := make(map[Name]int)
	mapVars(t, 0, func(v Term, _ int) Term {
		if fv, ok := v.(FreeVar); ok {
			occ[fv.Name] += 1
		}
		return v
	})
	return occ
}

// The spellings of the user names occurring free in the term, sorted.
func FreeUserNames(t Term) []string {
	users := make(map[string]int)
	for name, n := range Occurrences(t) {
		if name.IsUser() {
			users[name.Hint] += n
		}
	}
	return util.SortedKeys(users)
}

// Whether every bound variable in the term is satisfied by a binder within it.
func IsLocallyClosed(t Term) bool {
	closed := true
	mapVars(t, 0, func(v Term, depth int) Term {
		if bv, ok := v.(BoundVar); ok && bv.Scope >= depth {
			closed = false
		}
		return v
	})
	return closed
}
