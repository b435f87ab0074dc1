package util

import (
	"fmt"
	"sync/atomic"
)

// A fresh index source that is safe to share between goroutines. Binder
// identities are drawn from a single process-wide instance so that opening
// scopes in different places never produces the same name.
type IndexFresh struct {
	state atomic.Uint64
}

// Indices start at one, leaving zero free to mean "not generated".
func (f *IndexFresh) Next() uint64 {
	return f.state.Add(1)
}

// Display names for one translation. Separate instances may hand out the same
// names, so these are never used as binder identities.
type NameFresh struct {
	prefixes map[string]int
}

func NewNameFresh() NameFresh {
	return NameFresh{map[string]int{}}
}

// Return the next fresh name with the given prefix. Streams of prefixed names
// are maintained separately, so generating a name for prefix "a" will not
// change the next name for prefix "b". The first name for a prefix is
// suffixed with 1, since the bare prefix is usually tried by the caller first.
func (f *NameFresh) NextPrefix(prefix string) string {
	f.prefixes[prefix] += 1
	return fmt.Sprintf("%s%d", prefix, f.prefixes[prefix])
}
