package resugar

import (
	"fmt"

	"github.com/glossopoeia/resugar/compiler/core"
)

// The ways an input term can break the contract the resugarer relies on.
// These are never caused by user programs, only by the producer of the core
// terms, so they are kept apart from ordinary diagnostics.
type ErrorKind int

const (
	// A bound variable was reached that no enclosing binder accounts for,
	// meaning the input was not locally closed.
	UnresolvedBoundVar ErrorKind = iota + 1
	// A record chain ended in something other than the matching empty record.
	MalformedRecordChain
)

func (k ErrorKind) String() string {
	switch k {
	case UnresolvedBoundVar:
		return "unresolved bound variable"
	case MalformedRecordChain:
		return "malformed record chain"
	default:
		panic("resugar: invalid error kind encountered")
	}
}

// An internal consistency failure, carrying the offending sub-term.
type InternalError struct {
	Kind ErrorKind
	Term core.Term
}

var (
	ErrUnresolvedBoundVar   = &InternalError{Kind: UnresolvedBoundVar}
	ErrMalformedRecordChain = &InternalError{Kind: MalformedRecordChain}
)

func (e *InternalError) Error() string {
	if e.Term == nil {
		return fmt.Sprintf("resugar: internal error: %s", e.Kind)
	}
	switch e.Kind {
	case UnresolvedBoundVar:
		return fmt.Sprintf("resugar: internal error: term is not locally closed, found %s", e.Term)
	default:
		return fmt.Sprintf("resugar: internal error: %s ending in %s", e.Kind, e.Term)
	}
}

// Errors of the same kind match, so callers can use errors.Is with the
// exported sentinels regardless of which term triggered the failure.
func (e *InternalError) Is(target error) bool {
	t, ok := target.(*InternalError)
	return ok && t.Kind == e.Kind
}
