package resugar

import (
	"io"
	"log/slog"

	"github.com/glossopoeia/resugar/compiler/concrete"
	"github.com/glossopoeia/resugar/compiler/core"
	"github.com/glossopoeia/resugar/compiler/prec"
	"github.com/glossopoeia/resugar/compiler/util"
	"github.com/hashicorp/go-set/v3"
	"github.com/rjNemo/underscore"
)

// Translates core syntax back into concrete syntax, reconstructing the sugar
// the elaborator removed: minimal parentheses, named binders, arrows for
// non-dependent function types, telescopes, flat records, and definition
// headers with parameters. Every result re-parses to the term it came from.
//
// A Resugarer holds no state between calls and may be shared freely.
type Resugarer struct {
	opts     Options
	reserved *set.Set[string]
	logger   *slog.Logger
}

func New(opts Options) *Resugarer {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	reserved := set.From(Keywords)
	reserved.InsertSlice(opts.Reserved)
	return &Resugarer{
		opts:     opts,
		reserved: reserved,
		logger:   logger.With("section", "resugar"),
	}
}

var defaultResugarer = New(DefaultOptions())

// Translate a term with the default options, in a position that never needs
// parentheses.
func Term(t core.Term) (concrete.Term, error) {
	return defaultResugarer.Term(t)
}

func TermPrec(t core.Term, p prec.Prec) (concrete.Term, error) {
	return defaultResugarer.TermPrec(t, p)
}

func Value(v core.Value) (concrete.Term, error) {
	return defaultResugarer.Value(v)
}

func Neutral(n core.Neutral) (concrete.Term, error) {
	return defaultResugarer.Neutral(n)
}

func Definition(def core.Definition) (concrete.Claim, concrete.Definition, error) {
	return defaultResugarer.Definition(def)
}

func Module(mod core.Module) (concrete.Module, error) {
	return defaultResugarer.Module(mod)
}

func (r *Resugarer) Term(t core.Term) (concrete.Term, error) {
	return r.TermPrec(t, prec.NoWrap)
}

// Translate a term for a position requiring the given precedence. The term
// must be locally closed.
func (r *Resugarer) TermPrec(t core.Term, p prec.Prec) (concrete.Term, error) {
	return r.term(t, p, newEnv())
}

func parensIf(wrap bool, inner concrete.Term) concrete.Term {
	if wrap {
		return concrete.Parens{Term: inner}
	}
	return inner
}

// Choose how a binder is displayed, returning the display name and the
// environment for its body. The name must not clash with free user names of
// the annotation either, or a later parameter typed by this binder could
// print the same as one typed by the outer name.
func (r *Resugarer) bindName(e env, name core.Name, ann, body core.Term, used bool) (string, env) {
	hint := name.Hint
	if hint == "" || hint == "_" {
		if !used {
			return "_", e
		}
		hint = "x"
	}
	if !r.opts.AvoidCapture {
		return hint, e.extend(name, hint)
	}

	free := core.FreeUserNames(body)
	free = append(free, core.FreeUserNames(ann)...)
	taken := func(s string) bool {
		return r.reserved.Contains(s) || e.visible.Contains(s) || underscore.Contains(free, s)
	}
	display := hint
	fresh := util.NewNameFresh()
	for taken(display) {
		display = fresh.NextPrefix(hint)
	}
	if display != name.Hint {
		r.logger.Debug("renamed binder", "hint", name.Hint, "display", display)
	}
	return display, e.extend(name, display)
}
