package resugar

import (
	"github.com/glossopoeia/resugar/compiler/core"
	"github.com/hashicorp/go-set/v3"
	"golang.org/x/exp/maps"
)

// The binders in scope at some point of the translation, mapping each opened
// name to the string it is displayed as. Extending an environment leaves the
// original untouched, so sibling sub-terms never see each other's binders.
type env struct {
	names   map[core.Name]string
	visible *set.Set[string]
}

func newEnv() env {
	return env{map[core.Name]string{}, set.New[string](0)}
}

func (e env) extend(name core.Name, display string) env {
	names := maps.Clone(e.names)
	names[name] = display
	visible := e.visible.Copy()
	visible.Insert(display)
	return env{names, visible}
}

// The display string for a free name. Names opened by an enclosing binder
// use the binder's display name, user names are shown as written, and any
// other generated name falls back to its raw form.
func (e env) lookup(name core.Name) string {
	if display, ok := e.names[name]; ok {
		return display
	}
	return name.String()
}
