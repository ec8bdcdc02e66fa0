// Package driver builds the immutable type registry a checking pass
// runs against. Declarations come from a YAML hierarchy document; the
// expression trees themselves come from an external parser and are out
// of scope here.
package driver

import (
	"sort"

	"minijava/typechecker-go/pkg/types"
)

// Registry resolves declared type names for one checked program. It is
// immutable once returned by the loader and safe to share across any
// number of concurrent checking passes.
type Registry struct {
	byName map[string]types.Type
}

// builtins returns the pre-registered types every program starts with.
func builtins() map[string]types.Type {
	return map[string]types.Type{
		types.Void.Name():    types.Void,
		types.Boolean.Name(): types.Boolean,
		types.Int.Name():     types.Int,
		types.Double.Name():  types.Double,
		types.Null.Name():    types.Null,
		types.Object.Name():  types.Object,
	}
}

// Lookup returns the type registered under name.
func (r *Registry) Lookup(name string) (types.Type, bool) {
	t, ok := r.byName[name]
	return t, ok
}

// Class returns the declared class/interface registered under name,
// excluding primitives and null.
func (r *Registry) Class(name string) (*types.ClassOrInterface, bool) {
	t, ok := r.byName[name]
	if !ok {
		return nil, false
	}
	class, ok := t.(*types.ClassOrInterface)
	return class, ok
}

// Names lists every registered type name, built-ins included, sorted
// for stable iteration.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.byName))
	for name := range r.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
