package types

import (
	"maps"
	"slices"
)

// Universe is an explicit registry of the types one checking session may
// reference by name. It is passed to collaborators such as the parser rather
// than living as ambient global state, so independent universes can coexist
// in tests. Every universe is seeded with the primitive and void singletons
// so source-level names like `int` resolve without special cases.
type Universe struct {
	named map[string]*Type
}

// NewUniverse returns a universe containing only the built-in types.
func NewUniverse() *Universe {
	u := &Universe{named: map[string]*Type{}}
	for _, t := range []*Type{Int, Boolean, Double, Void} {
		u.named[t.name] = t
	}
	return u
}

// Define registers a type under its name and returns it so declarations can
// chain into DefineMethod and DefineConstructor calls.
func (u *Universe) Define(t *Type) *Type {
	u.named[t.name] = t
	return t
}

// Lookup resolves a type name. The boolean distinguishes an unknown name
// from a found type.
func (u *Universe) Lookup(name string) (*Type, bool) {
	t, ok := u.named[name]
	return t, ok
}

// Names returns the sorted names of every type in the universe.
func (u *Universe) Names() []string {
	return slices.Sorted(maps.Keys(u.named))
}
