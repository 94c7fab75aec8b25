// Package types models the nominal Java types the checker reasons about. A
// type is its identity: two *Type values name the same type only when they
// are the same pointer, never by structural comparison. The built-in
// primitives, void, and the null sentinel are canonical package-level
// singletons; class types are declared by the caller and collected into a
// Universe before any checking begins. Supertype edges are exactly the ones
// declared: the checker reads DirectSupertypes once and never walks the
// hierarchy, so a universe that wants transitive acceptance has to wire the
// transitive edges itself.
package types
