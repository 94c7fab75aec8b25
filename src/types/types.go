package types

import (
	"github.com/hashicorp/go-set/v3"
)

type (
	// kind separates class types from the built-in sentinels so that
	// primitive checks are a membership test rather than an identity chain.
	kind int

	// Type is a nominal Java type: a unique name, the declared direct
	// supertypes, a map of its own methods, and at most one constructor.
	// Types are shared by reference and immutable once populated.
	Type struct {
		name        string
		kind        kind
		supertypes  *set.Set[*Type]
		methods     map[string]*Method
		constructor *Constructor
	}
)

const (
	classKind kind = iota
	primitiveKind
	voidKind
	nullKind
)

var (
	// Int is the Java primitive int type.
	Int = newBuiltin("int", primitiveKind)
	// Boolean is the Java primitive boolean type.
	Boolean = newBuiltin("boolean", primitiveKind)
	// Double is the Java primitive double type.
	Double = newBuiltin("double", primitiveKind)
	// Void is the Java void pseudo-type. Like the primitives it has no
	// methods and is never instantiable.
	Void = newBuiltin("void", voidKind)
	// Null is the sentinel static type of the null literal. It is accepted
	// as an argument wherever a class-typed parameter is expected and is
	// never instantiable.
	Null = newBuiltin("null", nullKind)
)

func newBuiltin(name string, k kind) *Type {
	return &Type{
		name:       name,
		kind:       k,
		supertypes: set.New[*Type](0),
		methods:    map[string]*Method{},
	}
}

// NewClass declares a class type with the given direct supertypes. The
// returned type has no methods and no constructor until DefineMethod and
// DefineConstructor are called; population must finish before any checking
// begins, and the type is treated as immutable from then on.
func NewClass(name string, supertypes ...*Type) *Type {
	return &Type{
		name:       name,
		kind:       classKind,
		supertypes: set.From(supertypes),
		methods:    map[string]*Method{},
	}
}

// DefineMethod adds a method to the type's own method map. A type exposes at
// most one method per name, so redefining a name replaces it. Returns the
// type so declarations chain.
func (t *Type) DefineMethod(m *Method) *Type {
	t.methods[m.name] = m
	return t
}

// DefineConstructor sets the type's single constructor.
func (t *Type) DefineConstructor(c *Constructor) *Type {
	t.constructor = c
	return t
}

// Name returns the type's unique name.
func (t *Type) Name() string { return t.name }

func (t *Type) String() string { return t.name }

// IsPrimitive reports whether t is one of int, boolean, double.
func (t *Type) IsPrimitive() bool { return t.kind == primitiveKind }

// IsVoid reports whether t is the void pseudo-type.
func (t *Type) IsVoid() bool { return t.kind == voidKind }

// IsNull reports whether t is the null sentinel type.
func (t *Type) IsNull() bool { return t.kind == nullKind }

// IsClass reports whether t is a caller-declared class type.
func (t *Type) IsClass() bool { return t.kind == classKind }

// DirectSupertypes returns the declared one-edge supertype set. Callers
// treat it as read-only. Self membership is not implied.
func (t *Type) DirectSupertypes() *set.Set[*Type] { return t.supertypes }

// MethodNamed looks the method up on this type's own map only; methods are
// not inherited from supertypes. The boolean distinguishes a missing method
// from a found one.
func (t *Type) MethodNamed(name string) (*Method, bool) {
	m, ok := t.methods[name]
	return m, ok
}

// Constructor returns the declared constructor if any. A type without one is
// not instantiable; there is no implied zero-argument default.
func (t *Type) Constructor() (*Constructor, bool) {
	return t.constructor, t.constructor != nil
}
