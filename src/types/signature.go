package types

type (
	// Method is an immutable method signature: a name, an ordered list of
	// parameter types with fixed arity, and a return type. There is no
	// overloading; a name resolves to at most one Method per type.
	Method struct {
		name       string
		parameters []*Type
		returnType *Type
	}

	// Constructor is an immutable constructor signature owned by exactly one
	// type: an ordered list of parameter types with fixed arity.
	Constructor struct {
		parameters []*Type
	}
)

// NewMethod builds a method signature.
func NewMethod(name string, returnType *Type, parameters ...*Type) *Method {
	return &Method{name: name, parameters: parameters, returnType: returnType}
}

// Name returns the method name.
func (m *Method) Name() string { return m.name }

// ParameterTypes returns the ordered parameter types. Callers treat the
// slice as read-only.
func (m *Method) ParameterTypes() []*Type { return m.parameters }

// ReturnType returns the method's declared return type.
func (m *Method) ReturnType() *Type { return m.returnType }

// NewConstructor builds a constructor signature.
func NewConstructor(parameters ...*Type) *Constructor {
	return &Constructor{parameters: parameters}
}

// ParameterTypes returns the ordered parameter types. Callers treat the
// slice as read-only.
func (c *Constructor) ParameterTypes() []*Type { return c.parameters }
