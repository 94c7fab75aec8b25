package expr

import (
	"strings"

	"github.com/milobeyene/javacheck/src/jerrors"
	"github.com/milobeyene/javacheck/src/types"
)

type (
	// MethodCall is a Java method invocation, e.g. `foo.bar(0, 1)`.
	MethodCall struct {
		receiver Expression
		method   string
		args     []Expression
	}

	// ConstructorCall is a Java object instantiation, e.g. `new Foo(0, 1)`.
	ConstructorCall struct {
		instantiated *types.Type
		args         []Expression
	}
)

// NewMethodCall builds a method invocation on the receiver expression.
func NewMethodCall(receiver Expression, method string, args ...Expression) *MethodCall {
	return &MethodCall{receiver: receiver, method: method, args: args}
}

// Receiver returns the expression whose static type resolves the call.
func (mc *MethodCall) Receiver() Expression { return mc.receiver }

// Method returns the called method name.
func (mc *MethodCall) Method() string { return mc.method }

// StaticType is the return type of the called method, resolved through the
// receiver's static type. A failed lookup surfaces here as well as in
// CheckTypes, so a parent asking for an argument's type on the way to a
// deeper error gets the lookup failure rather than a panic.
func (mc *MethodCall) StaticType() (*types.Type, error) {
	m, _, err := mc.resolve()
	if err != nil {
		return nil, err
	}
	return m.ReturnType(), nil
}

// CheckTypes validates the call in rule order: receiver type, method lookup,
// arity, then each argument subtree followed by that argument's
// acceptability. The first violated rule wins.
func (mc *MethodCall) CheckTypes() error {
	m, recv, err := mc.resolve()
	if err != nil {
		return err
	}
	call := recv.Name() + "." + mc.method + "()"
	params := m.ParameterTypes()
	if len(params) != len(mc.args) {
		return jerrors.Newf(jerrors.ArityMismatch,
			"Wrong number of arguments for %s: expected %d, got %d",
			call, len(params), len(mc.args))
	}
	return checkArguments(call, params, mc.args, methodAccepts)
}

// resolve computes the receiver's static type and looks the method up on it,
// producing the same errors for StaticType and CheckTypes.
func (mc *MethodCall) resolve() (*types.Method, *types.Type, error) {
	recv, err := mc.receiver.StaticType()
	if err != nil {
		return nil, nil, err
	}
	if recv.IsPrimitive() || recv.IsVoid() {
		return nil, nil, jerrors.Newf(jerrors.NoMethodsOnPrimitive,
			"Type %s does not have methods", recv)
	}
	m, ok := recv.MethodNamed(mc.method)
	if !ok {
		return nil, nil, jerrors.Newf(jerrors.UnknownMethod,
			"%s has no method named %s", recv, mc.method)
	}
	return m, recv, nil
}

// NewConstructorCall builds an instantiation of the given type.
func NewConstructorCall(instantiated *types.Type, args ...Expression) *ConstructorCall {
	return &ConstructorCall{instantiated: instantiated, args: args}
}

// Instantiated returns the type the call instantiates.
func (cc *ConstructorCall) Instantiated() *types.Type { return cc.instantiated }

// StaticType is the instantiated type, unconditionally, even when the call
// itself would fail validation.
func (cc *ConstructorCall) StaticType() (*types.Type, error) {
	return cc.instantiated, nil
}

// CheckTypes validates the instantiation in rule order: instantiable type,
// constructor presence, arity, then each argument subtree followed by that
// argument's acceptability. The first violated rule wins.
func (cc *ConstructorCall) CheckTypes() error {
	t := cc.instantiated
	if t.IsPrimitive() || t.IsVoid() {
		return jerrors.Newf(jerrors.PrimitiveNotInstantiable,
			"Type %s is not instantiable", t)
	}
	if t.IsNull() {
		return jerrors.Newf(jerrors.NullNotInstantiable,
			"Type null is not instantiable")
	}
	ctor, ok := t.Constructor()
	if !ok {
		return jerrors.Newf(jerrors.NoSuchConstructor,
			"Type %s has no constructor", t)
	}
	call := t.Name() + " constructor"
	params := ctor.ParameterTypes()
	if len(params) != len(cc.args) {
		return jerrors.Newf(jerrors.ArityMismatch,
			"Wrong number of arguments for %s: expected %d, got %d",
			call, len(params), len(cc.args))
	}
	return checkArguments(call, params, cc.args, constructorAccepts)
}

// methodAccepts is the argument acceptability rule for method calls: exact
// type, declared direct supertype, or null for any parameter.
func methodAccepts(arg, param *types.Type) bool {
	return arg == param || arg.DirectSupertypes().Contains(param) || arg.IsNull()
}

// constructorAccepts mirrors methodAccepts but null is rejected for
// primitive and void parameters.
func constructorAccepts(arg, param *types.Type) bool {
	if arg == param || arg.DirectSupertypes().Contains(param) {
		return true
	}
	return arg.IsNull() && !param.IsPrimitive() && !param.IsVoid()
}

// checkArguments validates every argument subtree in order and tests each
// argument's static type against its parameter. A subtree error in an
// earlier argument is reported before a type mismatch at this call.
func checkArguments(call string, params []*types.Type, args []Expression, accepts func(arg, param *types.Type) bool) error {
	actual := make([]*types.Type, len(args))
	for i, arg := range args {
		if err := arg.CheckTypes(); err != nil {
			return err
		}
		at, err := arg.StaticType()
		if err != nil {
			return err
		}
		actual[i] = at
		if accepts(at, params[i]) {
			continue
		}
		// The message names the full expected and actual tuples, so the
		// static types of the arguments after the offending one are still
		// needed. A lookup failure among them propagates instead.
		for j := i + 1; j < len(args); j++ {
			if actual[j], err = args[j].StaticType(); err != nil {
				return err
			}
		}
		return jerrors.Newf(jerrors.ArgumentTypeMismatch,
			"%s expects arguments of type %s, but got %s",
			call, typeNames(params), typeNames(actual))
	}
	return nil
}

func typeNames(list []*types.Type) string {
	parts := make([]string, len(list))
	for i, t := range list {
		parts[i] = t.Name()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
