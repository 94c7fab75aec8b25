package expr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milobeyene/javacheck/src/jerrors"
	"github.com/milobeyene/javacheck/src/types"
)

// graphics is the shape-drawing class set the engine tests run against,
// one universe per test so nothing is shared between parallel tests.
type graphics struct {
	object, str, paint, color   *types.Type
	size, point, graphicsObject *types.Type
	rectangle, group, window    *types.Type
}

func newGraphics() *graphics {
	g := &graphics{}
	g.object = types.NewClass("Object")
	g.str = types.NewClass("String", g.object).
		DefineMethod(types.NewMethod("length", types.Int))
	g.paint = types.NewClass("Paint", g.object)
	g.color = types.NewClass("Color", g.paint, g.object).
		DefineConstructor(types.NewConstructor(types.Int, types.Int, types.Int))
	g.size = types.NewClass("Size", g.object).
		DefineConstructor(types.NewConstructor(types.Double, types.Double))
	g.point = types.NewClass("Point", g.object).
		DefineConstructor(types.NewConstructor(types.Double, types.Double))
	g.graphicsObject = types.NewClass("GraphicsObject", g.object).
		DefineMethod(types.NewMethod("getSize", g.size))
	g.rectangle = types.NewClass("Rectangle", g.graphicsObject, g.object).
		DefineConstructor(types.NewConstructor(g.point, g.size)).
		DefineMethod(types.NewMethod("getSize", g.size)).
		DefineMethod(types.NewMethod("setFillColor", types.Void, g.paint))
	g.group = types.NewClass("GraphicsGroup", g.graphicsObject, g.object).
		DefineConstructor(types.NewConstructor()).
		DefineMethod(types.NewMethod("add", types.Void, g.graphicsObject))
	g.window = types.NewClass("Window", g.object).
		DefineMethod(types.NewMethod("getSize", g.size))
	return g
}

func assertTypeError(t *testing.T, err error, kind jerrors.Kind, msg string) {
	t.Helper()
	var jerr *jerrors.Error
	require.ErrorAs(t, err, &jerr)
	assert.Equal(t, kind, jerr.Kind)
	assert.EqualError(t, jerr.Err, msg)
}

func TestWellTypedMethodCall(t *testing.T) {
	t.Parallel()
	g := newGraphics()
	call := NewMethodCall(
		NewVariable("rect", g.rectangle),
		"setFillColor",
		NewVariable("c", g.color))
	require.NoError(t, call.CheckTypes())
	st, err := call.StaticType()
	require.NoError(t, err)
	assert.Same(t, types.Void, st)
	assert.Equal(t, "setFillColor", call.Method())
}

func TestCallOnPrimitiveReceiver(t *testing.T) {
	t.Parallel()
	cases := []struct {
		receiver *types.Type
		want     string
	}{
		{types.Int, "Type int does not have methods"},
		{types.Boolean, "Type boolean does not have methods"},
		{types.Double, "Type double does not have methods"},
		{types.Void, "Type void does not have methods"},
	}

	for _, tc := range cases {
		call := NewMethodCall(NewVariable("x", tc.receiver), "hashCode")
		assertTypeError(t, call.CheckTypes(), jerrors.NoMethodsOnPrimitive, tc.want)
		_, err := call.StaticType()
		assertTypeError(t, err, jerrors.NoMethodsOnPrimitive, tc.want)
	}
}

func TestCallToUnknownMethod(t *testing.T) {
	t.Parallel()
	g := newGraphics()
	call := NewMethodCall(NewVariable("o", g.object), "foo")
	assertTypeError(t, call.CheckTypes(), jerrors.UnknownMethod,
		"Object has no method named foo")
}

func TestCallOnNullReceiver(t *testing.T) {
	t.Parallel()
	call := NewMethodCall(NewNullLiteral(), "hashCode")
	assertTypeError(t, call.CheckTypes(), jerrors.UnknownMethod,
		"null has no method named hashCode")
}

func TestMethodCallArityMismatch(t *testing.T) {
	t.Parallel()
	g := newGraphics()
	call := NewMethodCall(
		NewVariable("s", g.str),
		"length",
		NewLiteral("x", g.str))
	assertTypeError(t, call.CheckTypes(), jerrors.ArityMismatch,
		"Wrong number of arguments for String.length(): expected 0, got 1")
}

func TestArityCheckedBeforeArgumentTypes(t *testing.T) {
	t.Parallel()
	g := newGraphics()
	// Both arguments are the wrong type, but the count is wrong too; the
	// arity error masks the type errors.
	call := NewMethodCall(
		NewVariable("rect", g.rectangle),
		"setFillColor",
		NewLiteral("1", types.Int),
		NewLiteral("2", types.Int))
	assertTypeError(t, call.CheckTypes(), jerrors.ArityMismatch,
		"Wrong number of arguments for Rectangle.setFillColor(): expected 1, got 2")
}

func TestSubtypeArgumentAccepted(t *testing.T) {
	t.Parallel()
	g := newGraphics()
	call := NewMethodCall(
		NewVariable("group", g.group),
		"add",
		NewVariable("rect", g.rectangle))
	require.NoError(t, call.CheckTypes())
}

func TestSupertypeArgumentRejected(t *testing.T) {
	t.Parallel()
	g := newGraphics()
	call := NewMethodCall(
		NewVariable("rect", g.rectangle),
		"setFillColor",
		NewVariable("o", g.object))
	assertTypeError(t, call.CheckTypes(), jerrors.ArgumentTypeMismatch,
		"Rectangle.setFillColor() expects arguments of type (Paint), but got (Object)")
}

func TestSupertypeAcceptanceIsOneLevelOnly(t *testing.T) {
	t.Parallel()
	animal := types.NewClass("Animal")
	dog := types.NewClass("Dog", animal)
	puppy := types.NewClass("Puppy", dog)
	feeder := types.NewClass("Feeder").
		DefineMethod(types.NewMethod("feed", types.Void, animal))

	ok := NewMethodCall(NewVariable("f", feeder), "feed", NewVariable("d", dog))
	require.NoError(t, ok.CheckTypes())

	grandchild := NewMethodCall(NewVariable("f", feeder), "feed", NewVariable("p", puppy))
	assertTypeError(t, grandchild.CheckTypes(), jerrors.ArgumentTypeMismatch,
		"Feeder.feed() expects arguments of type (Animal), but got (Puppy)")
}

func TestNullArgumentForClassParameter(t *testing.T) {
	t.Parallel()
	g := newGraphics()
	call := NewMethodCall(
		NewVariable("rect", g.rectangle),
		"setFillColor",
		NewNullLiteral())
	require.NoError(t, call.CheckTypes())
}

func TestMethodCallAcceptsNullForPrimitiveParameter(t *testing.T) {
	t.Parallel()
	// Method calls keep the original acceptance rule: a null argument passes
	// for any parameter type. Constructors are the stricter case.
	sized := types.NewClass("Sized").
		DefineMethod(types.NewMethod("setWidth", types.Void, types.Double))
	call := NewMethodCall(NewVariable("s", sized), "setWidth", NewNullLiteral())
	require.NoError(t, call.CheckTypes())
}

func TestMethodCallStaticTypeSurvivesBadArguments(t *testing.T) {
	t.Parallel()
	g := newGraphics()
	call := NewMethodCall(
		NewVariable("rect", g.rectangle),
		"setFillColor",
		NewVariable("o", g.object))
	require.Error(t, call.CheckTypes())
	st, err := call.StaticType()
	require.NoError(t, err)
	assert.Same(t, types.Void, st)
}

func TestReceiverLookupErrorPropagates(t *testing.T) {
	t.Parallel()
	g := newGraphics()
	inner := NewMethodCall(NewVariable("o", g.object), "foo")
	outer := NewMethodCall(inner, "getSize")
	assertTypeError(t, outer.CheckTypes(), jerrors.UnknownMethod,
		"Object has no method named foo")
	_, err := outer.StaticType()
	assertTypeError(t, err, jerrors.UnknownMethod,
		"Object has no method named foo")
}

func TestArgumentSubtreeErrorReportedFirst(t *testing.T) {
	t.Parallel()
	g := newGraphics()
	// The argument's own type error outranks the mismatch it would cause
	// at this call.
	call := NewMethodCall(
		NewVariable("group", g.group),
		"add",
		NewConstructorCall(g.point, NewNullLiteral(), NewLiteral("0", types.Double)))
	assertTypeError(t, call.CheckTypes(), jerrors.ArgumentTypeMismatch,
		"Point constructor expects arguments of type (double, double), but got (null, double)")
}

func TestWellTypedDeepExpression(t *testing.T) {
	t.Parallel()
	g := newGraphics()
	call := NewMethodCall(
		NewVariable("group", g.group),
		"add",
		NewConstructorCall(g.rectangle,
			NewNullLiteral(),
			NewNullLiteral()))
	require.NoError(t, call.CheckTypes())
}

func TestDeepExpressionErrorSurfaces(t *testing.T) {
	t.Parallel()
	g := newGraphics()
	call := NewMethodCall(
		NewVariable("group", g.group),
		"add",
		NewConstructorCall(g.rectangle,
			NewConstructorCall(g.size,
				NewNullLiteral(),
				NewLiteral("0", types.Double)),
			NewMethodCall(NewVariable("window", g.window), "getSize")))
	assertTypeError(t, call.CheckTypes(), jerrors.ArgumentTypeMismatch,
		"Size constructor expects arguments of type (double, double), but got (null, double)")
}

func TestMismatchMessageNamesAllArguments(t *testing.T) {
	t.Parallel()
	g := newGraphics()
	call := NewConstructorCall(g.rectangle,
		NewVariable("s", g.size),
		NewVariable("p", g.point))
	assertTypeError(t, call.CheckTypes(), jerrors.ArgumentTypeMismatch,
		"Rectangle constructor expects arguments of type (Point, Size), but got (Size, Point)")
}
