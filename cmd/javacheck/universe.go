package main

import (
	"github.com/milobeyene/javacheck/src/types"
)

// demoUniverse builds the types the CLI resolves names against: a core of
// Object and String plus a small shape-drawing class set so the repl is
// usable out of the box. Supertype edges are wired transitively because the
// checker only ever consults direct supertypes.
func demoUniverse() *types.Universe {
	u := types.NewUniverse()

	object := u.Define(types.NewClass("Object")).
		DefineConstructor(types.NewConstructor())

	str := u.Define(types.NewClass("String", object)).
		DefineMethod(types.NewMethod("length", types.Int))

	paint := u.Define(types.NewClass("Paint", object))
	u.Define(types.NewClass("Color", paint, object)).
		DefineConstructor(types.NewConstructor(types.Int, types.Int, types.Int))

	size := u.Define(types.NewClass("Size", object)).
		DefineConstructor(types.NewConstructor(types.Double, types.Double)).
		DefineMethod(types.NewMethod("getWidth", types.Double)).
		DefineMethod(types.NewMethod("getHeight", types.Double))

	point := u.Define(types.NewClass("Point", object)).
		DefineConstructor(types.NewConstructor(types.Double, types.Double)).
		DefineMethod(types.NewMethod("getX", types.Double)).
		DefineMethod(types.NewMethod("getY", types.Double))

	graphicsObject := u.Define(types.NewClass("GraphicsObject", object)).
		DefineMethod(types.NewMethod("getPosition", point)).
		DefineMethod(types.NewMethod("getSize", size))

	u.Define(types.NewClass("Rectangle", graphicsObject, object)).
		DefineConstructor(types.NewConstructor(point, size)).
		DefineMethod(types.NewMethod("getSize", size)).
		DefineMethod(types.NewMethod("setFillColor", types.Void, paint)).
		DefineMethod(types.NewMethod("setStrokeColor", types.Void, paint))

	u.Define(types.NewClass("GraphicsGroup", graphicsObject, object)).
		DefineConstructor(types.NewConstructor()).
		DefineMethod(types.NewMethod("add", types.Void, graphicsObject))

	u.Define(types.NewClass("Window", object)).
		DefineConstructor(types.NewConstructor(size)).
		DefineMethod(types.NewMethod("getSize", size)).
		DefineMethod(types.NewMethod("setTitle", types.Void, str))

	return u
}
