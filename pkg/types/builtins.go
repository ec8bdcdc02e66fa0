package types

// Built-in types of the checked language subset.
var (
	Void    = &Primitive{name: "void"}
	Boolean = &Primitive{name: "boolean"}
	Int     = &Primitive{name: "int"}
	Double  = &Primitive{name: "double"}

	// Null is the singleton type of the null literal.
	Null = &NullType{}

	// Object is the implicit root of the class hierarchy.
	Object = NewClassOrInterface("Object", nil, nil, nil)
)

func init() {
	// equals takes Object itself, so the entry is linked once the type
	// exists rather than passed to the constructor.
	Object.DefineMethod(NewMethod("equals", []Type{Object}, Boolean))
	Object.DefineMethod(NewMethod("hashCode", nil, Int))
}
