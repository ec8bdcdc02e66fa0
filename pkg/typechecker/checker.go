// Package typechecker validates expression trees against a declared
// class/interface hierarchy. It exposes two entry points per tree:
// StaticType, a pure query for an expression's compile-time type, and
// Check, a fail-fast validation pass. Checking never mutates the tree
// or the type registry, so any number of passes may run concurrently
// over a published registry.
package typechecker

import (
	"minijava/typechecker-go/pkg/ast"
	"minijava/typechecker-go/pkg/types"
)

// StaticType returns the compile-time type of expr: the most specific
// type that describes every value the expression could take on at
// runtime. It is a pure query and performs no validation. For a method
// call whose method cannot be resolved it returns nil; Check is the
// operation that surfaces that failure as an error.
func StaticType(expr ast.Expression) types.Type {
	switch e := expr.(type) {
	case *ast.Variable:
		return e.DeclaredType
	case *ast.Literal:
		return e.LiteralType
	case *ast.NullLiteral:
		return types.Null
	case *ast.MethodCall:
		receiver := StaticType(e.Receiver)
		ms, ok := receiver.(types.MethodSet)
		if !ok {
			return nil
		}
		method, err := ms.MethodNamed(e.MethodName)
		if err != nil {
			return nil
		}
		return method.ReturnType()
	case *ast.ConstructorCall:
		return e.InstantiatedType
	default:
		return nil
	}
}

// Check validates expr depth-first, left to right, and returns the
// first violation found. Variables, literals, and null always pass:
// their declared types are trusted. A composite expression never
// reports its own arity/type contract violation before all of its
// subexpressions have independently passed. The error is one of the
// TypeError kinds or a *types.NoSuchMethodError; a failed check is
// terminal for the tree.
func Check(expr ast.Expression) error {
	switch e := expr.(type) {
	case *ast.MethodCall:
		return checkMethodCall(e)
	case *ast.ConstructorCall:
		return checkConstructorCall(e)
	default:
		return nil
	}
}
