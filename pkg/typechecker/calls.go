package typechecker

import (
	"minijava/typechecker-go/pkg/ast"
	"minijava/typechecker-go/pkg/types"
)

func checkMethodCall(call *ast.MethodCall) error {
	// The receiver is the leftmost subexpression; its own failure
	// replaces anything this call site would report.
	if err := Check(call.Receiver); err != nil {
		return err
	}
	receiver := StaticType(call.Receiver)
	ms, ok := receiver.(types.MethodSet)
	if !ok {
		// Primitive receivers cannot be called.
		return &UncallableTypeError{TypeName: receiver.Name(), Method: call.MethodName}
	}
	method, err := ms.MethodNamed(call.MethodName)
	if err != nil {
		return err
	}
	for _, arg := range call.Args {
		if err := Check(arg); err != nil {
			return err
		}
	}
	params := method.ParameterTypes()
	if len(call.Args) != len(params) {
		return &ArityError{
			TypeName: receiver.Name(),
			Method:   call.MethodName,
			Expected: len(params),
			Got:      len(call.Args),
		}
	}
	for i, param := range params {
		if !StaticType(call.Args[i]).SubtypeOf(param) {
			return &ArgumentTypeError{
				TypeName: receiver.Name(),
				Method:   call.MethodName,
				Expected: typeNames(params),
				Got:      argumentTypeNames(call.Args),
			}
		}
	}
	return nil
}

func checkConstructorCall(call *ast.ConstructorCall) error {
	target := call.InstantiatedType
	class, ok := target.(*types.ClassOrInterface)
	if !ok || !target.Instantiable() {
		// null and primitives cannot be instantiated.
		return &NotInstantiableError{TypeName: target.Name()}
	}
	for _, arg := range call.Args {
		if err := Check(arg); err != nil {
			return err
		}
	}
	params := class.Constructor().ParameterTypes()
	if len(call.Args) != len(params) {
		return &ArityError{
			TypeName: class.Name(),
			Expected: len(params),
			Got:      len(call.Args),
		}
	}
	for i, param := range params {
		if !StaticType(call.Args[i]).SubtypeOf(param) {
			return &ArgumentTypeError{
				TypeName: class.Name(),
				Expected: typeNames(params),
				Got:      argumentTypeNames(call.Args),
			}
		}
	}
	return nil
}

// typeNames renders a type list as names in declaration order.
func typeNames(ts []types.Type) []string {
	names := make([]string, len(ts))
	for i, t := range ts {
		names[i] = t.Name()
	}
	return names
}

// argumentTypeNames renders the static types of an argument list. The
// arguments have already passed Check, so every static type resolves.
func argumentTypeNames(args []ast.Expression) []string {
	names := make([]string, len(args))
	for i, arg := range args {
		names[i] = StaticType(arg).Name()
	}
	return names
}
