package typechecker

import (
	"fmt"
	"strings"
)

// TypeError is the umbrella for compile-time type violations found by
// Check. Each kind carries structured fields rather than pre-formatted
// text, so a presentation layer can render them independently; Error()
// gives a reasonable default message.
type TypeError interface {
	error
	Kind() string
}

// ArityError reports a call supplying the wrong number of arguments.
// Method is empty for constructor calls.
type ArityError struct {
	TypeName string
	Method   string
	Expected int
	Got      int
}

func (e *ArityError) Kind() string { return "Arity" }

func (e *ArityError) Error() string {
	if e.Method == "" {
		return fmt.Sprintf("wrong number of arguments for %s constructor: expected %d, got %d",
			e.TypeName, e.Expected, e.Got)
	}
	return fmt.Sprintf("wrong number of arguments for %s.%s(): expected %d, got %d",
		e.TypeName, e.Method, e.Expected, e.Got)
}

// ArgumentTypeError reports an argument whose static type is not a
// subtype of the declared parameter type. Expected and Got carry the
// full type-name lists in declaration order.
type ArgumentTypeError struct {
	TypeName string
	Method   string
	Expected []string
	Got      []string
}

func (e *ArgumentTypeError) Kind() string { return "ArgumentType" }

func (e *ArgumentTypeError) Error() string {
	callSite := e.TypeName + " constructor"
	if e.Method != "" {
		callSite = fmt.Sprintf("%s.%s()", e.TypeName, e.Method)
	}
	return fmt.Sprintf("%s expects arguments of type (%s), but got (%s)",
		callSite, strings.Join(e.Expected, ", "), strings.Join(e.Got, ", "))
}

// UncallableTypeError reports a method call whose receiver has a
// primitive static type.
type UncallableTypeError struct {
	TypeName string
	Method   string
}

func (e *UncallableTypeError) Kind() string { return "UncallableType" }

func (e *UncallableTypeError) Error() string {
	return fmt.Sprintf("cannot call %s() on %s: type %s has no methods", e.Method, e.TypeName, e.TypeName)
}

// NotInstantiableError reports `new` applied to the null type or a
// primitive.
type NotInstantiableError struct {
	TypeName string
}

func (e *NotInstantiableError) Kind() string { return "NotInstantiable" }

func (e *NotInstantiableError) Error() string {
	return fmt.Sprintf("type %s is not instantiable", e.TypeName)
}
