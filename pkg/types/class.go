package types

import (
	"fmt"
	"slices"

	"github.com/hashicorp/go-set/v3"
)

// Method is the declaration of a method: a name, ordered parameter
// types, and a return type.
type Method struct {
	name   string
	params []Type
	ret    Type
}

// NewMethod declares a method. A nil returns is treated as void. The
// parameter list is copied, so the caller's slice stays independent.
func NewMethod(name string, params []Type, returns Type) *Method {
	if returns == nil {
		returns = Void
	}
	return &Method{name: name, params: slices.Clone(params), ret: returns}
}

func (m *Method) Name() string           { return m.name }
func (m *Method) ParameterTypes() []Type { return m.params }
func (m *Method) ReturnType() Type       { return m.ret }

// Constructor is the declaration of a constructor: ordered parameter
// types only.
type Constructor struct {
	params []Type
}

// NewConstructor declares a constructor taking the given parameter
// types. The list is copied.
func NewConstructor(params ...Type) *Constructor {
	return &Constructor{params: slices.Clone(params)}
}

func (c *Constructor) ParameterTypes() []Type { return c.params }

// ClassOrInterface describes the API of a class-like type. The model
// draws no distinction between classes and interfaces beyond what the
// checker needs: both carry a method table, and every declared
// class/interface is instantiable.
type ClassOrInterface struct {
	name        string
	supertypes  []Type
	constructor *Constructor
	methods     map[string]*Method
}

// NewClassOrInterface declares a class or interface. The supertype list
// is copied per instance so later edits to the caller's slice cannot
// leak between types. A nil constructor means a zero-argument one.
// Duplicate method names in the list are resolved last-one-wins.
func NewClassOrInterface(name string, supertypes []Type, constructor *Constructor, methods []*Method) *ClassOrInterface {
	if constructor == nil {
		constructor = NewConstructor()
	}
	t := &ClassOrInterface{
		name:        name,
		supertypes:  slices.Clone(supertypes),
		constructor: constructor,
		methods:     make(map[string]*Method, len(methods)),
	}
	for _, m := range methods {
		t.methods[m.name] = m
	}
	return t
}

func (t *ClassOrInterface) Name() string              { return t.name }
func (t *ClassOrInterface) DirectSupertypes() []Type  { return t.supertypes }
func (t *ClassOrInterface) Instantiable() bool        { return true }
func (t *ClassOrInterface) Constructor() *Constructor { return t.constructor }

func (t *ClassOrInterface) SubtypeOf(other Type) bool   { return reaches(t, other) }
func (t *ClassOrInterface) SupertypeOf(other Type) bool { return other.SubtypeOf(t) }

// DefineMethod adds an own-table entry, replacing any previous method
// with the same name. Registry builders call it while linking forward
// references; a type that has been published to checking passes must
// not be modified.
func (t *ClassOrInterface) DefineMethod(m *Method) {
	t.methods[m.name] = m
}

// SetSupertypes replaces the direct-supertype list, copying it the way
// the constructor does. Registry builders call it while linking forward
// references; the same publication rule as DefineMethod applies.
func (t *ClassOrInterface) SetSupertypes(supertypes []Type) {
	t.supertypes = slices.Clone(supertypes)
}

// SetConstructor replaces the constructor signature. The same
// publication rule as DefineMethod applies.
func (t *ClassOrInterface) SetConstructor(c *Constructor) {
	if c == nil {
		c = NewConstructor()
	}
	t.constructor = c
}

// MethodNamed resolves name against the type's own method table first,
// then against direct supertypes in declared order, depth-first. The
// first match anywhere in the hierarchy wins, so an own-table entry
// shadows a same-named inherited method.
func (t *ClassOrInterface) MethodNamed(name string) (*Method, error) {
	if m := t.methodNamed(name, set.New[Type](4)); m != nil {
		return m, nil
	}
	return nil, &NoSuchMethodError{TypeName: t.name, Method: name}
}

func (t *ClassOrInterface) methodNamed(name string, seen *set.Set[Type]) *Method {
	if !seen.Insert(t) {
		return nil
	}
	if m, ok := t.methods[name]; ok {
		return m
	}
	for _, super := range t.supertypes {
		ci, ok := super.(*ClassOrInterface)
		if !ok {
			continue
		}
		if m := ci.methodNamed(name, seen); m != nil {
			return m
		}
	}
	return nil
}

// NoSuchMethodError reports a method name that is absent from the whole
// reachable hierarchy of the receiver type.
type NoSuchMethodError struct {
	TypeName string
	Method   string
}

func (e *NoSuchMethodError) Error() string {
	return fmt.Sprintf("%s has no method named %s", e.TypeName, e.Method)
}
