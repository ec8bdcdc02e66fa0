package types

// Type represents a type of the checked language: a primitive, the null
// type, or a declared class/interface.
type Type interface {
	// Name returns the declared name, unique within a program.
	Name() string
	// DirectSupertypes returns the immediate parent edges in the type
	// graph (class extends / interface implements).
	DirectSupertypes() []Type
	// Instantiable reports whether `new` may be applied to the type.
	Instantiable() bool
	// SubtypeOf reports whether a value of this type can be used where
	// other is expected. The relation is reflexive and transitive.
	SubtypeOf(other Type) bool
	// SupertypeOf is the converse of SubtypeOf.
	SupertypeOf(other Type) bool
}

// MethodSet is implemented by types whose methods can be looked up:
// declared classes/interfaces and the null type. Primitives are not
// method sets; calling a method on one is a checker error.
type MethodSet interface {
	Type
	MethodNamed(name string) (*Method, error)
}

// Primitive is a leaf type with no supertypes beyond itself. Primitives
// are never instantiable and have no methods.
type Primitive struct {
	name string
}

func (p *Primitive) Name() string             { return p.name }
func (p *Primitive) DirectSupertypes() []Type { return nil }
func (p *Primitive) Instantiable() bool       { return false }

func (p *Primitive) SubtypeOf(other Type) bool   { return reaches(p, other) }
func (p *Primitive) SupertypeOf(other Type) bool { return other.SubtypeOf(p) }

// NullType is the type of the null literal: a subtype of every type, a
// supertype of nothing, never instantiable, and without methods. Use
// the Null singleton rather than constructing values.
type NullType struct{}

func (n *NullType) Name() string             { return "null" }
func (n *NullType) DirectSupertypes() []Type { return nil }
func (n *NullType) Instantiable() bool       { return false }

func (n *NullType) SubtypeOf(other Type) bool   { return true }
func (n *NullType) SupertypeOf(other Type) bool { return false }

// MethodNamed always fails: null has no resolvable methods.
func (n *NullType) MethodNamed(name string) (*Method, error) {
	return nil, &NoSuchMethodError{TypeName: n.Name(), Method: name}
}
