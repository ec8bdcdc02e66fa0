// Package ast holds the expression tree handed to the type checker.
// An external parser constructs the nodes and resolves every declared
// type name to a types.Type from the shared registry before handing
// off; nodes reference registry types but never own them. Expressions
// are immutable once built.
package ast

import "minijava/typechecker-go/pkg/types"

type NodeType string

const (
	NodeVariable        NodeType = "Variable"
	NodeLiteral         NodeType = "Literal"
	NodeNullLiteral     NodeType = "NullLiteral"
	NodeMethodCall      NodeType = "MethodCall"
	NodeConstructorCall NodeType = "ConstructorCall"
)

type Node interface {
	NodeType() NodeType
	isNode()
}

type nodeImpl struct {
	kind NodeType
}

func newNodeImpl(kind NodeType) nodeImpl {
	return nodeImpl{kind: kind}
}

func (n nodeImpl) NodeType() NodeType { return n.kind }
func (nodeImpl) isNode()              {}

// Expression is the marker interface for all expression nodes.
type Expression interface {
	Node
	expressionNode()
}

type expressionMarker struct{}

func (expressionMarker) expressionNode() {}

// Variable reads the value of a variable, e.g. `x`. The declared type
// is trusted; no definite-assignment or scope analysis happens here.
type Variable struct {
	nodeImpl
	expressionMarker

	Name         string
	DeclaredType types.Type
}

func NewVariable(name string, declaredType types.Type) *Variable {
	return &Variable{nodeImpl: newNodeImpl(NodeVariable), Name: name, DeclaredType: declaredType}
}

// Literal is a value entered directly in code, e.g. `5` or `true`. The
// source text is kept as written; the type comes from the registry.
type Literal struct {
	nodeImpl
	expressionMarker

	Value       string
	LiteralType types.Type
}

func NewLiteral(value string, literalType types.Type) *Literal {
	return &Literal{nodeImpl: newNodeImpl(NodeLiteral), Value: value, LiteralType: literalType}
}

// NullLiteral is the literal `null`, typed as the bottom type.
type NullLiteral struct {
	nodeImpl
	expressionMarker
}

func NewNullLiteral() *NullLiteral {
	return &NullLiteral{nodeImpl: newNodeImpl(NodeNullLiteral)}
}

// MethodCall is a method invocation, e.g. `foo.bar(0, 1)`.
type MethodCall struct {
	nodeImpl
	expressionMarker

	Receiver   Expression
	MethodName string
	Args       []Expression
}

func NewMethodCall(receiver Expression, methodName string, args ...Expression) *MethodCall {
	return &MethodCall{
		nodeImpl:   newNodeImpl(NodeMethodCall),
		Receiver:   receiver,
		MethodName: methodName,
		Args:       append([]Expression(nil), args...),
	}
}

// ConstructorCall is an object instantiation, e.g. `new Foo(0, 1)`.
type ConstructorCall struct {
	nodeImpl
	expressionMarker

	InstantiatedType types.Type
	Args             []Expression
}

func NewConstructorCall(instantiatedType types.Type, args ...Expression) *ConstructorCall {
	return &ConstructorCall{
		nodeImpl:         newNodeImpl(NodeConstructorCall),
		InstantiatedType: instantiatedType,
		Args:             append([]Expression(nil), args...),
	}
}
