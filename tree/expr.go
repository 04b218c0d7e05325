// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package tree

import "fillmore-labs.com/thisescape/symbols"

// Names with special meaning in identifiers and selections.
const (
	This  = "this"
	Super = "super"
)

// Ident is a simple name: a variable, a method name in a call, this or super.
type Ident struct {
	Span
	Name string
	Sym  symbols.Symbol // resolved symbol, nil if unresolved
}

// Select is a member selection X.Name, including Outer.this.
type Select struct {
	Span
	X    Expr
	Name string
	Sym  symbols.Symbol // resolved member, nil if unresolved or Name is this or super
}

// TypeName is a type used in expression position, such as the qualifier of a
// static member access or of Outer.this.
type TypeName struct {
	Span
	Sym *symbols.Class
}

// Call is a method invocation. Fun is an [*Ident] or a [*Select] resolved to
// the invoked method.
type Call struct {
	Span
	Fun  Expr
	Args []Expr
}

// New is an instance creation expression.
type New struct {
	Span
	Outer Expr           // optional explicit outer instance
	Class *symbols.Class // instantiated class, anonymous class for Body != nil
	Ctor  *symbols.Method
	Args  []Expr
	Body  *ClassDecl // optional anonymous class body
}

// NewArray is an array creation expression.
type NewArray struct {
	Span
	Type  *symbols.Class // array type
	Dims  []Expr
	Elems []Expr // initializer elements, nil without initializer
}

// Assign is a simple assignment.
type Assign struct {
	Span
	Lhs, Rhs Expr
}

// AssignOp is a compound assignment such as +=.
type AssignOp struct {
	Span
	Op       string
	Lhs, Rhs Expr
}

// Unary is a unary or increment/decrement expression.
type Unary struct {
	Span
	Op string
	X  Expr
}

// Binary is a binary expression.
type Binary struct {
	Span
	Op   string
	X, Y Expr
}

// Conditional is a conditional expression Cond ? Then : Else.
type Conditional struct {
	Span
	Cond, Then, Else Expr
}

// Cast is a type cast.
type Cast struct {
	Span
	Type *symbols.Class // nil for primitive types
	X    Expr
}

// InstanceOf is a type test, optionally binding a pattern variable.
type InstanceOf struct {
	Span
	X       Expr
	Type    *symbols.Class
	Binding *VarDecl // optional
}

// Index is an array access.
type Index struct {
	Span
	X, Index Expr
	Elem     *symbols.Class // element type, nil for primitive elements
}

// Paren is a parenthesized expression.
type Paren struct {
	Span
	X Expr
}

// Lambda is a lambda expression. Body is an [Expr] or a [*Block].
type Lambda struct {
	Span
	Params []*VarDecl
	Body   Node
	Type   *symbols.Class // functional interface type
}

// MemberRefKind classifies method references.
type MemberRefKind uint8

const (
	// RefStatic is a reference to a static method, Type::m.
	RefStatic MemberRefKind = iota

	// RefUnbound is a reference to an instance method without receiver, Type::m.
	RefUnbound

	// RefBound is a reference to an instance method of the value of X, x::m.
	RefBound

	// RefSuper is a reference to a superclass method, super::m.
	RefSuper

	// RefImplicitInner is a constructor reference to an inner class, Inner::new.
	RefImplicitInner

	// RefToplevel is a constructor reference to a class without outer instance.
	RefToplevel

	// RefArrayCtor is an array constructor reference, int[]::new.
	RefArrayCtor
)

// MemberRef is a method or constructor reference.
type MemberRef struct {
	Span
	X    Expr
	Name string
	Sym  *symbols.Method
	Kind MemberRefKind
	Type *symbols.Class // functional interface type
}

// SwitchExpr is a switch expression.
type SwitchExpr struct {
	Span
	Selector Expr
	Cases    []*Case
}

// Literal is a literal constant.
type Literal struct {
	Span
	Value string
}

func (*Ident) exprNode()       {}
func (*Select) exprNode()      {}
func (*TypeName) exprNode()    {}
func (*Call) exprNode()        {}
func (*New) exprNode()         {}
func (*NewArray) exprNode()    {}
func (*Assign) exprNode()      {}
func (*AssignOp) exprNode()    {}
func (*Unary) exprNode()       {}
func (*Binary) exprNode()      {}
func (*Conditional) exprNode() {}
func (*Cast) exprNode()        {}
func (*InstanceOf) exprNode()  {}
func (*Index) exprNode()       {}
func (*Paren) exprNode()       {}
func (*Lambda) exprNode()      {}
func (*MemberRef) exprNode()   {}
func (*SwitchExpr) exprNode()  {}
func (*Literal) exprNode()     {}

// Method returns the method invoked by c, nil if unresolved.
func (c *Call) Method() *symbols.Method {
	return MethodOf(c.Fun)
}

// MethodOf returns the method an [*Ident] or [*Select] resolves to.
func MethodOf(e Expr) *symbols.Method {
	var sym symbols.Symbol

	switch e := e.(type) {
	case *Ident:
		sym = e.Sym

	case *Select:
		sym = e.Sym

	case *Paren:
		return MethodOf(e.X)
	}

	m, _ := sym.(*symbols.Method)

	return m
}

// Name returns the simple name of an [*Ident] or [*Select], "" otherwise.
func Name(e Expr) string {
	switch e := e.(type) {
	case *Ident:
		return e.Name

	case *Select:
		return e.Name

	default:
		return ""
	}
}

// Unparen strips enclosing parentheses.
func Unparen(e Expr) Expr {
	for {
		p, ok := e.(*Paren)
		if !ok {
			return e
		}

		e = p.X
	}
}
