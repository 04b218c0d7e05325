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

import (
	"go/token"

	"fillmore-labs.com/thisescape/symbols"
)

// Node is any node of the tree.
type Node interface {
	Pos() token.Pos // position of first character belonging to the node
	End() token.Pos // position of first character immediately after the node
}

// Expr is an expression.
type Expr interface {
	Node
	exprNode()
}

// Stmt is a statement.
type Stmt interface {
	Node
	stmtNode()
}

// Member is a class member: field, method, initializer block or nested class.
type Member interface {
	Node
	memberNode()
}

// Span is the source range of a node.
type Span struct {
	From, To token.Pos
}

// Pos implements [Node].
func (s Span) Pos() token.Pos { return s.From }

// End implements [Node].
func (s Span) End() token.Pos { return s.To }

// CompilationUnit is a source file with its top level classes.
type CompilationUnit struct {
	Span
	Name    string           // file name
	Package *symbols.Package // declared package
	Module  *symbols.Module  // module the unit belongs to, nil when modules are not in use
	Classes []*ClassDecl
}

// Annotation is a declaration annotation such as @SuppressWarnings("this-escape").
type Annotation struct {
	Span
	Name string   // simple or qualified annotation type name
	Args []string // string values of the annotation
}

// ClassDecl declares a class, interface, enum or record.
type ClassDecl struct {
	Span
	Sym         *symbols.Class
	Annotations []*Annotation
	Members     []Member
}

// MethodDecl declares a method or constructor.
type MethodDecl struct {
	Span
	Sym         *symbols.Method
	Annotations []*Annotation
	Params      []*VarDecl
	Body        *Block // nil for abstract and native methods
}

// VarDecl declares a field, local variable, parameter or pattern binding.
type VarDecl struct {
	Span
	Sym         *symbols.Var
	Annotations []*Annotation
	Init        Expr // optional initializer
}

// Block is a statement block or an initializer block of a class.
type Block struct {
	Span
	Static bool // static initializer
	Stmts  []Stmt
}

func (*ClassDecl) memberNode()  {}
func (*MethodDecl) memberNode() {}
func (*VarDecl) memberNode()    {}
func (*Block) memberNode()      {}

// IsConstructor reports whether d declares a constructor.
func (d *MethodDecl) IsConstructor() bool {
	return d.Sym != nil && d.Sym.IsConstructor()
}

// IsStatic reports whether the member belongs to the class rather than to an instance.
func IsStatic(m Member) bool {
	switch m := m.(type) {
	case *VarDecl:
		return m.Sym != nil && m.Sym.IsStatic()

	case *Block:
		return m.Static

	case *MethodDecl:
		return m.Sym != nil && m.Sym.IsStatic()

	case *ClassDecl:
		return m.Sym != nil && !m.Sym.HasOuterInstance()

	default:
		return false
	}
}
