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

// Package testtree provides utilities for building compilation units in tests.
//
// Every node created by a [Builder] starts on a line of its own, so tests can
// identify diagnostic positions by line number.
package testtree

import (
	"bytes"
	"go/token"
	"testing"

	"fillmore-labs.com/thisescape/symbols"
	"fillmore-labs.com/thisescape/tree"
)

const (
	filename = "Test.java"
	maxLines = 1 << 14
)

// Builder creates symbols and tree nodes with distinct positions.
type Builder struct {
	tb      testing.TB
	Fset    *token.FileSet
	file    *token.File
	line    int
	Module  *symbols.Module
	Package *symbols.Package
}

// New creates a [Builder] for a compilation unit in package pkg of an
// unnamed module.
func New(tb testing.TB, pkg string) *Builder {
	tb.Helper()

	fset := token.NewFileSet()
	file := fset.AddFile(filename, -1, maxLines)
	file.SetLinesForContent(bytes.Repeat([]byte{'\n'}, maxLines))

	return &Builder{
		tb:      tb,
		Fset:    fset,
		file:    file,
		Package: symbols.NewPackage(pkg, nil),
	}
}

// WithModule places the package of b in a named module exporting the given packages.
func (b *Builder) WithModule(name string, exports ...string) *Builder {
	b.Module = symbols.NewModule(name, exports...)
	b.Package = symbols.NewPackage(b.Package.Name(), b.Module)

	return b
}

// Pos returns the position of a new line.
func (b *Builder) Pos() token.Pos {
	b.line++
	if b.line >= maxLines {
		b.tb.Fatalf("Test unit exceeds %d lines", maxLines)
	}

	return b.file.LineStart(b.line)
}

// Line returns the line number of pos.
func (b *Builder) Line(pos token.Pos) int {
	return b.Fset.Position(pos).Line
}

// Span returns the span of a new node on a line of its own.
func (b *Builder) Span() tree.Span {
	pos := b.Pos()

	return tree.Span{From: pos, To: pos + 1}
}

// Unit creates a compilation unit with the given top level classes.
func (b *Builder) Unit(classes ...*tree.ClassDecl) *tree.CompilationUnit {
	return &tree.CompilationUnit{
		Span:    tree.Span{From: b.file.Pos(0), To: b.file.Pos(b.file.Size())},
		Name:    filename,
		Package: b.Package,
		Module:  b.Module,
		Classes: classes,
	}
}

// Class creates a top level class symbol extending [symbols.Object].
func (b *Builder) Class(name string, flags symbols.Flags) *symbols.Class {
	c := symbols.NewClass(b.Pos(), b.Package, name, flags, symbols.TopLevelClass)
	c.SetSuper(symbols.Object)

	return c
}

// Member creates a member class symbol of outer.
func (b *Builder) Member(outer *symbols.Class, name string, flags symbols.Flags) *symbols.Class {
	c := symbols.NewClass(b.Pos(), outer, name, flags, symbols.MemberClass)
	c.SetSuper(symbols.Object)

	return c
}

// Anonymous creates an anonymous class symbol declared in owner extending super.
func (b *Builder) Anonymous(owner symbols.Symbol, super *symbols.Class) *symbols.Class {
	c := symbols.NewClass(b.Pos(), owner, "", symbols.Final, symbols.AnonymousClass)
	c.SetSuper(super)

	return c
}

// ClassDecl declares class sym with the given members.
func (b *Builder) ClassDecl(sym *symbols.Class, members ...tree.Member) *tree.ClassDecl {
	return &tree.ClassDecl{Span: b.Span(), Sym: sym, Members: members}
}

// Param creates a parameter symbol.
func (b *Builder) Param(name string, typ *symbols.Class) *symbols.Var {
	return symbols.NewVar(b.Pos(), nil, name, typ, symbols.ParamVar, symbols.NoFlags)
}

// Local creates a local variable symbol.
func (b *Builder) Local(name string, typ *symbols.Class) *symbols.Var {
	return symbols.NewVar(b.Pos(), nil, name, typ, symbols.LocalVar, symbols.NoFlags)
}

// Field creates a field symbol of class owner.
func (b *Builder) Field(owner *symbols.Class, name string, typ *symbols.Class, flags symbols.Flags) *symbols.Var {
	return symbols.NewVar(b.Pos(), owner, name, typ, symbols.FieldVar, flags)
}

// Ctor declares a constructor of class with the given body.
func (b *Builder) Ctor(class *symbols.Class, flags symbols.Flags, params []*symbols.Var, body ...tree.Stmt) *tree.MethodDecl {
	sym := symbols.NewConstructor(b.Pos(), class, flags, params...)

	return b.decl(sym, params, body)
}

// Method declares a method of class with the given body. A nil body declares
// a method without body.
func (b *Builder) Method(class *symbols.Class, name string, flags symbols.Flags, params []*symbols.Var, body ...tree.Stmt) *tree.MethodDecl {
	sym := symbols.NewMethod(b.Pos(), class, name, flags, params...)

	return b.decl(sym, params, body)
}

func (b *Builder) decl(sym *symbols.Method, params []*symbols.Var, body []tree.Stmt) *tree.MethodDecl {
	d := &tree.MethodDecl{Span: b.Span(), Sym: sym}
	for _, p := range params {
		d.Params = append(d.Params, &tree.VarDecl{Span: b.Span(), Sym: p})
	}

	if body != nil || !sym.Flags().Has(symbols.Abstract|symbols.Native) {
		d.Body = b.Block(body...)
	}

	return d
}

// Suppress returns d annotated with @SuppressWarnings("this-escape").
func Suppress[T interface{ *tree.ClassDecl | *tree.MethodDecl | *tree.VarDecl }](d T) T {
	a := &tree.Annotation{Name: "SuppressWarnings", Args: []string{"this-escape"}}

	switch d := any(d).(type) {
	case *tree.ClassDecl:
		d.Annotations = append(d.Annotations, a)

	case *tree.MethodDecl:
		d.Annotations = append(d.Annotations, a)

	case *tree.VarDecl:
		d.Annotations = append(d.Annotations, a)
	}

	return d
}

// Block creates a block.
func (b *Builder) Block(stmts ...tree.Stmt) *tree.Block {
	return &tree.Block{Span: b.Span(), Stmts: stmts}
}

// Init creates an instance initializer block.
func (b *Builder) Init(stmts ...tree.Stmt) *tree.Block {
	return b.Block(stmts...)
}

// VarDecl declares variable v with an optional initializer.
func (b *Builder) VarDecl(v *symbols.Var, init tree.Expr) *tree.VarDecl {
	return &tree.VarDecl{Span: b.Span(), Sym: v, Init: init}
}

// Expr creates an expression statement.
func (b *Builder) Expr(x tree.Expr) *tree.ExprStmt {
	return &tree.ExprStmt{Span: b.Span(), X: x}
}

// If creates an if statement with an optional else branch.
func (b *Builder) If(cond tree.Expr, then, els tree.Stmt) *tree.If {
	return &tree.If{Span: b.Span(), Cond: cond, Then: then, Else: els}
}

// While creates a while loop.
func (b *Builder) While(cond tree.Expr, body tree.Stmt) *tree.While {
	return &tree.While{Span: b.Span(), Cond: cond, Body: body}
}

// ForEach creates an enhanced for loop.
func (b *Builder) ForEach(v *symbols.Var, x tree.Expr, body tree.Stmt) *tree.ForEach {
	return &tree.ForEach{Span: b.Span(), Var: b.VarDecl(v, nil), X: x, Body: body}
}

// Return creates a return statement.
func (b *Builder) Return(x tree.Expr) *tree.Return {
	return &tree.Return{Span: b.Span(), Result: x}
}

// Throw creates a throw statement.
func (b *Builder) Throw(x tree.Expr) *tree.Throw {
	return &tree.Throw{Span: b.Span(), X: x}
}

// This creates a this expression.
func (b *Builder) This() *tree.Ident {
	return &tree.Ident{Span: b.Span(), Name: tree.This}
}

// OuterThis creates the qualified this expression outer.this.
func (b *Builder) OuterThis(outer *symbols.Class) *tree.Select {
	return &tree.Select{Span: b.Span(), X: &tree.TypeName{Span: b.Span(), Sym: outer}, Name: tree.This}
}

// Ident creates a reference to sym.
func (b *Builder) Ident(sym symbols.Symbol) *tree.Ident {
	return &tree.Ident{Span: b.Span(), Name: sym.Name(), Sym: sym}
}

// Literal creates a literal.
func (b *Builder) Literal(value string) *tree.Literal {
	return &tree.Literal{Span: b.Span(), Value: value}
}

// Call creates an invocation of m. A nil receiver invokes m unqualified.
func (b *Builder) Call(recv tree.Expr, m *symbols.Method, args ...tree.Expr) *tree.Call {
	var fun tree.Expr
	if recv == nil {
		fun = b.Ident(m)
	} else {
		fun = &tree.Select{Span: b.Span(), X: recv, Name: m.Name(), Sym: m}
	}

	return &tree.Call{Span: b.Span(), Fun: fun, Args: args}
}

// Static creates an invocation of the static method m qualified by its class.
func (b *Builder) Static(m *symbols.Method, args ...tree.Expr) *tree.Call {
	return b.Call(&tree.TypeName{Span: b.Span(), Sym: m.Class()}, m, args...)
}

// CtorCall creates a this(...) or super(...) constructor invocation.
func (b *Builder) CtorCall(name string, ctor *symbols.Method, args ...tree.Expr) *tree.ExprStmt {
	fun := &tree.Ident{Span: b.Span(), Name: name, Sym: ctor}

	return b.Expr(&tree.Call{Span: b.Span(), Fun: fun, Args: args})
}

// New creates an instance creation expression.
func (b *Builder) New(ctor *symbols.Method, args ...tree.Expr) *tree.New {
	return &tree.New{Span: b.Span(), Class: ctor.Class(), Ctor: ctor, Args: args}
}

// NewAnonymous creates an instance creation expression of an anonymous
// class. ctor is the superclass constructor, nil for interfaces.
func (b *Builder) NewAnonymous(body *tree.ClassDecl, ctor *symbols.Method, args ...tree.Expr) *tree.New {
	return &tree.New{Span: b.Span(), Class: body.Sym, Ctor: ctor, Args: args, Body: body}
}

// Assign creates an assignment.
func (b *Builder) Assign(lhs, rhs tree.Expr) *tree.Assign {
	return &tree.Assign{Span: b.Span(), Lhs: lhs, Rhs: rhs}
}

// Cast creates a cast to typ.
func (b *Builder) Cast(typ *symbols.Class, x tree.Expr) *tree.Cast {
	return &tree.Cast{Span: b.Span(), Type: typ, X: x}
}

// Lambda creates a lambda expression of functional interface typ.
func (b *Builder) Lambda(typ *symbols.Class, body tree.Node) *tree.Lambda {
	return &tree.Lambda{Span: b.Span(), Body: body, Type: typ}
}

// NewArray creates an array with initializer elements.
func (b *Builder) NewArray(typ *symbols.Class, elems ...tree.Expr) *tree.NewArray {
	return &tree.NewArray{Span: b.Span(), Type: typ, Elems: elems}
}

// Index creates an array access with element type elem.
func (b *Builder) Index(x tree.Expr, elem *symbols.Class) *tree.Index {
	return &tree.Index{Span: b.Span(), X: x, Index: b.Literal("0"), Elem: elem}
}

// Conditional creates a conditional expression.
func (b *Builder) Conditional(cond, then, els tree.Expr) *tree.Conditional {
	return &tree.Conditional{Span: b.Span(), Cond: cond, Then: then, Else: els}
}

// Library creates a public final class with a static method sink(Object)
// outside the compilation unit.
func (b *Builder) Library() (*symbols.Class, *symbols.Method) {
	lib := symbols.NewClass(token.NoPos, symbols.NewPackage("lib", nil), "Registry", symbols.Public|symbols.Final, symbols.TopLevelClass)
	lib.SetSuper(symbols.Object)

	sink := symbols.NewMethod(token.NoPos, lib, "register", symbols.Public|symbols.Static,
		symbols.NewVar(token.NoPos, nil, "o", symbols.Object, symbols.ParamVar, symbols.NoFlags))

	return lib, sink
}
