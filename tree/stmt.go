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

// ExprStmt is an expression used as a statement.
type ExprStmt struct {
	Span
	X Expr
}

// If is an if statement.
type If struct {
	Span
	Cond Expr
	Then Stmt
	Else Stmt // optional
}

// While is a while loop.
type While struct {
	Span
	Cond Expr
	Body Stmt
}

// DoWhile is a do-while loop.
type DoWhile struct {
	Span
	Body Stmt
	Cond Expr
}

// For is a basic for loop.
type For struct {
	Span
	Init []Stmt
	Cond Expr // optional
	Post []Stmt
	Body Stmt
}

// ForEach is an enhanced for loop over an array or an iterable.
type ForEach struct {
	Span
	Var  *VarDecl
	X    Expr
	Body Stmt
}

// Labeled is a labeled statement.
type Labeled struct {
	Span
	Label string
	Body  Stmt
}

// Case is a case of a switch statement or expression.
type Case struct {
	Span
	Labels   []Expr     // constant labels, nil for default
	Bindings []*VarDecl // pattern bindings
	Guard    Expr       // optional when clause
	Body     []Stmt
}

// Switch is a switch statement.
type Switch struct {
	Span
	Selector Expr
	Cases    []*Case
}

// Catch is a catch clause of a try statement.
type Catch struct {
	Span
	Param *VarDecl
	Body  *Block
}

// Try is a try statement, optionally with resources.
type Try struct {
	Span
	Resources []Stmt // *VarDecl or *ExprStmt
	Body      *Block
	Catches   []*Catch
	Finally   *Block // optional
}

// Synchronized is a synchronized block.
type Synchronized struct {
	Span
	Lock Expr
	Body *Block
}

// Return is a return statement.
type Return struct {
	Span
	Result Expr // optional
}

// Yield is a yield statement of a switch expression.
type Yield struct {
	Span
	Value Expr
}

// Throw is a throw statement.
type Throw struct {
	Span
	X Expr
}

// BranchKind distinguishes break from continue.
type BranchKind uint8

const (
	// Break is a break statement.
	Break BranchKind = iota

	// Continue is a continue statement.
	Continue
)

// Branch is a break or continue statement.
type Branch struct {
	Span
	Kind  BranchKind
	Label string // optional
}

// Assert is an assert statement.
type Assert struct {
	Span
	Cond   Expr
	Detail Expr // optional
}

// Empty is the empty statement.
type Empty struct {
	Span
}

func (*ExprStmt) stmtNode()     {}
func (*If) stmtNode()           {}
func (*While) stmtNode()        {}
func (*DoWhile) stmtNode()      {}
func (*For) stmtNode()          {}
func (*ForEach) stmtNode()      {}
func (*Labeled) stmtNode()      {}
func (*Switch) stmtNode()       {}
func (*Try) stmtNode()          {}
func (*Synchronized) stmtNode() {}
func (*Return) stmtNode()       {}
func (*Yield) stmtNode()        {}
func (*Throw) stmtNode()        {}
func (*Branch) stmtNode()       {}
func (*Assert) stmtNode()       {}
func (*Empty) stmtNode()        {}
func (*Block) stmtNode()        {}
func (*VarDecl) stmtNode()      {}
func (*ClassDecl) stmtNode()    {}
