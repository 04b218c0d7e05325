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

import "fmt"

// Inspect traverses the tree rooted at node in depth-first order, calling
// f(n) for every node. If f returns true, Inspect visits the children of n.
func Inspect(node Node, f func(Node) bool) {
	if node == nil || !f(node) {
		return
	}

	switch n := node.(type) {
	// keep-sorted start newline_separated=yes
	case *Annotation, *Branch, *Empty, *Literal, *TypeName:
		// leaves

	case *Assert:
		inspectExprs(f, n.Cond, n.Detail)

	case *Assign:
		inspectExprs(f, n.Lhs, n.Rhs)

	case *AssignOp:
		inspectExprs(f, n.Lhs, n.Rhs)

	case *Binary:
		inspectExprs(f, n.X, n.Y)

	case *Block:
		inspectList(f, n.Stmts)

	case *Call:
		inspectExprs(f, n.Fun)
		inspectList(f, n.Args)

	case *Case:
		inspectCase(f, n)

	case *Cast:
		inspectExprs(f, n.X)

	case *Catch:
		if n.Param != nil {
			Inspect(n.Param, f)
		}

		if n.Body != nil {
			Inspect(n.Body, f)
		}

	case *ClassDecl:
		inspectList(f, n.Annotations)
		inspectList(f, n.Members)

	case *CompilationUnit:
		inspectList(f, n.Classes)

	case *Conditional:
		inspectExprs(f, n.Cond, n.Then, n.Else)

	case *DoWhile:
		Inspect(n.Body, f)
		inspectExprs(f, n.Cond)

	case *ExprStmt:
		inspectExprs(f, n.X)

	case *For:
		inspectList(f, n.Init)
		inspectExprs(f, n.Cond)
		inspectList(f, n.Post)
		Inspect(n.Body, f)

	case *ForEach:
		if n.Var != nil {
			Inspect(n.Var, f)
		}

		inspectExprs(f, n.X)
		Inspect(n.Body, f)

	case *Ident:
		// leaf

	case *If:
		inspectExprs(f, n.Cond)
		Inspect(n.Then, f)

		if n.Else != nil {
			Inspect(n.Else, f)
		}

	case *Index:
		inspectExprs(f, n.X, n.Index)

	case *InstanceOf:
		inspectExprs(f, n.X)

		if n.Binding != nil {
			Inspect(n.Binding, f)
		}

	case *Labeled:
		Inspect(n.Body, f)

	case *Lambda:
		inspectList(f, n.Params)
		Inspect(n.Body, f)

	case *MemberRef:
		inspectExprs(f, n.X)

	case *MethodDecl:
		inspectList(f, n.Annotations)
		inspectList(f, n.Params)

		if n.Body != nil {
			Inspect(n.Body, f)
		}

	case *New:
		inspectExprs(f, n.Outer)
		inspectList(f, n.Args)

		if n.Body != nil {
			Inspect(n.Body, f)
		}

	case *NewArray:
		inspectList(f, n.Dims)
		inspectList(f, n.Elems)

	case *Paren:
		inspectExprs(f, n.X)

	case *Return:
		inspectExprs(f, n.Result)

	case *Select:
		inspectExprs(f, n.X)

	case *Switch:
		inspectExprs(f, n.Selector)
		inspectList(f, n.Cases)

	case *SwitchExpr:
		inspectExprs(f, n.Selector)
		inspectList(f, n.Cases)

	case *Synchronized:
		inspectExprs(f, n.Lock)

		if n.Body != nil {
			Inspect(n.Body, f)
		}

	case *Throw:
		inspectExprs(f, n.X)

	case *Try:
		inspectList(f, n.Resources)

		if n.Body != nil {
			Inspect(n.Body, f)
		}

		inspectList(f, n.Catches)

		if n.Finally != nil {
			Inspect(n.Finally, f)
		}

	case *Unary:
		inspectExprs(f, n.X)

	case *VarDecl:
		inspectList(f, n.Annotations)
		inspectExprs(f, n.Init)

	case *While:
		inspectExprs(f, n.Cond)
		Inspect(n.Body, f)

	case *Yield:
		inspectExprs(f, n.Value)

		// keep-sorted end
	default:
		panic(fmt.Sprintf("tree.Inspect: unexpected node type %T", n))
	}
}

func inspectCase(f func(Node) bool, c *Case) {
	inspectList(f, c.Labels)
	inspectList(f, c.Bindings)
	inspectExprs(f, c.Guard)
	inspectList(f, c.Body)
}

func inspectExprs(f func(Node) bool, exprs ...Expr) {
	for _, e := range exprs {
		if e != nil {
			Inspect(e, f)
		}
	}
}

func inspectList[N Node](f func(Node) bool, list []N) {
	for _, n := range list {
		Inspect(n, f)
	}
}
